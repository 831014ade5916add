// internal/defs/types.go
package defs

import (
	"fmt"
	"math/bits"
)

// Archetype is one of the fixed turret behaviour classes.
type Archetype uint8

const (
	Basic  Archetype = iota // direct fire
	Slow                    // slow field
	Splash                  // splash bomb
	Zapper                  // charge release
	Flame                   // area fire
	Laser                   // sweeping beam
	Wall                    // blocking obstacle
	Repair                  // repair station

	ArchetypeCount = 8
)

var archetypeNames = [ArchetypeCount]string{
	"basic", "slow", "splash", "zapper", "flame", "laser", "wall", "repair",
}

// Archetypes lists every archetype in declaration order.
func Archetypes() []Archetype {
	out := make([]Archetype, ArchetypeCount)
	for i := range out {
		out[i] = Archetype(i)
	}
	return out
}

func (a Archetype) Valid() bool {
	return a < ArchetypeCount
}

func (a Archetype) String() string {
	if !a.Valid() {
		return fmt.Sprintf("archetype(%d)", uint8(a))
	}
	return archetypeNames[a]
}

func (a Archetype) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("unknown archetype %d", uint8(a))
	}
	return []byte(archetypeNames[a]), nil
}

func (a *Archetype) UnmarshalText(b []byte) error {
	for i, name := range archetypeNames {
		if name == string(b) {
			*a = Archetype(i)
			return nil
		}
	}
	return fmt.Errorf("unknown archetype %q", b)
}

// Upgrade names one purchasable turret improvement.
type Upgrade uint8

const (
	UpgradeRange Upgrade = iota
	UpgradeRapidFire
	UpgradeTriShot
	UpgradeOrthoShot
	UpgradePiercing
	UpgradeHeavyRounds
	UpgradeVelocity

	UpgradeSlowRange
	UpgradeDeepFreeze
	UpgradeSlowRapid

	UpgradeSplashRadius
	UpgradeSplashTargets
	UpgradeSplashDamage
	UpgradeSplashRange

	UpgradeZapCapacity
	UpgradeZapRate
	UpgradeChain
	UpgradeChainPlus
	UpgradeZapRange

	UpgradeFlameRange
	UpgradeFlameHeat
	UpgradeFlameRapid
	UpgradeFlamePierce

	UpgradeLaserTurn
	UpgradeLaserPower
	UpgradeLaserRange
	UpgradeSweepCW
	UpgradeSweepCCW

	UpgradeArmor
	UpgradeFortify

	UpgradeRepairRange
	UpgradeRepairRate
	UpgradeRepairCapacity

	upgradeCount
)

var upgradeNames = [upgradeCount]string{
	"range", "rapid_fire", "tri_shot", "ortho_shot", "piercing", "heavy_rounds", "velocity",
	"slow_range", "deep_freeze", "slow_rapid",
	"splash_radius", "splash_targets", "splash_damage", "splash_range",
	"zap_capacity", "zap_rate", "chain", "chain_plus", "zap_range",
	"flame_range", "flame_heat", "flame_rapid", "flame_pierce",
	"laser_turn", "laser_power", "laser_range", "sweep_cw", "sweep_ccw",
	"armor", "fortify",
	"repair_range", "repair_rate", "repair_capacity",
}

func (u Upgrade) Valid() bool {
	return u < upgradeCount
}

func (u Upgrade) String() string {
	if !u.Valid() {
		return fmt.Sprintf("upgrade(%d)", uint8(u))
	}
	return upgradeNames[u]
}

func (u Upgrade) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("unknown upgrade %d", uint8(u))
	}
	return []byte(upgradeNames[u]), nil
}

func (u *Upgrade) UnmarshalText(b []byte) error {
	v, err := ParseUpgrade(string(b))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// ParseUpgrade looks an upgrade up by its table name.
func ParseUpgrade(name string) (Upgrade, error) {
	for i, n := range upgradeNames {
		if n == name {
			return Upgrade(i), nil
		}
	}
	return 0, fmt.Errorf("unknown upgrade %q", name)
}

// UpgradeSet is the set of upgrades a turret owns.
type UpgradeSet uint64

func (s UpgradeSet) Has(u Upgrade) bool {
	return s&(1<<u) != 0
}

func (s UpgradeSet) With(u Upgrade) UpgradeSet {
	return s | 1<<u
}

func (s UpgradeSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// List returns the owned upgrades in enumeration order.
func (s UpgradeSet) List() []Upgrade {
	out := make([]Upgrade, 0, s.Len())
	for u := Upgrade(0); u < upgradeCount; u++ {
		if s.Has(u) {
			out = append(out, u)
		}
	}
	return out
}
