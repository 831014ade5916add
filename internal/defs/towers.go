// internal/defs/towers.go
package defs

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

var (
	ErrUpgradeUnknown   = errors.New("upgrade not offered for this archetype")
	ErrUpgradeOwned     = errors.New("upgrade already owned")
	ErrUpgradeExclusive = errors.New("upgrade excluded by an owned upgrade")
	ErrUpgradeCap       = errors.New("upgrade limit reached")
)

// TurretDef holds the static data for one archetype.
type TurretDef struct {
	Archetype   Archetype    `yaml:"archetype"`
	Name        string       `yaml:"name"`
	Cost        int          `yaml:"cost"`
	MaxUpgrades int          `yaml:"max_upgrades"`
	Stats       Stats        `yaml:"stats"`
	Upgrades    []UpgradeDef `yaml:"upgrades"`
}

// UnmarshalYAML rejects entries without an archetype key, which would
// otherwise decode as the zero archetype.
func (d *TurretDef) UnmarshalYAML(node *yaml.Node) error {
	var key struct {
		Archetype *Archetype `yaml:"archetype"`
	}
	if err := node.Decode(&key); err != nil {
		return err
	}
	if key.Archetype == nil {
		return fmt.Errorf("%w: turret at line %d has no archetype", ErrInvalidTables, node.Line)
	}
	type plain TurretDef
	return node.Decode((*plain)(d))
}

// UpgradeDef prices an upgrade and says how it changes the stats.
type UpgradeDef struct {
	ID   Upgrade   `yaml:"id"`
	Name string    `yaml:"name"`
	Cost int       `yaml:"cost"`
	Mods Modifiers `yaml:"mods"`
}

// Stats are the live numbers a turret fights with. Ranges are in cells,
// speeds and radii in pixels, rates per second.
type Stats struct {
	MaxHP            float64 `yaml:"max_hp"`
	Regen            float64 `yaml:"regen"`
	Range            float64 `yaml:"range"`
	MinRange         float64 `yaml:"min_range"`
	Cooldown         float64 `yaml:"cooldown"`
	Damage           float64 `yaml:"damage"`
	ProjectileSpeed  float64 `yaml:"projectile_speed"`
	ProjectileRadius float64 `yaml:"projectile_radius"`
	Pierce           int     `yaml:"pierce"`
	Spread           float64 `yaml:"spread"` // tri-shot side angle, radians
	BombRadius       float64 `yaml:"bomb_radius"`
	BombTargets      int     `yaml:"bomb_targets"`
	ChargeRate       float64 `yaml:"charge_rate"`
	MaxCharge        float64 `yaml:"max_charge"`
	ChainCount       int     `yaml:"chain_count"`
	Cold             float64 `yaml:"cold"`
	Burn             float64 `yaml:"burn"`
	FlameCount       int     `yaml:"flame_count"`
	DPS              float64 `yaml:"dps"`
	TurnRate         float64 `yaml:"turn_rate"`
	SweepRate        float64 `yaml:"sweep_rate"`
	SweepDamageMul   float64 `yaml:"sweep_damage_mul"`
	DamageTaken      float64 `yaml:"damage_taken"`
	RepairJitter     float64 `yaml:"repair_jitter"` // transfer chance per tick with repair_capacity
}

// Modifiers change Stats. Plain fields add, *Mul fields multiply; a zero
// multiplier means "unchanged".
type Modifiers struct {
	Range          float64 `yaml:"range"`
	MinRange       float64 `yaml:"min_range"`
	Pierce         int     `yaml:"pierce"`
	BombTargets    int     `yaml:"bomb_targets"`
	MaxCharge      float64 `yaml:"max_charge"`
	ChainCount     int     `yaml:"chain_count"`
	CooldownMul    float64 `yaml:"cooldown_mul"`
	DamageMul      float64 `yaml:"damage_mul"`
	SpeedMul       float64 `yaml:"speed_mul"`
	RadiusMul      float64 `yaml:"radius_mul"`
	BombRadiusMul  float64 `yaml:"bomb_radius_mul"`
	ChargeRateMul  float64 `yaml:"charge_rate_mul"`
	ColdMul        float64 `yaml:"cold_mul"`
	BurnMul        float64 `yaml:"burn_mul"`
	DPSMul         float64 `yaml:"dps_mul"`
	TurnRateMul    float64 `yaml:"turn_rate_mul"`
	DamageTakenMul float64 `yaml:"damage_taken_mul"`
	MaxHPMul       float64 `yaml:"max_hp_mul"`
}

func factor(m float64) float64 {
	if m == 0 {
		return 1
	}
	return m
}

// Upgrade returns the table entry for u, if this archetype offers it.
func (d *TurretDef) Upgrade(u Upgrade) (*UpgradeDef, bool) {
	for i := range d.Upgrades {
		if d.Upgrades[i].ID == u {
			return &d.Upgrades[i], true
		}
	}
	return nil, false
}

// ComputeStats applies every owned upgrade to the base stats. Additive
// bonuses are summed first, then multipliers applied.
func (d *TurretDef) ComputeStats(owned UpgradeSet) Stats {
	s := d.Stats
	mul := Modifiers{}
	for _, up := range d.Upgrades {
		if !owned.Has(up.ID) {
			continue
		}
		m := up.Mods
		s.Range += m.Range
		s.MinRange += m.MinRange
		s.Pierce += m.Pierce
		s.BombTargets += m.BombTargets
		s.MaxCharge += m.MaxCharge
		s.ChainCount += m.ChainCount

		mul.CooldownMul = factor(mul.CooldownMul) * factor(m.CooldownMul)
		mul.DamageMul = factor(mul.DamageMul) * factor(m.DamageMul)
		mul.SpeedMul = factor(mul.SpeedMul) * factor(m.SpeedMul)
		mul.RadiusMul = factor(mul.RadiusMul) * factor(m.RadiusMul)
		mul.BombRadiusMul = factor(mul.BombRadiusMul) * factor(m.BombRadiusMul)
		mul.ChargeRateMul = factor(mul.ChargeRateMul) * factor(m.ChargeRateMul)
		mul.ColdMul = factor(mul.ColdMul) * factor(m.ColdMul)
		mul.BurnMul = factor(mul.BurnMul) * factor(m.BurnMul)
		mul.DPSMul = factor(mul.DPSMul) * factor(m.DPSMul)
		mul.TurnRateMul = factor(mul.TurnRateMul) * factor(m.TurnRateMul)
		mul.DamageTakenMul = factor(mul.DamageTakenMul) * factor(m.DamageTakenMul)
		mul.MaxHPMul = factor(mul.MaxHPMul) * factor(m.MaxHPMul)
	}

	s.Cooldown *= factor(mul.CooldownMul)
	s.Damage *= factor(mul.DamageMul)
	s.ProjectileSpeed *= factor(mul.SpeedMul)
	s.ProjectileRadius *= factor(mul.RadiusMul)
	s.BombRadius *= factor(mul.BombRadiusMul)
	s.ChargeRate *= factor(mul.ChargeRateMul)
	s.Cold *= factor(mul.ColdMul)
	s.Burn *= factor(mul.BurnMul)
	s.DPS *= factor(mul.DPSMul)
	s.TurnRate *= factor(mul.TurnRateMul)
	s.DamageTaken *= factor(mul.DamageTakenMul)
	s.MaxHP *= factor(mul.MaxHPMul)
	s.MinRange = math.Max(0, math.Min(s.MinRange, s.Range))
	return s
}

// CheckUpgrade reports whether u may be added to owned on archetype a.
// Gold is not considered.
func (t *Tables) CheckUpgrade(a Archetype, owned UpgradeSet, u Upgrade) (*UpgradeDef, error) {
	def := t.Turret(a)
	if def == nil {
		return nil, ErrUpgradeUnknown
	}
	up, ok := def.Upgrade(u)
	if !ok {
		return nil, ErrUpgradeUnknown
	}
	if owned.Has(u) {
		return nil, ErrUpgradeOwned
	}
	for _, pair := range t.Exclusive {
		if pair[0] == u && owned.Has(pair[1]) || pair[1] == u && owned.Has(pair[0]) {
			return nil, ErrUpgradeExclusive
		}
	}
	if owned.Len() >= def.MaxUpgrades {
		return nil, ErrUpgradeCap
	}
	return up, nil
}
