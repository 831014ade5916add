// internal/component/turret.go
package component

import (
	"math"

	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
)

// Turret is a placed defence. Stats are recomputed whenever Upgrades change.
type Turret struct {
	ID        types.EntityID
	Archetype defs.Archetype
	X, Y      int      // grid cell
	Pos       geom.Vec // cell centre in pixels

	HP       float64
	MaxHP    float64
	Dead     bool
	Cooldown float64

	Upgrades defs.UpgradeSet
	Invested int
	Stats    defs.Stats

	Charge    float64 // zapper and repair
	Heading   float64 // laser, radians
	DamageAcc float64 // laser
}

// NewTurret builds a turret at base stats.
func NewTurret(id types.EntityID, def *defs.TurretDef, x, y int, pos geom.Vec) *Turret {
	stats := def.ComputeStats(0)
	return &Turret{
		ID:        id,
		Archetype: def.Archetype,
		X:         x,
		Y:         y,
		Pos:       pos,
		HP:        stats.MaxHP,
		MaxHP:     stats.MaxHP,
		Invested:  def.Cost,
		Stats:     stats,
		Heading:   -math.Pi / 2, // pointing up
	}
}

// ApplyUpgrade adds u and refreshes the stats. A change in max hp moves
// the current hp by the same amount.
func (t *Turret) ApplyUpgrade(def *defs.TurretDef, u defs.UpgradeDef) {
	t.Upgrades = t.Upgrades.With(u.ID)
	t.Invested += u.Cost
	t.Stats = def.ComputeStats(t.Upgrades)
	if delta := t.Stats.MaxHP - t.MaxHP; delta != 0 {
		t.MaxHP = t.Stats.MaxHP
		t.HP = min(t.MaxHP, t.HP+delta)
	}
}

// Damaged reports whether the turret is below full health.
func (t *Turret) Damaged() bool {
	return t.HP < t.MaxHP
}

// HPFraction is hp/maxHp, 0 when maxHp is not positive.
func (t *Turret) HPFraction() float64 {
	if t.MaxHP <= 0 {
		return 0
	}
	return t.HP / t.MaxHP
}
