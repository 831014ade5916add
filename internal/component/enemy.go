// internal/component/enemy.go
package component

import (
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
)

// Enemy is one walker on the path.
type Enemy struct {
	ID    types.EntityID
	Tier  int
	Color string
	Size  float64 // collision radius in pixels

	T     float64 // path progress, 0 at spawn and 1 at the goal
	Pos   geom.Vec
	Speed float64

	HP    float64
	MaxHP float64
	Gold  int

	Cold float64 // slow magnitude
	Burn float64 // damage-over-time reservoir

	// Scratch marks the enemy as already hit during one multi-hit resolution.
	Scratch uint32

	Ranged *RangedAttack
	Leaked bool // reached the goal
}

// RangedAttack lets an enemy fire at turrets while it walks.
type RangedAttack struct {
	Cooldown float64
	Interval float64
	Damage   float64
}

// Alive reports whether the enemy can still be targeted.
func (e *Enemy) Alive() bool {
	return e.HP > 0 && !e.Leaked
}
