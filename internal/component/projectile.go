// internal/component/projectile.go
package component

import (
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
)

// Projectile is a turret shot in flight.
type Projectile struct {
	ID     types.EntityID
	Source defs.Archetype // for the damage ledger

	Pos    geom.Vec
	Vel    geom.Vec
	Radius float64
	Damage float64
	Pierce int // hits left

	Bomb        *Bomb
	LaserLength float64 // >0 makes this a one-tick beam
	Fire        *Fire

	Hit  map[types.EntityID]struct{}
	Done bool
}

// Bomb detonates at Target instead of colliding on the way.
type Bomb struct {
	Target     geom.Vec
	Radius     float64
	MaxTargets int
	Damage     float64
}

// Fire deposits burn and burns out after travelling Range pixels.
type Fire struct {
	Burn     float64
	Range    float64
	Traveled float64
}

// HasHit reports whether the projectile already struck enemy id.
func (p *Projectile) HasHit(id types.EntityID) bool {
	_, ok := p.Hit[id]
	return ok
}

// MarkHit records a strike on id.
func (p *Projectile) MarkHit(id types.EntityID) {
	if p.Hit == nil {
		p.Hit = make(map[types.EntityID]struct{})
	}
	p.Hit[id] = struct{}{}
}

// HostileProjectile is an enemy shot aimed at turrets.
type HostileProjectile struct {
	ID     types.EntityID
	Pos    geom.Vec
	Vel    geom.Vec
	Damage float64
	Done   bool
}
