// internal/entity/ecs.go
package entity

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/types"
)

// ECS owns every live entity of one game. Entity sets are slices so that
// iteration order, and with it first-found tie-breaking, is stable.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Enemies     []*component.Enemy
	Projectiles []*component.Projectile
	Hostiles    []*component.HostileProjectile
	Player      *component.Player
	Wave        *component.Wave
	GameState   component.GameState
	Won         bool
	Ledger      component.DamageLedger

	scratch uint32
}

func NewECS(gold, lives int) *ECS {
	return &ECS{
		NextID: 1,
		Player: &component.Player{
			Gold:  gold,
			Lives: lives,
			Wave:  1,
		},
		GameState: component.BuildState,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// NextScratchTag returns a tag no enemy carries yet.
func (ecs *ECS) NextScratchTag() uint32 {
	ecs.scratch++
	if ecs.scratch == 0 {
		for _, e := range ecs.Enemies {
			e.Scratch = 0
		}
		ecs.scratch = 1
	}
	return ecs.scratch
}

func (ecs *ECS) AddEnemy(e *component.Enemy) {
	if e.ID == 0 {
		e.ID = ecs.NewEntity()
	}
	ecs.Enemies = append(ecs.Enemies, e)
}

func (ecs *ECS) AddProjectile(p *component.Projectile) {
	p.ID = ecs.NewEntity()
	ecs.Projectiles = append(ecs.Projectiles, p)
}

func (ecs *ECS) AddHostile(h *component.HostileProjectile) {
	h.ID = ecs.NewEntity()
	ecs.Hostiles = append(ecs.Hostiles, h)
}

// HasLiveEnemies reports whether any enemy can still be targeted.
func (ecs *ECS) HasLiveEnemies() bool {
	for _, e := range ecs.Enemies {
		if e.Alive() {
			return true
		}
	}
	return false
}

// CompactProjectiles drops finished projectiles and hostile shots in place.
func (ecs *ECS) CompactProjectiles() {
	ps := ecs.Projectiles[:0]
	for _, p := range ecs.Projectiles {
		if !p.Done {
			ps = append(ps, p)
		}
	}
	clear(ecs.Projectiles[len(ps):])
	ecs.Projectiles = ps

	hs := ecs.Hostiles[:0]
	for _, h := range ecs.Hostiles {
		if !h.Done {
			hs = append(hs, h)
		}
	}
	clear(ecs.Hostiles[len(hs):])
	ecs.Hostiles = hs
}

// ClearProjectiles removes every projectile and hostile shot.
func (ecs *ECS) ClearProjectiles() {
	ecs.Projectiles = nil
	ecs.Hostiles = nil
}
