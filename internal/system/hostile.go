// internal/system/hostile.go
package system

import (
	"go-path-defense/internal/entity"
	"go-path-defense/internal/level"
)

// HostileSystem moves enemy shots and lets them strike turrets.
type HostileSystem struct {
	ecs   *entity.ECS
	level *level.Level
}

func NewHostileSystem(ecs *entity.ECS, lvl *level.Level) *HostileSystem {
	return &HostileSystem{ecs: ecs, level: lvl}
}

func (s *HostileSystem) Update(deltaTime float64) {
	for _, h := range s.ecs.Hostiles {
		if h.Done {
			continue
		}
		h.Pos = h.Pos.Add(h.Vel.Scale(deltaTime))
		if !s.level.InField(h.Pos) {
			h.Done = true
			continue
		}
		t := s.level.Get(s.level.CellAt(h.Pos))
		if t == nil || t.Dead {
			continue
		}
		DamageTurret(t, h.Damage*t.Stats.DamageTaken)
		h.Done = true
	}
}
