// internal/system/status_effect.go
package system

import (
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
)

// StatusEffectSystem burns enemies. Each tick a fixed share of the burn
// reservoir is dealt as damage and removed from it.
type StatusEffectSystem struct {
	ecs *entity.ECS
	sim config.SimulationConfig
}

func NewStatusEffectSystem(ecs *entity.ECS, sim config.SimulationConfig) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, sim: sim}
}

func (s *StatusEffectSystem) Update(deltaTime float64) {
	for _, e := range s.ecs.Enemies {
		if !e.Alive() || e.Burn <= 0 {
			continue
		}
		if e.Burn < s.sim.BurnEpsilon {
			e.Burn = 0
			continue
		}
		amount := e.Burn * s.sim.BurnFraction
		e.Burn -= amount
		ApplyDamage(s.ecs, e, amount, defs.Flame)
	}
}
