// internal/system/movement.go
package system

import (
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/level"
	"go-path-defense/internal/utils"
	"go-path-defense/pkg/geom"
	pkgutils "go-path-defense/pkg/utils"
)

// MovementSystem walks enemies along the path, runs their ranged attacks and
// charges the player for enemies that reach the goal.
type MovementSystem struct {
	ecs             *entity.ECS
	level           *level.Level
	sim             config.SimulationConfig
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, lvl *level.Level, sim config.SimulationConfig, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{
		ecs:             ecs,
		level:           lvl,
		sim:             sim,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// SpeedFactor is the share of base speed left to an enemy carrying cold.
func SpeedFactor(cold, floor float64) float64 {
	return max(floor, 1/(1+max(cold, 0)))
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, e := range s.ecs.Enemies {
		if !e.Alive() {
			continue
		}
		factor := SpeedFactor(e.Cold, s.sim.MinSpeedFactor)
		e.T += deltaTime * e.Speed * factor * s.sim.EnemyBaseRate
		e.Cold = pkgutils.Clamp(e.Cold-s.sim.ColdDecay*deltaTime, 0, s.sim.MaxCold)
		e.Pos = s.level.PositionAt(min(e.T, 1))

		if e.T >= 1 {
			s.leak(e)
			continue
		}
		if e.Ranged != nil {
			s.updateRanged(e, deltaTime*factor)
		}
	}
}

func (s *MovementSystem) updateRanged(e *component.Enemy, deltaTime float64) {
	r := e.Ranged
	r.Cooldown -= deltaTime
	if r.Cooldown > 0 {
		return
	}
	r.Cooldown += max(r.Interval, deltaTime)
	s.ecs.AddHostile(&component.HostileProjectile{
		Pos:    e.Pos,
		Vel:    geom.FromAngle(s.rng.Angle(), s.sim.HostileSpeed),
		Damage: r.Damage,
	})
}

// leak charges the player ceil(hp) lives. Nothing changes once the player
// is dead.
func (s *MovementSystem) leak(e *component.Enemy) {
	loss := int(math.Ceil(max(e.HP, 0)))
	if s.ecs.GameState != component.DeadState {
		s.ecs.Player.Lives = max(0, s.ecs.Player.Lives-loss)
	}
	e.HP = 0
	e.Gold = 0
	e.Leaked = true
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyLeaked,
		Data: event.EnemyData{ID: e.ID, Tier: e.Tier, Loss: loss},
	})
}
