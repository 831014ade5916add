// internal/system/reaper.go
package system

import (
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
)

// ReaperSystem removes finished entities. Killed enemies pay out their gold
// here; leaked ones were already charged by the movement system.
type ReaperSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewReaperSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ReaperSystem {
	return &ReaperSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *ReaperSystem) Update() {
	kept := s.ecs.Enemies[:0]
	for _, e := range s.ecs.Enemies {
		switch {
		case e.Leaked:
		case e.HP <= 0:
			s.ecs.Player.Gold += e.Gold
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemyKilled,
				Data: event.EnemyData{ID: e.ID, Tier: e.Tier, Gold: e.Gold},
			})
		default:
			kept = append(kept, e)
		}
	}
	clear(s.ecs.Enemies[len(kept):])
	s.ecs.Enemies = kept
	s.ecs.CompactProjectiles()
}
