// internal/system/state.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
)

// StateSystem owns the build → wave → build/dead machine.
type StateSystem struct {
	ecs             *entity.ECS
	waves           *WaveSystem
	finalWave       int
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, waves *WaveSystem, finalWave int, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		waves:           waves,
		finalWave:       finalWave,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.WaveEnded, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type != event.WaveEnded {
		return
	}
	data, _ := e.Data.(event.WaveData)
	s.SwitchToBuildState(data.Bonus)
}

// Update moves the game to dead once the lives run out and tracks the win
// flag.
func (s *StateSystem) Update() {
	if s.ecs.Player.Lives <= 0 && s.ecs.GameState != component.DeadState {
		s.ecs.GameState = component.DeadState
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDied, Data: event.WaveData{Wave: s.ecs.Player.Wave}})
	}
	if s.finalWave > 0 && !s.ecs.Won && s.ecs.GameState != component.DeadState &&
		s.ecs.Player.Wave > s.finalWave && !s.ecs.HasLiveEnemies() {
		s.ecs.Won = true
	}
}

// SwitchToBuildState ends the running wave and pays the build bonus.
func (s *StateSystem) SwitchToBuildState(bonus int) {
	if s.ecs.GameState != component.WaveState {
		return
	}
	s.ecs.GameState = component.BuildState
	s.ecs.Wave = nil
	s.ecs.Player.Wave++
	s.ecs.Player.Gold += bonus
}

// SwitchToWaveState starts the next wave. It does nothing outside build.
func (s *StateSystem) SwitchToWaveState() bool {
	if s.ecs.GameState != component.BuildState {
		return false
	}
	n := s.ecs.Player.Wave
	s.ecs.Wave = s.waves.Generate(n)
	s.ecs.GameState = component.WaveState
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Wave: n}})
	return true
}

func (s *StateSystem) Current() component.GameState {
	return s.ecs.GameState
}
