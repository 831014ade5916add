// internal/component/game_state.go
package component

// GameState is the top-level phase of a game.
type GameState int

const (
	BuildState GameState = iota
	WaveState
	DeadState
)

func (s GameState) String() string {
	switch s {
	case BuildState:
		return "build"
	case WaveState:
		return "wave"
	case DeadState:
		return "dead"
	default:
		return "unknown"
	}
}
