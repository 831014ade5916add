// internal/component/player.go
package component

// Player holds the economy and the life total.
type Player struct {
	Gold  int
	Lives int
	Wave  int // index of the next wave to start, from 1
}
