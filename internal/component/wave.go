// internal/component/wave.go
package component

import "go-path-defense/internal/defs"

// Wave is a running wave: its schedule and timer.
type Wave struct {
	Number   int
	Duration float64
	Timer    float64
	Variant  defs.Variant
	Schedule []SpawnEntry // sorted by Time, consumed from the front
}

// SpawnEntry releases Enemy once the wave timer reaches Time.
type SpawnEntry struct {
	Time  float64
	Enemy *Enemy
}

// Progress is Timer/Duration capped just below 1.
func (w *Wave) Progress() float64 {
	if w == nil || w.Duration <= 0 {
		return 0
	}
	return min(w.Timer/w.Duration, 0.999)
}
