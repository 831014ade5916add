package system

import (
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/event"
	"go-path-defense/internal/utils"
)

func TestGenerateSchedule(t *testing.T) {
	w := newWorld(t)
	ws := NewWaveSystem(w.ecs, w.level, w.tables, w.rng, w.events)
	for _, n := range []int{1, 5, 12, 30} {
		wave := ws.Generate(n)
		if wave.Number != n || wave.Duration != w.tables.Waves.Duration(n) {
			t.Fatalf("wave %d header %+v", n, wave)
		}
		if len(wave.Schedule) == 0 {
			t.Fatalf("wave %d is empty", n)
		}
		prev := -1.0
		for i, entry := range wave.Schedule {
			if entry.Time < prev {
				t.Fatalf("wave %d entry %d goes back in time", n, i)
			}
			if entry.Time >= wave.Duration {
				t.Fatalf("wave %d entry %d at %v past duration %v", n, i, entry.Time, wave.Duration)
			}
			if entry.Enemy.Tier < 0 || entry.Enemy.Tier > w.tables.TopTier() {
				t.Fatalf("tier %d out of range", entry.Enemy.Tier)
			}
			prev = entry.Time
		}
	}
}

func TestGenerateBaselineAndQuota(t *testing.T) {
	w := newWorld(t)
	ws := NewWaveSystem(w.ecs, w.level, w.tables, w.rng, w.events)
	tuning := w.tables.Waves
	n := 40
	wave := ws.Generate(n)

	top := 0
	for i, entry := range wave.Schedule {
		if i%tuning.BaselineEvery == tuning.BaselineEvery-1 && entry.Enemy.Tier != 0 {
			t.Fatalf("spawn %d should be forced to tier 0", i)
		}
		if entry.Enemy.Tier == w.tables.TopTier() {
			top++
		}
	}
	if top > tuning.TopQuota(n) {
		t.Fatalf("top tier spawned %d times, quota %d", top, tuning.TopQuota(n))
	}
}

func TestGenerateVariants(t *testing.T) {
	w := newWorld(t)
	ws := NewWaveSystem(w.ecs, w.level, w.tables, w.rng, w.events)
	tuning := w.tables.Waves

	shooty := tuning.ShootyOffset
	if !tuning.Variant(shooty).Shooty {
		t.Fatalf("wave %d should be shooty", shooty)
	}
	for _, entry := range ws.Generate(shooty).Schedule {
		if entry.Enemy.Ranged == nil {
			t.Fatalf("shooty wave spawned an enemy without a ranged attack")
		}
	}

	fast := tuning.FastOffset
	for _, entry := range ws.Generate(fast).Schedule {
		want := w.tables.Enemies[entry.Enemy.Tier].Speed * tuning.FastSpeedMul
		if entry.Enemy.Speed != want {
			t.Fatalf("fast wave speed %v, want %v", entry.Enemy.Speed, want)
		}
	}
}

func TestGenerateIsSeeded(t *testing.T) {
	w := newWorld(t)
	a := NewWaveSystem(w.ecs, w.level, w.tables, utils.NewPRNGService(99), w.events).Generate(15)
	b := NewWaveSystem(w.ecs, w.level, w.tables, utils.NewPRNGService(99), w.events).Generate(15)
	if len(a.Schedule) != len(b.Schedule) {
		t.Fatalf("lengths differ")
	}
	for i := range a.Schedule {
		if a.Schedule[i].Time != b.Schedule[i].Time || a.Schedule[i].Enemy.Tier != b.Schedule[i].Enemy.Tier {
			t.Fatalf("entry %d differs", i)
		}
	}
}

func TestWaveRunsToBuildState(t *testing.T) {
	w := newWorld(t)
	ws := NewWaveSystem(w.ecs, w.level, w.tables, w.rng, w.events)
	ss := NewStateSystem(w.ecs, ws, 0, w.events)
	var ended []event.WaveData
	w.events.Subscribe(event.WaveEnded, event.ListenerFunc(func(e event.Event) {
		ended = append(ended, e.Data.(event.WaveData))
	}))

	if !ss.SwitchToWaveState() {
		t.Fatalf("could not start wave from build")
	}
	if ss.SwitchToWaveState() {
		t.Fatalf("started a second wave while one is running")
	}
	wave := w.ecs.Wave
	total := len(wave.Schedule)
	duration := wave.Duration

	elapsed := 0.0
	for w.ecs.GameState == component.WaveState && elapsed < duration+1 {
		ws.Update(0.05)
		elapsed += 0.05
	}

	if w.ecs.GameState != component.BuildState {
		t.Fatalf("wave did not end, state %s", w.ecs.GameState)
	}
	if elapsed < duration {
		t.Fatalf("wave ended at %v before its duration %v", elapsed, duration)
	}
	if len(w.ecs.Enemies) != total {
		t.Fatalf("spawned %d of %d", len(w.ecs.Enemies), total)
	}
	if len(ended) != 1 {
		t.Fatalf("WaveEnded dispatched %d times", len(ended))
	}
	if w.ecs.Player.Wave != 2 || w.ecs.Player.Gold != 100+w.tables.Waves.Bonus(1) {
		t.Fatalf("after wave: %+v", w.ecs.Player)
	}
	for _, e := range w.ecs.Enemies {
		if e.Pos != w.level.PositionAt(0) || e.ID == 0 {
			t.Fatalf("spawned enemy %+v", e)
		}
	}
}

func TestStateDeathAndWin(t *testing.T) {
	w := newWorld(t)
	ws := NewWaveSystem(w.ecs, w.level, w.tables, w.rng, w.events)
	ss := NewStateSystem(w.ecs, ws, 1, w.events)
	died := 0
	w.events.Subscribe(event.PlayerDied, event.ListenerFunc(func(event.Event) { died++ }))

	w.ecs.Player.Wave = 2
	ss.Update()
	if !w.ecs.Won {
		t.Fatalf("passing the final wave with no enemies should win")
	}

	w.ecs.Player.Lives = 0
	ss.Update()
	ss.Update()
	if ss.Current() != component.DeadState || died != 1 {
		t.Fatalf("state=%s died=%d", ss.Current(), died)
	}
	if ss.SwitchToWaveState() {
		t.Fatalf("dead game started a wave")
	}
}
