package system

import (
	"math"
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/pkg/geom"
)

func TestSpeedFactor(t *testing.T) {
	cases := []struct{ cold, want float64 }{
		{0, 1},
		{1, 0.5},
		{10, 1.0 / 3.0},
		{-1, 1},
	}
	for _, c := range cases {
		if got := SpeedFactor(c.cold, 1.0/3.0); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("SpeedFactor(%v) = %v, want %v", c.cold, got, c.want)
		}
	}
}

func TestMovementAdvancesAndDecaysCold(t *testing.T) {
	w := newWorld(t)
	m := NewMovementSystem(w.ecs, w.level, w.sim, w.rng, w.events)
	e := w.enemy(geom.V(0, 125), 0.5, 5)
	e.Speed = 2
	e.Cold = 1

	m.Update(0.1)

	// factor 0.5: 0.1 * 2 * 0.5 * 0.01
	if math.Abs(e.T-0.501) > 1e-12 {
		t.Fatalf("T = %v, want 0.501", e.T)
	}
	if math.Abs(e.Cold-0.95) > 1e-12 {
		t.Fatalf("Cold = %v, want 0.95", e.Cold)
	}
	if e.Pos != w.level.PositionAt(e.T) {
		t.Fatalf("position not taken from the polyline")
	}
}

func TestLeakCostsLivesNotGold(t *testing.T) {
	w := newWorld(t)
	m := NewMovementSystem(w.ecs, w.level, w.sim, w.rng, w.events)
	var leaked []event.EnemyData
	w.events.Subscribe(event.EnemyLeaked, event.ListenerFunc(func(e event.Event) {
		leaked = append(leaked, e.Data.(event.EnemyData))
	}))
	e := w.enemy(geom.V(0, 125), 0.999, 7.2)
	e.Speed = 2

	m.Update(0.1)

	if !e.Leaked || e.HP != 0 || e.Gold != 0 {
		t.Fatalf("leaked enemy %+v", e)
	}
	if w.ecs.Player.Lives != 92 {
		t.Fatalf("lives = %d, want 92", w.ecs.Player.Lives)
	}
	if len(leaked) != 1 || leaked[0].Loss != 8 {
		t.Fatalf("leak events = %+v", leaked)
	}

	NewReaperSystem(w.ecs, w.events).Update()
	if len(w.ecs.Enemies) != 0 || w.ecs.Player.Gold != 100 {
		t.Fatalf("leaked enemy paid out or stayed: gold=%d enemies=%d", w.ecs.Player.Gold, len(w.ecs.Enemies))
	}
}

func TestLeakFrozenWhenDead(t *testing.T) {
	w := newWorld(t)
	m := NewMovementSystem(w.ecs, w.level, w.sim, w.rng, w.events)
	w.ecs.Player.Lives = 0
	w.ecs.GameState = component.DeadState
	w.enemy(geom.V(0, 125), 0.9999, 50).Speed = 5

	m.Update(0.1)
	if w.ecs.Player.Lives != 0 {
		t.Fatalf("lives changed after death: %d", w.ecs.Player.Lives)
	}

	w.ecs.GameState = component.WaveState
	w.ecs.Player.Lives = 3
	w.enemy(geom.V(0, 125), 0.9999, 50).Speed = 5
	m.Update(0.1)
	if w.ecs.Player.Lives != 0 {
		t.Fatalf("lives must clamp at zero, got %d", w.ecs.Player.Lives)
	}
}

func TestRangedEnemyShoots(t *testing.T) {
	w := newWorld(t)
	m := NewMovementSystem(w.ecs, w.level, w.sim, w.rng, w.events)
	e := w.enemy(geom.V(0, 125), 0.2, 5)
	e.Ranged = &component.RangedAttack{Cooldown: 0.05, Interval: 1, Damage: 2}

	m.Update(0.1)
	if len(w.ecs.Hostiles) != 1 {
		t.Fatalf("hostiles = %d, want 1", len(w.ecs.Hostiles))
	}
	h := w.ecs.Hostiles[0]
	if math.Abs(h.Vel.Len()-w.sim.HostileSpeed) > 1e-9 || h.Damage != 2 {
		t.Fatalf("hostile %+v", h)
	}
	if math.Abs(e.Ranged.Cooldown-0.95) > 1e-9 {
		t.Fatalf("cooldown = %v, want 0.95", e.Ranged.Cooldown)
	}
}

func TestBurnDealsFlameDamage(t *testing.T) {
	w := newWorld(t)
	s := NewStatusEffectSystem(w.ecs, w.sim)
	e := w.enemy(geom.V(0, 125), 0.2, 5)
	e.Burn = 10

	s.Update(0.016)

	if math.Abs(e.Burn-9.8) > 1e-12 || math.Abs(e.HP-4.8) > 1e-12 {
		t.Fatalf("burn=%v hp=%v", e.Burn, e.HP)
	}
	if math.Abs(w.ecs.Ledger.Get(defs.Flame)-0.2) > 1e-12 {
		t.Fatalf("flame ledger = %v", w.ecs.Ledger.Get(defs.Flame))
	}

	e.Burn = w.sim.BurnEpsilon / 2
	s.Update(0.016)
	if e.Burn != 0 {
		t.Fatalf("tiny burn should be dropped, got %v", e.Burn)
	}
}

func TestReaperPaysKills(t *testing.T) {
	w := newWorld(t)
	var killed int
	w.events.Subscribe(event.EnemyKilled, event.ListenerFunc(func(event.Event) { killed++ }))
	dead := w.enemy(geom.V(0, 125), 0.2, 5)
	dead.HP = -1
	alive := w.enemy(geom.V(0, 125), 0.3, 5)
	w.ecs.AddProjectile(&component.Projectile{Done: true})
	w.ecs.AddProjectile(&component.Projectile{})

	NewReaperSystem(w.ecs, w.events).Update()

	if w.ecs.Player.Gold != 103 || killed != 1 {
		t.Fatalf("gold=%d killed=%d", w.ecs.Player.Gold, killed)
	}
	if len(w.ecs.Enemies) != 1 || w.ecs.Enemies[0] != alive {
		t.Fatalf("enemies = %v", w.ecs.Enemies)
	}
	if len(w.ecs.Projectiles) != 1 {
		t.Fatalf("finished projectile not removed")
	}
}
