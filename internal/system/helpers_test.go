package system

import (
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/level"
	"go-path-defense/internal/utils"
	"go-path-defense/pkg/geom"
)

// world is a 500x300 field (10x6 cells) with a straight path along y=125,
// which blocks row 2.
type world struct {
	ecs    *entity.ECS
	level  *level.Level
	tables *defs.Tables
	sim    config.SimulationConfig
	rng    *utils.PRNGService
	events *event.Dispatcher
}

func newWorld(t *testing.T) *world {
	t.Helper()
	cfg := config.Default()
	cfg.Field.Width = 500
	cfg.Field.Height = 300
	cfg.Field.BlockSamples = 200
	lvl, err := level.New([]geom.Vec{geom.V(0, 125), geom.V(500, 125)}, cfg.Field)
	if err != nil {
		t.Fatalf("level.New: %v", err)
	}
	return &world{
		ecs:    entity.NewECS(100, 100),
		level:  lvl,
		tables: defs.MustDefault(),
		sim:    cfg.Simulation,
		rng:    utils.NewPRNGService(7),
		events: event.NewDispatcher(),
	}
}

func (w *world) enemy(pos geom.Vec, progress, hp float64) *component.Enemy {
	e := &component.Enemy{T: progress, Pos: pos, HP: hp, MaxHP: hp, Size: 8, Speed: 1, Gold: 3}
	w.ecs.AddEnemy(e)
	return e
}

func (w *world) turret(t *testing.T, a defs.Archetype, x, y int) *component.Turret {
	t.Helper()
	tur := component.NewTurret(w.ecs.NewEntity(), w.tables.Turret(a), x, y, w.level.CellCenter(x, y))
	if !w.level.Place(x, y, tur) {
		t.Fatalf("cannot place %s at (%d,%d)", a, x, y)
	}
	return tur
}

func (w *world) upgrade(t *testing.T, tur *component.Turret, u defs.Upgrade) {
	t.Helper()
	up, err := w.tables.CheckUpgrade(tur.Archetype, tur.Upgrades, u)
	if err != nil {
		t.Fatalf("upgrade %s: %v", u, err)
	}
	tur.ApplyUpgrade(w.tables.Turret(tur.Archetype), *up)
}

func (w *world) combat() *CombatSystem {
	return NewCombatSystem(w.ecs, w.level, w.sim, w.rng)
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
