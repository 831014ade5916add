// internal/app/game.go
package app

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/level"
	"go-path-defense/internal/system"
	"go-path-defense/internal/utils"
	"go-path-defense/pkg/geom"
)

// ErrPathLocked is returned by EditPath outside a quiet build phase.
var ErrPathLocked = errors.New("path can only be edited in build with no enemies alive")

// Game holds one simulation: the level, the entity world, the systems that
// update it and the player actions that change it between ticks.
type Game struct {
	Config          *config.Config
	Tables          *defs.Tables
	Level           *level.Level
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Log             *zap.Logger

	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	StatusEffectSystem *system.StatusEffectSystem
	ProjectileSystem   *system.ProjectileSystem
	HostileSystem      *system.HostileSystem
	CombatSystem       *system.CombatSystem
	ReaperSystem       *system.ReaperSystem
	StateSystem        *system.StateSystem

	fastMode bool
}

type options struct {
	logger  *zap.Logger
	seed    int64
	hasSeed bool
}

// Option configures NewGame.
type Option func(*options)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSeed overrides the configured random seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.hasSeed = true
	}
}

// NewGame builds a game from settings and tables. Nil arguments fall back
// to the defaults.
func NewGame(cfg *config.Config, tables *defs.Tables, opts ...Option) (*Game, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if tables == nil {
		var err error
		if tables, err = defs.Default(); err != nil {
			return nil, fmt.Errorf("new game: %w", err)
		}
	}
	points, err := cfg.PathPoints()
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	lvl, err := level.New(points, cfg.Field)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	seed := cfg.Simulation.Seed
	if o.hasSeed {
		seed = o.seed
	}
	sim := cfg.Simulation
	ecs := entity.NewECS(cfg.Economy.StartGold, cfg.Economy.Lives)
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		Config:          cfg,
		Tables:          tables,
		Level:           lvl,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Log:             o.logger,
	}
	g.WaveSystem = system.NewWaveSystem(ecs, lvl, tables, rng, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs, lvl, sim, rng, eventDispatcher)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs, sim)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, lvl, sim)
	g.HostileSystem = system.NewHostileSystem(ecs, lvl)
	g.CombatSystem = system.NewCombatSystem(ecs, lvl, sim, rng)
	g.ReaperSystem = system.NewReaperSystem(ecs, eventDispatcher)
	g.StateSystem = system.NewStateSystem(ecs, g.WaveSystem, sim.FinalWave, eventDispatcher)

	listener := &GameEventListener{log: g.Log}
	eventDispatcher.SubscribeAll(listener,
		event.WaveStarted, event.WaveEnded, event.PlayerDied, event.PathEdited,
		event.EnemyKilled, event.EnemyLeaked,
		event.TurretPlaced, event.TurretUpgraded, event.TurretSold,
	)

	g.Log.Info("game created",
		zap.Int64("seed", seed),
		zap.Int("cells_x", lvl.Width()),
		zap.Int("cells_y", lvl.Height()),
		zap.Int("path_points", len(points)),
	)
	return g, nil
}

// Advance moves the simulation forward by one host frame. dt is clamped to
// the configured maximum; fast mode repeats the whole tick with the same dt.
func (g *Game) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	dt = min(dt, g.Config.Simulation.MaxDeltaTime)
	repeats := 1
	if g.fastMode {
		repeats = g.Config.Simulation.FastMultiplier
	}
	for range repeats {
		g.tick(dt)
	}
}

func (g *Game) tick(dt float64) {
	g.ECS.GameTime += dt
	g.WaveSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.StatusEffectSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.HostileSystem.Update(dt)
	g.CombatSystem.Update(dt)
	g.ReaperSystem.Update()
	g.StateSystem.Update()
}

// StartWave begins the next wave. It does nothing outside build.
func (g *Game) StartWave() bool {
	return g.StateSystem.SwitchToWaveState()
}

// SetFastMode toggles repeating each tick FastMultiplier times.
func (g *Game) SetFastMode(on bool) {
	g.fastMode = on
}

func (g *Game) FastMode() bool {
	return g.fastMode
}

func (g *Game) State() component.GameState {
	return g.ECS.GameState
}

// Won reports whether the final wave has been cleared.
func (g *Game) Won() bool {
	return g.ECS.Won
}

// EditPath replaces the enemy route. Only allowed in build with no live
// enemies. Turrets standing on newly blocked cells are sold at the normal
// refund.
func (g *Game) EditPath(points []geom.Vec) error {
	if g.ECS.GameState != component.BuildState || g.ECS.HasLiveEnemies() {
		return ErrPathLocked
	}
	evicted, err := g.Level.Rebuild(points)
	if err != nil {
		return fmt.Errorf("edit path: %w", err)
	}
	for _, t := range evicted {
		g.refund(t)
	}
	g.ECS.Enemies = nil
	g.ECS.ClearProjectiles()
	g.EventDispatcher.Dispatch(event.Event{Type: event.PathEdited, Data: len(evicted)})
	return nil
}
