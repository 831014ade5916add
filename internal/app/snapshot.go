// internal/app/snapshot.go
package app

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
)

// Snapshot is a read-only copy of everything a presentation layer draws.
type Snapshot struct {
	State    component.GameState
	Won      bool
	FastMode bool
	GameTime float64

	Gold  int
	Lives int
	Wave  int // next wave while building, running wave otherwise

	WaveTimer    float64
	WaveDuration float64
	WaveProgress float64

	Enemies     []EnemyView
	Projectiles []ProjectileView
	Hostiles    []HostileView
	Turrets     []TurretView // row-major
	Ledger      component.DamageLedger
}

type EnemyView struct {
	ID     types.EntityID
	Tier   int
	Color  string
	Pos    geom.Vec
	Size   float64
	T      float64
	HP     float64
	MaxHP  float64
	Cold   float64
	Burn   float64
	Ranged bool
}

type ProjectileView struct {
	ID     types.EntityID
	Source defs.Archetype
	Pos    geom.Vec
	Vel    geom.Vec
	Radius float64
	Bomb   bool
	Fire   bool
	Laser  float64 // beam length, 0 for ordinary shots
}

type HostileView struct {
	ID  types.EntityID
	Pos geom.Vec
}

type TurretView struct {
	ID        types.EntityID
	Archetype defs.Archetype
	X, Y      int
	Pos       geom.Vec
	HP        float64
	MaxHP     float64
	Dead      bool
	Cooldown  float64
	Charge    float64
	Heading   float64
	Range     float64 // pixels
	MinRange  float64 // pixels
	Upgrades  []defs.Upgrade
	Invested  int
	Refund    int
	Stats     defs.Stats
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	s := Snapshot{
		State:    ecs.GameState,
		Won:      ecs.Won,
		FastMode: g.fastMode,
		GameTime: ecs.GameTime,
		Gold:     ecs.Player.Gold,
		Lives:    ecs.Player.Lives,
		Wave:     ecs.Player.Wave,
		Ledger:   ecs.Ledger,
	}
	if w := ecs.Wave; w != nil {
		s.WaveTimer = w.Timer
		s.WaveDuration = w.Duration
		s.WaveProgress = w.Progress()
	}

	s.Enemies = make([]EnemyView, 0, len(ecs.Enemies))
	for _, e := range ecs.Enemies {
		if !e.Alive() {
			continue
		}
		s.Enemies = append(s.Enemies, EnemyView{
			ID: e.ID, Tier: e.Tier, Color: e.Color, Pos: e.Pos, Size: e.Size, T: e.T,
			HP: e.HP, MaxHP: e.MaxHP, Cold: e.Cold, Burn: e.Burn, Ranged: e.Ranged != nil,
		})
	}
	s.Projectiles = make([]ProjectileView, 0, len(ecs.Projectiles))
	for _, p := range ecs.Projectiles {
		if p.Done {
			continue
		}
		s.Projectiles = append(s.Projectiles, ProjectileView{
			ID: p.ID, Source: p.Source, Pos: p.Pos, Vel: p.Vel, Radius: p.Radius,
			Bomb: p.Bomb != nil, Fire: p.Fire != nil, Laser: p.LaserLength,
		})
	}
	s.Hostiles = make([]HostileView, 0, len(ecs.Hostiles))
	for _, h := range ecs.Hostiles {
		if !h.Done {
			s.Hostiles = append(s.Hostiles, HostileView{ID: h.ID, Pos: h.Pos})
		}
	}

	g.Level.ForEachTurret(func(t *component.Turret) {
		s.Turrets = append(s.Turrets, g.turretView(t))
	})
	return s
}

func (g *Game) turretView(t *component.Turret) TurretView {
	cs := g.Level.CellSize()
	return TurretView{
		ID:        t.ID,
		Archetype: t.Archetype,
		X:         t.X,
		Y:         t.Y,
		Pos:       t.Pos,
		HP:        t.HP,
		MaxHP:     t.MaxHP,
		Dead:      t.Dead,
		Cooldown:  t.Cooldown,
		Charge:    t.Charge,
		Heading:   t.Heading,
		Range:     t.Stats.Range * cs,
		MinRange:  t.Stats.MinRange * cs,
		Upgrades:  t.Upgrades.List(),
		Invested:  t.Invested,
		Refund:    g.Refund(t),
		Stats:     t.Stats,
	}
}

// TurretAt returns a view of the turret on (x, y).
func (g *Game) TurretAt(x, y int) (TurretView, bool) {
	t := g.Level.Get(x, y)
	if t == nil {
		return TurretView{}, false
	}
	return g.turretView(t), true
}

// Layout is the static part of the playfield. It only changes through
// EditPath.
type Layout struct {
	CellsX, CellsY int
	CellSize       float64
	Width, Height  float64
	Blocked        [][]bool // [y][x]
	Route          []geom.Vec
	Control        []geom.Vec
}

func (g *Game) Layout() Layout {
	w, h := g.Level.Bounds()
	route := g.Level.Linear().Points
	return Layout{
		CellsX:   g.Level.Width(),
		CellsY:   g.Level.Height(),
		CellSize: g.Level.CellSize(),
		Width:    w,
		Height:   h,
		Blocked:  g.Level.BlockedCells(),
		Route:    append([]geom.Vec(nil), route...),
		Control:  g.Level.Path().Points(),
	}
}
