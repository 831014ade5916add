package app

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/pkg/curve"
	"go-path-defense/pkg/geom"
)

// straightConfig runs the path along y=125 so that row 2 is blocked and
// rows 0, 1 and 3+ are free.
func straightConfig() *config.Config {
	cfg := config.Default()
	cfg.Level.Path = [][]float64{{0, 125}, {1200, 125}}
	cfg.Field.BlockSamples = 400
	return cfg
}

func newTestGame(t *testing.T, cfg *config.Config, tables *defs.Tables, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{WithSeed(1)}, opts...)
	g, err := NewGame(cfg, tables, opts...)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestNewGameRejectsShortPath(t *testing.T) {
	cfg := config.Default()
	cfg.Level.Path = [][]float64{{10, 10}}
	if _, err := NewGame(cfg, nil); !errors.Is(err, curve.ErrInvalidPath) {
		t.Fatalf("expected ErrInvalidPath, got %v", err)
	}
}

func TestNewGameDefaults(t *testing.T) {
	g := newTestGame(t, nil, nil)
	s := g.Snapshot()
	if s.State != component.BuildState || s.Gold != 20 || s.Lives != 100 || s.Wave != 1 {
		t.Fatalf("initial snapshot %+v", s)
	}
	if g.Level.Width() != 24 || g.Level.Height() != 18 {
		t.Fatalf("grid %dx%d, want 24x18", g.Level.Width(), g.Level.Height())
	}
}

func TestPlaceTurretExactGold(t *testing.T) {
	tables := defs.MustDefault()
	tables.Turret(defs.Basic).Cost = 100
	cfg := straightConfig()
	cfg.Economy.StartGold = 100
	g := newTestGame(t, cfg, tables)

	if !g.PlaceTurret(3, 0, defs.Basic) {
		t.Fatalf("purchase with exact gold failed")
	}
	if g.ECS.Player.Gold != 0 {
		t.Fatalf("gold = %d, want 0", g.ECS.Player.Gold)
	}
	if g.Level.Get(3, 0) == nil {
		t.Fatalf("turret not on the grid")
	}

	g.ECS.Player.Gold = 99
	if g.PlaceTurret(4, 0, defs.Basic) {
		t.Fatalf("purchase with 99 gold succeeded")
	}
	if g.ECS.Player.Gold != 99 || g.Level.Get(4, 0) != nil {
		t.Fatalf("failed purchase changed state")
	}
}

func TestPlaceTurretRejectsBadCells(t *testing.T) {
	cfg := straightConfig()
	cfg.Economy.StartGold = 1000
	g := newTestGame(t, cfg, nil)

	if g.PlaceTurret(3, 2, defs.Basic) {
		t.Fatalf("placed on the path")
	}
	if g.PlaceTurret(-1, 0, defs.Basic) || g.PlaceTurret(0, 99, defs.Basic) {
		t.Fatalf("placed out of bounds")
	}
	if !g.PlaceTurret(3, 0, defs.Wall) {
		t.Fatalf("first placement failed")
	}
	gold := g.ECS.Player.Gold
	if g.PlaceTurret(3, 0, defs.Basic) {
		t.Fatalf("placed on an occupied cell")
	}
	if g.PlaceTurret(4, 0, defs.Archetype(200)) {
		t.Fatalf("placed an unknown archetype")
	}
	if g.ECS.Player.Gold != gold {
		t.Fatalf("rejected placements cost gold")
	}
}

func TestPurchaseUpgradeRejections(t *testing.T) {
	cfg := straightConfig()
	cfg.Economy.StartGold = 1000
	g := newTestGame(t, cfg, nil)
	if !g.PlaceTurret(3, 0, defs.Laser) {
		t.Fatalf("place laser")
	}
	tur := g.Level.Get(3, 0)

	reject := func(name string, u defs.Upgrade) {
		t.Helper()
		gold, owned := g.ECS.Player.Gold, tur.Upgrades
		if g.PurchaseUpgrade(3, 0, u) {
			t.Fatalf("%s: upgrade %s accepted", name, u)
		}
		if g.ECS.Player.Gold != gold || tur.Upgrades != owned {
			t.Fatalf("%s: rejected upgrade changed state", name)
		}
	}

	reject("not offered", defs.UpgradeTriShot)
	if !g.PurchaseUpgrade(3, 0, defs.UpgradeSweepCW) {
		t.Fatalf("sweep_cw rejected")
	}
	reject("owned", defs.UpgradeSweepCW)
	reject("exclusive", defs.UpgradeSweepCCW)

	if !g.PurchaseUpgrade(3, 0, defs.UpgradeLaserPower) || !g.PurchaseUpgrade(3, 0, defs.UpgradeLaserRange) {
		t.Fatalf("regular upgrades rejected")
	}
	reject("cap", defs.UpgradeLaserTurn)

	def := g.Tables.Turret(defs.Laser)
	power, _ := def.Upgrade(defs.UpgradeLaserPower)
	rng, _ := def.Upgrade(defs.UpgradeLaserRange)
	cw, _ := def.Upgrade(defs.UpgradeSweepCW)
	if want := def.Cost + power.Cost + rng.Cost + cw.Cost; tur.Invested != want {
		t.Fatalf("invested = %d, want %d", tur.Invested, want)
	}
	if tur.Stats.DPS != def.Stats.DPS*2 || tur.Stats.Range != def.Stats.Range+1 {
		t.Fatalf("stats not recomputed: %+v", tur.Stats)
	}

	if g.PurchaseUpgrade(9, 9, defs.UpgradeRange) {
		t.Fatalf("upgraded an empty cell")
	}
}

func TestPurchaseUpgradeNeedsGold(t *testing.T) {
	cfg := straightConfig()
	g := newTestGame(t, cfg, nil)
	if !g.PlaceTurret(3, 0, defs.Basic) {
		t.Fatalf("place basic")
	}
	tri, _ := g.Tables.Turret(defs.Basic).Upgrade(defs.UpgradeTriShot)
	g.ECS.Player.Gold = tri.Cost - 1
	if g.PurchaseUpgrade(3, 0, defs.UpgradeTriShot) {
		t.Fatalf("upgrade bought without gold")
	}
	g.ECS.Player.Gold = tri.Cost
	if !g.PurchaseUpgrade(3, 0, defs.UpgradeTriShot) || g.ECS.Player.Gold != 0 {
		t.Fatalf("upgrade with exact gold failed, gold=%d", g.ECS.Player.Gold)
	}
}

func TestSellRefund(t *testing.T) {
	cfg := straightConfig()
	cfg.Economy.StartGold = 1000
	g := newTestGame(t, cfg, nil)
	if !g.PlaceTurret(3, 0, defs.Zapper) {
		t.Fatalf("place zapper")
	}
	g.Level.Get(3, 0).Invested = 200
	gold := g.ECS.Player.Gold

	if !g.SellTurret(3, 0) {
		t.Fatalf("sell failed")
	}
	if got := g.ECS.Player.Gold - gold; got != 160 {
		t.Fatalf("refund = %d, want 160", got)
	}
	if !g.Level.IsPlaceable(3, 0) {
		t.Fatalf("cell not freed")
	}
	if g.SellTurret(3, 0) {
		t.Fatalf("sold an empty cell")
	}
}

func TestAdvanceClampsAndRepeats(t *testing.T) {
	g := newTestGame(t, straightConfig(), nil)
	g.Advance(1)
	if g.ECS.GameTime != g.Config.Simulation.MaxDeltaTime {
		t.Fatalf("GameTime = %v, want clamp %v", g.ECS.GameTime, g.Config.Simulation.MaxDeltaTime)
	}

	g = newTestGame(t, straightConfig(), nil)
	g.SetFastMode(true)
	if !g.FastMode() {
		t.Fatalf("fast mode not set")
	}
	g.Advance(0.05)
	want := 0.05 * float64(g.Config.Simulation.FastMultiplier)
	if d := g.ECS.GameTime - want; d > 1e-9 || d < -1e-9 {
		t.Fatalf("GameTime = %v, want %v", g.ECS.GameTime, want)
	}

	g.Advance(0)
	g.Advance(-1)
	if d := g.ECS.GameTime - want; d > 1e-9 || d < -1e-9 {
		t.Fatalf("non-positive dt advanced the clock")
	}
}

func TestWaveCycle(t *testing.T) {
	cfg := straightConfig()
	g := newTestGame(t, cfg, nil)

	if !g.StartWave() || g.State() != component.WaveState {
		t.Fatalf("StartWave from build failed")
	}
	if g.StartWave() {
		t.Fatalf("StartWave during a wave succeeded")
	}
	duration := g.ECS.Wave.Duration

	for i := 0; g.State() == component.WaveState && i < 10000; i++ {
		g.Advance(1.0 / 60)
		s := g.Snapshot()
		if s.State == component.WaveState && (s.WaveProgress < 0 || s.WaveProgress > 0.999) {
			t.Fatalf("wave progress %v out of range", s.WaveProgress)
		}
	}
	if g.State() != component.BuildState {
		t.Fatalf("wave never ended, state %s", g.State())
	}
	if g.ECS.GameTime < duration {
		t.Fatalf("wave ended at %v, duration %v", g.ECS.GameTime, duration)
	}
	if g.ECS.Player.Wave != 2 {
		t.Fatalf("wave index = %d, want 2", g.ECS.Player.Wave)
	}
	if g.ECS.Player.Gold < cfg.Economy.StartGold+g.Tables.Waves.Bonus(1) {
		t.Fatalf("build bonus not paid, gold %d", g.ECS.Player.Gold)
	}
}

func TestLedgerNeverDecreases(t *testing.T) {
	cfg := straightConfig()
	cfg.Economy.StartGold = 1000
	g := newTestGame(t, cfg, nil)
	for x, a := range []defs.Archetype{defs.Basic, defs.Slow, defs.Splash, defs.Zapper, defs.Flame, defs.Laser} {
		if !g.PlaceTurret(2+2*x, 1, a) {
			t.Fatalf("place %s", a)
		}
	}
	g.StartWave()

	var prev component.DamageLedger
	for i := 0; i < 600; i++ {
		g.Advance(1.0 / 30)
		for a, v := range g.ECS.Ledger {
			if v < prev[a] {
				t.Fatalf("ledger for %s went down", defs.Archetype(a))
			}
		}
		prev = g.ECS.Ledger
	}
	total := 0.0
	for _, v := range g.ECS.Ledger {
		total += v
	}
	if total == 0 {
		t.Fatalf("turrets next to the path dealt no damage")
	}
}

func TestDeadFreezesPlayerActions(t *testing.T) {
	cfg := straightConfig()
	cfg.Economy.StartGold = 1000
	g := newTestGame(t, cfg, nil)
	g.PlaceTurret(3, 0, defs.Basic)
	g.ECS.Player.Lives = 0
	g.Advance(0.01)

	if g.State() != component.DeadState {
		t.Fatalf("state %s, want dead", g.State())
	}
	gold := g.ECS.Player.Gold
	if g.PlaceTurret(4, 0, defs.Basic) || g.SellTurret(3, 0) || g.PurchaseUpgrade(3, 0, defs.UpgradeRange) || g.StartWave() {
		t.Fatalf("player action accepted while dead")
	}
	if g.ECS.Player.Gold != gold {
		t.Fatalf("gold changed while dead")
	}
}

func TestEditPath(t *testing.T) {
	cfg := straightConfig()
	cfg.Economy.StartGold = 1000
	g := newTestGame(t, cfg, nil)
	g.PlaceTurret(3, 0, defs.Basic)
	g.PlaceTurret(3, 5, defs.Basic)
	gold := g.ECS.Player.Gold

	if err := g.EditPath([]geom.Vec{geom.V(0, 25), geom.V(1200, 25)}); err != nil {
		t.Fatalf("EditPath: %v", err)
	}
	if g.Level.Get(3, 0) != nil || g.Level.Get(3, 5) == nil {
		t.Fatalf("eviction wrong")
	}
	basic := g.Tables.Turret(defs.Basic)
	if want := gold + int(float64(basic.Cost)*cfg.Economy.SellFraction+0.5); g.ECS.Player.Gold != want {
		t.Fatalf("gold = %d, want %d", g.ECS.Player.Gold, want)
	}
	if !g.Level.IsPlaceable(3, 2) {
		t.Fatalf("old path cell still blocked")
	}

	if err := g.EditPath(nil); !errors.Is(err, curve.ErrInvalidPath) {
		t.Fatalf("expected ErrInvalidPath, got %v", err)
	}
	g.StartWave()
	if err := g.EditPath([]geom.Vec{geom.V(0, 125), geom.V(1200, 125)}); !errors.Is(err, ErrPathLocked) {
		t.Fatalf("expected ErrPathLocked, got %v", err)
	}
}

func TestSnapshotTurretsRowMajor(t *testing.T) {
	cfg := straightConfig()
	cfg.Economy.StartGold = 1000
	g := newTestGame(t, cfg, nil)
	g.PlaceTurret(5, 3, defs.Wall)
	g.PlaceTurret(7, 0, defs.Basic)
	g.PlaceTurret(1, 0, defs.Slow)

	s := g.Snapshot()
	if len(s.Turrets) != 3 {
		t.Fatalf("turrets = %d", len(s.Turrets))
	}
	order := [][2]int{{1, 0}, {7, 0}, {5, 3}}
	for i, want := range order {
		if s.Turrets[i].X != want[0] || s.Turrets[i].Y != want[1] {
			t.Fatalf("turret %d at (%d,%d), want %v", i, s.Turrets[i].X, s.Turrets[i].Y, want)
		}
	}
	v, ok := g.TurretAt(7, 0)
	if !ok || v.Archetype != defs.Basic || v.Refund >= v.Invested {
		t.Fatalf("TurretAt = %+v, %v", v, ok)
	}
}

func TestEventsAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	g := newTestGame(t, straightConfig(), nil, WithLogger(zap.New(core)))

	g.PlaceTurret(3, 0, defs.Basic)
	g.StartWave()

	if n := logs.FilterMessage("WaveStarted").Len(); n != 1 {
		t.Fatalf("WaveStarted logged %d times", n)
	}
	placed := logs.FilterMessage("TurretPlaced").All()
	if len(placed) != 1 || placed[0].ContextMap()["archetype"] != "basic" {
		t.Fatalf("TurretPlaced log = %+v", placed)
	}
}

func TestLayoutFollowsPathEdits(t *testing.T) {
	g := newTestGame(t, straightConfig(), nil)
	l := g.Layout()
	if l.CellsX != 24 || l.CellsY != 18 || len(l.Blocked) != 18 || len(l.Blocked[0]) != 24 {
		t.Fatalf("layout dims %dx%d", l.CellsX, l.CellsY)
	}
	if !l.Blocked[2][5] || l.Blocked[0][5] {
		t.Fatalf("blocked rows wrong before edit")
	}
	if len(l.Route) < 2 || len(l.Control) != 2 {
		t.Fatalf("route %d points, control %d", len(l.Route), len(l.Control))
	}

	if err := g.EditPath([]geom.Vec{geom.V(0, 25), geom.V(1200, 25)}); err != nil {
		t.Fatalf("EditPath: %v", err)
	}
	l = g.Layout()
	if l.Blocked[2][5] || !l.Blocked[0][5] {
		t.Fatalf("blocked rows wrong after edit")
	}
}
