// internal/app/tower_management.go
package app

import (
	"math"

	"go.uber.org/zap"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
)

// CanAfford reports whether the player holds at least cost gold.
func (g *Game) CanAfford(cost int) bool {
	return g.ECS.Player.Gold >= cost
}

// PlaceTurret buys a turret of archetype a on cell (x, y). It does nothing
// when the cell is blocked or taken, the player is short of gold or dead.
func (g *Game) PlaceTurret(x, y int, a defs.Archetype) bool {
	if g.ECS.GameState == component.DeadState {
		return false
	}
	def := g.Tables.Turret(a)
	if def == nil {
		g.Log.Debug("place rejected: unknown archetype", zap.Uint8("archetype", uint8(a)))
		return false
	}
	if !g.Level.IsPlaceable(x, y) {
		g.Log.Debug("place rejected: cell unavailable", zap.Int("x", x), zap.Int("y", y))
		return false
	}
	if !g.CanAfford(def.Cost) {
		g.Log.Debug("place rejected: not enough gold",
			zap.Stringer("archetype", a), zap.Int("cost", def.Cost), zap.Int("gold", g.ECS.Player.Gold))
		return false
	}

	t := component.NewTurret(g.ECS.NewEntity(), def, x, y, g.Level.CellCenter(x, y))
	if !g.Level.Place(x, y, t) {
		return false
	}
	g.ECS.Player.Gold -= def.Cost
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TurretPlaced,
		Data: event.TurretData{X: x, Y: y, Archetype: a, Gold: def.Cost},
	})
	return true
}

// PurchaseUpgrade adds upgrade u to the turret on (x, y). Unknown, owned,
// excluded, capped or unaffordable upgrades leave everything unchanged.
func (g *Game) PurchaseUpgrade(x, y int, u defs.Upgrade) bool {
	if g.ECS.GameState == component.DeadState {
		return false
	}
	t := g.Level.Get(x, y)
	if t == nil {
		return false
	}
	up, err := g.Tables.CheckUpgrade(t.Archetype, t.Upgrades, u)
	if err != nil {
		g.Log.Debug("upgrade rejected", zap.Stringer("upgrade", u), zap.Stringer("archetype", t.Archetype), zap.Error(err))
		return false
	}
	if !g.CanAfford(up.Cost) {
		g.Log.Debug("upgrade rejected: not enough gold", zap.Stringer("upgrade", u), zap.Int("cost", up.Cost))
		return false
	}
	g.ECS.Player.Gold -= up.Cost
	t.ApplyUpgrade(g.Tables.Turret(t.Archetype), *up)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TurretUpgraded,
		Data: event.TurretData{X: x, Y: y, Archetype: t.Archetype, Upgrade: u, Gold: up.Cost},
	})
	return true
}

// SellTurret removes the turret on (x, y) and refunds part of what was
// spent on it.
func (g *Game) SellTurret(x, y int) bool {
	if g.ECS.GameState == component.DeadState {
		return false
	}
	t := g.Level.Remove(x, y)
	if t == nil {
		return false
	}
	g.refund(t)
	return true
}

// Refund is what selling t would return.
func (g *Game) Refund(t *component.Turret) int {
	return int(math.Round(float64(t.Invested) * g.Config.Economy.SellFraction))
}

func (g *Game) refund(t *component.Turret) {
	gold := g.Refund(t)
	g.ECS.Player.Gold += gold
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TurretSold,
		Data: event.TurretData{X: t.X, Y: t.Y, Archetype: t.Archetype, Gold: gold},
	})
}
