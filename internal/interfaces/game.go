package interfaces

import (
	"go-path-defense/internal/app"
	"go-path-defense/internal/defs"
)

// Simulation is everything the screens need from a running game.
type Simulation interface {
	Advance(dt float64)
	Snapshot() app.Snapshot
	Layout() app.Layout
	TurretAt(x, y int) (app.TurretView, bool)

	StartWave() bool
	PlaceTurret(x, y int, a defs.Archetype) bool
	PurchaseUpgrade(x, y int, u defs.Upgrade) bool
	SellTurret(x, y int) bool
	SetFastMode(on bool)
	FastMode() bool
}

var _ Simulation = (*app.Game)(nil)
