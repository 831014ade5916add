// internal/event/types.go
package event

import (
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
)

const (
	WaveStarted    EventType = "WaveStarted"
	WaveEnded      EventType = "WaveEnded"
	EnemyKilled    EventType = "EnemyKilled"
	EnemyLeaked    EventType = "EnemyLeaked"
	TurretPlaced   EventType = "TurretPlaced"
	TurretUpgraded EventType = "TurretUpgraded"
	TurretSold     EventType = "TurretSold"
	PlayerDied     EventType = "PlayerDied"
	PathEdited     EventType = "PathEdited"
)

// WaveData is carried by WaveStarted and WaveEnded.
type WaveData struct {
	Wave  int
	Bonus int // gold granted on WaveEnded
}

// EnemyData is carried by EnemyKilled and EnemyLeaked.
type EnemyData struct {
	ID   types.EntityID
	Tier int
	Gold int // reward on kill
	Loss int // lives lost on leak
}

// TurretData is carried by the turret events.
type TurretData struct {
	X, Y      int
	Archetype defs.Archetype
	Upgrade   defs.Upgrade // TurretUpgraded only
	Gold      int          // spent, or refunded on sale
}
