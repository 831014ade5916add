// internal/types/types.go
package types

// EntityID identifies an enemy, turret or projectile for the lifetime of a game.
type EntityID uint64
