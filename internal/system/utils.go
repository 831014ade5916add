// internal/system/utils.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/pkg/geom"
)

// ApplyDamage hits an enemy on behalf of an archetype. The ledger is credited
// only with the hp the enemy actually had left; hp itself takes the full
// amount, so overkill drives it below zero.
func ApplyDamage(ecs *entity.ECS, enemy *component.Enemy, damage float64, source defs.Archetype) {
	if damage <= 0 {
		return
	}
	dealt := min(damage, max(enemy.HP, 0))
	ecs.Ledger.Add(source, dealt)
	enemy.HP -= damage
}

// DamageTurret removes hp from a turret, never below zero. Death is
// resolved by the combat system on its next pass.
func DamageTurret(t *component.Turret, damage float64) {
	if damage <= 0 {
		return
	}
	t.HP = max(0, t.HP-damage)
}

// findTarget picks the live enemy furthest along the path within
// [minDist, maxDist] of from, skipping enemies carrying tag. The first
// enemy found wins ties.
func findTarget(ecs *entity.ECS, from geom.Vec, minDist, maxDist float64, tag uint32) *component.Enemy {
	var best *component.Enemy
	for _, e := range ecs.Enemies {
		if !e.Alive() || (tag != 0 && e.Scratch == tag) {
			continue
		}
		d := geom.Dist(from, e.Pos)
		if d < minDist || d > maxDist {
			continue
		}
		if best == nil || e.T > best.T {
			best = e
		}
	}
	return best
}
