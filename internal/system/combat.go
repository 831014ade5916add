// internal/system/combat.go
package system

import (
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/level"
	"go-path-defense/internal/utils"
	"go-path-defense/pkg/geom"
)

// CombatSystem runs every turret once per tick: regeneration, the death
// state machine, charge accrual, targeting and the archetype attack.
type CombatSystem struct {
	ecs   *entity.ECS
	level *level.Level
	sim   config.SimulationConfig
	rng   *utils.PRNGService
}

func NewCombatSystem(ecs *entity.ECS, lvl *level.Level, sim config.SimulationConfig, rng *utils.PRNGService) *CombatSystem {
	return &CombatSystem{ecs: ecs, level: lvl, sim: sim, rng: rng}
}

func (s *CombatSystem) Update(deltaTime float64) {
	live := s.ecs.HasLiveEnemies()
	s.level.ForEachTurret(func(t *component.Turret) {
		s.updateTurret(t, deltaTime, live)
	})
}

func (s *CombatSystem) updateTurret(t *component.Turret, deltaTime float64, live bool) {
	if t.HP <= 0 {
		t.Dead = true
		t.Charge = 0
	}
	if live {
		t.HP = min(t.MaxHP, t.HP+t.Stats.Regen*deltaTime)
	}
	if t.Dead {
		if t.HP < t.MaxHP {
			return
		}
		t.Dead = false
	}

	switch t.Archetype {
	case defs.Wall:
		return
	case defs.Repair:
		s.repair(t, deltaTime)
		return
	}

	t.Cooldown = max(0, t.Cooldown-deltaTime)
	if t.Archetype == defs.Zapper && live {
		t.Charge = min(t.Stats.MaxCharge, t.Charge+t.Stats.ChargeRate*deltaTime)
	}
	if t.Cooldown > 0 {
		return
	}

	minDist, maxDist := s.rangePx(t)
	if t.Archetype == defs.Slow {
		if s.slowField(t, minDist, maxDist) {
			t.Cooldown = t.Stats.Cooldown
		}
		return
	}
	if t.Archetype == defs.Laser && (t.Upgrades.Has(defs.UpgradeSweepCW) || t.Upgrades.Has(defs.UpgradeSweepCCW)) {
		if live {
			s.sweep(t, deltaTime)
			t.Cooldown = t.Stats.Cooldown
		}
		return
	}

	target := findTarget(s.ecs, t.Pos, minDist, maxDist, 0)
	if target == nil {
		return
	}
	fired := true
	switch t.Archetype {
	case defs.Basic:
		s.fireBasic(t, target)
	case defs.Splash:
		s.fireSplash(t, target)
	case defs.Zapper:
		fired = s.zap(t, target, maxDist)
	case defs.Flame:
		s.fireFlame(t, maxDist)
	case defs.Laser:
		s.track(t, target, deltaTime)
	}
	if fired {
		t.Cooldown = t.Stats.Cooldown
	}
}

// rangePx converts the turret's cell ranges to pixels.
func (s *CombatSystem) rangePx(t *component.Turret) (float64, float64) {
	cs := s.level.CellSize()
	return t.Stats.MinRange * cs, t.Stats.Range * cs
}

// slowField chills every live enemy in the band and reports whether there
// was any.
func (s *CombatSystem) slowField(t *component.Turret, minDist, maxDist float64) bool {
	applied := false
	for _, e := range s.ecs.Enemies {
		if !e.Alive() {
			continue
		}
		d := geom.Dist(t.Pos, e.Pos)
		if d < minDist || d > maxDist {
			continue
		}
		e.Cold = min(s.sim.MaxCold, e.Cold+t.Stats.Cold)
		applied = true
	}
	return applied
}

func (s *CombatSystem) fireBasic(t *component.Turret, target *component.Enemy) {
	aim := target.Pos.Sub(t.Pos).Angle()
	vels := []geom.Vec{geom.FromAngle(aim, t.Stats.ProjectileSpeed)}
	if t.Upgrades.Has(defs.UpgradeTriShot) {
		vels = append(vels, vels[0].Rotate(-t.Stats.Spread), vels[0].Rotate(t.Stats.Spread))
	}
	if t.Upgrades.Has(defs.UpgradeOrthoShot) {
		base := len(vels)
		for k := 1; k <= 3; k++ {
			for _, v := range vels[:base] {
				vels = append(vels, v.Rotate(float64(k)*math.Pi/2))
			}
		}
	}
	for _, v := range vels {
		s.ecs.AddProjectile(&component.Projectile{
			Source: defs.Basic,
			Pos:    t.Pos,
			Vel:    v,
			Radius: t.Stats.ProjectileRadius,
			Damage: t.Stats.Damage,
			Pierce: max(t.Stats.Pierce, 1),
		})
	}
}

// fireSplash lobs a bomb at the target's current position.
func (s *CombatSystem) fireSplash(t *component.Turret, target *component.Enemy) {
	s.ecs.AddProjectile(&component.Projectile{
		Source: defs.Splash,
		Pos:    t.Pos,
		Vel:    geom.FromAngle(target.Pos.Sub(t.Pos).Angle(), t.Stats.ProjectileSpeed),
		Radius: t.Stats.ProjectileRadius,
		Pierce: 1,
		Bomb: &component.Bomb{
			Target:     target.Pos,
			Radius:     t.Stats.BombRadius,
			MaxTargets: t.Stats.BombTargets,
			Damage:     t.Stats.Damage,
		},
	})
}

// zap spends the whole charge on charge² damage and lets it jump on to
// further enemies. Chain hits reuse the same damage and cost no charge.
func (s *CombatSystem) zap(t *component.Turret, target *component.Enemy, chainRange float64) bool {
	if t.Charge < 1 {
		return false
	}
	charge := math.Floor(t.Charge)
	t.Charge -= charge
	damage := charge * charge

	tag := s.ecs.NextScratchTag()
	jumps := t.Stats.ChainCount
	for target != nil {
		target.Scratch = tag
		ApplyDamage(s.ecs, target, damage, defs.Zapper)
		if jumps <= 0 {
			break
		}
		jumps--
		target = findTarget(s.ecs, target.Pos, 0, chainRange, tag)
	}
	return true
}

// fireFlame throws a full ring of short-lived fire around the turret.
func (s *CombatSystem) fireFlame(t *component.Turret, reach float64) {
	n := max(t.Stats.FlameCount, 1)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		s.ecs.AddProjectile(&component.Projectile{
			Source: defs.Flame,
			Pos:    t.Pos,
			Vel:    geom.FromAngle(a, t.Stats.ProjectileSpeed),
			Radius: t.Stats.ProjectileRadius,
			Pierce: max(t.Stats.Pierce, 1),
			Fire: &component.Fire{
				Burn:  t.Stats.Burn,
				Range: reach,
			},
		})
	}
}

// track turns the laser toward target at a limited rate and fires.
func (s *CombatSystem) track(t *component.Turret, target *component.Enemy, deltaTime float64) {
	aim := target.Pos.Sub(t.Pos).Angle()
	t.Heading = utils.TurnTowards(t.Heading, aim, t.Stats.TurnRate*deltaTime)
	s.chargeBeam(t, t.Stats.DPS, deltaTime)
}

// sweep spins the laser at a constant rate with boosted damage.
func (s *CombatSystem) sweep(t *component.Turret, deltaTime float64) {
	dir := 1.0
	if t.Upgrades.Has(defs.UpgradeSweepCCW) {
		dir = -1
	}
	t.Heading = utils.NormalizeAngle(t.Heading + dir*t.Stats.SweepRate*deltaTime)
	s.chargeBeam(t, t.Stats.DPS*t.Stats.SweepDamageMul, deltaTime)
}

// chargeBeam accumulates fractional damage and fires a beam carrying the
// whole units once there is at least one.
func (s *CombatSystem) chargeBeam(t *component.Turret, dps, deltaTime float64) {
	t.DamageAcc += dps * deltaTime
	if t.DamageAcc < 1 {
		return
	}
	whole := math.Floor(t.DamageAcc)
	t.DamageAcc -= whole
	_, reach := s.rangePx(t)
	s.ecs.AddProjectile(&component.Projectile{
		Source:      defs.Laser,
		Pos:         t.Pos,
		Vel:         geom.FromAngle(t.Heading, 1),
		Radius:      t.Stats.ProjectileRadius,
		Damage:      whole,
		Pierce:      max(t.Stats.Pierce, 1),
		LaserLength: reach,
	})
}

// repair moves hp one unit at a time from the station's charge to the most
// damaged turret within its square radius.
func (s *CombatSystem) repair(t *component.Turret, deltaTime float64) {
	t.Charge = min(t.Stats.MaxCharge, t.Charge+t.Stats.ChargeRate*deltaTime)
	if t.Charge < 1 {
		return
	}
	var patient *component.Turret
	s.level.ForEachInRadius(t.X, t.Y, int(t.Stats.Range), func(o *component.Turret) {
		if o == t || !o.Damaged() {
			return
		}
		if patient == nil || o.HPFraction() < patient.HPFraction() {
			patient = o
		}
	})
	if patient == nil {
		return
	}
	if t.Upgrades.Has(defs.UpgradeRepairCapacity) && !s.rng.Chance(t.Stats.RepairJitter) {
		return
	}
	patient.HP = min(patient.MaxHP, patient.HP+1)
	t.Charge--
}
