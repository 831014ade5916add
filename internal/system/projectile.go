// internal/system/projectile.go
package system

import (
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/level"
	"go-path-defense/pkg/geom"
)

// ProjectileSystem moves turret shots and resolves their hits.
type ProjectileSystem struct {
	ecs   *entity.ECS
	level *level.Level
	sim   config.SimulationConfig
}

func NewProjectileSystem(ecs *entity.ECS, lvl *level.Level, sim config.SimulationConfig) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, level: lvl, sim: sim}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	// new shots spawned by hits would land after n and wait for the next tick
	n := len(s.ecs.Projectiles)
	for i := 0; i < n; i++ {
		p := s.ecs.Projectiles[i]
		if p.Done {
			continue
		}
		switch {
		case p.Bomb != nil:
			s.updateBomb(p, deltaTime)
		case p.LaserLength > 0:
			s.updateLaser(p)
		default:
			s.updateBullet(p, deltaTime)
		}
	}
}

// Substeps is how many collision checks a shot of the given speed makes per
// tick.
func Substeps(speed, reference float64) int {
	return max(1, int(math.Round(speed/reference)))
}

func (s *ProjectileSystem) updateBullet(p *component.Projectile, deltaTime float64) {
	speed := p.Vel.Len()
	steps := Substeps(speed, s.sim.ReferenceSpeed)
	stepDt := deltaTime / float64(steps)
	for range steps {
		p.Pos = p.Pos.Add(p.Vel.Scale(stepDt))
		if p.Fire != nil {
			p.Fire.Traveled += speed * stepDt
		}
		if !s.level.InReach(p.Pos) {
			p.Done = true
			return
		}
		if e := s.firstCollision(p); e != nil {
			s.hit(p, e)
			if p.Pierce <= 0 {
				p.Done = true
				return
			}
		}
		if p.Fire != nil && p.Fire.Traveled >= p.Fire.Range {
			p.Done = true
			return
		}
	}
}

// firstCollision returns the first live enemy, in iteration order, touching
// p that p has not hit yet.
func (s *ProjectileSystem) firstCollision(p *component.Projectile) *component.Enemy {
	for _, e := range s.ecs.Enemies {
		if !e.Alive() || p.HasHit(e.ID) {
			continue
		}
		if geom.Dist(p.Pos, e.Pos) <= e.Size+p.Radius {
			return e
		}
	}
	return nil
}

func (s *ProjectileSystem) hit(p *component.Projectile, e *component.Enemy) {
	p.MarkHit(e.ID)
	p.Pierce--
	if p.Fire != nil {
		e.Burn += p.Fire.Burn
	}
	ApplyDamage(s.ecs, e, p.Damage, p.Source)
}

// updateLaser resolves a beam along its whole length in one go. A beam
// lasts exactly one tick.
func (s *ProjectileSystem) updateLaser(p *component.Projectile) {
	a := p.Pos
	b := a.Add(p.Vel.Normalize().Scale(p.LaserLength))
	for _, e := range s.ecs.Enemies {
		if p.Pierce <= 0 {
			break
		}
		if !e.Alive() || p.HasHit(e.ID) {
			continue
		}
		if geom.SegmentDist(e.Pos, a, b) <= e.Size+p.Radius {
			s.hit(p, e)
		}
	}
	p.Done = true
}

func (s *ProjectileSystem) updateBomb(p *component.Projectile, deltaTime float64) {
	bomb := p.Bomb
	toTarget := bomb.Target.Sub(p.Pos)
	remaining := toTarget.Len()
	step := min(p.Vel.Len()*deltaTime, remaining)
	p.Pos = p.Pos.Add(toTarget.Normalize().Scale(step))
	if !s.level.InReach(p.Pos) {
		p.Done = true
		return
	}
	if geom.Dist(p.Pos, bomb.Target) > p.Radius {
		return
	}
	hits := 0
	for _, e := range s.ecs.Enemies {
		if hits >= bomb.MaxTargets {
			break
		}
		if !e.Alive() || geom.Dist(p.Pos, e.Pos) > bomb.Radius {
			continue
		}
		ApplyDamage(s.ecs, e, bomb.Damage, p.Source)
		hits++
	}
	p.Done = true
}
