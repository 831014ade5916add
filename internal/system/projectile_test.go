package system

import (
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/pkg/geom"
)

func TestSubsteps(t *testing.T) {
	cases := []struct {
		speed float64
		want  int
	}{
		{0, 1}, {100, 1}, {300, 1}, {600, 2}, {900, 3},
	}
	for _, c := range cases {
		if got := Substeps(c.speed, 300); got != c.want {
			t.Errorf("Substeps(%v) = %d, want %d", c.speed, got, c.want)
		}
	}
}

func TestBulletPierceOneHitPerStep(t *testing.T) {
	w := newWorld(t)
	ps := NewProjectileSystem(w.ecs, w.level, w.sim)
	e1 := w.enemy(geom.V(110, 125), 0.1, 5)
	e2 := w.enemy(geom.V(112, 125), 0.1, 5)
	e3 := w.enemy(geom.V(114, 125), 0.1, 5)
	p := &component.Projectile{Source: defs.Basic, Pos: geom.V(100, 125), Vel: geom.V(300, 0), Radius: 4, Damage: 1, Pierce: 2}
	w.ecs.AddProjectile(p)

	ps.Update(0.01)
	if e1.HP != 4 || e2.HP != 5 {
		t.Fatalf("first step should hit only the first enemy: %v %v", e1.HP, e2.HP)
	}
	ps.Update(0.01)
	if e2.HP != 4 || !p.Done {
		t.Fatalf("second hit should exhaust pierce: hp=%v done=%v", e2.HP, p.Done)
	}
	ps.Update(0.01)
	if e3.HP != 5 {
		t.Fatalf("spent projectile kept hitting")
	}
	if got := w.ecs.Ledger.Get(defs.Basic); got != 2 {
		t.Fatalf("ledger = %v, want 2", got)
	}
}

func TestBulletLeavesField(t *testing.T) {
	w := newWorld(t)
	ps := NewProjectileSystem(w.ecs, w.level, w.sim)
	p := &component.Projectile{Pos: geom.V(499, 10), Vel: geom.V(300, 0), Pierce: 5}
	w.ecs.AddProjectile(p)
	ps.Update(0.1)
	if !p.Done {
		t.Fatalf("projectile outside the field should be done")
	}
}

func TestShotsReachEnemiesPastTheEdge(t *testing.T) {
	w := newWorld(t)
	ps := NewProjectileSystem(w.ecs, w.level, w.sim)
	e := w.enemy(geom.V(100, -10), 0.01, 5)
	bullet := &component.Projectile{Source: defs.Basic, Pos: geom.V(100, 20), Vel: geom.V(0, -300), Radius: 4, Damage: 1, Pierce: 1}
	bomb := &component.Projectile{
		Source: defs.Splash,
		Pos:    geom.V(100, 30),
		Vel:    geom.V(0, -300),
		Radius: 6,
		Bomb:   &component.Bomb{Target: geom.V(100, -10), Radius: 40, MaxTargets: 1, Damage: 2},
	}
	w.ecs.AddProjectile(bullet)
	w.ecs.AddProjectile(bomb)

	ps.Update(0.1)
	if e.HP != 4 || !bullet.Done {
		t.Fatalf("bullet should hit the entering enemy: hp=%v done=%v", e.HP, bullet.Done)
	}
	ps.Update(0.1)
	if !bomb.Done || e.HP != 2 {
		t.Fatalf("bomb should detonate above the edge: hp=%v done=%v", e.HP, bomb.Done)
	}

	stray := &component.Projectile{Pos: geom.V(100, 0), Vel: geom.V(0, -300), Pierce: 1}
	w.ecs.AddProjectile(stray)
	ps.Update(0.1)
	if !stray.Done {
		t.Fatalf("shot beyond the margin should be dropped at %v", stray.Pos)
	}
}

func TestBombDetonatesOnArrival(t *testing.T) {
	w := newWorld(t)
	ps := NewProjectileSystem(w.ecs, w.level, w.sim)
	a := w.enemy(geom.V(100, 125), 0.1, 5)
	b := w.enemy(geom.V(120, 125), 0.1, 5)
	c := w.enemy(geom.V(90, 125), 0.1, 5)
	outside := w.enemy(geom.V(200, 125), 0.1, 5)
	p := &component.Projectile{
		Source: defs.Splash,
		Pos:    geom.V(100, 75),
		Vel:    geom.V(0, 300),
		Radius: 6,
		Bomb:   &component.Bomb{Target: geom.V(100, 125), Radius: 40, MaxTargets: 2, Damage: 2},
	}
	w.ecs.AddProjectile(p)

	ps.Update(0.1) // 30px of 50
	if p.Done || a.HP != 5 {
		t.Fatalf("bomb detonated early")
	}
	ps.Update(0.1)
	if !p.Done {
		t.Fatalf("bomb did not detonate")
	}
	if a.HP != 3 || b.HP != 3 {
		t.Fatalf("first two enemies in order should be hit: %v %v", a.HP, b.HP)
	}
	if c.HP != 5 || outside.HP != 5 {
		t.Fatalf("target cap or radius ignored: %v %v", c.HP, outside.HP)
	}
}

func TestLaserHitsAlongBeamOnce(t *testing.T) {
	w := newWorld(t)
	ps := NewProjectileSystem(w.ecs, w.level, w.sim)
	onBeam := w.enemy(geom.V(150, 125), 0.1, 5)
	beyond := w.enemy(geom.V(300, 125), 0.1, 5)
	aside := w.enemy(geom.V(100, 140), 0.1, 5)
	p := &component.Projectile{Source: defs.Laser, Pos: geom.V(0, 125), Vel: geom.V(1, 0), Radius: 3, Damage: 2, Pierce: 50, LaserLength: 200}
	w.ecs.AddProjectile(p)

	ps.Update(0.016)

	if onBeam.HP != 3 || beyond.HP != 5 || aside.HP != 5 {
		t.Fatalf("hp on=%v beyond=%v aside=%v", onBeam.HP, beyond.HP, aside.HP)
	}
	if !p.Done {
		t.Fatalf("beam must last one tick")
	}
}

func TestFireLeavesBurnAndExpires(t *testing.T) {
	w := newWorld(t)
	ps := NewProjectileSystem(w.ecs, w.level, w.sim)
	e := w.enemy(geom.V(105, 125), 0.1, 5)
	p := &component.Projectile{
		Source: defs.Flame,
		Pos:    geom.V(100, 125),
		Vel:    geom.V(100, 0),
		Radius: 6,
		Pierce: 3,
		Fire:   &component.Fire{Burn: 2, Range: 10},
	}
	w.ecs.AddProjectile(p)

	ps.Update(0.05)
	if e.Burn != 2 || e.HP != 5 {
		t.Fatalf("fire should only add burn: burn=%v hp=%v", e.Burn, e.HP)
	}
	if p.Done {
		t.Fatalf("fire expired early")
	}
	ps.Update(0.05)
	if e.Burn != 2 {
		t.Fatalf("fire hit the same enemy twice")
	}
	if !p.Done {
		t.Fatalf("fire should burn out after its range")
	}
}

func TestHostileHitsLiveTurret(t *testing.T) {
	w := newWorld(t)
	hs := NewHostileSystem(w.ecs, w.level)
	wall := w.turret(t, defs.Wall, 3, 0)
	h := &component.HostileProjectile{Pos: geom.V(175, 40), Vel: geom.V(0, -10), Damage: 4}
	w.ecs.AddHostile(h)

	hs.Update(0.1)
	if wall.HP != wall.MaxHP-2 {
		t.Fatalf("wall hp = %v, want %v", wall.HP, wall.MaxHP-2)
	}
	if !h.Done {
		t.Fatalf("hostile should end on impact")
	}

	wall.Dead = true
	h2 := &component.HostileProjectile{Pos: geom.V(175, 40), Vel: geom.V(0, -10), Damage: 4}
	w.ecs.AddHostile(h2)
	hp := wall.HP
	hs.Update(0.1)
	if wall.HP != hp || h2.Done {
		t.Fatalf("dead turrets are passed through")
	}

	h3 := &component.HostileProjectile{Pos: geom.V(5, 5), Vel: geom.V(-100, 0), Damage: 4}
	w.ecs.AddHostile(h3)
	hs.Update(0.1)
	if !h3.Done {
		t.Fatalf("hostile leaving the field should end")
	}
}
