// internal/system/wave.go
package system

import (
	"cmp"
	"math"
	"slices"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/level"
	"go-path-defense/internal/utils"
)

// WaveSystem builds wave schedules and releases their enemies on time.
type WaveSystem struct {
	ecs             *entity.ECS
	level           *level.Level
	tables          *defs.Tables
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, lvl *level.Level, tables *defs.Tables, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		level:           lvl,
		tables:          tables,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// Update advances the running wave, spawning every entry whose time has
// come. Once the timer passes the duration with nothing left to spawn the
// wave ends.
func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil || s.ecs.GameState != component.WaveState {
		return
	}
	wave.Timer += deltaTime
	for len(wave.Schedule) > 0 && wave.Schedule[0].Time <= wave.Timer {
		e := wave.Schedule[0].Enemy
		wave.Schedule[0] = component.SpawnEntry{}
		wave.Schedule = wave.Schedule[1:]
		e.Pos = s.level.PositionAt(0)
		s.ecs.AddEnemy(e)
	}
	if wave.Timer >= wave.Duration && len(wave.Schedule) == 0 {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.WaveEnded,
			Data: event.WaveData{Wave: wave.Number, Bonus: s.tables.Waves.Bonus(wave.Number)},
		})
	}
}

// Generate builds the schedule for wave n. A running bias budget decides
// which tiers are reachable; modulo rules force a baseline trickle, bump
// tiers late in the game and ration the top tier.
func (s *WaveSystem) Generate(n int) *component.Wave {
	w := s.tables.Waves
	variant := w.Variant(n)
	duration := w.Duration(n)

	density := w.Density(n)
	biasStep := w.BiasPerWave * float64(n)
	if variant.Fast {
		biasStep *= w.FastBiasMul
	}
	if variant.Horde {
		density *= w.HordeDensityMul
		biasStep *= w.HordeBiasMul
	}
	if density <= 0 {
		density = w.DensityBase
	}

	wave := &component.Wave{Number: n, Duration: duration, Variant: variant}
	top := s.tables.TopTier()
	quota := w.TopQuota(n)
	bias := 0.0
	for at, spawned := 0.0, 0; at < duration; spawned++ {
		tier := s.pickTier(bias, top)
		switch {
		case w.BaselineEvery > 0 && spawned%w.BaselineEvery == w.BaselineEvery-1:
			tier = 0
		case w.BumpFromWave > 0 && n >= w.BumpFromWave && w.BumpEvery > 0 && spawned%w.BumpEvery == 0:
			tier = min(tier+1, top)
		}
		if tier == top && top > 0 {
			if quota > 0 {
				quota--
			} else {
				tier = top - 1
			}
		}

		ranged := variant.Shooty ||
			(n >= w.RangedFromWave && w.RangedEvery > 0 && spawned%w.RangedEvery == 0)
		wave.Schedule = append(wave.Schedule, component.SpawnEntry{
			Time:  at,
			Enemy: s.newEnemy(tier, variant, ranged),
		})

		bias += biasStep
		at += 1 / density
		if w.BatchSize > 0 && (spawned+1)%w.BatchSize == 0 {
			at += w.BatchGap
		}
	}
	slices.SortStableFunc(wave.Schedule, func(a, b component.SpawnEntry) int {
		return cmp.Compare(a.Time, b.Time)
	})
	return wave
}

// pickTier maps the bias budget to a tier index with a power law.
func (s *WaveSystem) pickTier(bias float64, top int) int {
	exp := s.tables.Waves.TierExponent
	if exp <= 0 {
		exp = 1
	}
	tier := int(math.Floor(math.Pow(s.rng.Float64()*bias, exp)))
	return min(max(tier, 0), top)
}

func (s *WaveSystem) newEnemy(tier int, variant defs.Variant, ranged bool) *component.Enemy {
	def := s.tables.Enemies[tier]
	speed := def.Speed
	if variant.Fast && s.tables.Waves.FastSpeedMul > 0 {
		speed *= s.tables.Waves.FastSpeedMul
	}
	e := &component.Enemy{
		Tier:  tier,
		Color: def.Color,
		Size:  def.Size,
		Speed: speed,
		HP:    def.HP,
		MaxHP: def.HP,
		Gold:  def.Gold,
	}
	if ranged && def.AttackInterval > 0 && def.AttackDamage > 0 {
		e.Ranged = &component.RangedAttack{
			Cooldown: def.AttackInterval,
			Interval: def.AttackInterval,
			Damage:   def.AttackDamage,
		}
	}
	return e
}
