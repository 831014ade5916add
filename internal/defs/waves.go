// internal/defs/waves.go
package defs

import "math"

// WaveTuning parametrises the procedural wave generator.
type WaveTuning struct {
	DurationBase     float64 `yaml:"duration_base"`
	DurationScale    float64 `yaml:"duration_scale"`
	DurationExponent float64 `yaml:"duration_exponent"`

	DensityBase     float64 `yaml:"density_base"` // spawns per second
	DensityScale    float64 `yaml:"density_scale"`
	DensityExponent float64 `yaml:"density_exponent"`

	BiasPerWave  float64 `yaml:"bias_per_wave"`
	TierExponent float64 `yaml:"tier_exponent"`

	BaselineEvery int `yaml:"baseline_every"` // every Nth spawn is tier 0
	BumpFromWave  int `yaml:"bump_from_wave"`
	BumpEvery     int `yaml:"bump_every"`

	TopQuotaBase    float64 `yaml:"top_quota_base"`
	TopQuotaPerWave float64 `yaml:"top_quota_per_wave"`

	BatchSize int     `yaml:"batch_size"`
	BatchGap  float64 `yaml:"batch_gap"`

	FastEvery    int     `yaml:"fast_every"`
	FastOffset   int     `yaml:"fast_offset"`
	FastSpeedMul float64 `yaml:"fast_speed_mul"`
	FastBiasMul  float64 `yaml:"fast_bias_mul"`

	HordeEvery      int     `yaml:"horde_every"`
	HordeOffset     int     `yaml:"horde_offset"`
	HordeDensityMul float64 `yaml:"horde_density_mul"`
	HordeBiasMul    float64 `yaml:"horde_bias_mul"`

	ShootyEvery    int `yaml:"shooty_every"`
	ShootyOffset   int `yaml:"shooty_offset"`
	RangedFromWave int `yaml:"ranged_from_wave"`
	RangedEvery    int `yaml:"ranged_every"`

	BuildBonus int         `yaml:"build_bonus"`
	BonusSteps []BonusStep `yaml:"bonus_steps"`
}

// BonusStep adds Bonus gold to every completed wave from FromWave on.
type BonusStep struct {
	FromWave int `yaml:"from_wave"`
	Bonus    int `yaml:"bonus"`
}

// Variant marks the special wave kinds. Several may apply at once.
type Variant struct {
	Fast   bool
	Shooty bool
	Horde  bool
}

func every(wave, n, offset int) bool {
	return n > 0 && wave%n == offset
}

// Variant picks the special modifiers for a wave from modulo rules.
func (w WaveTuning) Variant(wave int) Variant {
	return Variant{
		Fast:   every(wave, w.FastEvery, w.FastOffset),
		Shooty: every(wave, w.ShootyEvery, w.ShootyOffset),
		Horde:  every(wave, w.HordeEvery, w.HordeOffset),
	}
}

// Duration grows sub-linearly with the wave index.
func (w WaveTuning) Duration(wave int) float64 {
	return w.DurationBase + w.DurationScale*math.Pow(float64(wave), w.DurationExponent)
}

// Density is the spawn rate in enemies per second before variant modifiers.
func (w WaveTuning) Density(wave int) float64 {
	return w.DensityBase + w.DensityScale*math.Pow(float64(wave), w.DensityExponent)
}

// TopQuota is how many top-tier enemies a wave may contain.
func (w WaveTuning) TopQuota(wave int) int {
	return int(w.TopQuotaBase + w.TopQuotaPerWave*float64(wave))
}

// Bonus is the build-phase gold granted after completing wave.
func (w WaveTuning) Bonus(wave int) int {
	bonus := w.BuildBonus
	for _, step := range w.BonusSteps {
		if wave >= step.FromWave {
			bonus += step.Bonus
		}
	}
	return bonus
}
