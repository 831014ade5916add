// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"go-path-defense/pkg/geom"
)

// Config holds every tunable that is not part of the archetype/enemy tables.
type Config struct {
	Field      FieldConfig      `toml:"field"`
	Level      LevelConfig      `toml:"level"`
	Economy    EconomyConfig    `toml:"economy"`
	Simulation SimulationConfig `toml:"simulation"`
	Logging    LoggingConfig    `toml:"logging"`
}

// FieldConfig describes the playfield and how the path blocks cells.
type FieldConfig struct {
	Width         float64     `toml:"width"`
	Height        float64     `toml:"height"`
	CellSize      float64     `toml:"cell_size"`
	BlockOffsets  [][]float64 `toml:"block_offsets"`  // pixel offsets around each path sample
	BlockSamples  int         `toml:"block_samples"`  // path samples used to mark blocked cells
	LinearSpacing float64     `toml:"linear_spacing"` // min distance between polyline points
	LinearStep    float64     `toml:"linear_step"`    // curve parameter increment while sampling
	ShotMargin    float64     `toml:"shot_margin"`    // how far past the edges turret shots survive
}

type LevelConfig struct {
	Path [][]float64 `toml:"path"`
}

type EconomyConfig struct {
	StartGold    int     `toml:"start_gold"`
	Lives        int     `toml:"lives"`
	SellFraction float64 `toml:"sell_fraction"`
}

type SimulationConfig struct {
	MaxDeltaTime   float64 `toml:"max_delta_time"`
	FastMultiplier int     `toml:"fast_multiplier"`
	EnemyBaseRate  float64 `toml:"enemy_base_rate"`  // path progress per second per unit of speed
	MinSpeedFactor float64 `toml:"min_speed_factor"` // floor for the cold slowdown
	ColdDecay      float64 `toml:"cold_decay"`       // cold units removed per second
	MaxCold        float64 `toml:"max_cold"`
	BurnFraction   float64 `toml:"burn_fraction"` // share of burn applied per tick
	BurnEpsilon    float64 `toml:"burn_epsilon"`
	ReferenceSpeed float64 `toml:"reference_speed"` // projectile speed covered by one sub-step
	HostileSpeed   float64 `toml:"hostile_speed"`
	FinalWave      int     `toml:"final_wave"` // 0 disables the win state
	Seed           int64   `toml:"seed"`       // 0 seeds from the clock
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads a TOML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the stock settings.
func Default() *Config {
	return &Config{
		Field: FieldConfig{
			Width:    1200,
			Height:   900,
			CellSize: 50,
			BlockOffsets: [][]float64{
				{-20, -20},
				{-20, 20},
				{20, -20},
				{20, 20},
			},
			BlockSamples:  2000,
			LinearSpacing: 10,
			LinearStep:    1e-5,
			ShotMargin:    20,
		},
		Level: LevelConfig{
			Path: [][]float64{
				{188, -10}, {188, 250}, {990, 150}, {1028, 484}, {445, 794},
				{478, 634}, {790, 367}, {110, 543}, {952, 755}, {1095, 931},
			},
		},
		Economy: EconomyConfig{
			StartGold:    20,
			Lives:        100,
			SellFraction: 0.8,
		},
		Simulation: SimulationConfig{
			MaxDeltaTime:   0.1,
			FastMultiplier: 5,
			EnemyBaseRate:  0.01,
			MinSpeedFactor: 1.0 / 3.0,
			ColdDecay:      0.5,
			MaxCold:        6,
			BurnFraction:   0.02,
			BurnEpsilon:    0.01,
			ReferenceSpeed: 300,
			HostileSpeed:   150,
			FinalWave:      40,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	f := c.Field
	if f.Width <= 0 || f.Height <= 0 || f.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("field: width, height and cell_size must be positive"))
	}
	if f.LinearSpacing <= 0 {
		errs = append(errs, fmt.Errorf("field: linear_spacing must be positive"))
	}
	if f.ShotMargin < 0 {
		errs = append(errs, fmt.Errorf("field: shot_margin must not be negative"))
	}
	for i, off := range f.BlockOffsets {
		if len(off) != 2 {
			errs = append(errs, fmt.Errorf("field: block_offsets[%d] must have 2 coordinates", i))
		}
	}
	if _, err := c.PathPoints(); err != nil {
		errs = append(errs, err)
	}
	if c.Economy.SellFraction < 0 || c.Economy.SellFraction >= 1 {
		errs = append(errs, fmt.Errorf("economy: sell_fraction must be in [0,1)"))
	}
	if c.Simulation.FastMultiplier < 1 {
		errs = append(errs, fmt.Errorf("simulation: fast_multiplier must be >= 1"))
	}
	if c.Simulation.MaxDeltaTime <= 0 {
		errs = append(errs, fmt.Errorf("simulation: max_delta_time must be positive"))
	}
	if c.Simulation.ReferenceSpeed <= 0 {
		errs = append(errs, fmt.Errorf("simulation: reference_speed must be positive"))
	}
	return errors.Join(errs...)
}

// PathPoints converts the configured control points to vectors.
func (c *Config) PathPoints() ([]geom.Vec, error) {
	pts := make([]geom.Vec, 0, len(c.Level.Path))
	for i, p := range c.Level.Path {
		if len(p) != 2 {
			return nil, fmt.Errorf("level: path[%d] must have 2 coordinates", i)
		}
		pts = append(pts, geom.V(p[0], p[1]))
	}
	return pts, nil
}

// Offsets converts the blocking offsets to vectors, skipping malformed ones.
func (f FieldConfig) Offsets() []geom.Vec {
	out := make([]geom.Vec, 0, len(f.BlockOffsets))
	for _, o := range f.BlockOffsets {
		if len(o) == 2 {
			out = append(out, geom.V(o[0], o[1]))
		}
	}
	return out
}

// CellsX returns the number of grid columns.
func (f FieldConfig) CellsX() int {
	return int(f.Width / f.CellSize)
}

// CellsY returns the number of grid rows.
func (f FieldConfig) CellsY() int {
	return int(f.Height / f.CellSize)
}
