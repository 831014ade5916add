// internal/defs/loader.go
package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTables wraps every validation failure of a table file.
var ErrInvalidTables = errors.New("invalid tables")

//go:embed data/tables.yaml
var defaultTables []byte

// Tables is the full set of numeric data a game is built from.
type Tables struct {
	Turrets   []TurretDef `yaml:"turrets"`
	Exclusive [][]Upgrade `yaml:"exclusive"` // pairs that cannot be owned together
	Enemies   []EnemyTier `yaml:"enemies"`
	Waves     WaveTuning  `yaml:"waves"`

	byArchetype [ArchetypeCount]*TurretDef
}

// Turret returns the definition for a, or nil if a is not a valid archetype.
func (t *Tables) Turret(a Archetype) *TurretDef {
	if !a.Valid() {
		return nil
	}
	return t.byArchetype[a]
}

// TopTier is the index of the strongest enemy tier.
func (t *Tables) TopTier() int {
	return len(t.Enemies) - 1
}

// Default parses the tables shipped with the binary.
func Default() (*Tables, error) {
	return ParseTables(defaultTables)
}

// MustDefault is Default for callers that cannot recover, mostly tests.
func MustDefault() *Tables {
	t, err := Default()
	if err != nil {
		panic(err)
	}
	return t
}

// LoadTables reads a YAML table file.
func LoadTables(path string) (*Tables, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tables %s: %w", path, err)
	}
	t, err := ParseTables(raw)
	if err != nil {
		return nil, fmt.Errorf("tables %s: %w", path, err)
	}
	return t, nil
}

// ParseTables decodes and validates YAML tables.
func ParseTables(raw []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("parse tables: %w", err)
	}
	if err := t.index(); err != nil {
		return nil, err
	}
	return &t, nil
}

// index validates the tables and builds the archetype lookup.
func (t *Tables) index() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidTables, fmt.Sprintf(format, args...))
	}

	t.byArchetype = [ArchetypeCount]*TurretDef{}
	owner := make(map[Upgrade]Archetype)
	for i := range t.Turrets {
		def := &t.Turrets[i]
		if !def.Archetype.Valid() {
			return invalid("turret %d has no archetype", i)
		}
		if t.byArchetype[def.Archetype] != nil {
			return invalid("archetype %s defined twice", def.Archetype)
		}
		if def.Cost < 0 {
			return invalid("archetype %s has negative cost", def.Archetype)
		}
		if def.Stats.MaxHP <= 0 {
			return invalid("archetype %s needs max_hp > 0", def.Archetype)
		}
		if def.Stats.DamageTaken == 0 {
			def.Stats.DamageTaken = 1
		}
		for _, up := range def.Upgrades {
			if prev, dup := owner[up.ID]; dup {
				return invalid("upgrade %s listed for %s and %s", up.ID, prev, def.Archetype)
			}
			owner[up.ID] = def.Archetype
		}
		t.byArchetype[def.Archetype] = def
	}
	for _, a := range Archetypes() {
		if t.byArchetype[a] == nil {
			return invalid("archetype %s missing", a)
		}
	}
	for i, pair := range t.Exclusive {
		if len(pair) != 2 {
			return invalid("exclusive[%d] must name two upgrades", i)
		}
		a, okA := owner[pair[0]]
		b, okB := owner[pair[1]]
		if !okA || !okB || a != b {
			return invalid("exclusive[%d] must pair upgrades of one archetype", i)
		}
	}
	if len(t.Enemies) == 0 {
		return invalid("at least one enemy tier is required")
	}
	for i, e := range t.Enemies {
		if e.HP <= 0 || e.Speed <= 0 {
			return invalid("enemy tier %d needs hp and speed > 0", i)
		}
	}
	w := t.Waves
	if w.DensityBase <= 0 {
		return invalid("waves: density_base must be positive")
	}
	if w.DurationBase <= 0 {
		return invalid("waves: duration_base must be positive")
	}
	return nil
}
