// internal/defs/enemies.go
package defs

// EnemyTier holds the static data for one enemy strength class.
type EnemyTier struct {
	Name           string  `yaml:"name"`
	Color          string  `yaml:"color"`
	HP             float64 `yaml:"hp"`
	Gold           int     `yaml:"gold"`
	Speed          float64 `yaml:"speed"` // multiplier on the path base rate
	Size           float64 `yaml:"size"`  // collision radius in pixels
	AttackDamage   float64 `yaml:"attack_damage"`
	AttackInterval float64 `yaml:"attack_interval"`
}
