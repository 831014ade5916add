// internal/component/ledger.go
package component

import "go-path-defense/internal/defs"

// DamageLedger totals the damage each archetype has dealt. Entries only grow.
type DamageLedger [defs.ArchetypeCount]float64

func (l *DamageLedger) Add(a defs.Archetype, amount float64) {
	if a.Valid() && amount > 0 {
		l[a] += amount
	}
}

func (l *DamageLedger) Get(a defs.Archetype) float64 {
	if !a.Valid() {
		return 0
	}
	return l[a]
}
