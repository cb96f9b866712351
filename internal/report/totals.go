package report

import (
	"maps"
	"slices"

	"git.sr.ht/~jakintosh/tally/internal/core"
)

// Totals maps each commodity to its exact sum.
type Totals map[core.Commodity]core.Amount

// add accumulates a into t. Absent commodities start at a.
func (t Totals) add(a core.Amount) {
	if sum, ok := t[a.Commodity]; ok {
		t[a.Commodity] = sum.Add(a)
		return
	}
	t[a.Commodity] = a
}

// Amounts returns the sums ordered by commodity.
func (t Totals) Amounts() []core.Amount {
	amounts := make([]core.Amount, 0, len(t))
	for _, c := range slices.Sorted(maps.Keys(t)) {
		amounts = append(amounts, t[c])
	}
	return amounts
}

// IsZero reports whether every sum is exactly zero. Empty totals are zero.
func (t Totals) IsZero() bool {
	for _, a := range t {
		if !a.IsZero() {
			return false
		}
	}
	return true
}
