package report

import (
	"iter"

	"git.sr.ht/~jakintosh/tally/internal/core"
)

// Tracker is a running per-commodity total. Post never modifies the
// receiver, so every Totals it hands out stays valid as a snapshot.
// Each Post copies the map, so tracking costs postings times commodities.
type Tracker struct {
	totals Totals
}

// Post returns the tracker after a has been added.
func (t Tracker) Post(a core.Amount) Tracker {
	next := make(Totals, len(t.totals)+1)
	for c, sum := range t.totals {
		next[c] = sum
	}
	next.add(a)
	return Tracker{totals: next}
}

// Totals returns every commodity accumulated so far. It must not be modified.
func (t Tracker) Totals() Totals {
	if t.totals == nil {
		return Totals{}
	}
	return t.totals
}

// TrackedPosting is one posting with the running total right after it.
type TrackedPosting struct {
	Account string
	Amount  core.Amount
	Total   Totals
}

// TrackedTransaction groups the tracked postings of one transaction.
type TrackedTransaction struct {
	Transaction *core.Transaction
	Postings    []TrackedPosting
}

// Track folds the stream in order, recording the complete running total
// after each posting. It returns the tracked stream and the final totals.
func Track(txs iter.Seq[*core.Transaction]) ([]TrackedTransaction, Totals, error) {
	var (
		tracker Tracker
		tracked []TrackedTransaction
	)
	for tx := range txs {
		entry := TrackedTransaction{Transaction: tx, Postings: make([]TrackedPosting, 0, len(tx.Postings))}
		for i := range tx.Postings {
			amount, err := balanced(tx, i)
			if err != nil {
				return nil, nil, err
			}
			tracker = tracker.Post(amount)
			entry.Postings = append(entry.Postings, TrackedPosting{
				Account: tx.Postings[i].Account,
				Amount:  amount,
				Total:   tracker.Totals(),
			})
		}
		tracked = append(tracked, entry)
	}
	return tracked, tracker.Totals(), nil
}
