package report

import (
	"iter"
	"maps"
	"slices"

	"git.sr.ht/~jakintosh/tally/internal/core"
)

// Balances holds per-account, per-commodity sums and their grand total.
type Balances struct {
	accounts map[string]Totals
	total    Totals
}

// Aggregate sums the balanced amount of every posting by account and
// commodity. It is a pure function of the stream.
func Aggregate(txs iter.Seq[*core.Transaction]) (*Balances, error) {
	b := &Balances{
		accounts: map[string]Totals{},
		total:    Totals{},
	}
	for tx := range txs {
		for i := range tx.Postings {
			amount, err := balanced(tx, i)
			if err != nil {
				return nil, err
			}
			account := tx.Postings[i].Account
			totals, ok := b.accounts[account]
			if !ok {
				totals = Totals{}
				b.accounts[account] = totals
			}
			totals.add(amount)
			b.total.add(amount)
		}
	}
	return b, nil
}

// Accounts returns the account names in lexicographic order.
func (b *Balances) Accounts() []string {
	return slices.Sorted(maps.Keys(b.accounts))
}

// Account returns the sums of one account, nil when it has no postings.
func (b *Balances) Account(name string) Totals {
	return b.accounts[name]
}

// Total returns the grand total across every account.
func (b *Balances) Total() Totals {
	return b.total
}
