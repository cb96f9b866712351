package report

import (
	"maps"
	"testing"
	"time"

	"git.sr.ht/~jakintosh/tally/internal/core"
)

func posting(account string, c core.Commodity, q string) core.Posting {
	a := core.MustAmount(c, q)
	return core.Posting{Account: account, Amount: &a, Balanced: &a}
}

func transaction(t *testing.T, date string, state core.State, description string, postings ...core.Posting) core.Transaction {
	t.Helper()
	d, err := time.Parse("2006/01/02", date)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	return core.Transaction{Date: d, State: state, Description: description, Postings: postings}
}

func ledgerOf(txs ...core.Transaction) *core.Ledger {
	return &core.Ledger{Journals: []core.Journal{{Path: "test.ledger", Transactions: txs}}}
}

// equal reports whether t and o hold the same commodities with equal sums.
func (t Totals) equal(o Totals) bool {
	return maps.EqualFunc(t, o, core.Amount.Equal)
}
