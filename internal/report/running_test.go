package report

import (
	"testing"

	"git.sr.ht/~jakintosh/tally/internal/core"
)

func TestTrackerSnapshotsAreIndependent(t *testing.T) {
	var tracker Tracker
	if len(tracker.Totals()) != 0 {
		t.Fatalf("expected empty totals from a zero tracker")
	}

	tracker = tracker.Post(core.MustAmount("USD", "50"))
	first := tracker.Totals()

	tracker = tracker.Post(core.MustAmount("EUR", "20"))
	second := tracker.Totals()

	if len(first) != 1 || !first["USD"].Equal(core.MustAmount("USD", "50")) {
		t.Fatalf("first snapshot changed after a later post: %v", first)
	}
	if len(second) != 2 {
		t.Fatalf("expected the EUR post to carry the USD total along, got %v", second)
	}
	if !second["USD"].Equal(core.MustAmount("USD", "50")) || !second["EUR"].Equal(core.MustAmount("EUR", "20")) {
		t.Fatalf("unexpected second snapshot %v", second)
	}

	amounts := second.Amounts()
	if amounts[0].Commodity != "EUR" || amounts[1].Commodity != "USD" {
		t.Fatalf("expected commodities in lexicographic order, got %v", amounts)
	}
}

func TestTrackFinalTotalsMatchAggregate(t *testing.T) {
	l := ledgerOf(
		transaction(t, "2025/01/01", core.Cleared, "A",
			posting("Assets:Bank", "USD", "100.10"),
			posting("Income:Salary", "USD", "-100.10"),
		),
		transaction(t, "2025/01/02", core.Cleared, "B",
			posting("Expenses:Food", "EUR", "12.345"),
			posting("Assets:Bank", "USD", "-3"),
		),
		transaction(t, "2025/01/03", core.Cleared, "C",
			posting("Assets:Broker", "AAPL", "2"),
		),
	)

	tracked, final, err := Track(l.Transactions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tracked) != 3 {
		t.Fatalf("expected 3 tracked transactions, got %d", len(tracked))
	}

	b, err := Aggregate(l.Transactions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !final.equal(b.Total()) {
		t.Fatalf("final running total %v differs from grand total %v", final, b.Total())
	}

	last := tracked[2].Postings[0].Total
	if !last.equal(final) {
		t.Fatalf("last snapshot %v differs from final totals %v", last, final)
	}
}

func TestTrackOrderSensitivity(t *testing.T) {
	a := transaction(t, "2025/01/01", core.Cleared, "A", posting("Assets:Bank", "USD", "10"))
	b := transaction(t, "2025/01/02", core.Cleared, "B", posting("Assets:Bank", "USD", "-4"))

	forward, forwardFinal, err := Track(ledgerOf(a, b).Transactions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	backward, backwardFinal, err := Track(ledgerOf(b, a).Transactions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if forward[0].Postings[0].Total.equal(backward[0].Postings[0].Total) {
		t.Fatalf("expected intermediate snapshots to depend on order")
	}
	if !forwardFinal.equal(backwardFinal) {
		t.Fatalf("final totals must not depend on order: %v vs %v", forwardFinal, backwardFinal)
	}
}

func TestTrackDisjointCommoditiesKeepTotalsPerCommodity(t *testing.T) {
	a := transaction(t, "2025/01/01", core.Cleared, "A", posting("Assets:Bank", "USD", "10"))
	b := transaction(t, "2025/01/02", core.Cleared, "B", posting("Assets:Bank", "EUR", "5"))

	forward, _, err := Track(ledgerOf(a, b).Transactions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	backward, _, err := Track(ledgerOf(b, a).Transactions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// each commodity's own total is unaffected by the other's position
	if !forward[0].Postings[0].Total["USD"].Equal(backward[1].Postings[0].Total["USD"]) {
		t.Fatalf("USD running total changed with a disjoint reordering")
	}
	if !forward[1].Postings[0].Total["EUR"].Equal(backward[0].Postings[0].Total["EUR"]) {
		t.Fatalf("EUR running total changed with a disjoint reordering")
	}
}

func TestTotalsIsZero(t *testing.T) {
	if !(Totals{}).IsZero() {
		t.Fatalf("empty totals must be zero")
	}
	zero := Totals{"USD": core.MustAmount("USD", "0"), "EUR": core.MustAmount("EUR", "0.00")}
	if !zero.IsZero() {
		t.Fatalf("expected all-zero totals to be zero")
	}
	zero["GBP"] = core.MustAmount("GBP", "0.01")
	if zero.IsZero() {
		t.Fatalf("one non-zero commodity makes totals non-zero")
	}
}
