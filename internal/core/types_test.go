package core

import (
	"slices"
	"strings"
	"testing"
	"time"
)

func amt(c Commodity, q string) *Amount {
	a := MustAmount(c, q)
	return &a
}

func TestTransactionStringIncludesCommentsAndState(t *testing.T) {
	tx := Transaction{
		Date:        time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC),
		Description: "Acme Co",
		Comment:     "Invoice 123",
		State:       Cleared,
		Postings: []Posting{
			{Account: "Expenses:Office", Amount: amt("USD", "100.00"), Comment: "Supplies"},
			{Account: "Assets:Checking", Amount: amt("USD", "-100.00")},
		},
	}

	out := tx.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "2025/02/10 * Acme Co\t") {
		t.Fatalf("unexpected header line start: %q", lines[0])
	}
	if !strings.Contains(lines[0], "; Invoice 123") {
		t.Fatalf("expected header line to contain comment, got %q", lines[0])
	}
	if !strings.Contains(lines[1], " 100.00 USD\t; Supplies") {
		t.Fatalf("expected debit line with suffix commodity and comment, got %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "-100.00 USD") {
		t.Fatalf("expected credit line without comment, got %q", lines[2])
	}
}

func TestTransactionStringPendingWithCode(t *testing.T) {
	tx := Transaction{
		Date:        time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
		State:       Pending,
		Code:        "1042",
		Description: "Pending Payee",
		Postings: []Posting{
			{Account: "Assets:Checking", Amount: amt("$", "-50")},
			{Account: "Expenses:Misc"},
		},
	}

	lines := strings.Split(tx.String(), "\n")
	if lines[0] != "2025/03/05 ! (1042) Pending Payee" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[2] != "\tExpenses:Misc" {
		t.Fatalf("expected elided amount to leave the posting bare, got %q", lines[2])
	}
}

func TestTransactionStringExactFormat(t *testing.T) {
	tx := Transaction{
		Date:        time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		Description: "Test Store",
		Comment:     "monthly supplies",
		State:       Cleared,
		Postings: []Posting{
			{Account: "Expenses:Office", Amount: amt("$", "100.99"), Comment: "pens"},
			{Account: "Expenses:Food", Amount: amt("$", "1.00")},
			{Account: "Assets:Checking", Amount: amt("$", "-101.99")},
		},
	}

	expected := "2025/01/15 * Test Store\t\t\t\t\t\t; monthly supplies\n" +
		"\tExpenses:Office\t\t\t\t\t\t\t $100.99\t; pens\n" +
		"\tExpenses:Food\t\t\t\t\t\t\t   $1.00\n" +
		"\tAssets:Checking\t\t\t\t\t\t\t$-101.99\n"

	actual := tx.String()
	if actual != expected {
		t.Fatalf("transaction format mismatch\nExpected:\n%q\n\nActual:\n%q", expected, actual)
	}
}

func TestTransactionHeader(t *testing.T) {
	date := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		state    State
		expected string
	}{
		{Cleared, "2024/12/01 * Rent"},
		{Pending, "2024/12/01 ! Rent"},
		{Uncleared, "2024/12/01 Rent"},
	}
	for _, test := range tests {
		tx := Transaction{Date: date, State: test.state, Description: "Rent"}
		if got := tx.Header(); got != test.expected {
			t.Errorf("state %v: expected %q, got %q", test.state, test.expected, got)
		}
	}
}

func TestLedgerTransactionsFlattensInJournalOrder(t *testing.T) {
	ledger := Ledger{Journals: []Journal{
		{Path: "a", Transactions: []Transaction{{Description: "a1"}, {Description: "a2"}}},
		{Path: "empty"},
		{Path: "b", Transactions: []Transaction{{Description: "b1"}}},
	}}

	var got []string
	for tx := range ledger.Transactions() {
		got = append(got, tx.Description)
	}
	if want := []string{"a1", "a2", "b1"}; !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// stopping early must not panic or yield further
	count := 0
	for range ledger.Transactions() {
		count++
		break
	}
	if count != 1 {
		t.Fatalf("expected early break after one transaction, got %d", count)
	}
}
