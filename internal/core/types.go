package core

import (
	"fmt"
	"iter"
	"strings"
	"time"
	"unicode"
)

// State is the clearing state of a transaction.
type State int

const (
	Uncleared State = iota
	Cleared
	Pending
)

// Marker returns the ledger-cli marker for the state ("*", "!" or "").
func (s State) Marker() string {
	switch s {
	case Cleared:
		return "*"
	case Pending:
		return "!"
	default:
		return ""
	}
}

func (s State) String() string {
	switch s {
	case Cleared:
		return "cleared"
	case Pending:
		return "pending"
	default:
		return "uncleared"
	}
}

// Posting represents a single entry in a transaction.
type Posting struct {
	Account  string  // e.g., "Expenses:Food:Groceries"
	Amount   *Amount // as written in the source, nil when elided
	Balanced *Amount // resolved by ledger construction
	Comment  string  // optional inline comment written after the amount
}

// Transaction represents a complete financial event.
type Transaction struct {
	Date        time.Time
	State       State
	Code        string // optional "(CODE)" written before the description
	Description string
	Comment     string // optional comment appended to the header line
	Postings    []Posting
	Line        int // line of the header in the source file
}

// Journal holds the transactions read from one source file.
type Journal struct {
	Path         string
	Transactions []Transaction
}

// Ledger is an ordered collection of journals.
type Ledger struct {
	Journals []Journal
}

// Transactions yields every transaction in journal order, then in
// transaction order within each journal.
func (l *Ledger) Transactions() iter.Seq[*Transaction] {
	return func(yield func(*Transaction) bool) {
		for j := range l.Journals {
			journal := &l.Journals[j]
			for t := range journal.Transactions {
				if !yield(&journal.Transactions[t]) {
					return
				}
			}
		}
	}
}

// Header returns the register header: date, clearing marker and description.
func (t *Transaction) Header() string {
	date := t.Date.Format("2006/01/02")
	switch t.State {
	case Cleared:
		return date + " * " + t.Description
	case Pending:
		return date + " ! " + t.Description
	default:
		return date + " " + t.Description
	}
}

// String formats the transaction in ledger-cli format with tab-based alignment.
func (t *Transaction) String() string {
	var builder strings.Builder

	// Date, state, code and description line
	line := t.Date.Format("2006/01/02")
	if marker := t.State.Marker(); marker != "" {
		line += " " + marker
	}
	if t.Code != "" {
		line += " (" + t.Code + ")"
	}
	line += " " + t.Description

	// Add comment if present (aligned to tab 12 = column 48)
	if strings.TrimSpace(t.Comment) != "" {
		line = addTabsToColumn(line, 44) + fmt.Sprintf("; %s", strings.TrimSpace(t.Comment))
	}
	builder.WriteString(line + "\n")

	formattedAmounts := formatAmounts(t.Postings)

	for i, posting := range t.Postings {
		line = "\t" + posting.Account

		if posting.Amount != nil {
			line = addTabsToColumn(line, 44) + formattedAmounts[i]
		}

		if strings.TrimSpace(posting.Comment) != "" {
			line = addTabsToColumn(line, 56) + fmt.Sprintf("; %s", strings.TrimSpace(posting.Comment))
		}
		builder.WriteString(line + "\n")
	}

	return builder.String()
}

// addTabsToColumn adds tabs to a string to reach the target column position.
// Assumes tab width of 4.
func addTabsToColumn(s string, targetCol int) string {
	currentCol := calculateColumnPosition(s)
	if currentCol >= targetCol {
		return s + "\t" // At least one tab
	}

	for currentCol < targetCol {
		s += "\t"
		currentCol = calculateColumnPosition(s)
	}
	return s
}

// calculateColumnPosition calculates the column position of a string
// accounting for tab width of 4.
func calculateColumnPosition(s string) int {
	col := 0
	for _, ch := range s {
		if ch == '\t' {
			col = ((col / 4) + 1) * 4
		} else {
			col++
		}
	}
	return col
}

// prefixCommodity reports whether c is written before the quantity, as
// symbols like "$" or "€" are. Alphabetic commodities follow the quantity.
func prefixCommodity(c Commodity) bool {
	if c == "" {
		return false
	}
	for _, r := range string(c) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// formatAmounts formats the written posting amounts with aligned decimal points.
// Prefix symbols sit right before the sign and digits; suffix commodities are
// separated from the quantity by a single space.
func formatAmounts(postings []Posting) []string {
	type parsedAmount struct {
		left  string // prefix symbol, sign and integer digits
		right string // fractional digits and suffix commodity
	}

	parsed := make([]parsedAmount, len(postings))
	maxLeft := 0

	for i, posting := range postings {
		if posting.Amount == nil {
			continue
		}

		quantity := posting.Amount.Written()
		sign := ""
		if strings.HasPrefix(quantity, "-") {
			sign = "-"
			quantity = quantity[1:]
		}
		intPart, decPart, _ := strings.Cut(quantity, ".")

		p := parsedAmount{left: sign + intPart}
		if prefixCommodity(posting.Amount.Commodity) {
			p.left = string(posting.Amount.Commodity) + p.left
		}
		if decPart != "" {
			p.right = "." + decPart
		}
		if c := posting.Amount.Commodity; c != "" && !prefixCommodity(c) {
			p.right += " " + string(c)
		}
		parsed[i] = p

		if width := len([]rune(p.left)); width > maxLeft {
			maxLeft = width
		}
	}

	result := make([]string, len(postings))
	for i, p := range parsed {
		if postings[i].Amount == nil {
			continue
		}
		padding := maxLeft - len([]rune(p.left))
		result[i] = strings.Repeat(" ", padding) + p.left + p.right
	}

	return result
}
