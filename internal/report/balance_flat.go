package report

import (
	"io"
	"strings"

	"git.sr.ht/~jakintosh/tally/internal/core"
)

// BalanceFlat writes the balance of every account followed by a separator
// rule and the grand total. A ledger whose grand total is zero in every
// commodity gets a single "0" total line.
// Nothing is written when the ledger holds an unresolved posting.
func BalanceFlat(w io.Writer, l *core.Ledger, style Style) error {
	balances, err := Aggregate(l.Transactions())
	if err != nil {
		return err
	}

	accounts := balances.Accounts()
	total := balances.Total()
	zero := total.IsZero()

	amountWidth := func(a core.Amount) int {
		return width(string(a.Commodity)) + width(a.Format())
	}

	columnWidth := 0
	for _, account := range accounts {
		for _, a := range balances.Account(account).Amounts() {
			columnWidth = max(columnWidth, amountWidth(a))
		}
	}
	for _, a := range total.Amounts() {
		columnWidth = max(columnWidth, amountWidth(a))
	}
	if zero {
		columnWidth = max(columnWidth, width("0"))
	}

	var b strings.Builder
	for _, account := range accounts {
		amounts := balances.Account(account).Amounts()
		for i, a := range amounts {
			b.WriteString(balanceCell(style, a, columnWidth))
			if i < len(amounts)-1 {
				b.WriteString("\n")
			}
		}
		b.WriteString(" ")
		b.WriteString(style.Account(account))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("-", columnWidth))
	b.WriteString("\n")

	if zero {
		b.WriteString(padLeft("0", columnWidth))
		b.WriteString("\n")
	} else {
		for _, a := range total.Amounts() {
			b.WriteString(balanceCell(style, a, columnWidth))
			b.WriteString("\n")
		}
	}

	_, err = io.WriteString(w, b.String())
	return err
}

// balanceCell right-aligns the commodity and amount together in the column.
func balanceCell(style Style, a core.Amount, columnWidth int) string {
	text := padLeft(string(a.Commodity)+a.Format(), columnWidth)
	if a.IsNegative() {
		return style.Negative(text)
	}
	return text
}
