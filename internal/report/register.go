package report

import (
	"io"
	"strings"

	"git.sr.ht/~jakintosh/tally/internal/core"
)

// Register writes every transaction of l in stream order, each posting
// annotated with the running total of every commodity seen so far.
// Nothing is written when the ledger holds an unresolved posting.
func Register(w io.Writer, l *core.Ledger, style Style) error {
	tracked, _, err := Track(l.Transactions())
	if err != nil {
		return err
	}

	rows := make([]registerRow, 0, len(tracked))
	for _, t := range tracked {
		row := registerRow{header: t.Transaction.Header()}
		for _, p := range t.Postings {
			line := registerLine{account: p.Account, amount: newCell(p.Amount)}
			for _, total := range p.Total.Amounts() {
				line.totals = append(line.totals, newCell(total))
			}
			row.lines = append(row.lines, line)
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	renderRegister(&b, rows, measureRegister(rows), style)
	_, err = io.WriteString(w, b.String())
	return err
}
