package report

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"git.sr.ht/~jakintosh/tally/internal/core"
)

// gap separates adjacent register columns. The posting amount is followed by
// twice the gap before the running total.
const gap = 4

func width(s string) int {
	return runewidth.StringWidth(s)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func padLeft(s string, w int) string {
	return spaces(w-width(s)) + s
}

func padRight(s string, w int) string {
	return s + spaces(w-width(s))
}

// cell is a formatted amount ready for layout.
type cell struct {
	commodity string
	quantity  string
	negative  bool
}

func newCell(a core.Amount) cell {
	return cell{
		commodity: string(a.Commodity),
		quantity:  a.Format(),
		negative:  a.IsNegative(),
	}
}

// registerLine is one posting of a register row.
type registerLine struct {
	account string
	amount  cell
	totals  []cell // running total after the posting, by commodity
}

// registerRow is one transaction of the register.
type registerRow struct {
	header string
	lines  []registerLine
}

// registerColumns holds the width of every register column.
type registerColumns struct {
	header    int
	account   int
	commodity int
	amount    int
	total     int
}

// measureRegister computes the column widths over the complete row set.
func measureRegister(rows []registerRow) registerColumns {
	var cols registerColumns
	for _, row := range rows {
		cols.header = max(cols.header, width(row.header))
		for _, line := range row.lines {
			cols.account = max(cols.account, width(line.account))
			cols.commodity = max(cols.commodity, width(line.amount.commodity))
			cols.amount = max(cols.amount, width(line.amount.quantity))
			for _, total := range line.totals {
				cols.commodity = max(cols.commodity, width(total.commodity))
				cols.total = max(cols.total, width(total.quantity))
			}
		}
	}
	return cols
}

// accountIndent is where the account column starts.
func (c registerColumns) accountIndent() int {
	return c.header + gap
}

// totalIndent is where the running-total column starts.
func (c registerColumns) totalIndent() int {
	return c.header + gap + c.account + gap + c.commodity + c.amount + 2*gap
}

// renderRegister writes rows aligned to cols.
func renderRegister(b *strings.Builder, rows []registerRow, cols registerColumns, style Style) {
	for _, row := range rows {
		if len(row.lines) == 0 {
			b.WriteString(row.header + "\n")
			continue
		}
		b.WriteString(padRight(row.header, cols.accountIndent()))

		for i, line := range row.lines {
			if i > 0 {
				b.WriteString("\n")
				b.WriteString(spaces(cols.accountIndent()))
			}

			b.WriteString(style.Account(line.account))
			b.WriteString(spaces(cols.account + gap - width(line.account)))

			b.WriteString(highlight(style, line.amount, cols.commodity, cols.amount))
			b.WriteString(spaces(2 * gap))

			for j, total := range line.totals {
				if j > 0 {
					b.WriteString("\n")
					b.WriteString(spaces(cols.totalIndent()))
				}
				b.WriteString(highlight(style, total, cols.commodity, cols.total))
			}
		}

		b.WriteString("\n")
	}
}

// highlight right-aligns the commodity and quantity of c in their columns,
// flagging negative amounts.
func highlight(style Style, c cell, commodityWidth, quantityWidth int) string {
	text := padLeft(c.commodity, commodityWidth) + padLeft(c.quantity, quantityWidth)
	if c.negative {
		return style.Negative(text)
	}
	return text
}
