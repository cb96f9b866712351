// Package ledger builds a core.Ledger from ledger files and resolves the
// balanced amount of every posting.
package ledger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"

	"git.sr.ht/~jakintosh/tally/internal/core"
	"git.sr.ht/~jakintosh/tally/internal/parser"
)

// ErrInvalidLedger is returned in strict mode when loading reported any issue.
var ErrInvalidLedger = errors.New("invalid ledger")

// Options control ledger construction.
type Options struct {
	// Strict turns every load issue into an error.
	Strict bool
	// SortByDate stable-sorts transactions by date within each journal.
	SortByDate bool
}

// Load parses every path, in order, and resolves balanced amounts.
func Load(opts Options, paths ...string) (*core.Ledger, core.LoadSummary, error) {
	var (
		ledger  core.Ledger
		summary core.LoadSummary
	)

	for _, path := range paths {
		result, err := parser.ParseFile(path)
		if err != nil {
			return nil, summary, fmt.Errorf("failed to parse ledger file '%s': %w", path, err)
		}
		for _, issue := range result.Issues {
			summary.Issues = append(summary.Issues, core.LoadIssue{
				Stage:   "parser",
				Path:    issue.Path,
				Line:    issue.Line,
				Message: issue.Message,
			})
		}
		ledger.Journals = append(ledger.Journals, result.Journals...)
	}

	summary.Issues = append(summary.Issues, Build(&ledger, opts)...)

	summary.Journals = len(ledger.Journals)
	for tx := range ledger.Transactions() {
		summary.Transactions++
		summary.Postings += len(tx.Postings)
	}

	if opts.Strict && len(summary.Issues) > 0 {
		first := summary.Issues[0]
		return nil, summary, fmt.Errorf("%s:%d: %s: %w", first.Path, first.Line, first.Message, ErrInvalidLedger)
	}
	return &ledger, summary, nil
}

// Build resolves balanced amounts in place and returns the issues found.
// Postings that cannot be resolved keep a nil Balanced amount.
func Build(l *core.Ledger, opts Options) []core.LoadIssue {
	var issues []core.LoadIssue
	for j := range l.Journals {
		journal := &l.Journals[j]
		if opts.SortByDate {
			sort.SliceStable(journal.Transactions, func(a, b int) bool {
				return journal.Transactions[a].Date.Before(journal.Transactions[b].Date)
			})
		}
		for t := range journal.Transactions {
			tx := &journal.Transactions[t]
			if err := Resolve(tx); err != nil {
				issues = append(issues, core.LoadIssue{
					Stage:   "ledger",
					Path:    journal.Path,
					Line:    tx.Line,
					Message: err.Error(),
				})
			}
		}
	}
	return issues
}

// Resolve fills in the balanced amount of every posting of tx.
//
// Written amounts are taken as is. A single elided posting absorbs the
// remainder; when the remainder spans several commodities the posting is
// split into one posting per commodity. Without an elided posting, exactly two
// unbalanced commodities are accepted as an exchange.
func Resolve(tx *core.Transaction) error {
	remainder := map[core.Commodity]core.Amount{}
	elided := -1

	for i := range tx.Postings {
		p := &tx.Postings[i]
		if p.Amount == nil {
			if elided != -1 {
				return fmt.Errorf("%q: more than one posting without an amount", tx.Description)
			}
			elided = i
			continue
		}
		balanced := *p.Amount
		p.Balanced = &balanced
		if sum, ok := remainder[balanced.Commodity]; ok {
			remainder[balanced.Commodity] = sum.Add(balanced)
		} else {
			remainder[balanced.Commodity] = balanced
		}
	}

	// commodities that do not balance to zero, in a stable order
	var open []core.Commodity
	for _, c := range slices.Sorted(maps.Keys(remainder)) {
		if !remainder[c].IsZero() {
			open = append(open, c)
		}
	}

	if elided == -1 {
		// two open commodities are an exchange at an implied price
		if len(open) > 0 && len(open) != 2 {
			return fmt.Errorf("%q: does not balance (%s off by %s)", tx.Description, open[0], remainder[open[0]].Format())
		}
		return nil
	}

	switch len(open) {
	case 0:
		zero := core.MustAmount("", "0")
		if len(remainder) == 1 {
			for c := range remainder {
				zero.Commodity = c
			}
		}
		tx.Postings[elided].Balanced = &zero
	case 1:
		balanced := remainder[open[0]].Neg()
		tx.Postings[elided].Balanced = &balanced
	default:
		template := tx.Postings[elided]
		split := make([]core.Posting, 0, len(open))
		for _, c := range open {
			balanced := remainder[c].Neg()
			p := template
			p.Balanced = &balanced
			split = append(split, p)
		}
		tx.Postings = slices.Concat(tx.Postings[:elided], split, tx.Postings[elided+1:])
	}
	return nil
}
