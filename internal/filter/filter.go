// Package filter narrows a ledger down to the postings a report should see.
package filter

import (
	"time"

	"git.sr.ht/~jakintosh/tally/internal/core"
)

// Options select postings. Zero values select everything.
type Options struct {
	// Patterns are account prefixes; a posting matches when its account
	// starts with any of them.
	Patterns []string
	// Where is an optional posting predicate, see CompileWhere.
	Where *Where
	// Begin is the first date included.
	Begin time.Time
	// End is the first date excluded.
	End time.Time
}

// IsZero reports whether opts selects every posting.
func (opts Options) IsZero() bool {
	return len(opts.Patterns) == 0 && opts.Where == nil && opts.Begin.IsZero() && opts.End.IsZero()
}

// Apply returns a new ledger holding only the selected postings. Transactions
// left without postings are dropped, journals are kept even when empty. l is
// not modified.
func Apply(l *core.Ledger, opts Options) (*core.Ledger, error) {
	accounts := matchingAccounts(l, opts.Patterns)

	out := &core.Ledger{Journals: make([]core.Journal, 0, len(l.Journals))}
	for _, journal := range l.Journals {
		kept := core.Journal{Path: journal.Path}

		for i := range journal.Transactions {
			tx := &journal.Transactions[i]
			if !inRange(tx.Date, opts.Begin, opts.End) {
				continue
			}

			var postings []core.Posting
			for _, p := range tx.Postings {
				if accounts != nil {
					if _, ok := accounts[p.Account]; !ok {
						continue
					}
				}
				ok, err := opts.Where.Match(tx, p)
				if err != nil {
					return nil, err
				}
				if ok {
					postings = append(postings, p)
				}
			}
			if len(postings) == 0 {
				continue
			}

			copied := *tx
			copied.Postings = postings
			kept.Transactions = append(kept.Transactions, copied)
		}

		out.Journals = append(out.Journals, kept)
	}
	return out, nil
}

// matchingAccounts returns nil when every account matches.
func matchingAccounts(l *core.Ledger, patterns []string) map[string]struct{} {
	if len(patterns) == 0 {
		return nil
	}

	trie := AccountTrie(l)
	accounts := make(map[string]struct{})
	for _, pattern := range patterns {
		for _, account := range trie.Find(pattern) {
			accounts[account] = struct{}{}
		}
	}
	return accounts
}

func inRange(date, begin, end time.Time) bool {
	if !begin.IsZero() && date.Before(begin) {
		return false
	}
	if !end.IsZero() && !date.Before(end) {
		return false
	}
	return true
}
