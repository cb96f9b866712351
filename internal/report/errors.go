package report

import (
	"fmt"
	"time"

	"git.sr.ht/~jakintosh/tally/internal/core"
)

// AggregationError reports a posting that reached a report without a
// balanced amount. It means ledger construction did not validate the
// input, so the report is abandoned rather than guessing a value.
type AggregationError struct {
	Date        time.Time
	Description string
	Posting     int // index within the transaction
	Account     string
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("%s %q: posting %d (%s) has no balanced amount",
		e.Date.Format("2006/01/02"), e.Description, e.Posting, e.Account)
}

// balanced returns the balanced amount of the i-th posting of tx.
func balanced(tx *core.Transaction, i int) (core.Amount, error) {
	p := &tx.Postings[i]
	if p.Balanced == nil {
		return core.Amount{}, &AggregationError{
			Date:        tx.Date,
			Description: tx.Description,
			Posting:     i,
			Account:     p.Account,
		}
	}
	return *p.Balanced, nil
}
