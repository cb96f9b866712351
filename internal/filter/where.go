package filter

import (
	"fmt"
	"strings"

	"github.com/Knetic/govaluate"

	"git.sr.ht/~jakintosh/tally/internal/core"
)

// Where is a compiled posting predicate such as
// "commodity == 'USD' && amount < 0".
//
// Expressions see the parameters account, commodity, amount, description,
// code and state. amount is a float64 copy of the balanced quantity and is
// only suitable for comparisons.
type Where struct {
	source string
	expr   *govaluate.EvaluableExpression
}

// CompileWhere parses expr. An empty expression yields a nil Where, which
// matches every posting.
func CompileWhere(expr string) (*Where, error) {
	source := strings.TrimSpace(expr)
	if source == "" {
		return nil, nil
	}

	compiled, err := govaluate.NewEvaluableExpression(source)
	if err != nil {
		return nil, fmt.Errorf("invalid where expression '%s': %w", source, err)
	}
	return &Where{source: source, expr: compiled}, nil
}

// Match evaluates the predicate for the posting p of tx.
func (w *Where) Match(tx *core.Transaction, p core.Posting) (bool, error) {
	if w == nil {
		return true, nil
	}

	result, err := w.expr.Evaluate(parameters(tx, p))
	if err != nil {
		return false, fmt.Errorf("evaluation error in '%s': %w", w.source, err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("where expression '%s' produced %v, not a boolean", w.source, result)
	}
	return matched, nil
}

func parameters(tx *core.Transaction, p core.Posting) map[string]any {
	params := map[string]any{
		"account":     p.Account,
		"commodity":   "",
		"amount":      0.0,
		"description": tx.Description,
		"code":        tx.Code,
		"state":       tx.State.String(),
	}
	if p.Balanced != nil {
		amount, _ := p.Balanced.Quantity.Float64()
		params["commodity"] = string(p.Balanced.Commodity)
		params["amount"] = amount
	}
	return params
}
