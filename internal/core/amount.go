package core

import (
	"github.com/shopspring/decimal"
)

// Commodity identifies a unit of account, e.g. "USD", "$" or "AAPL".
type Commodity string

// Amount is an exact quantity of a single commodity.
type Amount struct {
	Commodity Commodity
	Quantity  decimal.Decimal
}

// NewAmount parses quantity as an exact decimal.
func NewAmount(commodity Commodity, quantity string) (Amount, error) {
	q, err := decimal.NewFromString(quantity)
	if err != nil {
		return Amount{}, err
	}
	return Amount{Commodity: commodity, Quantity: q}, nil
}

// MustAmount is like NewAmount but panics on a malformed quantity.
func MustAmount(commodity Commodity, quantity string) Amount {
	a, err := NewAmount(commodity, quantity)
	if err != nil {
		panic(err)
	}
	return a
}

// Add returns a+b. Both amounts must share the same commodity.
func (a Amount) Add(b Amount) Amount {
	if a.Commodity != b.Commodity {
		panic("commodity mismatch: " + string(a.Commodity) + " != " + string(b.Commodity))
	}
	return Amount{Commodity: a.Commodity, Quantity: a.Quantity.Add(b.Quantity)}
}

func (a Amount) Neg() Amount         { return Amount{Commodity: a.Commodity, Quantity: a.Quantity.Neg()} }
func (a Amount) IsZero() bool        { return a.Quantity.IsZero() }
func (a Amount) IsNegative() bool    { return a.Quantity.IsNegative() }
func (a Amount) Equal(b Amount) bool { return a.Commodity == b.Commodity && a.Quantity.Equal(b.Quantity) }

// Format returns the canonical decimal form of the quantity: an explicit
// leading "-" when negative, no "+", and no trailing fractional zeros.
func (a Amount) Format() string {
	return a.Quantity.String()
}

// Written returns the quantity with the precision it was parsed with, so
// "100.00" keeps its two fractional digits.
func (a Amount) Written() string {
	places := -a.Quantity.Exponent()
	if places < 0 {
		places = 0
	}
	return a.Quantity.StringFixed(places)
}

// String returns the commodity followed by the formatted quantity.
func (a Amount) String() string {
	return string(a.Commodity) + a.Format()
}
