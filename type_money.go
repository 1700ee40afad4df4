package montecarlo

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a simulated price for reporting purposes. Statistics stay
// float64 throughout the core; Money only enters at the rendering boundary.
type Money struct {
	value float64
	cur   string
}

// M creates a money value in the given currency.
func M(value float64, currency string) Money { return Money{value: value, cur: currency} }

// USD is a shorthand for the report currency.
func USD(v float64) Money { return M(v, "USD") }

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String renders the value with the currency symbol and its fraction digits,
// e.g. "$108.33". Non-finite values stay visible: an overflowed simulation
// must show up in the report as Inf or NaN, never be clamped.
func (m Money) String() string {
	cur := m.currency()
	if math.IsNaN(m.value) || math.IsInf(m.value, 0) {
		return cur.Grapheme + fmt.Sprint(m.value)
	}
	dec := decimal.NewFromFloat(m.value).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// Equal compares two money values exactly.
func (m Money) Equal(n Money) bool { return m.value == n.value && m.cur == n.cur }
