package montecarlo

import "fmt"

// Percent is a rate expressed in percent units for display: Percent(8)
// renders as "8.00%".
type Percent float64

// Rate converts a decimal rate to percent units, e.g. Rate(0.08) == Percent(8).
func Rate(r float64) Percent { return Percent(r * 100) }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
