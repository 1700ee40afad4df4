package montecarlo

import (
	"math"
	"sort"
)

// Summary is the distributional summary of the terminal values of one run.
// It is recomputed for every run and never persisted.
type Summary struct {
	Mean         float64
	StdDev       float64 // population formula: divisor is the path count.
	Min          float64
	Max          float64
	Percentile5  float64
	Percentile95 float64
}

// Summarize reduces the terminal values of a nonempty ensemble.
//
// Percentiles use the nearest-rank method: the value at ascending sorted
// index floor(p·n), with no interpolation between ranks. For small
// ensembles (n < 20) the 5th percentile therefore coincides with the
// minimum; that is accepted behavior. Overflowed runs propagate as ±Inf or
// NaN rather than being clamped.
func Summarize(e Ensemble) Summary {
	finals := e.TerminalValues()
	n := float64(len(finals))

	var sum float64
	for _, v := range finals {
		sum += v
	}
	mean := sum / n

	var sq float64
	for _, v := range finals {
		d := v - mean
		sq += d * d
	}

	sorted := append([]float64(nil), finals...)
	sort.Float64s(sorted)

	return Summary{
		Mean:         mean,
		StdDev:       math.Sqrt(sq / n),
		Min:          sorted[0],
		Max:          sorted[len(sorted)-1],
		Percentile5:  sorted[int(0.05*n)],
		Percentile95: sorted[int(0.95*n)],
	}
}
