package montecarlo

import (
	"errors"
	"fmt"
)

// Parameters is the immutable input of a simulation run.
//
// The zero value is invalid; callers must run Validate before handing
// Parameters to the simulation, which assumes pre-validated input.
type Parameters struct {
	InitialPrice float64 // S0, the price every trajectory starts from.
	Return       float64 // mu, expected annual return; may be negative.
	Volatility   float64 // sigma, annual volatility; zero degenerates to deterministic drift.
	Years        float64 // T, the time horizon in years.
	Steps        int     // number of discretized time increments per trajectory.
	Paths        int     // number of trajectories in the ensemble.
}

// Validate rejects invalid parameters before the core runs, reporting every
// failure at once rather than stopping at the first one.
func (p Parameters) Validate() error {
	var errs []error
	if p.InitialPrice <= 0 {
		errs = append(errs, fmt.Errorf("initial price must be positive, got %v", p.InitialPrice))
	}
	if p.Volatility < 0 {
		errs = append(errs, fmt.Errorf("volatility cannot be negative, got %v", p.Volatility))
	}
	if p.Years <= 0 {
		errs = append(errs, fmt.Errorf("time horizon must be positive, got %v years", p.Years))
	}
	if p.Steps < 1 {
		errs = append(errs, fmt.Errorf("step count must be at least 1, got %d", p.Steps))
	}
	if p.Paths < 1 {
		errs = append(errs, fmt.Errorf("path count must be at least 1, got %d", p.Paths))
	}
	return errors.Join(errs...)
}

// Dt returns the duration of one time increment, in years.
func (p Parameters) Dt() float64 { return p.Years / float64(p.Steps) }

// TimePoints returns the simulation time grid: i·T/steps for i in 0..steps.
// The same values appear as the header of the paths export and, one per
// line, in the time-points export.
func (p Parameters) TimePoints() []float64 {
	ts := make([]float64, p.Steps+1)
	for i := range ts {
		ts[i] = float64(i) * p.Years / float64(p.Steps)
	}
	return ts
}
