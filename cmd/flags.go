package cmd

import (
	"flag"

	"github.com/etnz/montecarlo"
)

// paramFlags declares the six simulation parameters as flags, shared by every
// command that runs a simulation.
type paramFlags struct {
	s0    float64
	mu    float64
	sigma float64
	years float64
	steps int
	paths int
}

func (p *paramFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&p.s0, "s0", 100, "Initial stock price in dollars")
	f.Float64Var(&p.mu, "mu", 0.08, "Expected annual return as a decimal, e.g. 0.08 for 8%")
	f.Float64Var(&p.sigma, "sigma", 0.20, "Annual volatility as a decimal, e.g. 0.20 for 20%")
	f.Float64Var(&p.years, "years", 1, "Time horizon in years")
	f.IntVar(&p.steps, "steps", 252, "Number of time steps per path")
	f.IntVar(&p.paths, "paths", 1000, "Number of simulated paths")
}

func (p *paramFlags) Parameters() montecarlo.Parameters {
	return montecarlo.Parameters{
		InitialPrice: p.s0,
		Return:       p.mu,
		Volatility:   p.sigma,
		Years:        p.years,
		Steps:        p.steps,
		Paths:        p.paths,
	}
}
