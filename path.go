package montecarlo

import (
	"math"
	"math/rand"
)

// Trajectory is one simulated price path: Steps+1 prices, element 0 being
// the initial price. It is immutable once generated.
type Trajectory []float64

// Terminal returns the simulated price at the end of the time horizon.
func (t Trajectory) Terminal() float64 { return t[len(t)-1] }

// GeneratePath draws exactly one trajectory from the given random source
// using the log-Euler discretization of Geometric Brownian Motion:
//
//	price[i] = price[i-1] · exp((mu − 0.5·sigma²)·dt + sigma·√dt·Z)
//
// with Z drawn from a standard normal distribution at every step. Prices
// stay strictly positive for any finite Z since each step multiplies by an
// exponential. With sigma = 0 the diffusion term vanishes and the path is
// deterministic compounding at rate mu.
//
// The source is explicitly passed so a fixed, reproducible source can stand
// in for the system-seeded one under test. Parameters are assumed to have
// passed Validate.
func GeneratePath(p Parameters, rng *rand.Rand) Trajectory {
	path := make(Trajectory, p.Steps+1)
	path[0] = p.InitialPrice

	dt := p.Dt()
	drift := (p.Return - 0.5*p.Volatility*p.Volatility) * dt
	vol := p.Volatility * math.Sqrt(dt)

	for i := 1; i <= p.Steps; i++ {
		z := rng.NormFloat64()
		path[i] = path[i-1] * math.Exp(drift+vol*z)
	}
	return path
}
