package montecarlo

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// Ensemble is the ordered collection of trajectories produced by one run.
// All trajectories have identical length and are read-only downstream.
type Ensemble []Trajectory

// NewRand returns a random source seeded from the operating system entropy
// pool, falling back to the clock only if the pool is unreadable. One source
// serves a whole run: reseeding per path is disallowed, it would compromise
// independence across the ensemble.
func NewRand() *rand.Rand {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
}

// Run generates the full ensemble for the given parameters, invoking the
// path generator once per path and advancing the shared random source across
// calls. Paths are drawn from one continuing stream, not from per-path
// streams. Parameters are assumed to have passed Validate.
func Run(p Parameters, rng *rand.Rand) Ensemble {
	paths := make(Ensemble, p.Paths)
	for i := range paths {
		paths[i] = GeneratePath(p, rng)
	}
	return paths
}

// TerminalValues returns the final price of every trajectory, in path order.
func (e Ensemble) TerminalValues() []float64 {
	vs := make([]float64, len(e))
	for i, t := range e {
		vs[i] = t.Terminal()
	}
	return vs
}
