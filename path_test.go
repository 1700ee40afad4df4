package montecarlo

import (
	"math"
	"math/rand"
	"testing"
)

func TestGeneratePath_Shape(t *testing.T) {
	p := validParams()
	rng := rand.New(rand.NewSource(42))

	path := GeneratePath(p, rng)

	if len(path) != p.Steps+1 {
		t.Fatalf("len(path) = %d, want %d", len(path), p.Steps+1)
	}
	if path[0] != p.InitialPrice {
		t.Errorf("path[0] = %v, want %v", path[0], p.InitialPrice)
	}
	for i, v := range path {
		if v <= 0 {
			t.Errorf("path[%d] = %v, want strictly positive", i, v)
		}
	}
	if path.Terminal() != path[p.Steps] {
		t.Errorf("Terminal() = %v, want %v", path.Terminal(), path[p.Steps])
	}
}

func TestGeneratePath_ZeroVolatilityIsDeterministic(t *testing.T) {
	p := validParams()
	p.Volatility = 0
	p.Years = 2
	p.Steps = 10

	path := GeneratePath(p, rand.New(rand.NewSource(1)))

	dt := p.Dt()
	for i := range path {
		want := p.InitialPrice * math.Exp(p.Return*float64(i)*dt)
		if diff := math.Abs(path[i] - want); diff > 1e-9 {
			t.Errorf("path[%d] = %v, want %v (deterministic compounding)", i, path[i], want)
		}
	}
}

func TestGeneratePath_SingleStepDrift(t *testing.T) {
	// S0=100, mu=0.08, sigma=0, T=1, steps=1 → [100, 100·exp(0.08)].
	p := Parameters{InitialPrice: 100, Return: 0.08, Volatility: 0, Years: 1, Steps: 1, Paths: 1}

	path := GeneratePath(p, rand.New(rand.NewSource(1)))

	if path[0] != 100 {
		t.Errorf("path[0] = %v, want 100", path[0])
	}
	want := 100 * math.Exp(0.08) // ≈ 108.33
	if diff := math.Abs(path[1] - want); diff > 1e-12 {
		t.Errorf("path[1] = %v, want %v", path[1], want)
	}
}

func TestGeneratePath_ReproducibleWithFixedSource(t *testing.T) {
	p := validParams()

	a := GeneratePath(p, rand.New(rand.NewSource(7)))
	b := GeneratePath(p, rand.New(rand.NewSource(7)))

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("paths diverge at step %d: %v != %v", i, a[i], b[i])
		}
	}
}
