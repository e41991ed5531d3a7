package thermo_test

import (
	"math"
	"testing"

	"combustion/internal/thermo"
)

func TestIntegrate_ExactForLinear(t *testing.T) {
	got := thermo.Integrate(func(x float64) float64 { return 3*x + 1 }, 0, 2, 10)
	if math.Abs(got-8) > 1e-12 {
		t.Fatalf("got %g, want 8", got)
	}
}

func TestIntegrate_Antisymmetric(t *testing.T) {
	f := func(x float64) float64 { return 30 + 0.01*x + 2e-6*x*x }
	fwd := thermo.Integrate(f, 298.15, 2500, 0)
	rev := thermo.Integrate(f, 2500, 298.15, 0)
	if math.Abs(fwd+rev) > 1e-6*math.Abs(fwd) {
		t.Fatalf("forward %g, reverse %g", fwd, rev)
	}
}

func TestIntegrate_ConvergesWithStepDoubling(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(x / 1000) }
	exact := 1000 * (math.Exp(2.5) - math.Exp(0.3))

	prevErr := math.Inf(1)
	for _, n := range []int{10, 20, 40, 80, 160} {
		e := math.Abs(thermo.Integrate(f, 300, 2500, n) - exact)
		if e >= prevErr {
			t.Fatalf("n=%d: error %g did not drop below %g", n, e, prevErr)
		}
		prevErr = e
	}
}

func TestIntegrate_EmptyRange(t *testing.T) {
	if got := thermo.Integrate(func(float64) float64 { return 1 }, 500, 500, 100); got != 0 {
		t.Fatalf("got %g, want 0", got)
	}
}
