package thermo_test

import (
	"math"
	"testing"

	"combustion/internal/domain"
	"combustion/internal/thermo"
)

func TestZeroCoefficients_EvaluateToFormationOnly(t *testing.T) {
	var zero domain.Coefficients
	for _, temp := range []float64{1, 298.15, 1000, 3500} {
		if got := thermo.HeatCapacity(zero, temp); got != 0 {
			t.Fatalf("HeatCapacity(zero, %g) = %g, want 0", temp, got)
		}
		if got := thermo.Enthalpy(zero, -241826, temp); got != 241826 {
			t.Fatalf("Enthalpy(zero, %g) = %g, want 241826", temp, got)
		}
	}
}

// The constant term of the heat capacity reads g, and b never contributes.
func TestHeatCapacity_ConstantTermUsesG(t *testing.T) {
	// x = 1 at 10000 K, so Cp = g + 12g.
	if got := thermo.HeatCapacity(domain.Coefficients{G: 1}, 10000); math.Abs(got-13) > 1e-12 {
		t.Fatalf("got %g, want 13", got)
	}
	if got := thermo.HeatCapacity(domain.Coefficients{B: 100}, 1500); got != 0 {
		t.Fatalf("b leaked into heat capacity: %g", got)
	}
}

func TestEnthalpy_KnownValue(t *testing.T) {
	got := thermo.Enthalpy(domain.Coefficients{B: 30}, -100000, 298.15)
	if math.Abs(got-91055.5) > 1e-9 {
		t.Fatalf("got %.6f, want 91055.5", got)
	}
}

func TestPolynomials_ContinuousOnInterval(t *testing.T) {
	c := domain.Coefficients{A: 1, B: 29.1, C: -0.4, D: 2.2, E: 31.7, F: -8.3, G: 4.6}
	const eps = 1e-7
	for temp := 300.0; temp < 4000; temp += 137 {
		if d := math.Abs(thermo.HeatCapacity(c, temp+eps) - thermo.HeatCapacity(c, temp)); d > 1e-5 {
			t.Fatalf("heat capacity jumps by %g at %g", d, temp)
		}
		if d := math.Abs(thermo.Enthalpy(c, -1e5, temp+eps) - thermo.Enthalpy(c, -1e5, temp)); d > 1e-3 {
			t.Fatalf("enthalpy jumps by %g at %g", d, temp)
		}
	}
}
