package thermo_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"combustion/internal/thermo"
)

func TestNewton_RecoversPlantedRoot(t *testing.T) {
	const root = 1234.5
	f := func(x float64) float64 {
		d := x - root
		return 3*d + 1e-6*d*d*d
	}

	sol, err := thermo.Newton(context.Background(), f, thermo.ReferenceTemperature, thermo.NewtonOptions{})
	if err != nil {
		t.Fatalf("Newton: %v", err)
	}
	if !sol.Converged {
		t.Fatalf("did not converge in %d iterations", sol.Iterations)
	}
	if sol.Iterations >= thermo.DefaultMaxIterations {
		t.Fatalf("used %d iterations", sol.Iterations)
	}
	if math.Abs(sol.Temperature-root) > thermo.DefaultTolerance {
		t.Fatalf("root = %g, want %g", sol.Temperature, root)
	}
}

func TestNewton_ReportsIterationCap(t *testing.T) {
	f := func(x float64) float64 {
		d := x - 1000
		return d*d*d + d
	}

	sol, err := thermo.Newton(context.Background(), f, thermo.ReferenceTemperature, thermo.NewtonOptions{MaxIterations: 1})
	if err != nil {
		t.Fatalf("Newton: %v", err)
	}
	if sol.Converged {
		t.Fatal("expected Converged == false")
	}
	if sol.Iterations != 1 {
		t.Fatalf("iterations = %d, want 1", sol.Iterations)
	}
}

func TestNewton_FlatDerivative(t *testing.T) {
	_, err := thermo.Newton(context.Background(), func(float64) float64 { return 42 }, 500, thermo.NewtonOptions{})
	if !errors.Is(err, thermo.ErrFlatDerivative) {
		t.Fatalf("got %v, want ErrFlatDerivative", err)
	}
}

func TestNewton_NonPhysicalTemperature(t *testing.T) {
	// A single step lands at -1000 K.
	_, err := thermo.Newton(context.Background(), func(x float64) float64 { return x + 1000 }, 298.15, thermo.NewtonOptions{})
	if !errors.Is(err, thermo.ErrNonPhysical) {
		t.Fatalf("got %v, want ErrNonPhysical", err)
	}
}

func TestNewton_NaNResidual(t *testing.T) {
	_, err := thermo.Newton(context.Background(), func(float64) float64 { return math.NaN() }, 298.15, thermo.NewtonOptions{})
	if !errors.Is(err, thermo.ErrNonPhysical) {
		t.Fatalf("got %v, want ErrNonPhysical", err)
	}
}

func TestNewton_HonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := thermo.Newton(ctx, func(x float64) float64 { return x - 1000 }, 298.15, thermo.NewtonOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}
