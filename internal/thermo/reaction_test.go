package thermo_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"combustion/internal/domain"
	"combustion/internal/thermo"
)

// component builds a single-species component or fails the test.
func component(t *testing.T, moles float64, records ...domain.CoefficientRecord) thermo.Component {
	t.Helper()
	c, err := thermo.NewComponent(moles, records)
	if err != nil {
		t.Fatalf("NewComponent: %v", err)
	}
	return c
}

// exothermic returns a reaction whose product has a non-zero heat capacity
// and a lower formation enthalpy than the reagent.
func exothermic(t *testing.T) *thermo.Reaction {
	t.Helper()
	reagent := component(t, 1, domain.CoefficientRecord{
		TMin: 200, TMax: 6000, FormationEnthalpy: kj(-50), Coefficients: domain.Coefficients{B: 30},
	})
	product := component(t, 1, domain.CoefficientRecord{
		TMin: 200, TMax: 6000, FormationEnthalpy: kj(-100), Coefficients: domain.Coefficients{G: 30},
	})
	return thermo.NewReaction([]thermo.Component{reagent}, []thermo.Component{product}, thermo.DefaultOptions())
}

func TestReaction_SingleIntervalScenario(t *testing.T) {
	reagent := component(t, 1, domain.CoefficientRecord{
		TMin: 200, TMax: 6000, FormationEnthalpy: kj(-100), Coefficients: domain.Coefficients{B: 30},
	})
	product := component(t, 1, domain.CoefficientRecord{
		TMin: 200, TMax: 6000, FormationEnthalpy: kj(-50), Coefficients: domain.Coefficients{B: 35},
	})
	r := thermo.NewReaction([]thermo.Component{reagent}, []thermo.Component{product}, thermo.DefaultOptions())

	if got := thermo.RoundHalfUp(r.InitialEnthalpy/1000, 2); got != -51.49 {
		t.Fatalf("reaction enthalpy = %g kJ, want -51.49", got)
	}

	// b does not enter the heat capacity, so the product absorbs nothing and
	// the balance is flat.
	if _, err := r.AdiabaticTemperature(context.Background()); !errors.Is(err, thermo.ErrFlatDerivative) {
		t.Fatalf("got %v, want ErrFlatDerivative", err)
	}
}

func TestReaction_AdiabaticTemperature(t *testing.T) {
	r := exothermic(t)

	if math.Abs(r.InitialEnthalpy-58943.7888) > 1e-3 {
		t.Fatalf("initial enthalpy = %.4f, want 58943.7888", r.InitialEnthalpy)
	}

	sol, err := r.AdiabaticTemperature(context.Background())
	if err != nil {
		t.Fatalf("AdiabaticTemperature: %v", err)
	}
	if !sol.Converged {
		t.Fatalf("did not converge after %d iterations", sol.Iterations)
	}
	if math.Abs(sol.Temperature-2193.51) > 0.05 {
		t.Fatalf("temperature = %.4f, want ~2193.51", sol.Temperature)
	}
	if res := r.Balance(sol.Temperature); math.Abs(res) > 1 {
		t.Fatalf("residual at solution = %g", res)
	}
}

func TestReaction_PhaseTransitionEntersBalance(t *testing.T) {
	reagent := component(t, 1, domain.CoefficientRecord{
		TMin: 200, TMax: 6000, FormationEnthalpy: kj(-50), Coefficients: domain.Coefficients{B: 30},
	})
	product := component(t, 2,
		domain.CoefficientRecord{TMin: 1000, TMax: 6000, Coefficients: domain.Coefficients{G: 40, B: 5}},
		domain.CoefficientRecord{TMin: 200, TMax: 1000, FormationEnthalpy: kj(-100), Coefficients: domain.Coefficients{G: 30}},
	)
	r := thermo.NewReaction([]thermo.Component{reagent}, []thermo.Component{product}, thermo.DefaultOptions())

	if got := r.PhaseTransitionEnthalpy(999); got != 0 {
		t.Fatalf("offset below boundary = %g, want 0", got)
	}
	if got := r.PhaseTransitionEnthalpy(1500); math.Abs(got-10060) > 1e-9 {
		t.Fatalf("offset above boundary = %g, want 10060", got)
	}

	sol, err := r.AdiabaticTemperature(context.Background())
	if err != nil {
		t.Fatalf("AdiabaticTemperature: %v", err)
	}
	if math.Abs(sol.Temperature-2257.52) > 0.05 {
		t.Fatalf("temperature = %.4f, want ~2257.52", sol.Temperature)
	}
}

func TestReaction_TotalHeatCapacitySumsProducts(t *testing.T) {
	a := component(t, 2, domain.CoefficientRecord{TMin: 200, TMax: 6000, Coefficients: domain.Coefficients{G: 10}})
	b := component(t, 3, domain.CoefficientRecord{TMin: 200, TMax: 6000, Coefficients: domain.Coefficients{G: 1}})
	r := thermo.NewReaction(nil, []thermo.Component{a, b}, thermo.DefaultOptions())

	want := 2*thermo.HeatCapacity(domain.Coefficients{G: 10}, 1000) + 3*thermo.HeatCapacity(domain.Coefficients{G: 1}, 1000)
	if got := r.TotalHeatCapacity(1000); math.Abs(got-want) > 1e-12 {
		t.Fatalf("got %g, want %g", got, want)
	}
}

func TestReaction_Idempotent(t *testing.T) {
	first, err := exothermic(t).AdiabaticTemperature(context.Background())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := exothermic(t).AdiabaticTemperature(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if first != second {
		t.Fatalf("runs differ: %+v vs %+v", first, second)
	}
}
