package thermo

import (
	"context"
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultTolerance is the step size, in kelvin, below which Newton stops.
	DefaultTolerance = 1e-2
	// DefaultDerivativeStep is the central-difference half width in kelvin.
	DefaultDerivativeStep = 1e-2
	// DefaultMaxIterations caps the Newton loop.
	DefaultMaxIterations = 100
)

var (
	// ErrFlatDerivative is returned when the residual has no usable slope at
	// an iterate, so the Newton step is undefined.
	ErrFlatDerivative = errors.New("energy balance derivative is zero or not finite")

	// ErrNonPhysical is returned when an iterate leaves the positive
	// temperatures or the residual stops being a finite number.
	ErrNonPhysical = errors.New("solver reached a non-physical state")
)

// NewtonOptions tunes Newton. Zero fields take the package defaults.
type NewtonOptions struct {
	Tolerance      float64
	DerivativeStep float64
	MaxIterations  int
}

func (o NewtonOptions) withDefaults() NewtonOptions {
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.DerivativeStep <= 0 {
		o.DerivativeStep = DefaultDerivativeStep
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	return o
}

// Solution is the outcome of a root search.
//
// Converged is false when the iteration cap was hit; Temperature then holds
// the last iterate.
type Solution struct {
	Temperature float64
	Iterations  int
	Converged   bool
}

// Newton finds a root of f starting at guess, estimating the derivative by
// central differences. The context is checked before every iteration.
func Newton(ctx context.Context, f func(float64) float64, guess float64, opts NewtonOptions) (Solution, error) {
	opts = opts.withDefaults()
	h := opts.DerivativeStep

	t := guess
	for i := 1; i <= opts.MaxIterations; i++ {
		if err := ctx.Err(); err != nil {
			return Solution{Temperature: t, Iterations: i - 1}, err
		}
		if !(t > 0) || math.IsInf(t, 0) {
			return Solution{Temperature: t, Iterations: i - 1}, fmt.Errorf("%w: temperature %g", ErrNonPhysical, t)
		}

		y := f(t)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return Solution{Temperature: t, Iterations: i - 1}, fmt.Errorf("%w: residual %g at %g", ErrNonPhysical, y, t)
		}
		slope := (f(t+h) - f(t-h)) / (2 * h)
		if slope == 0 || math.IsNaN(slope) || math.IsInf(slope, 0) {
			return Solution{Temperature: t, Iterations: i - 1}, fmt.Errorf("%w: at %g", ErrFlatDerivative, t)
		}

		dt := -y / slope
		t += dt

		if math.Abs(dt) < opts.Tolerance {
			return Solution{Temperature: t, Iterations: i, Converged: true}, nil
		}
	}
	return Solution{Temperature: t, Iterations: opts.MaxIterations}, nil
}
