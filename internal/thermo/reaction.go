package thermo

import "context"

// ReferenceTemperature is the standard state temperature in kelvin.
const ReferenceTemperature = 298.15

// Options holds the numeric knobs of a calculation.
type Options struct {
	ReferenceTemperature float64
	IntegrationSteps     int
	Newton               NewtonOptions
}

// DefaultOptions returns the settings every calculation uses unless told otherwise.
func DefaultOptions() Options {
	return Options{
		ReferenceTemperature: ReferenceTemperature,
		IntegrationSteps:     DefaultIntegrationSteps,
		Newton: NewtonOptions{
			Tolerance:      DefaultTolerance,
			DerivativeStep: DefaultDerivativeStep,
			MaxIterations:  DefaultMaxIterations,
		},
	}
}

func (o Options) withDefaults() Options {
	if o.ReferenceTemperature <= 0 {
		o.ReferenceTemperature = ReferenceTemperature
	}
	if o.IntegrationSteps <= 0 {
		o.IntegrationSteps = DefaultIntegrationSteps
	}
	o.Newton = o.Newton.withDefaults()
	return o
}

// Reaction is the working set of one calculation.
//
// It owns its components: NewReaction stitches the products in place, so the
// slices passed in must not be shared with another Reaction.
type Reaction struct {
	Reagents []Component
	Products []Component

	// InitialEnthalpy is the balance enthalpy at the reference temperature,
	// products minus reagents, in J. Positive means heat is released into
	// the products.
	InitialEnthalpy float64

	opts Options
}

// NewReaction stitches the product phase transitions and computes the
// reference-temperature reaction enthalpy.
func NewReaction(reagents, products []Component, opts Options) *Reaction {
	opts = opts.withDefaults()
	StitchPhaseTransitions(products)

	r := &Reaction{
		Reagents: reagents,
		Products: products,
		opts:     opts,
	}
	r.InitialEnthalpy = r.referenceEnthalpy()
	return r
}

func (r *Reaction) referenceEnthalpy() float64 {
	t := r.opts.ReferenceTemperature

	var h float64
	for _, p := range r.Products {
		h += p.ReferenceEnthalpy(t)
	}
	for _, g := range r.Reagents {
		h -= g.ReferenceEnthalpy(t)
	}
	return h
}

// TotalHeatCapacity sums the heat capacity of all products at t.
func (r *Reaction) TotalHeatCapacity(t float64) float64 {
	var total float64
	for _, p := range r.Products {
		total += p.HeatCapacity(t)
	}
	return total
}

// PhaseTransitionEnthalpy sums the stitched offsets of all products active at t.
func (r *Reaction) PhaseTransitionEnthalpy(t float64) float64 {
	var sum float64
	for _, p := range r.Products {
		sum += p.PhaseTransitionEnthalpy(t)
	}
	return sum
}

// HeatCapacityIntegral integrates TotalHeatCapacity over [from, to].
func (r *Reaction) HeatCapacityIntegral(from, to float64) float64 {
	return Integrate(r.TotalHeatCapacity, from, to, r.opts.IntegrationSteps)
}

// Balance is the energy residual at candidate temperature t: heat taken up by
// the products since the reference temperature, plus phase-transition
// offsets, minus the reaction enthalpy. Its root is the adiabatic temperature.
func (r *Reaction) Balance(t float64) float64 {
	return r.HeatCapacityIntegral(r.opts.ReferenceTemperature, t) +
		r.PhaseTransitionEnthalpy(t) -
		r.InitialEnthalpy
}

// AdiabaticTemperature solves Balance(t) = 0 starting from the reference
// temperature.
func (r *Reaction) AdiabaticTemperature(ctx context.Context) (Solution, error) {
	return Newton(ctx, r.Balance, r.opts.ReferenceTemperature, r.opts.Newton)
}
