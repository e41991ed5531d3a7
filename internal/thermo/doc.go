// Package thermo is the numerical engine behind combustion calculations.
//
// Contents
//
//   - Polynomial model for molar heat capacity and enthalpy (HeatCapacity,
//     Enthalpy)
//   - Per-species temperature intervals assembled from coefficient records
//     (Interval, Component, NewComponent)
//   - Phase-transition stitching across interval boundaries
//     (StitchPhaseTransitions)
//   - Energy balance, trapezoidal heat-capacity integration and a Newton
//     root finder for the adiabatic temperature (Reaction, Integrate, Newton)
//
// # Units
//
// Temperatures are in kelvin, enthalpies in J/mol and heat capacities in
// J/(mol·K). Coefficient records carry formation enthalpy in kJ/mol; the
// conversion happens in NewComponent.
//
// # Concurrency
//
// The package holds no mutable package-level state. A Reaction belongs to a
// single calculation and must not be shared between goroutines while it is
// being solved.
package thermo
