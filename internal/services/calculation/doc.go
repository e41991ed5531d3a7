// Package calculation runs combustion calculations against the material
// library.
//
// It validates a request, resolves every formula through a
// domain.CoefficientLookup, builds the numeric components and hands them to
// the thermo engine, then packages the rounded result.
package calculation
