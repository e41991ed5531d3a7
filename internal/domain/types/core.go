package types

import "strings"

// Formula is a chemical formula naming a species, e.g. "CO2".
type Formula string

// String returns the string form of the formula.
func (f Formula) String() string { return string(f) }

// Key returns the case-insensitive lookup key for the formula.
func (f Formula) Key() string { return strings.ToLower(strings.TrimSpace(string(f))) }

// Phase names the aggregate state a coefficient record describes.
type Phase string

const (
	PhaseSolid  Phase = "SOLID"
	PhaseLiquid Phase = "LIQUID"
	PhaseGas    Phase = "GAS"
)

// Valid reports whether p is one of the known phases.
func (p Phase) Valid() bool {
	switch p {
	case PhaseSolid, PhaseLiquid, PhaseGas:
		return true
	}
	return false
}

// String returns the string form of the phase.
func (p Phase) String() string { return string(p) }
