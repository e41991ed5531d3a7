package types

// MaterialQuantity names a species and how many moles of it take part.
type MaterialQuantity struct {
	Formula   Formula `json:"formula"`
	MoleCount float64 `json:"mole_count"`
}

// CalculationRequest lists the two sides of a combustion reaction.
type CalculationRequest struct {
	Reagents []MaterialQuantity `json:"reagents"`
	Products []MaterialQuantity `json:"products"`
}

// CalculationResult is what a calculation reports back.
//
// AdiabaticTemperature is in kelvin and ReactionEnthalpy in kJ, both rounded
// half-up to two decimals. Converged is false when the solver stopped on its
// iteration cap; the temperature is then the last iterate.
type CalculationResult struct {
	ID                   string  `json:"id"`
	AdiabaticTemperature float64 `json:"adiabatic_temperature"`
	ReactionEnthalpy     float64 `json:"reaction_enthalpy"`
	Converged            bool    `json:"converged"`
	Iterations           int     `json:"iterations"`
}
