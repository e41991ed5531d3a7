package types

// Coefficients parameterize the heat capacity and enthalpy polynomials of one
// temperature interval. The zero value means "no data" and evaluates to 0.
type Coefficients struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
	E float64 `json:"e"`
	F float64 `json:"f"`
	G float64 `json:"g"`
}

// CoefficientRecord is one stored temperature interval of a species.
//
// FormationEnthalpy is the standard enthalpy of formation in kJ/mol and is
// only meaningful on the lowest interval of a material.
type CoefficientRecord struct {
	Phase             Phase        `json:"phase,omitempty"`
	TMin              float64      `json:"t_min"`
	TMax              float64      `json:"t_max"`
	FormationEnthalpy *float64     `json:"formation_enthalpy,omitempty"`
	Coefficients      Coefficients `json:"coefficients"`
}

// Material is a species together with its coefficient records.
type Material struct {
	Formula     Formula             `json:"formula"`
	DisplayName string              `json:"display_name"`
	Records     []CoefficientRecord `json:"records"`
}

// TemperatureRange is the span covered by a material's records.
type TemperatureRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
