package interfaces

import (
	"context"

	domaintypes "combustion/internal/domain/types"
)

// CalculationService computes reaction enthalpy and adiabatic temperature.
type CalculationService interface {
	Calculate(
		ctx context.Context,
		request domaintypes.CalculationRequest,
	) (domaintypes.CalculationResult, error)
}

// SpeciesService manages the material library.
type SpeciesService interface {
	ImportMaterials(materials []domaintypes.Material) (int, error)
	SaveMaterial(material domaintypes.Material) error
	GetMaterial(formula domaintypes.Formula) (domaintypes.Material, error)
	ListMaterials() ([]domaintypes.Material, error)
	DeleteMaterial(formula domaintypes.Formula) error
	Exists(formula domaintypes.Formula) (bool, error)
	TemperatureRange(formula domaintypes.Formula) (domaintypes.TemperatureRange, error)
	Fingerprint(formula domaintypes.Formula) (string, error)
}
