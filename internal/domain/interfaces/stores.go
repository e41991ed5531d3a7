package interfaces

import domaintypes "combustion/internal/domain/types"

// CoefficientLookup resolves a formula to its coefficient records.
//
// Records come back in no particular order. ok is false when the formula is
// unknown.
type CoefficientLookup interface {
	LookupCoefficients(formula domaintypes.Formula) (records []domaintypes.CoefficientRecord, ok bool, err error)
}

// MaterialStore persists materials and their coefficient records.
type MaterialStore interface {
	CoefficientLookup

	SaveMaterial(material domaintypes.Material) error
	LoadMaterial(formula domaintypes.Formula) (domaintypes.Material, bool, error)
	ListMaterials() ([]domaintypes.Material, error)
	DeleteMaterial(formula domaintypes.Formula) (bool, error)
}
