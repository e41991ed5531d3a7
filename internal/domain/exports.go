package domain

import (
	interfaces "combustion/internal/domain/interfaces"
	types "combustion/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Formula            = types.Formula
	Phase              = types.Phase
	Coefficients       = types.Coefficients
	CoefficientRecord  = types.CoefficientRecord
	Material           = types.Material
	TemperatureRange   = types.TemperatureRange
	MaterialQuantity   = types.MaterialQuantity
	CalculationRequest = types.CalculationRequest
	CalculationResult  = types.CalculationResult
)

// Phase constants re-exported for callers that only import domain.
const (
	PhaseSolid  = types.PhaseSolid
	PhaseLiquid = types.PhaseLiquid
	PhaseGas    = types.PhaseGas
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	CoefficientLookup  = interfaces.CoefficientLookup
	MaterialStore      = interfaces.MaterialStore
	CalculationService = interfaces.CalculationService
	SpeciesService     = interfaces.SpeciesService
	RemoteClient       = interfaces.RemoteClient
)
