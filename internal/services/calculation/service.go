package calculation

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"combustion/internal/domain"
	"combustion/internal/thermo"
)

const joulesPerKilojoule = 1000.0

var (
	// ErrEmptyReaction is returned when either side of the reaction is empty.
	ErrEmptyReaction = errors.New("reaction needs at least one reagent and one product")

	// ErrInvalidQuantity is returned for a blank formula or a mole count that
	// is not a positive finite number.
	ErrInvalidQuantity = errors.New("invalid material quantity")

	// ErrUnknownSpecies is returned when a formula is not in the library.
	ErrUnknownSpecies = errors.New("unknown species")

	// ErrNoCoefficientData is returned when a species has no coefficient records.
	ErrNoCoefficientData = errors.New("species has no coefficient data")
)

// Service computes reaction enthalpy and adiabatic flame temperature.
type Service struct {
	lookup domain.CoefficientLookup
	opts   thermo.Options
}

// New returns a calculation service reading coefficients from lookup.
func New(lookup domain.CoefficientLookup, opts thermo.Options) *Service {
	return &Service{lookup: lookup, opts: opts}
}

// Calculate runs one calculation.
//
// Steps:
//  1. Check that both sides are non-empty and every quantity is well formed.
//  2. Resolve each formula to its coefficient records; unknown species and
//     species without records are reported before any numeric work.
//  3. Build one component per quantity, stitch the products and compute the
//     reaction enthalpy at the reference temperature.
//  4. Solve for the adiabatic temperature and round both figures half-up to
//     two decimals.
//
// A solver that stops on its iteration cap is not an error; the result then
// carries Converged == false.
func (s *Service) Calculate(
	ctx context.Context,
	request domain.CalculationRequest,
) (domain.CalculationResult, error) {
	if len(request.Reagents) == 0 || len(request.Products) == 0 {
		return domain.CalculationResult{}, ErrEmptyReaction
	}

	reagents, err := s.components(request.Reagents)
	if err != nil {
		return domain.CalculationResult{}, err
	}
	products, err := s.components(request.Products)
	if err != nil {
		return domain.CalculationResult{}, err
	}

	reaction := thermo.NewReaction(reagents, products, s.opts)
	solution, err := reaction.AdiabaticTemperature(ctx)
	if err != nil {
		return domain.CalculationResult{}, fmt.Errorf("adiabatic temperature: %w", err)
	}

	return domain.CalculationResult{
		ID:                   uuid.NewString(),
		AdiabaticTemperature: thermo.RoundHalfUp(solution.Temperature, 2),
		ReactionEnthalpy:     thermo.RoundHalfUp(reaction.InitialEnthalpy/joulesPerKilojoule, 2),
		Converged:            solution.Converged,
		Iterations:           solution.Iterations,
	}, nil
}

func (s *Service) components(quantities []domain.MaterialQuantity) ([]thermo.Component, error) {
	out := make([]thermo.Component, 0, len(quantities))
	for _, q := range quantities {
		if err := validateQuantity(q); err != nil {
			return nil, err
		}

		records, ok, err := s.lookup.LookupCoefficients(q.Formula)
		if err != nil {
			return nil, fmt.Errorf("lookup %s: %w", q.Formula, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSpecies, q.Formula)
		}
		if len(records) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoCoefficientData, q.Formula)
		}

		c, err := thermo.NewComponent(q.MoleCount, records)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", q.Formula, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func validateQuantity(q domain.MaterialQuantity) error {
	if q.Formula.Key() == "" {
		return fmt.Errorf("%w: empty formula", ErrInvalidQuantity)
	}
	if !(q.MoleCount > 0) || math.IsInf(q.MoleCount, 0) {
		return fmt.Errorf("%w: %s has mole count %v", ErrInvalidQuantity, q.Formula, q.MoleCount)
	}
	return nil
}

// Compile-time assertion that Service implements domain.CalculationService.
var _ domain.CalculationService = (*Service)(nil)
