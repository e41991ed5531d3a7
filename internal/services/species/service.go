package species

import (
	"errors"
	"fmt"

	"combustion/internal/domain"
	"combustion/internal/fingerprint"
	"combustion/internal/thermo"
)

var (
	// ErrNotFound is returned when a formula is not in the library.
	ErrNotFound = errors.New("material not found")

	// ErrInvalidMaterial is returned when a material fails validation.
	ErrInvalidMaterial = errors.New("invalid material")
)

// Service manages materials in a backing store.
type Service struct {
	store domain.MaterialStore
}

// New returns a species service backed by the given store.
func New(s domain.MaterialStore) *Service { return &Service{store: s} }

// Validate checks that m has a formula and a usable set of records: at least
// one, with positive, contiguous, non-overlapping temperature bounds. A
// record's phase may be left empty but otherwise must be a known phase.
func Validate(m domain.Material) error {
	if m.Formula.Key() == "" {
		return fmt.Errorf("%w: empty formula", ErrInvalidMaterial)
	}
	if len(m.Records) == 0 {
		return fmt.Errorf("%w: %s has no coefficient records", ErrInvalidMaterial, m.Formula)
	}
	for _, rec := range m.Records {
		if rec.Phase != "" && !rec.Phase.Valid() {
			return fmt.Errorf("%w: %s: unknown phase %q", ErrInvalidMaterial, m.Formula, rec.Phase)
		}
	}
	if _, err := thermo.NewComponent(1, m.Records); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidMaterial, m.Formula, err)
	}
	return nil
}

// ImportMaterials validates and saves every material, stopping at the first
// failure. It returns how many were saved.
func (s *Service) ImportMaterials(materials []domain.Material) (int, error) {
	for i, m := range materials {
		if err := s.SaveMaterial(m); err != nil {
			return i, err
		}
	}
	return len(materials), nil
}

// SaveMaterial validates and stores a material, replacing any previous
// version under the same formula.
func (s *Service) SaveMaterial(material domain.Material) error {
	if err := Validate(material); err != nil {
		return err
	}
	return s.store.SaveMaterial(material)
}

// GetMaterial returns the material for formula.
func (s *Service) GetMaterial(formula domain.Formula) (domain.Material, error) {
	m, ok, err := s.store.LoadMaterial(formula)
	if err != nil {
		return domain.Material{}, err
	}
	if !ok {
		return domain.Material{}, fmt.Errorf("%w: %s", ErrNotFound, formula)
	}
	return m, nil
}

// ListMaterials returns the whole library ordered by formula.
func (s *Service) ListMaterials() ([]domain.Material, error) {
	return s.store.ListMaterials()
}

// DeleteMaterial removes a material from the library.
func (s *Service) DeleteMaterial(formula domain.Formula) error {
	removed, err := s.store.DeleteMaterial(formula)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: %s", ErrNotFound, formula)
	}
	return nil
}

// Exists reports whether formula is in the library.
func (s *Service) Exists(formula domain.Formula) (bool, error) {
	_, ok, err := s.store.LoadMaterial(formula)
	return ok, err
}

// TemperatureRange returns the lowest TMin and highest TMax over a
// material's records.
func (s *Service) TemperatureRange(formula domain.Formula) (domain.TemperatureRange, error) {
	m, err := s.GetMaterial(formula)
	if err != nil {
		return domain.TemperatureRange{}, err
	}
	if len(m.Records) == 0 {
		return domain.TemperatureRange{}, fmt.Errorf("%w: %s has no coefficient records", ErrInvalidMaterial, formula)
	}
	r := domain.TemperatureRange{Min: m.Records[0].TMin, Max: m.Records[0].TMax}
	for _, rec := range m.Records[1:] {
		r.Min = min(r.Min, rec.TMin)
		r.Max = max(r.Max, rec.TMax)
	}
	return r, nil
}

// Fingerprint returns a short fingerprint of the material's coefficient data.
func (s *Service) Fingerprint(formula domain.Formula) (string, error) {
	m, err := s.GetMaterial(formula)
	if err != nil {
		return "", err
	}
	return fingerprint.Material(m), nil
}

// Compile-time assertion that Service implements domain.SpeciesService.
var _ domain.SpeciesService = (*Service)(nil)
