package store

import (
	"errors"
	"fmt"
	"sort"

	"combustion/internal/domain"
)

// ErrEmptyFormula is returned when a material is saved without a formula.
var ErrEmptyFormula = errors.New("material formula is empty")

// cloneMaterial deep-copies m so callers never alias stored records.
func cloneMaterial(m domain.Material) domain.Material {
	out := m
	out.Records = cloneRecords(m.Records)
	return out
}

func cloneRecords(in []domain.CoefficientRecord) []domain.CoefficientRecord {
	if in == nil {
		return nil
	}
	out := make([]domain.CoefficientRecord, len(in))
	for i, r := range in {
		out[i] = r
		if r.FormationEnthalpy != nil {
			h := *r.FormationEnthalpy
			out[i].FormationEnthalpy = &h
		}
	}
	return out
}

func materialKey(m domain.Material) (string, error) {
	key := m.Formula.Key()
	if key == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyFormula, m.DisplayName)
	}
	return key, nil
}

// sortedMaterials returns the map values ordered by formula.
func sortedMaterials(m map[string]domain.Material) []domain.Material {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]domain.Material, 0, len(keys))
	for _, k := range keys {
		out = append(out, cloneMaterial(m[k]))
	}
	return out
}
