package store

import (
	"sync"

	"combustion/internal/domain"
)

// MemoryStore keeps materials in process memory. State is lost on exit.
type MemoryStore struct {
	mu        sync.RWMutex
	materials map[string]domain.Material
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{materials: make(map[string]domain.Material)}
}

// SaveMaterial stores or replaces the material under its formula.
func (s *MemoryStore) SaveMaterial(material domain.Material) error {
	key, err := materialKey(material)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.materials[key] = cloneMaterial(material)
	s.mu.Unlock()
	return nil
}

// LoadMaterial looks a material up by formula, ignoring case.
func (s *MemoryStore) LoadMaterial(formula domain.Formula) (domain.Material, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.materials[formula.Key()]
	if !ok {
		return domain.Material{}, false, nil
	}
	return cloneMaterial(m), true, nil
}

// ListMaterials returns every material ordered by formula.
func (s *MemoryStore) ListMaterials() ([]domain.Material, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedMaterials(s.materials), nil
}

// DeleteMaterial removes a material and reports whether it was present.
func (s *MemoryStore) DeleteMaterial(formula domain.Formula) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.materials[formula.Key()]; !ok {
		return false, nil
	}
	delete(s.materials, formula.Key())
	return true, nil
}

// LookupCoefficients returns the coefficient records of a material.
func (s *MemoryStore) LookupCoefficients(formula domain.Formula) ([]domain.CoefficientRecord, bool, error) {
	m, ok, err := s.LoadMaterial(formula)
	if err != nil || !ok {
		return nil, false, err
	}
	return m.Records, true, nil
}

var _ domain.MaterialStore = (*MemoryStore)(nil)
