package store

import (
	"path/filepath"
	"sync"

	"combustion/internal/domain"
)

const materialsFile = "materials.json"

// MaterialFileStore persists the material library to a JSON file.
type MaterialFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewMaterialFileStore returns a MaterialFileStore rooted at dir.
func NewMaterialFileStore(dir string) *MaterialFileStore {
	return &MaterialFileStore{dir: dir}
}

func (s *MaterialFileStore) path() string { return filepath.Join(s.dir, materialsFile) }

func (s *MaterialFileStore) load() (map[string]domain.Material, error) {
	materials := make(map[string]domain.Material)
	if _, err := readJSON(s.path(), &materials); err != nil {
		return nil, err
	}
	// A file holding null decodes to a nil map.
	if materials == nil {
		materials = make(map[string]domain.Material)
	}
	return materials, nil
}

// SaveMaterial stores or replaces the material under its formula.
func (s *MaterialFileStore) SaveMaterial(material domain.Material) error {
	key, err := materialKey(material)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	materials, err := s.load()
	if err != nil {
		return err
	}
	materials[key] = cloneMaterial(material)
	return writeJSON(s.path(), materials, 0o600)
}

// LoadMaterial looks a material up by formula, ignoring case.
func (s *MaterialFileStore) LoadMaterial(formula domain.Formula) (domain.Material, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	materials, err := s.load()
	if err != nil {
		return domain.Material{}, false, err
	}
	m, ok := materials[formula.Key()]
	if !ok {
		return domain.Material{}, false, nil
	}
	return cloneMaterial(m), true, nil
}

// ListMaterials returns every stored material ordered by formula.
func (s *MaterialFileStore) ListMaterials() ([]domain.Material, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	materials, err := s.load()
	if err != nil {
		return nil, err
	}
	return sortedMaterials(materials), nil
}

// DeleteMaterial removes a material and reports whether it was present.
func (s *MaterialFileStore) DeleteMaterial(formula domain.Formula) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	materials, err := s.load()
	if err != nil {
		return false, err
	}
	if _, ok := materials[formula.Key()]; !ok {
		return false, nil
	}
	delete(materials, formula.Key())
	return true, writeJSON(s.path(), materials, 0o600)
}

// LookupCoefficients returns the coefficient records of a material.
func (s *MaterialFileStore) LookupCoefficients(formula domain.Formula) ([]domain.CoefficientRecord, bool, error) {
	m, ok, err := s.LoadMaterial(formula)
	if err != nil || !ok {
		return nil, false, err
	}
	return m.Records, true, nil
}

// Compile-time assertion that MaterialFileStore implements domain.MaterialStore.
var _ domain.MaterialStore = (*MaterialFileStore)(nil)
