package store

import (
	"encoding/json"
	"fmt"
	"os"

	"combustion/internal/domain"
)

// LoadLibrary reads a JSON array of materials from path.
func LoadLibrary(path string) ([]domain.Material, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var materials []domain.Material
	if err := json.Unmarshal(b, &materials); err != nil {
		return nil, fmt.Errorf("library %s: %w", path, err)
	}
	return materials, nil
}

// WriteLibrary writes materials to path in the format LoadLibrary reads.
func WriteLibrary(path string, materials []domain.Material) error {
	return writeJSON(path, materials, 0o644)
}

// NewMemoryStoreFromLibrary loads the library at path into a fresh MemoryStore.
func NewMemoryStoreFromLibrary(path string) (*MemoryStore, error) {
	materials, err := LoadLibrary(path)
	if err != nil {
		return nil, err
	}
	s := NewMemoryStore()
	for _, m := range materials {
		if err := s.SaveMaterial(m); err != nil {
			return nil, err
		}
	}
	return s, nil
}
