package app

import (
	"net/http"

	"combustion/internal/domain"
	"combustion/internal/remote"
	calculationsvc "combustion/internal/services/calculation"
	speciessvc "combustion/internal/services/species"
	"combustion/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI and server.
type Wire struct {
	Materials    domain.MaterialStore
	Species      domain.SpeciesService
	Calculations domain.CalculationService
	Remote       domain.RemoteClient // nil unless Config.ServerURL is set
}

// NewWire constructs the dependency graph from cfg.
//
// With a ServerURL, calculations go to the remote server and the local
// library is only used for species management.
func NewWire(cfg Config) (*Wire, error) {
	// Material store: a library file loaded into memory, or the home directory.
	var materials domain.MaterialStore
	if cfg.LibraryPath != "" {
		ms, err := store.NewMemoryStoreFromLibrary(cfg.LibraryPath)
		if err != nil {
			return nil, err
		}
		materials = ms
	} else {
		materials = store.NewMaterialFileStore(cfg.Home)
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	w := &Wire{
		Materials:    materials,
		Species:      speciessvc.New(materials),
		Calculations: calculationsvc.New(materials, cfg.Options),
	}

	if cfg.ServerURL != "" {
		rc := remote.NewHTTP(cfg.ServerURL, httpClient)
		w.Remote = rc
		w.Calculations = remoteCalculations{client: rc}
	}
	return w, nil
}
