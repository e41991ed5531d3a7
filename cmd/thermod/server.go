package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"combustion/internal/domain"
	"combustion/internal/fingerprint"
	"combustion/internal/services/calculation"
	"combustion/internal/services/species"
	"combustion/internal/thermo"
)

// maxBody bounds request bodies.
const maxBody = 1 << 20

type server struct {
	species      domain.SpeciesService
	calculations domain.CalculationService
	calcTimeout  time.Duration
	log          *log.Logger
}

func newServer(
	sp domain.SpeciesService,
	calc domain.CalculationService,
	calcTimeout time.Duration,
	logger *log.Logger,
) http.Handler {
	s := &server{species: sp, calculations: calc, calcTimeout: calcTimeout, log: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /calculate", s.calculate)
	mux.HandleFunc("GET /species", s.listSpecies)
	mux.HandleFunc("GET /species/{formula}", s.getSpecies)
	mux.HandleFunc("HEAD /species/{formula}", s.hasSpecies)
	mux.HandleFunc("POST /species", s.saveSpecies)
	return s.accessLog(mux)
}

func (s *server) calculate(w http.ResponseWriter, r *http.Request) {
	var req domain.CalculationRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ctx := r.Context()
	if s.calcTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.calcTimeout)
		defer cancel()
	}

	res, err := s.calculations.Calculate(ctx, req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *server) listSpecies(w http.ResponseWriter, r *http.Request) {
	materials, err := s.species.ListMaterials()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if materials == nil {
		materials = []domain.Material{}
	}
	writeJSON(w, http.StatusOK, materials)
}

func (s *server) getSpecies(w http.ResponseWriter, r *http.Request) {
	m, err := s.species.GetMaterial(domain.Formula(r.PathValue("formula")))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	w.Header().Set("ETag", `"`+fingerprint.Material(m)+`"`)
	writeJSON(w, http.StatusOK, m)
}

// hasSpecies answers 200 or 404 without a body.
func (s *server) hasSpecies(w http.ResponseWriter, r *http.Request) {
	ok, err := s.species.Exists(domain.Formula(r.PathValue("formula")))
	switch {
	case err != nil:
		w.WriteHeader(http.StatusInternalServerError)
	case !ok:
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusOK)
	}
}

func (s *server) saveSpecies(w http.ResponseWriter, r *http.Request) {
	var m domain.Material
	if err := decode(w, r, &m); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.species.SaveMaterial(m); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	s.log.Printf("stored material %s", m.Formula)
	w.WriteHeader(http.StatusNoContent)
}

// statusFor maps service and engine errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, calculation.ErrEmptyReaction),
		errors.Is(err, calculation.ErrInvalidQuantity),
		errors.Is(err, species.ErrInvalidMaterial):
		return http.StatusBadRequest
	case errors.Is(err, calculation.ErrUnknownSpecies),
		errors.Is(err, species.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, calculation.ErrNoCoefficientData),
		errors.Is(err, thermo.ErrInvalidInterval),
		errors.Is(err, thermo.ErrNegativeMoleCount),
		errors.Is(err, thermo.ErrFlatDerivative),
		errors.Is(err, thermo.ErrNonPhysical):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func decode(w http.ResponseWriter, r *http.Request, out any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, struct {
		Error string `json:"error"`
	}{Error: err.Error()})
}

// statusRecorder captures what the access log reports.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

func (s *server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		s.log.Printf("%s %s %s %d %dB %s", r.Method, r.URL.Path, r.RemoteAddr, rec.status, rec.bytes, time.Since(start))
	})
}
