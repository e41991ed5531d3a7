package species_test

import (
	"errors"
	"testing"

	"combustion/internal/domain"
	"combustion/internal/services/species"
	"combustion/internal/store"
)

func kj(v float64) *float64 { return &v }

func carbonDioxide() domain.Material {
	return domain.Material{
		Formula:     "CO2",
		DisplayName: "Carbon dioxide",
		Records: []domain.CoefficientRecord{
			{Phase: domain.PhaseGas, TMin: 1200, TMax: 6000, Coefficients: domain.Coefficients{B: 58}},
			{Phase: domain.PhaseGas, TMin: 298.15, TMax: 1200, FormationEnthalpy: kj(-393.51), Coefficients: domain.Coefficients{B: 44}},
		},
	}
}

func TestSaveAndQuery(t *testing.T) {
	svc := species.New(store.NewMemoryStore())
	if err := svc.SaveMaterial(carbonDioxide()); err != nil {
		t.Fatalf("save: %v", err)
	}

	ok, err := svc.Exists("co2")
	if err != nil || !ok {
		t.Fatalf("exists: ok=%v err=%v", ok, err)
	}

	r, err := svc.TemperatureRange("CO2")
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if r.Min != 298.15 || r.Max != 6000 {
		t.Fatalf("range = %+v, want [298.15, 6000]", r)
	}

	fp, err := svc.Fingerprint("CO2")
	if err != nil || len(fp) != 20 {
		t.Fatalf("fingerprint %q: %v", fp, err)
	}
}

func TestSaveMaterial_Validates(t *testing.T) {
	svc := species.New(store.NewMemoryStore())

	bad := carbonDioxide()
	bad.Records[0].TMin = 1300 // leaves a gap above 1200 K

	plasma := carbonDioxide()
	plasma.Records[0].Phase = "PLASMA"

	tests := []domain.Material{
		{DisplayName: "no formula", Records: carbonDioxide().Records},
		{Formula: "CO2"},
		bad,
		plasma,
	}
	for _, m := range tests {
		if err := svc.SaveMaterial(m); !errors.Is(err, species.ErrInvalidMaterial) {
			t.Errorf("SaveMaterial(%+v) = %v, want ErrInvalidMaterial", m, err)
		}
	}
}

func TestImportMaterials_StopsAtFirstFailure(t *testing.T) {
	svc := species.New(store.NewMemoryStore())

	n, err := svc.ImportMaterials([]domain.Material{carbonDioxide(), {Formula: "BROKEN"}, carbonDioxide()})
	if !errors.Is(err, species.ErrInvalidMaterial) {
		t.Fatalf("got %v, want ErrInvalidMaterial", err)
	}
	if n != 1 {
		t.Fatalf("imported %d, want 1", n)
	}
}

func TestMissingMaterial(t *testing.T) {
	svc := species.New(store.NewMemoryStore())

	if _, err := svc.GetMaterial("N2"); !errors.Is(err, species.ErrNotFound) {
		t.Fatalf("get: %v", err)
	}
	if err := svc.DeleteMaterial("N2"); !errors.Is(err, species.ErrNotFound) {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Fingerprint("N2"); !errors.Is(err, species.ErrNotFound) {
		t.Fatalf("fingerprint: %v", err)
	}
}
