package fingerprint_test

import (
	"testing"

	"combustion/internal/domain"
	"combustion/internal/fingerprint"
)

func oxygen() domain.Material {
	return domain.Material{
		Formula:     "O2",
		DisplayName: "Oxygen",
		Records: []domain.CoefficientRecord{
			{Phase: domain.PhaseGas, TMin: 298.15, TMax: 1000, Coefficients: domain.Coefficients{B: 29.1}},
			{Phase: domain.PhaseGas, TMin: 1000, TMax: 6000, Coefficients: domain.Coefficients{B: 34.9, E: 1.2}},
		},
	}
}

func TestMaterial_Length(t *testing.T) {
	if fp := fingerprint.Material(oxygen()); len(fp) != 20 {
		t.Fatalf("fingerprint %q has length %d, want 20", fp, len(fp))
	}
}

func TestMaterial_IgnoresOrderCaseAndName(t *testing.T) {
	a := oxygen()
	b := oxygen()
	b.Formula = "o2"
	b.DisplayName = "Dioxygen"
	b.Records[0], b.Records[1] = b.Records[1], b.Records[0]

	if fingerprint.Material(a) != fingerprint.Material(b) {
		t.Fatal("fingerprints differ for equivalent data")
	}
}

func TestMaterial_ChangesWithCoefficients(t *testing.T) {
	a := oxygen()
	b := oxygen()
	b.Records[1].Coefficients.G = 1e-9

	if fingerprint.Material(a) == fingerprint.Material(b) {
		t.Fatal("fingerprint did not change with coefficient data")
	}
}
