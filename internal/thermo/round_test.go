package thermo_test

import (
	"math"
	"strconv"
	"testing"

	"combustion/internal/thermo"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{2.345, 2.35},
		{2.344, 2.34},
		{-1.005, -1.01},
		{2193.514855, 2193.51},
		{-51.49075, -51.49},
		{10, 10},
		{0.125, 0.13},
		{-0.001, 0},
		{-0.004, 0},
	}
	for _, tt := range tests {
		if got := thermo.RoundHalfUp(tt.in, 2); got != tt.want {
			t.Errorf("RoundHalfUp(%v, 2) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoundHalfUp_NoNegativeZero(t *testing.T) {
	for _, v := range []float64{-0.001, -0.004, -0.0049} {
		got := thermo.RoundHalfUp(v, 2)
		if math.Signbit(got) {
			t.Errorf("RoundHalfUp(%v, 2) = %s, want 0.00", v, strconv.FormatFloat(got, 'f', 2, 64))
		}
	}
}
