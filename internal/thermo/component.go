package thermo

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"combustion/internal/domain"
)

// joulesPerKilojoule converts stored formation enthalpies to J/mol.
const joulesPerKilojoule = 1000.0

// boundaryTolerance is how far apart, in kelvin, two adjacent interval
// bounds may be and still count as the same boundary.
const boundaryTolerance = 1e-6

var (
	// ErrInvalidInterval is returned when interval bounds are inverted,
	// non-positive, overlapping or leave a gap.
	ErrInvalidInterval = errors.New("invalid temperature interval")

	// ErrNegativeMoleCount is returned for a component with fewer than zero moles.
	ErrNegativeMoleCount = errors.New("negative mole count")
)

// Interval is one temperature segment of a species.
//
// Coefficients apply on [TMin, TMax); the last interval of a component also
// covers everything above TMax. PhaseTransitionEnthalpy is the cumulative
// offset that keeps enthalpy continuous across the boundaries below TMin.
type Interval struct {
	TMin                    float64
	TMax                    float64
	Coefficients            domain.Coefficients
	PhaseTransitionEnthalpy float64
}

// Component is one species taking part in a reaction.
type Component struct {
	MoleCount         float64
	Intervals         []Interval
	FormationEnthalpy float64 // J/mol, from the lowest interval
}

// NewComponent builds a component from unordered coefficient records.
//
// Records are stable-sorted by TMin. Only the lowest record's formation
// enthalpy is used. A component without records is valid and contributes
// nothing to any sum.
func NewComponent(moleCount float64, records []domain.CoefficientRecord) (Component, error) {
	if moleCount < 0 || math.IsNaN(moleCount) {
		return Component{}, fmt.Errorf("%w: %v", ErrNegativeMoleCount, moleCount)
	}

	sorted := make([]domain.CoefficientRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].TMin < sorted[j].TMin })

	c := Component{
		MoleCount: moleCount,
		Intervals: make([]Interval, 0, len(sorted)),
	}
	for i, rec := range sorted {
		if i == 0 && rec.FormationEnthalpy != nil {
			c.FormationEnthalpy = *rec.FormationEnthalpy * joulesPerKilojoule
		}
		c.Intervals = append(c.Intervals, Interval{
			TMin:         rec.TMin,
			TMax:         rec.TMax,
			Coefficients: rec.Coefficients,
		})
	}
	if err := validateIntervals(c.Intervals); err != nil {
		return Component{}, err
	}
	return c, nil
}

func validateIntervals(intervals []Interval) error {
	for i, iv := range intervals {
		if !(iv.TMin > 0) || !(iv.TMax > iv.TMin) || math.IsInf(iv.TMax, 0) {
			return fmt.Errorf("%w: [%g, %g)", ErrInvalidInterval, iv.TMin, iv.TMax)
		}
		if i == 0 {
			continue
		}
		prev := intervals[i-1]
		if math.Abs(prev.TMax-iv.TMin) > boundaryTolerance {
			return fmt.Errorf("%w: [%g, %g) does not meet [%g, %g)",
				ErrInvalidInterval, prev.TMin, prev.TMax, iv.TMin, iv.TMax)
		}
	}
	return nil
}

// ActiveInterval returns the interval covering temperature t.
//
// An interval covers [TMin, TMax); the last one is open-ended above. Below
// the first interval, or for a component without intervals, ok is false.
func (c Component) ActiveInterval(t float64) (iv Interval, ok bool) {
	last := len(c.Intervals) - 1
	for i, cur := range c.Intervals {
		if t < cur.TMin {
			continue
		}
		if i == last || t < cur.TMax {
			return cur, true
		}
	}
	return Interval{}, false
}

// HeatCapacity is the component's heat capacity at t, scaled by mole count.
func (c Component) HeatCapacity(t float64) float64 {
	iv, ok := c.ActiveInterval(t)
	if !ok {
		return 0
	}
	return c.MoleCount * HeatCapacity(iv.Coefficients, t)
}

// PhaseTransitionEnthalpy is the stitched offset active at t, scaled by mole count.
func (c Component) PhaseTransitionEnthalpy(t float64) float64 {
	iv, ok := c.ActiveInterval(t)
	if !ok {
		return 0
	}
	return c.MoleCount * iv.PhaseTransitionEnthalpy
}

// ReferenceEnthalpy is the mole-scaled balance enthalpy at t evaluated on the
// first interval. Reference temperatures lie inside the first interval by
// data convention.
func (c Component) ReferenceEnthalpy(t float64) float64 {
	if len(c.Intervals) == 0 {
		return 0
	}
	return c.MoleCount * Enthalpy(c.Intervals[0].Coefficients, c.FormationEnthalpy, t)
}
