package thermo

// StitchPhaseTransitions fills PhaseTransitionEnthalpy for every interval of
// every product.
//
// At each boundary Tb the enthalpy from the lower interval's coefficients and
// from the upper interval's coefficients differ; the difference is carried
// forward so that Enthalpy(lower, Tb) + offset[i-1] equals
// Enthalpy(upper, Tb) + offset[i]. The first interval's offset is 0.
func StitchPhaseTransitions(products []Component) {
	for _, p := range products {
		var carried float64
		for i := range p.Intervals {
			if i == 0 {
				p.Intervals[i].PhaseTransitionEnthalpy = 0
				continue
			}
			prev := p.Intervals[i-1]
			curr := p.Intervals[i]
			tb := curr.TMin

			hPrev := Enthalpy(prev.Coefficients, p.FormationEnthalpy, tb)
			hCurr := Enthalpy(curr.Coefficients, p.FormationEnthalpy, tb)

			carried = hPrev - hCurr + carried
			p.Intervals[i].PhaseTransitionEnthalpy = carried
		}
	}
}
