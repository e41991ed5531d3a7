package thermo

// DefaultIntegrationSteps is the trapezoid count used when none is configured.
const DefaultIntegrationSteps = 10000

// Integrate applies the composite trapezoidal rule to f over [from, to] with
// n equal steps. A reversed range yields the negated integral. n <= 0 falls
// back to DefaultIntegrationSteps.
func Integrate(f func(float64) float64, from, to float64, n int) float64 {
	if n <= 0 {
		n = DefaultIntegrationSteps
	}
	step := (to - from) / float64(n)

	var sum float64
	prev := f(from)
	for i := 1; i <= n; i++ {
		next := f(from + float64(i)*step)
		sum += (prev + next) * step / 2
		prev = next
	}
	return sum
}
