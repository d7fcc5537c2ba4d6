package transforms

import "github.com/willbeason/newton-fractal/pkg/geometry"

const (
	// DefaultMaxIterations caps the number of Newton steps per point.
	DefaultMaxIterations = 30
)

var (
	one   = geometry.New(1, 0)
	three = geometry.New(3, 0)
)

// Newton runs Newton's method on f(z) = z^3 - 1.
type Newton struct {
	MaxIterations int
	// Epsilon is the per-axis tolerance at which two successive points are
	// considered the same, ending the search.
	Epsilon float64
}

func DefaultNewton() Newton {
	return Newton{
		MaxIterations: DefaultMaxIterations,
		Epsilon:       geometry.DefaultEpsilon,
	}
}

// Result is the outcome of FindRoot for a single starting point.
type Result struct {
	Value geometry.Complex
	// Iterations is the number of steps taken before the point stopped moving,
	// or MaxIterations if it never did.
	Iterations int
	// Converged is false if the search hit the iteration cap or a singular step.
	Converged bool
}

// Step returns f(z)/f'(z), the amount Newton's method moves z by.
//
// ok is false at the singularity f'(z) = 0 and whenever the update is not
// finite. z = 0 is the only exact singularity, but points very close to it
// overflow.
func Step(z geometry.Complex) (delta geometry.Complex, ok bool) {
	squared := geometry.Mul(z, z)
	cubed := geometry.Mul(squared, z)

	numerator := geometry.Sub(cubed, one)
	denominator := geometry.Mul(three, squared)

	// Multiplying through by the conjugate leaves a real denominator.
	conjugate := geometry.Conjugate(denominator)
	numerator = geometry.Mul(numerator, conjugate)
	denominator = geometry.Mul(denominator, conjugate)

	if denominator.Real == 0 {
		return geometry.Complex{}, false
	}

	delta = geometry.Mul(numerator, geometry.New(1/denominator.Real, 0))
	if !delta.IsFinite() {
		return geometry.Complex{}, false
	}

	return delta, true
}

// Next takes one Newton step from z.
func (n Newton) Next(z geometry.Complex) (geometry.Complex, bool) {
	delta, ok := Step(z)
	if !ok {
		return z, false
	}
	return geometry.Sub(z, delta), true
}

// FindRoot iterates from z0 until successive points are within Epsilon of
// each other.
func (n Newton) FindRoot(z0 geometry.Complex) Result {
	previous := z0

	for i := 0; i < n.MaxIterations; i++ {
		next, ok := n.Next(previous)
		if !ok {
			return Result{Value: previous, Iterations: n.MaxIterations}
		}

		if geometry.ApproxEqual(next, previous, n.Epsilon) {
			return Result{Value: next, Iterations: i, Converged: true}
		}

		previous = next
	}

	return Result{Value: previous, Iterations: n.MaxIterations}
}
