package geometry

import "math"

// DefaultEpsilon is the per-axis tolerance used when comparing points.
const DefaultEpsilon = 0.001

// Complex is a point on the complex plane. Operations never modify their
// operands; they always return a new value.
type Complex struct {
	Real float64
	Imag float64
}

func New(real, imag float64) Complex {
	return Complex{Real: real, Imag: imag}
}

// Mul returns a*b.
//
// (a+bi)(c+di) = (ac-bd)+(ad+bc)i
func Mul(a, b Complex) Complex {
	return Complex{
		Real: a.Real*b.Real - a.Imag*b.Imag,
		Imag: a.Real*b.Imag + a.Imag*b.Real,
	}
}

func Sub(a, b Complex) Complex {
	return Complex{Real: a.Real - b.Real, Imag: a.Imag - b.Imag}
}

// Conjugate negates the imaginary part of a.
func Conjugate(a Complex) Complex {
	return Complex{Real: a.Real, Imag: -a.Imag}
}

// ApproxEqual reports whether b lies inside the square of half-width epsilon
// centered on a. This is a bounding box, not a distance: points near the
// corners of the box compare equal even though they are further than epsilon
// from a.
func ApproxEqual(a, b Complex, epsilon float64) bool {
	return math.Abs(a.Real-b.Real) < epsilon &&
		math.Abs(a.Imag-b.Imag) < epsilon
}

// IsFinite reports whether neither part is NaN or infinite.
func (c Complex) IsFinite() bool {
	return !math.IsNaN(c.Real) && !math.IsInf(c.Real, 0) &&
		!math.IsNaN(c.Imag) && !math.IsInf(c.Imag, 0)
}
