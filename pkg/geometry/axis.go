package geometry

import "math"

const (
	NoFlip = 1.0
	Flip   = -1.0
)

// An AxisMapper converts a pixel index along one image axis into the
// mathematical value at that pixel.
type AxisMapper struct {
	// Start is the mathematical value at pixel 0.
	Start float64
	// Range is the absolute distance between the two ends of the axis.
	Range float64
	// Pixels is the number of pixels the range is spread across.
	Pixels int
	// Flip is NoFlip or Flip. Image rows grow downwards while imaginary values
	// conventionally grow upwards, so vertical axes are usually flipped.
	Flip float64
}

func NewAxisMapper(start, end float64, pixels int, flip float64) AxisMapper {
	return AxisMapper{
		Start:  start,
		Range:  math.Max(start, end) - math.Min(start, end),
		Pixels: pixels,
		Flip:   flip,
	}
}

// At returns the mathematical value at pixel.
func (m AxisMapper) At(pixel int) float64 {
	return m.Start + m.Flip*(m.Range/float64(m.Pixels)*float64(pixel))
}

// Viewport maps image pixels onto the complex plane.
type Viewport struct {
	Real AxisMapper
	Imag AxisMapper
}

// Point returns the complex number drawn at pixel (x, y).
func (v Viewport) Point(x, y int) Complex {
	return New(v.Real.At(x), v.Imag.At(y))
}
