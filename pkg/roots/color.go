package roots

import (
	"image/color"
	"math"

	"github.com/willbeason/newton-fractal/pkg/transforms"
)

var (
	Red   = color.RGBA{R: 255, A: 255}
	Green = color.RGBA{G: 255, A: 255}
	Blue  = color.RGBA{B: 255, A: 255}
	Black = color.RGBA{A: 255}
)

// BaseColor is the unshaded color of each root.
func BaseColor(r Root) color.RGBA {
	switch r {
	case Root1:
		return Red
	case Root2:
		return Green
	case Root3:
		return Blue
	default:
		return Black
	}
}

// Shade is a color whose channels have not yet been quantized to bytes.
type Shade struct {
	R, G, B, A float64
}

// Scale darkens base by the square root of iterations so that points which
// took longer to converge are drawn darker. Alpha is left alone.
//
// Zero iterations leaves the color unscaled.
func Scale(base color.RGBA, iterations int) Shade {
	divisor := 1.0
	if iterations > 0 {
		divisor = math.Sqrt(float64(iterations))
	}

	return Shade{
		R: float64(base.R) / divisor,
		G: float64(base.G) / divisor,
		B: float64(base.B) / divisor,
		A: float64(base.A),
	}
}

// RGBA quantizes s, clamping each channel to [0, 255] and rounding halves to
// even, the same conversion a canvas applies to its pixel data.
func (s Shade) RGBA() color.RGBA {
	return color.RGBA{
		R: quantize(s.R),
		G: quantize(s.G),
		B: quantize(s.B),
		A: quantize(s.A),
	}
}

func quantize(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxUint8:
		return math.MaxUint8
	default:
		return uint8(math.RoundToEven(v))
	}
}

// Colorizer turns Newton results into pixel colors.
type Colorizer struct {
	// Epsilon is the per-axis tolerance for matching a result to a root.
	Epsilon float64
}

func (c Colorizer) Color(result transforms.Result) color.RGBA {
	root := Classify(result, c.Epsilon)
	return Scale(BaseColor(root), result.Iterations).RGBA()
}
