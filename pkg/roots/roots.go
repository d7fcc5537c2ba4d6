package roots

import (
	"fmt"
	"math"

	"github.com/willbeason/newton-fractal/pkg/geometry"
	"github.com/willbeason/newton-fractal/pkg/transforms"
)

// Root identifies which cube root of unity a point converged to.
type Root int

const (
	Unresolved Root = iota
	Root1
	Root2
	Root3
)

// The cube roots of unity, in the order Classify checks them.
var (
	One            = geometry.New(1, 0)
	UpperConjugate = geometry.New(-0.5, math.Sqrt(3)/2)
	LowerConjugate = geometry.New(-0.5, -math.Sqrt(3)/2)
)

func (r Root) String() string {
	switch r {
	case Unresolved:
		return "unresolved"
	case Root1:
		return "root1"
	case Root2:
		return "root2"
	case Root3:
		return "root3"
	default:
		return fmt.Sprintf("Root(%d)", int(r))
	}
}

// Value returns the point r stands for. Unresolved has no point.
func (r Root) Value() (geometry.Complex, bool) {
	switch r {
	case Root1:
		return One, true
	case Root2:
		return UpperConjugate, true
	case Root3:
		return LowerConjugate, true
	default:
		return geometry.Complex{}, false
	}
}

// Classify returns the root result converged to. Results that hit the
// iteration cap are Unresolved even if they happen to lie near a root.
func Classify(result transforms.Result, epsilon float64) Root {
	if !result.Converged {
		return Unresolved
	}

	for _, root := range []Root{Root1, Root2, Root3} {
		value, _ := root.Value()
		if geometry.ApproxEqual(result.Value, value, epsilon) {
			return root
		}
	}
	return Unresolved
}
