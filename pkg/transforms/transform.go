package transforms

import "github.com/willbeason/newton-fractal/pkg/geometry"

// A Transform iterates a passed point.
//
// ok is false when the point has no successor, for example when the transform
// would divide by zero. Callers must stop iterating in that case.
type Transform interface {
	Next(z geometry.Complex) (next geometry.Complex, ok bool)
}

var _ Transform = Newton{}
