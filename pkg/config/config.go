package config

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/spf13/pflag"
	"github.com/willbeason/newton-fractal/pkg/frame"
	"github.com/willbeason/newton-fractal/pkg/geometry"
	"github.com/willbeason/newton-fractal/pkg/roots"
	"github.com/willbeason/newton-fractal/pkg/transforms"
)

const (
	DefaultWidth  = 640
	DefaultHeight = 480

	DefaultRealStart = -2.0
	DefaultRealEnd   = 2.0

	// The vertical axis starts at the top of the image.
	DefaultImagStart = 1.5
	DefaultImagEnd   = -1.5
)

var (
	ErrInvalidDimensions = errors.New("width and height must be positive")
	ErrInvalidViewport   = errors.New("viewport axis must have finite, distinct ends")
	ErrInvalidIterations = errors.New("max iterations must be positive")
	ErrInvalidEpsilon    = errors.New("epsilon must be positive and finite")
)

// Config holds everything needed to render a frame.
type Config struct {
	Width, Height int

	RealStart, RealEnd float64
	ImagStart, ImagEnd float64
	FlipReal, FlipImag bool

	MaxIterations int
	Epsilon       float64

	Workers int
}

func Default() Config {
	return Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		RealStart:     DefaultRealStart,
		RealEnd:       DefaultRealEnd,
		ImagStart:     DefaultImagStart,
		ImagEnd:       DefaultImagEnd,
		FlipImag:      true,
		MaxIterations: transforms.DefaultMaxIterations,
		Epsilon:       geometry.DefaultEpsilon,
		Workers:       runtime.NumCPU(),
	}
}

// BindFlags registers a flag for every field of c, using the current values
// as defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "image width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "image height in pixels")

	fs.Float64Var(&c.RealStart, "real-start", c.RealStart, "real value at the left edge")
	fs.Float64Var(&c.RealEnd, "real-end", c.RealEnd, "real value at the right edge")
	fs.Float64Var(&c.ImagStart, "imag-start", c.ImagStart, "imaginary value at the top edge")
	fs.Float64Var(&c.ImagEnd, "imag-end", c.ImagEnd, "imaginary value at the bottom edge")
	fs.BoolVar(&c.FlipReal, "flip-real", c.FlipReal, "walk the real axis from start downwards")
	fs.BoolVar(&c.FlipImag, "flip-imag", c.FlipImag, "walk the imaginary axis from start downwards")

	fs.IntVar(&c.MaxIterations, "max-iterations", c.MaxIterations, "Newton steps before a point is left unresolved")
	fs.Float64Var(&c.Epsilon, "epsilon", c.Epsilon, "per-axis tolerance for convergence and root matching")

	fs.IntVarP(&c.Workers, "workers", "j", c.Workers, "rows rendered concurrently; 1 renders sequentially")
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}

	if err := validateAxis("real", c.RealStart, c.RealEnd, c.FlipReal); err != nil {
		return err
	}
	if err := validateAxis("imaginary", c.ImagStart, c.ImagEnd, c.FlipImag); err != nil {
		return err
	}

	if c.MaxIterations <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidIterations, c.MaxIterations)
	}
	if !(c.Epsilon > 0) || math.IsInf(c.Epsilon, 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidEpsilon, c.Epsilon)
	}

	return nil
}

// validateAxis checks that walking away from start in the direction given by
// flipped reaches end. The mapper only keeps the width of the range, so a
// reversed pair would silently render the mirror image beyond start.
func validateAxis(name string, start, end float64, flipped bool) error {
	for _, v := range []float64{start, end} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s axis [%v, %v]", ErrInvalidViewport, name, start, end)
		}
	}
	if start == end {
		return fmt.Errorf("%w: %s axis [%v, %v]", ErrInvalidViewport, name, start, end)
	}
	if flipped && end > start {
		return fmt.Errorf("%w: flipped %s axis must run downwards, got [%v, %v]", ErrInvalidViewport, name, start, end)
	}
	if !flipped && end < start {
		return fmt.Errorf("%w: %s axis must run upwards unless flipped, got [%v, %v]", ErrInvalidViewport, name, start, end)
	}
	return nil
}

func flip(flipped bool) float64 {
	if flipped {
		return geometry.Flip
	}
	return geometry.NoFlip
}

func (c Config) Viewport() geometry.Viewport {
	return geometry.Viewport{
		Real: geometry.NewAxisMapper(c.RealStart, c.RealEnd, c.Width, flip(c.FlipReal)),
		Imag: geometry.NewAxisMapper(c.ImagStart, c.ImagEnd, c.Height, flip(c.FlipImag)),
	}
}

func (c Config) Newton() transforms.Newton {
	return transforms.Newton{MaxIterations: c.MaxIterations, Epsilon: c.Epsilon}
}

// Renderer validates c and builds a frame renderer from it.
func (c Config) Renderer() (*frame.Renderer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &frame.Renderer{
		Viewport:  c.Viewport(),
		Newton:    c.Newton(),
		Colorizer: roots.Colorizer{Epsilon: c.Epsilon},
		Width:     c.Width,
		Height:    c.Height,
		Workers:   c.Workers,
	}, nil
}
