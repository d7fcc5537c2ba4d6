package frame

import (
	"context"
	"image/color"
	"sync"
	"time"

	"github.com/willbeason/newton-fractal/pkg/geometry"
	"github.com/willbeason/newton-fractal/pkg/roots"
	"github.com/willbeason/newton-fractal/pkg/transforms"
)

// Renderer draws a Newton fractal frame.
type Renderer struct {
	Viewport  geometry.Viewport
	Newton    transforms.Newton
	Colorizer roots.Colorizer

	Width, Height int

	// Workers is the number of goroutines rows are spread across. Values
	// below 2 render every pixel on the calling goroutine in row-major order.
	Workers int
}

// Pixel computes the color of the pixel at (x, y).
func (r *Renderer) Pixel(x, y int) color.RGBA {
	z := r.Viewport.Point(x, y)
	return r.Colorizer.Color(r.Newton.FindRoot(z))
}

func (r *Renderer) renderRow(buf *Buffer, y int) {
	for x := 0; x < r.Width; x++ {
		buf.SetRGBA(x, y, r.Pixel(x, y))
	}
}

// Progress receives each finished row. row aliases the frame buffer and must
// not be retained after the call returns.
type Progress func(y int, row []byte)

// Render draws a complete frame. progress, if not nil, is called on the
// calling goroutine once for every row as soon as it is finished.
//
// Cancelling ctx abandons the frame and returns ctx.Err().
func (r *Renderer) Render(ctx context.Context, progress Progress) (*Buffer, error) {
	start := time.Now()
	buf := NewBuffer(r.Width, r.Height)
	Logger().Debug("buffer allocated",
		"width", r.Width, "height", r.Height, "took", time.Since(start))

	var err error
	if r.Workers < 2 {
		err = r.renderSequential(ctx, buf, progress)
	} else {
		err = r.renderParallel(ctx, buf, progress)
	}
	if err != nil {
		return nil, err
	}

	Logger().Info("computation finished",
		"width", r.Width, "height", r.Height, "workers", r.Workers, "took", time.Since(start))
	return buf, nil
}

func (r *Renderer) renderSequential(ctx context.Context, buf *Buffer, progress Progress) error {
	for y := 0; y < r.Height; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.renderRow(buf, y)
		if progress != nil {
			progress(y, buf.Row(y))
		}
	}
	return nil
}

// renderParallel hands out whole rows, so each worker writes to a region of
// the buffer no other worker touches.
func (r *Renderer) renderParallel(ctx context.Context, buf *Buffer, progress Progress) error {
	Logger().Debug("rendering in parallel", "workers", r.Workers)

	yChannel := make(chan int)
	go func() {
		defer close(yChannel)
		for y := 0; y < r.Height; y++ {
			if ctx.Err() != nil {
				return
			}
			select {
			case yChannel <- y:
			case <-ctx.Done():
				return
			}
		}
	}()

	finished := make(chan int, r.Workers)

	ywg := sync.WaitGroup{}
	ywg.Add(r.Workers)
	for i := 0; i < r.Workers; i++ {
		go func() {
			defer ywg.Done()
			for y := range yChannel {
				r.renderRow(buf, y)
				finished <- y
			}
		}()
	}

	go func() {
		ywg.Wait()
		close(finished)
	}()

	rows := 0
	for y := range finished {
		rows++
		if progress != nil {
			progress(y, buf.Row(y))
		}
	}

	if rows < r.Height {
		return ctx.Err()
	}
	return nil
}
