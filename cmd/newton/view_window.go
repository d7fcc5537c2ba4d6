//go:build cgo

package main

import (
	"context"
	"errors"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/willbeason/newton-fractal/pkg/frame"
)

// window presents a frame while it is being rendered. Rows are copied into
// pix as they finish and uploaded on the next Draw.
type window struct {
	width, height int

	mu    sync.Mutex
	pix   []byte
	dirty bool
	err   error

	img *ebiten.Image
}

func newWindow(width, height int) *window {
	return &window{
		width:  width,
		height: height,
		pix:    make([]byte, 4*width*height),
	}
}

func (w *window) setRow(y int, row []byte) {
	w.mu.Lock()
	defer w.mu.Unlock()

	copy(w.pix[4*w.width*y:], row)
	w.dirty = true
}

func (w *window) fail(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.err = err
}

func (w *window) Update() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.err
}

func (w *window) Draw(screen *ebiten.Image) {
	if w.img == nil {
		w.img = ebiten.NewImage(w.width, w.height)
	}

	w.mu.Lock()
	if w.dirty {
		w.img.WritePixels(w.pix)
		w.dirty = false
	}
	w.mu.Unlock()

	screen.DrawImage(w.img, nil)
}

func (w *window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

func runView(ctx context.Context, opts *options, scale int) error {
	renderer, err := opts.Renderer()
	if err != nil {
		return err
	}
	if scale < 1 {
		scale = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := newWindow(renderer.Width, renderer.Height)

	go func() {
		_, err := renderer.Render(ctx, w.setRow)
		if err != nil && !errors.Is(err, context.Canceled) {
			w.fail(err)
		}
	}()

	ebiten.SetWindowTitle("Newton fractal")
	ebiten.SetWindowSize(renderer.Width*scale, renderer.Height*scale)
	err = ebiten.RunGame(w)
	if err != nil {
		return err
	}

	frame.Logger().Debug("window closed")
	return nil
}
