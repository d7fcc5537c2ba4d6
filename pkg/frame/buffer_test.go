package frame

import (
	"bytes"
	"image/color"
	"log/slog"
	"strings"
	"testing"
)

func TestBufferSetRGBA(t *testing.T) {
	buf := NewBuffer(4, 3)
	c := color.RGBA{R: 1, G: 2, B: 3, A: 4}

	buf.SetRGBA(2, 1, c)
	if got := buf.Image().RGBAAt(2, 1); got != c {
		t.Errorf("pixel (2, 1) = %v, want %v", got, c)
	}

	// Row-major, four bytes per pixel.
	offset := (1*4 + 2) * 4
	if got := buf.Pix()[offset : offset+4]; !bytes.Equal(got, []byte{1, 2, 3, 4}) {
		t.Errorf("Pix()[%d:%d] = %v", offset, offset+4, got)
	}
	if got := buf.Row(1)[8:12]; !bytes.Equal(got, []byte{1, 2, 3, 4}) {
		t.Errorf("Row(1)[8:12] = %v", got)
	}
}

func TestBufferSetRGBAOutOfRange(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var logs bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&logs, nil)))

	buf := NewBuffer(4, 3)
	c := color.RGBA{R: 255, A: 255}

	for _, p := range [][2]int{{4, 0}, {0, 3}, {-1, 0}, {0, -1}, {100, 100}} {
		buf.SetRGBA(p[0], p[1], c)
	}

	for _, b := range buf.Pix() {
		if b != 0 {
			t.Fatalf("out of range write modified the buffer: %v", buf.Pix())
		}
	}
	if n := strings.Count(logs.String(), "invalid coordinates"); n != 5 {
		t.Errorf("logged %d invalid coordinates, want 5:\n%s", n, logs.String())
	}
}

func TestBufferDimensions(t *testing.T) {
	buf := NewBuffer(7, 5)
	if buf.Width() != 7 || buf.Height() != 5 {
		t.Errorf("buffer is %dx%d, want 7x5", buf.Width(), buf.Height())
	}
	if len(buf.Row(4)) != 28 {
		t.Errorf("len(Row(4)) = %d, want 28", len(buf.Row(4)))
	}
	if buf.Image().Bounds().Dx() != 7 {
		t.Errorf("Image() width = %d", buf.Image().Bounds().Dx())
	}
}
