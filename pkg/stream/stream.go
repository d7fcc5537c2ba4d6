// Package stream sends frames to remote canvases over websockets, one row at
// a time as rows finish rendering.
//
// A stream is a JSON text message carrying the Header, then one binary
// message per row: the row index as a big-endian uint32 followed by the row's
// RGBA bytes. Rows arrive in completion order, which is not necessarily top
// to bottom. The server closes the connection normally after the last row.
package stream

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/willbeason/newton-fractal/pkg/frame"
)

const (
	rowIndexSize = 4

	// MaxDimension bounds the width and height Receive accepts, so a bad
	// header cannot make it allocate an arbitrarily large frame.
	MaxDimension = 8192
)

var (
	ErrBadHeader = errors.New("stream: invalid header")
	ErrBadRow    = errors.New("stream: invalid row")
)

// Header describes the frame that follows.
type Header struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Handler accepts websocket connections and streams a freshly rendered frame
// to each one.
type Handler struct {
	NewRenderer func() (*frame.Renderer, error)

	// OriginPatterns lists the hosts besides the server's own that may open
	// a stream.
	OriginPatterns []string
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.OriginPatterns,
	})
	if err != nil {
		frame.Logger().Warn("websocket accept failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer c.CloseNow()

	log := frame.Logger().With("remote", r.RemoteAddr)
	log.Info("streaming frame")

	renderer, err := h.NewRenderer()
	if err != nil {
		log.Error("building renderer", "err", err)
		_ = c.Close(websocket.StatusInternalError, "cannot render frame")
		return
	}

	err = Send(r.Context(), c, renderer)
	if err != nil {
		log.Warn("stream aborted", "err", err)
		return
	}

	err = c.Close(websocket.StatusNormalClosure, "frame complete")
	if err != nil {
		log.Debug("closing stream", "err", err)
	}
}

// Send renders a frame with r and writes it to c.
func Send(ctx context.Context, c *websocket.Conn, r *frame.Renderer) error {
	err := wsjson.Write(ctx, c, Header{Width: r.Width, Height: r.Height})
	if err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	msg := make([]byte, rowIndexSize+4*r.Width)
	var writeErr error
	_, err = r.Render(ctx, func(y int, row []byte) {
		if writeErr != nil {
			return
		}

		binary.BigEndian.PutUint32(msg, uint32(y))
		copy(msg[rowIndexSize:], row)

		writeErr = c.Write(ctx, websocket.MessageBinary, msg)
		if writeErr != nil {
			cancel()
		}
	})

	if writeErr != nil {
		return fmt.Errorf("writing row: %w", writeErr)
	}
	return err
}

// Receive dials url and assembles the streamed frame.
func Receive(ctx context.Context, url string) (*image.RGBA, error) {
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", url, err)
	}
	defer c.CloseNow()

	var h Header
	err = wsjson.Read(ctx, c, &h)
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if h.Width <= 0 || h.Height <= 0 || h.Width > MaxDimension || h.Height > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadHeader, h.Width, h.Height)
	}

	rowSize := rowIndexSize + 4*h.Width
	c.SetReadLimit(int64(rowSize))

	img := image.NewRGBA(image.Rect(0, 0, h.Width, h.Height))
	seen := make([]bool, h.Height)

	for received := 0; received < h.Height; received++ {
		typ, data, err := c.Read(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading row %d of %d: %w", received, h.Height, err)
		}
		if typ != websocket.MessageBinary || len(data) != rowSize {
			return nil, fmt.Errorf("%w: %v message of %d bytes", ErrBadRow, typ, len(data))
		}

		y := int(binary.BigEndian.Uint32(data))
		if y < 0 || y >= h.Height || seen[y] {
			return nil, fmt.Errorf("%w: row index %d", ErrBadRow, y)
		}
		seen[y] = true

		copy(img.Pix[img.PixOffset(0, y):], data[rowIndexSize:])
	}

	err = c.Close(websocket.StatusNormalClosure, "")
	if err != nil {
		frame.Logger().Debug("closing stream", "err", err)
	}

	return img, nil
}
