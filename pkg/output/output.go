package output

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

var ErrUnknownFormat = errors.New("unknown image format")

// FormatFromPath picks the encoder for path from its extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// DefaultPath names an output file after the current time.
func DefaultPath(now time.Time) string {
	return filepath.Join("out", now.Format("20060102150405")+".png")
}

// Save writes img to path, creating any missing parent directories.
func Save(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		err = os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = Encode(f, img, format)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return f.Close()
}
