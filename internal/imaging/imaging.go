// Package imaging turns user-selected pictures into small square thumbnails
// suitable for inline storage in a tier list item.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/meur/tierboard/internal/share"
)

// Size is the edge length of ingested thumbnails
const Size = 200

// MaxUploadBytes bounds the size of an image accepted for ingestion
const MaxUploadBytes = 10 << 20

// MaxDimension bounds the declared width and height of an ingested image
const MaxDimension = 8192

// ErrTooLarge is returned for inputs over MaxUploadBytes or MaxDimension
var ErrTooLarge = errors.New("image too large")

// Thumbnail is an ingested image
type Thumbnail struct {
	DataURL string
	Width   int
	Height  int
	Bytes   int
}

// Ingest decodes r, crops the largest centered square and scales it to
// size×size, returning it as an inline PNG data URL.
func Ingest(r io.Reader, size int) (Thumbnail, error) {
	if size <= 0 {
		size = Size
	}

	raw, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return Thumbnail{}, fmt.Errorf("failed to read image: %w", err)
	}
	if len(raw) > MaxUploadBytes {
		return Thumbnail{}, ErrTooLarge
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return Thumbnail{}, fmt.Errorf("failed to decode image: %w", err)
	}
	if cfg.Width > MaxDimension || cfg.Height > MaxDimension {
		return Thumbnail{}, fmt.Errorf("%w: %dx%d", ErrTooLarge, cfg.Width, cfg.Height)
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return Thumbnail{}, fmt.Errorf("failed to decode image: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, CenterSquare(src.Bounds()), draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return Thumbnail{}, fmt.Errorf("failed to encode image: %w", err)
	}

	return Thumbnail{
		DataURL: share.EncodeDataURL("image/png", buf.Bytes()),
		Width:   size,
		Height:  size,
		Bytes:   buf.Len(),
	}, nil
}

// CenterSquare returns the largest square centered in b
func CenterSquare(b image.Rectangle) image.Rectangle {
	side := min(b.Dx(), b.Dy())
	x := b.Min.X + (b.Dx()-side)/2
	y := b.Min.Y + (b.Dy()-side)/2
	return image.Rect(x, y, x+side, y+side)
}
