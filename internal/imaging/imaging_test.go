package imaging

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meur/tierboard/internal/share"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCenterSquare(t *testing.T) {
	tests := []struct {
		in, expected image.Rectangle
	}{
		{image.Rect(0, 0, 400, 300), image.Rect(50, 0, 350, 300)},
		{image.Rect(0, 0, 300, 400), image.Rect(0, 50, 300, 350)},
		{image.Rect(10, 10, 110, 110), image.Rect(10, 10, 110, 110)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CenterSquare(tt.in))
	}
}

func TestIngest(t *testing.T) {
	// wide image: red side bands, blue center square
	src := image.NewRGBA(image.Rect(0, 0, 400, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 400; x++ {
			c := color.RGBA{R: 255, A: 255}
			if x >= 100 && x < 300 {
				c = color.RGBA{B: 255, A: 255}
			}
			src.Set(x, y, c)
		}
	}

	thumb, err := Ingest(bytes.NewReader(encodePNG(t, src)), Size)
	require.NoError(t, err)
	assert.Equal(t, 200, thumb.Width)
	assert.Equal(t, 200, thumb.Height)
	assert.True(t, strings.HasPrefix(thumb.DataURL, "data:image/png;base64,"))

	decoded, err := share.DecodeDataURL(thumb.DataURL)
	require.NoError(t, err)
	assert.Equal(t, thumb.Bytes, len(decoded.Data))

	out, err := png.Decode(bytes.NewReader(decoded.Data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 200, 200), out.Bounds())

	// the red bands were cropped away
	r, _, b, _ := out.At(2, 100).RGBA()
	assert.Zero(t, r>>8)
	assert.Equal(t, uint32(255), b>>8)
}

func TestIngest_DefaultSize(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 50, 80))

	thumb, err := Ingest(bytes.NewReader(encodePNG(t, src)), 0)
	require.NoError(t, err)
	assert.Equal(t, Size, thumb.Width)
}

// pngHeader returns a PNG that declares w×h pixels but carries no pixel data
func pngHeader(w, h uint32) []byte {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], w)
	binary.BigEndian.PutUint32(ihdr[4:8], h)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 2 // truecolor

	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	chunk := append([]byte("IHDR"), ihdr...)
	buf.Write(chunk)
	binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func TestIngest_RejectsHugeDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h uint32
	}{
		{"wide", 50000, 10},
		{"tall", 10, MaxDimension + 1},
		{"both", 50000, 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Ingest(bytes.NewReader(pngHeader(tt.w, tt.h)), Size)
			assert.ErrorIs(t, err, ErrTooLarge)
		})
	}
}

func TestIngest_NotAnImage(t *testing.T) {
	_, err := Ingest(strings.NewReader("definitely not a picture"), Size)
	assert.Error(t, err)
}
