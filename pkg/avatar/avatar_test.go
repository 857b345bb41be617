package avatar

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(t *testing.T, width, height int, encode func(*bytes.Buffer, image.Image) error) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, encode(&buf, img))
	return buf.Bytes()
}

func TestAllowedFilename(t *testing.T) {
	cases := []struct {
		name    string
		allowed bool
	}{
		{"me.png", true},
		{"me.jpg", true},
		{"me.jpeg", true},
		{"ME.PNG", true},
		{"me.gif", false},
		{"me.txt", false},
		{"me", false},
		{"me.png.exe", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, AllowedFilename(tc.name), tc.name)
	}
}

func TestNormalizePNG(t *testing.T) {
	data := testImage(t, 100, 60, func(buf *bytes.Buffer, img image.Image) error {
		return png.Encode(buf, img)
	})

	out, err := Normalize(data)
	require.NoError(t, err)

	img, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, Size, img.Bounds().Dx())
	assert.Equal(t, Size, img.Bounds().Dy())
}

func TestNormalizeJPEGBecomesPNG(t *testing.T) {
	data := testImage(t, 500, 300, func(buf *bytes.Buffer, img image.Image) error {
		return jpeg.Encode(buf, img, nil)
	})

	out, err := Normalize(data)
	require.NoError(t, err)

	img, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, Size, img.Bounds().Dx())
	assert.Equal(t, Size, img.Bounds().Dy())
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	_, err := Normalize([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrNotAnImage)
}
