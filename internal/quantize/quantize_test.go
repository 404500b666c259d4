package quantize

import (
	"image"
	"image/color"
	"testing"

	"github.com/garaekz/glyphcast/internal/charmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fourPixelImage(topLeft, topRight, bottomLeft, bottomRight color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, topLeft)
	img.SetNRGBA(1, 0, topRight)
	img.SetNRGBA(0, 1, bottomLeft)
	img.SetNRGBA(1, 1, bottomRight)
	return img
}

func TestProcessUpscalesAndMapsLuminance(t *testing.T) {
	black := color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	gray128 := color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	gray64 := color.NRGBA{R: 64, G: 64, B: 64, A: 255}
	img := fourPixelImage(black, white, gray128, gray64)

	q := New(8, 2, charmap.ASCII10)
	artifact, err := q.Process(img)
	require.NoError(t, err)

	assert.Equal(t, 8, artifact.Width)
	assert.Equal(t, 2, artifact.Height)
	assert.Len(t, artifact.Glyphs, 16)
	assert.Len(t, artifact.Colors, 48)

	topIdx0 := charmap.ASCII10.Len() * int(luminance(0, 0, 0)) / 256
	topIdx1 := charmap.ASCII10.Len() * int(luminance(255, 255, 255)) / 256
	bottomIdx0 := charmap.ASCII10.Len() * int(luminance(128, 128, 128)) / 256
	bottomIdx1 := charmap.ASCII10.Len() * int(luminance(64, 64, 64)) / 256

	wantTopRow := string(repeatRune(charmap.ASCII10.At(topIdx0), 4)) + string(repeatRune(charmap.ASCII10.At(topIdx1), 4))
	wantBottomRow := string(repeatRune(charmap.ASCII10.At(bottomIdx0), 4)) + string(repeatRune(charmap.ASCII10.At(bottomIdx1), 4))
	assert.Equal(t, wantTopRow+wantBottomRow, artifact.Glyphs)

	// The given reference extremes are unambiguous regardless of the
	// specific map: pure black maps to the map's first glyph, pure white
	// to its last.
	assert.Equal(t, ' ', rune(artifact.Glyphs[0]))
	assert.Equal(t, '@', rune(artifact.Glyphs[4]))
}

func repeatRune(r rune, n int) []rune {
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return out
}

func TestProcessRejectsZeroResolution(t *testing.T) {
	q := New(0, 2, charmap.ASCII10)
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	_, err := q.Process(img)
	assert.Error(t, err)
}

func TestProcessRejectsEmptyCharMap(t *testing.T) {
	q := New(2, 2, charmap.Map{Name: "empty"})
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	_, err := q.Process(img)
	assert.Error(t, err)
}

func TestSetResolutionAndCharMap(t *testing.T) {
	q := New(4, 4, charmap.ASCII10)
	q.SetResolution(10, 5)
	w, h := q.Resolution()
	assert.Equal(t, 10, w)
	assert.Equal(t, 5, h)

	q.SetCharMap(charmap.BlackWhite2)
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	artifact, err := q.Process(img)
	require.NoError(t, err)
	assert.Len(t, artifact.Glyphs, 10*5)
}

func TestLuminanceGrayscaleIsExact(t *testing.T) {
	assert.Equal(t, uint8(0), luminance(0, 0, 0))
	assert.Equal(t, uint8(255), luminance(255, 255, 255))
	assert.Equal(t, uint8(128), luminance(128, 128, 128))
	assert.Equal(t, uint8(64), luminance(64, 64, 64))
}
