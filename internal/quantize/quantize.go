// Package quantize turns a decoded image into a FrameArtifact: a fixed-size
// glyph string and its parallel RGB color buffer, ready for the terminal
// worker to print.
package quantize

import (
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/garaekz/glyphcast/internal/charmap"
	"github.com/garaekz/glyphcast/internal/errs"
)

// FrameArtifact is the unit of transfer between the pipeline and the
// terminal: Glyphs has exactly Width*Height runes encoded as bytes with no
// embedded line terminators, and Colors holds 3 bytes (R,G,B) per cell in
// the same row-major order.
type FrameArtifact struct {
	Width, Height int
	Glyphs        string
	Colors        []byte
}

// Quantizer resizes frames to a target cell resolution and maps each cell's
// luminance to a glyph from the active character map.
type Quantizer struct {
	width, height int
	charMap       charmap.Map
}

// New builds a Quantizer targeting (width, height) cells using charMap.
func New(width, height int, charMap charmap.Map) *Quantizer {
	return &Quantizer{width: width, height: height, charMap: charMap}
}

// SetResolution updates the target cell resolution for subsequent calls to
// Process.
func (q *Quantizer) SetResolution(width, height int) {
	q.width, q.height = width, height
}

// Resolution returns the current target cell resolution.
func (q *Quantizer) Resolution() (width, height int) {
	return q.width, q.height
}

// SetCharMap swaps the active character map for subsequent calls to Process.
func (q *Quantizer) SetCharMap(m charmap.Map) {
	q.charMap = m
}

// Process resizes img to the quantizer's target resolution with
// nearest-neighbor sampling, computes per-cell luminance, and emits a
// FrameArtifact mapping each cell to a glyph in the active character map.
func (q *Quantizer) Process(img image.Image) (FrameArtifact, error) {
	if q.width <= 0 || q.height <= 0 {
		return FrameArtifact{}, errs.New(errs.Frame, "quantize", "target resolution must be positive")
	}
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return FrameArtifact{}, errs.New(errs.Frame, "quantize", "source image has zero dimension")
	}

	glyphs := make([]byte, 0, q.width*q.height*4)
	colors := make([]byte, 0, q.width*q.height*3)
	k := q.charMap.Len()
	if k <= 0 {
		return FrameArtifact{}, errs.New(errs.Frame, "quantize", "character map is empty")
	}

	for y := 0; y < q.height; y++ {
		srcY := bounds.Min.Y + y*srcH/q.height
		for x := 0; x < q.width; x++ {
			srcX := bounds.Min.X + x*srcW/q.width
			r, g, b := sampleRGB(img, srcX, srcY)
			colors = append(colors, r, g, b)

			lum := luminance(r, g, b)
			idx := k * int(lum) / 256
			if idx >= k {
				idx = k - 1
			}
			glyphs = utf8.AppendRune(glyphs, q.charMap.At(idx))
		}
	}

	return FrameArtifact{
		Width:  q.width,
		Height: q.height,
		Glyphs: string(glyphs),
		Colors: colors,
	}, nil
}

func sampleRGB(img image.Image, x, y int) (r, g, b uint8) {
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return c.R, c.G, c.B
}

// luminance computes standard (ITU-R BT.601) luma from 8-bit RGB.
func luminance(r, g, b uint8) uint8 {
	y := (299*uint32(r) + 587*uint32(g) + 114*uint32(b)) / 1000
	if y > 255 {
		y = 255
	}
	return uint8(y)
}
