package mediasource

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/garaekz/glyphcast/internal/errs"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// OpenStill decodes a single still image file (png, jpg/jpeg, bmp, tif/tiff)
// into a Still source.
func OpenStill(path string) (*Still, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.Application, "mediasource", fmt.Errorf("error opening image: %w", err))
	}
	defer f.Close()

	img, err := decodeByExtension(f, path)
	if err != nil {
		return nil, errs.Wrap(errs.Decode, "mediasource", fmt.Errorf("error decoding image: %w", err))
	}
	return NewStill(img), nil
}

func decodeByExtension(r io.Reader, path string) (image.Image, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Decode(r)
	case ".jpg", ".jpeg":
		return jpeg.Decode(r)
	case ".bmp":
		return bmp.Decode(r)
	case ".tif", ".tiff":
		return tiff.Decode(r)
	case ".ico":
		return decodeICO(r)
	default:
		img, _, err := image.Decode(r)
		return img, err
	}
}

// OpenAnimated decodes a GIF file into a fully materialized frame list. The
// GIF's own per-frame delay/disposal metadata is discarded: the pipeline
// worker paces frames at its own configured fps, matching how the rest of
// the pipeline treats every source uniformly.
func OpenAnimated(path string) (*AnimatedSequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.Application, "mediasource", fmt.Errorf("error opening GIF: %w", err))
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return nil, errs.Wrap(errs.Decode, "mediasource", fmt.Errorf("cannot read GIF header: %w", err))
	}

	frames := make([]image.Image, 0, len(g.Image))
	// Composite each paletted delta frame onto a running canvas: GIF
	// frames are frequently partial, covering only the changed region.
	canvas := image.NewRGBA(image.Rect(0, 0, g.Config.Width, g.Config.Height))
	for _, frame := range g.Image {
		drawOver(canvas, frame)
		snapshot := image.NewRGBA(canvas.Bounds())
		copy(snapshot.Pix, canvas.Pix)
		frames = append(frames, snapshot)
	}

	return NewAnimatedSequence(frames)
}

func drawOver(dst *image.RGBA, src *image.Paletted) {
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if ci := src.ColorIndexAt(x, y); int(ci) < len(src.Palette) {
				_, _, _, a := src.Palette[ci].RGBA()
				if a != 0 {
					dst.Set(x, y, src.At(x, y))
				}
			}
		}
	}
}

var videoExtensions = map[string]bool{
	".mp4": true, ".avi": true, ".webm": true, ".mkv": true, ".mov": true, ".flv": true, ".ogg": true,
}

// Open dispatches on path's extension to OpenStill, OpenAnimated, or
// OpenVideo. An unrecognized extension is treated as video, since ffmpeg
// itself determines decodability at that point.
func Open(path string, targetW, targetH int, fps float64) (Source, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff", ".ico":
		return OpenStill(path)
	case ".gif":
		return OpenAnimated(path)
	default:
		return OpenVideo(path, targetW, targetH, fps)
	}
}
