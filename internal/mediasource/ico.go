package mediasource

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// decodeICO decodes a Windows .ico file's largest embedded image. No stdlib
// or x/image package reads this format, so the directory and pixel data are
// parsed directly: each entry holds either a full PNG or a raw
// BITMAPINFOHEADER-style DIB with no file header, which golang.org/x/image/bmp
// does not accept on its own.
func decodeICO(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading ico: %w", err)
	}
	if len(data) < 6 || binary.LittleEndian.Uint16(data[2:4]) != 1 {
		return nil, fmt.Errorf("not an ico file")
	}
	count := int(binary.LittleEndian.Uint16(data[4:6]))
	if count == 0 {
		return nil, fmt.Errorf("ico file has no images")
	}

	var bestW, bestH int
	var bestSize, bestOffset uint32
	for i := 0; i < count; i++ {
		off := 6 + i*16
		if off+16 > len(data) {
			return nil, fmt.Errorf("ico directory truncated")
		}
		w, h := int(data[off]), int(data[off+1])
		if w == 0 {
			w = 256
		}
		if h == 0 {
			h = 256
		}
		size := binary.LittleEndian.Uint32(data[off+8 : off+12])
		offset := binary.LittleEndian.Uint32(data[off+12 : off+16])
		if w*h > bestW*bestH {
			bestW, bestH, bestSize, bestOffset = w, h, size, offset
		}
	}
	if bestSize == 0 || int(bestOffset)+int(bestSize) > len(data) {
		return nil, fmt.Errorf("ico directory entry out of range")
	}
	entry := data[bestOffset : bestOffset+bestSize]

	if len(entry) >= 8 && bytes.Equal(entry[:8], pngSignature) {
		return png.Decode(bytes.NewReader(entry))
	}
	return decodeDIB(entry)
}

// decodeDIB decodes a raw BITMAPINFOHEADER DIB as embedded in an ICO entry:
// a 40-byte header, an optional palette, bottom-up XOR color rows, and a
// trailing AND mask that this decoder ignores (every pixel comes out
// opaque), since glyphcast only needs RGB for luminance quantization.
func decodeDIB(data []byte) (image.Image, error) {
	if len(data) < 40 {
		return nil, fmt.Errorf("dib header too short")
	}
	headerSize := int(binary.LittleEndian.Uint32(data[0:4]))
	width := int(int32(binary.LittleEndian.Uint32(data[4:8])))
	// The DIB's stored height covers the XOR image stacked on the AND mask.
	height := int(int32(binary.LittleEndian.Uint32(data[8:12]))) / 2
	bitCount := int(binary.LittleEndian.Uint16(data[14:16]))
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dib dimensions %dx%d", width, height)
	}

	offset := headerSize
	var palette []color.RGBA
	if bitCount <= 8 {
		colorsUsed := int(binary.LittleEndian.Uint32(data[32:36]))
		if colorsUsed == 0 {
			colorsUsed = 1 << uint(bitCount)
		}
		palette = make([]color.RGBA, colorsUsed)
		for i := 0; i < colorsUsed; i++ {
			o := headerSize + i*4
			if o+4 > len(data) {
				break
			}
			palette[i] = color.RGBA{R: data[o+2], G: data[o+1], B: data[o], A: 255}
		}
		offset = headerSize + colorsUsed*4
	}

	rowSize := ((bitCount*width + 31) / 32) * 4
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		srcRow := offset + (height-1-y)*rowSize // DIB rows are stored bottom-up
		if srcRow+rowSize > len(data) {
			break
		}
		decodeDIBRow(img, data[srcRow:srcRow+rowSize], y, width, bitCount, palette)
	}
	return img, nil
}

func decodeDIBRow(img *image.RGBA, row []byte, y, width, bitCount int, palette []color.RGBA) {
	for x := 0; x < width; x++ {
		var c color.RGBA
		switch bitCount {
		case 32:
			i := x * 4
			if i+4 > len(row) {
				continue
			}
			c = color.RGBA{R: row[i+2], G: row[i+1], B: row[i], A: 255}
		case 24:
			i := x * 3
			if i+3 > len(row) {
				continue
			}
			c = color.RGBA{R: row[i+2], G: row[i+1], B: row[i], A: 255}
		case 8:
			if x >= len(row) || int(row[x]) >= len(palette) {
				continue
			}
			c = palette[row[x]]
		case 4:
			byteIdx := x / 2
			if byteIdx >= len(row) {
				continue
			}
			idx := int(row[byteIdx] >> 4)
			if x%2 == 1 {
				idx = int(row[byteIdx] & 0x0f)
			}
			if idx >= len(palette) {
				continue
			}
			c = palette[idx]
		case 1:
			byteIdx := x / 8
			if byteIdx >= len(row) {
				continue
			}
			bit := 7 - uint(x%8)
			idx := int((row[byteIdx] >> bit) & 1)
			if idx >= len(palette) {
				continue
			}
			c = palette[idx]
		default:
			continue
		}
		img.Set(x, y, c)
	}
}
