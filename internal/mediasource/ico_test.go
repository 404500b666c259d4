package mediasource

import (
	"bytes"
	"context"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildICO(entryW, entryH byte, bitCount uint16, payload []byte) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint16(0)) // reserved
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // type: icon
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // count

	const entryOffset = 6 + 16
	buf.WriteByte(entryW)
	buf.WriteByte(entryH)
	buf.WriteByte(0) // colorCount
	buf.WriteByte(0) // reserved
	binary.Write(&buf, binary.LittleEndian, uint16(1))        // planes
	binary.Write(&buf, binary.LittleEndian, bitCount)         // bitcount
	binary.Write(&buf, binary.LittleEndian, uint32(len(payload))) // bytesInRes
	binary.Write(&buf, binary.LittleEndian, uint32(entryOffset))  // imageOffset

	buf.Write(payload)
	return buf.Bytes()
}

func buildDIB32(width, height int, pixels [][4]byte) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(40))            // header size
	binary.Write(&buf, binary.LittleEndian, int32(width))          // width
	binary.Write(&buf, binary.LittleEndian, int32(height*2))       // height, doubled for AND mask
	binary.Write(&buf, binary.LittleEndian, uint16(1))             // planes
	binary.Write(&buf, binary.LittleEndian, uint16(32))            // bitcount
	binary.Write(&buf, binary.LittleEndian, uint32(0))             // compression
	binary.Write(&buf, binary.LittleEndian, uint32(0))             // image size
	binary.Write(&buf, binary.LittleEndian, uint32(0))             // xppm
	binary.Write(&buf, binary.LittleEndian, uint32(0))             // yppm
	binary.Write(&buf, binary.LittleEndian, uint32(0))             // colors used
	binary.Write(&buf, binary.LittleEndian, uint32(0))             // colors important
	for _, p := range pixels {
		buf.Write(p[:])
	}
	return buf.Bytes()
}

func TestDecodeICOWithPNGEntry(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	var pngBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, src))

	ico := buildICO(2, 2, 32, pngBuf.Bytes())
	img, err := decodeICO(bytes.NewReader(ico))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
}

func TestDecodeICOWithRawDIBEntry(t *testing.T) {
	dib := buildDIB32(2, 1, [][4]byte{
		{0xFF, 0x00, 0x00, 0xFF}, // B,G,R,A -> blue
		{0x00, 0xFF, 0x00, 0xFF}, // B,G,R,A -> green
	})
	ico := buildICO(2, 1, 32, dib)

	img, err := decodeICO(bytes.NewReader(ico))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 2, 1), img.Bounds())

	rgba, ok := img.(*image.RGBA)
	require.True(t, ok)
	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 255, A: 255}, rgba.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 0, G: 255, B: 0, A: 255}, rgba.RGBAAt(1, 0))
}

func TestDecodeICORejectsGarbage(t *testing.T) {
	_, err := decodeICO(bytes.NewReader([]byte{1, 2, 3}))
	assert.Error(t, err)
}

func TestOpenStillDecodesICO(t *testing.T) {
	dib := buildDIB32(1, 1, [][4]byte{{0x11, 0x22, 0x33, 0xFF}})
	ico := buildICO(1, 1, 32, dib)

	path := filepath.Join(t.TempDir(), "icon.ico")
	require.NoError(t, os.WriteFile(path, ico, 0o644))

	still, err := OpenStill(path)
	require.NoError(t, err)
	img, ok, err := still.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 1, 1), img.Bounds())
}
