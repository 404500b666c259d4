package mediasource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"os/exec"

	"github.com/garaekz/glyphcast/internal/errs"
)

// Video decodes a video file by piping raw RGBA frames, at the source's
// native resolution, out of an ffmpeg subprocess and reading them with
// io.ReadFull, the same pattern used to fill an image.RGBA's backing Pix
// slice directly from a frame pipe. Decoding stays at native resolution
// rather than a fixed downscale so every Next() frame can be nearest-
// neighbor resampled to whatever cell resolution the quantizer currently
// targets, matching the original decoder's decode-native/resize-downstream
// split instead of freezing quality at the size requested when the
// subprocess was spawned.
type Video struct {
	path      string
	nativeW   int
	nativeH   int
	fps       float64
	cmd       *exec.Cmd
	stdout    io.ReadCloser
	frameSize int
	ctx       context.Context
	cancel    context.CancelFunc
}

// OpenVideo starts an ffmpeg subprocess decoding path to a raw RGBA pipe at
// its native resolution and fps. targetW/targetH are used only as a
// fallback decode resolution when the source's native dimensions can't be
// probed; they never constrain the resolution frames are quantized to.
func OpenVideo(path string, targetW, targetH int, fps float64) (*Video, error) {
	if targetW <= 0 || targetH <= 0 {
		return nil, errs.New(errs.Application, "mediasource", "video target resolution must be positive")
	}
	nativeW, nativeH, err := probeDimensions(context.Background(), path)
	if err != nil || nativeW <= 0 || nativeH <= 0 {
		nativeW, nativeH = targetW, targetH
	}
	v := &Video{path: path, nativeW: nativeW, nativeH: nativeH, fps: fps}
	if err := v.start(context.Background()); err != nil {
		return nil, err
	}
	return v, nil
}

// probeDimensions asks ffprobe for the first video stream's native pixel
// dimensions.
func probeDimensions(ctx context.Context, path string) (int, int, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height",
		"-print_format", "json",
		path,
	)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return 0, 0, fmt.Errorf("ffprobe dimensions: %w", err)
	}

	var parsed struct {
		Streams []struct {
			Width  int `json:"width"`
			Height int `json:"height"`
		} `json:"streams"`
	}
	if err := json.Unmarshal(out.Bytes(), &parsed); err != nil {
		return 0, 0, fmt.Errorf("invalid ffprobe output: %w", err)
	}
	if len(parsed.Streams) == 0 {
		return 0, 0, fmt.Errorf("no video stream found")
	}
	return parsed.Streams[0].Width, parsed.Streams[0].Height, nil
}

func (v *Video) start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	args := []string{
		"-nostdin", "-hide_banner", "-loglevel", "error",
		"-i", v.path,
		"-vf", fmt.Sprintf("fps=%g", v.fps),
		"-f", "rawvideo", "-pix_fmt", "rgba",
		"-",
	}
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return errs.Wrap(errs.Decode, "mediasource", fmt.Errorf("error opening video: %w", err))
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return errs.Wrap(errs.Decode, "mediasource", fmt.Errorf("error opening video: %w", err))
	}

	v.cmd = cmd
	v.stdout = stdout
	v.frameSize = v.nativeW * v.nativeH * 4
	v.ctx = ctx
	v.cancel = cancel
	return nil
}

func (v *Video) Next(ctx context.Context) (image.Image, bool, error) {
	buf := make([]byte, v.frameSize)
	_, err := io.ReadFull(v.stdout, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrap(errs.Decode, "mediasource", err)
	}
	img := &image.RGBA{
		Pix:    buf,
		Stride: v.nativeW * 4,
		Rect:   image.Rect(0, 0, v.nativeW, v.nativeH),
	}
	return img, true, nil
}

// Skip discards n upcoming frames by reading and dropping them, avoiding the
// cost of constructing image.RGBA wrappers for frames the caller doesn't
// want rendered.
func (v *Video) Skip(ctx context.Context, n int) error {
	buf := make([]byte, v.frameSize)
	for i := 0; i < n; i++ {
		if _, err := io.ReadFull(v.stdout, buf); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil
			}
			return errs.Wrap(errs.Decode, "mediasource", err)
		}
	}
	return nil
}

// Reset restarts the ffmpeg subprocess from the beginning of the file.
func (v *Video) Reset(ctx context.Context) error {
	if err := v.Close(); err != nil {
		return err
	}
	return v.start(ctx)
}

func (v *Video) Close() error {
	if v.cancel != nil {
		v.cancel()
	}
	if v.cmd != nil && v.cmd.Process != nil {
		_ = v.cmd.Wait()
	}
	return nil
}
