// Package mediasource decodes still images, animated image sequences, and
// video into a uniform lazy frame sequence the pipeline worker pulls from.
package mediasource

import (
	"context"
	"image"

	"github.com/garaekz/glyphcast/internal/errs"
)

// Source is a single-owner lazy sequence of decoded RGB images. The three
// concrete variants (still, animated, video) share no mutable state with
// other components; each has its own fast path for skipping ahead.
type Source interface {
	// Next returns the next decoded frame, or ok=false once the source is
	// exhausted (still image after its one frame, video at end-of-stream).
	// AnimatedSequence never returns ok=false; it wraps.
	Next(ctx context.Context) (img image.Image, ok bool, err error)

	// Skip advances the source by n frames with the frames discarded. No
	// source skips more cheaply than decoding: video reads each skipped
	// frame's full raw RGBA buffer from ffmpeg and drops it, and the other
	// sources step through n frames as Next would.
	Skip(ctx context.Context, n int) error

	// Reset rewinds the source to its first frame, if supported.
	Reset(ctx context.Context) error

	// Close releases any underlying resources (subprocess, file handle).
	Close() error
}

// Still yields a single decoded image once, then reports exhaustion.
type Still struct {
	img  image.Image
	done bool
}

// NewStill wraps a single decoded image as a Source.
func NewStill(img image.Image) *Still {
	return &Still{img: img}
}

func (s *Still) Next(ctx context.Context) (image.Image, bool, error) {
	if s.done {
		return nil, false, nil
	}
	s.done = true
	return s.img, true, nil
}

func (s *Still) Skip(ctx context.Context, n int) error {
	if n > 0 {
		s.done = true
	}
	return nil
}

func (s *Still) Reset(ctx context.Context) error {
	s.done = false
	return nil
}

func (s *Still) Close() error { return nil }

// AnimatedSequence holds a pre-decoded ordered list of frames and a cursor
// that wraps modulo the frame count, so playback loops deterministically and
// independent of wall-clock time.
type AnimatedSequence struct {
	frames  []image.Image
	current int
}

// NewAnimatedSequence wraps a non-empty, pre-decoded frame list.
func NewAnimatedSequence(frames []image.Image) (*AnimatedSequence, error) {
	if len(frames) == 0 {
		return nil, errs.New(errs.Decode, "mediasource", "animated sequence has no frames")
	}
	return &AnimatedSequence{frames: frames}, nil
}

func (a *AnimatedSequence) Next(ctx context.Context) (image.Image, bool, error) {
	frame := a.frames[a.current]
	a.current = (a.current + 1) % len(a.frames)
	return frame, true, nil
}

func (a *AnimatedSequence) Skip(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}
	a.current = ((a.current+n)%len(a.frames) + len(a.frames)) % len(a.frames)
	return nil
}

func (a *AnimatedSequence) Reset(ctx context.Context) error {
	a.current = 0
	return nil
}

func (a *AnimatedSequence) Close() error { return nil }

// FrameCount reports the number of frames in the sequence, for tests and
// diagnostics.
func (a *AnimatedSequence) FrameCount() int { return len(a.frames) }
