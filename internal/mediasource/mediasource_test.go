package mediasource

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStillYieldsOnceThenExhausted(t *testing.T) {
	ctx := context.Background()
	s := NewStill(image.NewGray(image.Rect(0, 0, 1, 1)))

	img, ok, err := s.Next(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotNil(t, img)

	_, ok, err = s.Next(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStillResetRewinds(t *testing.T) {
	ctx := context.Background()
	s := NewStill(image.NewGray(image.Rect(0, 0, 1, 1)))
	_, _, _ = s.Next(ctx)
	require.NoError(t, s.Reset(ctx))

	_, ok, err := s.Next(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAnimatedSequenceWrapsModulo(t *testing.T) {
	ctx := context.Background()
	frames := []image.Image{
		image.NewGray(image.Rect(0, 0, 1, 1)),
		image.NewGray(image.Rect(0, 0, 1, 1)),
		image.NewGray(image.Rect(0, 0, 1, 1)),
	}
	seq, err := NewAnimatedSequence(frames)
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		img, ok, err := seq.Next(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Same(t, frames[i%3], img)
	}
}

func TestAnimatedSequenceRejectsEmpty(t *testing.T) {
	_, err := NewAnimatedSequence(nil)
	assert.Error(t, err)
}

func TestAnimatedSequenceSkipWraps(t *testing.T) {
	ctx := context.Background()
	frames := []image.Image{
		image.NewGray(image.Rect(0, 0, 1, 1)),
		image.NewGray(image.Rect(0, 0, 1, 1)),
	}
	seq, err := NewAnimatedSequence(frames)
	require.NoError(t, err)

	require.NoError(t, seq.Skip(ctx, 5))
	img, ok, err := seq.Next(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, frames[1], img)
}
