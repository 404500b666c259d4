package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaybackStateToggle(t *testing.T) {
	assert.Equal(t, StatePaused, StateRunning.Toggle())
	assert.Equal(t, StateRunning, StatePaused.Toggle())
	assert.Equal(t, StateStopped, StateStopped.Toggle())
}

func TestPlaybackStateString(t *testing.T) {
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "paused", StatePaused.String())
	assert.Equal(t, "stopped", StateStopped.String())
	assert.Equal(t, "unknown", PlaybackState(99).String())
}

func TestResizeConstructor(t *testing.T) {
	c := Resize(120, 40)
	assert.Equal(t, PipelineResize, c.Kind)
	assert.Equal(t, 120, c.Width)
	assert.Equal(t, 40, c.Height)
}

func TestSetCharMapConstructor(t *testing.T) {
	c := SetCharMap(3)
	assert.Equal(t, PipelineSetCharMap, c.Kind)
	assert.Equal(t, 3, c.CharMapIndex)
}
