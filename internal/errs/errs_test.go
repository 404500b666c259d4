package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapNilCause(t *testing.T) {
	assert.Nil(t, Wrap(Decode, "quantize", nil))
}

func TestErrorMessageWithComponent(t *testing.T) {
	e := New(Decode, "mediasource", "unsupported file format")
	assert.Equal(t, "decode[mediasource]: unsupported file format", e.Error())
}

func TestErrorMessageWithoutComponent(t *testing.T) {
	e := New(Application, "", "bad flag")
	assert.Equal(t, "application: bad flag", e.Error())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	e := Wrap(Channel, "broker", cause)
	require.ErrorIs(t, e, cause)
}

func TestIsKindSentinel(t *testing.T) {
	e := New(Frame, "quantize", "bad luminance bucket")
	assert.True(t, errors.Is(e, IsFrame))
	assert.False(t, errors.Is(e, IsAudio))
}

func TestRecoverable(t *testing.T) {
	assert.True(t, Recoverable(New(Frame, "quantize", "x")))
	assert.True(t, Recoverable(New(Audio, "audioplay", "x")))
	assert.False(t, Recoverable(New(Terminal, "termui", "x")))
	assert.False(t, Recoverable(errors.New("plain")))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "channel", Channel.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
