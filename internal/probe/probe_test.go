package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRationalFraction(t *testing.T) {
	v, ok := parseRational("30000/1001")
	assert.True(t, ok)
	assert.InDelta(t, 29.97, v, 0.01)
}

func TestParseRationalPlain(t *testing.T) {
	v, ok := parseRational("25")
	assert.True(t, ok)
	assert.Equal(t, 25.0, v)
}

func TestParseRationalZeroDenominator(t *testing.T) {
	_, ok := parseRational("30/0")
	assert.False(t, ok)
}

func TestResolveFPSPrecedence(t *testing.T) {
	assert.Equal(t, 24.0, ResolveFPS(24, 60))
	assert.Equal(t, 60.0, ResolveFPS(0, 60))
	assert.Equal(t, 30.0, ResolveFPS(0, 0))
}
