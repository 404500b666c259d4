package charmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestASCII10Length(t *testing.T) {
	require.Equal(t, 10, ASCII10.Len())
	assert.Equal(t, ' ', ASCII10.At(0))
	assert.Equal(t, '@', ASCII10.At(9))
}

func TestMapAtClamps(t *testing.T) {
	assert.Equal(t, ASCII10.At(0), ASCII10.At(-5))
	assert.Equal(t, ASCII10.At(9), ASCII10.At(50))
}

func TestTableWrap(t *testing.T) {
	table := NewTable(ASCII10)
	require.Equal(t, 10, table.Len())
	assert.Equal(t, table.At(3), table.At(13))
	assert.Equal(t, table.At(0), ASCII10)
}

func TestTableSlotZeroIsInitial(t *testing.T) {
	custom := FromString("custom", "ab")
	table := NewTable(custom)
	assert.Equal(t, custom, table.At(0))
	assert.Equal(t, custom, table.At(10))
}
