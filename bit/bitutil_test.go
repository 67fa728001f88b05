package bit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombine(t *testing.T) {
	assert.Equal(t, uint16(0xABCD), Combine(0xAB, 0xCD))
}

func TestLowHigh(t *testing.T) {
	assert.Equal(t, uint8(0xCD), Low(0xABCD))
	assert.Equal(t, uint8(0xAB), High(0xABCD))
}

func TestIsSet(t *testing.T) {
	assert.True(t, IsSet(0, 0x01))
	assert.False(t, IsSet(1, 0x01))
	assert.True(t, IsSet(7, 0x80))
}

func TestSetReset(t *testing.T) {
	assert.Equal(t, uint8(0x81), Set(7, 0x01))
	assert.Equal(t, uint8(0x00), Reset(0, 0x01))
}

func TestSetTo(t *testing.T) {
	assert.Equal(t, uint8(0x01), SetTo(0, 0x00, true))
	assert.Equal(t, uint8(0x00), SetTo(0, 0x01, false))
}

func TestExtractBits(t *testing.T) {
	assert.Equal(t, uint8(0x05), ExtractBits(0xF5, 3, 0))
	assert.Equal(t, uint8(0x0F), ExtractBits(0xF5, 7, 4))
}
