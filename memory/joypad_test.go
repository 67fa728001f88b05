package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoypadReadSelectsDpad(t *testing.T) {
	j := NewJoypad()
	j.Press(ButtonUp)

	j.WriteSelect(0x20) // select d-pad (bit 4 low)
	result := j.Read()

	assert.Equal(t, uint8(0xE0|0x20|0x0B), result&0xFF) // Up is bit 2, cleared
}

func TestJoypadPressReportsTransition(t *testing.T) {
	j := NewJoypad()

	assert.True(t, j.Press(ButtonA))
	assert.False(t, j.Press(ButtonA)) // already held, no new transition
}

func TestJoypadReleaseClearsBit(t *testing.T) {
	j := NewJoypad()
	j.Press(ButtonA)
	j.Release(ButtonA)
	j.WriteSelect(0x10) // select buttons (bit 5 low)

	result := j.Read()
	assert.Equal(t, uint8(0x01), result&0x01) // A bit back to 1 (released)
}

func TestJoypadReadNoGroupSelected(t *testing.T) {
	j := NewJoypad()
	j.WriteSelect(0x30) // neither group selected

	result := j.Read()
	assert.Equal(t, uint8(0x0F), result&0x0F)
}
