package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimerOverflowReloadsFromTMA(t *testing.T) {
	timer := NewTimer()
	timer.Write(0xFF07, 0x05) // TAC: enabled, clock select 01 (16 cycles/tick)
	timer.Write(0xFF05, 0xFF)
	timer.Write(0xFF06, 0x37)

	overflowed := timer.Tick(16)

	assert.True(t, overflowed)
	assert.Equal(t, uint8(0x37), timer.Read(0xFF05))
}

func TestTimerDisabledDoesNotTick(t *testing.T) {
	timer := NewTimer()
	timer.Write(0xFF07, 0x00) // disabled
	timer.Write(0xFF05, 0x00)

	timer.Tick(10000)

	assert.Equal(t, uint8(0x00), timer.Read(0xFF05))
}

func TestDIVResetsOnWrite(t *testing.T) {
	timer := NewTimer()
	timer.Tick(256) // one DIV increment
	assert.Equal(t, uint8(1), timer.Read(0xFF04))

	timer.Write(0xFF04, 0x99) // any write resets DIV to 0
	assert.Equal(t, uint8(0), timer.Read(0xFF04))
}

func TestTACReadMasksUnusedBits(t *testing.T) {
	timer := NewTimer()
	timer.Write(0xFF07, 0xFF)

	assert.Equal(t, uint8(0xFF), timer.Read(0xFF07))
}
