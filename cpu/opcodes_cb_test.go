package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCBRotateRegister(t *testing.T) {
	c := newTestCPU(t)
	c.b = 0x80

	cycles := c.executeCB(0x00) // RLC B
	assert.Equal(t, 8, cycles)
	assert.Equal(t, uint8(0x01), c.b)
	assert.True(t, c.isSetFlag(carryFlag))
}

func TestCBRotateIndirectHLCosts16(t *testing.T) {
	c := newTestCPU(t)
	c.setHL(0xC000)
	c.bus.Write(0xC000, 0x80)

	cycles := c.executeCB(0x06) // RLC (HL)
	assert.Equal(t, 16, cycles)
	assert.Equal(t, uint8(0x01), c.bus.Read(0xC000))
}

func TestCBBit(t *testing.T) {
	c := newTestCPU(t)
	c.a = 0x80

	cycles := c.executeCB(0x7F) // BIT 7,A
	assert.Equal(t, 8, cycles)
	assert.False(t, c.isSetFlag(zeroFlag))

	c.a = 0x00
	cycles = c.executeCB(0x7F)
	assert.Equal(t, 8, cycles)
	assert.True(t, c.isSetFlag(zeroFlag))
}

func TestCBBitIndirectHLCosts12(t *testing.T) {
	c := newTestCPU(t)
	c.setHL(0xC000)
	c.bus.Write(0xC000, 0x00)

	cycles := c.executeCB(0x46) // BIT 0,(HL)
	assert.Equal(t, 12, cycles)
	assert.True(t, c.isSetFlag(zeroFlag))
}

func TestCBResSet(t *testing.T) {
	c := newTestCPU(t)
	c.a = 0xFF

	cycles := c.executeCB(0xBF) // RES 7,A
	assert.Equal(t, 8, cycles)
	assert.Equal(t, uint8(0x7F), c.a)

	cycles = c.executeCB(0xFF) // SET 7,A
	assert.Equal(t, 8, cycles)
	assert.Equal(t, uint8(0xFF), c.a)
}

func TestCBSwap(t *testing.T) {
	c := newTestCPU(t)
	c.a = 0x12

	cycles := c.executeCB(0x37) // SWAP A
	assert.Equal(t, 8, cycles)
	assert.Equal(t, uint8(0x21), c.a)
}
