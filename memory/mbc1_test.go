package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMBC1ROMBank0Fixed(t *testing.T) {
	rom := make([]byte, 0x8000)
	for i := range rom {
		rom[i] = byte(i)
	}
	mbc := newMBC1(rom)

	for addr := uint16(0); addr < 0x4000; addr += 0x1000 {
		assert.Equal(t, byte(addr), mbc.Read(addr))
	}
}

func TestMBC1BankSwitching(t *testing.T) {
	rom := make([]byte, 0x4000*4)
	for bank := 0; bank < 4; bank++ {
		for i := 0; i < 0x4000; i++ {
			rom[bank*0x4000+i] = byte(bank)
		}
	}
	mbc := newMBC1(rom)

	mbc.Write(0x2000, 0x02) // select bank 2
	assert.Equal(t, byte(2), mbc.Read(0x4000))

	mbc.Write(0x2000, 0x03)
	assert.Equal(t, byte(3), mbc.Read(0x4000))
}

func TestMBC1BankZeroTranslatesToOne(t *testing.T) {
	rom := make([]byte, 0x4000*2)
	for i := 0x4000; i < len(rom); i++ {
		rom[i] = 0x01
	}
	mbc := newMBC1(rom)

	mbc.Write(0x2000, 0x00) // writing 0 selects bank 1, never bank 0
	assert.Equal(t, byte(0x01), mbc.Read(0x4000))
}

func TestMBC1RAMEnableRequiresLowNibble0A(t *testing.T) {
	mbc := newMBC1(make([]byte, 0x8000))

	mbc.Write(0x0000, 0x0B) // wrong nibble, RAM stays disabled
	assert.False(t, mbc.ramEnable)
	assert.Equal(t, uint8(0xFF), mbc.Read(0xA000))

	mbc.Write(0x0000, 0x0A)
	assert.True(t, mbc.ramEnable)

	mbc.Write(0xA000, 0x42)
	assert.Equal(t, uint8(0x42), mbc.Read(0xA000))
}

func TestMBC1RAMDisabledIgnoresWrites(t *testing.T) {
	mbc := newMBC1(make([]byte, 0x8000))
	mbc.Write(0xA000, 0x42) // RAM disabled by default

	assert.Equal(t, uint8(0xFF), mbc.Read(0xA000))
}
