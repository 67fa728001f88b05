// Package memory implements the DMG's address space: the cartridge/MBC1
// mapper, WRAM/VRAM/OAM/HRAM, and the I/O register dispatcher (joypad,
// timer, serial stub, interrupt flags, and the APU's register range).
package memory

import (
	"log/slog"

	"github.com/hollowpixel/dmgcore/addr"
	"github.com/hollowpixel/dmgcore/audio"
)

const (
	vramSize = 0x2000
	wramSize = 0x2000
	oamSize  = 0xA0
	hramSize = 0x7F
)

// Bus is the 16-bit memory bus: it routes reads/writes to the cartridge,
// VRAM, WRAM, OAM, HRAM or the I/O dispatcher, and performs OAM DMA.
type Bus struct {
	Cart *Cartridge
	IO   *IO

	vram [vramSize]byte
	wram [wramSize]byte
	oam  [oamSize]byte
	hram [hramSize]byte
}

// NewBus wires a bus around the given cartridge and serial port, with a
// default (44.1kHz) APU.
func NewBus(cart *Cartridge, serial SerialPort) *Bus {
	return &Bus{
		Cart: cart,
		IO:   NewIO(audio.New(44100), serial),
	}
}

// Read performs a routed, side-effecting read. Unmapped ranges return 0xFF.
func (b *Bus) Read(address uint16) uint8 {
	switch {
	case address <= 0x7FFF, address >= 0xA000 && address <= 0xBFFF:
		return b.Cart.Read(address)
	case address >= 0xFF00 && address <= 0xFF7F, address == addr.IE:
		return b.IO.Read(address)
	case address >= 0xE000 && address <= 0xFDFF:
		return b.wram[address-0x2000-0xC000]
	case address >= 0xFE00 && address <= 0xFE9F:
		return b.oam[address-0xFE00]
	case address >= 0x8000 && address <= 0x9FFF:
		return b.vram[address-0x8000]
	case address >= 0xC000 && address <= 0xDFFF:
		return b.wram[address-0xC000]
	case address >= 0xFF80 && address <= 0xFFFE:
		return b.hram[address-0xFF80]
	default:
		slog.Debug("read from unmapped address", "addr", address)
		return 0xFF
	}
}

// Peek is a non-observing read used by the disassembler: it has exactly the
// same result as Read since no read in this implementation mutates state,
// but is kept as a distinct, documented contract.
func (b *Bus) Peek(address uint16) uint8 {
	return b.Read(address)
}

// Write performs a routed write, including the OAM DMA side effect on 0xFF46.
func (b *Bus) Write(address uint16, value uint8) {
	switch {
	case address <= 0x7FFF, address >= 0xA000 && address <= 0xBFFF:
		b.Cart.Write(address, value)
	case address == addr.DMA:
		b.triggerDMA(value)
	case address >= 0xFF00 && address <= 0xFF7F, address == addr.IE:
		b.IO.Write(address, value)
	case address >= 0xE000 && address <= 0xFDFF:
		b.wram[address-0x2000-0xC000] = value
	case address >= 0xFE00 && address <= 0xFE9F:
		b.oam[address-0xFE00] = value
	case address >= 0x8000 && address <= 0x9FFF:
		b.vram[address-0x8000] = value
	case address >= 0xC000 && address <= 0xDFFF:
		b.wram[address-0xC000] = value
	case address >= 0xFF80 && address <= 0xFFFE:
		b.hram[address-0xFF80] = value
	default:
		slog.Debug("write to unmapped address", "addr", address, "value", value)
	}
}

// triggerDMA copies 160 bytes from (value<<8) to OAM, through the bus so the
// source may be ROM, WRAM or any other readable region.
func (b *Bus) triggerDMA(value uint8) {
	source := uint16(value) << 8
	for i := uint16(0); i < 160; i++ {
		b.oam[i] = b.Read(source + i)
	}
	b.IO.Write(addr.DMA, value)
}

// ReadWord performs a little-endian 16-bit read: two sequential 8-bit reads,
// low byte first.
func (b *Bus) ReadWord(address uint16) uint16 {
	low := b.Read(address)
	high := b.Read(address + 1)
	return uint16(high)<<8 | uint16(low)
}

// WriteWord performs a little-endian 16-bit write.
func (b *Bus) WriteWord(address uint16, value uint16) {
	b.Write(address, uint8(value))
	b.Write(address+1, uint8(value>>8))
}

// APU exposes the bus's audio unit for ticking and sink wiring.
func (b *Bus) APU() *audio.APU { return b.IO.apu }
