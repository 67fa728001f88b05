package memory

import (
	"github.com/hollowpixel/dmgcore/addr"
	"github.com/hollowpixel/dmgcore/audio"
	"github.com/hollowpixel/dmgcore/bit"
)

// SerialPort is the minimal boundary contract for the device connected to
// SB/SC. The default implementation (serial.LogSink) is a stub that
// completes transfers instantly.
type SerialPort interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// IO is the I/O register dispatcher: it owns the 0xFF00-0xFF7F register file
// plus IE, and forwards accesses to the joypad, timer, serial stub and APU.
// PPU registers (0xFF40-0xFF4B) are plain byte cells here; the PPU keeps them
// live by writing through the bus on every state change (see video.PPU).
type IO struct {
	regs [0x80]byte
	ie   uint8

	joypad *Joypad
	timer  *Timer
	apu    *audio.APU
	serial SerialPort
}

// NewIO returns an I/O dispatcher wired to the given APU and serial stub.
func NewIO(apu *audio.APU, serial SerialPort) *IO {
	return &IO{
		joypad: NewJoypad(),
		timer:  NewTimer(),
		apu:    apu,
		serial: serial,
	}
}

// Joypad exposes the joypad for key press/release handling.
func (io *IO) Joypad() *Joypad { return io.joypad }

// Tick advances the timer and raises the Timer interrupt on overflow.
func (io *IO) Tick(cycles int) {
	if io.timer.Tick(cycles) {
		io.RequestInterrupt(addr.Timer)
	}
}

// SetSTATMode authoritatively updates STAT's mode bits (1-0). This bypasses
// the CPU-write mask so the PPU can keep its own mode visible regardless of
// what was last written to STAT.
func (io *IO) SetSTATMode(mode uint8) {
	io.regs[addr.STAT-0xFF00] = (io.regs[addr.STAT-0xFF00] &^ 0x03) | (mode & 0x03)
}

// RequestInterrupt sets the given interrupt's bit in IF.
func (io *IO) RequestInterrupt(n addr.Interrupt) {
	io.regs[addr.IF-0xFF00] = bit.Set(uint8(n), io.regs[addr.IF-0xFF00])
}

// PendingInterrupt returns the lowest-indexed interrupt set in IF & IE, if any.
func (io *IO) PendingInterrupt() (addr.Interrupt, bool) {
	pending := io.regs[addr.IF-0xFF00] & io.ie
	if pending == 0 {
		return 0, false
	}
	for n := addr.Interrupt(0); n <= addr.Joypad; n++ {
		if pending&(1<<n) != 0 {
			return n, true
		}
	}
	return 0, false
}

// ClearInterrupt clears the given interrupt's bit in IF.
func (io *IO) ClearInterrupt(n addr.Interrupt) {
	io.regs[addr.IF-0xFF00] = bit.Reset(uint8(n), io.regs[addr.IF-0xFF00])
}

func (io *IO) Read(address uint16) uint8 {
	switch {
	case address == addr.IE:
		return io.ie
	case address == addr.P1:
		return io.joypad.Read()
	case address == addr.SB || address == addr.SC:
		return io.serial.Read(address)
	case address == addr.DIV || address == addr.TIMA || address == addr.TMA || address == addr.TAC:
		return io.timer.Read(address)
	case address == addr.IF:
		return io.regs[address-0xFF00] | 0xE0
	case address == addr.STAT:
		return io.regs[address-0xFF00] | 0x80
	case address >= addr.AudioRegStart && address <= addr.AudioRegEnd:
		return io.apu.ReadRegister(address)
	default:
		return io.regs[address-0xFF00]
	}
}

func (io *IO) Write(address uint16, value uint8) {
	switch {
	case address == addr.IE:
		io.ie = value
	case address == addr.P1:
		io.joypad.WriteSelect(value)
		io.regs[address-0xFF00] = value & 0x30
	case address == addr.SB || address == addr.SC:
		io.serial.Write(address, value)
	case address == addr.DIV || address == addr.TIMA || address == addr.TMA || address == addr.TAC:
		io.timer.Write(address, value)
	case address == addr.IF:
		io.regs[address-0xFF00] = value & 0x1F
	case address == addr.STAT:
		mode := io.regs[address-0xFF00] & 0x03
		io.regs[address-0xFF00] = (value & 0x78) | mode
	case address >= addr.AudioRegStart && address <= addr.AudioRegEnd:
		io.apu.WriteRegister(address, value)
	default:
		io.regs[address-0xFF00] = value
	}
}
