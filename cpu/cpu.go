// Package cpu implements the Sharp LR35902: registers, ALU flag semantics,
// the full unprefixed and CB-prefixed opcode tables, and interrupt dispatch.
package cpu

import (
	"log/slog"

	"github.com/hollowpixel/dmgcore/addr"
	"github.com/hollowpixel/dmgcore/memory"
)

// CPU is the Sharp LR35902 core: registers plus the fetch/decode/execute
// loop and interrupt dispatch. It owns no memory itself, driving everything
// through the bus.
type CPU struct {
	registers

	bus *memory.Bus

	ime      bool
	imeDelay int // instructions remaining before a pending EI takes effect; 0 = none scheduled
	halted   bool
	haltBug  bool
}

// New returns a CPU wired to bus, initialized to the documented DMG
// post-bootrom power-on state (register values as left by the boot ROM,
// skipping the boot ROM itself).
func New(bus *memory.Bus) *CPU {
	c := &CPU{bus: bus}
	c.a, c.f = 0x01, 0xB0
	c.b, c.c = 0x00, 0x13
	c.d, c.e = 0x00, 0xD8
	c.h, c.l = 0x01, 0x4D
	c.sp = 0xFFFE
	c.pc = 0x0100
	c.ime = false
	return c
}

// PC exposes the program counter, mainly for the disassembler and debugger.
func (c *CPU) PC() uint16 { return c.pc }

// Halted reports whether the CPU is in the low-power HALT state.
func (c *CPU) Halted() bool { return c.halted }

func (c *CPU) fetch8() uint8 {
	v := c.bus.Read(c.pc)
	c.pc++
	return v
}

func (c *CPU) fetch16() uint16 {
	low := c.fetch8()
	high := c.fetch8()
	return uint16(high)<<8 | uint16(low)
}

func (c *CPU) push(value uint16) {
	c.sp--
	c.bus.Write(c.sp, uint8(value>>8))
	c.sp--
	c.bus.Write(c.sp, uint8(value))
}

func (c *CPU) pop() uint16 {
	low := c.bus.Read(c.sp)
	c.sp++
	high := c.bus.Read(c.sp)
	c.sp++
	return uint16(high)<<8 | uint16(low)
}

// Step executes exactly one instruction (or one HALT-idle slot, or one
// interrupt dispatch) and returns the number of T-cycles consumed.
func (c *CPU) Step() int {
	if cycles, dispatched := c.serviceInterrupt(); dispatched {
		return cycles
	}

	if c.halted {
		if _, pending := c.bus.IO.PendingInterrupt(); pending {
			c.halted = false
		} else {
			return 4
		}
	}

	c.applyPendingIME()

	opcode := c.fetch8()
	rewind := c.haltBug
	c.haltBug = false

	cycles := c.execute(opcode)

	if rewind {
		// The halt bug fails to advance PC past the opcode fetch immediately
		// following a HALT issued with IME=0 and a pending interrupt: operand
		// bytes of this instruction were read normally, but PC rolls back by
		// one afterwards so the same opcode is fetched again next Step.
		c.pc--
	}

	return cycles
}

// applyPendingIME lets EI's enable-on-the-instruction-after-next semantics
// take effect exactly one Step after the EI that scheduled it.
func (c *CPU) applyPendingIME() {
	if c.imeDelay == 0 {
		return
	}
	c.imeDelay--
	if c.imeDelay == 0 {
		c.ime = true
	}
}

// serviceInterrupt dispatches the highest-priority pending, enabled
// interrupt if IME is set, pushing PC and jumping to the interrupt vector.
// Takes 20 cycles (5 M-cycles): 2 internal, a 16-bit push, and the jump.
func (c *CPU) serviceInterrupt() (int, bool) {
	if !c.ime {
		return 0, false
	}

	n, pending := c.bus.IO.PendingInterrupt()
	if !pending {
		return 0, false
	}

	c.ime = false
	c.halted = false
	c.bus.IO.ClearInterrupt(n)
	c.push(c.pc)
	c.pc = addr.Vector(n)
	return 20, true
}

func (c *CPU) invalidOpcode(opcode uint8) int {
	slog.Warn("executed invalid opcode", "opcode", opcode, "pc", c.pc-1)
	return 4
}
