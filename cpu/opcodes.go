package cpu

// opcodes.go is the unprefixed, 256-entry dispatch table. The three regular
// blocks (LD r,r' at 0x40-0x7F, ALU A,r at 0x80-0xBF, and the CB page) are
// decoded arithmetically from the opcode's row/column rather than spelled
// out one case per register, since the Sharp LR35902 encodes them that way;
// everything else is an explicit case.

// getR8/setR8 address the 8 single-byte operands shared by the LD and ALU
// blocks, in encoding order: B C D E H L (HL) A.
func (c *CPU) getR8(index uint8) uint8 {
	switch index {
	case 0:
		return c.b
	case 1:
		return c.c
	case 2:
		return c.d
	case 3:
		return c.e
	case 4:
		return c.h
	case 5:
		return c.l
	case 6:
		return c.bus.Read(c.hl())
	default:
		return c.a
	}
}

func (c *CPU) setR8(index uint8, value uint8) {
	switch index {
	case 0:
		c.b = value
	case 1:
		c.c = value
	case 2:
		c.d = value
	case 3:
		c.e = value
	case 4:
		c.h = value
	case 5:
		c.l = value
	case 6:
		c.bus.Write(c.hl(), value)
	default:
		c.a = value
	}
}

func (c *CPU) condition(index uint8) bool {
	switch index {
	case 0:
		return !c.isSetFlag(zeroFlag)
	case 1:
		return c.isSetFlag(zeroFlag)
	case 2:
		return !c.isSetFlag(carryFlag)
	default:
		return c.isSetFlag(carryFlag)
	}
}

func (c *CPU) execute(opcode uint8) int {
	switch {
	case opcode == 0x76:
		return c.opHALT()
	case opcode >= 0x40 && opcode <= 0x7F:
		dst, src := (opcode>>3)&7, opcode&7
		c.setR8(dst, c.getR8(src))
		if dst == 6 || src == 6 {
			return 8
		}
		return 4
	case opcode >= 0x80 && opcode <= 0xBF:
		op, src := (opcode>>3)&7, opcode&7
		value := c.getR8(src)
		c.aluOp(op, value)
		if src == 6 {
			return 8
		}
		return 4
	case opcode == 0xCB:
		return c.executeCB(c.fetch8())
	}

	switch opcode {
	case 0x00: // NOP
		return 4
	case 0x10: // STOP
		c.fetch8()
		return 4
	case 0xF3: // DI
		c.ime = false
		c.imeDelay = 0
		return 4
	case 0xFB: // EI
		c.imeDelay = 1
		return 4

	// 16-bit immediate loads / increments / decrements
	case 0x01:
		c.setBC(c.fetch16())
		return 12
	case 0x11:
		c.setDE(c.fetch16())
		return 12
	case 0x21:
		c.setHL(c.fetch16())
		return 12
	case 0x31:
		c.sp = c.fetch16()
		return 12
	case 0x03:
		c.setBC(c.bc() + 1)
		return 8
	case 0x13:
		c.setDE(c.de() + 1)
		return 8
	case 0x23:
		c.setHL(c.hl() + 1)
		return 8
	case 0x33:
		c.sp++
		return 8
	case 0x0B:
		c.setBC(c.bc() - 1)
		return 8
	case 0x1B:
		c.setDE(c.de() - 1)
		return 8
	case 0x2B:
		c.setHL(c.hl() - 1)
		return 8
	case 0x3B:
		c.sp--
		return 8

	// 8-bit INC/DEC for the 8 operands, rows 0x04/0x05 style
	case 0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x34, 0x3C:
		r := (opcode >> 3) & 7
		value := c.getR8(r)
		c.inc(&value)
		c.setR8(r, value)
		if r == 6 {
			return 12
		}
		return 4
	case 0x05, 0x0D, 0x15, 0x1D, 0x25, 0x2D, 0x35, 0x3D:
		r := (opcode >> 3) & 7
		value := c.getR8(r)
		c.dec(&value)
		c.setR8(r, value)
		if r == 6 {
			return 12
		}
		return 4

	// 8-bit immediate loads
	case 0x06:
		c.b = c.fetch8()
		return 8
	case 0x0E:
		c.c = c.fetch8()
		return 8
	case 0x16:
		c.d = c.fetch8()
		return 8
	case 0x1E:
		c.e = c.fetch8()
		return 8
	case 0x26:
		c.h = c.fetch8()
		return 8
	case 0x2E:
		c.l = c.fetch8()
		return 8
	case 0x36:
		c.bus.Write(c.hl(), c.fetch8())
		return 12
	case 0x3E:
		c.a = c.fetch8()
		return 8

	// Rotates on A (unlike the CB page, these always clear Z)
	case 0x07:
		c.rlc(&c.a)
		c.resetFlag(zeroFlag)
		return 4
	case 0x0F:
		c.rrc(&c.a)
		c.resetFlag(zeroFlag)
		return 4
	case 0x17:
		c.rl(&c.a)
		c.resetFlag(zeroFlag)
		return 4
	case 0x1F:
		c.rr(&c.a)
		c.resetFlag(zeroFlag)
		return 4

	case 0x08: // LD (a16),SP
		address := c.fetch16()
		c.bus.Write(address, uint8(c.sp))
		c.bus.Write(address+1, uint8(c.sp>>8))
		return 20

	case 0x09:
		c.addToHL(c.bc())
		return 8
	case 0x19:
		c.addToHL(c.de())
		return 8
	case 0x29:
		c.addToHL(c.hl())
		return 8
	case 0x39:
		c.addToHL(c.sp)
		return 8

	case 0x02:
		c.bus.Write(c.bc(), c.a)
		return 8
	case 0x12:
		c.bus.Write(c.de(), c.a)
		return 8
	case 0x22:
		c.bus.Write(c.hl(), c.a)
		c.setHL(c.hl() + 1)
		return 8
	case 0x32:
		c.bus.Write(c.hl(), c.a)
		c.setHL(c.hl() - 1)
		return 8

	case 0x0A:
		c.a = c.bus.Read(c.bc())
		return 8
	case 0x1A:
		c.a = c.bus.Read(c.de())
		return 8
	case 0x2A:
		c.a = c.bus.Read(c.hl())
		c.setHL(c.hl() + 1)
		return 8
	case 0x3A:
		c.a = c.bus.Read(c.hl())
		c.setHL(c.hl() - 1)
		return 8

	case 0x18: // JR e8
		e := int8(c.fetch8())
		c.pc = uint16(int32(c.pc) + int32(e))
		return 12
	case 0x20, 0x28, 0x30, 0x38: // JR cc,e8
		e := int8(c.fetch8())
		if c.condition((opcode >> 3) & 3) {
			c.pc = uint16(int32(c.pc) + int32(e))
			return 12
		}
		return 8

	case 0x27:
		c.daa()
		return 4
	case 0x2F:
		c.cpl()
		return 4
	case 0x37:
		c.scf()
		return 4
	case 0x3F:
		c.ccf()
		return 4

	case 0xC6:
		c.addToA(c.fetch8())
		return 8
	case 0xCE:
		c.adcToA(c.fetch8())
		return 8
	case 0xD6:
		c.sub(c.fetch8())
		return 8
	case 0xDE:
		c.sbc(c.fetch8())
		return 8
	case 0xE6:
		c.and(c.fetch8())
		return 8
	case 0xEE:
		c.xor(c.fetch8())
		return 8
	case 0xF6:
		c.or(c.fetch8())
		return 8
	case 0xFE:
		c.cp(c.fetch8())
		return 8

	case 0xC0, 0xC8, 0xD0, 0xD8: // RET cc
		if c.condition((opcode >> 3) & 3) {
			c.pc = c.pop()
			return 20
		}
		return 8
	case 0xC9:
		c.pc = c.pop()
		return 16
	case 0xD9:
		c.pc = c.pop()
		c.ime = true
		return 16

	case 0xC2, 0xCA, 0xD2, 0xDA: // JP cc,a16
		target := c.fetch16()
		if c.condition((opcode >> 3) & 3) {
			c.pc = target
			return 16
		}
		return 12
	case 0xC3:
		c.pc = c.fetch16()
		return 16
	case 0xE9:
		c.pc = c.hl()
		return 4

	case 0xC4, 0xCC, 0xD4, 0xDC: // CALL cc,a16
		target := c.fetch16()
		if c.condition((opcode >> 3) & 3) {
			c.push(c.pc)
			c.pc = target
			return 24
		}
		return 12
	case 0xCD:
		target := c.fetch16()
		c.push(c.pc)
		c.pc = target
		return 24

	case 0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF: // RST
		c.push(c.pc)
		c.pc = uint16(opcode &^ 0xC7)
		return 16

	case 0xC1:
		c.setBC(c.pop())
		return 12
	case 0xD1:
		c.setDE(c.pop())
		return 12
	case 0xE1:
		c.setHL(c.pop())
		return 12
	case 0xF1:
		c.setAF(c.pop())
		return 12

	case 0xC5:
		c.push(c.bc())
		return 16
	case 0xD5:
		c.push(c.de())
		return 16
	case 0xE5:
		c.push(c.hl())
		return 16
	case 0xF5:
		c.push(c.af())
		return 16

	case 0xE0: // LDH (a8),A
		c.bus.Write(0xFF00+uint16(c.fetch8()), c.a)
		return 12
	case 0xF0: // LDH A,(a8)
		c.a = c.bus.Read(0xFF00 + uint16(c.fetch8()))
		return 12
	case 0xE2: // LD (C),A
		c.bus.Write(0xFF00+uint16(c.c), c.a)
		return 8
	case 0xF2: // LD A,(C)
		c.a = c.bus.Read(0xFF00 + uint16(c.c))
		return 8
	case 0xEA: // LD (a16),A
		c.bus.Write(c.fetch16(), c.a)
		return 16
	case 0xFA: // LD A,(a16)
		c.a = c.bus.Read(c.fetch16())
		return 16

	case 0xE8: // ADD SP,e8
		c.sp = c.addToSP(int8(c.fetch8()))
		return 16
	case 0xF8: // LD HL,SP+e8
		c.setHL(c.addToSP(int8(c.fetch8())))
		return 12
	case 0xF9: // LD SP,HL
		c.sp = c.hl()
		return 8

	case 0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD:
		return c.invalidOpcode(opcode)
	}

	return c.invalidOpcode(opcode)
}

// aluOp dispatches the 8 ALU-A operations of the 0x80-0xBF block, indexed in
// encoding order: ADD ADC SUB SBC AND XOR OR CP. The immediate forms at
// 0xC6-0xFE call the same helpers directly.
func (c *CPU) aluOp(op uint8, value uint8) {
	switch op {
	case 0:
		c.addToA(value)
	case 1:
		c.adcToA(value)
	case 2:
		c.sub(value)
	case 3:
		c.sbc(value)
	case 4:
		c.and(value)
	case 5:
		c.xor(value)
	case 6:
		c.or(value)
	default:
		c.cp(value)
	}
}

// opHALT enters the low-power wait state. If IME is clear and an interrupt
// is already pending, hardware's halt bug causes the next opcode fetch to
// not advance PC; we reproduce the observable effect (the byte after HALT
// executes twice) via haltBug.
func (c *CPU) opHALT() int {
	_, pending := c.bus.IO.PendingInterrupt()
	if !c.ime && pending {
		c.haltBug = true
		return 4
	}
	c.halted = true
	return 4
}
