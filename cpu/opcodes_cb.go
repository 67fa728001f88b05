package cpu

// opcodes_cb.go is the CB-prefixed, 256-entry dispatch table. It is fully
// regular (row = operation, column = operand), so it is decoded
// arithmetically rather than spelled out opcode by opcode.

func (c *CPU) executeCB(opcode uint8) int {
	row := opcode >> 3
	operand := opcode & 7

	value := c.getR8(operand)

	switch {
	case row <= 7:
		switch row {
		case 0:
			c.rlc(&value)
		case 1:
			c.rrc(&value)
		case 2:
			c.rl(&value)
		case 3:
			c.rr(&value)
		case 4:
			c.sla(&value)
		case 5:
			c.sra(&value)
		case 6:
			c.swap(&value)
		case 7:
			c.srl(&value)
		}
		c.setR8(operand, value)
		if operand == 6 {
			return 16
		}
		return 8

	case row >= 8 && row <= 15: // BIT 0-7,r
		index := row - 8
		c.bit(index, value)
		if operand == 6 {
			return 12
		}
		return 8

	case row >= 16 && row <= 23: // RES 0-7,r
		index := row - 16
		c.setR8(operand, resBit(index, value))
		if operand == 6 {
			return 16
		}
		return 8

	default: // SET 0-7,r
		index := row - 24
		c.setR8(operand, setBit(index, value))
		if operand == 6 {
			return 16
		}
		return 8
	}
}
