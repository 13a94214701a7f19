package cpu

// operandAddress resolves the effective address for mode, advancing PC
// past the instruction's operand bytes, and reports whether the base and
// indexed address differ in their high byte (spec §4.2.1 Page cross).
func (c *CPU) operandAddress(mode AddressingMode) (uint16, bool) {
	switch mode {
	case Implicit, Accumulator:
		return 0, false

	case Immediate:
		addr := c.PC
		c.PC++
		return addr, false

	case ZeroPage:
		addr := uint16(c.bus.Read(c.PC))
		c.PC++
		return addr, false

	case ZeroPageX:
		base := c.bus.Read(c.PC)
		c.PC++
		return uint16(base + c.X), false

	case ZeroPageY:
		base := c.bus.Read(c.PC)
		c.PC++
		return uint16(base + c.Y), false

	case Relative:
		offset := int8(c.bus.Read(c.PC))
		c.PC++
		target := uint16(int32(c.PC) + int32(offset))
		crossed := (c.PC & 0xFF00) != (target & 0xFF00)
		return target, crossed

	case Absolute:
		addr := c.readWord(c.PC)
		c.PC += 2
		return addr, false

	case AbsoluteX:
		base := c.readWord(c.PC)
		c.PC += 2
		addr := base + uint16(c.X)
		return addr, (base & 0xFF00) != (addr & 0xFF00)

	case AbsoluteY:
		base := c.readWord(c.PC)
		c.PC += 2
		addr := base + uint16(c.Y)
		return addr, (base & 0xFF00) != (addr & 0xFF00)

	case Indirect: // JMP ($hhll) only
		ptr := c.readWord(c.PC)
		c.PC += 2
		return c.readWordBugged(ptr), false

	case IndexedIndirect: // (zp,X)
		base := c.bus.Read(c.PC)
		c.PC++
		ptr := base + c.X
		lo := uint16(c.bus.Read(uint16(ptr)))
		hi := uint16(c.bus.Read(uint16(ptr + 1)))
		return hi<<8 | lo, false

	case IndirectIndexed: // (zp),Y
		ptr := c.bus.Read(c.PC)
		c.PC++
		lo := uint16(c.bus.Read(uint16(ptr)))
		hi := uint16(c.bus.Read(uint16(ptr + 1)))
		base := hi<<8 | lo
		addr := base + uint16(c.Y)
		return addr, (base & 0xFF00) != (addr & 0xFF00)

	default:
		return 0, false
	}
}

// readWordBugged emulates the 6502 JMP ($hhll) page-wrap bug: when the
// vector's low byte is 0xFF, the high byte is fetched from the start of
// the same page rather than the next one (spec §4.2.4 JMP indirect).
func (c *CPU) readWordBugged(ptr uint16) uint16 {
	lo := uint16(c.bus.Read(ptr))
	var hi uint16
	if ptr&0x00FF == 0x00FF {
		hi = uint16(c.bus.Read(ptr & 0xFF00))
	} else {
		hi = uint16(c.bus.Read(ptr + 1))
	}
	return hi<<8 | lo
}
