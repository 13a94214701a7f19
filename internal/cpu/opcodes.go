package cpu

// readTypePageCrossPenalty marks the opcodes that take one extra cycle when
// their Absolute_X/Absolute_Y/Indirect_Y operand crosses a page (spec
// §4.2.1). Store instructions and the unofficial read-modify-write
// opcodes already charge their worst-case cycle count in the table below
// and never need this.
var readTypePageCrossPenalty = [256]bool{}

func markPenalty(opcodes ...uint8) {
	for _, op := range opcodes {
		readTypePageCrossPenalty[op] = true
	}
}

func init() {
	markPenalty(
		0xBD, 0xB9, 0xB1, // LDA absx/absy/indy
		0xBE,             // LDX absy
		0xBC,             // LDY absx
		0x7D, 0x79, 0x71, // ADC
		0x3D, 0x39, 0x31, // AND
		0xDD, 0xD9, 0xD1, // CMP
		0x5D, 0x59, 0x51, // EOR
		0x1D, 0x19, 0x11, // ORA
		0xFD, 0xF9, 0xF1, // SBC
		0xBF, 0xB3, // LAX absy/indy
		0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC, // unofficial NOP absx
	)
}

func (c *CPU) add(opcode uint8, mnemonic string, bytes, cycles uint8, mode AddressingMode) {
	c.instructions[opcode] = &Instruction{Mnemonic: mnemonic, Opcode: opcode, Bytes: bytes, Cycles: cycles, Mode: mode, Official: true}
}

func (c *CPU) addUnofficial(opcode uint8, mnemonic string, bytes, cycles uint8, mode AddressingMode) {
	c.instructions[opcode] = &Instruction{Mnemonic: mnemonic, Opcode: opcode, Bytes: bytes, Cycles: cycles, Mode: mode, Official: false}
}

// initInstructions populates the 256-entry opcode table: every official
// instruction plus the unofficial families spec §4.2.4 names, and the
// undocumented NOPs that fill out nestest's extended opcode test.
func (c *CPU) initInstructions() {
	for i := range c.instructions {
		c.instructions[i] = nil
	}

	a, u := c.add, c.addUnofficial

	a(0x69, "ADC", 2, 2, Immediate)
	a(0x65, "ADC", 2, 3, ZeroPage)
	a(0x75, "ADC", 2, 4, ZeroPageX)
	a(0x6D, "ADC", 3, 4, Absolute)
	a(0x7D, "ADC", 3, 4, AbsoluteX)
	a(0x79, "ADC", 3, 4, AbsoluteY)
	a(0x61, "ADC", 2, 6, IndexedIndirect)
	a(0x71, "ADC", 2, 5, IndirectIndexed)

	a(0x29, "AND", 2, 2, Immediate)
	a(0x25, "AND", 2, 3, ZeroPage)
	a(0x35, "AND", 2, 4, ZeroPageX)
	a(0x2D, "AND", 3, 4, Absolute)
	a(0x3D, "AND", 3, 4, AbsoluteX)
	a(0x39, "AND", 3, 4, AbsoluteY)
	a(0x21, "AND", 2, 6, IndexedIndirect)
	a(0x31, "AND", 2, 5, IndirectIndexed)

	a(0x0A, "ASL", 1, 2, Accumulator)
	a(0x06, "ASL", 2, 5, ZeroPage)
	a(0x16, "ASL", 2, 6, ZeroPageX)
	a(0x0E, "ASL", 3, 6, Absolute)
	a(0x1E, "ASL", 3, 7, AbsoluteX)

	a(0x90, "BCC", 2, 2, Relative)
	a(0xB0, "BCS", 2, 2, Relative)
	a(0xF0, "BEQ", 2, 2, Relative)
	a(0x30, "BMI", 2, 2, Relative)
	a(0xD0, "BNE", 2, 2, Relative)
	a(0x10, "BPL", 2, 2, Relative)
	a(0x50, "BVC", 2, 2, Relative)
	a(0x70, "BVS", 2, 2, Relative)

	a(0x24, "BIT", 2, 3, ZeroPage)
	a(0x2C, "BIT", 3, 4, Absolute)

	a(0x00, "BRK", 1, 7, Implicit)

	a(0x18, "CLC", 1, 2, Implicit)
	a(0xD8, "CLD", 1, 2, Implicit)
	a(0x58, "CLI", 1, 2, Implicit)
	a(0xB8, "CLV", 1, 2, Implicit)

	a(0xC9, "CMP", 2, 2, Immediate)
	a(0xC5, "CMP", 2, 3, ZeroPage)
	a(0xD5, "CMP", 2, 4, ZeroPageX)
	a(0xCD, "CMP", 3, 4, Absolute)
	a(0xDD, "CMP", 3, 4, AbsoluteX)
	a(0xD9, "CMP", 3, 4, AbsoluteY)
	a(0xC1, "CMP", 2, 6, IndexedIndirect)
	a(0xD1, "CMP", 2, 5, IndirectIndexed)

	a(0xE0, "CPX", 2, 2, Immediate)
	a(0xE4, "CPX", 2, 3, ZeroPage)
	a(0xEC, "CPX", 3, 4, Absolute)

	a(0xC0, "CPY", 2, 2, Immediate)
	a(0xC4, "CPY", 2, 3, ZeroPage)
	a(0xCC, "CPY", 3, 4, Absolute)

	a(0xC6, "DEC", 2, 5, ZeroPage)
	a(0xD6, "DEC", 2, 6, ZeroPageX)
	a(0xCE, "DEC", 3, 6, Absolute)
	a(0xDE, "DEC", 3, 7, AbsoluteX)

	a(0xCA, "DEX", 1, 2, Implicit)
	a(0x88, "DEY", 1, 2, Implicit)

	a(0x49, "EOR", 2, 2, Immediate)
	a(0x45, "EOR", 2, 3, ZeroPage)
	a(0x55, "EOR", 2, 4, ZeroPageX)
	a(0x4D, "EOR", 3, 4, Absolute)
	a(0x5D, "EOR", 3, 4, AbsoluteX)
	a(0x59, "EOR", 3, 4, AbsoluteY)
	a(0x41, "EOR", 2, 6, IndexedIndirect)
	a(0x51, "EOR", 2, 5, IndirectIndexed)

	a(0xE6, "INC", 2, 5, ZeroPage)
	a(0xF6, "INC", 2, 6, ZeroPageX)
	a(0xEE, "INC", 3, 6, Absolute)
	a(0xFE, "INC", 3, 7, AbsoluteX)

	a(0xE8, "INX", 1, 2, Implicit)
	a(0xC8, "INY", 1, 2, Implicit)

	a(0x4C, "JMP", 3, 3, Absolute)
	a(0x6C, "JMP", 3, 5, Indirect)
	a(0x20, "JSR", 3, 6, Absolute)

	a(0xA9, "LDA", 2, 2, Immediate)
	a(0xA5, "LDA", 2, 3, ZeroPage)
	a(0xB5, "LDA", 2, 4, ZeroPageX)
	a(0xAD, "LDA", 3, 4, Absolute)
	a(0xBD, "LDA", 3, 4, AbsoluteX)
	a(0xB9, "LDA", 3, 4, AbsoluteY)
	a(0xA1, "LDA", 2, 6, IndexedIndirect)
	a(0xB1, "LDA", 2, 5, IndirectIndexed)

	a(0xA2, "LDX", 2, 2, Immediate)
	a(0xA6, "LDX", 2, 3, ZeroPage)
	a(0xB6, "LDX", 2, 4, ZeroPageY)
	a(0xAE, "LDX", 3, 4, Absolute)
	a(0xBE, "LDX", 3, 4, AbsoluteY)

	a(0xA0, "LDY", 2, 2, Immediate)
	a(0xA4, "LDY", 2, 3, ZeroPage)
	a(0xB4, "LDY", 2, 4, ZeroPageX)
	a(0xAC, "LDY", 3, 4, Absolute)
	a(0xBC, "LDY", 3, 4, AbsoluteX)

	a(0x4A, "LSR", 1, 2, Accumulator)
	a(0x46, "LSR", 2, 5, ZeroPage)
	a(0x56, "LSR", 2, 6, ZeroPageX)
	a(0x4E, "LSR", 3, 6, Absolute)
	a(0x5E, "LSR", 3, 7, AbsoluteX)

	a(0xEA, "NOP", 1, 2, Implicit)

	a(0x09, "ORA", 2, 2, Immediate)
	a(0x05, "ORA", 2, 3, ZeroPage)
	a(0x15, "ORA", 2, 4, ZeroPageX)
	a(0x0D, "ORA", 3, 4, Absolute)
	a(0x1D, "ORA", 3, 4, AbsoluteX)
	a(0x19, "ORA", 3, 4, AbsoluteY)
	a(0x01, "ORA", 2, 6, IndexedIndirect)
	a(0x11, "ORA", 2, 5, IndirectIndexed)

	a(0x48, "PHA", 1, 3, Implicit)
	a(0x08, "PHP", 1, 3, Implicit)
	a(0x68, "PLA", 1, 4, Implicit)
	a(0x28, "PLP", 1, 4, Implicit)

	a(0x2A, "ROL", 1, 2, Accumulator)
	a(0x26, "ROL", 2, 5, ZeroPage)
	a(0x36, "ROL", 2, 6, ZeroPageX)
	a(0x2E, "ROL", 3, 6, Absolute)
	a(0x3E, "ROL", 3, 7, AbsoluteX)

	a(0x6A, "ROR", 1, 2, Accumulator)
	a(0x66, "ROR", 2, 5, ZeroPage)
	a(0x76, "ROR", 2, 6, ZeroPageX)
	a(0x6E, "ROR", 3, 6, Absolute)
	a(0x7E, "ROR", 3, 7, AbsoluteX)

	a(0x40, "RTI", 1, 6, Implicit)
	a(0x60, "RTS", 1, 6, Implicit)

	a(0xE9, "SBC", 2, 2, Immediate)
	a(0xE5, "SBC", 2, 3, ZeroPage)
	a(0xF5, "SBC", 2, 4, ZeroPageX)
	a(0xED, "SBC", 3, 4, Absolute)
	a(0xFD, "SBC", 3, 4, AbsoluteX)
	a(0xF9, "SBC", 3, 4, AbsoluteY)
	a(0xE1, "SBC", 2, 6, IndexedIndirect)
	a(0xF1, "SBC", 2, 5, IndirectIndexed)

	a(0x38, "SEC", 1, 2, Implicit)
	a(0xF8, "SED", 1, 2, Implicit)
	a(0x78, "SEI", 1, 2, Implicit)

	a(0x85, "STA", 2, 3, ZeroPage)
	a(0x95, "STA", 2, 4, ZeroPageX)
	a(0x8D, "STA", 3, 4, Absolute)
	a(0x9D, "STA", 3, 5, AbsoluteX)
	a(0x99, "STA", 3, 5, AbsoluteY)
	a(0x81, "STA", 2, 6, IndexedIndirect)
	a(0x91, "STA", 2, 6, IndirectIndexed)

	a(0x86, "STX", 2, 3, ZeroPage)
	a(0x96, "STX", 2, 4, ZeroPageY)
	a(0x8E, "STX", 3, 4, Absolute)

	a(0x84, "STY", 2, 3, ZeroPage)
	a(0x94, "STY", 2, 4, ZeroPageX)
	a(0x8C, "STY", 3, 4, Absolute)

	a(0xAA, "TAX", 1, 2, Implicit)
	a(0xA8, "TAY", 1, 2, Implicit)
	a(0xBA, "TSX", 1, 2, Implicit)
	a(0x8A, "TXA", 1, 2, Implicit)
	a(0x9A, "TXS", 1, 2, Implicit)
	a(0x98, "TYA", 1, 2, Implicit)

	// Unofficial opcodes (spec §4.2.4).
	u(0xA7, "LAX", 2, 3, ZeroPage)
	u(0xB7, "LAX", 2, 4, ZeroPageY)
	u(0xAF, "LAX", 3, 4, Absolute)
	u(0xBF, "LAX", 3, 4, AbsoluteY)
	u(0xA3, "LAX", 2, 6, IndexedIndirect)
	u(0xB3, "LAX", 2, 5, IndirectIndexed)

	u(0x87, "SAX", 2, 3, ZeroPage)
	u(0x97, "SAX", 2, 4, ZeroPageY)
	u(0x8F, "SAX", 3, 4, Absolute)
	u(0x83, "SAX", 2, 6, IndexedIndirect)

	u(0xC7, "DCP", 2, 5, ZeroPage)
	u(0xD7, "DCP", 2, 6, ZeroPageX)
	u(0xCF, "DCP", 3, 6, Absolute)
	u(0xDF, "DCP", 3, 7, AbsoluteX)
	u(0xDB, "DCP", 3, 7, AbsoluteY)
	u(0xC3, "DCP", 2, 8, IndexedIndirect)
	u(0xD3, "DCP", 2, 8, IndirectIndexed)

	u(0xE7, "ISB", 2, 5, ZeroPage)
	u(0xF7, "ISB", 2, 6, ZeroPageX)
	u(0xEF, "ISB", 3, 6, Absolute)
	u(0xFF, "ISB", 3, 7, AbsoluteX)
	u(0xFB, "ISB", 3, 7, AbsoluteY)
	u(0xE3, "ISB", 2, 8, IndexedIndirect)
	u(0xF3, "ISB", 2, 8, IndirectIndexed)

	u(0x07, "SLO", 2, 5, ZeroPage)
	u(0x17, "SLO", 2, 6, ZeroPageX)
	u(0x0F, "SLO", 3, 6, Absolute)
	u(0x1F, "SLO", 3, 7, AbsoluteX)
	u(0x1B, "SLO", 3, 7, AbsoluteY)
	u(0x03, "SLO", 2, 8, IndexedIndirect)
	u(0x13, "SLO", 2, 8, IndirectIndexed)

	u(0x27, "RLA", 2, 5, ZeroPage)
	u(0x37, "RLA", 2, 6, ZeroPageX)
	u(0x2F, "RLA", 3, 6, Absolute)
	u(0x3F, "RLA", 3, 7, AbsoluteX)
	u(0x3B, "RLA", 3, 7, AbsoluteY)
	u(0x23, "RLA", 2, 8, IndexedIndirect)
	u(0x33, "RLA", 2, 8, IndirectIndexed)

	u(0x47, "SRE", 2, 5, ZeroPage)
	u(0x57, "SRE", 2, 6, ZeroPageX)
	u(0x4F, "SRE", 3, 6, Absolute)
	u(0x5F, "SRE", 3, 7, AbsoluteX)
	u(0x5B, "SRE", 3, 7, AbsoluteY)
	u(0x43, "SRE", 2, 8, IndexedIndirect)
	u(0x53, "SRE", 2, 8, IndirectIndexed)

	u(0x67, "RRA", 2, 5, ZeroPage)
	u(0x77, "RRA", 2, 6, ZeroPageX)
	u(0x6F, "RRA", 3, 6, Absolute)
	u(0x7F, "RRA", 3, 7, AbsoluteX)
	u(0x7B, "RRA", 3, 7, AbsoluteY)
	u(0x63, "RRA", 2, 8, IndexedIndirect)
	u(0x73, "RRA", 2, 8, IndirectIndexed)

	u(0xEB, "SBC", 2, 2, Immediate)

	// Undocumented NOPs: declared length/cycles, no side effects.
	for _, op := range []uint8{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		u(op, "NOP", 1, 2, Implicit)
	}
	for _, op := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		u(op, "NOP", 2, 2, Immediate)
	}
	for _, op := range []uint8{0x04, 0x44, 0x64} {
		u(op, "NOP", 2, 3, ZeroPage)
	}
	for _, op := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		u(op, "NOP", 2, 4, ZeroPageX)
	}
	u(0x0C, "NOP", 3, 4, Absolute)
	for _, op := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		u(op, "NOP", 3, 4, AbsoluteX)
	}
}
