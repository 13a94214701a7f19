package cpu

import "fmt"

// Trace renders the instruction about to execute in the nestest reference
// log format (spec §8 property suite): PC, raw opcode bytes, a disassembly
// column, and the register snapshot. It performs no mutation — only reads
// through the bus the way the real fetch would.
func (c *CPU) Trace() string {
	pc := c.PC
	opcode := c.bus.Read(pc)
	instr := c.instructions[opcode]
	if instr == nil {
		return fmt.Sprintf("%04X  %02X        ??? UNKNOWN                   A:%02X X:%02X Y:%02X P:%02X SP:%02X",
			pc, opcode, c.A, c.X, c.Y, c.P, c.SP)
	}

	var lowStr, highStr string
	if instr.Bytes > 1 {
		lowStr = fmt.Sprintf("%02X", c.bus.Read(pc+1))
	} else {
		lowStr = "  "
	}
	if instr.Bytes > 2 {
		highStr = fmt.Sprintf("%02X", c.bus.Read(pc+2))
	} else {
		highStr = "  "
	}
	machine := fmt.Sprintf("%02X %s %s", opcode, lowStr, highStr)

	operand := c.traceOperand(instr, pc)
	asm := fmt.Sprintf("%-4s%s", instr.Mnemonic, operand)

	return fmt.Sprintf("%04X  %s  %-27s A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		pc, machine, asm, c.A, c.X, c.Y, c.P, c.SP)
}

func (c *CPU) traceOperand(instr *Instruction, pc uint16) string {
	switch instr.Mode {
	case Immediate:
		return fmt.Sprintf(" #$%02X", c.bus.Read(pc+1))
	case ZeroPage:
		addr := c.bus.Read(pc + 1)
		return fmt.Sprintf(" $%02X = %02X", addr, c.bus.Read(uint16(addr)))
	case ZeroPageX:
		return fmt.Sprintf(" $%02X,X", c.bus.Read(pc+1))
	case ZeroPageY:
		return fmt.Sprintf(" $%02X,Y", c.bus.Read(pc+1))
	case Absolute:
		lo := uint16(c.bus.Read(pc + 1))
		hi := uint16(c.bus.Read(pc + 2))
		return fmt.Sprintf(" $%04X", hi<<8|lo)
	case AbsoluteX:
		lo := uint16(c.bus.Read(pc + 1))
		hi := uint16(c.bus.Read(pc + 2))
		return fmt.Sprintf(" $%04X,X", hi<<8|lo)
	case AbsoluteY:
		lo := uint16(c.bus.Read(pc + 1))
		hi := uint16(c.bus.Read(pc + 2))
		return fmt.Sprintf(" $%04X,Y", hi<<8|lo)
	case Indirect:
		lo := uint16(c.bus.Read(pc + 1))
		hi := uint16(c.bus.Read(pc + 2))
		return fmt.Sprintf(" ($%04X)", hi<<8|lo)
	case IndexedIndirect:
		return fmt.Sprintf(" ($%02X,X)", c.bus.Read(pc+1))
	case IndirectIndexed:
		return fmt.Sprintf(" ($%02X),Y", c.bus.Read(pc+1))
	case Relative:
		offset := int8(c.bus.Read(pc + 1))
		target := uint16(int32(pc) + 2 + int32(offset))
		return fmt.Sprintf(" $%04X", target)
	case Accumulator:
		return " A"
	default:
		return ""
	}
}
