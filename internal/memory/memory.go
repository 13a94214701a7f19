// Package memory implements the CPU-visible address decoder described in
// spec §4.3: RAM mirroring, PPU register ports, PRG ROM, the joypad ports,
// and the silently ignored APU window.
package memory

import (
	"errors"
	"log"

	"nesgo/internal/cartridge"
	"nesgo/internal/input"
	"nesgo/internal/ppu"
)

// Fatal error kinds raised by the memory decoder (spec §7). A fault is
// latched on first occurrence; Bus surfaces it to the host after the
// instruction that triggered it completes.
var (
	ErrWriteToROM               = errors.New("memory: write to PRG ROM")
	ErrReadFromWriteOnlyRegister = errors.New("memory: read from write-only PPU register")
	ErrWriteToReadOnlyRegister   = errors.New("memory: write to read-only PPU register")
)

// OAMDMACallback is invoked on a $4014 write with the source CPU page.
type OAMDMACallback func(page uint8)

// Memory implements the CPU's view of the address space (spec §4.3 table).
type Memory struct {
	ram [2048]uint8

	ppu  *ppu.PPU
	cart *cartridge.Cartridge

	joypad1 *input.Controller
	joypad2 *input.Controller

	dma OAMDMACallback

	fault error
}

// New constructs the CPU memory decoder over the given components.
func New(p *ppu.PPU, cart *cartridge.Cartridge, pad1, pad2 *input.Controller) *Memory {
	return &Memory{ppu: p, cart: cart, joypad1: pad1, joypad2: pad2}
}

// SetOAMDMACallback registers the handler the Bus uses to service $4014.
func (m *Memory) SetOAMDMACallback(cb OAMDMACallback) {
	m.dma = cb
}

// Fault returns the first fatal decode error observed, if any.
func (m *Memory) Fault() error {
	return m.fault
}

func (m *Memory) fail(err error) {
	if m.fault == nil {
		m.fault = err
	}
}

// Read returns the byte at a CPU address per the spec §4.3 memory map.
func (m *Memory) Read(address uint16) uint8 {
	switch {
	case address < 0x2000:
		return m.ram[address&0x07FF]

	case address == 0x2000, address == 0x2001, address == 0x2003, address == 0x2005, address == 0x2006:
		m.fail(ErrReadFromWriteOnlyRegister)
		return 0

	case address == 0x2002:
		return m.ppu.ReadStatus()

	case address == 0x2004:
		return m.ppu.ReadOAMData()

	case address == 0x2007:
		return m.ppu.ReadData()

	case address >= 0x2008 && address <= 0x3FFF:
		return m.Read(0x2000 + address&0x0007)

	case address == 0x4014:
		m.fail(ErrReadFromWriteOnlyRegister)
		return 0

	case address == 0x4016:
		if m.joypad1 != nil {
			return m.joypad1.Read()
		}
		return 0

	case address == 0x4017:
		if m.joypad2 != nil {
			return m.joypad2.Read()
		}
		return 0

	case address >= 0x4000 && address <= 0x4015:
		// APU registers: out of scope, reads return 0 (spec §4.3, §7).
		return 0

	case address >= 0x8000:
		return m.cart.ReadPRG(address)

	default:
		log.Printf("memory: unmapped read at $%04X", address)
		return 0
	}
}

// Write stores a byte at a CPU address per the spec §4.3 memory map.
func (m *Memory) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.ram[address&0x07FF] = value

	case address == 0x2000:
		m.ppu.WriteCtrl(value)

	case address == 0x2001:
		m.ppu.WriteMask(value)

	case address == 0x2002:
		m.fail(ErrWriteToReadOnlyRegister)

	case address == 0x2003:
		m.ppu.WriteOAMAddr(value)

	case address == 0x2004:
		m.ppu.WriteOAMData(value)

	case address == 0x2005:
		m.ppu.WriteScroll(value)

	case address == 0x2006:
		m.ppu.WriteAddr(value)

	case address == 0x2007:
		m.ppu.WriteData(value)

	case address >= 0x2008 && address <= 0x3FFF:
		m.Write(0x2000+address&0x0007, value)

	case address == 0x4014:
		if m.dma != nil {
			m.dma(value)
		}

	case address == 0x4016:
		if m.joypad1 != nil {
			m.joypad1.Write(value)
		}
		if m.joypad2 != nil {
			m.joypad2.Write(value)
		}

	case address >= 0x4000 && address <= 0x4015, address == 0x4017:
		// APU registers: out of scope, writes ignored (spec §4.3, §7).

	case address >= 0x8000:
		m.fail(ErrWriteToROM)

	default:
		log.Printf("memory: unmapped write at $%04X = $%02X", address, value)
	}
}

// ReadPage reads 256 consecutive bytes starting at page<<8, for OAM DMA.
func (m *Memory) ReadPage(page uint8) [256]uint8 {
	var buf [256]uint8
	base := uint16(page) << 8
	for i := range buf {
		buf[i] = m.Read(base + uint16(i))
	}
	return buf
}
