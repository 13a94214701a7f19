// Package ppu implements the NES Picture Processing Unit: register access,
// VRAM/palette memory with nametable mirroring, scanline/dot timing, NMI
// edge detection, and the background tile renderer.
package ppu

import (
	"nesgo/internal/cartridge"
	"nesgo/internal/frame"
)

// Register bit masks, mirroring the $2000/$2001/$2002 layouts.
const (
	ctrlNametableMask    = 0x03
	ctrlVRAMIncrement    = 0x04
	ctrlSpritePattern    = 0x08
	ctrlBgPattern        = 0x10
	ctrlSpriteSize       = 0x20
	ctrlMasterSlave      = 0x40
	ctrlNMIEnable        = 0x80
	statusSpriteOverflow = 0x20
	statusSprite0Hit     = 0x40
	statusVBlank         = 0x80
)

const (
	dotsPerScanline   = 341
	scanlinesPerFrame = 262
	vblankScanline    = 241
)

// PPU is the NES 2C02. It is reached only through Bus; nothing outside this
// package mutates its internal state.
type PPU struct {
	cart *cartridge.Cartridge

	vram         [2048]uint8
	paletteTable [32]uint8
	oam          [256]uint8
	oamAddr      uint8

	ctrl   uint8
	mask   uint8
	status uint8

	addr       uint16 // internal 14-bit VRAM address
	addrLatch  bool   // true = next write is the high byte
	scrollX    uint8
	scrollY    uint8
	scrollHi   bool // scroll write latch: true = next write is X
	readBuffer uint8

	scanline int
	dot      int

	nmiRequest  bool
	frameReady  bool
	frameBuffer *frame.Buffer

	fourScreenWarned bool
	fault            error
}

// New constructs a PPU bound to the cartridge's CHR memory and mirroring.
func New(cart *cartridge.Cartridge) *PPU {
	p := &PPU{
		cart:        cart,
		frameBuffer: frame.New(),
	}
	p.Reset()
	return p
}

// Reset returns the PPU to its post-power-up state.
func (p *PPU) Reset() {
	p.vram = [2048]uint8{}
	p.paletteTable = [32]uint8{}
	p.oam = [256]uint8{}
	p.oamAddr = 0
	p.ctrl = 0
	p.mask = 0
	p.status = 0
	p.addr = 0
	p.addrLatch = true
	p.scrollX = 0
	p.scrollY = 0
	p.scrollHi = true
	p.readBuffer = 0
	p.scanline = 0
	p.dot = 0
	p.nmiRequest = false
	p.frameReady = false
	p.frameBuffer.Clear()
	p.fault = nil
}

// Fault returns the first fatal decode error observed, if any (spec §7):
// currently only ErrUnsupportedMirroring, raised on the first nametable
// access through a FourScreen-mirrored cartridge.
func (p *PPU) Fault() error {
	return p.fault
}

func (p *PPU) fail(err error) {
	if p.fault == nil {
		p.fault = err
	}
}

// FrameBuffer returns the frame the background renderer draws into. The
// host may read it between frame-complete callbacks; it is only mutated
// during Step().
func (p *PPU) FrameBuffer() *frame.Buffer {
	return p.frameBuffer
}

// Scanline and Dot expose the current raster position for diagnostics.
func (p *PPU) Scanline() int { return p.scanline }
func (p *PPU) Dot() int      { return p.dot }

// TakeNMI reports and clears a pending NMI request. The Bus polls this
// before every CPU opcode fetch (spec §4.2.6) instead of the PPU calling
// back into the CPU directly.
func (p *PPU) TakeNMI() bool {
	if p.nmiRequest {
		p.nmiRequest = false
		return true
	}
	return false
}

// TakeFrameReady reports and clears the frame-complete flag the Bus checks
// after every Step call.
func (p *PPU) TakeFrameReady() bool {
	if p.frameReady {
		p.frameReady = false
		return true
	}
	return false
}

// Step advances the PPU by one dot. A scanline is 341 dots; a frame is 262
// scanlines (spec §4.4 Timing).
func (p *PPU) Step() {
	p.dot++
	if p.dot < dotsPerScanline {
		return
	}
	p.dot = 0
	p.scanline++

	if p.scanline == vblankScanline {
		p.status |= statusVBlank
		if p.ctrl&ctrlNMIEnable != 0 {
			p.nmiRequest = true
		}
	}

	if p.scanline >= scanlinesPerFrame {
		p.scanline = 0
		p.status &^= statusVBlank
		p.renderBackground()
		p.frameReady = true
	}
}

// backgroundPatternAddr returns the CHR bank ($0000 or $1000) CTRL selects
// for background tiles.
func (p *PPU) backgroundPatternAddr() uint16 {
	if p.ctrl&ctrlBgPattern != 0 {
		return 0x1000
	}
	return 0x0000
}

func (p *PPU) vramIncrement() uint16 {
	if p.ctrl&ctrlVRAMIncrement != 0 {
		return 32
	}
	return 1
}
