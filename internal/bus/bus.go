// Package bus wires the CPU, PPU, cartridge and joypads together and
// drives the CPU<->PPU timing protocol described in spec §4.3/§5: 3 PPU
// dots per CPU cycle, NMI delivered by poll before each opcode fetch, and
// the host frame callback invoked once per completed PPU frame.
package bus

import (
	"nesgo/internal/cartridge"
	"nesgo/internal/input"
	"nesgo/internal/memory"
	"nesgo/internal/ppu"
)

// FrameCallback is invoked once per completed PPU frame with a read-only
// view of the PPU (for the frame buffer) and a mutable handle to joypad 1
// the host can update before the next frame (spec §6.2).
type FrameCallback func(p *ppu.PPU, joypad *input.Controller)

// Bus owns the PPU, RAM and the running CPU cycle counter. It is the only
// component that mutates the cycle counter or crosses the CPU<->PPU
// boundary.
type Bus struct {
	Memory  *memory.Memory
	PPU     *ppu.PPU
	Joypad1 *input.Controller
	Joypad2 *input.Controller

	cycle uint64

	frameCallback FrameCallback

	dmaPage   uint8
	dmaQueued bool
}

// New constructs a Bus for the given cartridge, with joypad 1 and 2 ports
// ready for the host to drive.
func New(cart *cartridge.Cartridge) *Bus {
	p := ppu.New(cart)
	pad1 := input.New()
	pad2 := input.New()
	mem := memory.New(p, cart, pad1, pad2)

	b := &Bus{
		Memory:  mem,
		PPU:     p,
		Joypad1: pad1,
		Joypad2: pad2,
	}
	mem.SetOAMDMACallback(b.triggerOAMDMA)
	return b
}

// SetFrameCallback registers the host's per-frame presentation hook.
func (b *Bus) SetFrameCallback(cb FrameCallback) {
	b.frameCallback = cb
}

// Read implements cpu.MemoryInterface.
func (b *Bus) Read(address uint16) uint8 {
	return b.Memory.Read(address)
}

// Write implements cpu.MemoryInterface.
func (b *Bus) Write(address uint16, value uint8) {
	b.Memory.Write(address, value)
}

// TakeNMI implements cpu.InterruptSource: it is polled before every opcode
// fetch (spec §4.2.6).
func (b *Bus) TakeNMI() bool {
	return b.PPU.TakeNMI()
}

// Fault returns the first fatal memory-decode error observed, if any
// (spec §7).
func (b *Bus) Fault() error {
	return b.Memory.Fault()
}

// Cycle returns the running CPU cycle counter.
func (b *Bus) Cycle() uint64 {
	return b.cycle
}

// Tick advances the bus by cpuCycles CPU cycles: the PPU advances by 3x
// that many dots, and a pending OAM DMA (queued by a $4014 write) is
// copied into OAM first, before any of those dots advance. When the PPU
// completes a frame, the
// host frame callback fires before Tick returns (spec §4.3, §5 ordering
// guarantee 3).
func (b *Bus) Tick(cpuCycles uint64) {
	b.cycle += cpuCycles

	if b.dmaQueued {
		b.dmaQueued = false
		page := b.Memory.ReadPage(b.dmaPage)
		b.PPU.WriteOAM(page)
	}

	for i := uint64(0); i < cpuCycles*3; i++ {
		b.PPU.Step()
		if b.PPU.TakeFrameReady() && b.frameCallback != nil {
			b.frameCallback(b.PPU, b.Joypad1)
		}
	}
}

// triggerOAMDMA is the Memory OAMDMACallback for $4014 writes. The actual
// 256-byte copy happens on the next Tick so it is charged against the
// cycles the instruction that wrote $4014 already consumed, rather than
// stalling the CPU mid-instruction.
func (b *Bus) triggerOAMDMA(page uint8) {
	b.dmaPage = page
	b.dmaQueued = true
}
