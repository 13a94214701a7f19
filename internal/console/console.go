// Package console wires a parsed cartridge into a Bus and CPU and exposes
// the run loop the host drives: the control flow from spec §2 and §5.
package console

import (
	"io"

	"nesgo/internal/bus"
	"nesgo/internal/cartridge"
	"nesgo/internal/cpu"
	"nesgo/internal/input"
	"nesgo/internal/ppu"
)

// Console is the assembled NES: cartridge, bus, and CPU.
type Console struct {
	Bus *bus.Bus
	CPU *cpu.CPU
}

// Load parses an iNES image from r and assembles a Console ready to Run.
func Load(r io.Reader) (*Console, error) {
	cart, err := cartridge.Load(r)
	if err != nil {
		return nil, err
	}
	return New(cart), nil
}

// New assembles a Console for an already-parsed cartridge.
func New(cart *cartridge.Cartridge) *Console {
	b := bus.New(cart)
	c := cpu.New(b)
	return &Console{Bus: b, CPU: c}
}

// SetFrameCallback registers the host's per-frame presentation hook
// (spec §6.2). It is invoked once per completed PPU frame with a read-only
// PPU view and joypad 1's mutable handle.
func (c *Console) SetFrameCallback(cb func(p *ppu.PPU, joypad *input.Controller)) {
	c.Bus.SetFrameCallback(bus.FrameCallback(cb))
}

// Joypad1 and Joypad2 expose the two controller ports for the host's input
// poll (spec §6.3).
func (c *Console) Joypad1() *input.Controller { return c.Bus.Joypad1 }
func (c *Console) Joypad2() *input.Controller { return c.Bus.Joypad2 }

// Step executes exactly one CPU instruction and returns the number of CPU
// cycles it consumed.
func (c *Console) Step() uint64 {
	return c.CPU.Step()
}

// Run executes instructions until the CPU halts (BRK, spec §4.2.4) or the
// bus or PPU observes a fatal fault (spec §7). It returns that fault, if
// any; a clean BRK-triggered stop returns nil.
func (c *Console) Run() error {
	for !c.CPU.Halted {
		c.Step()
		if err := c.Bus.Fault(); err != nil {
			return err
		}
		if err := c.Bus.PPU.Fault(); err != nil {
			return err
		}
	}
	return nil
}

// RunFrames executes whole frames (262 scanlines each) until n frames have
// completed or the CPU halts/faults, whichever comes first. Used by the
// headless host mode.
func (c *Console) RunFrames(n int) error {
	for frame := 0; frame < n && !c.CPU.Halted; {
		before := c.Bus.PPU.Scanline()
		c.Step()
		if err := c.Bus.Fault(); err != nil {
			return err
		}
		if err := c.Bus.PPU.Fault(); err != nil {
			return err
		}
		after := c.Bus.PPU.Scanline()
		if after < before {
			frame++
		}
	}
	return nil
}

// SetPC overrides the program counter, used by the nestest automation
// entry point (spec §8) which starts execution at $C000 instead of the
// reset vector.
func (c *Console) SetPC(pc uint16) {
	c.CPU.PC = pc
}
