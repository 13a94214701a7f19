package bus

import (
	"bytes"
	"testing"

	"nesgo/internal/cartridge"
	"nesgo/internal/input"
	"nesgo/internal/ppu"
)

func testCartridge(t *testing.T) *cartridge.Cartridge {
	t.Helper()
	header := make([]uint8, 16)
	copy(header, []uint8{'N', 'E', 'S', 0x1A})
	header[4] = 1
	header[5] = 1

	var buf bytes.Buffer
	buf.Write(header)
	buf.Write(make([]uint8, 16384))
	buf.Write(make([]uint8, 8192))

	cart, err := cartridge.Load(&buf)
	if err != nil {
		t.Fatalf("failed to build test cartridge: %v", err)
	}
	return cart
}

func TestTickAdvancesPPUThreeDotsPerCycle(t *testing.T) {
	b := New(testCartridge(t))
	b.Tick(1)
	if b.PPU.Dot() != 3 {
		t.Fatalf("expected PPU to advance 3 dots for 1 CPU cycle, got %d", b.PPU.Dot())
	}
}

func TestFrameCallbackFiresOnFrameComplete(t *testing.T) {
	b := New(testCartridge(t))
	called := false
	b.SetFrameCallback(func(p *ppu.PPU, joypad *input.Controller) {
		called = true
	})
	// One full frame is scanlinesPerFrame*dotsPerScanline dots = that many
	// PPU steps, i.e. /3 CPU cycles, rounded up.
	b.Tick((341*262 + 2) / 3)
	if !called {
		t.Fatal("expected frame callback to fire after a full frame of ticks")
	}
}

func TestOAMDMACopiesFromRAM(t *testing.T) {
	b := New(testCartridge(t))
	b.Write(0x0200, 0xAB) // page 2, offset 0
	b.Write(0x4014, 0x02) // trigger DMA from page 2
	b.Tick(1)             // DMA is serviced on the next tick
	if got := b.PPU.ReadOAMData(); got != 0xAB {
		t.Fatalf("expected OAM[0]=0xAB after DMA, got %02X", got)
	}
}
