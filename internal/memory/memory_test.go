package memory

import (
	"bytes"
	"errors"
	"testing"

	"nesgo/internal/cartridge"
	"nesgo/internal/input"
	"nesgo/internal/ppu"
)

func testMemory(t *testing.T) *Memory {
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
	p := ppu.New(cart)
	return New(p, cart, input.New(), input.New())
}

func TestRAMMirroring(t *testing.T) {
	m := testMemory(t)
	m.Write(0x0000, 0x42)
	for _, mirror := range []uint16{0x0800, 0x1000, 0x1800} {
		if got := m.Read(mirror); got != 0x42 {
			t.Fatalf("expected RAM mirror at $%04X to read 0x42, got %02X", mirror, got)
		}
	}
}

func TestWriteToROMFaults(t *testing.T) {
	m := testMemory(t)
	m.Write(0x8000, 0xFF)
	if !errors.Is(m.Fault(), ErrWriteToROM) {
		t.Fatalf("expected ErrWriteToROM, got %v", m.Fault())
	}
}

func TestFirstFaultLatches(t *testing.T) {
	m := testMemory(t)
	m.Write(0x8000, 0xFF)          // ErrWriteToROM
	m.Write(0x2002, 0xFF)          // would be ErrWriteToReadOnlyRegister
	if !errors.Is(m.Fault(), ErrWriteToROM) {
		t.Fatalf("expected the first fault to stick, got %v", m.Fault())
	}
}

func TestReadWriteOnlyRegisterFaults(t *testing.T) {
	m := testMemory(t)
	m.Read(0x2000)
	if !errors.Is(m.Fault(), ErrReadFromWriteOnlyRegister) {
		t.Fatalf("expected ErrReadFromWriteOnlyRegister, got %v", m.Fault())
	}
}

func TestReadOAMDMARegisterFaults(t *testing.T) {
	m := testMemory(t)
	m.Read(0x4014)
	if !errors.Is(m.Fault(), ErrReadFromWriteOnlyRegister) {
		t.Fatalf("expected ErrReadFromWriteOnlyRegister for $4014 read, got %v", m.Fault())
	}
}

func TestPPURegisterMirroring(t *testing.T) {
	m := testMemory(t)
	m.Write(0x2003, 0x10) // OAMADDR via the base register
	m.Write(0x2004, 0x77) // OAMDATA, advances OAMADDR
	if got := m.Read(0x2004); got == 0 {
		t.Fatalf("expected OAM data readable through base register")
	}
	// Mirrored access at $2008-$3FFF should hit the same registers.
	m.Write(0x200B, 0x20) // mirrors $2003
}

func TestAPURegistersIgnored(t *testing.T) {
	m := testMemory(t)
	m.Write(0x4000, 0xFF)
	if m.Fault() != nil {
		t.Fatalf("expected APU register write to be silently ignored, got fault %v", m.Fault())
	}
	if got := m.Read(0x4000); got != 0 {
		t.Fatalf("expected APU register read to return 0, got %02X", got)
	}
}

func TestJoypadReadWrite(t *testing.T) {
	m := testMemory(t)
	m.joypad1.SetButton(input.ButtonA, true)
	m.Write(0x4016, 0x01) // strobe on
	m.Write(0x4016, 0x00) // strobe off, latches snapshot
	if got := m.Read(0x4016); got != 1 {
		t.Fatalf("expected first joypad1 read to report button A pressed, got %d", got)
	}
}

func TestOAMDMAQueued(t *testing.T) {
	m := testMemory(t)
	var dmaPage uint8
	called := false
	m.SetOAMDMACallback(func(page uint8) {
		called = true
		dmaPage = page
	})
	m.Write(0x4014, 0x02)
	if !called {
		t.Fatal("expected OAM DMA callback to be invoked on $4014 write")
	}
	if dmaPage != 0x02 {
		t.Fatalf("expected DMA page 0x02, got %02X", dmaPage)
	}
}
