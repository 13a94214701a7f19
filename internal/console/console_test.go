package console

import (
	"bytes"
	"testing"

	"nesgo/internal/input"
	"nesgo/internal/ppu"
)

// buildROM assembles a minimal NROM image with prg placed at the start of
// the PRG bank and the reset vector pointing at it.
func buildROM(t *testing.T, prg []uint8) []byte {
	t.Helper()
	header := make([]uint8, 16)
	copy(header, []uint8{'N', 'E', 'S', 0x1A})
	header[4] = 1
	header[5] = 1

	prgBank := make([]uint8, 16384)
	copy(prgBank, prg)
	prgBank[0x3FFC] = 0x00 // reset vector low -> $8000
	prgBank[0x3FFD] = 0x80

	var buf bytes.Buffer
	buf.Write(header)
	buf.Write(prgBank)
	buf.Write(make([]uint8, 8192))
	return buf.Bytes()
}

func TestLoadAndRunToBRK(t *testing.T) {
	rom := buildROM(t, []uint8{0xA9, 0x42, 0x00}) // LDA #$42, BRK
	nes, err := Load(bytes.NewReader(rom))
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if err := nes.Run(); err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	if !nes.CPU.Halted {
		t.Fatal("expected CPU halted after BRK")
	}
	if nes.CPU.A != 0x42 {
		t.Fatalf("expected A=0x42, got %02X", nes.CPU.A)
	}
}

func TestRunStopsOnFault(t *testing.T) {
	// STA $8000 (write to ROM), then an infinite loop the run should never reach.
	rom := buildROM(t, []uint8{0x8D, 0x00, 0x80, 0x4C, 0x03, 0x80})
	nes, err := Load(bytes.NewReader(rom))
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if err := nes.Run(); err == nil {
		t.Fatal("expected a fault from writing to PRG ROM")
	}
}

func TestRunFramesCompletesRequestedCount(t *testing.T) {
	rom := buildROM(t, []uint8{0xEA, 0x4C, 0x00, 0x80}) // NOP; JMP $8000
	nes, err := Load(bytes.NewReader(rom))
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	frameCount := 0
	nes.SetFrameCallback(func(_ *ppu.PPU, _ *input.Controller) {
		frameCount++
	})
	if err := nes.RunFrames(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frameCount != 2 {
		t.Fatalf("expected exactly 2 frame callbacks, got %d", frameCount)
	}
}
