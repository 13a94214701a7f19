package cartridge

import (
	"bytes"
	"errors"
	"testing"
)

func validHeader(prgBanks, chrBanks, flags6, flags7 uint8) []uint8 {
	h := make([]uint8, headerSize)
	copy(h, []uint8{'N', 'E', 'S', 0x1A})
	h[4] = prgBanks
	h[5] = chrBanks
	h[6] = flags6
	h[7] = flags7
	return h
}

func buildImage(header []uint8, prg, chr []uint8) []byte {
	var buf bytes.Buffer
	buf.Write(header)
	buf.Write(prg)
	buf.Write(chr)
	return buf.Bytes()
}

func TestLoadValidNROM(t *testing.T) {
	header := validHeader(1, 1, 0, 0)
	prg := make([]uint8, prgBankSize)
	chr := make([]uint8, chrBankSize)
	prg[0] = 0xEA

	cart, err := Load(bytes.NewReader(buildImage(header, prg, chr)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Mapper != 0 {
		t.Fatalf("expected mapper 0, got %d", cart.Mapper)
	}
	if cart.Mirror != MirrorHorizontal {
		t.Fatalf("expected horizontal mirroring by default")
	}
	if cart.ReadPRG(0x8000) != 0xEA {
		t.Fatalf("expected first PRG byte 0xEA")
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	header := validHeader(1, 1, 0, 0)
	header[0] = 'X'
	_, err := Load(bytes.NewReader(buildImage(header, make([]uint8, prgBankSize), make([]uint8, chrBankSize))))
	if !errors.Is(err, ErrInvalidHeader) {
		t.Fatalf("expected ErrInvalidHeader, got %v", err)
	}
}

func TestLoadRejectsUnsupportedMapper(t *testing.T) {
	header := validHeader(1, 1, 0x10, 0) // mapper nibble = 1
	_, err := Load(bytes.NewReader(buildImage(header, make([]uint8, prgBankSize), make([]uint8, chrBankSize))))
	if !errors.Is(err, ErrUnsupportedMapper) {
		t.Fatalf("expected ErrUnsupportedMapper, got %v", err)
	}
}

func TestLoadSkipsTrainer(t *testing.T) {
	header := validHeader(1, 1, 0x04, 0) // trainer present
	trainer := make([]uint8, trainerSize)
	prg := make([]uint8, prgBankSize)
	prg[0] = 0x55
	chr := make([]uint8, chrBankSize)

	var buf bytes.Buffer
	buf.Write(header)
	buf.Write(trainer)
	buf.Write(prg)
	buf.Write(chr)

	cart, err := Load(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.ReadPRG(0x8000) != 0x55 {
		t.Fatal("expected trainer bytes skipped before PRG ROM")
	}
}

func TestPRGMirrorsSingleBank(t *testing.T) {
	header := validHeader(1, 1, 0, 0)
	prg := make([]uint8, prgBankSize)
	prg[0] = 0x11
	cart, err := Load(bytes.NewReader(buildImage(header, prg, make([]uint8, chrBankSize))))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.ReadPRG(0xC000) != 0x11 {
		t.Fatal("expected 16KiB PRG to mirror into the upper half of the window")
	}
}

func TestCHRRAMSynthesizedWhenAbsent(t *testing.T) {
	header := validHeader(1, 0, 0, 0) // 0 CHR banks
	prg := make([]uint8, prgBankSize)
	cart, err := Load(bytes.NewReader(buildImage(header, prg, nil)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cart.WriteCHR(0x0000, 0x99)
	if cart.ReadCHR(0x0000) != 0x99 {
		t.Fatal("expected synthesized CHR RAM to be writable")
	}
}

func TestVerticalMirroring(t *testing.T) {
	header := validHeader(1, 1, 0x01, 0)
	cart, err := Load(bytes.NewReader(buildImage(header, make([]uint8, prgBankSize), make([]uint8, chrBankSize))))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Mirror != MirrorVertical {
		t.Fatalf("expected vertical mirroring, got %v", cart.Mirror)
	}
}
