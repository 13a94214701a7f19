package cpu

import "testing"

func TestZeroPageXWrapsWithinPage(t *testing.T) {
	c, bus := newTestCPU()
	c.X = 0xFF
	bus.setBytes(0x8000, 0xB5, 0x80) // LDA $80,X -> should wrap to $7F, not $017F
	bus.data[0x007F] = 0x55
	c.Step()
	if c.A != 0x55 {
		t.Fatalf("expected zero-page,X wrap to read $007F, got A=%02X", c.A)
	}
}

func TestAbsoluteXPageCrossAddsCycle(t *testing.T) {
	c, bus := newTestCPU()
	c.X = 0x01
	bus.setBytes(0x8000, 0xBD, 0xFF, 0x10) // LDA $10FF,X -> $1100, crosses page
	bus.data[0x1100] = 0x11
	cycles := c.Step()
	if cycles != 5 { // base 4 + 1 page-cross penalty
		t.Fatalf("expected 5 cycles for page-crossing absolute,X read, got %d", cycles)
	}
}

func TestIndexedIndirectAddressing(t *testing.T) {
	c, bus := newTestCPU()
	c.X = 0x04
	bus.setBytes(0x8000, 0xA1, 0x20) // LDA ($20,X)
	bus.setBytes(0x0024, 0x00, 0x90) // pointer -> $9000
	bus.data[0x9000] = 0x77
	c.Step()
	if c.A != 0x77 {
		t.Fatalf("expected indexed-indirect load of 0x77, got %02X", c.A)
	}
}

func TestIndirectIndexedAddressing(t *testing.T) {
	c, bus := newTestCPU()
	c.Y = 0x10
	bus.setBytes(0x8000, 0xB1, 0x20) // LDA ($20),Y
	bus.setBytes(0x0020, 0x00, 0x90) // base -> $9000
	bus.data[0x9010] = 0x88
	c.Step()
	if c.A != 0x88 {
		t.Fatalf("expected indirect-indexed load of 0x88, got %02X", c.A)
	}
}
