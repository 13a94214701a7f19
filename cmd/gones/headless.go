package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"nesgo/internal/console"
	"nesgo/internal/frame"
	"nesgo/internal/input"
	"nesgo/internal/ppu"
)

// runHeadless runs n frames without a window and writes the final frame
// buffer out as a PPM image, for automation and the nestest-style trace
// harness (spec §6.4, §8). Grounded in the teacher's PPM dump in its GUI-less
// run path, simplified to a single end-of-run snapshot.
func runHeadless(nes *console.Console, frames int, outPath string) {
	var last *frame.Buffer
	nes.SetFrameCallback(func(p *ppu.PPU, joypad *input.Controller) {
		last = p.FrameBuffer()
	})

	if err := nes.RunFrames(frames); err != nil {
		log.Fatalf("emulation fault: %v", err)
	}

	if last == nil {
		log.Fatal("no frame was produced")
	}
	if err := writePPM(outPath, last); err != nil {
		log.Fatalf("write snapshot: %v", err)
	}
	fmt.Printf("wrote %d frames, snapshot: %s\n", frames, outPath)
}

func writePPM(path string, buf *frame.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "P6\n%d %d\n255\n", frame.Width, frame.Height)
	if _, err := w.Write(buf.Pixels[:]); err != nil {
		return err
	}
	return w.Flush()
}
