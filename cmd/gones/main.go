// Command gones runs the NES emulator core against an iNES ROM image.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"nesgo/internal/console"
	"nesgo/internal/version"
)

func main() {
	var (
		headless   = flag.Bool("headless", false, "run without a window, dumping a PPM snapshot")
		snapshot   = flag.String("snapshot", "frame.ppm", "output path for -headless mode")
		frames     = flag.Int("frames", 120, "number of frames to run in -headless mode")
		showVers   = flag.Bool("version", false, "print version information and exit")
		traceStart = flag.Uint64("trace-pc", 0, "if nonzero, start execution at this PC instead of the reset vector (nestest-style automation)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] rom.nes\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVers {
		version.PrintBuildInfo()
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	romPath := flag.Arg(0)

	f, err := os.Open(romPath)
	if err != nil {
		log.Fatalf("open rom: %v", err)
	}
	defer f.Close()

	nes, err := console.Load(f)
	if err != nil {
		log.Fatalf("load rom: %v", err)
	}

	if *traceStart != 0 {
		nes.SetPC(uint16(*traceStart))
	}

	if *headless {
		runHeadless(nes, *frames, *snapshot)
		return
	}

	ebiten.SetWindowTitle("gones")
	ebiten.SetWindowSize(256*3, 240*3)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(newGame(nes)); err != nil {
		log.Fatalf("run: %v", err)
	}
}
