package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"nesgo/internal/console"
	"nesgo/internal/frame"
	"nesgo/internal/input"
	"nesgo/internal/ppu"
)

// keyMap pairs an ebiten key with the controller button it drives. Player 1
// gets both the arrow cluster and a WASD/ZX alternative, matching the
// teacher's default bindings (spec §6.3 leaves the mapping to the host).
var keyMap = map[ebiten.Key]input.Button{
	ebiten.KeyArrowUp:    input.ButtonUp,
	ebiten.KeyArrowDown:  input.ButtonDown,
	ebiten.KeyArrowLeft:  input.ButtonLeft,
	ebiten.KeyArrowRight: input.ButtonRight,
	ebiten.KeyW:          input.ButtonUp,
	ebiten.KeyS:          input.ButtonDown,
	ebiten.KeyA:          input.ButtonLeft,
	ebiten.KeyD:          input.ButtonRight,
	ebiten.KeyZ:          input.ButtonA,
	ebiten.KeyX:          input.ButtonB,
	ebiten.KeyEnter:      input.ButtonStart,
	ebiten.KeySpace:      input.ButtonSelect,
}

// game implements ebiten.Game, driving the Console one frame's worth of CPU
// instructions per Update and presenting the PPU's last completed frame
// buffer in Draw. It owns no emulation state itself.
type game struct {
	console *console.Console
	screen  *ebiten.Image
	pixels  []byte // RGBA scratch reused across frames
	latest  *frame.Buffer
}

func newGame(c *console.Console) *game {
	g := &game{
		console: c,
		screen:  ebiten.NewImage(frame.Width, frame.Height),
		pixels:  make([]byte, frame.Width*frame.Height*4),
	}
	c.SetFrameCallback(func(p *ppu.PPU, joypad *input.Controller) {
		g.latest = p.FrameBuffer()
	})
	return g
}

// Update polls keyboard state into joypad 1 and runs CPU instructions until
// the PPU completes a frame (spec §5 ordering guarantee 3: the frame
// callback fires synchronously from within Tick).
func (g *game) Update() error {
	for key, button := range keyMap {
		g.console.Joypad1().SetButton(button, ebiten.IsKeyPressed(key))
	}

	for !g.console.CPU.Halted {
		before := g.console.Bus.PPU.Scanline()
		g.console.Step()
		if err := g.console.Bus.Fault(); err != nil {
			return err
		}
		if err := g.console.Bus.PPU.Fault(); err != nil {
			return err
		}
		if g.console.Bus.PPU.Scanline() < before {
			break
		}
	}
	return nil
}

// Draw uploads the most recently completed frame buffer and blits it
// scaled to the window.
func (g *game) Draw(screen *ebiten.Image) {
	if g.latest == nil {
		screen.Fill(color.Black)
		return
	}

	for i := 0; i < frame.Width*frame.Height; i++ {
		g.pixels[i*4+0] = g.latest.Pixels[i*3+0]
		g.pixels[i*4+1] = g.latest.Pixels[i*3+1]
		g.pixels[i*4+2] = g.latest.Pixels[i*3+2]
		g.pixels[i*4+3] = 0xFF
	}
	g.screen.WritePixels(g.pixels)

	bounds := screen.Bounds()
	sx := float64(bounds.Dx()) / float64(frame.Width)
	sy := float64(bounds.Dy()) / float64(frame.Height)
	scale := sx
	if sy < scale {
		scale = sy
	}
	offX := (float64(bounds.Dx()) - float64(frame.Width)*scale) / 2
	offY := (float64(bounds.Dy()) - float64(frame.Height)*scale) / 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offX, offY)
	screen.DrawImage(g.screen, op)
}

// Layout implements ebiten.Game: the window is freely resizable and the
// frame is letterboxed to preserve the NES 256x240 aspect ratio.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
