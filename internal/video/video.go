// Package video implements the chip8.Video adapter on top of
// faiface/pixel's OpenGL-backed window, scaling each CHIP-8 pixel to a
// configurable number of host pixels.
package video

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/chippy8vm/chippy8/internal/chip8"
)

// NewWindow opens the pixelgl window the Adapter (and the keyboard
// adapter, which polls the same window) will use.
func NewWindow(title string, scale int) (*pixelgl.Window, error) {
	width := float64(chip8.DisplayWidth * scale)
	height := float64(chip8.DisplayHeight * scale)
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, width, height),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	return win, nil
}

// Adapter presents a chip8.Frame by drawing filled rectangles for every
// lit pixel, scaled up and flipped vertically (CHIP-8 row 0 is the top of
// the screen; pixel's Y axis grows upward).
type Adapter struct {
	win   *pixelgl.Window
	scale float64
}

// New wraps an already-open window. scale is pixels-per-CHIP-8-pixel.
func New(win *pixelgl.Window, scale int) *Adapter {
	return &Adapter{win: win, scale: float64(scale)}
}

func (a *Adapter) Present(frame chip8.Frame) error {
	if a.win.Closed() {
		return nil
	}
	a.win.Clear(colornames.Black)

	draw := imdraw.New(nil)
	draw.Color = pixel.RGB(1, 1, 1)

	for row := 0; row < chip8.DisplayHeight; row++ {
		for col := 0; col < chip8.DisplayWidth; col++ {
			if !frame[row*chip8.DisplayWidth+col] {
				continue
			}
			x := float64(col) * a.scale
			y := float64(chip8.DisplayHeight-1-row) * a.scale
			draw.Push(pixel.V(x, y))
			draw.Push(pixel.V(x+a.scale, y+a.scale))
			draw.Rectangle(0)
		}
	}

	draw.Draw(a.win)
	a.win.Update()
	return nil
}
