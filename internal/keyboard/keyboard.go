// Package keyboard implements the chip8.Keyboard adapter by polling the
// same pixelgl window the video adapter draws into.
package keyboard

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/chippy8vm/chippy8/internal/chip8"
)

// keymap maps each CHIP-8 hex key to a host key, per the conventional
// CHIP-8 layout (1 2 3 C / 4 5 6 D / 7 8 9 E / A 0 B F) projected onto
// 1 2 3 4 / Q W E R / A S D F / Z X C V.
var keymap = [chip8.KeypadSize]pixelgl.Button{
	0x0: pixelgl.KeyX,
	0x1: pixelgl.Key1,
	0x2: pixelgl.Key2,
	0x3: pixelgl.Key3,
	0x4: pixelgl.KeyQ,
	0x5: pixelgl.KeyW,
	0x6: pixelgl.KeyE,
	0x7: pixelgl.KeyA,
	0x8: pixelgl.KeyS,
	0x9: pixelgl.KeyD,
	0xA: pixelgl.KeyZ,
	0xB: pixelgl.KeyC,
	0xC: pixelgl.Key4,
	0xD: pixelgl.KeyR,
	0xE: pixelgl.KeyF,
	0xF: pixelgl.KeyV,
}

// Adapter polls a pixelgl window for the 16-key state vector and the
// Quit/Reload/Dump control events (Esc/F1/F2).
type Adapter struct {
	win *pixelgl.Window
}

// New wraps an already-open window, shared with the video adapter.
func New(win *pixelgl.Window) *Adapter {
	return &Adapter{win: win}
}

func (a *Adapter) Poll() (chip8.InputState, error) {
	a.win.UpdateInput()

	var st chip8.InputState
	if a.win.Closed() {
		st.Event = chip8.ControlQuit
		return st, nil
	}

	for i, btn := range keymap {
		st.Keys[i] = a.win.Pressed(btn)
	}

	switch {
	case a.win.JustPressed(pixelgl.KeyEscape):
		st.Event = chip8.ControlQuit
	case a.win.JustPressed(pixelgl.KeyF1):
		st.Event = chip8.ControlReload
	case a.win.JustPressed(pixelgl.KeyF2):
		st.Event = chip8.ControlDump
	}

	return st, nil
}
