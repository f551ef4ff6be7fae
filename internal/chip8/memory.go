// Package chip8 implements the CHIP-8 virtual machine: its memory model,
// register file, decode/dispatch, per-opcode semantics, framebuffer, and
// the timing loop that paces instruction throughput against the 60 Hz
// timers. Video, audio, and keyboard are external collaborators the VM
// consumes through the interfaces in adapters.go.
package chip8

const (
	// MemorySize is the total addressable byte range, 0x000-0xFFF.
	MemorySize = 4096

	// ProgramStart is where loaded ROM bytes begin; 0x000-0x1FF is
	// reserved for interpreter use.
	ProgramStart = 0x200

	// MaxROMSize is the largest ROM that fits between ProgramStart and
	// the top of memory.
	MaxROMSize = MemorySize - ProgramStart

	// FontBase is the address of the built-in 5-byte-per-glyph hex font.
	FontBase = 0x050

	fontBytesPerGlyph = 5
	fontGlyphCount    = 16
)

// font is the standard CHIP-8 hexadecimal font, 5 bytes per glyph.
var font = [fontBytesPerGlyph * fontGlyphCount]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

func (vm *VM) loadFont() {
	copy(vm.memory[FontBase:FontBase+len(font)], font[:])
}
