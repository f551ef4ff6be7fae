package chip8

import "fmt"

// Options selects the two runtime knobs the standard CHIP-8 instruction
// set leaves underspecified. Original switches 8XY6/8XYE/FX55/FX65 to the
// Cowgod dialect. Verbose is stored on the VM but not read by it; the
// fault logging and CPU dump of Loop.Run follow LoopConfig.Verbose.
type Options struct {
	Original bool
	Verbose  bool
}

// VM is a CHIP-8 virtual machine: memory, registers, stack, timers,
// framebuffer, and keypad. It is exclusively owned by its caller; no
// internal state is shared across goroutines.
type VM struct {
	memory [MemorySize]byte

	v  [16]byte
	i  uint16
	pc uint16

	stack [16]uint16
	sp    uint8

	delayTimer byte
	soundTimer byte

	display display
	keypad  keypad

	opcode uint16
	opts   Options

	screenDirty bool

	rng RNG

	rom ROM
}

// New constructs a VM: zeroes memory and registers, loads the font table,
// sets PC to ProgramStart, and seeds the RNG.
func New(opts Options) *VM {
	vm := &VM{
		pc:   ProgramStart,
		opts: opts,
		rng:  newMathRandRNG(),
	}
	vm.loadFont()
	return vm
}

// SetRNG overrides the VM's random source. Intended for deterministic
// tests; production callers rely on the seed-once-at-construction default.
func (vm *VM) SetRNG(r RNG) {
	vm.rng = r
}

// LoadROM copies rom's bytes into memory at ProgramStart and remembers
// the ROM so Reload can restore it later.
func (vm *VM) LoadROM(rom ROM) error {
	if len(rom.Data) > MaxROMSize {
		return fmt.Errorf("%w: %s is %d bytes, max %d", ErrROMTooLarge, rom.Name, len(rom.Data), MaxROMSize)
	}
	vm.rom = rom
	copy(vm.memory[ProgramStart:], rom.Data)
	return nil
}

// Reload resets the VM to its canonical initial state and re-copies the
// most recently loaded ROM, driven by the keyboard adapter's Reload
// control event.
func (vm *VM) Reload() {
	rom := vm.rom
	vm.memory = [MemorySize]byte{}
	vm.v = [16]byte{}
	vm.i = 0
	vm.pc = ProgramStart
	vm.stack = [16]uint16{}
	vm.sp = 0
	vm.delayTimer = 0
	vm.soundTimer = 0
	vm.display.clear()
	vm.keypad = keypad{}
	vm.opcode = 0
	vm.screenDirty = false
	vm.loadFont()
	copy(vm.memory[ProgramStart:], rom.Data)
	vm.rom = rom
}

// SetKeys refreshes the keypad state vector from the most recent
// keyboard poll.
func (vm *VM) SetKeys(states [KeypadSize]bool) {
	vm.keypad.setAll(states)
}

// Step fetches, decodes, and executes exactly one instruction, then
// returns. PC advances (or not, for a blocking FX0A) entirely inside the
// handler that ran.
func (vm *VM) Step() error {
	opcode := uint16(vm.memory[vm.pc])<<8 | uint16(vm.memory[vm.pc+1])
	vm.opcode = opcode

	h, err := decode(opcode)
	if err != nil {
		if f, ok := err.(*Fault); ok {
			f.PC = vm.pc
		}
		return err
	}
	if err := h(vm, opcode); err != nil {
		if f, ok := err.(*Fault); ok {
			f.PC = vm.pc
		}
		return err
	}
	return nil
}

// TickTimers decrements the delay and sound timers by one, clamped at
// zero. The caller is responsible for calling this at 60 Hz.
func (vm *VM) TickTimers() {
	if vm.delayTimer > 0 {
		vm.delayTimer--
	}
	if vm.soundTimer > 0 {
		vm.soundTimer--
	}
}

// ScreenDirty reports whether a CLS or DXYN has run since the last
// ClearDirty call, whether or not it changed any pixel.
func (vm *VM) ScreenDirty() bool {
	return vm.screenDirty
}

// ClearDirty clears the screen-dirty flag after a present.
func (vm *VM) ClearDirty() {
	vm.screenDirty = false
}

// Frame returns a snapshot of the current framebuffer.
func (vm *VM) Frame() Frame {
	return vm.display.pixels
}

// SoundTimer returns the current sound timer value; a caller gates audio
// on whenever it is non-zero.
func (vm *VM) SoundTimer() byte {
	return vm.soundTimer
}

// PC, SP, I expose CPU state for tests and for the verbose CPU dump.
func (vm *VM) PC() uint16 { return vm.pc }
func (vm *VM) SP() uint8  { return vm.sp }
func (vm *VM) I() uint16  { return vm.i }
func (vm *VM) V(r int) byte {
	return vm.v[r]
}
func (vm *VM) DelayTimer() byte { return vm.delayTimer }

// Dump renders a one-shot human-readable CPU dump: opcode, PC, SP, I,
// V0..VF, and the live stack. Used on an execution fault in verbose mode
// and on an on-demand Dump control event.
func (vm *VM) Dump() string {
	s := fmt.Sprintf(
		"opcode=%04X pc=%04X sp=%02X i=%04X\n"+
			"v0=%02X v1=%02X v2=%02X v3=%02X v4=%02X v5=%02X v6=%02X v7=%02X\n"+
			"v8=%02X v9=%02X va=%02X vb=%02X vc=%02X vd=%02X ve=%02X vf=%02X\n",
		vm.opcode, vm.pc, vm.sp, vm.i,
		vm.v[0], vm.v[1], vm.v[2], vm.v[3], vm.v[4], vm.v[5], vm.v[6], vm.v[7],
		vm.v[8], vm.v[9], vm.v[10], vm.v[11], vm.v[12], vm.v[13], vm.v[14], vm.v[15],
	)
	s += "stack:"
	for i := uint8(0); i < vm.sp; i++ {
		s += fmt.Sprintf(" %04X", vm.stack[i])
	}
	return s
}
