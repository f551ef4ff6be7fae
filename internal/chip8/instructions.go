package chip8

// This file implements the 35 opcode handlers named in decode.go. Each
// owns its own PC update. Handlers that set VF follow the normative
// order from the specification: compute the arithmetic result into a
// temporary, write VF, then write VX — so when X==0xF, VX's write (the
// arithmetic result) is the one that lands last and wins.

func opCLS(vm *VM, op uint16) error {
	vm.display.clear()
	vm.screenDirty = true
	vm.pc += 2
	return nil
}

func opRET(vm *VM, op uint16) error {
	if vm.sp == 0 {
		return &Fault{Code: FaultStackUnderflow, Opcode: op}
	}
	vm.sp--
	vm.pc = vm.stack[vm.sp]
	return nil
}

func op0NNN(vm *VM, op uint16) error {
	vm.pc += 2
	return nil
}

func opJP(vm *VM, op uint16) error {
	vm.pc = opNNN(op)
	return nil
}

func opCALL(vm *VM, op uint16) error {
	if vm.sp == 16 {
		return &Fault{Code: FaultStackOverflow, Opcode: op}
	}
	vm.stack[vm.sp] = vm.pc + 2
	vm.sp++
	vm.pc = opNNN(op)
	return nil
}

func opSEVxKK(vm *VM, op uint16) error {
	if vm.v[opX(op)] == opKK(op) {
		vm.pc += 4
	} else {
		vm.pc += 2
	}
	return nil
}

func opSNEVxKK(vm *VM, op uint16) error {
	if vm.v[opX(op)] != opKK(op) {
		vm.pc += 4
	} else {
		vm.pc += 2
	}
	return nil
}

func opSEVxVy(vm *VM, op uint16) error {
	if vm.v[opX(op)] == vm.v[opY(op)] {
		vm.pc += 4
	} else {
		vm.pc += 2
	}
	return nil
}

func opSNEVxVy(vm *VM, op uint16) error {
	if vm.v[opX(op)] != vm.v[opY(op)] {
		vm.pc += 4
	} else {
		vm.pc += 2
	}
	return nil
}

func opLDVxKK(vm *VM, op uint16) error {
	vm.v[opX(op)] = opKK(op)
	vm.pc += 2
	return nil
}

func opADDVxKK(vm *VM, op uint16) error {
	vm.v[opX(op)] += opKK(op) // wraps mod 256; VF unchanged
	vm.pc += 2
	return nil
}

func op8XY0(vm *VM, op uint16) error {
	vm.v[opX(op)] = vm.v[opY(op)]
	vm.pc += 2
	return nil
}

func op8XY1(vm *VM, op uint16) error {
	vm.v[opX(op)] |= vm.v[opY(op)]
	vm.pc += 2
	return nil
}

func op8XY2(vm *VM, op uint16) error {
	vm.v[opX(op)] &= vm.v[opY(op)]
	vm.pc += 2
	return nil
}

func op8XY3(vm *VM, op uint16) error {
	vm.v[opX(op)] ^= vm.v[opY(op)]
	vm.pc += 2
	return nil
}

func op8XY4(vm *VM, op uint16) error {
	x, y := opX(op), opY(op)
	sum := uint16(vm.v[x]) + uint16(vm.v[y])
	var flag byte
	if sum > 0xFF {
		flag = 1
	}
	result := byte(sum)
	vm.v[0xF] = flag
	vm.v[x] = result
	vm.pc += 2
	return nil
}

func op8XY5(vm *VM, op uint16) error {
	x, y := opX(op), opY(op)
	var flag byte
	if vm.v[x] >= vm.v[y] {
		flag = 1
	}
	result := vm.v[x] - vm.v[y]
	vm.v[0xF] = flag
	vm.v[x] = result
	vm.pc += 2
	return nil
}

func op8XY6(vm *VM, op uint16) error {
	x := opX(op)
	src := vm.v[x]
	if vm.opts.Original {
		src = vm.v[opY(op)]
	}
	flag := src & 0x1
	result := src >> 1
	vm.v[0xF] = flag
	vm.v[x] = result
	vm.pc += 2
	return nil
}

func op8XY7(vm *VM, op uint16) error {
	x, y := opX(op), opY(op)
	var flag byte
	if vm.v[y] >= vm.v[x] {
		flag = 1
	}
	result := vm.v[y] - vm.v[x]
	vm.v[0xF] = flag
	vm.v[x] = result
	vm.pc += 2
	return nil
}

func op8XYE(vm *VM, op uint16) error {
	x := opX(op)
	src := vm.v[x]
	if vm.opts.Original {
		src = vm.v[opY(op)]
	}
	flag := (src >> 7) & 0x1
	result := src << 1
	vm.v[0xF] = flag
	vm.v[x] = result
	vm.pc += 2
	return nil
}

func opLDINNN(vm *VM, op uint16) error {
	vm.i = opNNN(op)
	vm.pc += 2
	return nil
}

func opJPV0(vm *VM, op uint16) error {
	vm.pc = (opNNN(op) + uint16(vm.v[0])) & 0x0FFF
	return nil
}

func opRND(vm *VM, op uint16) error {
	vm.v[opX(op)] = vm.rng.Uint8() & opKK(op)
	vm.pc += 2
	return nil
}

func opDRW(vm *VM, op uint16) error {
	x0 := int(vm.v[opX(op)]) % DisplayWidth
	y0 := int(vm.v[opY(op)]) % DisplayHeight
	rows := int(opN(op))

	collided := vm.display.blit(&vm.memory, vm.i, x0, y0, rows)

	var flag byte
	if collided {
		flag = 1
	}
	vm.v[0xF] = flag
	vm.screenDirty = true
	vm.pc += 2
	return nil
}

func opEX9E(vm *VM, op uint16) error {
	idx := int(vm.v[opX(op)] & 0xF)
	if vm.keypad.isPressed(idx) {
		vm.pc += 4
	} else {
		vm.pc += 2
	}
	return nil
}

func opEXA1(vm *VM, op uint16) error {
	idx := int(vm.v[opX(op)] & 0xF)
	if !vm.keypad.isPressed(idx) {
		vm.pc += 4
	} else {
		vm.pc += 2
	}
	return nil
}

func opFX07(vm *VM, op uint16) error {
	vm.v[opX(op)] = vm.delayTimer
	vm.pc += 2
	return nil
}

// opFX0A blocks by simply not advancing PC; the next cycle refetches the
// same instruction and checks again. The loop keeps polling input and
// ticking timers while this happens.
func opFX0A(vm *VM, op uint16) error {
	if idx, ok := vm.keypad.lowestPressed(); ok {
		vm.v[opX(op)] = byte(idx)
		vm.pc += 2
	}
	return nil
}

func opFX15(vm *VM, op uint16) error {
	vm.delayTimer = vm.v[opX(op)]
	vm.pc += 2
	return nil
}

func opFX18(vm *VM, op uint16) error {
	vm.soundTimer = vm.v[opX(op)]
	vm.pc += 2
	return nil
}

func opFX1E(vm *VM, op uint16) error {
	x := opX(op)
	sum := uint32(vm.i) + uint32(vm.v[x])
	var flag byte
	if sum > 0xFFF {
		flag = 1
	}
	vm.v[0xF] = flag
	vm.i = uint16(sum & 0xFFF)
	vm.pc += 2
	return nil
}

func opFX29(vm *VM, op uint16) error {
	vm.i = FontBase + uint16(vm.v[opX(op)]&0xF)*fontBytesPerGlyph
	vm.pc += 2
	return nil
}

// opFX33 and the FX55/FX65 register block transfer below all address
// memory at vm.i plus an offset. I can legally reach 0xFFF (invariant 4),
// so the addresses these loops touch can run past the end of the fixed
// memory array; any such address is simply out of range and skipped
// (writes are dropped, reads yield 0) rather than indexed directly.
func opFX33(vm *VM, op uint16) error {
	value := vm.v[opX(op)]
	digits := [3]byte{value / 100, (value / 10) % 10, value % 10}
	for n, d := range digits {
		if addr := vm.i + uint16(n); addr < MemorySize {
			vm.memory[addr] = d
		}
	}
	vm.pc += 2
	return nil
}

func opFX55(vm *VM, op uint16) error {
	x := opX(op)
	for r := uint16(0); r <= x; r++ {
		if addr := vm.i + r; addr < MemorySize {
			vm.memory[addr] = vm.v[r]
		}
	}
	if vm.opts.Original {
		vm.i += x + 1
	}
	vm.pc += 2
	return nil
}

func opFX65(vm *VM, op uint16) error {
	x := opX(op)
	for r := uint16(0); r <= x; r++ {
		var b byte
		if addr := vm.i + r; addr < MemorySize {
			b = vm.memory[addr]
		}
		vm.v[r] = b
	}
	if vm.opts.Original {
		vm.i += x + 1
	}
	vm.pc += 2
	return nil
}
