package chip8

// handler is the uniform shape every opcode handler takes: the VM to
// mutate and the raw 16-bit opcode it was dispatched for. Handlers own
// their own PC update completely, including jumps/calls/skips, so the
// dispatcher never needs a separate post-increment step.
type handler func(vm *VM, opcode uint16) error

// Field extraction conventions, applied consistently across handlers.
func opX(op uint16) uint16   { return (op >> 8) & 0xF }
func opY(op uint16) uint16   { return (op >> 4) & 0xF }
func opN(op uint16) uint16   { return op & 0xF }
func opKK(op uint16) byte    { return byte(op & 0xFF) }
func opNNN(op uint16) uint16 { return op & 0xFFF }

// group8 sub-dispatches 0x8XY_ on the low nibble.
var group8 = map[uint16]handler{
	0x0: op8XY0,
	0x1: op8XY1,
	0x2: op8XY2,
	0x3: op8XY3,
	0x4: op8XY4,
	0x5: op8XY5,
	0x6: op8XY6,
	0x7: op8XY7,
	0xE: op8XYE,
}

// groupE sub-dispatches 0xEX__ on the low byte.
var groupE = map[uint16]handler{
	0x9E: opEX9E,
	0xA1: opEXA1,
}

// groupF sub-dispatches 0xFX__ on the low byte.
var groupF = map[uint16]handler{
	0x07: opFX07,
	0x0A: opFX0A,
	0x15: opFX15,
	0x18: opFX18,
	0x1E: opFX1E,
	0x29: opFX29,
	0x33: opFX33,
	0x55: opFX55,
	0x65: opFX65,
}

// decode classifies a 16-bit opcode by its top nibble, sub-dispatching
// the 0/8/E/F groups, and returns the handler to run. Any unmatched
// pattern is an UNSUPPORTED_OPCODE fault.
func decode(op uint16) (handler, error) {
	switch op & 0xF000 {
	case 0x0000:
		switch op & 0x0FFF {
		case 0x0E0:
			return opCLS, nil
		case 0x0EE:
			return opRET, nil
		default:
			// 0NNN: machine-code call, a no-op in modern interpreters.
			return op0NNN, nil
		}
	case 0x1000:
		return opJP, nil
	case 0x2000:
		return opCALL, nil
	case 0x3000:
		return opSEVxKK, nil
	case 0x4000:
		return opSNEVxKK, nil
	case 0x5000:
		if op&0xF != 0 {
			return nil, unsupported(op)
		}
		return opSEVxVy, nil
	case 0x6000:
		return opLDVxKK, nil
	case 0x7000:
		return opADDVxKK, nil
	case 0x8000:
		if h, ok := group8[op&0xF]; ok {
			return h, nil
		}
		return nil, unsupported(op)
	case 0x9000:
		if op&0xF != 0 {
			return nil, unsupported(op)
		}
		return opSNEVxVy, nil
	case 0xA000:
		return opLDINNN, nil
	case 0xB000:
		return opJPV0, nil
	case 0xC000:
		return opRND, nil
	case 0xD000:
		return opDRW, nil
	case 0xE000:
		if h, ok := groupE[uint16(opKK(op))]; ok {
			return h, nil
		}
		return nil, unsupported(op)
	case 0xF000:
		if h, ok := groupF[uint16(opKK(op))]; ok {
			return h, nil
		}
		return nil, unsupported(op)
	default:
		return nil, unsupported(op)
	}
}

func unsupported(op uint16) error {
	return &Fault{Code: FaultUnsupportedOpcode, Opcode: op}
}
