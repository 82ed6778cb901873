package chip8

import "fmt"

// Reference: http://devernay.free.fr/hacks/chip8/C8TECH10.HTM

// Op identifies an instruction.
type Op uint8

// The original instruction set, minus 0NNN (SYS), which only ever called
// into RCA 1802 machine code and is not decoded. 0000 is kept as a no-op so
// a program running into zeroed memory walks on until PC leaves memory.
const (
	OpInvalid    Op = iota
	OpNop           // 0000
	OpClear         // 00E0
	OpReturn        // 00EE
	OpJump          // 1NNN
	OpCall          // 2NNN
	OpSkipEqByte    // 3XNN
	OpSkipNeByte    // 4XNN
	OpSkipEqReg     // 5XY0
	OpLoadByte      // 6XNN
	OpAddByte       // 7XNN
	OpLoadReg       // 8XY0
	OpOr            // 8XY1
	OpAnd           // 8XY2
	OpXor           // 8XY3
	OpAdd           // 8XY4
	OpSub           // 8XY5
	OpShiftRight    // 8XY6
	OpSubN          // 8XY7
	OpShiftLeft     // 8XYE
	OpSkipNeReg     // 9XY0
	OpLoadIndex     // ANNN
	OpJumpV0        // BNNN
	OpRandom        // CXNN
	OpDraw          // DXYN
	OpSkipKey       // EX9E
	OpSkipNotKey    // EXA1
	OpLoadDelay     // FX07
	OpWaitKey       // FX0A
	OpSetDelay      // FX15
	OpSetSound      // FX18
	OpAddIndex      // FX1E
	OpLoadFont      // FX29
	OpBCD           // FX33
	OpStore         // FX55
	OpLoad          // FX65
)

var mnemonics = [...]string{
	OpInvalid:    "???",
	OpNop:        "NOP",
	OpClear:      "CLS",
	OpReturn:     "RET",
	OpJump:       "JP",
	OpCall:       "CALL",
	OpSkipEqByte: "SE",
	OpSkipNeByte: "SNE",
	OpSkipEqReg:  "SE",
	OpLoadByte:   "LD",
	OpAddByte:    "ADD",
	OpLoadReg:    "LD",
	OpOr:         "OR",
	OpAnd:        "AND",
	OpXor:        "XOR",
	OpAdd:        "ADD",
	OpSub:        "SUB",
	OpShiftRight: "SHR",
	OpSubN:       "SUBN",
	OpShiftLeft:  "SHL",
	OpSkipNeReg:  "SNE",
	OpLoadIndex:  "LD",
	OpJumpV0:     "JP",
	OpRandom:     "RND",
	OpDraw:       "DRW",
	OpSkipKey:    "SKP",
	OpSkipNotKey: "SKNP",
	OpLoadDelay:  "LD",
	OpWaitKey:    "LD",
	OpSetDelay:   "LD",
	OpSetSound:   "LD",
	OpAddIndex:   "ADD",
	OpLoadFont:   "LD",
	OpBCD:        "LD",
	OpStore:      "LD",
	OpLoad:       "LD",
}

// String returns the mnemonic of the operation.
func (op Op) String() string {
	if int(op) < len(mnemonics) {
		return mnemonics[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Instruction is a decoded opcode. Only the operand fields the Op uses are
// set; the rest are zero.
type Instruction struct {
	Op Op

	X   byte   // register index, second nibble
	Y   byte   // register index, third nibble
	N   byte   // 4-bit immediate, fourth nibble
	NN  byte   // 8-bit immediate, low byte
	NNN uint16 // 12-bit address
}

// Decode maps a 16-bit opcode to its instruction. It returns a *DecodeError
// for words that are not part of the instruction set.
func Decode(opcode uint16) (Instruction, error) {
	n1 := byte(opcode >> 12)
	x := byte(opcode>>8) & 0xF
	y := byte(opcode>>4) & 0xF
	n := byte(opcode) & 0xF
	nn := byte(opcode)
	nnn := opcode & 0x0FFF

	xnn := func(op Op) (Instruction, error) { return Instruction{Op: op, X: x, NN: nn}, nil }
	xy := func(op Op) (Instruction, error) { return Instruction{Op: op, X: x, Y: y}, nil }
	addr := func(op Op) (Instruction, error) { return Instruction{Op: op, NNN: nnn}, nil }
	reg := func(op Op) (Instruction, error) { return Instruction{Op: op, X: x}, nil }

	switch n1 {
	case 0x0:
		switch opcode {
		case 0x0000:
			return Instruction{Op: OpNop}, nil
		case 0x00E0:
			return Instruction{Op: OpClear}, nil
		case 0x00EE:
			return Instruction{Op: OpReturn}, nil
		}
	case 0x1:
		return addr(OpJump)
	case 0x2:
		return addr(OpCall)
	case 0x3:
		return xnn(OpSkipEqByte)
	case 0x4:
		return xnn(OpSkipNeByte)
	case 0x5:
		if n == 0x0 {
			return xy(OpSkipEqReg)
		}
	case 0x6:
		return xnn(OpLoadByte)
	case 0x7:
		return xnn(OpAddByte)
	case 0x8:
		switch n {
		case 0x0:
			return xy(OpLoadReg)
		case 0x1:
			return xy(OpOr)
		case 0x2:
			return xy(OpAnd)
		case 0x3:
			return xy(OpXor)
		case 0x4:
			return xy(OpAdd)
		case 0x5:
			return xy(OpSub)
		case 0x6:
			return xy(OpShiftRight)
		case 0x7:
			return xy(OpSubN)
		case 0xE:
			return xy(OpShiftLeft)
		}
	case 0x9:
		if n == 0x0 {
			return xy(OpSkipNeReg)
		}
	case 0xA:
		return addr(OpLoadIndex)
	case 0xB:
		return addr(OpJumpV0)
	case 0xC:
		return xnn(OpRandom)
	case 0xD:
		return Instruction{Op: OpDraw, X: x, Y: y, N: n}, nil
	case 0xE:
		switch nn {
		case 0x9E:
			return reg(OpSkipKey)
		case 0xA1:
			return reg(OpSkipNotKey)
		}
	case 0xF:
		switch nn {
		case 0x07:
			return reg(OpLoadDelay)
		case 0x0A:
			return reg(OpWaitKey)
		case 0x15:
			return reg(OpSetDelay)
		case 0x18:
			return reg(OpSetSound)
		case 0x1E:
			return reg(OpAddIndex)
		case 0x29:
			return reg(OpLoadFont)
		case 0x33:
			return reg(OpBCD)
		case 0x55:
			return reg(OpStore)
		case 0x65:
			return reg(OpLoad)
		}
	}
	return Instruction{}, &DecodeError{Opcode: opcode}
}

// String renders the instruction in Cowgod's assembler syntax.
func (in Instruction) String() string {
	m := in.Op.String()
	switch in.Op {
	case OpNop, OpClear, OpReturn:
		return m
	case OpJump, OpCall:
		return fmt.Sprintf("%s 0x%03X", m, in.NNN)
	case OpJumpV0:
		return fmt.Sprintf("%s V0, 0x%03X", m, in.NNN)
	case OpLoadIndex:
		return fmt.Sprintf("%s I, 0x%03X", m, in.NNN)
	case OpSkipEqByte, OpSkipNeByte, OpLoadByte, OpAddByte, OpRandom:
		return fmt.Sprintf("%s V%X, 0x%02X", m, in.X, in.NN)
	case OpSkipEqReg, OpSkipNeReg, OpLoadReg, OpOr, OpAnd, OpXor,
		OpAdd, OpSub, OpSubN, OpShiftRight, OpShiftLeft:
		return fmt.Sprintf("%s V%X, V%X", m, in.X, in.Y)
	case OpDraw:
		return fmt.Sprintf("%s V%X, V%X, 0x%X", m, in.X, in.Y, in.N)
	case OpSkipKey, OpSkipNotKey:
		return fmt.Sprintf("%s V%X", m, in.X)
	case OpLoadDelay:
		return fmt.Sprintf("%s V%X, DT", m, in.X)
	case OpWaitKey:
		return fmt.Sprintf("%s V%X, K", m, in.X)
	case OpSetDelay:
		return fmt.Sprintf("%s DT, V%X", m, in.X)
	case OpSetSound:
		return fmt.Sprintf("%s ST, V%X", m, in.X)
	case OpAddIndex:
		return fmt.Sprintf("%s I, V%X", m, in.X)
	case OpLoadFont:
		return fmt.Sprintf("%s F, V%X", m, in.X)
	case OpBCD:
		return fmt.Sprintf("%s B, V%X", m, in.X)
	case OpStore:
		return fmt.Sprintf("%s [I], V%X", m, in.X)
	case OpLoad:
		return fmt.Sprintf("%s V%X, [I]", m, in.X)
	}
	return m
}
