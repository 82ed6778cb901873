package chip8

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		opcode uint16
		want   Instruction
		asm    string
	}{
		{0x0000, Instruction{Op: OpNop}, "NOP"},
		{0x00E0, Instruction{Op: OpClear}, "CLS"},
		{0x00EE, Instruction{Op: OpReturn}, "RET"},
		{0x1ABC, Instruction{Op: OpJump, NNN: 0xABC}, "JP 0xABC"},
		{0x2ABC, Instruction{Op: OpCall, NNN: 0xABC}, "CALL 0xABC"},
		{0x3A42, Instruction{Op: OpSkipEqByte, X: 0xA, NN: 0x42}, "SE VA, 0x42"},
		{0x4A42, Instruction{Op: OpSkipNeByte, X: 0xA, NN: 0x42}, "SNE VA, 0x42"},
		{0x5AB0, Instruction{Op: OpSkipEqReg, X: 0xA, Y: 0xB}, "SE VA, VB"},
		{0x6A42, Instruction{Op: OpLoadByte, X: 0xA, NN: 0x42}, "LD VA, 0x42"},
		{0x7A42, Instruction{Op: OpAddByte, X: 0xA, NN: 0x42}, "ADD VA, 0x42"},
		{0x8AB0, Instruction{Op: OpLoadReg, X: 0xA, Y: 0xB}, "LD VA, VB"},
		{0x8AB1, Instruction{Op: OpOr, X: 0xA, Y: 0xB}, "OR VA, VB"},
		{0x8AB2, Instruction{Op: OpAnd, X: 0xA, Y: 0xB}, "AND VA, VB"},
		{0x8AB3, Instruction{Op: OpXor, X: 0xA, Y: 0xB}, "XOR VA, VB"},
		{0x8AB4, Instruction{Op: OpAdd, X: 0xA, Y: 0xB}, "ADD VA, VB"},
		{0x8AB5, Instruction{Op: OpSub, X: 0xA, Y: 0xB}, "SUB VA, VB"},
		{0x8AB6, Instruction{Op: OpShiftRight, X: 0xA, Y: 0xB}, "SHR VA, VB"},
		{0x8AB7, Instruction{Op: OpSubN, X: 0xA, Y: 0xB}, "SUBN VA, VB"},
		{0x8ABE, Instruction{Op: OpShiftLeft, X: 0xA, Y: 0xB}, "SHL VA, VB"},
		{0x9AB0, Instruction{Op: OpSkipNeReg, X: 0xA, Y: 0xB}, "SNE VA, VB"},
		{0xAABC, Instruction{Op: OpLoadIndex, NNN: 0xABC}, "LD I, 0xABC"},
		{0xBABC, Instruction{Op: OpJumpV0, NNN: 0xABC}, "JP V0, 0xABC"},
		{0xCA0F, Instruction{Op: OpRandom, X: 0xA, NN: 0x0F}, "RND VA, 0x0F"},
		{0xDAB5, Instruction{Op: OpDraw, X: 0xA, Y: 0xB, N: 0x5}, "DRW VA, VB, 0x5"},
		{0xEA9E, Instruction{Op: OpSkipKey, X: 0xA}, "SKP VA"},
		{0xEAA1, Instruction{Op: OpSkipNotKey, X: 0xA}, "SKNP VA"},
		{0xFA07, Instruction{Op: OpLoadDelay, X: 0xA}, "LD VA, DT"},
		{0xFA0A, Instruction{Op: OpWaitKey, X: 0xA}, "LD VA, K"},
		{0xFA15, Instruction{Op: OpSetDelay, X: 0xA}, "LD DT, VA"},
		{0xFA18, Instruction{Op: OpSetSound, X: 0xA}, "LD ST, VA"},
		{0xFA1E, Instruction{Op: OpAddIndex, X: 0xA}, "ADD I, VA"},
		{0xFA29, Instruction{Op: OpLoadFont, X: 0xA}, "LD F, VA"},
		{0xFA33, Instruction{Op: OpBCD, X: 0xA}, "LD B, VA"},
		{0xFA55, Instruction{Op: OpStore, X: 0xA}, "LD [I], VA"},
		{0xFA65, Instruction{Op: OpLoad, X: 0xA}, "LD VA, [I]"},
	}
	for _, tt := range tests {
		t.Run(tt.asm, func(t *testing.T) {
			got, err := Decode(tt.opcode)
			if err != nil {
				t.Fatalf("Decode(0x%04X) error = %v", tt.opcode, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode(0x%04X): (-want, +got)\n%s", tt.opcode, diff)
			}
			if s := got.String(); s != tt.asm {
				t.Errorf("String() = %q, want %q", s, tt.asm)
			}
		})
	}
}

func TestDecode_Unknown(t *testing.T) {
	for _, opcode := range []uint16{
		0x0001, 0x0123, 0x00E1, 0x00FF, 0x5AB1, 0x8AB8, 0x8ABF,
		0x9AB1, 0xE000, 0xEA9F, 0xF000, 0xFA0B, 0xFAFF,
	} {
		in, err := Decode(opcode)
		var de *DecodeError
		if !errors.As(err, &de) {
			t.Errorf("Decode(0x%04X) = %v, %v; want *DecodeError", opcode, in, err)
			continue
		}
		if de.Opcode != opcode {
			t.Errorf("DecodeError.Opcode = 0x%04X, want 0x%04X", de.Opcode, opcode)
		}
		if !errors.Is(err, ErrDecode) {
			t.Errorf("errors.Is(%v, ErrDecode) = false", err)
		}
		if in.Op != OpInvalid {
			t.Errorf("Decode(0x%04X).Op = %v, want OpInvalid", opcode, in.Op)
		}
	}
}

func TestDecode_All(t *testing.T) {
	// 0000, 00E0 and 00EE, ten groups with a free 12 bit operand, 5XY0 and 9XY0,
	// nine 8XY_ forms, two EX__ forms and nine FX__ forms.
	const want = 3 + 10*4096 + 2*256 + 9*256 + 2*16 + 9*16

	var valid int
	for op := 0; op <= 0xFFFF; op++ {
		_, err := Decode(uint16(op))
		if err == nil {
			valid++
		}
	}
	if valid != want {
		t.Errorf("%d opcodes decode, want %d", valid, want)
	}
}

func TestDecodeError_Error(t *testing.T) {
	_, err := Decode(0x0123)
	if got, want := err.Error(), "unknown opcode: 0x0123"; got != want {
		t.Errorf("Decode error = %q, want %q", got, want)
	}
	fetched := &DecodeError{Opcode: 0x0123, PC: 0x000, Fetched: true}
	if got, want := fetched.Error(), "unknown opcode: 0x0123 at 0x000"; got != want {
		t.Errorf("Step error = %q, want %q", got, want)
	}
}
