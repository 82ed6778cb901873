package chip8

import (
	"errors"
	"fmt"
)

var (
	// Control flow errors. Any of these moves the machine to Finished.
	ErrStackOverflow  = errors.New("stack overflow")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrPCOutOfBounds  = errors.New("program counter out of bounds")

	// Caller contract errors.
	ErrProgramTooLarge = errors.New("rom is larger than program / data space")
	ErrKeyOutOfRange   = errors.New("key index out of range")

	// ErrDecode matches any *DecodeError with errors.Is.
	ErrDecode = errors.New("unknown opcode")
)

// DecodeError reports an opcode that matches no instruction pattern.
type DecodeError struct {
	Opcode uint16

	// PC is the address the opcode was fetched from, valid when Fetched
	// is set. Errors from Decode itself carry no address.
	PC      uint16
	Fetched bool
}

func (e *DecodeError) Error() string {
	if !e.Fetched {
		return fmt.Sprintf("unknown opcode: 0x%04X", e.Opcode)
	}
	return fmt.Sprintf("unknown opcode: 0x%04X at 0x%03X", e.Opcode, e.PC)
}

// Is makes errors.Is(err, ErrDecode) hold for every DecodeError.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
