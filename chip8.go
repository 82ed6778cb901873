// Package chip8 is an interpreter for the original CHIP-8 virtual machine.
//
// The host drives two independent clocks: Step runs one instruction and
// TickTimers counts the delay and sound timers down, conventionally at 60 Hz.
// Rendering, ROM files, keyboard mapping and audio are left to the host,
// which talks to the Machine through Framebuffer, SetKey and the TimerSignal
// returned by TickTimers.
package chip8

import (
	cryptorand "crypto/rand"
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"time"
)

// State is the run state of a program.
type State int

const (
	Running State = iota
	Finished
)

func (s State) String() string {
	if s == Finished {
		return "Finished"
	}
	return "Running"
}

const stackDepth = 16

// Random is the source CXNN draws from. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// Option configures a Machine.
type Option func(*Machine)

// WithRandom replaces the random source, tests pass a seeded one.
func WithRandom(r Random) Option {
	return func(m *Machine) { m.random = r }
}

// WithAddIndexCarry makes FX1E set VF to 1 when I+VX leaves the 12 bit
// address space and to 0 otherwise. The COSMAC VIP never touched VF here,
// which stays the default, but some ROMs written against the Amiga
// interpreter depend on it.
func WithAddIndexCarry(enabled bool) Option {
	return func(m *Machine) { m.addIndexCarry = enabled }
}

// Machine is the whole CHIP-8 system: CPU, memory, screen, timers and keypad.
// It is not safe for concurrent use.
type Machine struct {
	memory memory

	// CPU v: The Chip 8 has 15 8-bit general purpose registers named V0 up
	// to VE. The 16th register, VF, doubles as the carry, borrow and
	// collision flag.
	v [16]byte

	// pc and ir only ever address memory through their low 12 bits.
	pc uint16
	ir uint16

	stack [stackDepth]uint16
	sp    int

	timers  Timers
	keypad  Keypad
	display Display

	state   State
	program []byte

	random        Random
	addIndexCarry bool
}

func (m *Machine) String() string {
	return fmt.Sprintf("[PC: 0x%03X, I: 0x%03X, SP: %d]", m.pc, m.ir, m.sp)
}

// New returns a machine with the font set loaded and PC at 0x200.
func New(opts ...Option) *Machine {
	m := &Machine{}
	for _, opt := range opts {
		opt(m)
	}
	if m.random == nil {
		m.random = rand.New(rand.NewSource(seed()))
	}
	m.Reset()
	return m
}

// seed tries to use a crypto seed before falling back to time.
func seed() int64 {
	n, err := cryptorand.Int(cryptorand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		return time.Now().UnixNano()
	}
	return n.Int64()
}

// Reset puts the machine back in its power-on state and reloads the last
// program given to LoadProgram. Options are kept.
func (m *Machine) Reset() {
	m.memory = memory{}
	m.memory.load(FontBase, fontset[:])
	m.memory.load(ProgramStart, m.program)
	m.v = [16]byte{}
	m.pc = ProgramStart
	m.ir = 0
	m.stack = [stackDepth]uint16{}
	m.sp = 0
	m.timers = Timers{}
	m.keypad = Keypad{}
	m.display.Clear()
	m.state = Running
}

// LoadProgram copies rom into memory at 0x200. A ROM that does not fit is
// rejected and memory is left untouched.
func (m *Machine) LoadProgram(rom []byte) error {
	if len(rom) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, limit is %d", ErrProgramTooLarge, len(rom), MaxProgramSize)
	}
	m.program = append(m.program[:0], rom...)
	m.memory.load(ProgramStart, m.program)
	return nil
}

// Step fetches, decodes and executes one instruction.
//
// A word that does not decode is skipped and returned as a *DecodeError while
// the machine keeps Running. Running off the end of memory or unbalancing the
// call stack finishes the program on the same Step; the error says which.
// Once Finished, Step does nothing.
func (m *Machine) Step() (State, error) {
	if m.state == Finished {
		return Finished, nil
	}
	if err := m.checkPC(); err != nil {
		return Finished, err
	}

	at := m.pc
	opcode := m.memory.word(at)
	m.pc += 2

	in, err := Decode(opcode)
	if err != nil {
		if de, ok := err.(*DecodeError); ok {
			de.PC, de.Fetched = at, true
		}
		if m.checkPC() != nil {
			return Finished, err
		}
		return Running, err
	}
	if err := m.execute(in, at); err != nil {
		m.state = Finished
		return Finished, fmt.Errorf("%s at 0x%03X: %w", in, at, err)
	}
	if err := m.checkPC(); err != nil {
		return Finished, fmt.Errorf("%s at 0x%03X: %w", in, at, err)
	}
	return Running, nil
}

// checkPC finishes the machine once PC no longer addresses a whole
// instruction.
func (m *Machine) checkPC() error {
	if int(m.pc) > memorySize-2 {
		m.state = Finished
		return fmt.Errorf("%w: 0x%04X", ErrPCOutOfBounds, m.pc)
	}
	return nil
}

// TickTimers advances the delay and sound timers by one tick.
func (m *Machine) TickTimers() TimerSignal {
	return m.timers.Tick()
}

// SetKey records the state of key index, 0x0-0xF.
func (m *Machine) SetKey(index byte, pressed bool) error {
	return m.keypad.Set(index, pressed)
}

// Framebuffer returns the 64x32 row-major screen. It is a view of the live
// display and must not be modified.
func (m *Machine) Framebuffer() []bool {
	return m.display.Pixels()
}

// State reports whether the program is still running.
func (m *Machine) State() State { return m.state }

// PC returns the program counter.
func (m *Machine) PC() uint16 { return m.pc }

// I returns the index register.
func (m *Machine) I() uint16 { return m.ir }

// SP returns the number of pending calls.
func (m *Machine) SP() int { return m.sp }

// V returns register VX.
func (m *Machine) V(x byte) byte { return m.v[x&0xF] }

// DelayTimer returns the delay timer.
func (m *Machine) DelayTimer() byte { return m.timers.Delay }

// SoundTimer returns the sound timer.
func (m *Machine) SoundTimer() byte { return m.timers.Sound }

// SoundActive reports whether the buzzer should currently be on.
func (m *Machine) SoundActive() bool { return m.timers.SoundActive() }

// Memory returns the byte at addr, masked to 12 bits.
func (m *Machine) Memory(addr uint16) byte { return m.memory.read(addr) }

func (m *Machine) push(addr uint16) error {
	if m.sp >= len(m.stack) {
		return ErrStackOverflow
	}
	m.stack[m.sp] = addr
	m.sp++
	return nil
}

func (m *Machine) pop() (uint16, error) {
	if m.sp == 0 {
		return 0, ErrStackUnderflow
	}
	m.sp--
	return m.stack[m.sp], nil
}
