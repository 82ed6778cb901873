package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/Code-Hex/chip8"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
)

// ebiten updates at 60 TPS, which also paces the timers.
const cyclesPerFrame = 10

// keymap lays the hex keypad out on the left of a QWERTY keyboard.
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
var keymap = [chip8.NumKeys]ebiten.Key{
	0x0: ebiten.KeyX,
	0x1: ebiten.Key1,
	0x2: ebiten.Key2,
	0x3: ebiten.Key3,
	0x4: ebiten.KeyQ,
	0x5: ebiten.KeyW,
	0x6: ebiten.KeyE,
	0x7: ebiten.KeyA,
	0x8: ebiten.KeyS,
	0x9: ebiten.KeyD,
	0xA: ebiten.KeyZ,
	0xB: ebiten.KeyC,
	0xC: ebiten.Key4,
	0xD: ebiten.KeyR,
	0xE: ebiten.KeyF,
	0xF: ebiten.KeyV,
}

type emulator struct {
	vm     *chip8.Machine
	beeper *beeper // nil when muted

	pixels []byte

	// decode errors already logged, by address
	reported map[uint16]bool
}

func newEmulator(vm *chip8.Machine, b *beeper) *emulator {
	return &emulator{
		vm:       vm,
		beeper:   b,
		pixels:   make([]byte, 4*chip8.ScreenWidth*chip8.ScreenHeight),
		reported: make(map[uint16]bool),
	}
}

func (e *emulator) update(screen *ebiten.Image) error {
	for k, key := range keymap {
		if err := e.vm.SetKey(byte(k), ebiten.IsKeyPressed(key)); err != nil {
			return err
		}
	}
	for i := 0; i < cyclesPerFrame && e.vm.State() == chip8.Running; i++ {
		_, err := e.vm.Step()
		e.report(err)
	}
	if e.vm.TickTimers() == chip8.PlaySound && e.beeper != nil {
		if err := e.beeper.play(); err != nil {
			return err
		}
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	paint(e.pixels, e.vm.Framebuffer())
	if err := screen.ReplacePixels(e.pixels); err != nil {
		return err
	}
	if e.vm.State() == chip8.Finished {
		ebitenutil.DebugPrint(screen, "program finished")
	}
	return nil
}

// report logs errors from Step. A bad opcode inside a loop would otherwise
// be logged every frame, so each address is reported once.
func (e *emulator) report(err error) {
	if err == nil {
		return
	}
	var de *chip8.DecodeError
	if errors.As(err, &de) {
		if e.reported[de.PC] {
			return
		}
		e.reported[de.PC] = true
	}
	log.Printf("chip8: %v", err)
}

// paint converts the framebuffer to RGBA.
func paint(dst []byte, fb []bool) {
	for i, on := range fb {
		var c byte
		if on {
			c = 0xFF
		}
		dst[4*i] = c
		dst[4*i+1] = c
		dst[4*i+2] = c
		dst[4*i+3] = 0xFF
	}
}

// loadROM reads a ROM file into vm.
func loadROM(vm *chip8.Machine, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	// Read one byte past the limit so oversized files are rejected, not truncated.
	rom, err := io.ReadAll(io.LimitReader(f, chip8.MaxProgramSize+1))
	if err != nil {
		return err
	}
	if err := vm.LoadProgram(rom); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func main() {
	var scale float64
	var seed int64
	var addiCarry bool
	var mute bool

	flag.Float64Var(&scale, "scale", 10, "Window scale")
	flag.Int64Var(&seed, "seed", 0, "Seed for RND, 0 picks a random one")
	flag.BoolVar(&addiCarry, "addi-carry", false, "Set VF on ADD I, Vx overflow")
	flag.BoolVar(&mute, "mute", false, "Disable the buzzer")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] rom.ch8\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	opts := []chip8.Option{chip8.WithAddIndexCarry(addiCarry)}
	if seed != 0 {
		opts = append(opts, chip8.WithRandom(rand.New(rand.NewSource(seed))))
	}
	vm := chip8.New(opts...)
	if err := loadROM(vm, path); err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	var b *beeper
	if !mute {
		var err error
		b, err = newBeeper()
		if err != nil {
			log.Printf("audio disabled: %v", err)
			b = nil
		}
	}

	emu := newEmulator(vm, b)
	if err := ebiten.Run(emu.update, chip8.ScreenWidth, chip8.ScreenHeight, scale, "CHIP-8 - "+path); err != nil {
		log.Fatal(err)
	}
}
