package chip8

const (
	memorySize = 4096
	addrMask   = memorySize - 1

	// FontBase is where the built in hexadecimal font is stored.
	FontBase = 0x050
	// ProgramStart is the address programs are loaded to and executed from.
	ProgramStart = 0x200
	// MaxProgramSize is the largest ROM LoadProgram accepts.
	MaxProgramSize = memorySize - ProgramStart

	glyphSize = 5
)

// The data should be stored in the interpreter area of Chip-8 memory (0x000 to 0x1FF).
// Example: "0"
// +------------------------+
// | **** | 11110000 | 0xF0 |
// | *  * | 10010000 | 0x90 |
// | *  * | 10010000 | 0x90 |
// | *  * | 10010000 | 0x90 |
// | **** | 11110000 | 0xF0 |
// +------------------------+
var fontset = [16 * glyphSize]byte{
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

// memory is the 4K address space.
//
//	+---------------+= 0xFFF (4095) End of Chip-8 RAM
//	| 0x200 to 0xFFF|
//	|     Chip-8    |
//	| Program / Data|
//	|     Space     |
//	+---------------+= 0x200 (512) Start of most Chip-8 programs
//	| 0x000 to 0x1FF|
//	| Reserved for  |
//	|  interpreter  |
//	+- - - - - - - -+= 0x0A0 End of font set
//	|   font set    |
//	+- - - - - - - -+= 0x050 Start of font set
//	|               |
//	+---------------+= 0x000 (0) Start of Chip-8 RAM
//
// Every address is masked to 12 bits, so no access can leave the array.
type memory [memorySize]byte

func (m *memory) read(addr uint16) byte {
	return m[addr&addrMask]
}

func (m *memory) write(addr uint16, v byte) {
	m[addr&addrMask] = v
}

// word reads the big-endian opcode at addr.
//
//	memory[pc]     == 0xA2
//	memory[pc + 1] == 0xF0
//	word(pc)       == 0xA2F0
func (m *memory) word(addr uint16) uint16 {
	return uint16(m.read(addr))<<8 | uint16(m.read(addr+1))
}

func (m *memory) load(origin uint16, data []byte) {
	for i, b := range data {
		m.write(origin+uint16(i), b)
	}
}
