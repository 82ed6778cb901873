package chip8

// VX == m.v[x]
// VY == m.v[y]
// VF == m.v[0xF]
//
// PC has already been moved past the instruction when execute runs, so skips
// add 2 and jumps overwrite it. at is the address in was fetched from.
func (m *Machine) execute(in Instruction, at uint16) error {
	switch in.Op {
	case OpNop:
	case OpClear:
		m.display.Clear()
	case OpReturn:
		return m.ret()
	case OpJump:
		m.pc = in.NNN
	case OpCall:
		return m.call(in.NNN)
	case OpSkipEqByte:
		m.skipIf(m.v[in.X] == in.NN)
	case OpSkipNeByte:
		m.skipIf(m.v[in.X] != in.NN)
	case OpSkipEqReg:
		m.skipIf(m.v[in.X] == m.v[in.Y])
	case OpSkipNeReg:
		m.skipIf(m.v[in.X] != m.v[in.Y])
	case OpLoadByte:
		m.v[in.X] = in.NN
	case OpAddByte:
		// Carry flag is not changed.
		m.v[in.X] += in.NN
	case OpLoadReg:
		m.v[in.X] = m.v[in.Y]
	case OpOr:
		m.v[in.X] |= m.v[in.Y]
	case OpAnd:
		m.v[in.X] &= m.v[in.Y]
	case OpXor:
		m.v[in.X] ^= m.v[in.Y]
	case OpAdd:
		m.add(in.X, in.Y)
	case OpSub:
		m.sub(in.X, m.v[in.X], m.v[in.Y])
	case OpSubN:
		m.sub(in.X, m.v[in.Y], m.v[in.X])
	case OpShiftRight:
		m.shiftr(in.X)
	case OpShiftLeft:
		m.shiftl(in.X)
	case OpLoadIndex:
		m.ir = in.NNN
	case OpJumpV0:
		m.pc = in.NNN + uint16(m.v[0])
	case OpRandom:
		m.v[in.X] = byte(m.random.Intn(256)) & in.NN
	case OpDraw:
		m.draw(in.X, in.Y, in.N)
	case OpSkipKey:
		m.skipIf(m.keypad.Pressed(m.v[in.X]))
	case OpSkipNotKey:
		m.skipIf(!m.keypad.Pressed(m.v[in.X]))
	case OpLoadDelay:
		m.v[in.X] = m.timers.Delay
	case OpWaitKey:
		m.waitKey(in.X, at)
	case OpSetDelay:
		m.timers.Delay = m.v[in.X]
	case OpSetSound:
		m.timers.Sound = m.v[in.X]
	case OpAddIndex:
		m.addIndex(in.X)
	case OpLoadFont:
		m.ir = FontBase + glyphSize*uint16(m.v[in.X]&0xF)
	case OpBCD:
		m.bcd(in.X)
	case OpStore:
		for i := byte(0); i <= in.X; i++ {
			m.memory.write(m.ir+uint16(i), m.v[i])
		}
	case OpLoad:
		for i := byte(0); i <= in.X; i++ {
			m.v[i] = m.memory.read(m.ir + uint16(i))
		}
	}
	return nil
}

// ret returns from a subroutine.
func (m *Machine) ret() error {
	addr, err := m.pop()
	if err != nil {
		return err
	}
	m.pc = addr
	return nil
}

// call pushes the address of the next instruction and jumps to addr.
func (m *Machine) call(addr uint16) error {
	if err := m.push(m.pc); err != nil {
		return err
	}
	m.pc = addr
	return nil
}

// skipIf skips the next instruction when cond holds.
// (Usually the next instruction is a jump to skip a code block)
func (m *Machine) skipIf(cond bool) {
	if cond {
		m.pc += 2
	}
}

// The ALU helpers compute the result into VX before writing the flag, so
// with X == F the flag wins.

// add adds VY to VX. VF is set to 1 when there's a carry, and to 0 when there isn't.
func (m *Machine) add(x, y byte) {
	sum := uint16(m.v[x]) + uint16(m.v[y])
	m.v[x] = byte(sum)
	m.v[0xF] = flag(sum > 0xFF)
}

// sub stores a-b in VX. VF is set to 0 when there's a borrow, and 1 when there isn't.
// 8XY5 passes (VX, VY), 8XY7 passes (VY, VX).
func (m *Machine) sub(x, a, b byte) {
	m.v[x] = a - b
	m.v[0xF] = flag(a >= b)
}

// shiftr shifts VX right by one, VF gets the bit shifted out.
func (m *Machine) shiftr(x byte) {
	out := m.v[x] & 0x01
	m.v[x] >>= 1
	m.v[0xF] = out
}

// shiftl shifts VX left by one, VF gets the bit shifted out.
func (m *Machine) shiftl(x byte) {
	out := m.v[x] >> 7
	m.v[x] <<= 1
	m.v[0xF] = out
}

// draw draws a sprite at coordinate (VX, VY) that has a width of 8 pixels and a height of N pixels.
// Each row of 8 pixels is read as bit-coded starting from memory location I;
// I value doesn't change after the execution of this instruction. VF is set
// to 1 if any screen pixels are flipped from set to unset when the sprite is drawn, and
// to 0 if that doesn't happen.
func (m *Machine) draw(x, y, height byte) {
	var rows [15]byte
	for i := byte(0); i < height; i++ {
		rows[i] = m.memory.read(m.ir + uint16(i))
	}
	collided := m.display.Blit(m.v[x], m.v[y], rows[:height])
	m.v[0xF] = flag(collided)
}

// waitKey stores the lowest held key in VX. With no key held PC is put back
// on this instruction so the next Step runs it again.
func (m *Machine) waitKey(x byte, at uint16) {
	k, ok := m.keypad.First()
	if !ok {
		m.pc = at
		return
	}
	m.v[x] = k
}

// addIndex adds VX to I. VF is only touched with WithAddIndexCarry.
func (m *Machine) addIndex(x byte) {
	m.ir += uint16(m.v[x])
	if m.addIndexCarry {
		m.v[0xF] = flag(m.ir > addrMask)
	}
}

// bcd stores the binary-coded decimal representation of VX, with the most significant
// of three digits at the address in I, the middle digit at I plus 1, and the least significant digit at
// I plus 2.
func (m *Machine) bcd(x byte) {
	v := m.v[x]
	m.memory.write(m.ir, v/100)
	m.memory.write(m.ir+1, (v/10)%10)
	m.memory.write(m.ir+2, v%10)
}

func flag(b bool) byte {
	if b {
		return 1
	}
	return 0
}
