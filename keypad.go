package chip8

// NumKeys is the size of the hex keypad, keys 0x0-0xF.
const NumKeys = 16

// Keypad is the current state of each key. There is no event queue, only
// the state sampled at the time an instruction reads it.
type Keypad struct {
	keys [NumKeys]bool
}

// Set records whether key k is held down.
func (kp *Keypad) Set(k byte, pressed bool) error {
	if int(k) >= NumKeys {
		return ErrKeyOutOfRange
	}
	kp.keys[k] = pressed
	return nil
}

// Pressed reports whether key k is held down. Only the low nibble of k is
// used, so a register holding a bad key index still reads a real key.
func (kp *Keypad) Pressed(k byte) bool {
	return kp.keys[k&0xF]
}

// First returns the lowest held key.
func (kp *Keypad) First() (byte, bool) {
	for k, down := range kp.keys {
		if down {
			return byte(k), true
		}
	}
	return 0, false
}
