package chip8

// TimerSignal is what a timer tick asks the host to do with audio.
type TimerSignal int

const (
	// None means nothing changed for the host.
	None TimerSignal = iota
	// PlaySound means the sound timer just ran out.
	PlaySound
)

func (s TimerSignal) String() string {
	if s == PlaySound {
		return "PlaySound"
	}
	return "None"
}

// Timers are the two 60 Hz countdown registers. The Chip 8 has no
// interrupts; when set above zero the timers count down to zero at the pace
// of whoever calls Tick, independently of instruction execution.
type Timers struct {
	Delay byte
	Sound byte
}

// Tick decrements both counters, neither goes below zero. The system's
// buzzer sounds whenever the sound timer reaches zero, so PlaySound is
// returned on the tick that takes it from 1 to 0.
func (t *Timers) Tick() TimerSignal {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound > 0 {
		t.Sound--
		if t.Sound == 0 {
			return PlaySound
		}
	}
	return None
}

// SoundActive reports whether the sound timer is still counting.
func (t *Timers) SoundActive() bool {
	return t.Sound > 0
}
