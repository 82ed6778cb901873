package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimers_Tick(t *testing.T) {
	assert := assert.New(t)

	tm := Timers{Delay: 3, Sound: 2}
	assert.Equal(None, tm.Tick())
	assert.Equal(Timers{Delay: 2, Sound: 1}, tm)
	assert.True(tm.SoundActive())

	assert.Equal(PlaySound, tm.Tick())
	assert.Equal(Timers{Delay: 1, Sound: 0}, tm)
	assert.False(tm.SoundActive())

	assert.Equal(None, tm.Tick())
	assert.Equal(None, tm.Tick())
	assert.Equal(Timers{}, tm, "timers must saturate at zero")
}

func TestTimers_Independent(t *testing.T) {
	tm := Timers{Delay: 0, Sound: 1}
	assert.Equal(t, PlaySound, tm.Tick())
	assert.Equal(t, byte(0), tm.Delay)

	tm = Timers{Delay: 1}
	assert.Equal(t, None, tm.Tick(), "delay expiry is silent")
}

func TestTimerSignal_String(t *testing.T) {
	assert.Equal(t, "None", None.String())
	assert.Equal(t, "PlaySound", PlaySound.String())
}
