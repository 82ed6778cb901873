package main

import (
	"github.com/hajimehoshi/ebiten/audio"
)

const (
	sampleRate = 44100
	beepHz     = 440
	beepLength = sampleRate / 10 // samples
	beepVolume = 0x1000
)

// beeper plays a short square wave each time the sound timer runs out.
type beeper struct {
	player *audio.Player
}

func newBeeper() (*beeper, error) {
	ctx, err := audio.NewContext(sampleRate)
	if err != nil {
		return nil, err
	}
	p, err := audio.NewPlayerFromBytes(ctx, squareWave(beepHz, beepLength))
	if err != nil {
		return nil, err
	}
	return &beeper{player: p}, nil
}

func (b *beeper) play() error {
	if err := b.player.Rewind(); err != nil {
		return err
	}
	return b.player.Play()
}

// squareWave returns n samples of 16 bit little endian stereo PCM.
func squareWave(hz, n int) []byte {
	buf := make([]byte, 4*n)
	period := sampleRate / hz
	for i := 0; i < n; i++ {
		v := int16(beepVolume)
		if (i % period) >= period/2 {
			v = -v
		}
		lo, hi := byte(v), byte(uint16(v)>>8)
		buf[4*i] = lo
		buf[4*i+1] = hi
		buf[4*i+2] = lo
		buf[4*i+3] = hi
	}
	return buf
}
