// Package audio implements the chip8.Audio adapter: a continuously
// playing sine tone whose audibility is gated by SetActive, driven by
// whether the sound timer is non-zero.
package audio

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// toneStreamer generates a sine wave at freq Hz and ampl amplitude
// (0..1), or silence whenever active is false.
type toneStreamer struct {
	freq   float64
	ampl   float64
	phase  float64
	active *int32
}

func (t *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	on := atomic.LoadInt32(t.active) != 0
	step := t.freq / float64(sampleRate)
	for i := range samples {
		var v float64
		if on {
			v = math.Sin(2*math.Pi*t.phase) * t.ampl
		}
		t.phase += step
		if t.phase >= 1 {
			t.phase -= 1
		}
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (t *toneStreamer) Err() error { return nil }

// Adapter is the chip8.Audio implementation: SetActive toggles the gate
// on a tone generated once at construction.
type Adapter struct {
	active int32
}

// New initializes the speaker and starts a tone generator at freqHz with
// the given amplitude (0-32767, matching the CLI's --ampl convention),
// muted until the first SetActive(true).
func New(freqHz int, amplitude int) (*Adapter, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	a := &Adapter{}

	norm := float64(amplitude) / float64(math.MaxInt16)
	if norm > 1 {
		norm = 1
	}
	if norm < 0 {
		norm = 0
	}

	ts := &toneStreamer{freq: float64(freqHz), ampl: norm, active: &a.active}
	speaker.Play(ts)

	return a, nil
}

func (a *Adapter) SetActive(on bool) {
	var v int32
	if on {
		v = 1
	}
	atomic.StoreInt32(&a.active, v)
}
