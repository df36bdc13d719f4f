package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue tone frequencies in Hz
const (
	focusTone  = 880.0
	returnTone = 440.0
	toggleTone = 660.0
)

// Engine plays short generated cues through the system speaker
// Initialization failure is non-fatal: the engine stays silent
type Engine struct {
	ready bool
	muted atomic.Bool
}

// New initializes the speaker; the program can run without sound
func New() (*Engine, error) {
	e := &Engine{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return e, err
	}
	e.ready = true
	return e, nil
}

// Ready reports whether the speaker initialized
func (e *Engine) Ready() bool {
	return e.ready
}

// IsMuted reports the mute toggle
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// ToggleMute flips the mute toggle and returns the new state
func (e *Engine) ToggleMute() bool {
	muted := !e.muted.Load()
	e.muted.Store(muted)
	return muted
}

// PlayFocus chirps on a successful focus transition
func (e *Engine) PlayFocus() {
	e.tone(focusTone, 60*time.Millisecond)
}

// PlayReturn chirps on returning to the overview
func (e *Engine) PlayReturn() {
	e.tone(returnTone, 60*time.Millisecond)
}

// PlayToggle ticks on option toggles
func (e *Engine) PlayToggle() {
	e.tone(toggleTone, 30*time.Millisecond)
}

func (e *Engine) tone(freq float64, d time.Duration) {
	if !e.ready || e.muted.Load() {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Close shuts the speaker down
func (e *Engine) Close() {
	if e.ready {
		speaker.Close()
	}
}
