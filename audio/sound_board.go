// Package audio plays short synthesized cues for game events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/engine"
)

const (
	sampleRate = beep.SampleRate(44100)
	// gain applied to every tone; -1 is silence, 0 is unchanged
	toneGain = -0.75
)

// Note is one tone of a cue.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Cue is a sequence of notes played back to back.
type Cue []Note

// CueFor maps an engine event to its cue. ok is false for silent events.
func CueFor(e engine.Event) (cue Cue, ok bool) {
	switch e.Kind {
	case engine.EventLocked:
		if e.Lines > 0 {
			return nil, false
		}
		return Cue{{Freq: 220, Duration: 30 * time.Millisecond}}, true
	case engine.EventLinesCleared:
		// one rising note per row; four rows end an octave up
		notes := []float64{523.25, 659.25, 783.99, 1046.50}
		n := min(max(e.Lines, 1), len(notes))
		cue = make(Cue, 0, n)
		for _, f := range notes[:n] {
			cue = append(cue, Note{Freq: f, Duration: 60 * time.Millisecond})
		}
		return cue, true
	case engine.EventLevelUp:
		return Cue{
			{Freq: 880, Duration: 80 * time.Millisecond},
			{Freq: 1174.66, Duration: 120 * time.Millisecond},
		}, true
	case engine.EventGameOver:
		return Cue{
			{Freq: 392, Duration: 150 * time.Millisecond},
			{Freq: 311.13, Duration: 150 * time.Millisecond},
			{Freq: 196, Duration: 400 * time.Millisecond},
		}, true
	}
	return nil, false
}

// SoundBoard turns engine events into sound. It is an engine.Listener and
// stays silent until Initialize succeeds.
type SoundBoard struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundBoard creates a sound board.
func NewSoundBoard() *SoundBoard {
	return &SoundBoard{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio device.
func (sb *SoundBoard) Initialize() error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sb.mixer)
	sb.initialized = true
	return nil
}

// Close stops playback and releases the device.
func (sb *SoundBoard) Close() {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.initialized {
		return
	}

	speaker.Lock()
	sb.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sb.initialized = false
}

// HandleEvent implements engine.Listener.
func (sb *SoundBoard) HandleEvent(e engine.Event) {
	cue, ok := CueFor(e)
	if !ok {
		return
	}
	sb.Play(cue)
}

// Play queues a cue on the mixer.
func (sb *SoundBoard) Play(cue Cue) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.initialized || len(cue) == 0 {
		return
	}

	streamers := make([]beep.Streamer, 0, len(cue))
	for _, note := range cue {
		tone, err := generators.SineTone(sampleRate, note.Freq)
		if err != nil {
			continue
		}
		streamers = append(streamers, beep.Take(sampleRate.N(note.Duration), tone))
	}

	speaker.Lock()
	sb.mixer.Add(&effects.Gain{Streamer: beep.Seq(streamers...), Gain: toneGain})
	speaker.Unlock()
}
