package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Speaker plays tones on the system audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume *effects.Volume
	closed bool
}

// NewSpeaker initializes the audio device. volume is in [0, 1].
func NewSpeaker(volume float64) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("sound: init speaker: %w", err)
	}

	s := &Speaker{mixer: &beep.Mixer{}}
	s.volume = newVolume(s.mixer, volume)
	speaker.Play(s.volume)
	return s, nil
}

// newVolume maps a linear volume onto the log scale of effects.Volume.
func newVolume(st beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: st, Base: 2, Silent: true}
	}
	// 1.0 -> 0 (unity), 0.5 -> -1
	return &effects.Volume{Streamer: st, Base: 2, Volume: min(vol, 1) - 1}
}

// Play mixes t into the output.
func (s *Speaker) Play(t Tone) {
	st := t.Streamer(SampleRate)
	if st == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}
