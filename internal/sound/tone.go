// Package sound turns game events into short synthesized beeps.
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is the rate every tone is generated at.
const SampleRate = beep.SampleRate(44100)

// Tone names a sound effect.
type Tone int

const (
	ToneWall Tone = iota
	ToneBrick
	TonePaddle
	ToneLose
	ToneLevel
	TonePowerUp
	ToneGameOver
	toneCount
)

func (t Tone) String() string {
	switch t {
	case ToneWall:
		return "wall"
	case ToneBrick:
		return "brick"
	case TonePaddle:
		return "paddle"
	case ToneLose:
		return "lose"
	case ToneLevel:
		return "level"
	case TonePowerUp:
		return "power-up"
	case ToneGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Wave is an oscillator shape.
type Wave int

const (
	WaveSquare Wave = iota
	WaveSine
)

// note is one step of a tone.
type note struct {
	freq     float64
	duration time.Duration
}

type toneSpec struct {
	wave    Wave
	notes   []note
	attack  time.Duration
	release time.Duration
}

var tones = [toneCount]toneSpec{
	ToneWall:   {wave: WaveSquare, notes: []note{{220, 30 * time.Millisecond}}, attack: 2 * time.Millisecond, release: 10 * time.Millisecond},
	ToneBrick:  {wave: WaveSquare, notes: []note{{660, 40 * time.Millisecond}}, attack: 2 * time.Millisecond, release: 15 * time.Millisecond},
	TonePaddle: {wave: WaveSquare, notes: []note{{440, 40 * time.Millisecond}}, attack: 2 * time.Millisecond, release: 15 * time.Millisecond},
	ToneLose: {wave: WaveSquare, attack: 5 * time.Millisecond, release: 60 * time.Millisecond, notes: []note{
		{392, 120 * time.Millisecond}, {294, 120 * time.Millisecond}, {196, 240 * time.Millisecond},
	}},
	ToneLevel: {wave: WaveSine, attack: 5 * time.Millisecond, release: 80 * time.Millisecond, notes: []note{
		{523.25, 100 * time.Millisecond}, {659.25, 100 * time.Millisecond}, {783.99, 200 * time.Millisecond},
	}},
	TonePowerUp: {wave: WaveSine, attack: 5 * time.Millisecond, release: 40 * time.Millisecond, notes: []note{
		{987.77, 60 * time.Millisecond}, {1318.51, 120 * time.Millisecond},
	}},
	ToneGameOver: {wave: WaveSquare, attack: 5 * time.Millisecond, release: 200 * time.Millisecond, notes: []note{
		{196, 200 * time.Millisecond}, {165, 200 * time.Millisecond}, {131, 500 * time.Millisecond},
	}},
}

// Streamer returns a new stream playing t, or nil for an unknown tone.
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	if t < 0 || t >= toneCount {
		return nil
	}
	def := tones[t]
	parts := make([]beep.Streamer, 0, len(def.notes))
	for _, n := range def.notes {
		osc := NewOscillator(n.freq, n.duration, def.wave, rate)
		parts = append(parts, NewEnvelope(osc, n.duration, def.attack, def.release, rate))
	}
	return beep.Seq(parts...)
}

// Duration returns how long t plays.
func (t Tone) Duration() time.Duration {
	if t < 0 || t >= toneCount {
		return 0
	}
	var d time.Duration
	for _, n := range tones[t].notes {
		d += n.duration
	}
	return d
}

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator creates a mono oscillator streaming for duration.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

// NewEnvelope wraps s with an attack/release envelope.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		release:      rate.N(release),
		totalSamples: rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := max(e.totalSamples-e.release, e.attack)
	for i := range n {
		vol := 1.0
		switch {
		case e.position < e.attack && e.attack > 0:
			vol = float64(e.position) / float64(e.attack)
		case e.position >= releaseStart && e.release > 0:
			vol = max(float64(e.totalSamples-e.position)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
