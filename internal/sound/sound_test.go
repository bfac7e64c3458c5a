package sound

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/physics"
)

func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(1000, 10*time.Millisecond, WaveSquare, SampleRate)

	samples := make([][2]float64, 1000)
	n, ok := osc.Stream(samples)
	if !ok {
		t.Fatal("Expected stream to return ok=true")
	}
	want := SampleRate.N(10 * time.Millisecond)
	if n != want {
		t.Errorf("Expected %d samples, got %d", want, n)
	}
	for i := range n {
		if v := samples[i][0]; v != 1 && v != -1 {
			t.Fatalf("Sample %d = %f, want +-1", i, v)
		}
	}

	if n, ok := osc.Stream(samples); n != 0 || ok {
		t.Errorf("Drained oscillator returned %d, %v", n, ok)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := SampleRate
	d := 20 * time.Millisecond
	env := NewEnvelope(NewOscillator(100, d, WaveSquare, rate), d, 5*time.Millisecond, 5*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(d))
	n, _ := env.Stream(samples)

	if samples[0][0] != 0 {
		t.Errorf("First sample = %f, want 0 at start of attack", samples[0][0])
	}
	for i := range n {
		if v := samples[i][0]; v < -1 || v > 1 {
			t.Fatalf("Sample %d out of range: %f", i, v)
		}
	}
	mid := n / 2
	if v := samples[mid][0]; v != 1 && v != -1 {
		t.Errorf("Sustain sample = %f, want full volume", v)
	}
}

func TestToneStreamer(t *testing.T) {
	for tone := range toneCount {
		st := tone.Streamer(SampleRate)
		if st == nil {
			t.Fatalf("%v: nil streamer", tone)
		}

		total := 0
		buf := make([][2]float64, 512)
		for {
			n, ok := st.Stream(buf)
			total += n
			if !ok {
				break
			}
		}
		if want := SampleRate.N(tone.Duration()); total < want-len(tones[tone].notes) || total > want+len(tones[tone].notes) {
			t.Errorf("%v: streamed %d samples, want about %d", tone, total, want)
		}
	}

	if Tone(99).Streamer(SampleRate) != nil {
		t.Error("Expected nil streamer for unknown tone")
	}
}

func TestToneFor(t *testing.T) {
	tests := []struct {
		event arkanoid.Event
		want  Tone
		ok    bool
	}{
		{arkanoid.Event{Type: arkanoid.EventHit, Kind: physics.KindBrick}, ToneBrick, true},
		{arkanoid.Event{Type: arkanoid.EventHit, Kind: physics.KindPaddle}, TonePaddle, true},
		{arkanoid.Event{Type: arkanoid.EventHit, Kind: physics.KindWall}, ToneWall, true},
		{arkanoid.Event{Type: arkanoid.EventBallOut}, ToneLose, true},
		{arkanoid.Event{Type: arkanoid.EventEndOfLevel}, ToneLevel, true},
		{arkanoid.Event{Type: arkanoid.EventPowerUp}, TonePowerUp, true},
		{arkanoid.Event{Type: arkanoid.EventGameOver}, ToneGameOver, true},
		{arkanoid.Event{Type: arkanoid.EventUpdateScore}, 0, false},
		{arkanoid.Event{Type: arkanoid.EventPause}, 0, false},
	}

	for _, tt := range tests {
		got, ok := ToneFor(tt.event)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ToneFor(%v) = %v, %v; want %v, %v", tt.event.Type, got, ok, tt.want, tt.ok)
		}
	}
}

type recordingPlayer struct {
	played []Tone
}

func (p *recordingPlayer) Play(t Tone) { p.played = append(p.played, t) }

func TestBuzzer(t *testing.T) {
	p := &recordingPlayer{}
	b := NewBuzzer(p)
	clock := time.Unix(0, 0)
	b.now = func() time.Time { return clock }

	brick := arkanoid.Event{Type: arkanoid.EventHit, Kind: physics.KindBrick}

	b.Handle(brick)
	b.Handle(brick) // same instant, dropped
	b.Handle(arkanoid.Event{Type: arkanoid.EventBallOut})
	clock = clock.Add(time.Second)
	b.Handle(brick)
	b.Handle(arkanoid.Event{Type: arkanoid.EventUpdateScore})

	want := []Tone{ToneBrick, ToneLose, ToneBrick}
	if len(p.played) != len(want) {
		t.Fatalf("played %v, want %v", p.played, want)
	}
	for i := range want {
		if p.played[i] != want[i] {
			t.Errorf("played[%d] = %v, want %v", i, p.played[i], want[i])
		}
	}

	b.SetMuted(true)
	clock = clock.Add(time.Second)
	b.Handle(brick)
	if len(p.played) != 3 {
		t.Error("muted buzzer still played")
	}
}
