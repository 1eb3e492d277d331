package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"go-honey-arcade/internal/event"
)

type captureOutput struct {
	played []beep.Streamer
}

func (c *captureOutput) Play(s beep.Streamer) { c.played = append(c.played, s) }

// drain читает поток до конца и возвращает число сэмплов и пиковую амплитуду
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if math.IsNaN(smp[0]) || math.IsInf(smp[0], 0) {
				t.Fatal("non-finite sample")
			}
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	n, peak := drain(t, Tone(100, 250_000_000, WaveSquare, rate))
	if n != 250 {
		t.Errorf("samples = %d, want 250", n)
	}
	if peak != 1 {
		t.Errorf("square peak = %v, want 1", peak)
	}
}

func TestEveryCueIsFiniteAndAudible(t *testing.T) {
	for c := CueStart; c <= CueNewBest; c++ {
		s := Build(c, 3, SampleRate)
		if s == nil {
			t.Fatalf("cue %d has no sound", c)
		}
		n, peak := drain(t, s)
		if n == 0 || peak <= 0 {
			t.Errorf("cue %d: %d samples, peak %v", c, n, peak)
		}
		if peak > 1.5 {
			t.Errorf("cue %d clips: peak %v", c, peak)
		}
	}
	if Build(CueNone, 0, SampleRate) != nil {
		t.Error("CueNone must be silent")
	}
}

func TestCuePlayerListensToDispatcher(t *testing.T) {
	out := &captureOutput{}
	p := NewCuePlayer(out)
	d := event.NewDispatcher()
	p.Attach(d)

	d.Dispatch(event.Event{Type: event.ItemCaught, Data: event.ScoreData{Gained: 10, Combo: 2}})
	d.Dispatch(event.Event{Type: event.GamePaused})
	d.Dispatch(event.Event{Type: event.GameOver})
	if len(out.played) != 2 {
		t.Fatalf("played %d cues, want 2", len(out.played))
	}

	p.Muted = true
	d.Dispatch(event.Event{Type: event.HazardHit})
	if len(out.played) != 2 {
		t.Error("muted player must stay silent")
	}

	var nilPlayer *CuePlayer
	nilPlayer.OnEvent(event.Event{Type: event.ItemCaught})
	NewCuePlayer(nil).OnEvent(event.Event{Type: event.ItemCaught})
}
