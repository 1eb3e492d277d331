package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"go-honey-arcade/internal/event"
)

// Cue — вид звукового сигнала
type Cue int

const (
	CueNone Cue = iota
	CueStart
	CueCatch
	CueMiss
	CueHit
	CuePop
	CueTower
	CueGameOver
	CueNewBest
)

// CueFor сопоставляет событию сигнал
func CueFor(t event.EventType) Cue {
	switch t {
	case event.GameStarted:
		return CueStart
	case event.ItemCaught:
		return CueCatch
	case event.ItemMissed:
		return CueMiss
	case event.HazardHit:
		return CueHit
	case event.HazardDestroyed:
		return CuePop
	case event.TowerPlaced:
		return CueTower
	case event.GameOver:
		return CueGameOver
	case event.NewBest:
		return CueNewBest
	}
	return CueNone
}

const a4 = 440.0

// semitone — частота через n полутонов от ля первой октавы
func semitone(n int) float64 {
	return a4 * math.Pow(2, float64(n)/12)
}

// Build собирает сигнал. combo поднимает высоту «поимки», чтобы серия звучала выше.
func Build(c Cue, combo int, rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch c {
	case CueStart:
		return beep.Seq(
			note(semitone(3), 90*ms, WaveTriangle, rate),
			note(semitone(7), 90*ms, WaveTriangle, rate),
			note(semitone(10), 160*ms, WaveTriangle, rate),
		)
	case CueCatch:
		step := combo
		if step > 12 {
			step = 12
		}
		return beep.Mix(
			withVolume(note(semitone(12+step), 140*ms, WaveSine, rate), 0.7),
			withVolume(note(semitone(24+step), 140*ms, WaveSine, rate), 0.25),
		)
	case CueMiss:
		return withVolume(note(semitone(-5), 120*ms, WaveTriangle, rate), 0.5)
	case CueHit:
		return withVolume(note(semitone(-24), 200*ms, WaveSquare, rate), 0.35)
	case CuePop:
		return beep.Seq(
			withVolume(note(semitone(5), 50*ms, WaveSquare, rate), 0.3),
			withVolume(note(semitone(17), 70*ms, WaveSine, rate), 0.5),
		)
	case CueTower:
		return withVolume(note(semitone(0), 60*ms, WaveTriangle, rate), 0.6)
	case CueGameOver:
		return beep.Seq(
			note(semitone(7), 180*ms, WaveTriangle, rate),
			note(semitone(3), 180*ms, WaveTriangle, rate),
			note(semitone(0), 360*ms, WaveTriangle, rate),
		)
	case CueNewBest:
		return beep.Seq(
			note(semitone(12), 80*ms, WaveSine, rate),
			note(semitone(16), 80*ms, WaveSine, rate),
			note(semitone(19), 80*ms, WaveSine, rate),
			note(semitone(24), 240*ms, WaveSine, rate),
		)
	}
	return nil
}
