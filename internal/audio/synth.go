// Package audio синтезирует короткие звуковые сигналы на события игры.
// Никаких файлов: каждый сигнал собирается из осцилляторов beep.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate — частота дискретизации всех сигналов
const SampleRate = beep.SampleRate(44100)

// Wave — форма волны осциллятора
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// tone — осциллятор фиксированной длины
type tone struct {
	freq  float64
	phase float64
	left  int
	wave  Wave
	rate  beep.SampleRate
}

// Tone создает тон частоты freq длительностью d
func Tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, left: rate.N(d), wave: wave, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.left <= 0 {
		return 0, false
	}
	n := len(samples)
	if n > t.left {
		n = t.left
	}
	step := t.freq / float64(t.rate)
	for i := 0; i < n; i++ {
		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveTriangle:
			v = 4*math.Abs(t.phase-0.5) - 1
		}
		samples[i][0], samples[i][1] = v, v
		t.phase += step
		t.phase -= math.Floor(t.phase)
	}
	t.left -= n
	return n, true
}

func (t *tone) Err() error { return nil }

// shaped — линейная атака и экспоненциальное затухание
type shaped struct {
	s       beep.Streamer
	pos     int
	attack  int
	decayTC float64 // постоянная времени затухания в сэмплах
}

// Shape накладывает огибающую: атака attack, затем затухание с постоянной decay
func Shape(s beep.Streamer, attack, decay time.Duration, rate beep.SampleRate) beep.Streamer {
	tc := float64(rate.N(decay))
	if tc < 1 {
		tc = 1
	}
	return &shaped{s: s, attack: rate.N(attack), decayTC: tc}
}

func (e *shaped) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		var g float64
		if e.pos < e.attack {
			g = float64(e.pos) / float64(e.attack)
		} else {
			g = math.Exp(-float64(e.pos-e.attack) / e.decayTC)
		}
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *shaped) Err() error { return e.s.Err() }

// withVolume — громкость в линейной шкале; 0 дает тишину
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note — тон с огибающей
func note(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return Shape(Tone(freq, d, wave, rate), 5*time.Millisecond, d/3, rate)
}
