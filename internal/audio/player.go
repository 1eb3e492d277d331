package audio

import (
	"github.com/gopxl/beep"

	"go-honey-arcade/internal/event"
)

// Output — куда отправляются готовые сигналы (динамик, тестовый приемник)
type Output interface {
	Play(s beep.Streamer)
}

// CuePlayer слушает события игры и проигрывает сигналы
type CuePlayer struct {
	out    Output
	rate   beep.SampleRate
	Muted  bool
	Volume float64
}

// NewCuePlayer создает проигрыватель. Без выхода проигрыватель молчит.
func NewCuePlayer(out Output) *CuePlayer {
	return &CuePlayer{out: out, rate: SampleRate, Volume: 0.6}
}

// Attach подписывает проигрыватель на все события со звуком
func (p *CuePlayer) Attach(d *event.Dispatcher) {
	d.SubscribeAll(p,
		event.GameStarted, event.ItemCaught, event.ItemMissed, event.HazardHit,
		event.HazardDestroyed, event.TowerPlaced, event.GameOver, event.NewBest)
}

// OnEvent реализует event.Listener
func (p *CuePlayer) OnEvent(e event.Event) {
	if p == nil || p.out == nil || p.Muted {
		return
	}
	cue := CueFor(e.Type)
	if cue == CueNone {
		return
	}
	combo := 0
	if sd, ok := e.Data.(event.ScoreData); ok {
		combo = sd.Combo
	}
	s := Build(cue, combo, p.rate)
	if s == nil {
		return
	}
	p.out.Play(withVolume(s, p.Volume))
}
