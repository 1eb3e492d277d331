// internal/state/play_state.go
package state

import (
	"go-honey-arcade/internal/app"
	"go-honey-arcade/internal/input"
	"go-honey-arcade/internal/replay"
	"go-honey-arcade/pkg/render"
)

var _ State = (*PlayState)(nil)

// PlayState ведет одну мини-игру. Esc во время партии ставит паузу,
// Esc на паузе, до старта или после конца возвращает в меню.
type PlayState struct {
	sm    *StateMachine
	frame app.Frame
	back  func() State // nil — выхода в меню нет, Esc закрывает приложение

	// Recorder, если задан, получает каждый кадр партии
	Recorder *replay.Recorder
}

func NewPlayState(sm *StateMachine, frame app.Frame, back func() State) *PlayState {
	return &PlayState{sm: sm, frame: frame, back: back}
}

// Frame — игра этого состояния
func (s *PlayState) Frame() app.Frame { return s.frame }

func (s *PlayState) Enter() {}

func (s *PlayState) Update(in input.Intents, dt float64) {
	if in.Has(input.Back) {
		if s.frame.State().Running() {
			in.Clear(input.Back)
			in.Set(input.PauseToggle)
		} else {
			s.leave()
			return
		}
	}
	if s.Recorder != nil {
		s.Recorder.Add(dt, in)
	}
	s.frame.Update(in, dt)
}

func (s *PlayState) leave() {
	s.frame.Finish()
	if s.back == nil {
		s.sm.Quit()
		return
	}
	s.sm.SetState(s.back())
}

func (s *PlayState) Draw(surf render.Surface) {
	s.frame.Draw(surf)
}

func (s *PlayState) Exit() {}
