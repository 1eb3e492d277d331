package component

// Phase — фаза контроллера очков и жизней
type Phase int

const (
	PhaseReady Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

// GameState — состояние одной партии. Создается при старте/сбросе,
// меняется только контроллером очков и детектором столкновений.
type GameState struct {
	Score      int
	Lives      int
	MaxLives   int
	Timer      float64 // секунд до конца, не меньше нуля
	Timed      bool    // заканчивается ли партия по таймеру
	Combo      int
	Multiplier float64 // не меньше 1
	Phase      Phase
	Clock      float64 // симулированное время партии, стоит на паузе
}

// Running — идет ли симуляция
func (s GameState) Running() bool { return s.Phase == PhaseRunning }

// Paused — стоит ли игра на паузе
func (s GameState) Paused() bool { return s.Phase == PhasePaused }

// Over — закончилась ли партия
func (s GameState) Over() bool { return s.Phase == PhaseGameOver }
