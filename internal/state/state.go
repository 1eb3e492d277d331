// internal/state/state.go
package state

import (
	"go-honey-arcade/internal/input"
	"go-honey-arcade/pkg/render"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(in input.Intents, dt float64)
	Draw(surf render.Surface)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	done    bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current — текущее состояние
func (sm *StateMachine) Current() State {
	return sm.current
}

// Quit просит фронтенд закрыть приложение
func (sm *StateMachine) Quit() {
	sm.done = true
}

// Done — приложение пора закрывать
func (sm *StateMachine) Done() bool {
	return sm.done
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(in input.Intents, dt float64) {
	if sm.current != nil {
		sm.current.Update(in, dt)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(surf render.Surface) {
	if sm.current != nil && surf != nil {
		sm.current.Draw(surf)
	}
}
