// internal/state/launcher.go
package state

import (
	"fmt"
	"log"

	"go-honey-arcade/internal/app"
	"go-honey-arcade/internal/config"
	"go-honey-arcade/internal/storage"
	"go-honey-arcade/pkg/render"
)

// Launcher создает мини-игры на общей поверхности с общими зависимостями
type Launcher struct {
	Surface render.Surface
	Options app.Options
}

// New создает игру по имени. Без поверхности возвращает app.ErrNoSurface.
func (l *Launcher) New(name string) (app.Frame, error) {
	switch name {
	case app.GameHoney:
		return app.NewHoney(l.Surface, l.Options)
	case app.GameDefense:
		return app.NewDefense(l.Surface, l.Options)
	}
	return nil, fmt.Errorf("unknown game %q", name)
}

// Best — сохраненный рекорд игры
func (l *Launcher) Best(name string) int {
	key := config.BestScoreKeyHoney
	if name == app.GameDefense {
		key = config.BestScoreKeyDefense
	}
	return storage.NewBestScore(l.Options.Store, key).Read()
}

// Play создает игру и переключает машину на нее.
// Если игру создать нельзя, машина остается в прежнем состоянии.
func (l *Launcher) Play(sm *StateMachine, name string) bool {
	frame, err := l.New(name)
	if err != nil {
		log.Printf("[State] game %s disabled: %v", name, err)
		return false
	}
	sm.SetState(NewPlayState(sm, frame, func() State { return NewMenuState(sm, l) }))
	return true
}
