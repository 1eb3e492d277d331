// internal/state/menu_state.go
package state

import (
	"fmt"

	"go-honey-arcade/internal/app"
	"go-honey-arcade/internal/config"
	"go-honey-arcade/internal/input"
	"go-honey-arcade/internal/ui"
	"go-honey-arcade/pkg/geom"
	"go-honey-arcade/pkg/render"
)

var menuGames = []struct {
	name  string
	title string
}{
	{app.GameHoney, "Лови мёд"},
	{app.GameDefense, "Защити детскую"},
}

// MenuState — выбор мини-игры, показывает оба рекорда
type MenuState struct {
	sm       *StateMachine
	launcher *Launcher
	buttons  []*ui.Button
	selected int
}

func NewMenuState(sm *StateMachine, launcher *Launcher) *MenuState {
	m := &MenuState{sm: sm, launcher: launcher}
	const bw, bh = 320.0, 72.0
	x := (config.ScreenWidth - bw) / 2
	for i, g := range menuGames {
		rect := geom.Rect{X: x, Y: 200 + float64(i)*(bh+24), W: bw, H: bh}
		m.buttons = append(m.buttons, ui.NewButton(rect, g.title))
	}
	return m
}

// Enter перечитывает рекорды: они могли измениться в прошлой партии
func (m *MenuState) Enter() {
	for i, g := range menuGames {
		m.buttons[i].Subtitle = fmt.Sprintf("Рекорд: %d", m.launcher.Best(g.name))
	}
	m.selectButton(m.selected)
}

func (m *MenuState) selectButton(i int) {
	m.selected = (i + len(m.buttons)) % len(m.buttons)
	for j, b := range m.buttons {
		b.Selected = j == m.selected
	}
}

func (m *MenuState) Update(in input.Intents, dt float64) {
	switch {
	case in.Has(input.Back):
		m.sm.Quit()
		return
	case in.Has(input.MoveLeft) || in.Has(input.Jump):
		m.selectButton(m.selected - 1)
	case in.Has(input.MoveRight):
		m.selectButton(m.selected + 1)
	}
	if in.Has(input.Pointer) {
		for i, b := range m.buttons {
			if b.IsClicked(in.PointerX, in.PointerY) {
				m.selectButton(i)
				m.launcher.Play(m.sm, menuGames[i].name)
				return
			}
		}
	}
	if in.Has(input.Start) {
		m.launcher.Play(m.sm, menuGames[m.selected].name)
	}
}

func (m *MenuState) Draw(surf render.Surface) {
	w, _ := surf.Size()
	surf.Clear(config.BackgroundColor)
	render.CenteredText(surf, "Медовая аркада", float64(w)/2, 110, config.OverlayFontSize, config.TextDarkColor)
	for _, b := range m.buttons {
		b.Draw(surf)
	}
	render.CenteredText(surf, "Enter — играть, Esc — выход", float64(w)/2, 420, config.HUDFontSize, config.TextDarkColor)
}

func (m *MenuState) Exit() {}
