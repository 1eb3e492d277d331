// internal/ui/hud.go
package ui

import (
	"fmt"
	"math"

	"go-honey-arcade/internal/config"
	"go-honey-arcade/pkg/render"
)

// HUD — табло: счет, таймер, жизни, рекорд, комбо.
// Ядро только пишет в него, отрисовка идет отдельно.
type HUD struct {
	Title string

	score      int
	timer      float64
	timed      bool
	lives      int
	maxLives   int
	best       int
	combo      int
	multiplier float64

	livesIndicator *LivesIndicator
}

// NewHUD создает табло с заголовком мини-игры
func NewHUD(title string) *HUD {
	return &HUD{
		Title:          title,
		multiplier:     1,
		livesIndicator: NewLivesIndicator(config.LivesIndicatorX, config.LivesIndicatorY),
	}
}

func (h *HUD) SetScore(score int) { h.score = score }

func (h *HUD) SetTimer(seconds float64, timed bool) {
	h.timer = seconds
	h.timed = timed
}

func (h *HUD) SetLives(lives, max int) {
	h.lives = lives
	h.maxLives = max
}

func (h *HUD) SetBest(best int) { h.best = best }

func (h *HUD) SetCombo(combo int, multiplier float64) {
	h.combo = combo
	h.multiplier = multiplier
}

// Text — строки табло слева направо
func (h *HUD) Text() []string {
	parts := []string{fmt.Sprintf("Счет: %d", h.score)}
	if h.timed {
		parts = append(parts, fmt.Sprintf("Время: %d", int(math.Ceil(h.timer))))
	}
	parts = append(parts, fmt.Sprintf("Жизни: %d", h.lives), fmt.Sprintf("Рекорд: %d", h.best))
	if h.combo > 1 {
		parts = append(parts, fmt.Sprintf("Комбо x%.1f", h.multiplier))
	}
	return parts
}

// Draw рисует полосу табло сверху
func (h *HUD) Draw(surf render.Surface) {
	w, _ := surf.Size()
	surf.FillRect(0, 0, float64(w), config.HUDHeight, config.HUDColor)
	x := 12.0
	y := (config.HUDHeight - config.HUDFontSize) / 2.0
	if h.Title != "" {
		surf.Text(h.Title, x, y, config.HUDFontSize, config.TextDarkColor)
		x += render.TextWidth(h.Title, config.HUDFontSize) + 24
	}
	for _, s := range h.Text() {
		surf.Text(s, x, y, config.HUDFontSize, config.TextDarkColor)
		x += render.TextWidth(s, config.HUDFontSize) + 20
	}
	h.livesIndicator.Draw(surf, h.lives, h.maxLives)
}
