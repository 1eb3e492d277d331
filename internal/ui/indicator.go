// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"

	"go-honey-arcade/internal/config"
	"go-honey-arcade/pkg/render"
)

// SelectionIndicator показывает выбранный вид башни: кружок ее цвета
// с подписью. При смене выбора кружок коротко «пульсирует».
type SelectionIndicator struct {
	X, Y   float64
	Radius float64

	lastChange float64
	changed    bool
}

// NewSelectionIndicator создает индикатор
func NewSelectionIndicator(x, y, radius float64) *SelectionIndicator {
	return &SelectionIndicator{X: x, Y: y, Radius: radius}
}

// Pulse запускает анимацию смены выбора
func (i *SelectionIndicator) Pulse(now float64) {
	i.lastChange = now
	i.changed = true
}

// Draw рисует индикатор; label — имя башни, left — сколько башен еще можно поставить
func (i *SelectionIndicator) Draw(surf render.Surface, now float64, c color.RGBA, label string, left int) {
	scale := 1.0
	if i.changed {
		scale += 0.3 * math.Exp(-(now-i.lastChange)*8)
	}
	r := i.Radius * scale
	surf.FillCircle(i.X, i.Y, r, c)
	surf.StrokeCircle(i.X, i.Y, r, 2, config.TextLightColor)
	surf.Text(label, i.X+i.Radius+8, i.Y-config.HUDFontSize/2, config.HUDFontSize, config.TextDarkColor)
	if left >= 0 {
		surf.Text(itoa(left), i.X-4, i.Y+i.Radius+4, config.HUDFontSize, config.TextDarkColor)
	}
}
