// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"

	"go-honey-arcade/pkg/geom"
	"go-honey-arcade/pkg/render"
)

// PauseButton — круглая кнопка паузы. Анимация отклика считается
// по переданному времени, а не по часам системы.
type PauseButton struct {
	X, Y       float64
	Size       float64
	IsPaused   bool
	PauseColor color.RGBA
	PlayColor  color.RGBA

	lastClick float64
	clicked   bool
}

// NewPauseButton создает кнопку с центром (x, y)
func NewPauseButton(x, y, size float64, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{X: x, Y: y, Size: size, PauseColor: pauseColor, PlayColor: playColor}
}

// IsClicked — попадает ли точка в кнопку
func (b *PauseButton) IsClicked(x, y float64) bool {
	return geom.Dist(x, y, b.X, b.Y) <= b.Size*1.5
}

// Press отмечает нажатие в момент now для анимации
func (b *PauseButton) Press(now float64) {
	b.lastClick = now
	b.clicked = true
}

// SetPaused синхронизирует иконку с фазой игры
func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}

// Draw рисует «паузу» (две полосы) или «пуск» (треугольник)
func (b *PauseButton) Draw(surf render.Surface, now float64) {
	scale := 1.0
	if b.clicked {
		scale += 0.3 * math.Exp(-(now-b.lastClick)*8)
	}
	size := b.Size * scale

	if b.IsPaused {
		p := []geom.Point{
			{X: b.X - size, Y: b.Y - size*1.2},
			{X: b.X - size, Y: b.Y + size*1.2},
			{X: b.X + size, Y: b.Y},
		}
		surf.FillPolygon(p, b.PlayColor)
		return
	}
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	surf.FillRect(b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor)
	surf.FillRect(b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor)
}
