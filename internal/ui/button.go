// internal/ui/button.go
package ui

import (
	"image/color"
	"strconv"

	"go-honey-arcade/internal/config"
	"go-honey-arcade/pkg/geom"
	"go-honey-arcade/pkg/render"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect      geom.Rect
	Text      string
	Subtitle  string
	TextColor color.RGBA
	BgColor   color.RGBA
	FontSize  float64
	Selected  bool
}

// NewButton создает новую кнопку.
func NewButton(rect geom.Rect, text string) *Button {
	return &Button{
		Rect:      rect,
		Text:      text,
		TextColor: config.TextDarkColor,
		BgColor:   config.SkyBandColor,
		FontSize:  config.HUDFontSize,
	}
}

// IsClicked проверяет, попадает ли точка в кнопку.
func (b *Button) IsClicked(x, y float64) bool {
	return b.Rect.Contains(x, y)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(surf render.Surface) {
	bg := b.BgColor
	border := render.DarkenColor(bg)
	if b.Selected {
		bg = render.LightenColor(bg, 30)
		border = config.TextDarkColor
	}
	surf.FillRect(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, bg)
	surf.StrokeRect(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, 2, border)

	c := b.Rect.Center()
	textY := c.Y - b.FontSize/2
	if b.Subtitle != "" {
		textY -= b.FontSize / 2
		render.CenteredText(surf, b.Subtitle, c.X, textY+b.FontSize+4, b.FontSize*0.8, b.TextColor)
	}
	render.CenteredText(surf, b.Text, c.X, textY, b.FontSize, b.TextColor)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
