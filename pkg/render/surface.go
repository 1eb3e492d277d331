// Package render описывает поверхность рисования, на которую игры выводят кадр.
// Поверхность умеет только примитивы, читать с нее нельзя.
package render

import (
	"image/color"

	"go-honey-arcade/pkg/geom"
)

// Surface — поверхность рисования. Координаты в пикселях логического экрана.
type Surface interface {
	Size() (w, h int)
	Clear(c color.RGBA)
	FillRect(x, y, w, h float64, c color.RGBA)
	StrokeRect(x, y, w, h, width float64, c color.RGBA)
	FillCircle(cx, cy, r float64, c color.RGBA)
	StrokeCircle(cx, cy, r, width float64, c color.RGBA)
	StrokeLine(x0, y0, x1, y1, width float64, c color.RGBA)
	FillPolygon(points []geom.Point, c color.RGBA)
	// Text выводит строку; (x, y) — левый верхний угол, size — кегль в пикселях
	Text(s string, x, y, size float64, c color.RGBA)
}

// TextWidth — приблизительная ширина строки для центрирования.
// Точные метрики у каждой поверхности свои, для раскладки хватает оценки.
func TextWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * 0.55
}

// CenteredText выводит строку по центру относительно cx
func CenteredText(s Surface, str string, cx, y, size float64, c color.RGBA) {
	s.Text(str, cx-TextWidth(str, size)/2, y, size, c)
}
