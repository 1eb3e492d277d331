// Package rlsurface рисует примитивы render.Surface через raylib.
// Вызывать только между rl.BeginDrawing и rl.EndDrawing в потоке окна.
package rlsurface

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/image/font/gofont/goregular"

	"go-honey-arcade/pkg/geom"
	"go-honey-arcade/pkg/render"
)

const fontBaseSize = 64

// Surface — экран raylib размера w×h
type Surface struct {
	w, h int
	font rl.Font
}

// fontChars — латиница и кириллица
func fontChars() []rune {
	var chars []rune
	for i := 32; i <= 127; i++ {
		chars = append(chars, rune(i))
	}
	for i := 0x0400; i <= 0x04FF; i++ {
		chars = append(chars, rune(i))
	}
	return append(chars, '—', '←', '→', '«', '»')
}

// New загружает шрифт Go Regular. Окно уже должно быть открыто.
func New(w, h int) *Surface {
	chars := fontChars()
	font := rl.LoadFontFromMemory(".ttf", goregular.TTF, fontBaseSize, chars)
	return &Surface{w: w, h: h, font: font}
}

// Close выгружает шрифт
func (s *Surface) Close() {
	rl.UnloadFont(s.font)
}

func (s *Surface) Size() (int, int) { return s.w, s.h }

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func vec(x, y float64) rl.Vector2 {
	return rl.NewVector2(float32(x), float32(y))
}

func (s *Surface) Clear(c color.RGBA) {
	rl.ClearBackground(toRL(c))
}

func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA) {
	rl.DrawRectangleRec(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), toRL(c))
}

func (s *Surface) StrokeRect(x, y, w, h, width float64, c color.RGBA) {
	rl.DrawRectangleLinesEx(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), float32(width), toRL(c))
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.RGBA) {
	rl.DrawCircleV(vec(cx, cy), float32(r), toRL(c))
}

func (s *Surface) StrokeCircle(cx, cy, r, width float64, c color.RGBA) {
	inner := r - width/2
	if inner < 0 {
		inner = 0
	}
	rl.DrawRing(vec(cx, cy), float32(inner), float32(r+width/2), 0, 360, 36, toRL(c))
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.RGBA) {
	rl.DrawLineEx(vec(x0, y0), vec(x1, y1), float32(width), toRL(c))
}

// FillPolygon режет выпуклый многоугольник веером треугольников.
// raylib рисует только треугольники против часовой стрелки на экране.
func (s *Surface) FillPolygon(points []geom.Point, c color.RGBA) {
	if len(points) < 3 {
		return
	}
	col := toRL(c)
	a := points[0]
	for i := 1; i+1 < len(points); i++ {
		b, d := points[i], points[i+1]
		if cross(a, b, d) > 0 {
			b, d = d, b
		}
		rl.DrawTriangle(vec(a.X, a.Y), vec(b.X, b.Y), vec(d.X, d.Y), col)
	}
}

func cross(a, b, c geom.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func (s *Surface) Text(str string, x, y, size float64, c color.RGBA) {
	rl.DrawTextEx(s.font, str, vec(x, y), float32(size), 1, toRL(c))
}

var _ render.Surface = (*Surface)(nil)
