// Package termsurface растеризует примитивы render.Surface в ячейки терминала tcell.
// Поле задается в пикселях, каждая ячейка покрывает cellW×cellH пикселей.
package termsurface

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"go-honey-arcade/pkg/geom"
	"go-honey-arcade/pkg/render"
)

const (
	strokeRune = '•'
	fillRune   = ' '
)

type cell struct {
	ch rune
	fg color.RGBA
	bg color.RGBA
}

// Surface копит кадр в буфере ячеек; Show переносит его на экран.
type Surface struct {
	screen     tcell.Screen
	w, h       int
	cols, rows int
	cells      []cell
}

// New создает поверхность с полем w×h пикселей поверх экрана screen
func New(screen tcell.Screen, w, h int) *Surface {
	s := &Surface{screen: screen, w: w, h: h}
	s.Resize()
	return s
}

// Resize подстраивает буфер под текущий размер экрана
func (s *Surface) Resize() {
	cols, rows := 80, 24
	if s.screen != nil {
		cols, rows = s.screen.Size()
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	s.cols, s.rows = cols, rows
	s.cells = make([]cell, cols*rows)
}

// CellSize — сколько пикселей поля приходится на одну ячейку
func (s *Surface) CellSize() (cw, ch float64) {
	return float64(s.w) / float64(s.cols), float64(s.h) / float64(s.rows)
}

// Cell — содержимое ячейки (для тестов)
func (s *Surface) Cell(col, row int) (rune, color.RGBA, color.RGBA) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return 0, color.RGBA{}, color.RGBA{}
	}
	c := s.cells[row*s.cols+col]
	return c.ch, c.fg, c.bg
}

func (s *Surface) Size() (int, int) { return s.w, s.h }

func (s *Surface) Clear(c color.RGBA) {
	for i := range s.cells {
		s.cells[i] = cell{ch: fillRune, bg: c, fg: c}
	}
}

// toCell переводит пиксели в ячейку
func (s *Surface) toCell(x, y float64) (int, int) {
	cw, ch := s.CellSize()
	return int(math.Floor(x / cw)), int(math.Floor(y / ch))
}

// center — центр ячейки в пикселях
func (s *Surface) center(col, row int) (float64, float64) {
	cw, ch := s.CellSize()
	return (float64(col) + 0.5) * cw, (float64(row) + 0.5) * ch
}

func (s *Surface) set(col, row int, fn func(c *cell)) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return
	}
	fn(&s.cells[row*s.cols+col])
}

func (s *Surface) fill(col, row int, c color.RGBA) {
	if c.A == 0 {
		return
	}
	s.set(col, row, func(cl *cell) {
		cl.bg = c
		if cl.ch == fillRune {
			cl.fg = c
		}
	})
}

func (s *Surface) plot(col, row int, c color.RGBA) {
	if c.A == 0 {
		return
	}
	s.set(col, row, func(cl *cell) {
		cl.ch = strokeRune
		cl.fg = c
	})
}

// fillWhere закрашивает ячейки в прямоугольнике, чей центр проходит inside
func (s *Surface) fillWhere(x0, y0, x1, y1 float64, c color.RGBA, inside func(px, py float64) bool) {
	c0, r0 := s.toCell(x0, y0)
	c1, r1 := s.toCell(x1, y1)
	for row := max(r0, 0); row <= min(r1, s.rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, s.cols-1); col++ {
			if inside(s.center(col, row)) {
				s.fill(col, row, c)
			}
		}
	}
}

func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA) {
	s.fillWhere(x, y, x+w, y+h, c, func(px, py float64) bool {
		return px >= x && px < x+w && py >= y && py < y+h
	})
}

func (s *Surface) StrokeRect(x, y, w, h, width float64, c color.RGBA) {
	s.StrokeLine(x, y, x+w, y, width, c)
	s.StrokeLine(x+w, y, x+w, y+h, width, c)
	s.StrokeLine(x+w, y+h, x, y+h, width, c)
	s.StrokeLine(x, y+h, x, y, width, c)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.RGBA) {
	cw, ch := s.CellSize()
	before := s.countFilled(cx-r, cy-r, cx+r, cy+r, c)
	s.fillWhere(cx-r, cy-r, cx+r, cy+r, c, func(px, py float64) bool {
		return geom.Dist(px, py, cx, cy) <= r
	})
	// Мелкий круг меньше ячейки все равно должен быть виден
	if r < math.Max(cw, ch) && s.countFilled(cx-r, cy-r, cx+r, cy+r, c) == before {
		col, row := s.toCell(cx, cy)
		s.fill(col, row, c)
	}
}

func (s *Surface) countFilled(x0, y0, x1, y1 float64, c color.RGBA) int {
	c0, r0 := s.toCell(x0, y0)
	c1, r1 := s.toCell(x1, y1)
	n := 0
	for row := max(r0, 0); row <= min(r1, s.rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, s.cols-1); col++ {
			if s.cells[row*s.cols+col].bg == c {
				n++
			}
		}
	}
	return n
}

func (s *Surface) StrokeCircle(cx, cy, r, width float64, c color.RGBA) {
	const segments = 24
	for i := 0; i < segments; i++ {
		a0 := 2 * math.Pi * float64(i) / segments
		a1 := 2 * math.Pi * float64(i+1) / segments
		s.StrokeLine(cx+r*math.Cos(a0), cy+r*math.Sin(a0), cx+r*math.Cos(a1), cy+r*math.Sin(a1), width, c)
	}
}

// StrokeLine рисует отрезок алгоритмом Брезенхэма по ячейкам
func (s *Surface) StrokeLine(x0, y0, x1, y1, _ float64, c color.RGBA) {
	ax, ay := s.toCell(x0, y0)
	bx, by := s.toCell(x1, y1)
	dx, dy := abs(bx-ax), -abs(by-ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	e := dx + dy
	for {
		s.plot(ax, ay, c)
		if ax == bx && ay == by {
			return
		}
		if e2 := 2 * e; e2 >= dy {
			e += dy
			ax += sx
		} else {
			e += dx
			ay += sy
		}
	}
}

func (s *Surface) FillPolygon(points []geom.Point, c color.RGBA) {
	if len(points) < 3 {
		return
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	s.fillWhere(minX, minY, maxX, maxY, c, func(px, py float64) bool {
		return insidePolygon(points, px, py)
	})
}

// insidePolygon — правило четности лучей
func insidePolygon(pts []geom.Point, x, y float64) bool {
	in := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

// Text пишет строку с ячейки, где лежит (x, y). Размер шрифта в терминале не важен.
func (s *Surface) Text(str string, x, y, _ float64, c color.RGBA) {
	col, row := s.toCell(x, y)
	for _, r := range str {
		s.set(col, row, func(cl *cell) {
			cl.ch = r
			cl.fg = c
		})
		col++
	}
}

// Show выводит буфер на экран
func (s *Surface) Show() {
	if s.screen == nil {
		return
	}
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			c := s.cells[row*s.cols+col]
			style := tcell.StyleDefault.Foreground(toColor(c.fg)).Background(toColor(c.bg))
			s.screen.SetContent(col, row, c.ch, nil, style)
		}
	}
	s.screen.Show()
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var _ render.Surface = (*Surface)(nil)
