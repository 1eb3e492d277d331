// pkg/hexmap/hex.go
package hexmap

import (
	"math"

	"go-honey-arcade/pkg/geom"
)

// Hex представляет гекс в осевых координатах (Q, R)
type Hex struct {
	Q, R int
}

// NeighborDirections — 6 направлений, начиная с востока против часовой стрелки.
var NeighborDirections = []Hex{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// Layout описывает, как гексы ложатся на экран (pointy top ориентация).
type Layout struct {
	Size    float64 // Радиус гекса в пикселях
	OriginX float64 // Экранные координаты центра гекса (0, 0)
	OriginY float64
}

// ToPixel конвертирует гекс в пиксельные координаты центра
func (l Layout) ToPixel(h Hex) (x, y float64) {
	x = l.Size*(Sqrt3*float64(h.Q)+Sqrt3/2*float64(h.R)) + l.OriginX
	y = l.Size*(3.0/2.0*float64(h.R)) + l.OriginY
	return
}

// FromPixel конвертирует пиксельные координаты в ближайший гекс
func (l Layout) FromPixel(x, y float64) Hex {
	x -= l.OriginX
	y -= l.OriginY
	q := (Sqrt3/3*x - 1.0/3*y) / l.Size
	r := (2.0 / 3 * y) / l.Size
	return axialRound(q, r)
}

// Corners возвращает 6 вершин гекса на экране.
func (l Layout) Corners(h Hex) []geom.Point {
	cx, cy := l.ToPixel(h)
	pts := make([]geom.Point, 6)
	for i := 0; i < 6; i++ {
		angle := math.Pi/3*float64(i) + math.Pi/6
		pts[i] = geom.Point{X: cx + l.Size*math.Cos(angle), Y: cy + l.Size*math.Sin(angle)}
	}
	return pts
}

// Add возвращает сумму двух гексов
func (h Hex) Add(other Hex) Hex {
	return Hex{Q: h.Q + other.Q, R: h.R + other.R}
}

// Neighbors возвращает соседей гекса, существующих на поле
func (h Hex) Neighbors(b *Board) []Hex {
	valid := make([]Hex, 0, 6)
	for _, d := range NeighborDirections {
		n := h.Add(d)
		if b.Contains(n) {
			valid = append(valid, n)
		}
	}
	return valid
}

// Distance вычисляет расстояние между гексами
func (h Hex) Distance(to Hex) int {
	dq := h.Q - to.Q
	dr := h.R - to.R
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}
