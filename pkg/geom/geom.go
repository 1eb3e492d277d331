// Package geom содержит простую 2D-геометрию для тестов пересечений.
package geom

import "math"

// Point — точка на плоскости
type Point struct {
	X, Y float64
}

// Circle — окружность с центром (X, Y) и радиусом R
type Circle struct {
	X, Y, R float64
}

// Rect — прямоугольник, выровненный по осям. (X, Y) — левый верхний угол.
type Rect struct {
	X, Y, W, H float64
}

// Right возвращает координату правой грани.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom возвращает координату нижней грани.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center возвращает центр прямоугольника.
func (r Rect) Center() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// Contains проверяет, лежит ли точка внутри прямоугольника (включая левую и верхнюю грань).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectFromCenter строит прямоугольник по центру и полуразмерам.
func RectFromCenter(cx, cy, halfW, halfH float64) Rect {
	return Rect{X: cx - halfW, Y: cy - halfH, W: halfW * 2, H: halfH * 2}
}

// Dist — евклидово расстояние между двумя точками
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// CirclesOverlap — круги пересекаются, если расстояние между центрами
// строго меньше суммы радиусов. Касание не считается.
func CirclesOverlap(a, b Circle) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	sum := a.R + b.R
	return dx*dx+dy*dy < sum*sum
}

// RectsOverlap — пересечение открытых интервалов по обеим осям.
func RectsOverlap(a, b Rect) bool {
	if a.X >= b.Right() || b.X >= a.Right() {
		return false
	}
	if a.Y >= b.Bottom() || b.Y >= a.Bottom() {
		return false
	}
	return true
}

// ClampF ограничивает значение отрезком [min, max]. NaN превращается в min.
func ClampF(v, min, max float64) float64 {
	if v != v || v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// IsFinite — ни NaN, ни бесконечность
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
