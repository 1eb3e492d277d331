// pkg/hexmap/map.go
package hexmap

import (
	"errors"
	"sort"
)

// ErrNoPath — вход и выход не соединены
var ErrNoPath = errors.New("hexmap: no path between entry and exit")

// Tile — клетка поля
type Tile struct {
	Passable  bool
	Buildable bool
}

// Board — поле для защиты: шестиугольник гексов, вход, выход и путь между ними.
type Board struct {
	Tiles  map[Hex]Tile
	Radius int
	Entry  Hex
	Exit   Hex
	Path   []Hex
}

// NewBoard строит поле радиуса radius. Каждый внутренний гекс с вероятностью
// obstacleChance становится камнем. rnd возвращает число в [0, 1).
// Если камни перекрыли путь, они убираются и путь строится по чистому полю.
func NewBoard(radius int, obstacleChance float64, rnd func() float64) (*Board, error) {
	if radius < 1 {
		radius = 1
	}
	b := &Board{
		Tiles:  make(map[Hex]Tile),
		Radius: radius,
		Entry:  Hex{Q: -radius, R: radius / 2},
		Exit:   Hex{Q: radius, R: -radius / 2},
	}
	for _, h := range b.hexagon() {
		b.Tiles[h] = Tile{Passable: true, Buildable: true}
	}

	if obstacleChance > 0 && rnd != nil {
		for _, h := range b.SortedHexes() {
			if h == b.Entry || h == b.Exit || h.Distance(b.Entry) < 2 || h.Distance(b.Exit) < 2 {
				continue
			}
			if rnd() < obstacleChance {
				b.Tiles[h] = Tile{Passable: false, Buildable: false}
			}
		}
	}

	path := AStar(b.Entry, b.Exit, b)
	if path == nil {
		// Камни отрезали выход — чистим поле
		for h := range b.Tiles {
			b.Tiles[h] = Tile{Passable: true, Buildable: true}
		}
		path = AStar(b.Entry, b.Exit, b)
		if path == nil {
			return nil, ErrNoPath
		}
	}
	b.Path = path
	for _, h := range path {
		b.Tiles[h] = Tile{Passable: true, Buildable: false}
	}
	return b, nil
}

func (b *Board) hexagon() []Hex {
	r := b.Radius
	var out []Hex
	for q := -r; q <= r; q++ {
		r1 := max(-r, -q-r)
		r2 := min(r, -q+r)
		for rr := r1; rr <= r2; rr++ {
			out = append(out, Hex{Q: q, R: rr})
		}
	}
	return out
}

// SortedHexes возвращает все гексы поля в стабильном порядке (по R, затем по Q).
func (b *Board) SortedHexes() []Hex {
	hexes := make([]Hex, 0, len(b.Tiles))
	for h := range b.Tiles {
		hexes = append(hexes, h)
	}
	sort.Slice(hexes, func(i, j int) bool {
		if hexes[i].R != hexes[j].R {
			return hexes[i].R < hexes[j].R
		}
		return hexes[i].Q < hexes[j].Q
	})
	return hexes
}

// Contains проверяет, принадлежит ли гекс полю
func (b *Board) Contains(h Hex) bool {
	_, ok := b.Tiles[h]
	return ok
}

// IsPassable — можно ли пройти по гексу
func (b *Board) IsPassable(h Hex) bool {
	t, ok := b.Tiles[h]
	return ok && t.Passable
}

// CanBuild — можно ли поставить башню на гекс
func (b *Board) CanBuild(h Hex) bool {
	t, ok := b.Tiles[h]
	return ok && t.Buildable
}

// OnPath — лежит ли гекс на пути врагов
func (b *Board) OnPath(h Hex) bool {
	for _, p := range b.Path {
		if p == h {
			return true
		}
	}
	return false
}
