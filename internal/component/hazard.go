package component

import "image/color"

// Hazard — опасность: пчела в ловле мёда или враг на пути в защите.
type Hazard struct {
	DefID     string
	Damage    int // сколько жизней снимает при попадании/прорыве
	Health    int
	MaxHealth int
	Value     int // очки за уничтожение
	Shape     Shape
	Color     color.RGBA

	Bounce bool // отскакивает от боковых стен

	// Движение по пути (только защита)
	Speed     float64
	Path      []Position
	PathIndex int
	Escaped   bool // дошла до конца пути
}

// FollowsPath — движется ли опасность по пути, а не под действием гравитации
func (h *Hazard) FollowsPath() bool {
	return len(h.Path) > 0
}
