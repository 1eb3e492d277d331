package component

import "image/color"

// Collectible — то, что игрок ловит (капля мёда, золотой мёд, бутылочка).
type Collectible struct {
	DefID string
	Value int // очки без учета множителя
	Shape Shape
	Color color.RGBA
}
