// internal/component/tower.go
package component

import (
	"go-honey-arcade/pkg/hexmap"
	"image/color"
)

// Tower — башня защиты. Живет до сброса игры.
type Tower struct {
	DefID           string
	Hex             hexmap.Hex // Гекс, на котором стоит башня
	Pos             Position
	Range           float64 // радиус действия в пикселях
	Damage          int
	Cooldown        float64 // секунд между выстрелами
	CooldownLeft    float64 // до следующего выстрела
	ProjectileSpeed float64
	Color           color.RGBA
}

// Ready — может ли башня выстрелить
func (t *Tower) Ready() bool {
	return t.CooldownLeft <= 0
}
