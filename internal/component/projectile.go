// internal/component/projectile.go
package component

import (
	"go-honey-arcade/internal/types"
	"image/color"
)

// Projectile представляет летящий снаряд башни.
type Projectile struct {
	TargetID types.EntityID
	Speed    float64
	Damage   int
	TTL      float64 // сколько секунд снаряду осталось жить
	Color    color.RGBA
}
