package component

import (
	"go-honey-arcade/internal/types"
	"go-honey-arcade/pkg/geom"
)

// Kind — вариант сущности. Каждой сущности соответствует ровно одна полезная нагрузка.
type Kind int

const (
	KindCollectible Kind = iota
	KindHazard
	KindProjectile
	KindParticle
)

func (k Kind) String() string {
	switch k {
	case KindCollectible:
		return "collectible"
	case KindHazard:
		return "hazard"
	case KindProjectile:
		return "projectile"
	case KindParticle:
		return "particle"
	}
	return "unknown"
}

// Shape — как сущность рисуется
type Shape string

const (
	ShapeCircle Shape = "circle"
	ShapeDrop   Shape = "drop"
	ShapeStar   Shape = "star"
	ShapeBottle Shape = "bottle"
	ShapeBee    Shape = "bee"
	ShapeCloud  Shape = "cloud"
)

// Entity — временный объект симуляции. Общая часть (позиция, скорость, размер)
// плюс указатель на полезную нагрузку своего варианта.
type Entity struct {
	ID       types.EntityID
	Kind     Kind
	Pos      Position
	Vel      Velocity
	Radius   float64
	Rotation float64 // радианы
	Spin     float64 // радианы в секунду
	Dead     bool    // помечена к удалению, уйдет из пула при Prune

	Collectible *Collectible
	Hazard      *Hazard
	Projectile  *Projectile
	Particle    *Particle
}

// Bounds — ограничивающий прямоугольник для box-тестов
func (e *Entity) Bounds() geom.Rect {
	return geom.RectFromCenter(e.Pos.X, e.Pos.Y, e.Radius, e.Radius)
}

// Circle — окружность для circle-тестов
func (e *Entity) Circle() geom.Circle {
	return geom.Circle{X: e.Pos.X, Y: e.Pos.Y, R: e.Radius}
}

// NewCollectible создает собираемый предмет
func NewCollectible(pos Position, vel Velocity, radius float64, payload Collectible) *Entity {
	return &Entity{Kind: KindCollectible, Pos: pos, Vel: vel, Radius: radius, Collectible: &payload}
}

// NewHazard создает опасность
func NewHazard(pos Position, vel Velocity, radius float64, payload Hazard) *Entity {
	return &Entity{Kind: KindHazard, Pos: pos, Vel: vel, Radius: radius, Hazard: &payload}
}

// NewProjectile создает снаряд башни
func NewProjectile(pos Position, radius float64, payload Projectile) *Entity {
	return &Entity{Kind: KindProjectile, Pos: pos, Radius: radius, Projectile: &payload}
}

// NewParticle создает декоративную частицу
func NewParticle(pos Position, vel Velocity, radius float64, payload Particle) *Entity {
	return &Entity{Kind: KindParticle, Pos: pos, Vel: vel, Radius: radius, Particle: &payload}
}
