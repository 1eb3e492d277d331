// internal/system/collision.go
package system

import (
	"go-honey-arcade/internal/component"
	"go-honey-arcade/internal/entity"
	"go-honey-arcade/internal/types"
	"go-honey-arcade/pkg/geom"
)

// CollisionSystem находит столкновения. Каждая сущность обрабатывается
// не больше одного раза: сначала Kill, колбэк только если Kill удался.
type CollisionSystem struct{}

// NewCollisionSystem создает детектор столкновений
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// CatchCollisions проверяет актора против каждого живого предмета и опасности.
// Все пересекающиеся сущности обрабатываются в этом же кадре.
func (s *CollisionSystem) CatchCollisions(actor *component.Actor, pool *entity.Pool, onHit func(e *component.Entity)) int {
	if actor == nil {
		return 0
	}
	box := actor.Rect()
	hits := 0
	pool.Each(func(e *component.Entity) {
		if e.Kind != component.KindCollectible && e.Kind != component.KindHazard {
			return
		}
		if !geom.RectsOverlap(box, e.Bounds()) {
			return
		}
		if !pool.Kill(e.ID) {
			return
		}
		hits++
		if onHit != nil {
			onHit(e)
		}
	})
	return hits
}

// ProjectileHits проверяет снаряды против опасностей (окружности).
// Снаряд тратится на первое попадание; destroyed — опасность уничтожена этим снарядом.
func (s *CollisionSystem) ProjectileHits(pool *entity.Pool, onHit func(proj, hazard *component.Entity, destroyed bool)) int {
	var hazards []*component.Entity
	pool.Each(func(e *component.Entity) {
		if e.Kind == component.KindHazard {
			hazards = append(hazards, e)
		}
	})
	if len(hazards) == 0 {
		return 0
	}
	hits := 0
	pool.Each(func(p *component.Entity) {
		if p.Kind != component.KindProjectile {
			return
		}
		for _, h := range hazards {
			if h.Dead || !geom.CirclesOverlap(p.Circle(), h.Circle()) {
				continue
			}
			if !pool.Kill(p.ID) {
				return
			}
			hits++
			h.Hazard.Health -= p.Projectile.Damage
			destroyed := false
			if h.Hazard.Health <= 0 {
				destroyed = pool.Kill(h.ID)
			}
			if onHit != nil {
				onHit(p, h, destroyed)
			}
			return
		}
	})
	return hits
}

// NearestInRange — ближайшая живая опасность на расстоянии не больше r от (x, y).
// При равных расстояниях выбирается меньший ID.
func (s *CollisionSystem) NearestInRange(pool *entity.Pool, x, y, r float64) (types.EntityID, bool) {
	var best types.EntityID
	bestDist := 0.0
	found := false
	pool.Each(func(e *component.Entity) {
		if e.Kind != component.KindHazard || e.Hazard.Escaped {
			return
		}
		d := geom.Dist(x, y, e.Pos.X, e.Pos.Y)
		if d > r {
			return
		}
		if !found || d < bestDist || (d == bestDist && e.ID < best) {
			best, bestDist, found = e.ID, d, true
		}
	})
	return best, found
}

// Escapes убирает опасности, дошедшие до конца пути, и сообщает о каждой один раз
func (s *CollisionSystem) Escapes(pool *entity.Pool, onEscape func(e *component.Entity)) int {
	n := 0
	pool.Each(func(e *component.Entity) {
		if e.Kind != component.KindHazard || !e.Hazard.Escaped {
			return
		}
		if !pool.Kill(e.ID) {
			return
		}
		n++
		if onEscape != nil {
			onEscape(e)
		}
	})
	return n
}
