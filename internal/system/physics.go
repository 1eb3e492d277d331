// internal/system/physics.go
package system

import (
	"math"

	"go-honey-arcade/internal/component"
	"go-honey-arcade/internal/entity"
	"go-honey-arcade/internal/input"
	"go-honey-arcade/pkg/geom"
)

// PhysicsSystem двигает сущности и актора. Все скорости в пикселях в секунду.
type PhysicsSystem struct {
	Gravity       float64   // для падающих предметов и частиц
	ActorGravity  float64   // для игрока
	Friction      float64   // множитель горизонтальной скорости за тик при 60 FPS
	BounceDamping float64   // доля скорости после отскока от стены
	Bounds        geom.Rect // игровое поле
	Floor         float64   // линия пола для актора
	KillY         float64   // ниже этой линии сущность считается упавшей
}

// sanitizeDelta — отрицательный или нечисловой шаг превращается в ноль
func sanitizeDelta(dt float64) float64 {
	if dt < 0 || !geom.IsFinite(dt) {
		return 0
	}
	return dt
}

// Step продвигает все живые сущности пула на dt. Возвращает сущности,
// упавшие ниже KillY на этом шаге (они уже убиты).
func (s *PhysicsSystem) Step(pool *entity.Pool, dt float64) []*component.Entity {
	dt = sanitizeDelta(dt)
	var fallen []*component.Entity
	pool.Each(func(e *component.Entity) {
		switch e.Kind {
		case component.KindCollectible:
			s.fall(e, dt)
		case component.KindHazard:
			if e.Hazard.FollowsPath() {
				s.followPath(e, dt)
			} else {
				s.fall(e, dt)
				if e.Hazard.Bounce {
					s.bounce(e)
				}
			}
		case component.KindProjectile:
			s.fly(pool, e, dt)
		case component.KindParticle:
			s.drift(e, dt)
			e.Particle.Life -= dt
			if e.Particle.Life <= 0 {
				pool.Kill(e.ID)
				return
			}
		}

		if !s.sanitize(e) {
			pool.Kill(e.ID)
			return
		}
		if e.Kind != component.KindProjectile && e.Pos.Y-e.Radius > s.KillY {
			if pool.Kill(e.ID) {
				fallen = append(fallen, e)
			}
		}
	})
	return fallen
}

func (s *PhysicsSystem) fall(e *component.Entity, dt float64) {
	e.Vel.Y += s.Gravity * dt
	e.Pos.X += e.Vel.X * dt
	e.Pos.Y += e.Vel.Y * dt
	e.Rotation = math.Mod(e.Rotation+e.Spin*dt, 2*math.Pi)
}

func (s *PhysicsSystem) drift(e *component.Entity, dt float64) {
	e.Vel.X *= math.Pow(s.friction(), dt*60)
	s.fall(e, dt)
}

func (s *PhysicsSystem) friction() float64 {
	if s.Friction <= 0 || s.Friction > 1 {
		return 1
	}
	return s.Friction
}

// bounce отражает сущность от боковых стен поля
func (s *PhysicsSystem) bounce(e *component.Entity) {
	left := s.Bounds.X + e.Radius
	right := s.Bounds.Right() - e.Radius
	if e.Pos.X < left {
		e.Pos.X = left
		e.Vel.X = math.Abs(e.Vel.X) * s.BounceDamping
	} else if e.Pos.X > right {
		e.Pos.X = right
		e.Vel.X = -math.Abs(e.Vel.X) * s.BounceDamping
	}
}

// followPath ведет опасность по точкам пути. Остаток шага переносится
// на следующий отрезок, чтобы быстрая опасность не тормозила на углах.
func (s *PhysicsSystem) followPath(e *component.Entity, dt float64) {
	h := e.Hazard
	if h.Escaped {
		return
	}
	step := h.Speed * dt
	for step > 0 && h.PathIndex < len(h.Path) {
		target := h.Path[h.PathIndex]
		dx, dy := target.X-e.Pos.X, target.Y-e.Pos.Y
		dist := math.Hypot(dx, dy)
		if dist <= step {
			e.Pos.X, e.Pos.Y = target.X, target.Y
			step -= dist
			h.PathIndex++
			continue
		}
		e.Pos.X += dx / dist * step
		e.Pos.Y += dy / dist * step
		if dt > 0 {
			e.Vel.X, e.Vel.Y = dx/dist*h.Speed, dy/dist*h.Speed
		}
		step = 0
	}
	if h.PathIndex >= len(h.Path) {
		h.Escaped = true
		e.Vel = component.Velocity{}
	}
}

// fly ведет самонаводящийся снаряд. Без цели снаряд летит прямо.
func (s *PhysicsSystem) fly(pool *entity.Pool, e *component.Entity, dt float64) {
	p := e.Projectile
	if target, ok := pool.Get(p.TargetID); ok {
		dx, dy := target.Pos.X-e.Pos.X, target.Pos.Y-e.Pos.Y
		if d := math.Hypot(dx, dy); d > 0 {
			e.Vel.X, e.Vel.Y = dx/d*p.Speed, dy/d*p.Speed
		}
	}
	e.Pos.X += e.Vel.X * dt
	e.Pos.Y += e.Vel.Y * dt
	p.TTL -= dt
	margin := e.Radius * 4
	outside := e.Pos.X < s.Bounds.X-margin || e.Pos.X > s.Bounds.Right()+margin ||
		e.Pos.Y < s.Bounds.Y-margin || e.Pos.Y > s.Bounds.Bottom()+margin
	if p.TTL <= 0 || outside {
		pool.Kill(e.ID)
	}
}

// sanitize заменяет нечисловые координаты границами поля. false — сущность испорчена.
func (s *PhysicsSystem) sanitize(e *component.Entity) bool {
	ok := true
	if !geom.IsFinite(e.Pos.X) {
		e.Pos.X = geom.ClampF(e.Pos.X, s.Bounds.X, s.Bounds.Right())
		ok = false
	}
	if !geom.IsFinite(e.Pos.Y) {
		e.Pos.Y = geom.ClampF(e.Pos.Y, s.Bounds.Y, s.Bounds.Bottom())
		ok = false
	}
	if !geom.IsFinite(e.Vel.X) || !geom.IsFinite(e.Vel.Y) {
		e.Vel = component.Velocity{}
		ok = false
	}
	return ok
}

// StepActor применяет намерения игрока и двигает актора
func (s *PhysicsSystem) StepActor(a *component.Actor, in input.Intents, dt float64) {
	dt = sanitizeDelta(dt)
	left, right := in.Has(input.MoveLeft), in.Has(input.MoveRight)
	switch {
	case left && !right:
		a.Vel.X = -a.Speed
	case right && !left:
		a.Vel.X = a.Speed
	default:
		a.Vel.X *= math.Pow(s.friction(), dt*60)
		if math.Abs(a.Vel.X) < 1 {
			a.Vel.X = 0
		}
	}
	if in.Has(input.Jump) && a.OnGround {
		a.Vel.Y = -a.JumpImpulse
		a.OnGround = false
	}
	a.Vel.Y += s.ActorGravity * dt
	a.Pos.X += a.Vel.X * dt
	a.Pos.Y += a.Vel.Y * dt

	half := a.Width / 2
	a.Pos.X = geom.ClampF(a.Pos.X, s.Bounds.X+half, s.Bounds.Right()-half)
	if !geom.IsFinite(a.Pos.Y) || a.Pos.Y >= s.Floor {
		a.Pos.Y = s.Floor
		a.Vel.Y = 0
		a.OnGround = true
	}
	if a.Pos.Y < s.Bounds.Y+a.Height {
		a.Pos.Y = s.Bounds.Y + a.Height
		a.Vel.Y = 0
	}
	if !geom.IsFinite(a.Vel.X) || !geom.IsFinite(a.Vel.Y) {
		a.Vel = component.Velocity{}
	}
}
