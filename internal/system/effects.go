// internal/system/effects.go
package system

import (
	"image/color"
	"math"

	"go-honey-arcade/internal/component"
	"go-honey-arcade/internal/config"
	"go-honey-arcade/internal/entity"
	"go-honey-arcade/internal/timer"
	"go-honey-arcade/internal/utils"
)

// EffectsSystem создает декоративные эффекты: брызги частиц и тряску экрана.
type EffectsSystem struct {
	pool      *entity.Pool
	rng       *utils.PRNGService
	scheduler *timer.Scheduler

	ParticleLife  float64
	ParticleSpeed float64
	ShakeAmp      float64

	shakeDuration float64
}

// NewEffectsSystem создает систему эффектов
func NewEffectsSystem(pool *entity.Pool, rng *utils.PRNGService, scheduler *timer.Scheduler) *EffectsSystem {
	return &EffectsSystem{
		pool:          pool,
		rng:           rng,
		scheduler:     scheduler,
		ParticleLife:  config.ParticleLife,
		ParticleSpeed: config.ParticleSpeed,
		ShakeAmp:      config.ShakeAmplitude,
	}
}

// Burst разбрасывает n частиц из точки (x, y)
func (s *EffectsSystem) Burst(x, y float64, c color.RGBA, n int) {
	for i := 0; i < n; i++ {
		angle := s.rng.Range(0, 2*math.Pi)
		speed := s.rng.Range(0.4, 1) * s.ParticleSpeed
		life := s.rng.Range(0.6, 1) * s.ParticleLife
		vel := component.Velocity{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
		s.pool.Spawn(component.NewParticle(component.Position{X: x, Y: y}, vel, s.rng.Range(1.5, 3.5),
			component.Particle{Life: life, MaxLife: life, Color: c}))
	}
}

// Shake включает тряску экрана на duration секунд симулированного времени
func (s *EffectsSystem) Shake(now, duration float64) {
	if duration <= 0 {
		return
	}
	s.scheduler.CancelKind(timer.ShakeEnd)
	s.scheduler.After(now, duration, timer.ShakeEnd, nil)
	s.shakeDuration = duration
}

// Shaking — идет ли тряска
func (s *EffectsSystem) Shaking(now float64) bool {
	return s.scheduler.Active(timer.ShakeEnd, now)
}

// ShakeOffset — смещение кадра. Зависит только от времени, поэтому
// отрисовка ничего не меняет в состоянии.
func (s *EffectsSystem) ShakeOffset(now float64) (dx, dy float64) {
	left, ok := s.scheduler.Remaining(timer.ShakeEnd, now)
	if !ok || s.shakeDuration <= 0 {
		return 0, 0
	}
	amp := s.ShakeAmp * left / s.shakeDuration
	return amp * math.Sin(now*73), amp * math.Cos(now*91)
}
