package system

import (
	"image/color"
	"testing"

	"go-honey-arcade/internal/component"
	"go-honey-arcade/internal/entity"
	"go-honey-arcade/internal/timer"
	"go-honey-arcade/internal/utils"
)

func TestBurstSpawnsParticles(t *testing.T) {
	pool := entity.NewPool(64)
	fx := NewEffectsSystem(pool, utils.NewPRNGService(2), timer.NewScheduler())
	fx.Burst(10, 10, color.RGBA{R: 255, A: 255}, 12)
	if got := pool.CountKind(component.KindParticle); got != 12 {
		t.Errorf("particles = %d, want 12", got)
	}
}

func TestShakeOffsetIsTimedAndPure(t *testing.T) {
	sched := timer.NewScheduler()
	fx := NewEffectsSystem(entity.NewPool(4), utils.NewPRNGService(2), sched)
	if dx, dy := fx.ShakeOffset(0); dx != 0 || dy != 0 {
		t.Error("no shake before Shake")
	}
	fx.Shake(1, 0.3)
	if !fx.Shaking(1.1) {
		t.Fatal("shake should be active")
	}
	dx1, dy1 := fx.ShakeOffset(1.1)
	dx2, dy2 := fx.ShakeOffset(1.1)
	if dx1 != dx2 || dy1 != dy2 {
		t.Error("offset must depend on time only")
	}
	if dx1 == 0 && dy1 == 0 {
		t.Error("expected a non-zero offset while shaking")
	}
	if fx.Shaking(1.31) {
		t.Error("shake should have ended")
	}
	if dx, dy := fx.ShakeOffset(1.31); dx != 0 || dy != 0 {
		t.Error("offset after shake end")
	}
}

func TestTowerSystemFiresAtNearest(t *testing.T) {
	pool := entity.NewPool(32)
	col := NewCollisionSystem()
	ts := NewTowerSystem(col)
	ts.Place(&component.Tower{Pos: component.Position{X: 0, Y: 0}, Range: 50, Damage: 1, Cooldown: 1, ProjectileSpeed: 100})

	if shots := ts.Update(pool, 0.1); shots != 0 {
		t.Fatal("no targets, no shots")
	}
	far := pool.Spawn(component.NewHazard(component.Position{X: 40, Y: 0}, component.Velocity{}, 5, component.Hazard{Health: 1}))
	near := pool.Spawn(component.NewHazard(component.Position{X: 20, Y: 0}, component.Velocity{}, 5, component.Hazard{Health: 1}))
	if shots := ts.Update(pool, 0.1); shots != 1 {
		t.Fatalf("shots = %d, want 1", shots)
	}
	var target uint64
	pool.Each(func(e *component.Entity) {
		if e.Kind == component.KindProjectile {
			target = uint64(e.Projectile.TargetID)
		}
	})
	if target != uint64(near) || target == uint64(far) {
		t.Errorf("projectile aimed at %d, want nearest %d", target, near)
	}
	if shots := ts.Update(pool, 0.5); shots != 0 {
		t.Error("tower should be cooling down")
	}
	if shots := ts.Update(pool, 0.6); shots != 1 {
		t.Error("tower should fire again after cooldown")
	}
	ts.Clear()
	if len(ts.Towers) != 0 {
		t.Error("Clear")
	}
}
