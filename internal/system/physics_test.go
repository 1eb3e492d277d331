package system

import (
	"math"
	"testing"

	"go-honey-arcade/internal/component"
	"go-honey-arcade/internal/entity"
	"go-honey-arcade/internal/input"
	"go-honey-arcade/internal/utils"
	"go-honey-arcade/pkg/geom"
)

func testPhysics() *PhysicsSystem {
	return &PhysicsSystem{
		Gravity:       100,
		ActorGravity:  1000,
		Friction:      0.85,
		BounceDamping: 0.8,
		Bounds:        geom.Rect{X: 0, Y: 0, W: 800, H: 600},
		Floor:         540,
		KillY:         560,
	}
}

func TestPhysicsPositionsStayFinite(t *testing.T) {
	p := testPhysics()
	pool := entity.NewPool(256)
	rng := utils.NewPRNGService(9)
	for i := 0; i < 40; i++ {
		pos := component.Position{X: rng.Range(0, 800), Y: rng.Range(0, 500)}
		vel := component.Velocity{X: rng.Range(-500, 500), Y: rng.Range(-500, 500)}
		switch i % 4 {
		case 0:
			pool.Spawn(component.NewCollectible(pos, vel, 10, component.Collectible{Value: 10}))
		case 1:
			pool.Spawn(component.NewHazard(pos, vel, 10, component.Hazard{Health: 1, Bounce: true}))
		case 2:
			pool.Spawn(component.NewHazard(pos, vel, 10, component.Hazard{Health: 3, Speed: 80,
				Path: []component.Position{{X: 100, Y: 100}, {X: 700, Y: 300}}}))
		case 3:
			pool.Spawn(component.NewParticle(pos, vel, 2, component.Particle{Life: 5, MaxLife: 5}))
		}
	}
	deltas := []float64{0, 1.0 / 60, 0.06, 0.5, 3, 1e6}
	for _, dt := range deltas {
		p.Step(pool, dt)
		pool.Each(func(e *component.Entity) {
			if !geom.IsFinite(e.Pos.X) || !geom.IsFinite(e.Pos.Y) {
				t.Fatalf("dt=%v: entity %d has non-finite position %+v", dt, e.ID, e.Pos)
			}
		})
		pool.Prune()
	}
}

func TestPhysicsKillsNonFinite(t *testing.T) {
	p := testPhysics()
	pool := entity.NewPool(8)
	id := pool.Spawn(component.NewCollectible(component.Position{X: math.NaN(), Y: 10}, component.Velocity{}, 5, component.Collectible{}))
	p.Step(pool, 0.016)
	if _, ok := pool.Get(id); ok {
		t.Error("entity with NaN position must be killed")
	}
}

func TestPhysicsNegativeDeltaIsZero(t *testing.T) {
	p := testPhysics()
	pool := entity.NewPool(8)
	id := pool.Spawn(component.NewCollectible(component.Position{X: 10, Y: 10}, component.Velocity{Y: 50}, 5, component.Collectible{}))
	p.Step(pool, -1)
	e, _ := pool.Get(id)
	if e.Pos.Y != 10 || e.Vel.Y != 50 {
		t.Errorf("negative dt moved the entity: %+v %+v", e.Pos, e.Vel)
	}
}

func TestPhysicsReportsFallen(t *testing.T) {
	p := testPhysics()
	pool := entity.NewPool(8)
	pool.Spawn(component.NewCollectible(component.Position{X: 100, Y: 580}, component.Velocity{Y: 100}, 5, component.Collectible{}))
	fallen := p.Step(pool, 0.1)
	if len(fallen) != 1 {
		t.Fatalf("fallen = %d, want 1", len(fallen))
	}
	if fallen2 := p.Step(pool, 0.1); len(fallen2) != 0 {
		t.Error("a fallen entity must be reported once")
	}
}

func TestPhysicsBounce(t *testing.T) {
	p := testPhysics()
	pool := entity.NewPool(8)
	id := pool.Spawn(component.NewHazard(component.Position{X: 795, Y: 100}, component.Velocity{X: 200}, 10, component.Hazard{Bounce: true, Health: 1}))
	p.Step(pool, 0.1)
	e, _ := pool.Get(id)
	if e.Vel.X >= 0 {
		t.Errorf("hazard should bounce off the right wall, vx = %v", e.Vel.X)
	}
	if e.Pos.X > 790 {
		t.Errorf("hazard should stay inside, x = %v", e.Pos.X)
	}
}

func TestPhysicsFollowPath(t *testing.T) {
	p := testPhysics()
	pool := entity.NewPool(8)
	path := []component.Position{{X: 10, Y: 0}, {X: 10, Y: 10}}
	id := pool.Spawn(component.NewHazard(component.Position{}, component.Velocity{}, 5, component.Hazard{Health: 1, Speed: 10, Path: path}))
	p.Step(pool, 1.5)
	e, _ := pool.Get(id)
	if e.Pos.X != 10 || math.Abs(e.Pos.Y-5) > 1e-9 {
		t.Errorf("after 15px the hazard should be at (10,5), got %+v", e.Pos)
	}
	if e.Hazard.PathIndex != 1 || e.Hazard.Escaped {
		t.Errorf("path index %d escaped %v", e.Hazard.PathIndex, e.Hazard.Escaped)
	}
	p.Step(pool, 1)
	if !e.Hazard.Escaped {
		t.Error("hazard at the last waypoint should be escaped")
	}
}

func TestPhysicsProjectileHomingAndTTL(t *testing.T) {
	p := testPhysics()
	pool := entity.NewPool(8)
	target := pool.Spawn(component.NewHazard(component.Position{X: 100, Y: 0}, component.Velocity{}, 5,
		component.Hazard{Health: 1, Speed: 0, Path: []component.Position{{X: 100, Y: 0}}}))
	proj := pool.Spawn(component.NewProjectile(component.Position{}, 2, component.Projectile{TargetID: target, Speed: 50, TTL: 1}))
	p.Step(pool, 0.5)
	e, ok := pool.Get(proj)
	if !ok {
		t.Fatal("projectile died too early")
	}
	if math.Abs(e.Pos.X-25) > 1e-9 || e.Pos.Y != 0 {
		t.Errorf("projectile should fly toward target, at %+v", e.Pos)
	}
	p.Step(pool, 0.6)
	if _, ok := pool.Get(proj); ok {
		t.Error("projectile should expire after its TTL")
	}
}

func TestStepActor(t *testing.T) {
	p := testPhysics()
	a := &component.Actor{Pos: component.Position{X: 400, Y: 540}, Width: 60, Height: 40, Speed: 300, JumpImpulse: 400, OnGround: true}

	p.StepActor(a, input.Intents{Flags: input.MoveLeft}, 0.25)
	if a.Vel.X != -300 || a.Pos.X != 325 {
		t.Errorf("move left: vel %v pos %v", a.Vel.X, a.Pos.X)
	}
	for i := 0; i < 120; i++ {
		p.StepActor(a, input.Intents{}, 1.0/60)
	}
	if a.Vel.X != 0 {
		t.Errorf("friction should stop the actor, vx = %v", a.Vel.X)
	}

	p.StepActor(a, input.Intents{Flags: input.Jump}, 1.0/60)
	if a.OnGround || a.Vel.Y >= 0 {
		t.Errorf("jump should lift the actor: onGround=%v vy=%v", a.OnGround, a.Vel.Y)
	}
	vy := a.Vel.Y
	p.StepActor(a, input.Intents{Flags: input.Jump}, 1.0/60)
	if a.Vel.Y < vy {
		t.Error("no double jump in the air")
	}
	for i := 0; i < 200; i++ {
		p.StepActor(a, input.Intents{Flags: input.MoveRight}, 1.0/60)
	}
	if !a.OnGround || a.Pos.Y != 540 {
		t.Errorf("actor should land on the floor: y=%v", a.Pos.Y)
	}
	if a.Pos.X != 770 {
		t.Errorf("actor should be clamped at the right edge, x=%v", a.Pos.X)
	}
}
