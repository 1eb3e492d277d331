// internal/app/honey.go
package app

import (
	"go-honey-arcade/internal/component"
	"go-honey-arcade/internal/config"
	"go-honey-arcade/internal/defs"
	"go-honey-arcade/internal/event"
	"go-honey-arcade/internal/input"
	"go-honey-arcade/internal/system"
	"go-honey-arcade/internal/timer"
	"go-honey-arcade/pkg/geom"
	"go-honey-arcade/pkg/render"
)

// Honey — ловля мёда: корзинка внизу ловит капли и уворачивается от пчел
type Honey struct {
	*core
	tuning   config.HoneyTuning
	lib      *defs.Library
	actor    *component.Actor
	drops    *system.Spawner
	sparkles *system.Spawner
	groundY  float64
}

// NewHoney создает игру. Без поверхности возвращает ErrNoSurface.
func NewHoney(surf render.Surface, opts Options) (*Honey, error) {
	opts = opts.withDefaults()
	t := opts.Tuning.Honey
	c, err := newCore(GameHoney, "Мёд", config.BestScoreKeyHoney, surf, opts, t.Score, t.Score.ShakeDuration)
	if err != nil {
		return nil, err
	}
	g := &Honey{
		core:     c,
		tuning:   t,
		lib:      opts.Defs,
		drops:    system.NewSpawner(system.SpawnerConfigFromTuning(t.Drops), c.rng),
		sparkles: system.NewSpawner(system.SpawnerConfigFromTuning(t.Sparkles), c.rng),
		groundY:  c.h - t.GroundHeight,
	}
	c.physics = &system.PhysicsSystem{
		Gravity:       t.ItemGravity,
		ActorGravity:  t.Gravity,
		Friction:      t.Friction,
		BounceDamping: t.BounceDamping,
		Bounds:        geom.Rect{X: 0, Y: config.HUDHeight, W: c.w, H: c.h - config.HUDHeight},
		Floor:         g.groundY,
		KillY:         g.groundY,
	}
	g.actor = g.newActor()
	c.pipeline = newPipeline(g.spawn, g.step, g.collide, g.score)
	c.ctrl.OnReset = g.onReset
	return g, nil
}

func (g *Honey) newActor() *component.Actor {
	return &component.Actor{
		Pos:         component.Position{X: g.w / 2, Y: g.groundY},
		Width:       g.tuning.PlayerWidth,
		Height:      g.tuning.PlayerHeight,
		Speed:       g.tuning.PlayerSpeed,
		JumpImpulse: g.tuning.JumpImpulse,
		OnGround:    true,
	}
}

// Actor — корзинка игрока
func (g *Honey) Actor() *component.Actor { return g.actor }

func (g *Honey) onReset() {
	g.pool.Clear()
	g.drops.Reset()
	g.sparkles.Reset()
	g.actor = g.newActor()
}

// Update выполняет один кадр
func (g *Honey) Update(in input.Intents, dt float64) {
	dt = ClampDelta(dt)
	g.handleControls(in, dt)
	if !g.ctrl.State.Running() {
		return
	}
	g.in = in
	g.pipeline.Run(dt)
}

func (g *Honey) spawn(dt float64) {
	g.drops.Update(dt, g.spawnDef)
	g.sparkles.Update(dt, g.spawnDef)
}

// spawnDef создает сущность по ID определения
func (g *Honey) spawnDef(id string) {
	top := float64(config.HUDHeight)
	if d, ok := g.lib.Items[id]; ok {
		pos := component.Position{X: g.rng.Range(d.Radius, g.w-d.Radius), Y: top - d.Radius}
		e := component.NewCollectible(pos, component.Velocity{Y: d.Speed}, d.Radius, component.Collectible{
			DefID: d.ID, Value: d.Value, Shape: d.Shape, Color: d.Color.RGBA(),
		})
		e.Spin = d.Spin * g.rng.Range(-1, 1)
		g.pool.Spawn(e)
		return
	}
	if d, ok := g.lib.Hazards[id]; ok {
		pos := component.Position{X: g.rng.Range(d.Radius, g.w-d.Radius), Y: top - d.Radius}
		vel := component.Velocity{X: g.rng.Range(-d.Drift, d.Drift), Y: d.Speed}
		g.pool.Spawn(component.NewHazard(pos, vel, d.Radius, component.Hazard{
			DefID: d.ID, Damage: d.Damage, Health: d.Health, MaxHealth: d.Health, Value: d.Value,
			Shape: d.Shape, Color: d.Color.RGBA(), Bounce: d.Bounce,
		}))
		return
	}
	if d, ok := g.lib.Particles[id]; ok {
		pos := component.Position{X: g.rng.Range(0, g.w), Y: g.rng.Range(top, g.groundY*0.5)}
		vel := component.Velocity{X: g.rng.Range(-10, 10), Y: -g.tuning.ItemGravity * 0.5}
		g.pool.Spawn(component.NewParticle(pos, vel, d.Radius, component.Particle{
			Life: d.Life, MaxLife: d.Life, Color: d.Color.RGBA(),
		}))
	}
}

func (g *Honey) step(dt float64) {
	g.physics.StepActor(g.actor, g.in, dt)
	for _, e := range g.physics.Step(g.pool, dt) {
		if e.Kind == component.KindCollectible {
			g.ctrl.BreakCombo()
			g.emit(event.ItemMissed, g.scoreData(0))
		}
	}
}

func (g *Honey) collide(dt float64) {
	g.collision.CatchCollisions(g.actor, g.pool, func(e *component.Entity) {
		// После удара, закончившего партию, остальные касания в кадре не считаются
		if !g.ctrl.State.Running() {
			return
		}
		switch e.Kind {
		case component.KindCollectible:
			gained := g.ctrl.Award(e.Collectible.Value)
			g.effects.Burst(e.Pos.X, e.Pos.Y, e.Collectible.Color, config.ParticlesPerBurst)
			g.emit(event.ItemCaught, g.scoreData(gained))
		case component.KindHazard:
			g.hit(e)
		}
	})
}

func (g *Honey) score(dt float64) {
	g.ctrl.Tick(dt)
	g.pool.Prune()
}

// Draw рисует кадр. Состояние игры не меняется.
func (g *Honey) Draw(surf render.Surface) {
	if surf == nil {
		return
	}
	snap := g.snapshot()
	snap.Actor = g.actor
	snap.GroundY = g.groundY
	snap.Hint = "Enter — начать, ←/→ — двигаться, пробел — прыжок"
	if g.scheduler.Active(timer.BannerEnd, g.ctrl.State.Clock) {
		snap.Banner = "Лови мёд!"
	}
	g.renderer.Draw(surf, snap)
	g.drawChrome(surf)
}
