// internal/app/defense.go
package app

import (
	"fmt"

	"go-honey-arcade/internal/component"
	"go-honey-arcade/internal/config"
	"go-honey-arcade/internal/defs"
	"go-honey-arcade/internal/event"
	"go-honey-arcade/internal/input"
	"go-honey-arcade/internal/system"
	"go-honey-arcade/internal/timer"
	"go-honey-arcade/internal/ui"
	"go-honey-arcade/pkg/geom"
	"go-honey-arcade/pkg/hexmap"
	"go-honey-arcade/pkg/render"
)

// Defense — защита детской: опасности идут по пути через гексовое поле,
// башни стреляют по ближайшей в радиусе
type Defense struct {
	*core
	tuning    config.DefenseTuning
	lib       *defs.Library
	board     *hexmap.Board
	layout    hexmap.Layout
	path      []component.Position
	towers    *system.TowerSystem
	hazards   *system.Spawner
	selected  int // индекс в lib.TowerOrder
	indicator *ui.SelectionIndicator
}

// NewDefense создает игру. Без поверхности возвращает ErrNoSurface.
func NewDefense(surf render.Surface, opts Options) (*Defense, error) {
	opts = opts.withDefaults()
	t := opts.Tuning.Defense
	c, err := newCore(GameDefense, "Защита", config.BestScoreKeyDefense, surf, opts, t.Score, t.Score.ShakeDuration)
	if err != nil {
		return nil, err
	}
	if len(opts.Defs.TowerOrder) == 0 {
		return nil, fmt.Errorf("defense: no tower definitions")
	}
	board, err := hexmap.NewBoard(t.BoardRadius, t.ObstacleChance, c.rng.Float64)
	if err != nil {
		return nil, fmt.Errorf("defense board: %w", err)
	}
	g := &Defense{
		core:    c,
		tuning:  t,
		lib:     opts.Defs,
		board:   board,
		towers:  system.NewTowerSystem(c.collision),
		hazards: system.NewSpawner(system.SpawnerConfigFromTuning(t.Hazards), c.rng),
		layout: hexmap.Layout{
			Size:    t.HexSize,
			OriginX: c.w / 2,
			OriginY: config.HUDHeight + (c.h-config.HUDHeight)/2,
		},
		indicator: ui.NewSelectionIndicator(28, c.h-28, 14),
	}
	for _, h := range board.Path {
		x, y := g.layout.ToPixel(h)
		g.path = append(g.path, component.Position{X: x, Y: y})
	}
	c.physics = &system.PhysicsSystem{
		Bounds: geom.Rect{X: 0, Y: config.HUDHeight, W: c.w, H: c.h - config.HUDHeight},
		Floor:  c.h,
		KillY:  c.h + 100,
	}
	c.pipeline = newPipeline(g.spawn, g.step, g.collide, g.score)
	c.ctrl.OnReset = g.onReset
	return g, nil
}

// Board — поле
func (g *Defense) Board() *hexmap.Board { return g.board }

// Layout — раскладка поля на экране
func (g *Defense) Layout() hexmap.Layout { return g.layout }

// Towers — построенные башни
func (g *Defense) Towers() []*component.Tower { return g.towers.Towers }

// Selected — ID выбранного вида башни
func (g *Defense) Selected() string { return g.lib.TowerOrder[g.selected] }

func (g *Defense) onReset() {
	g.pool.Clear()
	g.hazards.Reset()
	for _, t := range g.towers.Towers {
		if tile, ok := g.board.Tiles[t.Hex]; ok {
			tile.Buildable = true
			g.board.Tiles[t.Hex] = tile
		}
	}
	g.towers.Clear()
}

// Update выполняет один кадр
func (g *Defense) Update(in input.Intents, dt float64) {
	dt = ClampDelta(dt)
	consumed := g.handleControls(in, dt)
	if in.Has(input.Jump) {
		g.CycleTower()
	}
	if in.Has(input.Pointer) && !consumed {
		g.PlaceTower(g.layout.FromPixel(in.PointerX, in.PointerY))
	}
	if !g.ctrl.State.Running() {
		return
	}
	g.in = in
	g.pipeline.Run(dt)
}

// CycleTower выбирает следующий вид башни
func (g *Defense) CycleTower() {
	g.selected = (g.selected + 1) % len(g.lib.TowerOrder)
	g.indicator.Pulse(g.uiClock)
}

func (g *Defense) spawn(dt float64) {
	g.hazards.Update(dt, g.spawnHazard)
}

func (g *Defense) spawnHazard(id string) {
	d, ok := g.lib.Hazards[id]
	if !ok || len(g.path) == 0 {
		return
	}
	path := make([]component.Position, len(g.path)-1)
	copy(path, g.path[1:])
	g.pool.Spawn(component.NewHazard(g.path[0], component.Velocity{}, d.Radius, component.Hazard{
		DefID: d.ID, Damage: d.Damage, Health: d.Health, MaxHealth: d.Health, Value: d.Value,
		Shape: d.Shape, Color: d.Color.RGBA(), Speed: d.Speed, Path: path,
	}))
}

func (g *Defense) step(dt float64) {
	g.towers.Update(g.pool, dt)
	g.physics.Step(g.pool, dt)
}

func (g *Defense) collide(dt float64) {
	g.collision.ProjectileHits(g.pool, func(proj, hazard *component.Entity, destroyed bool) {
		if !destroyed {
			return
		}
		gained := g.ctrl.Award(hazard.Hazard.Value)
		g.effects.Burst(hazard.Pos.X, hazard.Pos.Y, hazard.Hazard.Color, config.ParticlesPerBurst)
		g.emit(event.HazardDestroyed, g.scoreData(gained))
	})
	g.collision.Escapes(g.pool, g.hit)
}

func (g *Defense) score(dt float64) {
	g.ctrl.Tick(dt)
	g.pool.Prune()
}

// Draw рисует кадр. Состояние игры не меняется.
func (g *Defense) Draw(surf render.Surface) {
	if surf == nil {
		return
	}
	snap := g.snapshot()
	snap.Board = g.board
	snap.Layout = g.layout
	snap.Towers = g.towers.Towers
	snap.Hint = "Enter — начать, клик — башня, пробел — сменить башню"
	if g.scheduler.Active(timer.BannerEnd, g.ctrl.State.Clock) {
		snap.Banner = "Волна идет!"
	}
	g.renderer.Draw(surf, snap)
	g.drawChrome(surf)

	d := g.lib.Towers[g.Selected()]
	left := g.tuning.MaxTowers - len(g.towers.Towers)
	g.indicator.Draw(surf, g.uiClock, d.Color.RGBA(), d.Name, max(0, left))
}
