// internal/system/render.go
package system

import (
	"fmt"
	"image/color"
	"math"

	"go-honey-arcade/internal/component"
	"go-honey-arcade/internal/config"
	"go-honey-arcade/internal/entity"
	"go-honey-arcade/pkg/geom"
	"go-honey-arcade/pkg/hexmap"
	"go-honey-arcade/pkg/render"
)

// Snapshot — то, что видит отрисовка. Только чтение.
type Snapshot struct {
	State  component.GameState
	Pool   *entity.Pool
	Actor  *component.Actor // nil для защиты
	Towers []*component.Tower
	Board  *hexmap.Board // nil для ловли мёда
	Layout hexmap.Layout

	GroundY float64
	ShakeX  float64
	ShakeY  float64
	Banner  string // крупная надпись поверх поля, пусто — нет
	Hint    string // подсказка в состоянии Ready
}

// RenderSystem рисует кадр по снимку состояния
type RenderSystem struct{}

// NewRenderSystem создает систему отрисовки
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw рисует фон, поле, сущности и оверлеи фазы
func (s *RenderSystem) Draw(surf render.Surface, snap Snapshot) {
	if surf == nil {
		return
	}
	w, h := surf.Size()
	surf.Clear(config.BackgroundColor)

	ox, oy := snap.ShakeX, snap.ShakeY
	if snap.Board != nil {
		s.drawBoard(surf, snap, ox, oy)
	} else {
		surf.FillRect(0, config.HUDHeight, float64(w), snap.GroundY*0.3, config.SkyBandColor)
		surf.FillRect(0+ox, snap.GroundY+oy, float64(w), float64(h)-snap.GroundY, config.GroundColor)
	}

	for _, t := range snap.Towers {
		s.drawTower(surf, t, ox, oy)
	}
	if snap.Pool != nil {
		snap.Pool.Each(func(e *component.Entity) {
			s.drawEntity(surf, e, ox, oy)
		})
	}
	if snap.Actor != nil {
		s.drawActor(surf, snap.Actor, ox, oy)
	}
	s.drawOverlay(surf, snap, float64(w), float64(h))
}

func (s *RenderSystem) drawBoard(surf render.Surface, snap Snapshot, ox, oy float64) {
	layout := snap.Layout
	layout.OriginX += ox
	layout.OriginY += oy
	for _, hex := range snap.Board.SortedHexes() {
		tile := snap.Board.Tiles[hex]
		var fill color.RGBA
		switch {
		case hex == snap.Board.Entry:
			fill = config.EntryColor
		case hex == snap.Board.Exit:
			fill = config.ExitColor
		case !tile.Passable:
			fill = config.RockColor
		case snap.Board.OnPath(hex):
			fill = config.PathColor
		default:
			fill = config.TileColor
		}
		corners := layout.Corners(hex)
		surf.FillPolygon(corners, fill)
		for i := range corners {
			a, b := corners[i], corners[(i+1)%len(corners)]
			surf.StrokeLine(a.X, a.Y, b.X, b.Y, 1, config.TileStrokeColor)
		}
	}
}

func (s *RenderSystem) drawTower(surf render.Surface, t *component.Tower, ox, oy float64) {
	x, y := t.Pos.X+ox, t.Pos.Y+oy
	surf.StrokeCircle(x, y, t.Range, 1, config.RangeColor)
	surf.FillCircle(x, y, 11, t.Color)
	surf.StrokeCircle(x, y, 11, 2, render.DarkenColor(t.Color))
	if !t.Ready() {
		surf.FillCircle(x, y, 4, render.LightenColor(t.Color, 60))
	}
}

func (s *RenderSystem) drawEntity(surf render.Surface, e *component.Entity, ox, oy float64) {
	x, y := e.Pos.X+ox, e.Pos.Y+oy
	switch e.Kind {
	case component.KindCollectible:
		c := e.Collectible
		drawShape(surf, c.Shape, x, y, e.Radius, e.Rotation, c.Color)
	case component.KindHazard:
		hz := e.Hazard
		drawShape(surf, hz.Shape, x, y, e.Radius, e.Rotation, hz.Color)
		if hz.MaxHealth > 1 && hz.Health < hz.MaxHealth {
			frac := math.Max(0, float64(hz.Health)/float64(hz.MaxHealth))
			surf.FillRect(x-e.Radius, y-e.Radius-6, 2*e.Radius*frac, 3, config.HealthBarColor)
		}
	case component.KindProjectile:
		surf.FillCircle(x, y, e.Radius, e.Projectile.Color)
	case component.KindParticle:
		p := e.Particle
		surf.FillCircle(x, y, e.Radius, render.WithAlpha(p.Color, p.Fade()))
	}
}

// drawShape рисует фигуру по ее виду. Неизвестный вид — просто круг.
func drawShape(surf render.Surface, shape component.Shape, x, y, r, rot float64, c color.RGBA) {
	switch shape {
	case component.ShapeDrop:
		surf.FillCircle(x, y+r*0.25, r*0.75, c)
		surf.FillPolygon([]geom.Point{{X: x, Y: y - r}, {X: x + r*0.72, Y: y + r*0.1}, {X: x - r*0.72, Y: y + r*0.1}}, c)
		surf.FillCircle(x-r*0.25, y+r*0.1, r*0.18, render.LightenColor(c, 80))
	case component.ShapeStar:
		surf.FillPolygon(starPoints(x, y, r, r*0.45, 5, rot), c)
	case component.ShapeBottle:
		surf.FillRect(x-r*0.5, y-r*0.4, r, r*1.3, c)
		surf.FillCircle(x, y-r*0.55, r*0.3, config.TextLightColor)
		surf.StrokeRect(x-r*0.5, y-r*0.4, r, r*1.3, 1, render.DarkenColor(c))
	case component.ShapeBee:
		surf.FillCircle(x-r*0.35, y-r*0.6, r*0.45, color.RGBA{255, 255, 255, 180})
		surf.FillCircle(x+r*0.35, y-r*0.6, r*0.45, color.RGBA{255, 255, 255, 180})
		surf.FillCircle(x, y, r*0.8, c)
		stripe := color.RGBA{40, 30, 20, 255}
		surf.StrokeLine(x-r*0.25, y-r*0.7, x-r*0.25, y+r*0.7, 2, stripe)
		surf.StrokeLine(x+r*0.25, y-r*0.7, x+r*0.25, y+r*0.7, 2, stripe)
	case component.ShapeCloud:
		surf.FillCircle(x-r*0.5, y+r*0.1, r*0.6, c)
		surf.FillCircle(x+r*0.5, y+r*0.1, r*0.6, c)
		surf.FillCircle(x, y-r*0.2, r*0.75, c)
	default:
		surf.FillCircle(x, y, r, c)
	}
}

func starPoints(cx, cy, outer, inner float64, n int, rot float64) []geom.Point {
	pts := make([]geom.Point, 0, n*2)
	for i := 0; i < n*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := rot - math.Pi/2 + float64(i)*math.Pi/float64(n)
		pts = append(pts, geom.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	return pts
}

func (s *RenderSystem) drawActor(surf render.Surface, a *component.Actor, ox, oy float64) {
	r := a.Rect()
	r.X += ox
	r.Y += oy
	// Медвежонок над корзинкой
	headR := r.W * 0.22
	surf.FillCircle(r.Center().X, r.Y+headR*0.6, headR, config.ActorColor)
	surf.FillCircle(r.Center().X-headR*0.8, r.Y-headR*0.1, headR*0.4, config.ActorColor)
	surf.FillCircle(r.Center().X+headR*0.8, r.Y-headR*0.1, headR*0.4, config.ActorColor)
	surf.FillRect(r.X, r.Y+r.H*0.45, r.W, r.H*0.55, config.BasketColor)
	surf.StrokeRect(r.X, r.Y+r.H*0.45, r.W, r.H*0.55, 2, render.DarkenColor(config.BasketColor))
}

func (s *RenderSystem) drawOverlay(surf render.Surface, snap Snapshot, w, h float64) {
	cx, cy := w/2, h/2
	switch snap.State.Phase {
	case component.PhaseReady:
		surf.FillRect(0, 0, w, h, config.OverlayColor)
		hint := snap.Hint
		if hint == "" {
			hint = "Enter — начать"
		}
		render.CenteredText(surf, hint, cx, cy-config.OverlayFontSize/2, config.OverlayFontSize, config.TextLightColor)
	case component.PhasePaused:
		surf.FillRect(0, 0, w, h, config.OverlayColor)
		render.CenteredText(surf, "Пауза", cx, cy-config.OverlayFontSize/2, config.OverlayFontSize, config.TextLightColor)
	case component.PhaseGameOver:
		surf.FillRect(0, 0, w, h, config.OverlayColor)
		render.CenteredText(surf, "Игра окончена", cx, cy-config.OverlayFontSize, config.OverlayFontSize, config.TextLightColor)
		render.CenteredText(surf, fmt.Sprintf("Счет: %d", snap.State.Score), cx, cy+8, config.HUDFontSize, config.TextLightColor)
		render.CenteredText(surf, "R — заново, Esc — меню", cx, cy+36, config.HUDFontSize, config.TextLightColor)
	case component.PhaseRunning:
		if snap.Banner != "" {
			render.CenteredText(surf, snap.Banner, cx, cy-config.OverlayFontSize, config.OverlayFontSize, config.TextDarkColor)
		}
	}
}
