// internal/app/app.go
package app

import (
	"errors"
	"math"

	"go-honey-arcade/internal/component"
	"go-honey-arcade/internal/config"
	"go-honey-arcade/internal/defs"
	"go-honey-arcade/internal/entity"
	"go-honey-arcade/internal/event"
	"go-honey-arcade/internal/input"
	"go-honey-arcade/internal/storage"
	"go-honey-arcade/internal/system"
	"go-honey-arcade/internal/timer"
	"go-honey-arcade/internal/ui"
	"go-honey-arcade/internal/utils"
	"go-honey-arcade/pkg/render"
)

// ErrNoSurface — поверхности рисования нет, мини-игра не запускается
var ErrNoSurface = errors.New("no drawing surface")

const (
	GameHoney   = "honey"
	GameDefense = "defense"
)

// Options — зависимости мини-игры. Нулевые поля заменяются значениями по умолчанию.
type Options struct {
	Tuning     *config.Tuning
	Defs       *defs.Library
	Store      storage.Store // nil — рекорд не сохраняется
	Dispatcher *event.Dispatcher
	Seed       int64 // 0 — от часов
}

func (o Options) withDefaults() Options {
	if o.Tuning == nil {
		o.Tuning = config.DefaultTuning()
	}
	if o.Defs == nil {
		o.Defs = defs.Default()
	}
	if o.Dispatcher == nil {
		o.Dispatcher = event.NewDispatcher()
	}
	return o
}

// Frame — мини-игра, которую кадр за кадром ведет внешний цикл
type Frame interface {
	Name() string
	Update(in input.Intents, dt float64)
	Draw(surf render.Surface)
	State() component.GameState
	Best() int
	Seed() int64
	Reset()
	// Finish заканчивает незавершенную партию и сохраняет рекорд
	Finish()
}

// ClampDelta — шаг кадра в [0, MaxDeltaTime]; нечисловой шаг дает 0
func ClampDelta(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if dt > config.MaxDeltaTime {
		return config.MaxDeltaTime
	}
	return dt
}

// core — общая часть обеих мини-игр
type core struct {
	name       string
	w, h       float64
	pool       *entity.Pool
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	scheduler  *timer.Scheduler
	ctrl       *system.ScoreController
	hud        *ui.HUD
	effects    *system.EffectsSystem
	physics    *system.PhysicsSystem
	collision  *system.CollisionSystem
	renderer   *system.RenderSystem
	pause      *ui.PauseButton
	pipeline   *pipeline
	shake      float64
	in         input.Intents
	uiClock    float64 // идет и на паузе, нужен только для анимации кнопок
}

func newCore(name, title, bestKey string, surf render.Surface, opts Options, score config.ScoreTuning, shake float64) (*core, error) {
	if surf == nil {
		return nil, ErrNoSurface
	}
	w, h := surf.Size()
	rng := utils.NewPRNGService(opts.Seed)
	pool := entity.NewPool(opts.Tuning.MaxEntities)
	sched := timer.NewScheduler()
	hud := ui.NewHUD(title)
	c := &core{
		name:       name,
		w:          float64(w),
		h:          float64(h),
		pool:       pool,
		rng:        rng,
		dispatcher: opts.Dispatcher,
		scheduler:  sched,
		hud:        hud,
		effects:    system.NewEffectsSystem(pool, rng, sched),
		collision:  system.NewCollisionSystem(),
		renderer:   system.NewRenderSystem(),
		pause:      ui.NewPauseButton(float64(w)-28, config.PauseButtonY, config.PauseButtonSize, config.PauseButtonColor, config.PlayButtonColor),
		shake:      shake,
	}
	best := storage.NewBestScore(opts.Store, bestKey)
	c.ctrl = system.NewScoreController(name, score, best, hud, opts.Dispatcher, sched)
	return c, nil
}

func (c *core) Name() string               { return c.name }
func (c *core) State() component.GameState { return c.ctrl.State }
func (c *core) Best() int                  { return c.ctrl.Best() }
func (c *core) Seed() int64                { return c.rng.Seed() }
func (c *core) Reset()                     { c.ctrl.Reset() }
func (c *core) Finish()                    { c.ctrl.Finish() }

// Pool — пул сущностей (для тестов и отладки)
func (c *core) Pool() *entity.Pool { return c.pool }

// Controller — контроллер очков
func (c *core) Controller() *system.ScoreController { return c.ctrl }

// handleControls обрабатывает старт, паузу, сброс и кнопку паузы.
// Возвращает true, если нажатие указателя уже использовано.
func (c *core) handleControls(in input.Intents, dt float64) bool {
	c.uiClock += dt
	consumed := false
	if in.Has(input.Pointer) && c.pause.IsClicked(in.PointerX, in.PointerY) {
		in.Set(input.PauseToggle)
		consumed = true
	}
	if in.Has(input.Reset) {
		c.ctrl.Reset()
		return consumed
	}
	if in.Has(input.Start) {
		c.ctrl.Start()
	}
	if in.Has(input.PauseToggle) {
		if c.ctrl.TogglePause() {
			c.pause.Press(c.uiClock)
		}
	}
	c.pause.SetPaused(c.ctrl.State.Paused())
	return consumed
}

func (c *core) emit(t event.EventType, data interface{}) {
	c.dispatcher.Dispatch(event.Event{Type: t, Game: c.name, Data: data})
}

func (c *core) scoreData(gained int) event.ScoreData {
	return event.ScoreData{Gained: gained, Score: c.ctrl.State.Score, Combo: c.ctrl.State.Combo}
}

// hit — общая реакция на попадание по игроку/прорыв: урон, тряска, брызги
func (c *core) hit(e *component.Entity) {
	c.ctrl.Damage(e.Hazard.Damage)
	c.effects.Shake(c.ctrl.State.Clock, c.shake)
	c.effects.Burst(e.Pos.X, e.Pos.Y, config.HealthBarColor, config.ParticlesPerBurst)
}

func (c *core) snapshot() system.Snapshot {
	dx, dy := c.effects.ShakeOffset(c.ctrl.State.Clock)
	return system.Snapshot{
		State:  c.ctrl.State,
		Pool:   c.pool,
		ShakeX: dx,
		ShakeY: dy,
	}
}

func (c *core) drawChrome(surf render.Surface) {
	c.hud.Draw(surf)
	c.pause.Draw(surf, c.uiClock)
}
