// internal/system/score.go
package system

import (
	"log"
	"math"

	"go-honey-arcade/internal/component"
	"go-honey-arcade/internal/config"
	"go-honey-arcade/internal/event"
	"go-honey-arcade/internal/storage"
	"go-honey-arcade/internal/timer"
	"go-honey-arcade/internal/utils"
)

// HUD — односторонний приемник текста для табло. Ядро из него не читает.
type HUD interface {
	SetScore(score int)
	SetTimer(seconds float64, timed bool)
	SetLives(lives, max int)
	SetBest(best int)
	SetCombo(combo int, multiplier float64)
}

// ScoreController — машина состояний очков и жизней:
// Ready → Running ⇄ Paused → GameOver, Reset из любого состояния в Ready.
type ScoreController struct {
	State component.GameState

	game       string
	cfg        config.ScoreTuning
	best       *storage.BestScore
	hud        HUD
	dispatcher *event.Dispatcher
	scheduler  *timer.Scheduler

	// OnReset вызывается при сбросе: игра чистит пул, спавнеры и башни
	OnReset func()

	NewBest bool // рекорд побит в последней партии
}

// NewScoreController создает контроллер в состоянии Ready. best, hud и dispatcher могут быть nil.
func NewScoreController(game string, cfg config.ScoreTuning, best *storage.BestScore, hud HUD,
	dispatcher *event.Dispatcher, scheduler *timer.Scheduler) *ScoreController {
	if scheduler == nil {
		scheduler = timer.NewScheduler()
	}
	c := &ScoreController{
		game:       game,
		cfg:        cfg,
		best:       best,
		hud:        hud,
		dispatcher: dispatcher,
		scheduler:  scheduler,
	}
	c.State = c.initialState()
	c.refreshHUD()
	return c
}

func (c *ScoreController) initialState() component.GameState {
	return component.GameState{
		Lives:      c.cfg.Lives,
		MaxLives:   c.cfg.Lives,
		Timer:      c.cfg.Duration,
		Timed:      c.cfg.Duration > 0,
		Multiplier: 1,
		Phase:      component.PhaseReady,
	}
}

// Best — сохраненный рекорд
func (c *ScoreController) Best() int {
	return c.best.Read()
}

// Scheduler — отложенные события партии
func (c *ScoreController) Scheduler() *timer.Scheduler {
	return c.scheduler
}

// Start переводит Ready → Running
func (c *ScoreController) Start() bool {
	if c.State.Phase != component.PhaseReady {
		return false
	}
	c.State.Phase = component.PhaseRunning
	c.scheduler.After(c.State.Clock, config.BannerDuration, timer.BannerEnd, nil)
	c.dispatch(event.GameStarted, nil)
	c.refreshHUD()
	return true
}

// TogglePause переключает Running ⇄ Paused, состояние партии не меняется
func (c *ScoreController) TogglePause() bool {
	switch c.State.Phase {
	case component.PhaseRunning:
		c.State.Phase = component.PhasePaused
	case component.PhasePaused:
		c.State.Phase = component.PhaseRunning
	default:
		return false
	}
	c.dispatch(event.GamePaused, c.State.Paused())
	return true
}

// Reset возвращает партию в Ready. Повторный вызов ничего не меняет.
func (c *ScoreController) Reset() {
	c.State = c.initialState()
	c.NewBest = false
	c.scheduler.Clear()
	if c.OnReset != nil {
		c.OnReset()
	}
	c.refreshHUD()
	c.dispatch(event.GameReset, nil)
}

// Award начисляет очки с учетом множителя и наращивает комбо.
// Возвращает начисленное; вне Running ничего не начисляется.
func (c *ScoreController) Award(value int) int {
	if !c.State.Running() || value < 0 {
		return 0
	}
	gained := utils.RoundInt(float64(value) * c.State.Multiplier)
	c.State.Score += gained
	c.State.Combo++
	c.State.Multiplier = math.Min(c.maxMultiplier(), 1+float64(c.State.Combo)*c.cfg.ComboStep)
	if c.cfg.ComboWindow > 0 {
		c.scheduler.CancelKind(timer.ComboDecay)
		c.scheduler.After(c.State.Clock, c.cfg.ComboWindow, timer.ComboDecay, nil)
	}
	c.refreshHUD()
	return gained
}

func (c *ScoreController) maxMultiplier() float64 {
	if c.cfg.MaxMultiplier < 1 {
		return 1
	}
	return c.cfg.MaxMultiplier
}

// BreakCombo сбрасывает комбо и множитель
func (c *ScoreController) BreakCombo() {
	if c.State.Combo == 0 && c.State.Multiplier == 1 {
		return
	}
	c.State.Combo = 0
	c.State.Multiplier = 1
	c.scheduler.CancelKind(timer.ComboDecay)
	c.refreshHUD()
}

// Damage снимает n жизней. На нуле партия заканчивается в этом же вызове.
func (c *ScoreController) Damage(n int) {
	if !c.State.Running() || n <= 0 {
		return
	}
	c.State.Lives -= n
	if c.State.Lives < 0 {
		c.State.Lives = 0
	}
	c.BreakCombo()
	c.refreshHUD()
	c.dispatch(event.HazardHit, event.LivesData{Lost: n, Lives: c.State.Lives})
	if c.State.Lives == 0 {
		c.gameOver()
	}
}

// Tick двигает часы партии и таймер, срабатывают отложенные события
func (c *ScoreController) Tick(dt float64) {
	dt = sanitizeDelta(dt)
	if !c.State.Running() {
		return
	}
	c.State.Clock += dt
	for _, ev := range c.scheduler.Due(c.State.Clock) {
		if ev.Kind == timer.ComboDecay {
			c.BreakCombo()
		}
	}
	if c.State.Timed {
		c.State.Timer = math.Max(0, c.State.Timer-dt)
		if c.hud != nil {
			c.hud.SetTimer(c.State.Timer, true)
		}
		if c.State.Timer == 0 {
			c.gameOver()
		}
	}
}

// Finish досрочно заканчивает партию (например, при выходе в меню)
func (c *ScoreController) Finish() {
	if c.State.Running() || c.State.Paused() {
		c.gameOver()
	}
}

func (c *ScoreController) gameOver() {
	c.State.Phase = component.PhaseGameOver
	c.scheduler.CancelKind(timer.ComboDecay)
	best, beaten := c.best.Record(c.State.Score)
	c.NewBest = beaten
	c.refreshHUD()
	data := event.ScoreData{Score: c.State.Score, Combo: c.State.Combo}
	c.dispatch(event.GameOver, data)
	if beaten {
		c.dispatch(event.NewBest, data)
	}
	log.Printf("[Score] %s over: score=%d best=%d new_best=%v", c.game, c.State.Score, best, beaten)
}

func (c *ScoreController) refreshHUD() {
	if c.hud == nil {
		return
	}
	c.hud.SetScore(c.State.Score)
	c.hud.SetTimer(c.State.Timer, c.State.Timed)
	c.hud.SetLives(c.State.Lives, c.State.MaxLives)
	c.hud.SetBest(c.best.Read())
	c.hud.SetCombo(c.State.Combo, c.State.Multiplier)
}

func (c *ScoreController) dispatch(t event.EventType, data interface{}) {
	c.dispatcher.Dispatch(event.Event{Type: t, Game: c.game, Data: data})
}
