package system

import (
	"testing"

	"go-honey-arcade/internal/component"
	"go-honey-arcade/internal/config"
	"go-honey-arcade/internal/event"
	"go-honey-arcade/internal/storage"
	"go-honey-arcade/internal/timer"
)

type fakeHUD struct {
	score, lives, maxLives, best, combo int
	timer                               float64
	updates                             int
}

func (h *fakeHUD) SetScore(s int)               { h.score = s; h.updates++ }
func (h *fakeHUD) SetTimer(sec float64, _ bool) { h.timer = sec }
func (h *fakeHUD) SetLives(l, max int)          { h.lives, h.maxLives = l, max }
func (h *fakeHUD) SetBest(b int)                { h.best = b }
func (h *fakeHUD) SetCombo(c int, _ float64)    { h.combo = c }

func testScoreTuning() config.ScoreTuning {
	return config.ScoreTuning{Lives: 3, Duration: 10, ComboStep: 0.5, MaxMultiplier: 2, ComboWindow: 1}
}

func newTestController(store storage.Store, hud HUD, d *event.Dispatcher) *ScoreController {
	return NewScoreController("honey", testScoreTuning(), storage.NewBestScore(store, "honey.best"), hud, d, timer.NewScheduler())
}

func TestScoreTransitions(t *testing.T) {
	c := newTestController(nil, nil, nil)
	if c.State.Phase != component.PhaseReady {
		t.Fatalf("initial phase %v", c.State.Phase)
	}
	if c.TogglePause() {
		t.Error("cannot pause from Ready")
	}
	if !c.Start() || !c.State.Running() {
		t.Fatal("Start should enter Running")
	}
	if c.Start() {
		t.Error("Start twice")
	}
	c.Award(10)
	if !c.TogglePause() || !c.State.Paused() {
		t.Fatal("pause")
	}
	if c.Award(10) != 0 || c.State.Score != 10 {
		t.Error("no scoring while paused")
	}
	c.Tick(5)
	if c.State.Timer != 10 || c.State.Clock != 0 {
		t.Error("timer must not run while paused")
	}
	if !c.TogglePause() || !c.State.Running() {
		t.Fatal("resume")
	}
	if c.State.Score != 10 {
		t.Error("pause must preserve the score")
	}
}

func TestAwardMultiplierAndCombo(t *testing.T) {
	hud := &fakeHUD{}
	c := newTestController(nil, hud, nil)
	c.Start()
	gains := []int{c.Award(10), c.Award(10), c.Award(10), c.Award(10)}
	want := []int{10, 15, 20, 20}
	for i := range want {
		if gains[i] != want[i] {
			t.Errorf("award %d gained %d, want %d", i, gains[i], want[i])
		}
	}
	if c.State.Multiplier != 2 {
		t.Errorf("multiplier %v, want capped 2", c.State.Multiplier)
	}
	if hud.score != 65 || hud.combo != 4 {
		t.Errorf("HUD score %d combo %d", hud.score, hud.combo)
	}
	c.BreakCombo()
	if c.State.Combo != 0 || c.State.Multiplier != 1 || hud.combo != 0 {
		t.Error("BreakCombo should reset combo and multiplier")
	}
}

func TestComboDecaysAfterWindow(t *testing.T) {
	c := newTestController(nil, nil, nil)
	c.Start()
	c.Award(10)
	c.Tick(0.5)
	c.Award(10)
	c.Tick(0.75)
	if c.State.Combo != 2 {
		t.Fatalf("combo %d decayed too early", c.State.Combo)
	}
	c.Tick(0.5)
	if c.State.Combo != 0 {
		t.Errorf("combo %d should decay after the window", c.State.Combo)
	}
}

func TestDamageClampsAndEndsSameCall(t *testing.T) {
	d := event.NewDispatcher()
	var overs int
	d.Subscribe(event.GameOver, event.ListenerFunc(func(event.Event) { overs++ }))
	hud := &fakeHUD{}
	c := newTestController(storage.NewMemory(), hud, d)
	c.Start()
	c.Award(10)
	c.Damage(1)
	if c.State.Lives != 2 || c.State.Combo != 0 {
		t.Errorf("lives %d combo %d", c.State.Lives, c.State.Combo)
	}
	c.Damage(5)
	if c.State.Lives != 0 {
		t.Errorf("lives %d, want clamp at 0", c.State.Lives)
	}
	if !c.State.Over() {
		t.Error("zero lives must end the game in the same call")
	}
	if overs != 1 {
		t.Errorf("GameOver dispatched %d times", overs)
	}
	c.Damage(1)
	if c.State.Lives != 0 || overs != 1 {
		t.Error("damage after game over must be ignored")
	}
	if hud.lives != 0 || hud.maxLives != 3 {
		t.Errorf("HUD lives %d/%d", hud.lives, hud.maxLives)
	}
}

func TestTimerEndsGameAndRecordsBest(t *testing.T) {
	store := storage.NewMemory()
	store.Set("honey.best", "5")
	d := event.NewDispatcher()
	newBest := 0
	d.Subscribe(event.NewBest, event.ListenerFunc(func(e event.Event) { newBest = e.Data.(event.ScoreData).Score }))
	hud := &fakeHUD{}
	c := newTestController(store, hud, d)
	c.Start()
	c.Award(10)
	for i := 0; i < 11; i++ {
		c.Tick(1)
	}
	if c.State.Timer != 0 {
		t.Errorf("timer %v, want 0", c.State.Timer)
	}
	if !c.State.Over() {
		t.Fatal("timer reaching zero must end the game")
	}
	if v, _ := store.Get("honey.best"); v != "10" {
		t.Errorf("stored best %q, want 10", v)
	}
	if newBest != 10 || !c.NewBest || hud.best != 10 {
		t.Errorf("new best event %d flag %v hud %d", newBest, c.NewBest, hud.best)
	}
}

func TestLowerScoreKeepsBest(t *testing.T) {
	store := storage.NewMemory()
	store.Set("honey.best", "50")
	c := newTestController(store, nil, nil)
	c.Start()
	c.Award(10)
	c.Finish()
	if v, _ := store.Get("honey.best"); v != "50" {
		t.Errorf("best overwritten with %q", v)
	}
	if c.NewBest {
		t.Error("NewBest set for a lower score")
	}
}

func TestScoreNeverDecreasesWhileRunning(t *testing.T) {
	c := newTestController(nil, nil, nil)
	c.Start()
	prev := 0
	for i := 0; i < 50; i++ {
		switch i % 5 {
		case 0, 1, 2:
			c.Award(i)
		case 3:
			c.BreakCombo()
		case 4:
			c.Tick(0.05)
		}
		if c.State.Score < prev {
			t.Fatalf("score went down: %d -> %d", prev, c.State.Score)
		}
		prev = c.State.Score
	}
	if prev == 0 {
		t.Fatal("score should have grown")
	}
}

func TestResetIsIdempotent(t *testing.T) {
	resets := 0
	c := newTestController(nil, nil, nil)
	c.OnReset = func() { resets++ }
	c.Start()
	c.Award(10)
	c.Damage(1)
	c.Tick(2)
	c.Reset()
	once := c.State
	c.Reset()
	if c.State != once {
		t.Errorf("second reset changed state: %+v vs %+v", c.State, once)
	}
	if once.Score != 0 || once.Lives != 3 || once.Phase != component.PhaseReady || once.Timer != 10 {
		t.Errorf("reset state %+v", once)
	}
	if resets != 2 {
		t.Errorf("OnReset called %d times", resets)
	}
	if c.Scheduler().Len() != 0 {
		t.Error("reset must clear pending timers")
	}
}
