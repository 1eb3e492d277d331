package state

import (
	"testing"

	"go-honey-arcade/internal/app"
	"go-honey-arcade/internal/config"
	"go-honey-arcade/internal/input"
	"go-honey-arcade/internal/replay"
	"go-honey-arcade/internal/storage"
	"go-honey-arcade/pkg/render"
)

func key(f input.Intent) input.Intents { return input.Intents{Flags: f} }

func newMenu(surf render.Surface, store storage.Store) (*StateMachine, *Launcher) {
	sm := NewStateMachine()
	l := &Launcher{Surface: surf, Options: app.Options{Store: store, Seed: 1}}
	sm.SetState(NewMenuState(sm, l))
	return sm, l
}

func TestMenuShowsBothBestScores(t *testing.T) {
	store := storage.NewMemory()
	_ = store.Set(config.BestScoreKeyHoney, "120")
	_ = store.Set(config.BestScoreKeyDefense, "45")
	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	sm, _ := newMenu(rec, store)
	sm.Draw(rec)
	for _, want := range []string{"Рекорд: 120", "Рекорд: 45"} {
		if !rec.HasText(want) {
			t.Errorf("menu does not show %q", want)
		}
	}
}

func TestMenuToPlayAndBack(t *testing.T) {
	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	sm, _ := newMenu(rec, nil)

	sm.Update(key(input.MoveRight), 0)
	sm.Update(key(input.Start), 0)
	play, ok := sm.Current().(*PlayState)
	if !ok {
		t.Fatalf("current state %T, want *PlayState", sm.Current())
	}
	if play.Frame().Name() != app.GameDefense {
		t.Errorf("started %s, want defense", play.Frame().Name())
	}

	sm.Update(key(input.Start), 0)
	sm.Update(key(input.Back), 0)
	if !play.Frame().State().Paused() {
		t.Fatal("Esc while running should pause")
	}
	sm.Update(key(input.Back), 0)
	if _, ok := sm.Current().(*MenuState); !ok {
		t.Fatalf("Esc while paused: state %T, want menu", sm.Current())
	}
	sm.Update(key(input.Back), 0)
	if !sm.Done() {
		t.Error("Esc in menu should quit")
	}
}

func TestMenuWithoutSurfaceStays(t *testing.T) {
	sm, l := newMenu(nil, nil)
	if l.Play(sm, app.GameHoney) {
		t.Error("Play without a surface should fail")
	}
	sm.Update(key(input.Start), 0)
	if _, ok := sm.Current().(*MenuState); !ok {
		t.Errorf("state %T, want menu", sm.Current())
	}
}

func TestPointerPicksGame(t *testing.T) {
	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	sm, _ := newMenu(rec, nil)
	menu := sm.Current().(*MenuState)
	c := menu.buttons[0].Rect.Center()
	sm.Update(input.Press(c.X, c.Y), 0)
	play, ok := sm.Current().(*PlayState)
	if !ok || play.Frame().Name() != app.GameHoney {
		t.Fatalf("pointer did not start honey: %T", sm.Current())
	}
}

func TestPlayStateRecordsFrames(t *testing.T) {
	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	frame, err := app.NewHoney(rec, app.Options{Seed: 9})
	if err != nil {
		t.Fatal(err)
	}
	sm := NewStateMachine()
	play := NewPlayState(sm, frame, nil)
	play.Recorder = replay.NewRecorder(frame.Name(), frame.Seed())
	sm.SetState(play)

	sm.Update(key(input.Start), 0.016)
	sm.Update(key(input.MoveLeft), 0.016)
	if n := len(play.Recorder.Replay().Frames); n != 2 {
		t.Errorf("recorded %d frames, want 2", n)
	}
	sm.Update(key(input.Back), 0.016)
	sm.Update(key(input.Back), 0.016)
	if !sm.Done() {
		t.Error("Esc without a menu should quit")
	}
}

func TestLeavingPausedGameSavesBest(t *testing.T) {
	store := storage.NewMemory()
	_ = store.Set(config.BestScoreKeyHoney, "5")
	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	sm, _ := newMenu(rec, store)

	sm.Update(key(input.Start), 0)
	play, ok := sm.Current().(*PlayState)
	if !ok {
		t.Fatalf("current state %T, want *PlayState", sm.Current())
	}
	honey, ok := play.Frame().(*app.Honey)
	if !ok {
		t.Fatalf("frame %T, want *app.Honey", play.Frame())
	}
	sm.Update(key(input.Start), 0)
	if got := honey.Controller().Award(10); got != 10 {
		t.Fatalf("Award = %d, want 10", got)
	}

	sm.Update(key(input.Back), 0)
	sm.Update(key(input.Back), 0)
	if _, ok := sm.Current().(*MenuState); !ok {
		t.Fatalf("state %T, want menu", sm.Current())
	}
	if v, _ := store.Get(config.BestScoreKeyHoney); v != "10" {
		t.Errorf("stored best = %q, want 10", v)
	}
}
