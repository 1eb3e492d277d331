package session

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"go-honey-arcade/internal/app"
	"go-honey-arcade/internal/config"
	"go-honey-arcade/internal/input"
	"go-honey-arcade/internal/state"
	"go-honey-arcade/pkg/render"
)

func parse(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse(append([]string{"-mute", "-store", "memory"}, args...)); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return f
}

func surface() render.Surface {
	return render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
}

func frameOf(t *testing.T, s *Session) app.Frame {
	t.Helper()
	play, ok := s.Machine.Current().(*state.PlayState)
	if !ok {
		t.Fatalf("current state %T, want *state.PlayState", s.Machine.Current())
	}
	return play.Frame()
}

func TestDefaultsStartMenu(t *testing.T) {
	s, err := Open(parse(t), surface())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	if _, ok := s.Machine.Current().(*state.MenuState); !ok {
		t.Errorf("state %T, want menu", s.Machine.Current())
	}
}

func TestGameWithoutSurface(t *testing.T) {
	_, err := Open(parse(t, "-game", "honey"), nil)
	if !errors.Is(err, app.ErrNoSurface) {
		t.Errorf("Open = %v, want ErrNoSurface", err)
	}
}

func TestRecordThenReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.replay")
	rec, err := Open(parse(t, "-game", "honey", "-seed", "11", "-record", path), surface())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	rec.Step(input.Intents{Flags: input.Start}, 1.0/60)
	for i := 0; i < 300; i++ {
		in := input.Intents{Flags: input.MoveLeft}
		if i%90 > 45 {
			in.Flags = input.MoveRight
		}
		rec.Step(in, 1.0/60)
	}
	want := frameOf(t, rec).State()
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	play, err := Open(parse(t, "-replay", path), surface())
	if err != nil {
		t.Fatalf("Open replay: %v", err)
	}
	defer play.Close()
	frame := frameOf(t, play)
	for i := 0; i < 1000 && !play.Done(); i++ {
		play.Step(input.Intents{Flags: input.MoveRight | input.Reset}, 0.05)
	}
	if !play.Done() {
		t.Fatal("replay did not finish")
	}
	if got := frame.State(); got != want {
		t.Errorf("replayed state %+v, want %+v", got, want)
	}
}

func TestBadStoreDegrades(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	_ = fs.Parse([]string{"-mute", "-store", "nosuch", "-game", "defense"})
	s, err := Open(f, surface())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	if frameOf(t, s).Best() != 0 {
		t.Error("best without storage should be 0")
	}
}

func TestTuningWithUnknownDefinition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := "honey:\n  drops:\n    weights:\n      - id: honey_dorp\n        weight: 0.75\n      - id: bee\n        weight: 0.25\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Open(parse(t, "-tuning", path), surface())
	if !errors.Is(err, config.ErrInvalidTuning) {
		t.Errorf("Open = %v, want ErrInvalidTuning", err)
	}
}
