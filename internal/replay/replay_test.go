package replay

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"go-honey-arcade/internal/input"
)

func TestRecordSaveLoadPlay(t *testing.T) {
	rec := NewRecorder("honey", 42)
	rec.Add(1.0/60, input.Intents{Flags: input.Start})
	rec.Add(1.0/60, input.Intents{Flags: input.MoveLeft | input.Jump})
	rec.Add(0.05, input.Press(120, 300))

	path := filepath.Join(t.TempDir(), "game.replay")
	if err := rec.Replay().Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Game != "honey" || got.Seed != 42 || len(got.Frames) != 3 {
		t.Fatalf("loaded %+v", got)
	}

	p := NewPlayer(got)
	_, in, _ := p.Next()
	if !in.Has(input.Start) {
		t.Error("frame 0 should start the game")
	}
	_, in, _ = p.Next()
	if !in.Has(input.MoveLeft) || !in.Has(input.Jump) || in.Has(input.MoveRight) {
		t.Errorf("frame 1 flags = %b", in.Flags)
	}
	dt, in, ok := p.Next()
	if !ok || dt != 0.05 || in.PointerX != 120 || in.PointerY != 300 {
		t.Errorf("frame 2 = %v %+v %v", dt, in, ok)
	}
	if _, _, ok := p.Next(); ok || !p.Done() {
		t.Error("player should be exhausted")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte{0xc1, 0x00})); !errors.Is(err, ErrBadReplay) {
		t.Errorf("garbage: want ErrBadReplay, got %v", err)
	}
	data, err := msgpack.Marshal(&Replay{Version: 99, Game: "honey"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(bytes.NewReader(data)); !errors.Is(err, ErrBadReplay) {
		t.Errorf("wrong version: want ErrBadReplay, got %v", err)
	}
}
