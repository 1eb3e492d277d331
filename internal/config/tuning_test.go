package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTuningIsValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("default tuning is invalid: %v", err)
	}
}

func TestLoadTuningMissingFileUsesDefaults(t *testing.T) {
	tun, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if tun.Honey.Score.Lives != DefaultTuning().Honey.Score.Lives {
		t.Error("missing file should yield defaults")
	}
}

func TestLoadTuningOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := `
honey:
  score:
    lives: 5
  drops:
    mode: interval
    interval: 2.0
    minInterval: 1.0
    shrink: 0.9
    weights:
      - id: honey_drop
        weight: 1
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	tun, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if tun.Honey.Score.Lives != 5 {
		t.Errorf("lives = %d, want 5", tun.Honey.Score.Lives)
	}
	if tun.Honey.Drops.Interval != 2.0 || len(tun.Honey.Drops.Weights) != 1 {
		t.Errorf("drops not overridden: %+v", tun.Honey.Drops)
	}
	// Не указанное в файле остается по умолчанию
	if tun.Honey.Score.Duration != 60 {
		t.Errorf("duration = %v, want default 60", tun.Honey.Score.Duration)
	}
	if tun.Defense.MaxTowers != DefaultTuning().Defense.MaxTowers {
		t.Error("defense section should keep defaults")
	}
}

func TestValidateRejectsBadWeights(t *testing.T) {
	tun := DefaultTuning()
	tun.Honey.Drops.Weights = []WeightTuning{{ID: "honey_drop", Weight: 0.5}, {ID: "bee", Weight: 0.2}}
	err := tun.Validate()
	if !errors.Is(err, ErrInvalidTuning) {
		t.Fatalf("want ErrInvalidTuning, got %v", err)
	}
}

func TestValidateRejectsBadInterval(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SpawnTuning)
	}{
		{"zero interval", func(s *SpawnTuning) { s.Interval = 0 }},
		{"min above interval", func(s *SpawnTuning) { s.MinInterval = s.Interval + 1 }},
		{"growing interval", func(s *SpawnTuning) { s.Shrink = 1.5 }},
		{"unknown mode", func(s *SpawnTuning) { s.Mode = "burst" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tun := DefaultTuning()
			tt.mutate(&tun.Defense.Hazards)
			if err := tun.Validate(); !errors.Is(err, ErrInvalidTuning) {
				t.Errorf("want ErrInvalidTuning, got %v", err)
			}
		})
	}
}

func TestLoadTuningBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("honey: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTuning(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
