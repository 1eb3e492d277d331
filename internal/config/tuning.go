package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning — файл настроек прочитан, но значения не проходят проверку
var ErrInvalidTuning = errors.New("invalid tuning")

// SpawnMode — модель появления: вероятность в секунду или накопительный таймер
type SpawnMode string

const (
	SpawnChance   SpawnMode = "chance"
	SpawnInterval SpawnMode = "interval"
)

// WeightTuning — вес одного определения во взвешенном выборе
type WeightTuning struct {
	ID     string  `yaml:"id"`
	Weight float64 `yaml:"weight"`
}

// SpawnTuning — параметры одного спавнера. Интервалы в секундах.
type SpawnTuning struct {
	Mode        SpawnMode      `yaml:"mode"`
	Rate        float64        `yaml:"rate"`        // появлений в секунду (chance)
	Interval    float64        `yaml:"interval"`    // начальный порог (interval)
	MinInterval float64        `yaml:"minInterval"` // нижняя граница порога
	Shrink      float64        `yaml:"shrink"`      // множитель порога после каждого появления, (0, 1]
	Weights     []WeightTuning `yaml:"weights"`
}

// ScoreTuning — жизни, длительность и комбо
type ScoreTuning struct {
	Lives         int     `yaml:"lives"`
	Duration      float64 `yaml:"duration"`      // секунд; 0 — без таймера
	ComboStep     float64 `yaml:"comboStep"`     // прибавка к множителю за каждую поимку подряд
	MaxMultiplier float64 `yaml:"maxMultiplier"` // потолок множителя
	ComboWindow   float64 `yaml:"comboWindow"`   // секунд до сгорания комбо; 0 — не сгорает
	ShakeDuration float64 `yaml:"shakeDuration"`
}

// HoneyTuning — ловля мёда
type HoneyTuning struct {
	Score         ScoreTuning `yaml:"score"`
	PlayerSpeed   float64     `yaml:"playerSpeed"`
	PlayerWidth   float64     `yaml:"playerWidth"`
	PlayerHeight  float64     `yaml:"playerHeight"`
	JumpImpulse   float64     `yaml:"jumpImpulse"`
	Gravity       float64     `yaml:"gravity"`       // для игрока
	ItemGravity   float64     `yaml:"itemGravity"`   // для падающих предметов
	Friction      float64     `yaml:"friction"`      // множитель горизонтальной скорости за тик при 60 FPS
	BounceDamping float64     `yaml:"bounceDamping"` // доля скорости после отскока от стены
	GroundHeight  float64     `yaml:"groundHeight"`
	Drops         SpawnTuning `yaml:"drops"`
	Sparkles      SpawnTuning `yaml:"sparkles"`
}

// DefenseTuning — защита детской
type DefenseTuning struct {
	Score          ScoreTuning `yaml:"score"`
	BoardRadius    int         `yaml:"boardRadius"`
	HexSize        float64     `yaml:"hexSize"`
	ObstacleChance float64     `yaml:"obstacleChance"`
	MaxTowers      int         `yaml:"maxTowers"`
	Hazards        SpawnTuning `yaml:"hazards"`
}

// Tuning — все настраиваемые константы мини-игр
type Tuning struct {
	MaxEntities int           `yaml:"maxEntities"`
	Honey       HoneyTuning   `yaml:"honey"`
	Defense     DefenseTuning `yaml:"defense"`
}

// DefaultTuning возвращает встроенные настройки
func DefaultTuning() *Tuning {
	return &Tuning{
		MaxEntities: 512,
		Honey: HoneyTuning{
			Score: ScoreTuning{
				Lives:         3,
				Duration:      60,
				ComboStep:     0.1,
				MaxMultiplier: 3,
				ComboWindow:   2.5,
				ShakeDuration: 0.3,
			},
			PlayerSpeed:   320,
			PlayerWidth:   70,
			PlayerHeight:  44,
			JumpImpulse:   420,
			Gravity:       1200,
			ItemGravity:   90,
			Friction:      0.85,
			BounceDamping: 0.8,
			GroundHeight:  60,
			Drops: SpawnTuning{
				Mode:        SpawnInterval,
				Interval:    0.9,
				MinInterval: 0.35,
				Shrink:      0.99,
				Weights: []WeightTuning{
					{ID: "honey_drop", Weight: 0.55},
					{ID: "golden_honey", Weight: 0.1},
					{ID: "baby_bottle", Weight: 0.1},
					{ID: "bee", Weight: 0.25},
				},
			},
			Sparkles: SpawnTuning{
				Mode:    SpawnChance,
				Rate:    1.5,
				Weights: []WeightTuning{{ID: "sparkle", Weight: 1}},
			},
		},
		Defense: DefenseTuning{
			Score: ScoreTuning{
				Lives:         10,
				Duration:      90,
				ComboStep:     0.05,
				MaxMultiplier: 2,
				ComboWindow:   3,
				ShakeDuration: 0.25,
			},
			BoardRadius:    6,
			HexSize:        24,
			ObstacleChance: 0.12,
			MaxTowers:      6,
			Hazards: SpawnTuning{
				Mode:        SpawnInterval,
				Interval:    2.0,
				MinInterval: 0.6,
				Shrink:      0.97,
				Weights: []WeightTuning{
					{ID: "wasp", Weight: 0.6},
					{ID: "storm_cloud", Weight: 0.3},
					{ID: "thunder_cloud", Weight: 0.1},
				},
			},
		},
	}
}

// LoadTuning читает YAML поверх встроенных значений. Отсутствующий файл
// не ошибка: возвращаются настройки по умолчанию.
func LoadTuning(path string) (*Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("[Config] Tuning file %s not found, using defaults", path)
			return t, nil
		}
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	log.Printf("[Config] Tuning loaded from %s", path)
	return t, nil
}

// Validate проверяет согласованность настроек
func (t *Tuning) Validate() error {
	if t.MaxEntities <= 0 {
		return fmt.Errorf("%w: maxEntities must be > 0, got %d", ErrInvalidTuning, t.MaxEntities)
	}
	checks := []struct {
		name string
		err  error
	}{
		{"honey.score", t.Honey.Score.validate()},
		{"honey.drops", t.Honey.Drops.validate()},
		{"honey.sparkles", t.Honey.Sparkles.validate()},
		{"defense.score", t.Defense.Score.validate()},
		{"defense.hazards", t.Defense.Hazards.validate()},
	}
	for _, c := range checks {
		if c.err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidTuning, c.name, c.err)
		}
	}
	if t.Honey.PlayerWidth <= 0 || t.Honey.PlayerHeight <= 0 {
		return fmt.Errorf("%w: honey player size must be positive", ErrInvalidTuning)
	}
	if t.Honey.Friction < 0 || t.Honey.Friction > 1 {
		return fmt.Errorf("%w: honey.friction must be in [0, 1], got %v", ErrInvalidTuning, t.Honey.Friction)
	}
	if t.Defense.BoardRadius < 2 || t.Defense.HexSize <= 0 {
		return fmt.Errorf("%w: defense board is too small", ErrInvalidTuning)
	}
	return nil
}

func (s ScoreTuning) validate() error {
	if s.Lives <= 0 {
		return fmt.Errorf("lives must be > 0, got %d", s.Lives)
	}
	if s.Duration < 0 || s.ComboStep < 0 || s.ComboWindow < 0 || s.ShakeDuration < 0 {
		return errors.New("durations and combo step must not be negative")
	}
	if s.MaxMultiplier < 1 {
		return fmt.Errorf("maxMultiplier must be >= 1, got %v", s.MaxMultiplier)
	}
	return nil
}

func (s SpawnTuning) validate() error {
	switch s.Mode {
	case SpawnChance:
		if s.Rate < 0 {
			return fmt.Errorf("rate must be >= 0, got %v", s.Rate)
		}
	case SpawnInterval:
		if s.Interval <= 0 {
			return fmt.Errorf("interval must be > 0, got %v", s.Interval)
		}
		if s.MinInterval <= 0 || s.MinInterval > s.Interval {
			return fmt.Errorf("minInterval must be in (0, interval], got %v", s.MinInterval)
		}
		if s.Shrink <= 0 || s.Shrink > 1 {
			return fmt.Errorf("shrink must be in (0, 1], got %v", s.Shrink)
		}
	default:
		return fmt.Errorf("unknown spawn mode %q", s.Mode)
	}
	if len(s.Weights) == 0 {
		return errors.New("weights must not be empty")
	}
	sum := 0.0
	for _, w := range s.Weights {
		if w.ID == "" || w.Weight < 0 {
			return fmt.Errorf("bad weight entry %+v", w)
		}
		sum += w.Weight
	}
	if math.Abs(sum-1) > 1e-6 {
		return fmt.Errorf("weights must sum to 1, got %v", sum)
	}
	return nil
}
