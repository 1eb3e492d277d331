// internal/system/spawner.go
package system

import (
	"math"

	"go-honey-arcade/internal/config"
	"go-honey-arcade/internal/utils"
)

// SpawnMode — модель появления
type SpawnMode int

const (
	ModeChance   SpawnMode = iota // вероятность Rate*dt за тик
	ModeInterval                  // накопительный таймер с сокращающимся порогом
)

// maxSpawnsPerTick ограничивает догоняющие появления после длинного кадра
const maxSpawnsPerTick = 8

// WeightedKind — определение и его вес
type WeightedKind struct {
	DefID  string
	Weight float64
}

// SpawnerConfig — параметры спавнера
type SpawnerConfig struct {
	Mode        SpawnMode
	Rate        float64
	Interval    float64
	MinInterval float64
	Shrink      float64
	Weights     []WeightedKind
}

// SpawnerConfigFromTuning переводит секцию настроек в конфигурацию спавнера
func SpawnerConfigFromTuning(t config.SpawnTuning) SpawnerConfig {
	cfg := SpawnerConfig{
		Mode:        ModeInterval,
		Rate:        t.Rate,
		Interval:    t.Interval,
		MinInterval: t.MinInterval,
		Shrink:      t.Shrink,
	}
	if t.Mode == config.SpawnChance {
		cfg.Mode = ModeChance
	}
	for _, w := range t.Weights {
		cfg.Weights = append(cfg.Weights, WeightedKind{DefID: w.ID, Weight: w.Weight})
	}
	return cfg
}

// Spawner решает, когда и что появляется. Саму сущность создает игра через emit.
type Spawner struct {
	cfg      SpawnerConfig
	rng      *utils.PRNGService
	weights  []float64
	interval float64
	acc      float64
	Spawned  int
}

// NewSpawner создает спавнер
func NewSpawner(cfg SpawnerConfig, rng *utils.PRNGService) *Spawner {
	s := &Spawner{cfg: cfg, rng: rng}
	for _, w := range cfg.Weights {
		s.weights = append(s.weights, w.Weight)
	}
	s.Reset()
	return s
}

// Reset возвращает начальный порог и обнуляет накопитель
func (s *Spawner) Reset() {
	s.interval = s.cfg.Interval
	if s.cfg.MinInterval > 0 && s.interval < s.cfg.MinInterval {
		s.interval = s.cfg.MinInterval
	}
	s.acc = 0
	s.Spawned = 0
}

// Interval — текущий порог
func (s *Spawner) Interval() float64 {
	return s.interval
}

// Update продвигает спавнер на dt и возвращает число появлений
func (s *Spawner) Update(dt float64, emit func(defID string)) int {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) || emit == nil {
		return 0
	}
	n := 0
	switch s.cfg.Mode {
	case ModeChance:
		if s.rng.Float64() < s.cfg.Rate*dt {
			if s.emitOne(emit) {
				n++
			}
		}
	case ModeInterval:
		if s.interval <= 0 {
			return 0
		}
		s.acc += dt
		for s.acc >= s.interval && n < maxSpawnsPerTick {
			s.acc -= s.interval
			if s.emitOne(emit) {
				n++
			}
			s.interval = math.Max(s.cfg.MinInterval, s.interval*s.cfg.Shrink)
		}
		// Хвост после ограничения не копим
		if s.acc >= s.interval {
			s.acc = 0
		}
	}
	return n
}

func (s *Spawner) emitOne(emit func(defID string)) bool {
	idx := s.rng.ChooseWeighted(s.weights)
	if idx < 0 {
		return false
	}
	emit(s.cfg.Weights[idx].DefID)
	s.Spawned++
	return true
}
