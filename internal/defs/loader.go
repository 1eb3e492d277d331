// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"go-honey-arcade/internal/config"
)

// Library — все определения, ключ — ID
type Library struct {
	Items     map[string]ItemDefinition
	Hazards   map[string]HazardDefinition
	Towers    map[string]TowerDefinition
	Particles map[string]ParticleDefinition
	// TowerOrder — порядок башен для цикла выбора
	TowerOrder []string
}

type libraryFile struct {
	Items     []ItemDefinition     `yaml:"items"`
	Hazards   []HazardDefinition   `yaml:"hazards"`
	Towers    []TowerDefinition    `yaml:"towers"`
	Particles []ParticleDefinition `yaml:"particles"`
}

// Default возвращает встроенную библиотеку
func Default() *Library {
	lib := &Library{
		Items:     make(map[string]ItemDefinition),
		Hazards:   make(map[string]HazardDefinition),
		Towers:    make(map[string]TowerDefinition),
		Particles: make(map[string]ParticleDefinition),
	}
	lib.merge(libraryFile{
		Items:     DefaultItems,
		Hazards:   DefaultHazards,
		Towers:    DefaultTowers,
		Particles: DefaultParticles,
	})
	return lib
}

func (l *Library) merge(f libraryFile) {
	for _, d := range f.Items {
		l.Items[d.ID] = d
	}
	for _, d := range f.Hazards {
		l.Hazards[d.ID] = d
	}
	for _, d := range f.Towers {
		if _, ok := l.Towers[d.ID]; !ok {
			l.TowerOrder = append(l.TowerOrder, d.ID)
		}
		l.Towers[d.ID] = d
	}
	for _, d := range f.Particles {
		l.Particles[d.ID] = d
	}
}

// Load читает YAML-файл определений и накладывает его на встроенную библиотеку.
// Определение с тем же ID заменяет встроенное. Пустой путь или отсутствующий
// файл дают встроенную библиотеку.
func Load(path string) (*Library, error) {
	lib := Default()
	if path == "" {
		return lib, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("[Defs] Definitions file %s not found, using built-in library", path)
			return lib, nil
		}
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	var f libraryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}
	lib.merge(f)
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	log.Printf("[Defs] Loaded %d items, %d hazards, %d towers from %s",
		len(f.Items), len(f.Hazards), len(f.Towers), path)
	return lib, nil
}

// Validate проверяет, что определения пригодны для симуляции
func (l *Library) Validate() error {
	for id, d := range l.Items {
		if id == "" || d.Radius <= 0 || d.Value < 0 {
			return fmt.Errorf("item %q: radius must be > 0 and value >= 0", id)
		}
	}
	for id, d := range l.Hazards {
		if id == "" || d.Radius <= 0 || d.Health <= 0 || d.Damage < 0 {
			return fmt.Errorf("hazard %q: radius and health must be > 0", id)
		}
	}
	for id, d := range l.Towers {
		if id == "" || d.Range <= 0 || d.Cooldown <= 0 || d.ProjectileSpeed <= 0 {
			return fmt.Errorf("tower %q: range, cooldown and projectile speed must be > 0", id)
		}
	}
	return nil
}

// Has — известен ли ID хоть в одном разделе
func (l *Library) Has(id string) bool {
	if _, ok := l.Items[id]; ok {
		return true
	}
	if _, ok := l.Hazards[id]; ok {
		return true
	}
	_, ok := l.Particles[id]
	return ok
}

// CheckTuning проверяет, что все ID в весах спавнеров есть в библиотеке.
// Опасности защиты должны быть именно опасностями: они идут по пути.
func (l *Library) CheckTuning(t *config.Tuning) error {
	groups := []struct {
		name    string
		weights []config.WeightTuning
		known   func(id string) bool
	}{
		{"honey.drops", t.Honey.Drops.Weights, l.Has},
		{"honey.sparkles", t.Honey.Sparkles.Weights, l.Has},
		{"defense.hazards", t.Defense.Hazards.Weights, func(id string) bool {
			_, ok := l.Hazards[id]
			return ok
		}},
	}
	for _, g := range groups {
		for _, w := range g.weights {
			if !g.known(w.ID) {
				return fmt.Errorf("%w: %s: unknown definition %q", config.ErrInvalidTuning, g.name, w.ID)
			}
		}
	}
	return nil
}
