// internal/defs/types.go
package defs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"go-honey-arcade/internal/component"
)

// Color — цвет в YAML записывается как "#rrggbb" или "#rrggbbaa"
type Color color.RGBA

// UnmarshalYAML разбирает шестнадцатеричную запись цвета
func (c *Color) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// RGBA возвращает цвет в виде color.RGBA
func (c Color) RGBA() color.RGBA { return color.RGBA(c) }

// ParseColor разбирает "#rrggbb" / "#rrggbbaa"
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("bad color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	if len(s) == 6 {
		return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// ItemDefinition — собираемый предмет ловли мёда
type ItemDefinition struct {
	ID     string          `yaml:"id"`
	Name   string          `yaml:"name"`
	Value  int             `yaml:"value"`
	Radius float64         `yaml:"radius"`
	Speed  float64         `yaml:"speed"` // начальная скорость падения
	Spin   float64         `yaml:"spin"`
	Shape  component.Shape `yaml:"shape"`
	Color  Color           `yaml:"color"`
}

// HazardDefinition — опасность (пчела, оса, туча)
type HazardDefinition struct {
	ID     string          `yaml:"id"`
	Name   string          `yaml:"name"`
	Damage int             `yaml:"damage"`
	Health int             `yaml:"health"`
	Value  int             `yaml:"value"` // очки за уничтожение башней
	Radius float64         `yaml:"radius"`
	Speed  float64         `yaml:"speed"`
	Drift  float64         `yaml:"drift"` // макс. горизонтальная скорость у летающих
	Bounce bool            `yaml:"bounce"`
	Shape  component.Shape `yaml:"shape"`
	Color  Color           `yaml:"color"`
}

// TowerDefinition — башня защиты детской
type TowerDefinition struct {
	ID              string  `yaml:"id"`
	Name            string  `yaml:"name"`
	Range           float64 `yaml:"range"`
	Damage          int     `yaml:"damage"`
	Cooldown        float64 `yaml:"cooldown"`
	ProjectileSpeed float64 `yaml:"projectileSpeed"`
	Color           Color   `yaml:"color"`
}

// ParticleDefinition — декоративная искорка
type ParticleDefinition struct {
	ID     string  `yaml:"id"`
	Radius float64 `yaml:"radius"`
	Life   float64 `yaml:"life"`
	Color  Color   `yaml:"color"`
}
