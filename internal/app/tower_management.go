// internal/app/tower_management.go
package app

import (
	"go-honey-arcade/internal/component"
	"go-honey-arcade/internal/event"
	"go-honey-arcade/pkg/hexmap"
)

// PlaceTower ставит выбранную башню на гекс. Строить можно до старта и во время партии.
func (g *Defense) PlaceTower(hex hexmap.Hex) bool {
	if !g.canPlaceTower(hex) {
		return false
	}
	t := g.createTower(hex, g.Selected())
	g.towers.Place(t)

	tile := g.board.Tiles[hex]
	tile.Buildable = false
	g.board.Tiles[hex] = tile

	g.emit(event.TowerPlaced, hex)
	return true
}

func (g *Defense) canPlaceTower(hex hexmap.Hex) bool {
	phase := g.ctrl.State.Phase
	if phase != component.PhaseReady && phase != component.PhaseRunning {
		return false
	}
	if len(g.towers.Towers) >= g.tuning.MaxTowers {
		return false
	}
	if !g.board.CanBuild(hex) {
		return false
	}
	for _, t := range g.towers.Towers {
		if t.Hex == hex {
			return false
		}
	}
	return true
}

func (g *Defense) createTower(hex hexmap.Hex, defID string) *component.Tower {
	d := g.lib.Towers[defID]
	x, y := g.layout.ToPixel(hex)
	return &component.Tower{
		DefID:           d.ID,
		Hex:             hex,
		Pos:             component.Position{X: x, Y: y},
		Range:           d.Range,
		Damage:          d.Damage,
		Cooldown:        d.Cooldown,
		ProjectileSpeed: d.ProjectileSpeed,
		Color:           d.Color.RGBA(),
	}
}
