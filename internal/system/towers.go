// internal/system/towers.go
package system

import (
	"go-honey-arcade/internal/component"
	"go-honey-arcade/internal/entity"
)

const (
	projectileRadius = 4.0
	projectileTTL    = 2.5
)

// TowerSystem перезаряжает башни и стреляет по ближайшей опасности в радиусе
type TowerSystem struct {
	Towers    []*component.Tower
	collision *CollisionSystem
}

// NewTowerSystem создает систему башен
func NewTowerSystem(collision *CollisionSystem) *TowerSystem {
	return &TowerSystem{collision: collision}
}

// Place добавляет башню
func (s *TowerSystem) Place(t *component.Tower) {
	s.Towers = append(s.Towers, t)
}

// Clear убирает все башни
func (s *TowerSystem) Clear() {
	s.Towers = s.Towers[:0]
}

// Update возвращает число выпущенных снарядов
func (s *TowerSystem) Update(pool *entity.Pool, dt float64) int {
	dt = sanitizeDelta(dt)
	shots := 0
	for _, t := range s.Towers {
		if t.CooldownLeft > 0 {
			t.CooldownLeft -= dt
		}
		if !t.Ready() {
			continue
		}
		targetID, ok := s.collision.NearestInRange(pool, t.Pos.X, t.Pos.Y, t.Range)
		if !ok {
			continue
		}
		id := pool.Spawn(component.NewProjectile(t.Pos, projectileRadius, component.Projectile{
			TargetID: targetID,
			Speed:    t.ProjectileSpeed,
			Damage:   t.Damage,
			TTL:      projectileTTL,
			Color:    t.Color,
		}))
		if id == 0 {
			continue
		}
		t.CooldownLeft = t.Cooldown
		shots++
	}
	return shots
}
