// internal/defs/towers.go
package defs

// DefaultTowers — встроенные башни. Порядок задает цикл выбора в игре.
var DefaultTowers = []TowerDefinition{
	{ID: "rattle", Name: "Погремушка", Range: 90, Damage: 1, Cooldown: 0.5, ProjectileSpeed: 300, Color: Color{R: 240, G: 130, B: 170, A: 255}},
	{ID: "pacifier", Name: "Соска", Range: 130, Damage: 3, Cooldown: 1.4, ProjectileSpeed: 380, Color: Color{R: 130, G: 180, B: 240, A: 255}},
	{ID: "teddy", Name: "Мишка", Range: 70, Damage: 2, Cooldown: 0.7, ProjectileSpeed: 260, Color: Color{R: 176, G: 120, B: 72, A: 255}},
}
