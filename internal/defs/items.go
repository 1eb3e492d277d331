package defs

// DefaultItems — встроенные предметы ловли мёда
var DefaultItems = []ItemDefinition{
	{ID: "honey_drop", Name: "Капля мёда", Value: 10, Radius: 12, Speed: 160, Spin: 0, Shape: "drop", Color: Color{R: 245, G: 180, B: 40, A: 255}},
	{ID: "golden_honey", Name: "Золотой мёд", Value: 30, Radius: 14, Speed: 210, Spin: 2, Shape: "star", Color: Color{R: 255, G: 215, B: 0, A: 255}},
	{ID: "baby_bottle", Name: "Бутылочка", Value: 20, Radius: 13, Speed: 180, Spin: 1, Shape: "bottle", Color: Color{R: 170, G: 210, B: 250, A: 255}},
}

// DefaultHazards — встроенные опасности обеих игр
var DefaultHazards = []HazardDefinition{
	// Ловля мёда
	{ID: "bee", Name: "Пчела", Damage: 1, Health: 1, Value: 0, Radius: 14, Speed: 150, Drift: 90, Bounce: true, Shape: "bee", Color: Color{R: 250, G: 200, B: 30, A: 255}},
	// Защита
	{ID: "wasp", Name: "Оса", Damage: 1, Health: 3, Value: 10, Radius: 10, Speed: 60, Shape: "bee", Color: Color{R: 230, G: 150, B: 20, A: 255}},
	{ID: "storm_cloud", Name: "Тучка", Damage: 1, Health: 6, Value: 20, Radius: 14, Speed: 40, Shape: "cloud", Color: Color{R: 150, G: 160, B: 180, A: 255}},
	{ID: "thunder_cloud", Name: "Гроза", Damage: 2, Health: 12, Value: 50, Radius: 17, Speed: 30, Shape: "cloud", Color: Color{R: 90, G: 95, B: 120, A: 255}},
}

// DefaultParticles — встроенные частицы
var DefaultParticles = []ParticleDefinition{
	{ID: "sparkle", Radius: 2, Life: 1.2, Color: Color{R: 255, G: 255, B: 255, A: 200}},
}
