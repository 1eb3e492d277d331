// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06 // секунд; длиннее кадр обрезается драйвером
	TargetFPS    = 60

	HUDHeight       = 36
	HUDFontSize     = 18
	OverlayFontSize = 32

	PauseButtonX    = ScreenWidth - 28
	PauseButtonY    = 18
	PauseButtonSize = 10.0

	LivesIndicatorX = 12
	LivesIndicatorY = HUDHeight + 8

	ParticlesPerBurst = 10
	ParticleLife      = 0.6
	ParticleSpeed     = 140.0
	ShakeAmplitude    = 6.0

	BannerDuration = 1.2

	BestScoreKeyHoney   = "honey.best"
	BestScoreKeyDefense = "defense.best"
	StorageAppName      = "honey_arcade"
)

var (
	BackgroundColor  = color.RGBA{255, 244, 214, 255} // тёплый кремовый
	SkyBandColor     = color.RGBA{255, 235, 190, 255}
	GroundColor      = color.RGBA{170, 210, 140, 255}
	PathColor        = color.RGBA{232, 206, 150, 255}
	TileColor        = color.RGBA{200, 226, 170, 255}
	RockColor        = color.RGBA{150, 140, 130, 255}
	EntryColor       = color.RGBA{120, 190, 120, 255}
	ExitColor        = color.RGBA{240, 160, 190, 255} // детская
	TileStrokeColor  = color.RGBA{255, 255, 255, 120}
	ActorColor       = color.RGBA{176, 120, 72, 255}
	BasketColor      = color.RGBA{214, 160, 90, 255}
	TextDarkColor    = color.RGBA{70, 50, 30, 255}
	TextLightColor   = color.RGBA{255, 255, 255, 255}
	HUDColor         = color.RGBA{255, 255, 255, 200}
	OverlayColor     = color.RGBA{0, 0, 0, 128}
	HealthBarColor   = color.RGBA{230, 80, 80, 255}
	RangeColor       = color.RGBA{255, 255, 255, 60}
	PauseButtonColor = color.RGBA{240, 170, 60, 230}
	PlayButtonColor  = color.RGBA{120, 190, 120, 230}
	LifeFullColor    = color.RGBA{235, 90, 120, 255}
	LifeEmptyColor   = color.RGBA{90, 70, 70, 255}
)
