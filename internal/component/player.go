// internal/component/player.go
package component

import "go-honey-arcade/pkg/geom"

// Actor — управляемый игроком персонаж (корзинка с медвежонком).
// Pos — центр нижней грани, чтобы «стоять» на полу было просто.
type Actor struct {
	Pos         Position
	Vel         Velocity
	Width       float64
	Height      float64
	Speed       float64 // горизонтальная скорость при нажатой клавише
	JumpImpulse float64
	OnGround    bool
}

// Rect — прямоугольник актора для box-тестов
func (a *Actor) Rect() geom.Rect {
	return geom.Rect{X: a.Pos.X - a.Width/2, Y: a.Pos.Y - a.Height, W: a.Width, H: a.Height}
}
