// internal/component/visual.go
package component

import "image/color"

// Particle — декоративная частица. Гаснет, когда Life доходит до нуля.
type Particle struct {
	Life    float64
	MaxLife float64
	Color   color.RGBA
}

// Fade возвращает долю оставшейся жизни в [0, 1]
func (p *Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	f := p.Life / p.MaxLife
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
