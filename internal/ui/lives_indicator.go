// internal/ui/lives_indicator.go
package ui

import (
	"go-honey-arcade/internal/config"
	"go-honey-arcade/pkg/render"
)

const (
	LivesCols         = 10
	LifeCircleRadius  = 6.0
	LifeCircleSpacing = 4.0
	lifeStrokeWidth   = 1.0
)

// LivesIndicator отображает жизни сеткой кружков
type LivesIndicator struct {
	X, Y float64
}

// NewLivesIndicator создает индикатор жизней
func NewLivesIndicator(x, y float64) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// Draw рисует max кружков, первые lives закрашены
func (i *LivesIndicator) Draw(surf render.Surface, lives, max int) {
	for j := 0; j < max; j++ {
		row := j / LivesCols
		col := j % LivesCols
		x := i.X + float64(col)*(LifeCircleRadius*2+LifeCircleSpacing) + LifeCircleRadius
		y := i.Y + float64(row)*(LifeCircleRadius*2+LifeCircleSpacing) + LifeCircleRadius

		c := config.LifeEmptyColor
		if j < lives {
			c = config.LifeFullColor
		}
		surf.FillCircle(x, y, LifeCircleRadius, c)
		surf.StrokeCircle(x, y, LifeCircleRadius, lifeStrokeWidth, config.TextLightColor)
	}
}

// Height — высота сетки для max жизней
func (i *LivesIndicator) Height(max int) float64 {
	rows := (max + LivesCols - 1) / LivesCols
	return float64(rows) * (LifeCircleRadius*2 + LifeCircleSpacing)
}
