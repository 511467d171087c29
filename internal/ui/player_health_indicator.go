// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthCols          = 4
	HealthCircleRadius  = 6.0
	HealthCircleSpacing = 4.0
)

// PlayerHealthIndicator отображает здоровье игрока текстом и сеткой кружков.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw рисует "HP: n" и ряд кружков справа от текста.
// Заполненные кружки — оставшееся здоровье, при половине и меньше они красные.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	label := "HP: " + strconv.Itoa(health)
	DrawText(screen, label, float64(i.X), float64(i.Y), color.White)

	startX := i.X + 70
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	for j := 0; j < maxHealth; j++ {
		row := j / HealthCols
		col := j % HealthCols
		cx := startX + float32(col)*step + HealthCircleRadius
		cy := i.Y + float32(row)*step + HealthCircleRadius

		var fill color.Color = color.Black
		if j < health {
			fill = color.RGBA{0, 0, 255, 255}
			if health*2 <= maxHealth {
				fill = color.RGBA{255, 0, 0, 255}
			}
		}
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, fill, true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, color.White, true)
	}
}
