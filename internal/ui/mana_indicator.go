// internal/ui/mana_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	manaBarWidth  = 118
	manaBarHeight = 12
	borderWidth   = 1
)

// ManaIndicator показывает ману текстом и полосой. Когда мана полная,
// рамка мигает, подсказывая, что лазер готов.
type ManaIndicator struct {
	X, Y  float32
	Color color.Color
}

func NewManaIndicator(x, y float32, clr color.Color) *ManaIndicator {
	return &ManaIndicator{X: x, Y: y, Color: clr}
}

func (i *ManaIndicator) Draw(screen *ebiten.Image, mana, maxMana int, laserTicks int, tick uint64) {
	DrawText(screen, fmt.Sprintf("Mana: %d/%d", mana, maxMana), float64(i.X), float64(i.Y), i.Color)

	barX := i.X + 130
	var border color.Color = color.White
	if mana >= maxMana && tick/15%2 == 0 {
		border = i.Color
	}
	vector.StrokeRect(screen, barX, i.Y, manaBarWidth, manaBarHeight, borderWidth, border, true)

	ratio := 0.0
	if maxMana > 0 {
		ratio = float64(mana) / float64(maxMana)
	}
	if laserTicks > 0 {
		ratio = 1 // луч горит, полоса залита до конца
	}
	if ratio > 1 {
		ratio = 1
	}
	fill := float32(float64(manaBarWidth-borderWidth*2) * ratio)
	if fill > 0 {
		vector.DrawFilledRect(screen, barX+borderWidth, i.Y+borderWidth, fill, manaBarHeight-borderWidth*2, i.Color, true)
	}
}
