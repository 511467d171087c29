// internal/ui/menu_button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MenuButton представляет собой простую кнопку для использования в меню.
type MenuButton struct {
	Rect    image.Rectangle
	Text    string
	bgColor color.Color
	fgColor color.Color
}

// NewMenuButton создает новую кнопку меню.
func NewMenuButton(rect image.Rectangle, text string) *MenuButton {
	return &MenuButton{
		Rect:    rect,
		Text:    text,
		bgColor: color.RGBA{128, 128, 128, 255},
		fgColor: color.Black,
	}
}

// Draw отрисовывает кнопку.
func (b *MenuButton) Draw(screen *ebiten.Image) {
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, b.bgColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{200, 200, 200, 255}, false)
	DrawTextCentered(screen, b.Text, float64(x+w/2), float64(y+h/2-7), b.fgColor)
}

// IsClicked проверяет, был ли клик по кнопке.
func (b *MenuButton) IsClicked(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}
