// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Face — моноширинный шрифт HUD. Загрузки ассетов не требуется.
var Face text.Face = text.NewGoXFace(basicfont.Face7x13)

// DrawText рисует строку с левым верхним углом в (x, y).
func DrawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, Face, op)
}

// DrawTextCentered рисует строку, центрированную по x.
func DrawTextCentered(screen *ebiten.Image, s string, cx, y float64, clr color.Color) {
	w, _ := text.Measure(s, Face, 0)
	DrawText(screen, s, cx-w/2, y, clr)
}
