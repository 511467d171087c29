package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// WaveIndicator показывает номер волны и римскую цифру рядом.
type WaveIndicator struct {
	X, Y      float64
	Color     color.Color
	BossColor color.Color
	BossEvery int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float64, clr color.Color, bossEvery int) *WaveIndicator {
	return &WaveIndicator{
		X:         x,
		Y:         y,
		Color:     clr,
		BossColor: color.RGBA{255, 0, 0, 255},
		BossEvery: bossEvery,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Label возвращает подпись, например "Wave: 5/10 (V)".
func (i *WaveIndicator) Label(wave, total int) string {
	return fmt.Sprintf("Wave: %d/%d (%s)", wave, total, toRoman(wave))
}

// Draw отрисовывает индикатор. Волны босса выделяются красным.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave, total int) {
	clr := i.Color
	if i.BossEvery > 0 && wave%i.BossEvery == 0 {
		clr = i.BossColor
	}
	DrawText(screen, i.Label(wave, total), i.X, i.Y, clr)
}
