// internal/ui/boss_health_bar.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-chicken-invaders/pkg/render"
)

// BossHealthBar — полоса здоровья босса вверху экрана.
type BossHealthBar struct {
	X, Y, W, H int
	palette    *render.Palette
}

func NewBossHealthBar(x, y, w, h int, palette *render.Palette) *BossHealthBar {
	return &BossHealthBar{X: x, Y: y, W: w, H: h, palette: palette}
}

func (b *BossHealthBar) Draw(screen *ebiten.Image, hp, maxHP int) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), b.palette.BarBack, false)
	if w := render.FillWidth(b.W, hp, maxHP); w > 0 {
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(w), float32(b.H), b.palette.BarFill, false)
	}
}
