// internal/ui/render.go
package ui

import (
	"image/color"
	"math"

	"go-chicken-invaders/internal/component"
	"go-chicken-invaders/internal/entity"
	"go-chicken-invaders/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WorldRenderer рисует сущности из снимка кадра. Состояние не меняет.
type WorldRenderer struct {
	palette *render.Palette
}

func NewWorldRenderer(palette *render.Palette) *WorldRenderer {
	return &WorldRenderer{palette: palette}
}

func (s *WorldRenderer) Draw(screen *ebiten.Image, snap *entity.Snapshot) {
	screen.Fill(s.palette.Background)

	s.drawPlayer(screen, &snap.Player)
	for i := range snap.Enemies {
		s.drawChicken(screen, &snap.Enemies[i])
	}
	if snap.Boss != nil {
		s.drawBoss(screen, snap.Boss)
	}
}

func (s *WorldRenderer) drawPlayer(screen *ebiten.Image, p *entity.PlayerSnapshot) {
	// Корабль — треугольник носом вверх, заливаем построчно.
	r := p.Rect
	for row := 0; row < r.H; row++ {
		half := float32(r.W) / 2 * float32(row) / float32(r.H)
		cx := float32(r.X) + float32(r.W)/2
		vector.DrawFilledRect(screen, cx-half, float32(r.Y+row), half*2+1, 1, s.palette.Player, false)
	}
	for _, b := range p.Bullets {
		fillRect(screen, b, s.palette.Bullet)
	}
	if p.LaserActive {
		fillRect(screen, p.Beam, s.palette.Laser)
	}
}

func (s *WorldRenderer) drawChicken(screen *ebiten.Image, e *entity.EnemySnapshot) {
	fillEllipse(screen, e.Rect, s.palette.Enemy)
	vector.DrawFilledCircle(screen, float32(e.Rect.CenterX()), float32(e.Rect.Y), 8, s.palette.Comb, true)
	for _, egg := range e.Eggs {
		fillEllipse(screen, egg, s.palette.Egg)
	}
}

func (s *WorldRenderer) drawBoss(screen *ebiten.Image, b *entity.BossSnapshot) {
	r := b.Rect
	x, y, w := float32(r.X), float32(r.Y), float32(r.W)

	fillEllipse(screen, r, s.palette.Enemy)
	vector.DrawFilledCircle(screen, x+w*0.5, y+10, 20, s.palette.Comb, true)
	vector.DrawFilledCircle(screen, x+w*0.33, y+40, 6, s.palette.Eye, true)
	vector.DrawFilledCircle(screen, x+w*0.66, y+40, 6, s.palette.Eye, true)
	// клюв
	for row := 0; row < 15; row++ {
		half := 8 * float32(15-row) / 15
		vector.DrawFilledRect(screen, x+w*0.5-half, y+60+float32(row), half*2, 1, s.palette.Beak, false)
	}

	for _, egg := range b.Eggs {
		fillEllipse(screen, egg, s.palette.Egg)
	}
	for i := range b.Supports {
		s.drawChicken(screen, &b.Supports[i])
	}
}

func fillRect(screen *ebiten.Image, r component.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// fillEllipse заливает эллипс, вписанный в r, горизонтальными полосками.
func fillEllipse(screen *ebiten.Image, r component.Rect, clr color.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	rx, ry := float64(r.W)/2, float64(r.H)/2
	cx, cy := float64(r.X)+rx, float64(r.Y)+ry
	for row := 0; row < r.H; row++ {
		dy := (float64(row) + 0.5 - ry) / ry
		half := rx * math.Sqrt(math.Max(0, 1-dy*dy))
		vector.DrawFilledRect(screen, float32(cx-half), float32(cy-ry)+float32(row), float32(half*2), 1, clr, false)
	}
}
