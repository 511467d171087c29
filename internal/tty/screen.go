// internal/tty/screen.go
package tty

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"go-chicken-invaders/internal/app"
	"go-chicken-invaders/internal/component"
	"go-chicken-invaders/internal/entity"
	"go-chicken-invaders/pkg/render"
)

// hudRows — строки сверху, занятые текстом HUD.
const hudRows = 2

// Screen растеризует снимок кадра в ячейки терминала. Арена масштабируется
// под текущий размер окна, HUD занимает верхние строки.
type Screen struct {
	screen  tcell.Screen
	palette *render.Palette
}

var _ app.Sink = (*Screen)(nil)

func NewScreen(screen tcell.Screen, palette *render.Palette) *Screen {
	return &Screen{screen: screen, palette: palette}
}

func (s *Screen) style(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Background(tcell.ColorBlack)
}

// Present рисует кадр и выводит его на терминал.
func (s *Screen) Present(snap entity.Snapshot) {
	s.screen.Clear()
	cols, rows := s.screen.Size()
	v := viewport{cols: cols, rows: rows - hudRows, arena: snap.Arena}
	if v.rows <= 0 || cols <= 0 {
		s.screen.Show()
		return
	}

	p := snap.Player
	if p.LaserActive {
		s.fill(v, p.Beam, '|', s.style(s.palette.Laser))
	}
	s.fill(v, p.Rect, 'A', s.style(s.palette.Player))
	for _, b := range p.Bullets {
		s.fill(v, b, '\'', s.style(s.palette.Bullet))
	}
	for _, e := range snap.Enemies {
		s.drawChicken(v, e)
	}
	if b := snap.Boss; b != nil {
		s.fill(v, b.Rect, 'B', s.style(s.palette.Enemy))
		for _, egg := range b.Eggs {
			s.fill(v, egg, 'O', s.style(s.palette.Egg))
		}
		for _, c := range b.Supports {
			s.drawChicken(v, c)
		}
	}

	s.drawHUD(snap, cols)
	s.screen.Show()
}

func (s *Screen) drawChicken(v viewport, e entity.EnemySnapshot) {
	s.fill(v, e.Rect, 'W', s.style(s.palette.Enemy))
	for _, egg := range e.Eggs {
		s.fill(v, egg, 'o', s.style(render.DarkenColor(s.palette.Egg)))
	}
}

func (s *Screen) drawHUD(snap entity.Snapshot, cols int) {
	text := s.style(s.palette.Text)
	line := fmt.Sprintf("Score: %d  HP: %d  Wave: %d/%d", snap.Score, snap.Player.HP, snap.Wave, snap.TotalWaves)
	s.print(0, 0, line, text)
	s.print(0, 1, fmt.Sprintf("Mana: %d/%d", snap.Player.Mana, snap.Player.MaxMana), s.style(s.palette.Mana))

	if snap.Boss != nil {
		const barCols = 20
		fill := render.FillWidth(barCols, snap.Boss.HP, snap.Boss.MaxHP)
		x := cols - barCols - 6
		s.print(x, 0, "BOSS", text)
		for i := 0; i < barCols; i++ {
			clr := s.palette.BarBack
			if i < fill {
				clr = s.palette.BarFill
			}
			s.screen.SetContent(x+5+i, 0, '#', nil, s.style(clr))
		}
	}

	if snap.Over {
		banner := "GAME OVER - Press Enter to Restart"
		if snap.Outcome == component.Won {
			banner = "YOU WIN! - Press Enter to Restart"
		}
		_, rows := s.screen.Size()
		s.print((cols-len(banner))/2, rows/2, banner, text)
	}
}

func (s *Screen) print(x, y int, str string, style tcell.Style) {
	for i, r := range str {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

// fill закрашивает все ячейки, которые задевает прямоугольник арены.
func (s *Screen) fill(v viewport, r component.Rect, ch rune, style tcell.Style) {
	x0, y0, x1, y1 := v.cells(r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.screen.SetContent(x, y+hudRows, ch, nil, style)
		}
	}
}

// viewport переводит пиксели арены в ячейки терминала.
type viewport struct {
	cols, rows int
	arena      entity.Arena
}

// cells возвращает включительные границы ячеек, обрезанные по окну.
func (v viewport) cells(r component.Rect) (x0, y0, x1, y1 int) {
	x0 = clamp(r.X*v.cols/v.arena.Width, 0, v.cols-1)
	x1 = clamp((r.Right()-1)*v.cols/v.arena.Width, 0, v.cols-1)
	y0 = clamp(r.Y*v.rows/v.arena.Height, 0, v.rows-1)
	y1 = clamp((r.Bottom()-1)*v.rows/v.arena.Height, 0, v.rows-1)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
