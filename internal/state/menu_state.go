// internal/state/menu_state.go
package state

import (
	"image"
	"log"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-chicken-invaders/internal/config"
	"go-chicken-invaders/internal/defs"
	"go-chicken-invaders/internal/ui"
	"go-chicken-invaders/pkg/render"
)

// Options — то, что нужно для запуска партии из меню.
type Options struct {
	Config  config.Game
	Palette *render.Palette
	Seed    int64
}

// MenuState — выбор сложности: клавиши 1/2/3 или клик по кнопке.
type MenuState struct {
	sm      *StateMachine
	opts    Options
	buttons []*ui.MenuButton
	choices []defs.DifficultyID
	keys    []ebiten.Key
}

func NewMenuState(sm *StateMachine, opts Options) *MenuState {
	m := &MenuState{sm: sm, opts: opts}
	keys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}
	for i, id := range defs.MenuOrder {
		if i >= len(keys) {
			break
		}
		if _, err := defs.Lookup(id); err != nil {
			continue
		}
		top := 300 + i*50
		label := strconv.Itoa(i+1) + " - " + strings.ToUpper(string(id[:1])) + string(id[1:])
		m.buttons = append(m.buttons, ui.NewMenuButton(image.Rect(300, top, 500, top+40), label))
		m.choices = append(m.choices, id)
		m.keys = append(m.keys, keys[i])
	}
	return m
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for i, key := range m.keys {
		if inpututil.IsKeyJustPressed(key) {
			return m.start(m.choices[i])
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for i, b := range m.buttons {
			if b.IsClicked(x, y) {
				return m.start(m.choices[i])
			}
		}
	}
	return nil
}

func (m *MenuState) start(id defs.DifficultyID) error {
	diff, err := defs.Lookup(id)
	if err != nil {
		return err
	}
	log.Printf("Starting game on %s", id)
	m.sm.SetState(NewGameState(m.sm, m.opts, diff))
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(m.opts.Palette.Background)
	ui.DrawTextCentered(screen, "Choose Difficulty: 1-Easy  2-Normal  3-Hard", float64(m.opts.Config.Width)/2, 250, m.opts.Palette.Text)
	for _, b := range m.buttons {
		b.Draw(screen)
	}
}

func (m *MenuState) Exit() {}
