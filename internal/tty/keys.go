// internal/tty/keys.go
package tty

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"go-chicken-invaders/internal/app"
)

// HoldTicks — сколько кадров стрелка считается зажатой после события.
// Терминал не сообщает об отпускании клавиш, зато повторяет нажатия
// с частотой автоповтора, так что удержание продлевается само.
const HoldTicks = 8

// Keys переводит события tcell в app.Input. HandleEvent вызывается из
// горутины опроса терминала, Poll — из игрового цикла.
type Keys struct {
	mu      sync.Mutex
	left    int
	right   int
	pending app.Input
}

var _ app.InputSource = (*Keys)(nil)

func NewKeys() *Keys {
	return &Keys{}
}

// HandleEvent запоминает нажатие. Возвращает true для событий, которые
// поняла (клавиши управления).
func (k *Keys) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	switch key.Key() {
	case tcell.KeyLeft:
		k.left, k.right = HoldTicks, 0
	case tcell.KeyRight:
		k.right, k.left = HoldTicks, 0
	case tcell.KeyEnter:
		k.pending.Restart = true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.pending.Quit = true
	case tcell.KeyRune:
		switch key.Rune() {
		case ' ':
			k.pending.Shoot = true
		case 'k', 'K':
			k.pending.Laser = true
		case 'q', 'Q':
			k.pending.Quit = true
		default:
			return false
		}
	default:
		return false
	}
	return true
}

// Poll отдает ввод кадра и сбрасывает одноразовые нажатия.
func (k *Keys) Poll() app.Input {
	k.mu.Lock()
	defer k.mu.Unlock()

	in := k.pending
	k.pending = app.Input{}
	in.Left = k.left > 0
	in.Right = k.right > 0
	if k.left > 0 {
		k.left--
	}
	if k.right > 0 {
		k.right--
	}
	return in
}
