package tty

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-chicken-invaders/internal/app"
	"go-chicken-invaders/internal/component"
	"go-chicken-invaders/internal/config"
	"go-chicken-invaders/internal/defs"
	"go-chicken-invaders/internal/entity"
	"go-chicken-invaders/internal/utils"
)

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestKeysOneShotActions(t *testing.T) {
	k := NewKeys()
	assert.True(t, k.HandleEvent(key(tcell.KeyRune, ' ')))
	assert.True(t, k.HandleEvent(key(tcell.KeyRune, 'k')))
	assert.True(t, k.HandleEvent(key(tcell.KeyEnter, 0)))
	assert.False(t, k.HandleEvent(key(tcell.KeyRune, 'x')))

	assert.Equal(t, app.Input{Shoot: true, Laser: true, Restart: true}, k.Poll())
	assert.Equal(t, app.Input{}, k.Poll())

	k.HandleEvent(key(tcell.KeyEscape, 0))
	assert.True(t, k.Poll().Quit)
}

func TestKeysHoldArrowForSeveralTicks(t *testing.T) {
	k := NewKeys()
	k.HandleEvent(key(tcell.KeyLeft, 0))
	for i := 0; i < HoldTicks; i++ {
		in := k.Poll()
		require.True(t, in.Left, "tick %d", i)
		require.False(t, in.Right)
	}
	assert.False(t, k.Poll().Left)

	k.HandleEvent(key(tcell.KeyLeft, 0))
	k.HandleEvent(key(tcell.KeyRight, 0))
	in := k.Poll()
	assert.False(t, in.Left)
	assert.True(t, in.Right)
}

func TestKeysIgnoresNonKeyEvents(t *testing.T) {
	k := NewKeys()
	assert.False(t, k.HandleEvent(tcell.NewEventResize(80, 24)))
}

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(cols, rows)
	t.Cleanup(sim.Fini)
	return sim
}

func cell(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestPresentDrawsPlayerEnemiesAndHUD(t *testing.T) {
	sim := newSimScreen(t, 80, 26)
	diff, err := defs.Lookup(defs.Normal)
	require.NoError(t, err)
	game := app.NewGame(config.Default(), diff, &utils.ScriptedRand{})

	NewScreen(sim, config.Palette()).Present(game.Snapshot())

	// корабль 380..419 x 520..579 -> колонки 38..41, строки 20..23 арены
	assert.Equal(t, 'A', cell(sim, 39, 20+hudRows))
	assert.Equal(t, 'A', cell(sim, 41, 23+hudRows))
	// первая курица сетки в (100,50)
	assert.Equal(t, 'W', cell(sim, 10, 2+hudRows))
	assert.Equal(t, 'S', cell(sim, 0, 0))
	assert.Equal(t, 'M', cell(sim, 0, 1))
}

func TestPresentShowsBannerWhenOver(t *testing.T) {
	sim := newSimScreen(t, 80, 26)
	snap := entity.Snapshot{
		Arena:   entity.Arena{Width: 800, Height: 600},
		Over:    true,
		Outcome: component.Won,
	}
	NewScreen(sim, config.Palette()).Present(snap)

	banner := "YOU WIN! - Press Enter to Restart"
	x := (80 - len(banner)) / 2
	for i, r := range banner {
		require.Equal(t, r, cell(sim, x+i, 13))
	}
}

func TestViewportClampsToWindow(t *testing.T) {
	v := viewport{cols: 80, rows: 24, arena: entity.Arena{Width: 800, Height: 600}}
	x0, y0, x1, y1 := v.cells(component.Rect{X: -20, Y: 590, W: 6, H: 40})
	assert.Equal(t, 0, x0)
	assert.Equal(t, 0, x1)
	assert.Equal(t, 23, y0)
	assert.Equal(t, 23, y1)
}
