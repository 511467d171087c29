// internal/state/game_state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-chicken-invaders/internal/app"
	"go-chicken-invaders/internal/defs"
	"go-chicken-invaders/internal/entity"
	"go-chicken-invaders/internal/interfaces"
	"go-chicken-invaders/internal/ui"
	"go-chicken-invaders/internal/utils"
)

// GameState — состояние игры: опрос клавиатуры, кадр симуляции, отрисовка.
type GameState struct {
	sm       *StateMachine
	session  interfaces.Session
	renderer *ui.WorldRenderer
	hud      *ui.HUD
	snap     entity.Snapshot
}

func NewGameState(sm *StateMachine, opts Options, diff defs.Difficulty) *GameState {
	rng := utils.NewPRNGService(opts.Seed)
	log.Printf("Session seed %d", rng.Seed())

	game := app.NewGame(opts.Config, diff, rng)
	return &GameState{
		sm:       sm,
		session:  game,
		renderer: ui.NewWorldRenderer(opts.Palette),
		hud:      ui.NewHUD(opts.Palette, opts.Config.BossEvery),
		snap:     game.Snapshot(),
	}
}

func (g *GameState) Enter() {}

// pollInput собирает ввод кадра: стрелки удерживаются, остальное — по нажатию.
func pollInput() app.Input {
	return app.Input{
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Shoot:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Laser:   inpututil.IsKeyJustPressed(ebiten.KeyK),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

func (g *GameState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && !g.snap.Over {
		g.sm.SetState(NewPauseState(g.sm, g))
		return nil
	}

	if !g.session.Tick(pollInput()) {
		return ebiten.Termination
	}
	g.snap = g.session.Snapshot()
	return nil
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, &g.snap)
	g.hud.Draw(screen, &g.snap)
}

func (g *GameState) Exit() {}
