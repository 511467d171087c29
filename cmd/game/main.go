// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/hajimehoshi/ebiten/v2"

	"go-chicken-invaders/internal/config"
	"go-chicken-invaders/internal/defs"
	"go-chicken-invaders/internal/state"
)

var (
	difficultyFlag = flag.String("difficulty", "", "skip the menu and start on easy, normal or hard")
	diffFileFlag   = flag.String("difficulties", "", "JSON file replacing the built-in difficulty table")
	seedFlag       = flag.Int64("seed", 0, "random seed (0 = time based)")
	pprofFlag      = flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
)

type AppGame struct {
	stateMachine *state.StateMachine
	cfg          config.Game
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}

func main() {
	flag.Parse()

	if *pprofFlag != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofFlag, nil))
		}()
	}

	if *diffFileFlag != "" {
		if err := defs.LoadDifficulties(*diffFileFlag); err != nil {
			log.Fatal(err)
		}
	}

	cfg := config.Default()
	opts := state.Options{
		Config:  cfg,
		Palette: config.Palette(),
		Seed:    *seedFlag,
	}

	sm := state.NewStateMachine()
	if *difficultyFlag != "" {
		diff, err := defs.Lookup(defs.DifficultyID(*difficultyFlag))
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(state.NewGameState(sm, opts, diff))
	} else {
		sm.SetState(state.NewMenuState(sm, opts))
	}

	app := &AppGame{stateMachine: sm, cfg: cfg}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Chicken Invaders!")
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
