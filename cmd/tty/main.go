// cmd/tty/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"go-chicken-invaders/internal/app"
	"go-chicken-invaders/internal/config"
	"go-chicken-invaders/internal/defs"
	"go-chicken-invaders/internal/tty"
	"go-chicken-invaders/internal/utils"
)

var (
	difficultyFlag = flag.String("difficulty", string(defs.Normal), "easy, normal or hard")
	seedFlag       = flag.Int64("seed", 0, "random seed (0 = time based)")
	logFlag        = flag.String("log", "", "write the game log to this file (discarded by default)")
)

// setupLogging уводит log с терминала: stderr занят экраном tcell.
func setupLogging(path string) *os.File {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func run(ctx context.Context, screen tcell.Screen, diff defs.Difficulty) error {
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	rng := utils.NewPRNGService(*seedFlag)
	log.Printf("tty session seed=%d difficulty=%s", rng.Seed(), diff.ID)

	game := app.NewGame(config.Default(), diff, rng)
	keys := tty.NewKeys()
	runner := &app.Runner{
		Game:   game,
		Input:  keys,
		Output: tty.NewScreen(screen, config.Palette()),
		TPS:    config.TPS,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			keys.HandleEvent(ev)
		}
	}()

	return runner.Run(ctx)
}

func main() {
	flag.Parse()

	if f := setupLogging(*logFlag); f != nil {
		defer f.Close()
	}

	diff, err := defs.Lookup(defs.DifficultyID(*difficultyFlag))
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, screen, diff); err != nil && !errors.Is(err, context.Canceled) {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
