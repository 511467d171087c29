// internal/app/runner.go
package app

import (
	"context"
	"time"

	"go-chicken-invaders/internal/entity"
)

// Sink receives the snapshot produced after every tick.
type Sink interface {
	Present(snap entity.Snapshot)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(entity.Snapshot)

func (f SinkFunc) Present(snap entity.Snapshot) { f(snap) }

// Runner paces a Game with a ticker for frontends that have no frame loop
// of their own (terminal, headless).
type Runner struct {
	Game   *Game
	Input  InputSource
	Output Sink
	TPS    int
}

// Run ticks until quit is requested or ctx is done. Quit returns nil.
func (r *Runner) Run(ctx context.Context) error {
	tps := r.TPS
	if tps <= 0 {
		tps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !r.Step() {
				return nil
			}
		}
	}
}

// Step runs a single tick and presents its snapshot.
func (r *Runner) Step() bool {
	running := r.Game.Tick(r.Input.Poll())
	if !running {
		return false
	}
	if r.Output != nil {
		r.Output.Present(r.Game.Snapshot())
	}
	return true
}
