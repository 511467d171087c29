// internal/interfaces/game.go
package interfaces

import (
	"go-chicken-invaders/internal/app"
	"go-chicken-invaders/internal/entity"
)

// Session — то, что фронтенду нужно от симуляции: один кадр и снимок.
type Session interface {
	Tick(in app.Input) bool
	Snapshot() entity.Snapshot
}

var _ Session = (*app.Game)(nil)
