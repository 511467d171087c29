// internal/entity/arena.go
package entity

import "go-chicken-invaders/internal/config"

// Arena — неизменяемые границы игрового поля.
type Arena struct {
	Width, Height int
}

// ArenaFrom берет границы из конфигурации игры.
func ArenaFrom(cfg config.Game) Arena {
	return Arena{Width: cfg.Width, Height: cfg.Height}
}
