// internal/entity/world.go
package entity

import (
	"go-chicken-invaders/internal/component"
	"go-chicken-invaders/internal/config"
	"go-chicken-invaders/internal/defs"
)

// World — изменяемое состояние одной партии. Им владеет только игровой цикл,
// поэтому блокировки не нужны. Рестарт создает новый World целиком.
type World struct {
	Arena      Arena
	Difficulty defs.Difficulty
	TotalWaves int

	Tick    uint64
	Player  *Player
	Enemies []*Enemy
	Boss    *Boss // nil, пока волна не зачищена на волне босса
	Score   int
	Wave    int
	Phase   component.GameState
}

// NewWorld создает мир в начальном состоянии: игрок на месте, врагов нет.
// Первую волну запускает WaveSystem.
func NewWorld(cfg config.Game, diff defs.Difficulty) *World {
	return &World{
		Arena:      ArenaFrom(cfg),
		Difficulty: diff,
		TotalWaves: cfg.TotalWaves,
		Player:     NewPlayer(cfg, diff.StartingHP),
		Phase:      component.Playing,
	}
}

// AddScore начисляет очки. Счет никогда не уменьшается.
func (w *World) AddScore(points int) {
	if points > 0 {
		w.Score += points
	}
}
