// internal/system/movement.go
package system

import (
	"go-chicken-invaders/internal/entity"
	"go-chicken-invaders/internal/utils"
)

// MovementSystem продвигает все сущности на кадр: корабль, строй, босса
// вместе с его саппортами. Все броски случайности идут через один rng.
type MovementSystem struct {
	world *entity.World
	rng   utils.Rand
}

func NewMovementSystem(world *entity.World, rng utils.Rand) *MovementSystem {
	return &MovementSystem{world: world, rng: rng}
}

// Update применяет горизонтальное намерение игрока (-1, 0, 1) и обновляет мир.
func (s *MovementSystem) Update(intent int) {
	w := s.world
	w.Player.Move(intent)
	w.Player.Update()

	for _, e := range w.Enemies {
		e.Update(s.rng, w.Arena)
	}
	if w.Boss != nil {
		w.Boss.Update(s.rng, w.Arena)
	}
}
