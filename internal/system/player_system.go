// internal/system/player_system.go
package system

import (
	"go-chicken-invaders/internal/entity"
	"go-chicken-invaders/internal/event"
)

// PlayerSystem начисляет ману за попадания. Подписывается на EnemyKilled и BossHit.
type PlayerSystem struct {
	world *entity.World
}

func NewPlayerSystem(world *entity.World, eventDispatcher *event.Dispatcher) *PlayerSystem {
	ps := &PlayerSystem{world: world}
	eventDispatcher.Subscribe(ps, event.EnemyKilled, event.BossHit)
	return ps
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	reward, ok := e.Data.(event.Reward)
	if !ok || reward.Mana <= 0 {
		return
	}
	s.world.Player.Mana.Add(reward.Mana)
}
