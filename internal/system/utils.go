// internal/system/utils.go
package system

import (
	"go-chicken-invaders/internal/entity"
	"go-chicken-invaders/internal/event"
)

// grantReward начисляет очки и рассылает событие о попадании.
// Ману начисляет PlayerSystem, подписанная на эти события.
func grantReward(world *entity.World, d *event.Dispatcher, t event.EventType, r event.Reward) {
	world.AddScore(r.Score)
	d.Dispatch(event.Event{Type: t, Tick: world.Tick, Data: r})
}
