// internal/system/projectile.go
package system

import (
	"go-chicken-invaders/internal/component"
	"go-chicken-invaders/internal/config"
	"go-chicken-invaders/internal/entity"
	"go-chicken-invaders/internal/event"
)

// ProjectileSystem проверяет попадания вражеских яиц по игроку.
type ProjectileSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

// HitPlayer убирает яйца, попавшие в корабль, и снимает по EggDamage за каждое.
// Возвращает оставшиеся яйца.
func (s *ProjectileSystem) HitPlayer(eggs []component.Projectile) []component.Projectile {
	player := s.world.Player
	kept := eggs[:0]
	for _, egg := range eggs {
		if !egg.Intersects(player.Rect) {
			kept = append(kept, egg)
			continue
		}
		player.TakeHit(config.EggDamage)
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Tick: s.world.Tick, Data: player.Health.Value})
	}
	return kept
}

// bulletsVsEnemies — каждая пуля уничтожает не больше одного врага,
// каждый враг гибнет от первой попавшей пули. Удаление идет после прохода.
func (s *ProjectileSystem) bulletsVsEnemies(enemies []*entity.Enemy, reward event.Reward) []*entity.Enemy {
	player := s.world.Player
	if len(enemies) == 0 || len(player.Bullets) == 0 {
		return enemies
	}

	spent := make([]bool, len(player.Bullets))
	dead := make([]bool, len(enemies))
	for i, e := range enemies {
		for j, b := range player.Bullets {
			if spent[j] || !b.Intersects(e.Rect) {
				continue
			}
			spent[j] = true
			dead[i] = true
			grantReward(s.world, s.eventDispatcher, event.EnemyKilled, reward)
			break
		}
	}

	player.RemoveBullets(spent)
	return entity.RemoveEnemies(enemies, dead)
}
