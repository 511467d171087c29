// internal/system/combat.go
package system

import (
	"go-chicken-invaders/internal/config"
	"go-chicken-invaders/internal/entity"
	"go-chicken-invaders/internal/event"
)

// CombatSystem разрешает столкновения за кадр. Вызывается строго после
// того, как все сущности обновили себя. Порядок проверок фиксирован:
// пули по врагам, яйца по игроку, лазер по врагам, затем босс и саппорты.
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	projectiles     *ProjectileSystem
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher, projectiles *ProjectileSystem) *CombatSystem {
	return &CombatSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		projectiles:     projectiles,
	}
}

func (s *CombatSystem) Update() {
	w := s.world

	w.Enemies = s.projectiles.bulletsVsEnemies(w.Enemies, event.Reward{
		Source: event.ByBullet,
		Target: event.TargetEnemy,
		Score:  config.EnemyKillScore,
		Mana:   config.EnemyKillMana,
	})

	for _, e := range w.Enemies {
		e.Eggs = s.projectiles.HitPlayer(e.Eggs)
	}

	s.laserVsEnemies()

	if w.Boss != nil {
		s.resolveBoss(w.Boss)
	}
}

// laserVsEnemies сжигает всех врагов, чей центр попал в луч. Мана за это не дается.
func (s *CombatSystem) laserVsEnemies() {
	w := s.world
	if !w.Player.Laser.Active() || len(w.Enemies) == 0 {
		return
	}
	dead := make([]bool, len(w.Enemies))
	for i, e := range w.Enemies {
		if !w.Player.InBeam(e.CenterX()) {
			continue
		}
		dead[i] = true
		grantReward(w, s.eventDispatcher, event.EnemyKilled, event.Reward{
			Source: event.ByLaser,
			Target: event.TargetEnemy,
			Score:  config.EnemyKillScore,
		})
	}
	w.Enemies = entity.RemoveEnemies(w.Enemies, dead)
}

func (s *CombatSystem) resolveBoss(boss *entity.Boss) {
	w := s.world
	player := w.Player

	spent := make([]bool, len(player.Bullets))
	for j, b := range player.Bullets {
		if !b.Intersects(boss.Rect) {
			continue
		}
		spent[j] = true
		boss.TakeDamage(config.BossHitDamage)
		grantReward(w, s.eventDispatcher, event.BossHit, event.Reward{
			Source: event.ByBullet,
			Target: event.TargetBoss,
			Score:  config.BossHitScore,
			Mana:   config.BossHitMana,
		})
	}
	player.RemoveBullets(spent)

	// Луч жжет босса каждый кадр, пока он в полосе.
	if player.InBeam(boss.CenterX()) {
		boss.TakeDamage(config.LaserBossDamage)
		s.eventDispatcher.Dispatch(event.Event{Type: event.BossHit, Tick: w.Tick, Data: event.Reward{
			Source: event.ByLaser,
			Target: event.TargetBoss,
		}})
	}

	boss.Eggs = s.projectiles.HitPlayer(boss.Eggs)

	boss.Supports = s.projectiles.bulletsVsEnemies(boss.Supports, event.Reward{
		Source: event.ByBullet,
		Target: event.TargetSupport,
		Score:  config.SupportKillScore,
		Mana:   config.SupportKillMana,
	})
	for _, c := range boss.Supports {
		c.Eggs = s.projectiles.HitPlayer(c.Eggs)
	}
}
