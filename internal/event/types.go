// internal/event/types.go
package event

const (
	WaveStarted   EventType = "WaveStarted"   // Новая волна: Data — номер волны (int)
	BossSpawned   EventType = "BossSpawned"   // Появился босс: Data — номер волны (int)
	BossDefeated  EventType = "BossDefeated"  // Босс побежден: Data — номер волны (int)
	EnemyKilled   EventType = "EnemyKilled"   // Враг или саппорт уничтожен: Data — Reward
	BossHit       EventType = "BossHit"       // Попадание по боссу: Data — Reward
	PlayerHit     EventType = "PlayerHit"     // Яйцо попало в игрока: Data — оставшееся здоровье (int)
	LaserFired    EventType = "LaserFired"    // Лазер активирован
	GameOver      EventType = "GameOver"      // Партия завершена: Data — component.GameState
	GameRestarted EventType = "GameRestarted" // Сессия пересоздана
)

// Source — чем нанесен урон.
type Source string

const (
	ByBullet Source = "bullet"
	ByLaser  Source = "laser"
)

// Target — по кому попали.
type Target string

const (
	TargetEnemy   Target = "enemy"
	TargetSupport Target = "support"
	TargetBoss    Target = "boss"
)

// Reward — данные событий EnemyKilled и BossHit.
type Reward struct {
	Source Source
	Target Target
	Score  int
	Mana   int
}
