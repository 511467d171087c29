// internal/defs/types.go
package defs

// DifficultyID is the key a frontend uses to pick a difficulty.
type DifficultyID string

const (
	Easy   DifficultyID = "easy"
	Normal DifficultyID = "normal"
	Hard   DifficultyID = "hard"
)

// Difficulty holds the per-session settings derived from the chosen difficulty.
type Difficulty struct {
	ID         DifficultyID `json:"id"`
	StartingHP int          `json:"hp"`
	EnemySpeed int          `json:"enemy_speed"`
	DropRate   float64      `json:"drop_rate"`
	BossHP     int          `json:"boss_hp"`
}
