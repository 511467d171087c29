// internal/entity/snapshot.go
package entity

import "go-chicken-invaders/internal/component"

// Snapshot — копия состояния кадра для отрисовки. Срезы скопированы,
// поэтому рендерер может держать снимок сколько угодно.
type Snapshot struct {
	Tick       uint64
	Arena      Arena
	Player     PlayerSnapshot
	Enemies    []EnemySnapshot
	Boss       *BossSnapshot
	Score      int
	Wave       int
	TotalWaves int
	Over       bool
	Outcome    component.GameState
}

type PlayerSnapshot struct {
	Rect        component.Rect
	HP, MaxHP   int
	Mana        int
	MaxMana     int
	LaserActive bool
	LaserTicks  int
	Beam        component.Rect
	Bullets     []component.Rect
}

type EnemySnapshot struct {
	Rect component.Rect
	Eggs []component.Rect
}

type BossSnapshot struct {
	Rect      component.Rect
	HP, MaxHP int
	Eggs      []component.Rect
	Supports  []EnemySnapshot
}

// Snapshot снимает текущее состояние мира.
func (w *World) Snapshot() Snapshot {
	p := w.Player
	snap := Snapshot{
		Tick:  w.Tick,
		Arena: w.Arena,
		Player: PlayerSnapshot{
			Rect:        p.Rect,
			HP:          p.Health.Value,
			MaxHP:       p.Health.Max,
			Mana:        p.Mana.Value,
			MaxMana:     p.Mana.Max,
			LaserActive: p.Laser.Active(),
			LaserTicks:  p.Laser.Remaining,
			Beam:        p.Beam(),
			Bullets:     rects(p.Bullets),
		},
		Enemies:    snapEnemies(w.Enemies),
		Score:      w.Score,
		Wave:       w.Wave,
		TotalWaves: w.TotalWaves,
		Over:       w.Phase.Terminal(),
		Outcome:    w.Phase,
	}
	if b := w.Boss; b != nil {
		snap.Boss = &BossSnapshot{
			Rect:     b.Rect,
			HP:       b.Health.Value,
			MaxHP:    b.Health.Max,
			Eggs:     rects(b.Eggs),
			Supports: snapEnemies(b.Supports),
		}
	}
	return snap
}

func snapEnemies(enemies []*Enemy) []EnemySnapshot {
	out := make([]EnemySnapshot, len(enemies))
	for i, e := range enemies {
		out[i] = EnemySnapshot{Rect: e.Rect, Eggs: rects(e.Eggs)}
	}
	return out
}

func rects(ps []component.Projectile) []component.Rect {
	out := make([]component.Rect, len(ps))
	for i, p := range ps {
		out[i] = p.Rect
	}
	return out
}
