// internal/entity/enemy.go
package entity

import (
	"go-chicken-invaders/internal/component"
	"go-chicken-invaders/internal/config"
	"go-chicken-invaders/internal/utils"
)

// Enemy — курица из строя. Саппорты босса — такие же Enemy.
type Enemy struct {
	component.Rect
	Dir      component.Direction
	Speed    int
	DropRate float64
	Eggs     []component.Projectile
}

func NewEnemy(x, y, speed int, dropRate float64) *Enemy {
	return &Enemy{
		Rect:     component.Rect{X: x, Y: y, W: config.EnemyWidth, H: config.EnemyHeight},
		Dir:      component.Right,
		Speed:    speed,
		DropRate: dropRate,
	}
}

// Update двигает курицу зигзагом вниз, бросает яйцо и продвигает свои яйца.
// У края арены направление меняется и строй опускается на EnemyStepDown.
func (e *Enemy) Update(rng utils.Rand, arena Arena) {
	e.X += int(e.Dir) * e.Speed
	if e.X <= 0 || e.Right() >= arena.Width {
		e.Dir = e.Dir.Flip()
		e.Y += config.EnemyStepDown
	}
	if utils.Roll(rng, e.DropRate) {
		e.Eggs = append(e.Eggs, component.Projectile{
			Rect: component.Rect{
				X: e.CenterX() - config.EggWidth/2,
				Y: e.Bottom(),
				W: config.EggWidth,
				H: config.EggHeight,
			},
			VY: config.EggSpeed,
		})
	}
	e.Eggs = component.StepAll(e.Eggs, arena.Height)
}

// SpawnGrid строит стандартный строй 6×3 для новой волны.
func SpawnGrid(speed int, dropRate float64) []*Enemy {
	enemies := make([]*Enemy, 0, config.GridCols*config.GridRows)
	for col := 0; col < config.GridCols; col++ {
		for row := 0; row < config.GridRows; row++ {
			enemies = append(enemies, NewEnemy(
				col*config.GridStepX+config.GridOffsetX,
				row*config.GridStepY+config.GridOffsetY,
				speed, dropRate,
			))
		}
	}
	return enemies
}

// RemoveEnemies возвращает срез без отмеченных врагов.
func RemoveEnemies(enemies []*Enemy, dead []bool) []*Enemy {
	kept := enemies[:0]
	for i, e := range enemies {
		if !dead[i] {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(enemies); i++ {
		enemies[i] = nil
	}
	return kept
}
