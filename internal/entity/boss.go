// internal/entity/boss.go
package entity

import (
	"go-chicken-invaders/internal/component"
	"go-chicken-invaders/internal/config"
	"go-chicken-invaders/internal/utils"
)

// Boss — гигантская курица. Патрулирует без снижения, бросает яйца
// и время от времени призывает саппортов.
type Boss struct {
	component.Rect
	Health   component.Health
	Dir      component.Direction
	Eggs     []component.Projectile
	Supports []*Enemy
}

func NewBoss(arena Arena, hp int) *Boss {
	return &Boss{
		Rect: component.Rect{
			X: arena.Width/2 - config.BossWidth/2,
			Y: config.BossY,
			W: config.BossWidth,
			H: config.BossHeight,
		},
		Health: component.Health{Value: hp, Max: hp},
		Dir:    component.Right,
	}
}

// Update выполняет кадр босса. Порядок бросков фиксирован
// (яйцо, призыв, затем саппорты по очереди), чтобы запись с тем же сидом
// воспроизводилась кадр в кадр.
func (b *Boss) Update(rng utils.Rand, arena Arena) {
	if utils.Roll(rng, config.BossDropRate) {
		b.Eggs = append(b.Eggs, component.Projectile{
			Rect: component.Rect{
				X: b.CenterX() - config.EggWidth/2,
				Y: b.Bottom(),
				W: config.BossEggWidth,
				H: config.BossEggHeight,
			},
			VY: config.BossEggSpeed,
		})
	}
	b.Eggs = component.StepAll(b.Eggs, arena.Height)

	b.X += int(b.Dir) * config.BossSpeed
	if b.X <= 0 || b.Right() >= arena.Width {
		b.Dir = b.Dir.Flip()
	}

	if utils.Roll(rng, config.BossSummonRate) {
		b.summon(rng, arena)
	}

	kept := b.Supports[:0]
	for _, s := range b.Supports {
		s.Update(rng, arena)
		if s.Y > arena.Height+config.SupportFallSlack {
			continue
		}
		kept = append(kept, s)
	}
	b.Supports = kept
}

func (b *Boss) summon(rng utils.Rand, arena Arena) {
	count := utils.RangeInt(rng, config.SummonMin, config.SummonMax)
	for i := 0; i < count; i++ {
		x := b.X + utils.RangeInt(rng, -config.SummonJitter, config.SummonJitter)
		x = utils.Clamp(x, 0, arena.Width-config.EnemyWidth)
		b.Supports = append(b.Supports, NewEnemy(x, b.Bottom()+config.SummonGap, config.SupportSpeed, config.SupportDropRate))
	}
}

// TakeDamage снимает здоровье с ограничением снизу нулем.
func (b *Boss) TakeDamage(amount int) {
	b.Health.Damage(amount)
}

func (b *Boss) Defeated() bool {
	return b.Health.Dead()
}
