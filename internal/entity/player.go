// internal/entity/player.go
package entity

import (
	"go-chicken-invaders/internal/component"
	"go-chicken-invaders/internal/config"
	"go-chicken-invaders/internal/utils"
)

// Player — корабль игрока: движение по горизонтали, пули, мана и лазер.
type Player struct {
	component.Rect
	Speed    int
	Bullets  []component.Projectile
	Cooldown int
	Health   component.Health
	Mana     component.Mana
	Laser    component.Laser

	arena          Arena
	shotCooldown   int
	laserDuration  int
	laserHalfWidth int
}

// NewPlayer ставит корабль по центру у нижнего края арены.
func NewPlayer(cfg config.Game, hp int) *Player {
	return &Player{
		Rect: component.Rect{
			X: cfg.Width/2 - cfg.PlayerWidth/2,
			Y: cfg.Height - cfg.PlayerOffsetY,
			W: cfg.PlayerWidth,
			H: cfg.PlayerHeight,
		},
		Speed:          cfg.PlayerSpeed,
		Health:         component.Health{Value: hp, Max: hp},
		Mana:           component.Mana{Max: cfg.MaxMana},
		arena:          ArenaFrom(cfg),
		shotCooldown:   cfg.ShotCooldown,
		laserDuration:  cfg.LaserDuration,
		laserHalfWidth: cfg.LaserHalfWidth,
	}
}

// Move сдвигает корабль на ±Speed. intent < 0 — влево, > 0 — вправо, 0 — на месте.
// Корабль всегда целиком остается внутри арены.
func (p *Player) Move(intent int) {
	switch {
	case intent < 0:
		p.X -= p.Speed
	case intent > 0:
		p.X += p.Speed
	default:
		return
	}
	p.X = utils.Clamp(p.X, 0, p.arena.Width-p.W)
}

// Shoot выпускает пулю из носа корабля, если пушка перезарядилась.
// Выстрелы во время перезарядки не копятся.
func (p *Player) Shoot() bool {
	if p.Cooldown > 0 {
		return false
	}
	p.Bullets = append(p.Bullets, component.Projectile{
		Rect: component.Rect{
			X: p.CenterX() - config.BulletWidth/2,
			Y: p.Y,
			W: config.BulletWidth,
			H: config.BulletHeight,
		},
		VY: -config.BulletSpeed,
	})
	p.Cooldown = p.shotCooldown
	return true
}

// Update продвигает перезарядку, пули и таймер лазера на один кадр.
func (p *Player) Update() {
	if p.Cooldown > 0 {
		p.Cooldown--
	}
	p.Bullets = component.StepAll(p.Bullets, p.arena.Height)
	if p.Laser.Active() {
		p.Laser.Remaining--
	}
}

// ActivateLaser включает луч только при полной мане и выключенном луче.
// Вся мана сгорает; повторное нажатие во время луча ничего не делает.
func (p *Player) ActivateLaser() bool {
	if !p.Mana.Full() || p.Laser.Active() {
		return false
	}
	p.Laser.Remaining = p.laserDuration
	p.Mana.Value = 0
	return true
}

// TakeHit снимает здоровье, не опуская его ниже нуля.
func (p *Player) TakeHit(damage int) {
	p.Health.Damage(damage)
}

// InBeam проверяет, попадает ли горизонтальный центр цели в активный луч.
func (p *Player) InBeam(centerX int) bool {
	return p.Laser.Active() && utils.Abs(centerX-p.CenterX()) < p.laserHalfWidth
}

// Beam — прямоугольник луча для отрисовки: от верха арены до носа корабля.
func (p *Player) Beam() component.Rect {
	return component.Rect{
		X: p.CenterX() - config.LaserDrawWidth/2,
		Y: 0,
		W: config.LaserDrawWidth,
		H: p.Y,
	}
}

// RemoveBullets удаляет пули, отмеченные в hit. Индексы соответствуют
// срезу Bullets на момент вызова.
func (p *Player) RemoveBullets(hit []bool) {
	kept := p.Bullets[:0]
	for i, b := range p.Bullets {
		if !hit[i] {
			kept = append(kept, b)
		}
	}
	p.Bullets = kept
}
