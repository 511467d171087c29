// internal/config/config.go
package config

import (
	"image/color"

	"go-chicken-invaders/pkg/render"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TPS          = 60 // тиков симуляции в секунду

	TotalWaves = 10
	BossEvery  = 5 // босс появляется на каждой волне, кратной этому числу

	PlayerWidth    = 40
	PlayerHeight   = 60
	PlayerSpeed    = 6
	PlayerOffsetY  = 80 // расстояние от нижнего края арены до корабля
	ShotCooldown   = 10 // кадров между выстрелами
	MaxMana        = 100
	LaserDuration  = 30 // кадров активности лазера
	LaserHalfWidth = 10 // полуширина луча для проверки попадания
	LaserDrawWidth = 10

	BulletWidth  = 6
	BulletHeight = 15
	BulletSpeed  = 10

	EnemyWidth    = 40
	EnemyHeight   = 40
	EnemyStepDown = 20
	EggWidth      = 10
	EggHeight     = 15
	EggSpeed      = 5

	GridCols    = 6
	GridRows    = 3
	GridOffsetX = 100
	GridOffsetY = 50
	GridStepX   = 60
	GridStepY   = 50

	BossWidth        = 160
	BossHeight       = 140
	BossY            = 40
	BossSpeed        = 2
	BossEggWidth     = 12
	BossEggHeight    = 18
	BossEggSpeed     = 7
	BossDropRate     = 0.05
	BossSummonRate   = 0.01
	SummonMin        = 2
	SummonMax        = 4
	SummonJitter     = 40
	SummonGap        = 10
	SupportSpeed     = 1
	SupportDropRate  = 0.01
	SupportFallSlack = 50 // саппорты удаляются, когда уходят ниже арены на это расстояние

	EnemyKillScore   = 10
	EnemyKillMana    = 5
	BossHitDamage    = 5
	BossHitScore     = 5
	BossHitMana      = 2
	LaserBossDamage  = 50
	SupportKillScore = 5
	SupportKillMana  = 3
	EggDamage        = 1

	BossBarX      = 200
	BossBarY      = 20
	BossBarWidth  = 400
	BossBarHeight = 20
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	TextColor       = color.RGBA{255, 255, 255, 255}
	PlayerColor     = color.RGBA{0, 0, 255, 255}
	BulletColor     = color.RGBA{255, 255, 0, 255}
	LaserColor      = color.RGBA{0, 200, 255, 255}
	EnemyColor      = color.RGBA{255, 255, 255, 255}
	CombColor       = color.RGBA{255, 0, 0, 255}
	EggColor        = color.RGBA{255, 255, 255, 255}
	BeakColor       = color.RGBA{255, 255, 0, 255}
	EyeColor        = color.RGBA{0, 0, 0, 255}
	BossBarBack     = color.RGBA{255, 0, 0, 255}
	BossBarFill     = color.RGBA{0, 255, 0, 255}
	ManaColor       = color.RGBA{0, 200, 255, 255}
)

// Game is the immutable tuning record handed to the simulation at construction.
type Game struct {
	Width, Height int
	TotalWaves    int
	BossEvery     int

	PlayerWidth, PlayerHeight int
	PlayerSpeed               int
	PlayerOffsetY             int
	ShotCooldown              int
	MaxMana                   int
	LaserDuration             int
	LaserHalfWidth            int
}

// Default returns the tuning of the classic arcade layout.
func Default() Game {
	return Game{
		Width:          ScreenWidth,
		Height:         ScreenHeight,
		TotalWaves:     TotalWaves,
		BossEvery:      BossEvery,
		PlayerWidth:    PlayerWidth,
		PlayerHeight:   PlayerHeight,
		PlayerSpeed:    PlayerSpeed,
		PlayerOffsetY:  PlayerOffsetY,
		ShotCooldown:   ShotCooldown,
		MaxMana:        MaxMana,
		LaserDuration:  LaserDuration,
		LaserHalfWidth: LaserHalfWidth,
	}
}

// IsBossWave сообщает, завершается ли волна боссом.
func (g Game) IsBossWave(wave int) bool {
	return g.BossEvery > 0 && wave%g.BossEvery == 0
}

// Palette собирает цвета конфигурации для рендереров.
func Palette() *render.Palette {
	return &render.Palette{
		Background: BackgroundColor,
		Text:       TextColor,
		Player:     PlayerColor,
		Bullet:     BulletColor,
		Laser:      LaserColor,
		Enemy:      EnemyColor,
		Comb:       CombColor,
		Eye:        EyeColor,
		Beak:       BeakColor,
		Egg:        EggColor,
		Mana:       ManaColor,
		BarBack:    BossBarBack,
		BarFill:    BossBarFill,
	}
}
