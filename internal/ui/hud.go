// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"go-chicken-invaders/internal/component"
	"go-chicken-invaders/internal/config"
	"go-chicken-invaders/internal/entity"
	"go-chicken-invaders/pkg/render"
)

// HUD собирает все индикаторы поверх игрового поля.
type HUD struct {
	palette *render.Palette
	health  *PlayerHealthIndicator
	wave    *WaveIndicator
	mana    *ManaIndicator
	bossBar *BossHealthBar
}

func NewHUD(palette *render.Palette, bossEvery int) *HUD {
	return &HUD{
		palette: palette,
		health:  NewPlayerHealthIndicator(10, 40),
		wave:    NewWaveIndicator(10, 70, palette.Text, bossEvery),
		mana:    NewManaIndicator(10, 100, palette.Mana),
		bossBar: NewBossHealthBar(config.BossBarX, config.BossBarY, config.BossBarWidth, config.BossBarHeight, palette),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, snap *entity.Snapshot) {
	if snap.Boss != nil {
		h.bossBar.Draw(screen, snap.Boss.HP, snap.Boss.MaxHP)
	}

	DrawText(screen, fmt.Sprintf("Score: %d", snap.Score), 10, 10, h.palette.Text)
	h.health.Draw(screen, snap.Player.HP, snap.Player.MaxHP)
	h.wave.Draw(screen, snap.Wave, snap.TotalWaves)
	h.mana.Draw(screen, snap.Player.Mana, snap.Player.MaxMana, snap.Player.LaserTicks, snap.Tick)

	if snap.Over {
		DrawTextCentered(screen, Banner(snap.Outcome), float64(snap.Arena.Width)/2, float64(snap.Arena.Height)/2, h.palette.Text)
	}
}

// Banner — надпись конца партии.
func Banner(outcome component.GameState) string {
	if outcome == component.Won {
		return "YOU WIN! - Press Enter to Restart"
	}
	return "GAME OVER - Press Enter to Restart"
}
