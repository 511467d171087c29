// internal/system/wave.go
package system

import (
	"go-chicken-invaders/internal/component"
	"go-chicken-invaders/internal/config"
	"go-chicken-invaders/internal/entity"
	"go-chicken-invaders/internal/event"
)

// WaveSystem — директор волн. Состояния: строй на поле → строй зачищен →
// либо бой с боссом, либо следующая волна. После последней волны — победа.
type WaveSystem struct {
	world           *entity.World
	cfg             config.Game
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(world *entity.World, cfg config.Game, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		world:           world,
		cfg:             cfg,
		eventDispatcher: eventDispatcher,
	}
}

// StartWave выставляет номер волны и расставляет новый строй.
func (s *WaveSystem) StartWave(waveNumber int) {
	diff := s.world.Difficulty
	s.world.Wave = waveNumber
	s.world.Enemies = entity.SpawnGrid(diff.EnemySpeed, diff.DropRate)
	s.dispatch(event.WaveStarted, waveNumber)
}

// Update проверяет переходы. Вызывается после CombatSystem.
func (s *WaveSystem) Update() {
	w := s.world

	if w.Boss != nil {
		if w.Boss.Defeated() {
			w.Boss = nil
			s.dispatch(event.BossDefeated, w.Wave)
			s.advance()
		}
		return
	}

	if len(w.Enemies) > 0 {
		return
	}

	if s.cfg.IsBossWave(w.Wave) {
		w.Boss = entity.NewBoss(w.Arena, w.Difficulty.BossHP)
		s.dispatch(event.BossSpawned, w.Wave)
		return
	}
	s.advance()
}

func (s *WaveSystem) advance() {
	next := s.world.Wave + 1
	if next > s.cfg.TotalWaves {
		s.world.Wave = next
		s.world.Phase = component.Won
		return
	}
	s.StartWave(next)
}

func (s *WaveSystem) dispatch(t event.EventType, wave int) {
	s.eventDispatcher.Dispatch(event.Event{Type: t, Tick: s.world.Tick, Data: wave})
}
