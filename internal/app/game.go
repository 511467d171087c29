// internal/app/game.go
package app

import (
	"log"

	"go-chicken-invaders/internal/component"
	"go-chicken-invaders/internal/config"
	"go-chicken-invaders/internal/defs"
	"go-chicken-invaders/internal/entity"
	"go-chicken-invaders/internal/event"
	"go-chicken-invaders/internal/system"
	"go-chicken-invaders/internal/utils"
)

// Game holds the session state and runs one fixed tick at a time.
// It does not pace itself: a frontend (ebiten, Runner) calls Tick at TPS.
type Game struct {
	Config     config.Game
	Difficulty defs.Difficulty
	World      *entity.World

	MovementSystem   *system.MovementSystem
	ProjectileSystem *system.ProjectileSystem
	CombatSystem     *system.CombatSystem
	WaveSystem       *system.WaveSystem
	StateSystem      *system.StateSystem
	PlayerSystem     *system.PlayerSystem
	EventDispatcher  *event.Dispatcher
	Rng              utils.Rand

	tick uint64
}

// NewGame initializes a session at wave 1.
func NewGame(cfg config.Game, diff defs.Difficulty, rng utils.Rand) *Game {
	if rng == nil {
		panic("rng cannot be nil")
	}
	g := &Game{
		Config:          cfg,
		Difficulty:      diff,
		EventDispatcher: event.NewDispatcher(),
		Rng:             rng,
	}
	g.EventDispatcher.Subscribe(&GameEventListener{game: g},
		event.WaveStarted, event.BossSpawned, event.BossDefeated,
		event.LaserFired, event.GameOver, event.GameRestarted)
	g.newSession()
	return g
}

// newSession rebuilds the world and every system bound to it.
func (g *Game) newSession() {
	if g.PlayerSystem != nil {
		g.EventDispatcher.Unsubscribe(g.PlayerSystem)
	}

	world := entity.NewWorld(g.Config, g.Difficulty)
	world.Tick = g.tick
	d := g.EventDispatcher

	g.World = world
	g.MovementSystem = system.NewMovementSystem(world, g.Rng)
	g.ProjectileSystem = system.NewProjectileSystem(world, d)
	g.CombatSystem = system.NewCombatSystem(world, d, g.ProjectileSystem)
	g.WaveSystem = system.NewWaveSystem(world, g.Config, d)
	g.StateSystem = system.NewStateSystem(world, d)
	g.PlayerSystem = system.NewPlayerSystem(world, d)

	g.WaveSystem.StartWave(1)
}

// Restart replaces the session with a fresh one at the same difficulty.
func (g *Game) Restart() {
	g.newSession()
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameRestarted, Tick: g.tick})
}

// Tick advances the simulation by one frame. It returns false once quit is requested.
func (g *Game) Tick(in Input) bool {
	g.tick++
	g.World.Tick = g.tick

	if in.Quit {
		return false
	}

	if g.World.Phase.Terminal() {
		if in.Restart {
			g.Restart()
		}
		return true
	}

	player := g.World.Player
	if in.Shoot {
		player.Shoot()
	}
	if in.Laser && player.ActivateLaser() {
		g.EventDispatcher.Dispatch(event.Event{Type: event.LaserFired, Tick: g.tick})
	}

	g.MovementSystem.Update(in.Intent())
	g.CombatSystem.Update()
	g.WaveSystem.Update()
	g.StateSystem.Update()
	return true
}

// Snapshot returns a read-only copy of the current frame.
func (g *Game) Snapshot() entity.Snapshot {
	return g.World.Snapshot()
}

// Phase reports whether the session is still running, won or lost.
func (g *Game) Phase() component.GameState {
	return g.World.Phase
}

// GameEventListener logs session milestones.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	w := l.game.World
	switch e.Type {
	case event.WaveStarted:
		log.Printf("tick %d: wave %v/%d started", e.Tick, e.Data, w.TotalWaves)
	case event.BossSpawned:
		log.Printf("tick %d: boss spawned on wave %v", e.Tick, e.Data)
	case event.BossDefeated:
		log.Printf("tick %d: boss defeated on wave %v, score %d", e.Tick, e.Data, w.Score)
	case event.LaserFired:
		log.Printf("tick %d: laser fired", e.Tick)
	case event.GameOver:
		log.Printf("tick %d: game over (%v), score %d, wave %d", e.Tick, e.Data, w.Score, w.Wave)
	case event.GameRestarted:
		log.Printf("tick %d: session restarted on %s", e.Tick, l.game.Difficulty.ID)
	}
}
