package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-chicken-invaders/internal/component"
	"go-chicken-invaders/internal/config"
	"go-chicken-invaders/internal/defs"
	"go-chicken-invaders/internal/entity"
	"go-chicken-invaders/internal/utils"
)

func newTestGame(t *testing.T, id defs.DifficultyID, rng utils.Rand) *Game {
	t.Helper()
	diff, err := defs.Lookup(id)
	require.NoError(t, err)
	if rng == nil {
		rng = &utils.ScriptedRand{}
	}
	return NewGame(config.Default(), diff, rng)
}

func TestNewGameStartsAtWaveOne(t *testing.T) {
	g := newTestGame(t, defs.Normal, nil)
	snap := g.Snapshot()

	assert.Equal(t, 1, snap.Wave)
	assert.Equal(t, 10, snap.TotalWaves)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 5, snap.Player.HP)
	assert.Equal(t, 0, snap.Player.Mana)
	assert.Nil(t, snap.Boss)
	assert.False(t, snap.Over)
	require.Len(t, snap.Enemies, 18)

	got := map[[2]int]bool{}
	for _, e := range snap.Enemies {
		got[[2]int{e.Rect.X, e.Rect.Y}] = true
	}
	for col := 0; col < 6; col++ {
		for row := 0; row < 3; row++ {
			assert.True(t, got[[2]int{col*60 + 100, row*50 + 50}])
		}
	}
}

func TestTickShootIsRateLimited(t *testing.T) {
	g := newTestGame(t, defs.Normal, nil)

	g.Tick(Input{Shoot: true})
	g.Tick(Input{Shoot: true})
	assert.Len(t, g.World.Player.Bullets, 1)
}

func TestTickLaserGate(t *testing.T) {
	g := newTestGame(t, defs.Normal, nil)
	g.World.Enemies = nil // keep the beam from scoring

	g.World.Player.Mana.Value = 60
	g.Tick(Input{Laser: true})
	assert.False(t, g.World.Player.Laser.Active())
	assert.Equal(t, 60, g.World.Player.Mana.Value)
}

func TestQuitStopsTheLoop(t *testing.T) {
	g := newTestGame(t, defs.Normal, nil)
	assert.True(t, g.Tick(Input{}))
	assert.False(t, g.Tick(Input{Quit: true}))
}

func TestEggDeathFreezesThenRestartResets(t *testing.T) {
	g := newTestGame(t, defs.Normal, nil)
	w := g.World
	w.Score = 120
	w.Player.Mana.Value = 40
	w.Player.Health.Value = 1
	p := w.Player.Rect
	w.Enemies[0].Eggs = append(w.Enemies[0].Eggs, component.Projectile{
		Rect: component.Rect{X: p.X + 5, Y: p.Y, W: 10, H: 15}, VY: 5,
	})

	g.Tick(Input{})
	require.Equal(t, component.Lost, g.Phase())
	snap := g.Snapshot()
	assert.True(t, snap.Over)
	assert.Equal(t, component.Lost, snap.Outcome)
	assert.Equal(t, 0, snap.Player.HP)

	frozen := g.Snapshot()
	g.Tick(Input{Right: true, Shoot: true})
	after := g.Snapshot()
	assert.Equal(t, frozen.Enemies, after.Enemies)
	assert.Equal(t, frozen.Player.Rect, after.Player.Rect)
	assert.Empty(t, after.Player.Bullets)

	g.Tick(Input{Restart: true})
	reset := g.Snapshot()
	assert.Equal(t, component.Playing, reset.Outcome)
	assert.False(t, reset.Over)
	assert.Equal(t, 0, reset.Score)
	assert.Equal(t, 1, reset.Wave)
	assert.Equal(t, 5, reset.Player.HP)
	assert.Equal(t, 0, reset.Player.Mana)
	assert.Len(t, reset.Enemies, 18)
	assert.Nil(t, reset.Boss)
	assert.Equal(t, 380, reset.Player.Rect.X)
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t, defs.Normal, nil)
	g.World.Score = 50
	g.Tick(Input{Restart: true})
	assert.Equal(t, 50, g.World.Score)
}

func TestRestartKeepsSingleManaListener(t *testing.T) {
	g := newTestGame(t, defs.Normal, nil)
	g.World.Phase = component.Won
	g.Tick(Input{Restart: true})
	g.World.Phase = component.Won
	g.Tick(Input{Restart: true})

	w := g.World
	e := w.Enemies[0]
	w.Enemies = []*entity.Enemy{e}
	w.Player.Bullets = []component.Projectile{{
		Rect: component.Rect{X: e.X + 2, Y: e.Y + 2, W: 6, H: 15},
	}}
	g.CombatSystem.Update()
	assert.Equal(t, 5, w.Player.Mana.Value)
}

func TestBossWaveThroughTicks(t *testing.T) {
	g := newTestGame(t, defs.Hard, nil)
	g.WaveSystem.StartWave(5)
	g.World.Enemies = nil

	g.Tick(Input{})
	require.NotNil(t, g.World.Boss)
	assert.Equal(t, 1500, g.World.Boss.Health.Value)

	for i := 0; i < 20; i++ {
		g.Tick(Input{})
		require.Empty(t, g.World.Enemies)
	}

	g.World.Boss.TakeDamage(1500)
	g.Tick(Input{})
	assert.Nil(t, g.World.Boss)
	assert.Equal(t, 6, g.World.Wave)
	assert.Len(t, g.World.Enemies, 18)
}

func TestFinalBossWinsThroughTicks(t *testing.T) {
	g := newTestGame(t, defs.Easy, nil)
	g.WaveSystem.StartWave(10)
	g.World.Enemies = nil
	g.Tick(Input{})
	require.NotNil(t, g.World.Boss)

	g.World.Boss.TakeDamage(10000)
	g.Tick(Input{})

	snap := g.Snapshot()
	assert.True(t, snap.Over)
	assert.Equal(t, component.Won, snap.Outcome)
	assert.Nil(t, snap.Boss)
}

func TestInvariantsHoldUnderRandomPlay(t *testing.T) {
	g := newTestGame(t, defs.Hard, utils.NewPRNGService(2024))
	inputs := utils.NewPRNGService(99)

	for i := 0; i < 20000; i++ {
		in := Input{
			Left:    inputs.Intn(3) == 0,
			Right:   inputs.Intn(3) == 0,
			Shoot:   inputs.Intn(2) == 0,
			Laser:   inputs.Intn(10) == 0,
			Restart: inputs.Intn(50) == 0,
		}
		if i%500 == 0 {
			g.World.Player.Mana.Value = g.World.Player.Mana.Max
		}
		require.True(t, g.Tick(in))

		w := g.World
		p := w.Player
		require.GreaterOrEqual(t, p.Health.Value, 0)
		require.GreaterOrEqual(t, p.Mana.Value, 0)
		require.LessOrEqual(t, p.Mana.Value, p.Mana.Max)
		require.GreaterOrEqual(t, p.X, 0)
		require.LessOrEqual(t, p.Right(), w.Arena.Width)
		if w.Boss != nil {
			require.GreaterOrEqual(t, w.Boss.Health.Value, 0)
			require.LessOrEqual(t, w.Boss.Health.Value, w.Boss.Health.Max)
			require.Empty(t, w.Enemies, "grid never shares the arena with a boss")
			require.False(t, w.Boss.Defeated())
		}
		if p.Health.Value == 0 {
			require.Equal(t, component.Lost, w.Phase)
		}
	}
}

func TestSameSeedSameGame(t *testing.T) {
	play := func() entity.Snapshot {
		g := newTestGame(t, defs.Normal, utils.NewPRNGService(7))
		for i := 0; i < 3000; i++ {
			g.Tick(Input{Left: i%90 < 45, Right: i%90 >= 45, Shoot: i%3 == 0})
		}
		return g.Snapshot()
	}
	assert.Equal(t, play(), play())
}

func TestInputIntent(t *testing.T) {
	assert.Equal(t, 0, Input{}.Intent())
	assert.Equal(t, -1, Input{Left: true}.Intent())
	assert.Equal(t, 1, Input{Right: true}.Intent())
	assert.Equal(t, 0, Input{Left: true, Right: true}.Intent())
}

func TestRunnerStep(t *testing.T) {
	g := newTestGame(t, defs.Normal, nil)
	var frames []entity.Snapshot
	r := &Runner{
		Game:   g,
		Input:  InputFunc(func() Input { return Input{Right: true} }),
		Output: SinkFunc(func(s entity.Snapshot) { frames = append(frames, s) }),
	}

	require.True(t, r.Step())
	require.True(t, r.Step())
	require.Len(t, frames, 2)
	assert.Equal(t, 386, frames[0].Player.Rect.X)
	assert.Equal(t, 392, frames[1].Player.Rect.X)
}

func TestRunnerStopsOnQuit(t *testing.T) {
	g := newTestGame(t, defs.Normal, nil)
	n := 0
	r := &Runner{
		Game: g,
		TPS:  1000,
		Input: InputFunc(func() Input {
			n++
			return Input{Quit: n >= 3}
		}),
	}
	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, 3, n)
}

func TestRunnerHonoursContext(t *testing.T) {
	g := newTestGame(t, defs.Normal, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	r := &Runner{Game: g, TPS: 200, Input: InputFunc(func() Input { return Input{} })}
	assert.ErrorIs(t, r.Run(ctx), context.DeadlineExceeded)
}
