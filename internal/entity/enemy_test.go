package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-chicken-invaders/internal/utils"
)

var testArena = Arena{Width: 800, Height: 600}

func TestSpawnGridCoordinates(t *testing.T) {
	enemies := SpawnGrid(2, 0.01)
	require.Len(t, enemies, 18)

	want := map[[2]int]bool{}
	for col := 0; col < 6; col++ {
		for row := 0; row < 3; row++ {
			want[[2]int{col*60 + 100, row*50 + 50}] = true
		}
	}
	for _, e := range enemies {
		assert.True(t, want[[2]int{e.X, e.Y}], "unexpected enemy at %d,%d", e.X, e.Y)
		delete(want, [2]int{e.X, e.Y})
		assert.Equal(t, 2, e.Speed)
		assert.Equal(t, 0.01, e.DropRate)
		assert.Equal(t, 40, e.W)
	}
	assert.Empty(t, want)
}

func TestEnemyZigZag(t *testing.T) {
	e := NewEnemy(756, 50, 2, 0)
	rng := &utils.ScriptedRand{}

	e.Update(rng, testArena)
	assert.Equal(t, 758, e.X)
	assert.Equal(t, 50, e.Y)

	e.Update(rng, testArena)
	assert.Equal(t, 760, e.X) // right edge reached
	assert.Equal(t, 70, e.Y)
	assert.EqualValues(t, -1, e.Dir)

	e.Update(rng, testArena)
	assert.Equal(t, 758, e.X)
	assert.Equal(t, 70, e.Y)

	e.X = 2
	e.Update(rng, testArena)
	assert.Equal(t, 0, e.X)
	assert.Equal(t, 90, e.Y)
	assert.EqualValues(t, 1, e.Dir)
}

func TestEnemyDropsAndAdvancesEggs(t *testing.T) {
	e := NewEnemy(100, 50, 2, 0.5)
	rng := &utils.ScriptedRand{Floats: []float64{0.4, 0.9}}

	e.Update(rng, testArena)
	require.Len(t, e.Eggs, 1)
	egg := e.Eggs[0]
	assert.Equal(t, 102+20-5, egg.X)
	assert.Equal(t, 50+40+5, egg.Y)
	assert.Equal(t, 10, egg.W)
	assert.Equal(t, 15, egg.H)

	e.Update(rng, testArena)
	require.Len(t, e.Eggs, 1)
	assert.Equal(t, 100, e.Eggs[0].Y)

	e.Eggs[0].Y = 598
	e.Update(rng, testArena)
	assert.Empty(t, e.Eggs)
}

func TestRemoveEnemies(t *testing.T) {
	enemies := SpawnGrid(1, 0)
	first, last := enemies[0], enemies[17]
	dead := make([]bool, len(enemies))
	for i := 1; i < 17; i++ {
		dead[i] = true
	}
	kept := RemoveEnemies(enemies, dead)
	require.Len(t, kept, 2)
	assert.Same(t, first, kept[0])
	assert.Same(t, last, kept[1])
}
