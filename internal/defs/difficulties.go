// internal/defs/difficulties.go
package defs

import (
	"errors"
	"fmt"
)

// ErrUnknownDifficulty is returned by Lookup for keys missing from the library.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// DifficultyLibrary holds every difficulty keyed by its ID.
var DifficultyLibrary = map[DifficultyID]Difficulty{
	Easy:   {ID: Easy, StartingHP: 3, EnemySpeed: 1, DropRate: 0.005, BossHP: 500},
	Normal: {ID: Normal, StartingHP: 5, EnemySpeed: 2, DropRate: 0.01, BossHP: 1000},
	Hard:   {ID: Hard, StartingHP: 8, EnemySpeed: 3, DropRate: 0.02, BossHP: 1500},
}

// MenuOrder is the order difficulties are offered in the menu (keys 1, 2, 3).
var MenuOrder = []DifficultyID{Easy, Normal, Hard}

// Lookup returns the difficulty registered under id.
func Lookup(id DifficultyID) (Difficulty, error) {
	d, ok := DifficultyLibrary[id]
	if !ok {
		return Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, id)
	}
	return d, nil
}

// Validate checks the ranges the simulation relies on.
func (d Difficulty) Validate() error {
	switch {
	case d.ID == "":
		return errors.New("difficulty id is empty")
	case d.StartingHP <= 0:
		return fmt.Errorf("difficulty %q: hp must be positive, got %d", d.ID, d.StartingHP)
	case d.EnemySpeed <= 0:
		return fmt.Errorf("difficulty %q: enemy_speed must be positive, got %d", d.ID, d.EnemySpeed)
	case d.DropRate < 0 || d.DropRate > 1:
		return fmt.Errorf("difficulty %q: drop_rate must be in [0,1], got %g", d.ID, d.DropRate)
	case d.BossHP <= 0:
		return fmt.Errorf("difficulty %q: boss_hp must be positive, got %d", d.ID, d.BossHP)
	}
	return nil
}
