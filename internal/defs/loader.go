// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadDifficulties reads a difficulty file and replaces DifficultyLibrary with its contents.
func LoadDifficulties(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read difficulty definitions file: %w", err)
	}

	lib, err := ParseDifficulties(file)
	if err != nil {
		return err
	}

	DifficultyLibrary = lib
	log.Printf("Loaded %d difficulty definitions", len(DifficultyLibrary))
	return nil
}

// ParseDifficulties decodes and validates a JSON array of difficulties.
func ParseDifficulties(data []byte) (map[DifficultyID]Difficulty, error) {
	var diffDefs []Difficulty
	if err := json.Unmarshal(data, &diffDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal difficulty definitions: %w", err)
	}
	if len(diffDefs) == 0 {
		return nil, fmt.Errorf("difficulty definitions file is empty")
	}

	lib := make(map[DifficultyID]Difficulty, len(diffDefs))
	for _, def := range diffDefs {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, dup := lib[def.ID]; dup {
			return nil, fmt.Errorf("duplicate difficulty %q", def.ID)
		}
		lib[def.ID] = def
	}
	return lib, nil
}
