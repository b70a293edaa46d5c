package question

import (
	"fmt"
	"strings"
)

// Difficulty grades a practice task.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty converts a source-file value to a Difficulty.
// Matching is case-insensitive; anything outside the enum is an error.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// Record is one practice task with metadata and step-by-step instructions.
// Records are immutable once loaded for the duration of a session.
type Record struct {
	ID            int        `json:"id" yaml:"id"`
	Title         string     `json:"title" yaml:"title"`
	Description   string     `json:"description" yaml:"description"`
	Difficulty    Difficulty `json:"difficulty" yaml:"difficulty"`
	EstimatedTime string     `json:"estimated_time" yaml:"estimated_time"`
	Category      string     `json:"category" yaml:"category"`
	Steps         []string   `json:"steps" yaml:"steps"`
}

// ValidateSet checks the invariants every loaded set must satisfy:
// at least one record, unique IDs, non-empty titles, and a known
// difficulty on every record.
func ValidateSet(records []Record) error {
	if len(records) == 0 {
		return fmt.Errorf("question set is empty")
	}
	seen := make(map[int]int, len(records))
	for i, r := range records {
		if prev, ok := seen[r.ID]; ok {
			return fmt.Errorf("duplicate question id %d (rows %d and %d)", r.ID, prev+1, i+1)
		}
		seen[r.ID] = i
		if strings.TrimSpace(r.Title) == "" {
			return fmt.Errorf("question id %d has an empty title", r.ID)
		}
		if _, err := ParseDifficulty(string(r.Difficulty)); err != nil {
			return fmt.Errorf("question id %d: %w", r.ID, err)
		}
	}
	return nil
}
