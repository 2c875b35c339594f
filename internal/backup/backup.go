// Package backup serializes the habit collection to the versioned export
// document and reads it back on import.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/brk3/streaks/pkg/habit"
)

// FormatVersion tags exported documents. There is no migration logic; the
// tag exists so a future reader can tell old backups apart.
const FormatVersion = "1.0"

type Document struct {
	Habits     []habit.Habit `json:"habits"`
	ExportDate string        `json:"exportDate"`
	Version    string        `json:"version"`
}

var ErrMissingHabits = errors.New("backup: document has no habits list")

// Export renders the current collection as an indented document.
func Export(habits []habit.Habit, now time.Time) ([]byte, error) {
	doc := Document{
		Habits:     habits,
		ExportDate: now.Format(time.RFC3339),
		Version:    FormatVersion,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Import parses an export document. The only structural requirement is that
// a habits array is present; per-field validation is left to the store's
// recompute-on-import pass. Nothing is mutated on failure.
func Import(data []byte) ([]habit.Habit, error) {
	var doc struct {
		Habits *[]habit.Habit `json:"habits"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("backup: parsing document: %w", err)
	}
	if doc.Habits == nil {
		return nil, ErrMissingHabits
	}
	return *doc.Habits, nil
}
