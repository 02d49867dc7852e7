package types

import "github.com/pageza/pantrycoach/internal/models"

// ScoredSuggestion is one inventory item with its final score and the
// accumulated reasons and warnings from every scoring factor.
type ScoredSuggestion struct {
	Item     models.InventoryItem `json:"item"`
	Score    int                  `json:"score"`
	Reasons  []string             `json:"reasons,omitempty"`
	Warnings []string             `json:"warnings,omitempty"`
}

// DailyProgress reports the day's consumption so far.
type DailyProgress struct {
	Totals  MacroTotals `json:"totals"`
	Entries int         `json:"entries"`
}

// ImportResult summarizes one run of the text import pipeline. A failed parse
// is reported here, never as a panic or an error crossing the engine boundary.
type ImportResult struct {
	Success  bool   `json:"success"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	Message  string `json:"message"`
}
