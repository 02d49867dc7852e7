package service

import (
	"github.com/pageza/pantrycoach/internal/models"
	"github.com/pageza/pantrycoach/internal/types"
)

// Aggregate sums consumed macros across the supplied history entries.
// Plain summation, so the result is independent of entry order; the limit
// checker and daily progress both read totals through this one function so
// they always agree for the same entry set. Entries with no recorded
// calories contribute zero calories.
func Aggregate(entries []models.DietaryHistoryEntry) types.MacroTotals {
	var totals types.MacroTotals
	for i := range entries {
		e := &entries[i]
		totals.CarbsG += e.CarbsG
		totals.ProteinG += e.ProteinG
		totals.FatG += e.FatG
		totals.FiberG += e.FiberG
		totals.Calories += e.Calories
	}
	return totals
}
