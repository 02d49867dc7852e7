package service

import (
	"fmt"

	"github.com/pageza/pantrycoach/internal/models"
	"github.com/pageza/pantrycoach/internal/types"
)

// dailyLimits holds the numeric ceilings and floors configured for one diet
// type. Nil means no limit of that sort.
type dailyLimits struct {
	CarbCeilingG  *float64
	ProteinFloorG *float64
}

func limitOf(v float64) *float64 { return &v }

// limitTable is fixed at startup and never mutated. Only the carb ceilings
// are enforced below; the high-protein floor is declared but not yet checked
// (see the open questions in DESIGN.md).
var limitTable = map[models.DietType]dailyLimits{
	models.DietKeto:        {CarbCeilingG: limitOf(50)},
	models.DietLowGlycemic: {CarbCeilingG: limitOf(130)},
	models.DietHighProtein: {ProteinFloorG: limitOf(100)},
}

// CheckLimits compares today's aggregated macros plus the candidate item
// against the diet's configured daily ceiling. Diets without a configured
// ceiling always fit.
func CheckLimits(item *models.InventoryItem, today []models.DietaryHistoryEntry, diet models.DietType) types.LimitCheck {
	check := types.LimitCheck{Fits: true}

	limits, ok := limitTable[diet]
	if !ok {
		return check
	}

	if limits.CarbCeilingG != nil {
		total := Aggregate(today).CarbsG + item.CarbsG
		if total > *limits.CarbCeilingG {
			check.Fits = false
			check.Warnings = append(check.Warnings, fmt.Sprintf(
				"Would put today's carbs at %.0fg, over the %.0fg daily limit for %s",
				total, *limits.CarbCeilingG, diet))
		}
	}

	return check
}
