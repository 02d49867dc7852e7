package rules

import (
	"time"

	"github.com/pageza/pantrycoach/internal/models"
	"github.com/pageza/pantrycoach/internal/types"
)

// Evaluate runs every rule bound to the profile's diet type against one item.
//
// Allowed rules that hold append an informational message and never affect
// the outcome. Restricted and time-based rules that fail flip Passed to
// false, irreversibly for this call, and append a warning. Sequencing rules
// that fail append a warning only. Diet types with no rules, including
// unknown ones, evaluate to a trivial pass.
func Evaluate(item *models.InventoryItem, now time.Time, profile *models.UserProfile, today []models.DietaryHistoryEntry) types.Evaluation {
	eval := types.Evaluation{Passed: true}

	for _, r := range ForDiet(profile.DietType) {
		holds := r.Cond(item, now, profile, today)

		switch r.Kind {
		case KindAllowed:
			if holds {
				eval.Messages = append(eval.Messages, r.Message)
			}
		case KindRestricted, KindTimeBased:
			if !holds {
				eval.Passed = false
				eval.Warnings = append(eval.Warnings, r.Message)
			}
		case KindSequencing:
			if !holds {
				eval.Warnings = append(eval.Warnings, r.Message)
			}
		}
	}

	return eval
}
