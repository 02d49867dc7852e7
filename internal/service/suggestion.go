package service

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/pageza/pantrycoach/internal/models"
	"github.com/pageza/pantrycoach/internal/rules"
	"github.com/pageza/pantrycoach/internal/types"
)

const (
	baseScore     = 50
	minScore      = 20
	varietyWindow = 3
)

// SuggestionService scores and ranks pantry items for a profile. It is a
// pure computation over the snapshots passed in: it holds no state, touches
// no storage, and is safe for concurrent use.
type SuggestionService struct{}

// NewSuggestionService creates a new SuggestionService instance.
func NewSuggestionService() *SuggestionService {
	return &SuggestionService{}
}

// ScoreItem scores a single item for the profile at the given time. The
// score starts at 50, each factor adds or subtracts its fixed amount, and
// the result is clamped into [0,100] at the end. Factors are linear, so
// application order only affects how messages accumulate, not the number.
func (s *SuggestionService) ScoreItem(item *models.InventoryItem, profile *models.UserProfile, today []models.DietaryHistoryEntry, now time.Time) types.ScoredSuggestion {
	sug := types.ScoredSuggestion{Item: *item, Score: baseScore}

	// 1. diet rules
	eval := rules.Evaluate(item, now, profile, today)
	if eval.Passed {
		sug.Score += 20
		sug.Reasons = append(sug.Reasons, eval.Messages...)
	} else {
		sug.Score -= 40
		sug.Warnings = append(sug.Warnings, eval.Warnings...)
	}

	// 2. daily limits, independent of the rule outcome
	limit := CheckLimits(item, today, profile.DietType)
	if !limit.Fits {
		sug.Score -= 30
		sug.Warnings = append(sug.Warnings, limit.Warnings...)
	}

	// 3. expiration urgency, fractional days from now
	if item.ExpiresAt != nil {
		days := item.ExpiresAt.Sub(now).Hours() / 24
		switch {
		case days <= 0:
			sug.Score -= 100
			sug.Warnings = append(sug.Warnings, fmt.Sprintf("%s has expired", item.Name))
		case days <= 2:
			sug.Score += 25
			sug.Reasons = append(sug.Reasons, fmt.Sprintf("Use soon: expires in %d day(s)", int(math.Ceil(days))))
		case days <= 5:
			sug.Score += 10
			sug.Reasons = append(sug.Reasons, "Expires within the week")
		}
	}

	// 4. glucose-stability goal bonuses, independently stackable
	if profile.HasGoal(models.GoalGlucoseStability) {
		if item.GlycemicIndex != nil && *item.GlycemicIndex <= 55 {
			sug.Score += 15
			sug.Reasons = append(sug.Reasons, "Low glycemic index supports stable glucose")
		}
		if item.FiberG >= 3 {
			sug.Score += 10
			sug.Reasons = append(sug.Reasons, "Good fiber content")
		}
		if item.ProteinG >= 10 && item.CarbsG <= 10 {
			sug.Score += 10
			sug.Reasons = append(sug.Reasons, "Protein-forward with few carbs")
		}
	}

	// 5. meal timing
	if mealBand(now) == bandSnack && item.Category == models.CategorySnacks {
		sug.Score += 10
		sug.Reasons = append(sug.Reasons, "Good snack for this time of day")
	}

	// 6. variety against the last few entries
	if addsVariety(item.Name, today) {
		sug.Score += 5
		sug.Reasons = append(sug.Reasons, "Adds variety to today's meals")
	}

	// 7. availability
	if item.Quantity != nil && *item.Quantity > 0 {
		sug.Score += 5
		sug.Reasons = append(sug.Reasons, "In stock")
	}

	if sug.Score < 0 {
		sug.Score = 0
	}
	if sug.Score > 100 {
		sug.Score = 100
	}
	return sug
}

// GenerateSuggestions scores every suggestible inventory item and returns
// them ranked by descending score. Items with a known quantity of zero or
// less are absent by definition; condiments are never suggested on their
// own. Items scoring under 20 are dropped after scoring. The sort is stable,
// so ties keep inventory order.
func (s *SuggestionService) GenerateSuggestions(inventory []models.InventoryItem, profile *models.UserProfile, today []models.DietaryHistoryEntry, now time.Time) []types.ScoredSuggestion {
	var ranked []types.ScoredSuggestion

	for i := range inventory {
		item := &inventory[i]
		if item.Category == models.CategoryCondiments {
			continue
		}
		if item.Quantity != nil && *item.Quantity <= 0 {
			continue
		}
		sug := s.ScoreItem(item, profile, today, now)
		if sug.Score >= minScore {
			ranked = append(ranked, sug)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// TopSuggestions returns at most n ranked suggestions.
func (s *SuggestionService) TopSuggestions(inventory []models.InventoryItem, profile *models.UserProfile, today []models.DietaryHistoryEntry, now time.Time, n int) []types.ScoredSuggestion {
	ranked := s.GenerateSuggestions(inventory, profile, today, now)
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// QuickSuggestion returns the single best suggestion. The second return is
// false when nothing suggestible scored high enough; that is the normal
// empty-pantry outcome, not an error.
func (s *SuggestionService) QuickSuggestion(inventory []models.InventoryItem, profile *models.UserProfile, today []models.DietaryHistoryEntry, now time.Time) (*types.ScoredSuggestion, bool) {
	ranked := s.GenerateSuggestions(inventory, profile, today, now)
	if len(ranked) == 0 {
		return nil, false
	}
	return &ranked[0], true
}

type band int

const (
	bandBreakfast band = iota
	bandLunch
	bandDinner
	bandSnack
)

// mealBand maps the hour of day onto breakfast [6,10), lunch [11,14),
// dinner [17,21), and snack time everywhere else.
func mealBand(now time.Time) band {
	switch h := now.Hour(); {
	case h >= 6 && h < 10:
		return bandBreakfast
	case h >= 11 && h < 14:
		return bandLunch
	case h >= 17 && h < 21:
		return bandDinner
	default:
		return bandSnack
	}
}

// addsVariety reports whether none of the last few history entries mention
// the candidate by name, matched case-insensitively as a substring.
func addsVariety(name string, today []models.DietaryHistoryEntry) bool {
	recent := today
	if len(recent) > varietyWindow {
		recent = recent[len(recent)-varietyWindow:]
	}
	needle := strings.ToLower(name)
	for i := range recent {
		if strings.Contains(strings.ToLower(recent[i].ItemName), needle) {
			return false
		}
	}
	return true
}
