package rules

import (
	"time"

	"github.com/pageza/pantrycoach/internal/models"
)

// Kind classifies a diet rule and governs how its truth value affects an
// evaluation: allowed rules are informational, restricted and time-based
// rules gate pass/fail, sequencing rules warn without gating. The
// macro-threshold and daily-limit kinds are reserved for the daily limit
// table; no rule in the static table below carries them.
type Kind string

const (
	KindAllowed        Kind = "allowed"
	KindRestricted     Kind = "restricted"
	KindTimeBased      Kind = "time-based"
	KindSequencing     Kind = "sequencing"
	KindMacroThreshold Kind = "macro-threshold"
	KindDailyLimit     Kind = "daily-limit"
)

// Condition is a pure predicate over one item and its evaluation context.
// Conditions must be side-effect-free and deterministic.
type Condition func(item *models.InventoryItem, now time.Time, profile *models.UserProfile, today []models.DietaryHistoryEntry) bool

// Rule binds one predicate to one diet type. The Message is shown as an
// informational reason for allowed rules and as a warning for the rest.
type Rule struct {
	ID       string
	DietType models.DietType
	Kind     Kind
	Cond     Condition
	Message  string
}

// The rule table is built once and never mutated afterwards, so concurrent
// reads are safe.
//
// Category and keyword checks below are curated heuristics, not nutritional
// truth: "contains chicken in the name" stands in for a real ingredient
// model. That is a deliberate modeling choice for a pantry-level tool.
var table = []Rule{
	// balanced
	{
		ID:       "balanced-produce",
		DietType: models.DietBalanced,
		Kind:     KindAllowed,
		Cond: func(item *models.InventoryItem, _ time.Time, _ *models.UserProfile, _ []models.DietaryHistoryEntry) bool {
			return item.Category == models.CategoryProduce
		},
		Message: "Fresh produce fits any balanced plate",
	},

	// keto
	{
		ID:       "keto-carb-cap",
		DietType: models.DietKeto,
		Kind:     KindRestricted,
		Cond: func(item *models.InventoryItem, _ time.Time, _ *models.UserProfile, _ []models.DietaryHistoryEntry) bool {
			return item.CarbsG <= 5
		},
		Message: "Too many carbs per serving for keto (over 5g)",
	},
	{
		ID:       "keto-fat-friendly",
		DietType: models.DietKeto,
		Kind:     KindAllowed,
		Cond: func(item *models.InventoryItem, _ time.Time, _ *models.UserProfile, _ []models.DietaryHistoryEntry) bool {
			return item.FatG >= 10
		},
		Message: "Good fat content for keto",
	},

	// low-carb
	{
		ID:       "low-carb-cap",
		DietType: models.DietLowCarb,
		Kind:     KindRestricted,
		Cond: func(item *models.InventoryItem, _ time.Time, _ *models.UserProfile, _ []models.DietaryHistoryEntry) bool {
			return item.CarbsG <= 20
		},
		Message: "Too many carbs per serving for a low-carb plan (over 20g)",
	},

	// low-glycemic
	{
		ID:       "low-glycemic-high-gi",
		DietType: models.DietLowGlycemic,
		Kind:     KindRestricted,
		Cond: func(item *models.InventoryItem, _ time.Time, _ *models.UserProfile, _ []models.DietaryHistoryEntry) bool {
			return item.GlycemicIndex == nil || *item.GlycemicIndex <= 69
		},
		Message: "High glycemic index food",
	},
	{
		ID:       "low-glycemic-low-gi",
		DietType: models.DietLowGlycemic,
		Kind:     KindAllowed,
		Cond: func(item *models.InventoryItem, _ time.Time, _ *models.UserProfile, _ []models.DietaryHistoryEntry) bool {
			return item.GlycemicIndex != nil && *item.GlycemicIndex <= 55
		},
		Message: "Low glycemic index (55 or under)",
	},
	{
		ID:       "low-glycemic-protein-first",
		DietType: models.DietLowGlycemic,
		Kind:     KindSequencing,
		Cond: func(_ *models.InventoryItem, _ time.Time, _ *models.UserProfile, today []models.DietaryHistoryEntry) bool {
			return proteinBeforeCarbs(today)
		},
		Message: "Consider eating protein before carbs to blunt the glucose spike",
	},

	// high-protein
	{
		ID:       "high-protein-source",
		DietType: models.DietHighProtein,
		Kind:     KindAllowed,
		Cond: func(item *models.InventoryItem, _ time.Time, _ *models.UserProfile, _ []models.DietaryHistoryEntry) bool {
			return item.ProteinG >= 10
		},
		Message: "Good protein source",
	},

	// vegetarian
	{
		ID:       "vegetarian-no-meat",
		DietType: models.DietVegetarian,
		Kind:     KindRestricted,
		Cond: func(item *models.InventoryItem, _ time.Time, _ *models.UserProfile, _ []models.DietaryHistoryEntry) bool {
			return !looksLikeMeat(item) && !matchesAny(item.Name, fishKeywords)
		},
		Message: "Contains meat or fish, which is not vegetarian",
	},

	// vegan
	{
		ID:       "vegan-no-animal-products",
		DietType: models.DietVegan,
		Kind:     KindRestricted,
		Cond: func(item *models.InventoryItem, _ time.Time, _ *models.UserProfile, _ []models.DietaryHistoryEntry) bool {
			if looksLikeMeat(item) || matchesAny(item.Name, fishKeywords) {
				return false
			}
			return item.Category != models.CategoryDairy && !matchesAny(item.Name, animalProductKeywords)
		},
		Message: "Contains animal products, which are not vegan",
	},

	// pescatarian
	{
		ID:       "pescatarian-no-land-meat",
		DietType: models.DietPescatarian,
		Kind:     KindRestricted,
		Cond: func(item *models.InventoryItem, _ time.Time, _ *models.UserProfile, _ []models.DietaryHistoryEntry) bool {
			if matchesAny(item.Name, fishKeywords) {
				return true
			}
			return !looksLikeMeat(item)
		},
		Message: "Contains meat other than fish, which is not pescatarian",
	},

	// paleo
	{
		ID:       "paleo-no-grains-dairy",
		DietType: models.DietPaleo,
		Kind:     KindRestricted,
		Cond: func(item *models.InventoryItem, _ time.Time, _ *models.UserProfile, _ []models.DietaryHistoryEntry) bool {
			if item.Category == models.CategoryGrains || item.Category == models.CategoryDairy {
				return false
			}
			return !matchesAny(item.Name, paleoRestrictedKeywords)
		},
		Message: "Grains, dairy and legumes are off the paleo plan",
	},

	// mediterranean
	{
		ID:       "mediterranean-staple",
		DietType: models.DietMediterranean,
		Kind:     KindAllowed,
		Cond: func(item *models.InventoryItem, _ time.Time, _ *models.UserProfile, _ []models.DietaryHistoryEntry) bool {
			return item.Category == models.CategoryProduce || matchesAny(item.Name, fishKeywords)
		},
		Message: "Staple of the mediterranean pattern",
	},
	{
		ID:       "mediterranean-no-sweets",
		DietType: models.DietMediterranean,
		Kind:     KindRestricted,
		Cond: func(item *models.InventoryItem, _ time.Time, _ *models.UserProfile, _ []models.DietaryHistoryEntry) bool {
			return !matchesAny(item.Name, sweetsKeywords)
		},
		Message: "Sugary processed foods do not fit the mediterranean pattern",
	},

	// gluten-free
	{
		ID:       "gluten-free-no-gluten",
		DietType: models.DietGlutenFree,
		Kind:     KindRestricted,
		Cond: func(item *models.InventoryItem, _ time.Time, _ *models.UserProfile, _ []models.DietaryHistoryEntry) bool {
			return !matchesAny(item.Name, glutenKeywords)
		},
		Message: "Likely contains gluten",
	},

	// time-restricted
	{
		ID:       "time-restricted-window",
		DietType: models.DietTimeRestricted,
		Kind:     KindTimeBased,
		Cond: func(_ *models.InventoryItem, now time.Time, profile *models.UserProfile, _ []models.DietaryHistoryEntry) bool {
			return !inFastingWindow(profile, now)
		},
		Message: "Currently inside the fasting window",
	},
}

// ForDiet returns the rules bound to one diet type, in table order. An
// unknown diet type yields no rules, which evaluates as a trivial pass.
func ForDiet(diet models.DietType) []Rule {
	var out []Rule
	for _, r := range table {
		if r.DietType == diet {
			out = append(out, r)
		}
	}
	return out
}
