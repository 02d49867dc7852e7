package models

// DietType selects which rule set applies when evaluating an item for a
// profile. Exactly one is active per profile.
type DietType string

const (
	DietBalanced       DietType = "balanced"
	DietKeto           DietType = "keto"
	DietLowCarb        DietType = "low-carb"
	DietLowGlycemic    DietType = "low-glycemic"
	DietHighProtein    DietType = "high-protein"
	DietVegetarian     DietType = "vegetarian"
	DietVegan          DietType = "vegan"
	DietPescatarian    DietType = "pescatarian"
	DietPaleo          DietType = "paleo"
	DietMediterranean  DietType = "mediterranean"
	DietGlutenFree     DietType = "gluten-free"
	DietTimeRestricted DietType = "time-restricted"
)

// AllDietTypes lists every supported diet type, for validation and display.
var AllDietTypes = []DietType{
	DietBalanced,
	DietKeto,
	DietLowCarb,
	DietLowGlycemic,
	DietHighProtein,
	DietVegetarian,
	DietVegan,
	DietPescatarian,
	DietPaleo,
	DietMediterranean,
	DietGlutenFree,
	DietTimeRestricted,
}

// ValidDietType reports whether d is one of the supported diet types.
func ValidDietType(d DietType) bool {
	for _, known := range AllDietTypes {
		if d == known {
			return true
		}
	}
	return false
}

// Goal is a dietary goal attached to a profile. A profile carries one or more.
type Goal string

const (
	GoalGlucoseStability  Goal = "glucose-stability"
	GoalWeightLoss        Goal = "weight-loss"
	GoalWeightMaintenance Goal = "weight-maintenance"
	GoalMuscleGain        Goal = "muscle-gain"
	GoalHeartHealth       Goal = "heart-health"
)
