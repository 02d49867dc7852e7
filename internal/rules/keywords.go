package rules

import (
	"strings"

	"github.com/pageza/pantrycoach/internal/models"
)

// Curated keyword lists matched case-insensitively against item names.
// Substring matching is an approximation: it will call a "chicken-fried
// cauliflower" meat, and pantry users can rename items to dodge it. Good
// enough for a suggestion nudge, and kept small on purpose.
var (
	meatKeywords = []string{
		"chicken", "beef", "pork", "bacon", "turkey", "lamb",
		"ham", "sausage", "steak", "veal", "duck", "meatball",
	}

	fishKeywords = []string{
		"fish", "salmon", "tuna", "shrimp", "prawn", "cod",
		"sardine", "anchovy", "trout", "crab", "lobster",
	}

	animalProductKeywords = []string{
		"milk", "cheese", "butter", "yogurt", "cream", "egg",
		"honey", "whey", "gelatin",
	}

	glutenKeywords = []string{
		"wheat", "bread", "pasta", "barley", "rye", "flour",
		"cracker", "couscous", "noodle",
	}

	paleoRestrictedKeywords = []string{
		"bread", "pasta", "rice", "oat", "bean", "lentil",
		"peanut", "sugar", "corn",
	}

	sweetsKeywords = []string{
		"soda", "candy", "cookie", "pastry", "syrup",
	}
)

func matchesAny(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func looksLikeMeat(item *models.InventoryItem) bool {
	return item.Category == models.CategoryMeat || matchesAny(item.Name, meatKeywords)
}
