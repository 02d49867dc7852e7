package types

// Evaluation is the outcome of running every rule for a profile's diet type
// against one item. Passed starts true and is flipped only by a failing
// restricted or time-based rule; sequencing failures add warnings without
// affecting it.
type Evaluation struct {
	Passed   bool     `json:"passed"`
	Messages []string `json:"messages,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// LimitCheck is the outcome of comparing today's aggregated macros plus a
// candidate item against the diet's configured daily ceilings.
type LimitCheck struct {
	Fits     bool     `json:"fits"`
	Warnings []string `json:"warnings,omitempty"`
}

// MacroTotals is the element-wise sum of consumed macros over a set of
// history entries.
type MacroTotals struct {
	CarbsG   float64 `json:"carbs_g"`
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
	Calories float64 `json:"calories"`
}

// Add returns the element-wise sum of two totals.
func (m MacroTotals) Add(o MacroTotals) MacroTotals {
	return MacroTotals{
		CarbsG:   m.CarbsG + o.CarbsG,
		ProteinG: m.ProteinG + o.ProteinG,
		FatG:     m.FatG + o.FatG,
		FiberG:   m.FiberG + o.FiberG,
		Calories: m.Calories + o.Calories,
	}
}
