package service

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/pantrycoach/internal/models"
	"github.com/pageza/pantrycoach/internal/types"
)

// UnknownQuantityToken is the literal a row may carry when the amount on
// hand was not readable.
const UnknownQuantityToken = "unknown"

// ImportInstructions is the fixed prompt handed to an external
// image-understanding tool. It is data, not logic: keep the column schema
// here in lockstep with ParseItems.
const ImportInstructions = `Read the food items visible in this image and output one line per item
as comma-separated values with exactly these columns:

name,quantity,unit,fiber_g,fat_g,carbs_g,protein_g,category

- name: the item's name as printed
- quantity: a non-negative number, or the word "unknown" if unreadable
- unit: a short unit such as g, ml, pcs; leave empty if none applies
- fiber_g, fat_g, carbs_g, protein_g: grams per unit as non-negative numbers
- category: one of produce, dairy, meat, pantry, frozen, beverages,
  condiments, grains, snacks

Output the header line first, then the item lines, and nothing else.`

var requiredColumns = []string{
	"name", "quantity", "unit", "fiber_g", "fat_g", "carbs_g", "protein_g", "category",
}

// ImportService turns a delimited-text block into validated inventory items.
// Tab- and comma-separated input are both accepted; malformed rows are
// skipped and counted, never fatal.
type ImportService struct{}

// NewImportService creates a new ImportService instance.
func NewImportService() *ImportService {
	return &ImportService{}
}

// ParseItems parses the text block and returns the valid items plus a
// result summary. A missing or incomplete header fails the whole import;
// everything after that degrades row by row.
func (s *ImportService) ParseItems(text string) ([]models.InventoryItem, types.ImportResult) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, types.ImportResult{Message: "no input to import"}
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	if strings.Contains(strings.SplitN(text, "\n", 2)[0], "\t") {
		reader.Comma = '\t'
	}

	records, err := reader.ReadAll()
	if err != nil || len(records) == 0 {
		return nil, types.ImportResult{Message: "input is not valid delimited text"}
	}

	cols, err := headerIndex(records[0])
	if err != nil {
		return nil, types.ImportResult{Message: err.Error()}
	}

	var items []models.InventoryItem
	skipped := 0
	for _, row := range records[1:] {
		item, ok := parseRow(row, cols)
		if !ok {
			skipped++
			continue
		}
		items = append(items, item)
	}

	result := types.ImportResult{
		Success:  len(items) > 0,
		Imported: len(items),
		Skipped:  skipped,
		Message:  fmt.Sprintf("parsed %d item(s), skipped %d row(s)", len(items), skipped),
	}
	return items, result
}

// headerIndex maps each required column name to its position, matching
// case-insensitively.
func headerIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range requiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}
	return cols, nil
}

func parseRow(row []string, cols map[string]int) (models.InventoryItem, bool) {
	field := func(name string) (string, bool) {
		idx := cols[name]
		if idx >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[idx]), true
	}

	name, ok := field("name")
	if !ok || name == "" {
		return models.InventoryItem{}, false
	}
	category, ok := field("category")
	if !ok || !models.ValidCategory(models.Category(strings.ToLower(category))) {
		return models.InventoryItem{}, false
	}

	item := models.InventoryItem{
		ID:        uuid.New(),
		Name:      name,
		Category:  models.Category(strings.ToLower(category)),
		UpdatedAt: time.Now(),
	}
	if unit, ok := field("unit"); ok {
		item.Unit = unit
	}

	if raw, ok := field("quantity"); !ok {
		return models.InventoryItem{}, false
	} else if !strings.EqualFold(raw, UnknownQuantityToken) {
		qty, err := strconv.ParseFloat(raw, 64)
		if err != nil || qty < 0 {
			return models.InventoryItem{}, false
		}
		item.Quantity = &qty
	}

	macros := []struct {
		col string
		dst *float64
	}{
		{"fiber_g", &item.FiberG},
		{"fat_g", &item.FatG},
		{"carbs_g", &item.CarbsG},
		{"protein_g", &item.ProteinG},
	}
	for _, m := range macros {
		raw, ok := field(m.col)
		if !ok {
			return models.InventoryItem{}, false
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return models.InventoryItem{}, false
		}
		*m.dst = v
	}

	return item, true
}
