package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pageza/pantrycoach/config"
	"github.com/pageza/pantrycoach/internal/database"
	"github.com/pageza/pantrycoach/internal/logger"
	"github.com/pageza/pantrycoach/internal/models"
	"github.com/pageza/pantrycoach/internal/rules"
	"github.com/pageza/pantrycoach/internal/service"
)

const usage = `pantrycoach <command>

Commands:
  suggest             rank what to eat next
  quick               print the single best suggestion
  log <name> <qty>    record eating <qty> of the named item
  import <file>       import items from a delimited text file
  instructions        print the import column-schema prompt
  progress            show today's macro totals
  profile [diet]      show the profile, or switch its diet type
`

// app wires configuration, storage and services together. It is the
// orchestration layer: the engine only sees the snapshots app hands it, and
// every engine output is applied back through the storage services.
type app struct {
	profiles    *service.ProfileService
	inventory   *service.InventoryService
	history     *service.HistoryService
	suggestions *service.SuggestionService
}

func main() {
	logger.Init()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("configuration error", "err", err)
		os.Exit(1)
	}

	db, err := database.Open(cfg)
	if err != nil {
		// A damaged local store should not brick the tool: move it aside
		// and start fresh.
		logger.Warn("store unusable, starting fresh", "err", err)
		if resetErr := database.Reset(cfg); resetErr != nil {
			logger.Error("could not reset store", "err", resetErr)
			os.Exit(1)
		}
		if db, err = database.Open(cfg); err != nil {
			logger.Error("could not reopen store", "err", err)
			os.Exit(1)
		}
	}

	a := &app{
		profiles:    service.NewProfileService(db),
		inventory:   service.NewInventoryService(db),
		history:     service.NewHistoryService(db, cfg.HistoryLimit),
		suggestions: service.NewSuggestionService(),
	}

	ctx := context.Background()
	switch os.Args[1] {
	case "suggest":
		err = a.suggest(ctx, 5)
	case "quick":
		err = a.suggest(ctx, 1)
	case "log":
		if len(os.Args) < 4 {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		err = a.logConsumption(ctx, os.Args[2], os.Args[3])
	case "import":
		if len(os.Args) < 3 {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		err = a.importFile(ctx, os.Args[2])
	case "instructions":
		fmt.Println(service.ImportInstructions)
	case "progress":
		err = a.progress(ctx)
	case "profile":
		err = a.profile(ctx, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		logger.Error("command failed", "command", os.Args[1], "err", err)
		os.Exit(1)
	}
}

// snapshot loads the profile, inventory and today's history the engine
// evaluates against. A missing profile falls back to a balanced default.
func (a *app) snapshot(ctx context.Context, now time.Time) (*models.UserProfile, []models.InventoryItem, []models.DietaryHistoryEntry, error) {
	profile, err := a.profiles.Get(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	if profile == nil {
		profile = &models.UserProfile{DietType: models.DietBalanced}
	}
	items, err := a.inventory.List(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	today, err := a.history.EntriesForDay(ctx, now)
	if err != nil {
		return nil, nil, nil, err
	}
	return profile, items, today, nil
}

func (a *app) suggest(ctx context.Context, n int) error {
	now := time.Now()
	profile, items, today, err := a.snapshot(ctx, now)
	if err != nil {
		return err
	}

	ranked := a.suggestions.TopSuggestions(items, profile, today, now, n)
	if len(ranked) == 0 {
		fmt.Println("Nothing to suggest right now. Try importing some items.")
		return nil
	}
	for _, sug := range ranked {
		fmt.Printf("%3d  %s\n", sug.Score, sug.Item.Name)
		for _, r := range sug.Reasons {
			fmt.Printf("      + %s\n", r)
		}
		for _, w := range sug.Warnings {
			fmt.Printf("      ! %s\n", w)
		}
	}
	return nil
}

func (a *app) logConsumption(ctx context.Context, name, qtyArg string) error {
	qty, err := strconv.ParseFloat(qtyArg, 64)
	if err != nil {
		return fmt.Errorf("quantity must be a number: %w", err)
	}

	now := time.Now()
	profile, _, today, err := a.snapshot(ctx, now)
	if err != nil {
		return err
	}
	item, err := a.inventory.FindByName(ctx, name)
	if err != nil {
		return err
	}

	// Capture the rule warnings active right now so the history entry keeps
	// what the user was told at logging time.
	eval := rules.Evaluate(item, now, profile, today)
	glucoseRelevant := item.CarbsG >= 15 || (item.GlycemicIndex != nil && *item.GlycemicIndex > 55)

	entry, err := a.inventory.Consume(ctx, item.ID, qty, eval.Warnings, glucoseRelevant, now)
	if err != nil {
		return err
	}
	if err := a.history.Trim(ctx); err != nil {
		return err
	}

	logger.Info("logged consumption", "item", entry.ItemName, "quantity", entry.Quantity)
	fmt.Printf("Logged %.1f x %s\n", entry.Quantity, entry.ItemName)
	for _, w := range entry.Violations {
		fmt.Printf("  ! %s\n", w)
	}
	return nil
}

func (a *app) importFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	importer := service.NewImportService()
	items, result := importer.ParseItems(string(data))
	if !result.Success {
		fmt.Printf("Import failed: %s\n", result.Message)
		return nil
	}

	added, err := a.inventory.AddBatch(ctx, items)
	if err != nil {
		return err
	}
	logger.Info("import finished", "added", added, "skipped", result.Skipped)
	fmt.Printf("Imported %d item(s), skipped %d row(s)\n", added, result.Skipped)
	return nil
}

func (a *app) progress(ctx context.Context) error {
	prog, err := a.history.DailyProgress(ctx, time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("Today: %d entr%s\n", prog.Entries, pluralY(prog.Entries))
	fmt.Printf("  carbs   %6.1f g\n", prog.Totals.CarbsG)
	fmt.Printf("  protein %6.1f g\n", prog.Totals.ProteinG)
	fmt.Printf("  fat     %6.1f g\n", prog.Totals.FatG)
	fmt.Printf("  fiber   %6.1f g\n", prog.Totals.FiberG)
	fmt.Printf("  kcal    %6.0f\n", prog.Totals.Calories)
	return nil
}

func (a *app) profile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		profile, err := a.profiles.Get(ctx)
		if err != nil {
			return err
		}
		if profile == nil {
			fmt.Println("No profile yet. Set one with: pantrycoach profile <diet>")
			return nil
		}
		fmt.Printf("Diet: %s\n", profile.DietType)
		if len(profile.Goals) > 0 {
			fmt.Printf("Goals: %v\n", profile.Goals)
		}
		if profile.FastingStart != "" && profile.FastingEnd != "" {
			fmt.Printf("Fasting window: %s-%s\n", profile.FastingStart, profile.FastingEnd)
		}
		return nil
	}

	profile, err := a.profiles.SetDietType(ctx, models.DietType(args[0]))
	if err != nil {
		return err
	}
	fmt.Printf("Diet set to %s\n", profile.DietType)
	return nil
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
