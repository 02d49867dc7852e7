package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/pantrycoach/internal/models"
	"github.com/pageza/pantrycoach/internal/testhelpers"
)

func TestHistoryAppendAndEntriesForDay(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewHistoryService(db, 0)
	ctx := context.Background()

	today := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	yesterday := today.AddDate(0, 0, -1)

	require.NoError(t, svc.Append(ctx, &models.DietaryHistoryEntry{ItemName: "Toast", ConsumedAt: today, CarbsG: 20}))
	require.NoError(t, svc.Append(ctx, &models.DietaryHistoryEntry{ItemName: "Old Soup", ConsumedAt: yesterday, CarbsG: 12}))

	entries, err := svc.EntriesForDay(ctx, today)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Toast", entries[0].ItemName)
}

func TestHistoryEntriesForDayChronological(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewHistoryService(db, 0)
	ctx := context.Background()

	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
	require.NoError(t, svc.Append(ctx, &models.DietaryHistoryEntry{ItemName: "Lunch", ConsumedAt: base.Add(4 * time.Hour)}))
	require.NoError(t, svc.Append(ctx, &models.DietaryHistoryEntry{ItemName: "Breakfast", ConsumedAt: base}))

	entries, err := svc.EntriesForDay(ctx, base)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Breakfast", entries[0].ItemName)
	assert.Equal(t, "Lunch", entries[1].ItemName)
}

func TestHistoryTrimDropsOldestFirst(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewHistoryService(db, 3)
	ctx := context.Background()

	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
	for i := 0; i < 5; i++ {
		entry := &models.DietaryHistoryEntry{
			ItemName:   fmt.Sprintf("meal-%d", i),
			ConsumedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, svc.Append(ctx, entry))
	}

	entries, err := svc.EntriesForDay(ctx, base)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "meal-2", entries[0].ItemName)
	assert.Equal(t, "meal-4", entries[2].ItemName)
}

func TestHistoryDelete(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewHistoryService(db, 0)
	ctx := context.Background()

	entry := &models.DietaryHistoryEntry{ItemName: "Oops", ConsumedAt: time.Now()}
	require.NoError(t, svc.Append(ctx, entry))
	require.NoError(t, svc.Delete(ctx, entry.ID))

	assert.ErrorIs(t, svc.Delete(ctx, entry.ID), ErrEntryNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, uuid.New()), ErrEntryNotFound)
}

func TestDailyProgressMatchesAggregate(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewHistoryService(db, 0)
	ctx := context.Background()

	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	require.NoError(t, svc.Append(ctx, &models.DietaryHistoryEntry{ItemName: "Eggs", ConsumedAt: day, ProteinG: 12, FatG: 10, Calories: 150}))
	require.NoError(t, svc.Append(ctx, &models.DietaryHistoryEntry{ItemName: "Toast", ConsumedAt: day.Add(time.Hour), CarbsG: 20, FiberG: 2}))

	prog, err := svc.DailyProgress(ctx, day)
	require.NoError(t, err)

	entries, err := svc.EntriesForDay(ctx, day)
	require.NoError(t, err)

	assert.Equal(t, 2, prog.Entries)
	assert.Equal(t, Aggregate(entries), prog.Totals)
	assert.InDelta(t, 20, prog.Totals.CarbsG, 1e-9)
	assert.InDelta(t, 12, prog.Totals.ProteinG, 1e-9)
}
