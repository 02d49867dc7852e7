package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/pantrycoach/internal/models"
	"github.com/pageza/pantrycoach/internal/testhelpers"
)

func TestInventoryAddAndList(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewInventoryService(db)
	ctx := context.Background()

	qty := 3.0
	item := &models.InventoryItem{Name: "Bananas", Category: models.CategoryProduce, Quantity: &qty, CarbsG: 23}
	require.NoError(t, svc.Add(ctx, item))
	assert.NotEqual(t, uuid.Nil, item.ID)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Bananas", items[0].Name)
}

func TestInventoryAddRejectsInvalid(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewInventoryService(db)
	ctx := context.Background()

	err := svc.Add(ctx, &models.InventoryItem{Name: "", Category: models.CategoryProduce})
	assert.ErrorIs(t, err, ErrInvalidItem)

	err = svc.Add(ctx, &models.InventoryItem{Name: "X", Category: models.Category("weird")})
	assert.ErrorIs(t, err, ErrInvalidItem)

	err = svc.Add(ctx, &models.InventoryItem{Name: "X", Category: models.CategoryProduce, CarbsG: -1})
	assert.ErrorIs(t, err, ErrInvalidItem)

	neg := -2.0
	err = svc.Add(ctx, &models.InventoryItem{Name: "X", Category: models.CategoryProduce, Quantity: &neg})
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestInventoryFindByName(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewInventoryService(db)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, &models.InventoryItem{Name: "Greek Yogurt", Category: models.CategoryDairy}))

	found, err := svc.FindByName(ctx, "greek yogurt")
	require.NoError(t, err)
	assert.Equal(t, "Greek Yogurt", found.Name)

	_, err = svc.FindByName(ctx, "nothing here")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestConsumeReducesQuantityAndRecordsEntry(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewInventoryService(db)
	ctx := context.Background()
	now := time.Now()

	qty := 5.0
	cal := 95.0
	item := &models.InventoryItem{
		Name: "Apples", Category: models.CategoryProduce, Quantity: &qty,
		CarbsG: 19, FiberG: 2.4, Calories: &cal,
	}
	require.NoError(t, svc.Add(ctx, item))

	entry, err := svc.Consume(ctx, item.ID, 2, []string{"some warning"}, true, now)
	require.NoError(t, err)

	assert.Equal(t, "Apples", entry.ItemName)
	assert.InDelta(t, 38, entry.CarbsG, 1e-9)
	assert.InDelta(t, 4.8, entry.FiberG, 1e-9)
	assert.InDelta(t, 190, entry.Calories, 1e-9)
	assert.Equal(t, []string{"some warning"}, entry.Violations)
	assert.True(t, entry.GlucoseRelevant)

	remaining, err := svc.Get(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, remaining.Quantity)
	assert.Equal(t, 3.0, *remaining.Quantity)
}

func TestConsumeDepletionRemovesItemWithEntry(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewInventoryService(db)
	ctx := context.Background()

	qty := 1.0
	item := &models.InventoryItem{Name: "Last Egg", Category: models.CategoryDairy, ProteinG: 6, Quantity: &qty}
	require.NoError(t, svc.Add(ctx, item))

	entry, err := svc.Consume(ctx, item.ID, 1, nil, false, time.Now())
	require.NoError(t, err)

	// The consume is one unit: item gone implies the entry exists.
	_, err = svc.Get(ctx, item.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)

	var stored models.DietaryHistoryEntry
	require.NoError(t, db.First(&stored, "id = ?", entry.ID).Error)
	assert.Equal(t, "Last Egg", stored.ItemName)
}

func TestConsumeUnknownQuantityStaysUnknown(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewInventoryService(db)
	ctx := context.Background()

	item := &models.InventoryItem{Name: "Bulk Rice", Category: models.CategoryGrains, CarbsG: 28}
	require.NoError(t, svc.Add(ctx, item))

	_, err := svc.Consume(ctx, item.ID, 1, nil, false, time.Now())
	require.NoError(t, err)

	after, err := svc.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, after.Quantity)
}

func TestConsumeMissingItem(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewInventoryService(db)

	_, err := svc.Consume(context.Background(), uuid.New(), 1, nil, false, time.Now())
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestConsumeRejectsNonPositiveQuantity(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewInventoryService(db)

	_, err := svc.Consume(context.Background(), uuid.New(), 0, nil, false, time.Now())
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestAddBatchSkipsInvalid(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewInventoryService(db)
	ctx := context.Background()

	added, err := svc.AddBatch(ctx, []models.InventoryItem{
		{Name: "Good", Category: models.CategoryPantry},
		{Name: "", Category: models.CategoryPantry},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, added)
}

func TestInventoryRemove(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewInventoryService(db)
	ctx := context.Background()

	item := &models.InventoryItem{Name: "Soda", Category: models.CategoryBeverages}
	require.NoError(t, svc.Add(ctx, item))
	require.NoError(t, svc.Remove(ctx, item.ID))

	assert.ErrorIs(t, svc.Remove(ctx, item.ID), ErrItemNotFound)
}
