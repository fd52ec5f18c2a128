package services_test

import (
	"context"
	"errors"
	"testing"

	"converse-store/models"
	"converse-store/repositories"
	"converse-store/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "converse_cart"

func newCartService() (*services.CartService, *repositories.MemoryCartStorage) {
	storage := repositories.NewMemoryCartStorage()
	return services.NewCartService(repositories.NewCatalogRepository(), storage), storage
}

func TestLoadEmptyWhenNothingStored(t *testing.T) {
	svc, _ := newCartService()

	lines, err := svc.Load(context.Background(), testKey)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Equal(t, 0, svc.Total(lines))
	assert.Equal(t, 0, svc.Count(lines))
}

func TestLoadMalformedPayloadIsEmptyCart(t *testing.T) {
	svc, storage := newCartService()
	require.NoError(t, storage.Write(context.Background(), testKey, "{not json"))

	lines, err := svc.Load(context.Background(), testKey)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestAddItemSnapshotsProductFields(t *testing.T) {
	svc, _ := newCartService()

	lines, _, err := svc.AddItem(context.Background(), testKey, 1, "27", 2)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	line := lines[0]
	assert.Equal(t, 1, line.ProductID)
	assert.Equal(t, "27", line.Size)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, "Chuck Taylor All Star High Top Negro", line.Name)
	assert.Equal(t, "Chuck Taylor High Negro", line.ShortName)
	assert.Equal(t, 1499, line.Price)
	assert.Equal(t, "Negro", line.Color)

	assert.Equal(t, 2998, svc.Total(lines))
	assert.Equal(t, 2, svc.Count(lines))
}

func TestAddSameVariantIncrementsInsteadOfDuplicating(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	_, _, err := svc.AddItem(ctx, testKey, 1, "27", 2)
	require.NoError(t, err)
	lines, _, err := svc.AddItem(ctx, testKey, 1, "27", 1)
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 4497, svc.Total(lines))
}

func TestAddDifferentSizeCreatesSecondLine(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	_, _, err := svc.AddItem(ctx, testKey, 1, "25", 1)
	require.NoError(t, err)
	lines, _, err := svc.AddItem(ctx, testKey, 1, "27", 1)
	require.NoError(t, err)

	require.Len(t, lines, 2)
	// Insertion order preserved, new variants appended.
	assert.Equal(t, "25", lines[0].Size)
	assert.Equal(t, "27", lines[1].Size)
}

func TestAddUnknownProductIsNoOp(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	_, added, err := svc.AddItem(ctx, testKey, 1, "25", 1)
	require.NoError(t, err)
	assert.True(t, added)

	lines, added, err := svc.AddItem(ctx, testKey, 999, "27", 1)
	require.NoError(t, err)
	assert.False(t, added)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].ProductID)
}

func TestAddDefaultsSizeForQuickAdd(t *testing.T) {
	svc, _ := newCartService()

	lines, _, err := svc.AddItem(context.Background(), testKey, 2, "", 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, services.DefaultSize, lines[0].Size)
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	svc, _ := newCartService()

	_, _, err := svc.AddItem(context.Background(), testKey, 1, "25", 0)
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)

	_, _, err = svc.AddItem(context.Background(), testKey, 1, "25", -3)
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)
}

func TestCartRoundTripsThroughStorage(t *testing.T) {
	svc, storage := newCartService()
	ctx := context.Background()

	_, _, err := svc.AddItem(ctx, testKey, 1, "27", 2)
	require.NoError(t, err)
	_, _, err = svc.AddItem(ctx, testKey, 2, "25", 1)
	require.NoError(t, err)

	// A fresh service over the same storage sees the same cart.
	reloaded := services.NewCartService(repositories.NewCatalogRepository(), storage)
	lines, err := reloaded.Load(ctx, testKey)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, 2998+1399, reloaded.Total(lines))
}

func TestRemoveItem(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	_, _, err := svc.AddItem(ctx, testKey, 1, "27", 2)
	require.NoError(t, err)
	_, _, err = svc.AddItem(ctx, testKey, 2, "25", 1)
	require.NoError(t, err)

	lines, err := svc.RemoveItem(ctx, testKey, 1, "27")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].ProductID)
	assert.Equal(t, 1, svc.Count(lines))
}

func TestRemoveAbsentLineIsNoOp(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	_, _, err := svc.AddItem(ctx, testKey, 1, "27", 2)
	require.NoError(t, err)

	lines, err := svc.RemoveItem(ctx, testKey, 1, "99")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, svc.Count(lines))
}

func TestSetQuantityOverwrites(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	_, _, err := svc.AddItem(ctx, testKey, 1, "27", 2)
	require.NoError(t, err)

	lines, err := svc.SetQuantity(ctx, testKey, 1, "27", 5)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 5*1499, svc.Total(lines))
}

func TestSetQuantityZeroOrNegativeRemovesLine(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	_, _, err := svc.AddItem(ctx, testKey, 1, "27", 2)
	require.NoError(t, err)

	lines, err := svc.SetQuantity(ctx, testKey, 1, "27", 0)
	require.NoError(t, err)
	assert.Empty(t, lines)

	_, _, err = svc.AddItem(ctx, testKey, 1, "27", 2)
	require.NoError(t, err)
	lines, err = svc.SetQuantity(ctx, testKey, 1, "27", -1)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestSetQuantityDoesNotCreateLines(t *testing.T) {
	svc, _ := newCartService()

	lines, err := svc.SetQuantity(context.Background(), testKey, 1, "27", 3)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestClear(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	_, _, err := svc.AddItem(ctx, testKey, 1, "27", 2)
	require.NoError(t, err)
	_, _, err = svc.AddItem(ctx, testKey, 2, "25", 1)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, testKey))

	lines, err := svc.Load(ctx, testKey)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Equal(t, 0, svc.Total(lines))
}

func TestTotalUsesSnapshotPriceNotCatalogPrice(t *testing.T) {
	storage := repositories.NewMemoryCartStorage()
	repo := repositories.NewCatalogRepositoryWith([]models.Product{
		{ID: 1, Name: "Sneaker", ShortName: "Sneaker", Price: 1000, Category: models.CategoryFootwear, Color: "Negro", Image: "img", Images: []string{"img"}},
	})
	svc := services.NewCartService(repo, storage)
	ctx := context.Background()

	_, _, err := svc.AddItem(ctx, testKey, 1, "25", 1)
	require.NoError(t, err)

	// Same cart read through a catalog that now prices the product higher:
	// the stored snapshot keeps the add-time price.
	repriced := repositories.NewCatalogRepositoryWith([]models.Product{
		{ID: 1, Name: "Sneaker", ShortName: "Sneaker", Price: 9999, Category: models.CategoryFootwear, Color: "Negro", Image: "img", Images: []string{"img"}},
	})
	svc2 := services.NewCartService(repriced, storage)
	lines, err := svc2.Load(ctx, testKey)
	require.NoError(t, err)
	assert.Equal(t, 1000, svc2.Total(lines))
}

// failingStorage simulates an unavailable backend.
type failingStorage struct{}

func (failingStorage) Read(ctx context.Context, key string) (string, bool, error) {
	return "", false, &repositories.StorageError{Op: "read", Err: errors.New("backend down")}
}

func (failingStorage) Write(ctx context.Context, key, value string) error {
	return &repositories.StorageError{Op: "write", Err: errors.New("backend down")}
}

func (failingStorage) Delete(ctx context.Context, key string) error {
	return &repositories.StorageError{Op: "delete", Err: errors.New("backend down")}
}

func TestStorageFailuresPropagate(t *testing.T) {
	svc := services.NewCartService(repositories.NewCatalogRepository(), failingStorage{})
	ctx := context.Background()

	var storageErr *repositories.StorageError

	_, err := svc.Load(ctx, testKey)
	require.ErrorAs(t, err, &storageErr)

	_, _, err = svc.AddItem(ctx, testKey, 1, "25", 1)
	require.ErrorAs(t, err, &storageErr)

	err = svc.Clear(ctx, testKey)
	require.ErrorAs(t, err, &storageErr)
}
