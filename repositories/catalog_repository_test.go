package repositories_test

import (
	"testing"

	"converse-store/models"
	"converse-store/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllReturnsSeedInOrder(t *testing.T) {
	repo := repositories.NewCatalogRepository()

	products := repo.All()
	require.Len(t, products, len(models.CatalogSeed))
	for i, p := range products {
		assert.Equal(t, models.CatalogSeed[i].ID, p.ID)
	}
}

func TestByID(t *testing.T) {
	repo := repositories.NewCatalogRepository()

	p, ok := repo.ByID(1)
	require.True(t, ok)
	assert.Equal(t, "Chuck Taylor All Star High Top Negro", p.Name)
	assert.Equal(t, 1499, p.Price)

	_, ok = repo.ByID(999)
	assert.False(t, ok)
}

func TestByCategory(t *testing.T) {
	repo := repositories.NewCatalogRepository()

	footwear := repo.ByCategory(models.CategoryFootwear)
	require.NotEmpty(t, footwear)
	for _, p := range footwear {
		assert.Equal(t, models.CategoryFootwear, p.Category)
	}

	assert.Equal(t, repo.All(), repo.ByCategory(models.CategoryAll))
	assert.Empty(t, repo.ByCategory("no-such-tag"))
}

func TestNewAndBestsellersRespectLimitAndFlag(t *testing.T) {
	repo := repositories.NewCatalogRepository()

	newest := repo.New(4)
	require.Len(t, newest, 4)
	for _, p := range newest {
		assert.True(t, p.IsNew)
	}

	// Fewer flagged products than the limit: return them all.
	best := repo.Bestsellers(100)
	require.NotEmpty(t, best)
	assert.LessOrEqual(t, len(best), 100)
	for _, p := range best {
		assert.True(t, p.IsBestseller)
	}

	assert.Len(t, repo.Bestsellers(2), 2)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	repo := repositories.NewCatalogRepository()

	lower := repo.Search("negro")
	upper := repo.Search("NEGRO")
	require.NotEmpty(t, lower)
	assert.Equal(t, lower, upper)
}

func TestSearchMatchesNameShortNameAndColor(t *testing.T) {
	repo := repositories.NewCatalogRepository()

	byColor := repo.Search("plateado")
	require.Len(t, byColor, 1)
	assert.Equal(t, 10, byColor[0].ID)

	byName := repo.Search("mochila")
	require.Len(t, byName, 1)
	assert.Equal(t, 9, byName[0].ID)
}

func TestSearchBlankQueryReturnsFullCatalog(t *testing.T) {
	repo := repositories.NewCatalogRepository()

	assert.Equal(t, repo.All(), repo.Search(""))
	assert.Equal(t, repo.All(), repo.Search("   "))
}

func TestSearchNoMatches(t *testing.T) {
	repo := repositories.NewCatalogRepository()
	assert.Empty(t, repo.Search("zapatilla inexistente"))
}

func TestRelatedPrefersSameCategory(t *testing.T) {
	repo := repositories.NewCatalogRepository()

	// Product 9 is an accessory; the only other accessory (10) must come
	// first, followed by the rest of the catalog in seed order.
	related := repo.Related(9, 4)
	require.Len(t, related, 4)
	assert.Equal(t, 10, related[0].ID)
	assert.Equal(t, 1, related[1].ID)
	assert.Equal(t, 2, related[2].ID)
	assert.Equal(t, 3, related[3].ID)
}

func TestRelatedExcludesCurrentProduct(t *testing.T) {
	repo := repositories.NewCatalogRepository()

	related := repo.Related(1, 4)
	require.Len(t, related, 4)
	for _, p := range related {
		assert.NotEqual(t, 1, p.ID)
		assert.Equal(t, models.CategoryFootwear, p.Category)
	}
}

func TestRelatedUnknownIDFallsBackToCatalogHead(t *testing.T) {
	repo := repositories.NewCatalogRepository()

	related := repo.Related(999, 4)
	require.Len(t, related, 4)
	assert.Equal(t, 1, related[0].ID)
	assert.Equal(t, 4, related[3].ID)
}
