package repositories

import (
	"strings"

	"converse-store/models"
)

// CatalogRepository answers read-only queries over the fixed product set.
// Queries never fail: absence is an empty result or a false second return.
type CatalogRepository struct {
	products []models.Product
	byID     map[int]models.Product
}

func NewCatalogRepository() *CatalogRepository {
	return NewCatalogRepositoryWith(models.CatalogSeed)
}

func NewCatalogRepositoryWith(products []models.Product) *CatalogRepository {
	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &CatalogRepository{products: products, byID: byID}
}

// All returns the full catalog in seed order.
func (r *CatalogRepository) All() []models.Product {
	return r.products
}

func (r *CatalogRepository) ByID(id int) (models.Product, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// ByCategory returns products tagged with the given category.
// models.CategoryAll is a sentinel meaning "everything".
func (r *CatalogRepository) ByCategory(category string) []models.Product {
	if category == models.CategoryAll {
		return r.products
	}
	matched := []models.Product{}
	for _, p := range r.products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched
}

// New returns up to limit products flagged as new, in seed order.
func (r *CatalogRepository) New(limit int) []models.Product {
	return r.byFlag(func(p models.Product) bool { return p.IsNew }, limit)
}

// Bestsellers returns up to limit products flagged as bestsellers, in seed order.
func (r *CatalogRepository) Bestsellers(limit int) []models.Product {
	return r.byFlag(func(p models.Product) bool { return p.IsBestseller }, limit)
}

func (r *CatalogRepository) byFlag(match func(models.Product) bool, limit int) []models.Product {
	matched := []models.Product{}
	for _, p := range r.products {
		if len(matched) == limit {
			break
		}
		if match(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Search matches the query case-insensitively against name, short name and
// color. An empty or whitespace-only query returns the full catalog, so the
// storefront falls back to the unfiltered grid instead of an empty page.
func (r *CatalogRepository) Search(query string) []models.Product {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return r.products
	}

	matched := []models.Product{}
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.ShortName), term) ||
			strings.Contains(strings.ToLower(p.Color), term) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Related returns up to limit products to show next to the given one:
// same-category products first, then the rest, seed order within each group,
// the product itself excluded. When the id is unknown it falls back to the
// head of the catalog.
func (r *CatalogRepository) Related(currentID, limit int) []models.Product {
	current, ok := r.byID[currentID]
	if !ok {
		return r.head(limit)
	}

	related := []models.Product{}
	for _, p := range r.products {
		if p.ID != currentID && p.Category == current.Category {
			related = append(related, p)
		}
	}
	for _, p := range r.products {
		if p.ID != currentID && p.Category != current.Category {
			related = append(related, p)
		}
	}

	if len(related) > limit {
		related = related[:limit]
	}
	return related
}

func (r *CatalogRepository) head(limit int) []models.Product {
	if len(r.products) > limit {
		return r.products[:limit]
	}
	return r.products
}
