package services

import (
	"strconv"

	"converse-store/models"
	"converse-store/repositories"
)

// Default result sizes for the storefront sections.
const (
	DefaultNewLimit        = 4
	DefaultBestsellerLimit = 8
	DefaultRelatedLimit    = 4
)

type CatalogService struct {
	catalogRepo *repositories.CatalogRepository
}

func NewCatalogService(catalogRepo *repositories.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

func (s *CatalogService) GetAllCategories() []models.CategoryResponse {
	categories := make([]models.CategoryResponse, 0, len(models.Categories))
	for _, tag := range models.Categories {
		categories = append(categories, models.CategoryResponse{
			Tag:   tag,
			Label: models.CategoryLabels[tag],
		})
	}
	return categories
}

func (s *CatalogService) GetAllProducts() []models.Product {
	return s.catalogRepo.All()
}

func (s *CatalogService) GetProductByID(id int) (models.Product, bool) {
	return s.catalogRepo.ByID(id)
}

// GetProductByIDParam resolves an externally supplied id (URL segment, UI
// event). Catalog ids are integers; non-numeric input is treated as not
// found, never as an error.
func (s *CatalogService) GetProductByIDParam(idParam string) (models.Product, bool) {
	id, err := strconv.Atoi(idParam)
	if err != nil {
		return models.Product{}, false
	}
	return s.catalogRepo.ByID(id)
}

func (s *CatalogService) GetProductsByCategory(category string) []models.Product {
	return s.catalogRepo.ByCategory(category)
}

func (s *CatalogService) GetNewProducts(limit int) []models.Product {
	if limit < 1 {
		limit = DefaultNewLimit
	}
	return s.catalogRepo.New(limit)
}

func (s *CatalogService) GetBestsellerProducts(limit int) []models.Product {
	if limit < 1 {
		limit = DefaultBestsellerLimit
	}
	return s.catalogRepo.Bestsellers(limit)
}

func (s *CatalogService) SearchProducts(query string) []models.Product {
	return s.catalogRepo.Search(query)
}

func (s *CatalogService) GetRelatedProducts(idParam string, limit int) []models.Product {
	if limit < 1 {
		limit = DefaultRelatedLimit
	}
	id, err := strconv.Atoi(idParam)
	if err != nil {
		id = 0 // unknown id, repository falls back to the catalog head
	}
	return s.catalogRepo.Related(id, limit)
}
