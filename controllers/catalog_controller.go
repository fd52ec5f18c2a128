package controllers

import (
	"strconv"
	"strings"

	"converse-store/models"
	"converse-store/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalogService *services.CatalogService
}

func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// @Summary Get all categories
// @Description Get the category tags and display labels
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CatalogController) GetAllCategories(c *gin.Context) {
	categories := ctrl.catalogService.GetAllCategories()
	c.JSON(200, models.Response{Success: true, Message: "Categories retrieved", Data: categories})
}

// @Summary Get products
// @Description Get the catalog, optionally narrowed by search text or category tag
// @Tags Products
// @Produce json
// @Param search query string false "Search by name, short name or color"
// @Param category query string false "Filter by category tag (todos = all)"
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *CatalogController) GetProducts(c *gin.Context) {
	search := c.Query("search")
	category := strings.TrimSpace(c.Query("category"))

	// Search wins over the category filter, matching the storefront's
	// search-overrides-filter behavior.
	var products []models.Product
	switch {
	case strings.TrimSpace(search) != "":
		products = ctrl.catalogService.SearchProducts(search)
	case category != "":
		products = ctrl.catalogService.GetProductsByCategory(category)
	default:
		products = ctrl.catalogService.GetAllProducts()
	}

	c.JSON(200, models.Response{Success: true, Message: "Products retrieved", Data: products})
}

// @Summary Get new arrivals
// @Description Get products flagged as new, catalog order, truncated to limit
// @Tags Products
// @Produce json
// @Param limit query int false "Maximum results" default(4)
// @Success 200 {object} models.Response
// @Router /products/new [get]
func (ctrl *CatalogController) GetNewProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	products := ctrl.catalogService.GetNewProducts(limit)
	c.JSON(200, models.Response{Success: true, Message: "New products retrieved", Data: products})
}

// @Summary Get bestsellers
// @Description Get products flagged as bestsellers, catalog order, truncated to limit
// @Tags Products
// @Produce json
// @Param limit query int false "Maximum results" default(8)
// @Success 200 {object} models.Response
// @Router /products/bestsellers [get]
func (ctrl *CatalogController) GetBestsellerProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	products := ctrl.catalogService.GetBestsellerProducts(limit)
	c.JSON(200, models.Response{Success: true, Message: "Bestseller products retrieved", Data: products})
}

// @Summary Get product by ID
// @Description Get a single product; non-numeric or unknown ids yield 404
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *CatalogController) GetProductByID(c *gin.Context) {
	product, ok := ctrl.catalogService.GetProductByIDParam(c.Param("id"))
	if !ok {
		c.JSON(404, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Product retrieved", Data: product})
}

// @Summary Get related products
// @Description Get products related to the given one: same category first, then the rest
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Param limit query int false "Maximum results" default(4)
// @Success 200 {object} models.Response
// @Router /products/{id}/related [get]
func (ctrl *CatalogController) GetRelatedProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	products := ctrl.catalogService.GetRelatedProducts(c.Param("id"), limit)
	c.JSON(200, models.Response{Success: true, Message: "Related products retrieved", Data: products})
}
