package routes

import (
	"converse-store/config"
	"converse-store/controllers"
	"converse-store/repositories"
	"converse-store/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, storage repositories.CartStorage) {
	catalogRepo := repositories.NewCatalogRepository()
	catalogService := services.NewCatalogService(catalogRepo)
	cartService := services.NewCartService(catalogRepo, storage)

	catalogCtrl := controllers.NewCatalogController(catalogService)
	cartCtrl := controllers.NewCartController(cartService,
		config.AppConfig.CartStorageKey, config.AppConfig.DefaultSize)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/categories", catalogCtrl.GetAllCategories)
	router.GET("/products", catalogCtrl.GetProducts)
	router.GET("/products/new", catalogCtrl.GetNewProducts)
	router.GET("/products/bestsellers", catalogCtrl.GetBestsellerProducts)
	router.GET("/products/:id", catalogCtrl.GetProductByID)
	router.GET("/products/:id/related", catalogCtrl.GetRelatedProducts)

	router.GET("/cart", cartCtrl.GetCart)
	router.DELETE("/cart", cartCtrl.ClearCart)
	router.POST("/cart/items", cartCtrl.AddItem)
	router.PATCH("/cart/items", cartCtrl.UpdateItem)
	router.DELETE("/cart/items", cartCtrl.RemoveItem)
}
