package main

import (
	"log"

	"converse-store/config"
	_ "converse-store/docs"
	"converse-store/middleware"
	"converse-store/repositories"
	"converse-store/routes"

	"github.com/gin-gonic/gin"
)

// @title Converse Store API
// @version 1.0
// @description Storefront catalog and cart API for the Converse Oaxaca demo store.
// @BasePath /
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	var storage repositories.CartStorage
	switch config.AppConfig.CartBackend {
	case "redis":
		config.InitRedis()
		defer config.CloseRedis()
		storage = repositories.NewRedisCartStorage(config.RedisClient)
	case "postgres":
		config.ConnectDB()
		defer config.CloseDB()
		storage = repositories.NewPostgresCartStorage(config.DB)
	case "memory":
		log.Println("Using in-memory cart storage, carts will not survive a restart")
		storage = repositories.NewMemoryCartStorage()
	default:
		log.Fatalf("Unknown cart backend: %s", config.AppConfig.CartBackend)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, storage)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
