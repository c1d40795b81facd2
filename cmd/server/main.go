package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shoply_back_end/internal/cache"
	"shoply_back_end/internal/config"
	"shoply_back_end/internal/database"
	"shoply_back_end/internal/handlers"
	"shoply_back_end/internal/middleware"
	"shoply_back_end/internal/repository"
	"shoply_back_end/internal/routes"
	"shoply_back_end/internal/service"
)

func main() {
	cfg := config.Load()

	dbs := database.Connect(cfg)

	users := repository.NewMongoUserRepository(dbs.Mongo)
	products := repository.NewMongoProductRepository(dbs.Mongo)
	carts := repository.NewMongoCartRepository(dbs.Mongo)

	productCache := cache.NewProductCache(dbs.Redis)

	authService := service.NewAuthService(users, cfg.JWTSecret, cfg.TokenTTL)
	catalogService := service.NewCatalogService(products, users, productCache)
	cartService := service.NewCartService(carts, products, users)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(corsConfig(cfg)))

	h := handlers.New(authService, catalogService, cartService)
	routes.RegisterRoutes(r, h, authService)

	log.Println("🚀 Serveur lancé sur le port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Serveur arrêté:", err)
	}
}

func corsConfig(cfg config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	// Le token circule sur un header custom "token", pas sur Authorization
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "token", middleware.RequestIDHeader)
	return corsCfg
}
