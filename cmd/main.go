package main

import (
	"context"
	"log"

	"github.com/Tarunamathi/lms-auth-service/config"
	"github.com/Tarunamathi/lms-auth-service/db"
	"github.com/Tarunamathi/lms-auth-service/internal/auth/handler"
	repo "github.com/Tarunamathi/lms-auth-service/internal/auth/repository/postgres"
	"github.com/Tarunamathi/lms-auth-service/internal/auth/service"
	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.Load()

	dbPool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to set up database pool: %v", err)
	}
	defer dbPool.Close()

	store := repo.NewPostgresRepository(dbPool)
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	authService := service.NewAuthService(store, hasher)
	resetService := service.NewResetService(store, hasher, cfg.ResetTokenExpiryMin)
	authHandler := handler.NewAuthHandler(authService, resetService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
