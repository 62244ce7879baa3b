// Command coffee-api serves the coffee shop menu.
//
// @title Coffee Shop API
// @version 1.0
// @description Drinks menu with permission-gated staff operations.
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"trivia-coffee/internal/auth"
	"trivia-coffee/internal/config"
	"trivia-coffee/internal/handler"
	"trivia-coffee/internal/logger"
	"trivia-coffee/internal/repository"
	"trivia-coffee/internal/server"
	"trivia-coffee/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig(config.ServiceCoffee)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.Get()
	defer logger.Sync()

	verifier, err := auth.NewVerifier(cfg.Auth)
	if err != nil {
		log.Fatal("Failed to create token verifier", zap.Error(err))
	}
	log.Info("Token verifier initialized", zap.String("mode", cfg.Auth.Mode))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := server.OpenDependencies(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize dependencies", zap.Error(err))
	}
	defer deps.Close()

	drinkService := service.NewDrinkService(
		repository.NewDrinkDatabaseAdapter(deps.DB),
		repository.NewTransactionManagerAdapter(deps.DB),
		deps.Cache,
		cfg.Redis.TTL,
	)

	app := server.New(cfg, handler.NewHealthHandler(cfg.Service, deps.HealthChecks()))
	server.RegisterCoffee(app, handler.NewDrinkHandler(drinkService), verifier)

	if err := server.Run(ctx, app, cfg.Server.Port); err != nil {
		log.Error("Server stopped with error", zap.Error(err))
	}
}
