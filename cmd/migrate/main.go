// Command migrate applies or reverts the schema of one service.
//
//	migrate -service trivia -direction up
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"trivia-coffee/internal/config"
	"trivia-coffee/internal/database"
	"trivia-coffee/internal/logger"

	"go.uber.org/zap"
)

func main() {
	service := flag.String("service", config.ServiceTrivia, "service whose schema to migrate (trivia|coffee)")
	direction := flag.String("direction", database.DirectionUp, "migration direction (up|down)")
	flag.Parse()

	cfg, err := config.LoadConfig(*service)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Running migrations",
		zap.String("service", *service),
		zap.String("direction", *direction),
		zap.String("driver", cfg.DB.Driver),
	)
	if err := database.RunMigrations(context.Background(), cfg.DB, *service, *direction); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Migrations completed")
}
