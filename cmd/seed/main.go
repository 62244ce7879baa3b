// Command seed loads the starter data of one service. Rows that already
// exist are left alone, so it can be run repeatedly.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"trivia-coffee/internal/config"
	"trivia-coffee/internal/database"
	"trivia-coffee/internal/logger"
	"trivia-coffee/internal/repository"

	"go.uber.org/zap"
)

func main() {
	service := flag.String("service", config.ServiceTrivia, "service to seed (trivia|coffee)")
	flag.Parse()

	ctx := context.Background()
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

	f, err := loadSeedFile(seedData)
	if err != nil {
		log.Fatal("Failed to load seed data", zap.Error(err))
	}

	db, err := database.NewSQLXDB(ctx, cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	tx := repository.NewTransactionManagerAdapter(db)
	switch *service {
	case config.ServiceTrivia:
		err = seedTrivia(ctx, log, tx,
			repository.NewCategoryDatabaseAdapter(db),
			repository.NewQuestionDatabaseAdapter(db), f)
	case config.ServiceCoffee:
		err = seedCoffee(ctx, log, tx, repository.NewDrinkDatabaseAdapter(db), f)
	default:
		err = fmt.Errorf("unknown service %q", *service)
	}
	if err != nil {
		log.Fatal("Seeding failed, transaction rolled back", zap.Error(err))
	}
	log.Info("Seeding completed", zap.String("service", *service))
}
