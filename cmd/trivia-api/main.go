// Command trivia-api serves the trivia question bank.
//
// @title Trivia API
// @version 1.0
// @description Trivia categories, paginated questions, search and quiz play.
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"trivia-coffee/internal/config"
	"trivia-coffee/internal/handler"
	"trivia-coffee/internal/logger"
	"trivia-coffee/internal/repository"
	"trivia-coffee/internal/server"
	"trivia-coffee/internal/service"
	"trivia-coffee/internal/validation"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig(config.ServiceTrivia)
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := server.OpenDependencies(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize dependencies", zap.Error(err))
	}
	defer deps.Close()

	categoryRepository := repository.NewCategoryDatabaseAdapter(deps.DB)
	questionRepository := repository.NewQuestionDatabaseAdapter(deps.DB)

	triviaService := service.NewTriviaService(categoryRepository, questionRepository, deps.Cache, cfg.Redis.TTL)
	quizService := service.NewQuizService(categoryRepository, questionRepository)

	app := server.New(cfg, handler.NewHealthHandler(cfg.Service, deps.HealthChecks()))
	server.RegisterTrivia(app,
		handler.NewTriviaHandler(triviaService, validation.NewValidator()),
		handler.NewQuizHandler(quizService),
	)

	if err := server.Run(ctx, app, cfg.Server.Port); err != nil {
		log.Error("Server stopped with error", zap.Error(err))
	}
}
