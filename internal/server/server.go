// Package server assembles the fiber application shared by the trivia and
// coffee shop binaries.
package server

import (
	"context"
	"errors"
	"strconv"
	"time"

	_ "trivia-coffee/docs"
	"trivia-coffee/internal/auth"
	"trivia-coffee/internal/config"
	"trivia-coffee/internal/domain"
	"trivia-coffee/internal/handler"
	"trivia-coffee/internal/logger"
	"trivia-coffee/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// New creates the fiber app with the common middleware chain and the
// operational routes (/healthz, /metrics, /swagger). Service routes are
// added with RegisterTrivia or RegisterCoffee.
func New(cfg *config.Config, health *handler.HealthHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Service,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Metrics(cfg.Service))
	app.Use(middleware.RequestLogger())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	}))

	if health != nil {
		app.Get("/healthz", health.Health)
	}
	app.Get("/metrics", middleware.MetricsHandler())
	app.Get("/swagger/*", swagger.HandlerDefault)

	return app
}

// RegisterTrivia mounts the trivia routes on r.
func RegisterTrivia(r fiber.Router, trivia *handler.TriviaHandler, quiz *handler.QuizHandler) {
	r.Get("/categories", trivia.GetCategories)
	r.Get("/categories/:id/questions", middleware.ValidateIDParam("id"), trivia.GetQuestionsByCategory)

	r.Get("/questions", trivia.GetQuestions)
	r.Post("/questions", trivia.CreateQuestion)
	r.Post("/questions/search", trivia.SearchQuestions)
	r.Delete("/questions/:id", middleware.ValidateIDParam("id"), trivia.DeleteQuestion)

	r.Post("/quizzes", quiz.PlayQuiz)
}

// RegisterCoffee mounts the coffee shop routes on r. Every route except the
// public menu requires a bearer token carrying the matching permission.
func RegisterCoffee(r fiber.Router, drinks *handler.DrinkHandler, verifier auth.TokenVerifier) {
	r.Get("/drinks", drinks.GetDrinks)
	r.Get("/drinks-detail",
		middleware.RequiresPermission(verifier, domain.PermissionGetDrinksDetail),
		drinks.GetDrinksDetail)
	r.Post("/drinks",
		middleware.RequiresPermission(verifier, domain.PermissionPostDrinks),
		drinks.CreateDrink)
	r.Patch("/drinks/:id",
		middleware.RequiresPermission(verifier, domain.PermissionPatchDrinks),
		middleware.ValidateIDParam("id"),
		drinks.UpdateDrink)
	r.Delete("/drinks/:id",
		middleware.RequiresPermission(verifier, domain.PermissionDeleteDrinks),
		middleware.ValidateIDParam("id"),
		drinks.DeleteDrink)
}

// Run serves app on port until ctx is cancelled, then shuts it down gracefully.
func Run(ctx context.Context, app *fiber.App, port int) error {
	log := logger.Get()

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("app", app.Config().AppName), zap.Int("port", port))
		errCh <- app.Listen(":" + strconv.Itoa(port))
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("Server exited gracefully")
	return nil
}
