package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"trivia-coffee/internal/domain"

	"go.uber.org/zap"
)

//go:embed seed_data.json
var seedData []byte

type seedQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type seedDrink struct {
	Title  string        `json:"title"`
	Recipe domain.Recipe `json:"recipe"`
}

type seedFile struct {
	Categories []string       `json:"categories"`
	Questions  []seedQuestion `json:"questions"`
	Drinks     []seedDrink    `json:"drinks"`
}

func loadSeedFile(data []byte) (*seedFile, error) {
	var f seedFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed data: %w", err)
	}
	return &f, nil
}

// seedTrivia inserts the categories and questions that are not present yet.
func seedTrivia(ctx context.Context, log *zap.Logger, tx domain.TransactionManager, categories domain.CategoryRepository, questions domain.QuestionRepository, f *seedFile) error {
	return tx.WithTransaction(ctx, func(ctx context.Context) error {
		ids := make(map[string]int64, len(f.Categories))
		for _, name := range f.Categories {
			category, err := categories.FindCategoryByType(ctx, name)
			if err != nil {
				return err
			}
			if category == nil {
				category = &domain.Category{Type: name}
				if err := categories.CreateCategory(ctx, category); err != nil {
					return err
				}
				log.Info("Created category", zap.String("type", name), zap.Int64("id", category.ID))
			}
			ids[name] = category.ID
		}

		created := 0
		for _, sq := range f.Questions {
			categoryID, ok := ids[sq.Category]
			if !ok {
				return fmt.Errorf("question %q references unknown category %q", sq.Question, sq.Category)
			}
			existing, err := questions.CountQuestions(ctx, domain.QuestionFilter{SearchTerm: sq.Question})
			if err != nil {
				return err
			}
			if existing > 0 {
				continue
			}
			q := domain.NewQuestion(sq.Question, sq.Answer, categoryID, sq.Difficulty)
			if err := q.Validate(); err != nil {
				return fmt.Errorf("invalid seed question %q: %w", sq.Question, err)
			}
			if err := questions.CreateQuestion(ctx, q); err != nil {
				return err
			}
			created++
		}
		log.Info("Seeded trivia questions", zap.Int("created", created), zap.Int("total", len(f.Questions)))
		return nil
	})
}

// seedCoffee inserts the drinks whose title is not taken yet.
func seedCoffee(ctx context.Context, log *zap.Logger, tx domain.TransactionManager, drinks domain.DrinkRepository, f *seedFile) error {
	return tx.WithTransaction(ctx, func(ctx context.Context) error {
		for _, sd := range f.Drinks {
			existing, err := drinks.FindDrinkByTitle(ctx, sd.Title)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}
			drink := domain.NewDrink(sd.Title, sd.Recipe)
			if err := drink.Validate(); err != nil {
				return fmt.Errorf("invalid seed drink %q: %w", sd.Title, err)
			}
			if err := drinks.CreateDrink(ctx, drink); err != nil {
				return err
			}
			log.Info("Created drink", zap.String("title", drink.Title), zap.Int64("id", drink.ID))
		}
		return nil
	})
}
