package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"trivia-coffee/internal/cache"
	"trivia-coffee/internal/domain"
	"trivia-coffee/internal/dto"
	"trivia-coffee/internal/logger"

	"go.uber.org/zap"
)

// DrinkService defines the coffee shop menu operations
type DrinkService interface {
	ListDrinks(ctx context.Context) (*dto.DrinksShortResponse, error)
	ListDrinkDetails(ctx context.Context) (*dto.DrinksLongResponse, error)
	CreateDrink(ctx context.Context, req *dto.CreateDrinkRequest) (*dto.DrinksLongResponse, error)
	UpdateDrink(ctx context.Context, id int64, req *dto.UpdateDrinkRequest) (*dto.DrinksLongResponse, error)
	DeleteDrink(ctx context.Context, id int64) (*dto.DeleteDrinkResponse, error)
}

type drinkService struct {
	drinks   domain.DrinkRepository
	tx       domain.TransactionManager
	menuRead *readCache
}

// NewDrinkService creates a new DrinkService. cache may be nil.
func NewDrinkService(drinks domain.DrinkRepository, tx domain.TransactionManager, cache domain.Cache, cacheTTL time.Duration) DrinkService {
	return &drinkService{
		drinks:   drinks,
		tx:       tx,
		menuRead: newReadCache(cache, cacheTTL),
	}
}

func (s *drinkService) menu(ctx context.Context) ([]*domain.Drink, error) {
	drinks, err := readThrough(ctx, s.menuRead, cache.DrinksKey, s.drinks.ListDrinks)
	if err != nil {
		return nil, domain.NewInternalError("failed to list drinks", err)
	}
	if len(drinks) == 0 {
		return nil, domain.NewNotFoundError("no drinks on the menu")
	}
	return drinks, nil
}

func (s *drinkService) ListDrinks(ctx context.Context) (*dto.DrinksShortResponse, error) {
	drinks, err := s.menu(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DrinkShort, len(drinks))
	for i, d := range drinks {
		out[i] = toDrinkShort(d)
	}
	return &dto.DrinksShortResponse{Success: true, Status: http.StatusOK, Drinks: out}, nil
}

func (s *drinkService) ListDrinkDetails(ctx context.Context) (*dto.DrinksLongResponse, error) {
	drinks, err := s.menu(ctx)
	if err != nil {
		return nil, err
	}
	return longResponse(drinks...), nil
}

func (s *drinkService) CreateDrink(ctx context.Context, req *dto.CreateDrinkRequest) (*dto.DrinksLongResponse, error) {
	drink := domain.NewDrink(req.Title, toDomainRecipe(req.Recipe))
	if err := drink.Validate(); err != nil {
		return nil, err
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.ensureTitleFree(ctx, drink.Title, 0); err != nil {
			return err
		}
		if err := s.drinks.CreateDrink(ctx, drink); err != nil {
			logger.Get().Error("Failed to create drink", zap.String("title", drink.Title), zap.Error(err))
			return domain.NewUnprocessableError("failed to create drink", err)
		}
		return nil
	})
	if err != nil {
		return nil, asDomainError(err, "failed to create drink")
	}

	s.menuRead.invalidate(ctx, cache.DrinksKey)
	return longResponse(drink), nil
}

func (s *drinkService) UpdateDrink(ctx context.Context, id int64, req *dto.UpdateDrinkRequest) (*dto.DrinksLongResponse, error) {
	var drink *domain.Drink
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		drink, err = s.drinks.GetDrink(ctx, id)
		if err != nil {
			return domain.NewUnprocessableError("failed to look up drink", err)
		}
		if drink == nil {
			return domain.NewDrinkNotFoundError(id)
		}
		if req.Title == nil && req.Recipe == nil {
			return domain.NewBadRequestError("nothing to update")
		}

		if req.Title != nil {
			title := strings.TrimSpace(*req.Title)
			if title == "" {
				return domain.NewBadRequestError("title must not be empty")
			}
			if title != drink.Title {
				if err := s.ensureTitleFree(ctx, title, id); err != nil {
					return err
				}
			}
			drink.Title = title
		}
		if req.Recipe != nil {
			recipe := toDomainRecipe(req.Recipe)
			if err := recipe.Validate(); err != nil {
				return err
			}
			drink.Recipe = recipe
		}

		if err := s.drinks.UpdateDrink(ctx, drink); err != nil {
			logger.Get().Error("Failed to update drink", zap.Int64("id", id), zap.Error(err))
			return domain.NewUnprocessableError("failed to update drink", err)
		}
		return nil
	})
	if err != nil {
		return nil, asDomainError(err, "failed to update drink")
	}

	s.menuRead.invalidate(ctx, cache.DrinksKey)
	return longResponse(drink), nil
}

func (s *drinkService) DeleteDrink(ctx context.Context, id int64) (*dto.DeleteDrinkResponse, error) {
	drink, err := s.drinks.GetDrink(ctx, id)
	if err != nil {
		return nil, domain.NewUnprocessableError("failed to look up drink", err)
	}
	if drink == nil {
		return nil, domain.NewDrinkNotFoundError(id)
	}

	if err := s.drinks.DeleteDrink(ctx, id); err != nil {
		logger.Get().Error("Failed to delete drink", zap.Int64("id", id), zap.Error(err))
		return nil, domain.NewUnprocessableError("failed to delete drink", err)
	}

	s.menuRead.invalidate(ctx, cache.DrinksKey)
	return &dto.DeleteDrinkResponse{Success: true, Status: http.StatusOK, Delete: id}, nil
}

// ensureTitleFree fails when another drink than selfID already uses title.
func (s *drinkService) ensureTitleFree(ctx context.Context, title string, selfID int64) error {
	existing, err := s.drinks.FindDrinkByTitle(ctx, title)
	if err != nil {
		return domain.NewUnprocessableError("failed to check drink title", err)
	}
	if existing != nil && existing.ID != selfID {
		return domain.NewError(domain.CodeBadRequest, "a drink named "+title+" already exists", domain.ErrDuplicateTitle)
	}
	return nil
}

// asDomainError keeps domain errors and treats anything else (begin/commit failures) as a failed persistence operation.
func asDomainError(err error, message string) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return domain.NewUnprocessableError(message, err)
}

func toDomainRecipe(in dto.RecipeInput) domain.Recipe {
	recipe := make(domain.Recipe, len(in))
	for i, ing := range in {
		recipe[i] = domain.Ingredient{
			Name:  strings.TrimSpace(ing.Name),
			Color: strings.TrimSpace(ing.Color),
			Parts: ing.Parts,
		}
	}
	return recipe
}

func toDrinkShort(d *domain.Drink) dto.DrinkShort {
	recipe := make([]dto.ShortIngredient, len(d.Recipe))
	for i, ing := range d.Recipe {
		recipe[i] = dto.ShortIngredient{Color: ing.Color, Parts: ing.Parts}
	}
	return dto.DrinkShort{ID: d.ID, Title: d.Title, Recipe: recipe}
}

func toDrinkLong(d *domain.Drink) dto.DrinkLong {
	recipe := make([]dto.Ingredient, len(d.Recipe))
	for i, ing := range d.Recipe {
		recipe[i] = dto.Ingredient{Name: ing.Name, Color: ing.Color, Parts: ing.Parts}
	}
	return dto.DrinkLong{ID: d.ID, Title: d.Title, Recipe: recipe}
}

func longResponse(drinks ...*domain.Drink) *dto.DrinksLongResponse {
	out := make([]dto.DrinkLong, len(drinks))
	for i, d := range drinks {
		out[i] = toDrinkLong(d)
	}
	return &dto.DrinksLongResponse{Success: true, Status: http.StatusOK, Drinks: out}
}
