package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trivia-coffee/internal/domain"
	"trivia-coffee/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const drinkColumns = `id "id", title "title", recipe "recipe"`

// DrinkDatabaseAdapter implements domain.DrinkRepository using sqlx.DB
type DrinkDatabaseAdapter struct {
	db *sqlx.DB
}

func NewDrinkDatabaseAdapter(db *sqlx.DB) domain.DrinkRepository {
	return &DrinkDatabaseAdapter{db: db}
}

func (a *DrinkDatabaseAdapter) ListDrinks(ctx context.Context) ([]*domain.Drink, error) {
	var rows []models.Drink
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, `SELECT `+drinkColumns+` FROM drinks ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list drinks: %w", err)
	}
	drinks := make([]*domain.Drink, len(rows))
	for i := range rows {
		drinks[i] = toDomainDrink(&rows[i])
	}
	return drinks, nil
}

func (a *DrinkDatabaseAdapter) GetDrink(ctx context.Context, id int64) (*domain.Drink, error) {
	return a.getOne(ctx, `id = ?`, id)
}

func (a *DrinkDatabaseAdapter) FindDrinkByTitle(ctx context.Context, title string) (*domain.Drink, error) {
	return a.getOne(ctx, `title = ?`, title)
}

func (a *DrinkDatabaseAdapter) getOne(ctx context.Context, cond string, arg interface{}) (*domain.Drink, error) {
	exec := GetExecutor(ctx, a.db)
	var rows []models.Drink
	query := exec.Rebind(`SELECT ` + drinkColumns + ` FROM drinks WHERE ` + cond + ` ORDER BY id`)
	if err := exec.SelectContext(ctx, &rows, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get drink (%s %v): %w", cond, arg, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return toDomainDrink(&rows[0]), nil
}

func (a *DrinkDatabaseAdapter) CreateDrink(ctx context.Context, drink *domain.Drink) error {
	if drink == nil {
		return fmt.Errorf("cannot save nil drink")
	}
	m := toModelDrink(drink)
	id, err := insertReturningID(ctx, GetExecutor(ctx, a.db),
		`INSERT INTO drinks (title, recipe) VALUES (?, ?)`,
		m.Title, m.Recipe,
	)
	if err != nil {
		return fmt.Errorf("failed to save drink: %w", err)
	}
	drink.ID = id
	return nil
}

func (a *DrinkDatabaseAdapter) UpdateDrink(ctx context.Context, drink *domain.Drink) error {
	if drink == nil || drink.ID == 0 {
		return fmt.Errorf("cannot update drink without id")
	}
	m := toModelDrink(drink)
	exec := GetExecutor(ctx, a.db)
	_, err := exec.ExecContext(ctx, exec.Rebind(`UPDATE drinks SET title = ?, recipe = ? WHERE id = ?`), m.Title, m.Recipe, m.ID)
	if err != nil {
		return fmt.Errorf("failed to update drink %d: %w", drink.ID, err)
	}
	return nil
}

func (a *DrinkDatabaseAdapter) DeleteDrink(ctx context.Context, id int64) error {
	exec := GetExecutor(ctx, a.db)
	if _, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM drinks WHERE id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete drink %d: %w", id, err)
	}
	return nil
}

func toDomainDrink(m *models.Drink) *domain.Drink {
	recipe := make(domain.Recipe, len(m.Recipe))
	for i, ing := range m.Recipe {
		recipe[i] = domain.Ingredient{Name: ing.Name, Color: ing.Color, Parts: ing.Parts}
	}
	return &domain.Drink{ID: m.ID, Title: m.Title, Recipe: recipe}
}

func toModelDrink(d *domain.Drink) *models.Drink {
	recipe := make(models.Recipe, len(d.Recipe))
	for i, ing := range d.Recipe {
		recipe[i] = models.Ingredient{Name: ing.Name, Color: ing.Color, Parts: ing.Parts}
	}
	return &models.Drink{ID: d.ID, Title: d.Title, Recipe: recipe}
}
