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

// CategoryDatabaseAdapter implements domain.CategoryRepository using sqlx.DB
type CategoryDatabaseAdapter struct {
	db *sqlx.DB
}

func NewCategoryDatabaseAdapter(db *sqlx.DB) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

func (a *CategoryDatabaseAdapter) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	var rows []models.Category
	query := `SELECT id "id", type "type" FROM categories ORDER BY id`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*domain.Category, len(rows))
	for i := range rows {
		categories[i] = toDomainCategory(&rows[i])
	}
	return categories, nil
}

func (a *CategoryDatabaseAdapter) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	exec := GetExecutor(ctx, a.db)
	var row models.Category
	query := exec.Rebind(`SELECT id "id", type "type" FROM categories WHERE id = ?`)
	if err := exec.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	return toDomainCategory(&row), nil
}

func (a *CategoryDatabaseAdapter) CountCategories(ctx context.Context) (int, error) {
	var count int
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &count, `SELECT COUNT(*) FROM categories`); err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}

func (a *CategoryDatabaseAdapter) FindCategoryByType(ctx context.Context, categoryType string) (*domain.Category, error) {
	exec := GetExecutor(ctx, a.db)
	var rows []models.Category
	query := exec.Rebind(`SELECT id "id", type "type" FROM categories WHERE type = ?`)
	if err := exec.SelectContext(ctx, &rows, query, categoryType); err != nil {
		return nil, fmt.Errorf("failed to find category %q: %w", categoryType, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return toDomainCategory(&rows[0]), nil
}

func (a *CategoryDatabaseAdapter) CreateCategory(ctx context.Context, category *domain.Category) error {
	if category == nil {
		return fmt.Errorf("cannot save nil category")
	}
	id, err := insertReturningID(ctx, GetExecutor(ctx, a.db), `INSERT INTO categories (type) VALUES (?)`, category.Type)
	if err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}
	category.ID = id
	return nil
}

func toDomainCategory(m *models.Category) *domain.Category {
	return &domain.Category{ID: m.ID, Type: m.Type}
}
