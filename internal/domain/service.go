package domain

import "context"

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// ListCategories returns all categories ordered by id
	ListCategories(ctx context.Context) ([]*Category, error)

	// GetCategory returns the category or nil when it does not exist
	GetCategory(ctx context.Context, id int64) (*Category, error)

	// CountCategories returns the number of categories
	CountCategories(ctx context.Context) (int, error)

	// FindCategoryByType returns the category with exactly this type or nil
	FindCategoryByType(ctx context.Context, categoryType string) (*Category, error)

	// CreateCategory persists a new category and sets its ID
	CreateCategory(ctx context.Context, category *Category) error
}

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	// ListQuestions returns one page of questions matching filter, ordered by id
	ListQuestions(ctx context.Context, filter QuestionFilter, page Page) ([]*Question, error)

	// CountQuestions returns the number of questions matching filter
	CountQuestions(ctx context.Context, filter QuestionFilter) (int, error)

	// GetQuestion returns the question or nil when it does not exist
	GetQuestion(ctx context.Context, id int64) (*Question, error)

	// CreateQuestion persists a new question and sets its ID
	CreateQuestion(ctx context.Context, question *Question) error

	// DeleteQuestion removes the question
	DeleteQuestion(ctx context.Context, id int64) error

	// ListQuizCandidates returns the questions of a category not in excludeIDs
	ListQuizCandidates(ctx context.Context, categoryID int64, excludeIDs []int64) ([]*Question, error)
}

// DrinkRepository defines the interface for drink persistence
type DrinkRepository interface {
	ListDrinks(ctx context.Context) ([]*Drink, error)
	GetDrink(ctx context.Context, id int64) (*Drink, error)
	// FindDrinkByTitle returns the drink with exactly this title or nil
	FindDrinkByTitle(ctx context.Context, title string) (*Drink, error)
	CreateDrink(ctx context.Context, drink *Drink) error
	UpdateDrink(ctx context.Context, drink *Drink) error
	DeleteDrink(ctx context.Context, id int64) error
}

// TransactionManager runs fn inside a single database transaction.
// Repositories called with the ctx passed to fn join the transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
