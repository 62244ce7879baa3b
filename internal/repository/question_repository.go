package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trivia-coffee/internal/domain"
	"trivia-coffee/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const questionColumns = `id "id", question "question", answer "answer", category "category", difficulty "difficulty"`

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.DB
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// questionWhere renders the WHERE clause for filter, with ? placeholders.
func questionWhere(filter domain.QuestionFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.CategoryID > 0 {
		conds = append(conds, "category = ?")
		args = append(args, filter.CategoryID)
	}
	if filter.SearchTerm != "" {
		conds = append(conds, `LOWER(question) LIKE ? ESCAPE '\'`)
		args = append(args, containsPattern(filter.SearchTerm))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (a *QuestionDatabaseAdapter) ListQuestions(ctx context.Context, filter domain.QuestionFilter, page domain.Page) ([]*domain.Question, error) {
	if !page.Valid() {
		return []*domain.Question{}, nil
	}
	exec := GetExecutor(ctx, a.db)
	where, args := questionWhere(filter)
	query := `SELECT ` + questionColumns + ` FROM questions` + where +
		` ORDER BY id OFFSET ? ROWS FETCH NEXT ? ROWS ONLY`
	args = append(args, page.Offset(), page.Size)

	var rows []models.Question
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return toDomainQuestions(rows), nil
}

func (a *QuestionDatabaseAdapter) CountQuestions(ctx context.Context, filter domain.QuestionFilter) (int, error) {
	exec := GetExecutor(ctx, a.db)
	where, args := questionWhere(filter)
	var count int
	if err := exec.GetContext(ctx, &count, exec.Rebind(`SELECT COUNT(*) FROM questions`+where), args...); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

func (a *QuestionDatabaseAdapter) GetQuestion(ctx context.Context, id int64) (*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)
	var row models.Question
	query := exec.Rebind(`SELECT ` + questionColumns + ` FROM questions WHERE id = ?`)
	if err := exec.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question %d: %w", id, err)
	}
	return toDomainQuestion(&row), nil
}

func (a *QuestionDatabaseAdapter) CreateQuestion(ctx context.Context, question *domain.Question) error {
	if question == nil {
		return fmt.Errorf("cannot save nil question")
	}
	m := toModelQuestion(question)
	id, err := insertReturningID(ctx, GetExecutor(ctx, a.db),
		`INSERT INTO questions (question, answer, category, difficulty) VALUES (?, ?, ?, ?)`,
		m.Question, m.Answer, m.Category, m.Difficulty,
	)
	if err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}
	question.ID = id
	return nil
}

// DeleteQuestion does not inspect RowsAffected; go-ora reports 0 for it.
// Callers check existence first.
func (a *QuestionDatabaseAdapter) DeleteQuestion(ctx context.Context, id int64) error {
	exec := GetExecutor(ctx, a.db)
	if _, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM questions WHERE id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	return nil
}

func (a *QuestionDatabaseAdapter) ListQuizCandidates(ctx context.Context, categoryID int64, excludeIDs []int64) ([]*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)
	query := `SELECT ` + questionColumns + ` FROM questions WHERE category = ?`
	args := []interface{}{categoryID}
	if len(excludeIDs) > 0 {
		var err error
		query, args, err = sqlx.In(query+` AND id NOT IN (?)`, categoryID, excludeIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to expand excluded ids: %w", err)
		}
	}
	query += ` ORDER BY id`

	var rows []models.Question
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list quiz candidates: %w", err)
	}
	return toDomainQuestions(rows), nil
}

func toDomainQuestion(m *models.Question) *domain.Question {
	return &domain.Question{
		ID:         m.ID,
		Question:   m.Question,
		Answer:     m.Answer,
		CategoryID: m.Category,
		Difficulty: m.Difficulty,
	}
}

func toDomainQuestions(rows []models.Question) []*domain.Question {
	questions := make([]*domain.Question, len(rows))
	for i := range rows {
		questions[i] = toDomainQuestion(&rows[i])
	}
	return questions
}

func toModelQuestion(q *domain.Question) *models.Question {
	return &models.Question{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}
