package domain

import (
	"math"
	"strings"
)

// QuestionsPerPage is the fixed page size of every question listing.
const QuestionsPerPage = 10

const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Category represents a trivia category
type Category struct {
	ID   int64
	Type string
}

// Question represents a trivia question
type Question struct {
	ID         int64
	Question   string
	Answer     string
	CategoryID int64
	Difficulty int
}

// NewQuestion creates a new Question instance
func NewQuestion(question, answer string, categoryID int64, difficulty int) *Question {
	return &Question{
		Question:   strings.TrimSpace(question),
		Answer:     strings.TrimSpace(answer),
		CategoryID: categoryID,
		Difficulty: difficulty,
	}
}

// Validate validates the question
func (q *Question) Validate() error {
	if q.Question == "" {
		return NewUnprocessableError("question is required", nil)
	}
	if q.Answer == "" {
		return NewUnprocessableError("answer is required", nil)
	}
	if q.CategoryID <= 0 {
		return NewUnprocessableError("category is required", nil)
	}
	if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
		return NewUnprocessableError("difficulty must be between 1 and 5", nil)
	}
	return nil
}

// QuestionFilter narrows a question listing. Zero values match everything.
type QuestionFilter struct {
	CategoryID int64
	SearchTerm string
}

// Page describes a slice of a listing.
type Page struct {
	Number int
	Size   int
}

// NewPage returns page n of size QuestionsPerPage.
func NewPage(n int) Page {
	return Page{Number: n, Size: QuestionsPerPage}
}

// Offset is the number of rows skipped before this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Valid reports whether the page can contain rows at all and its offset fits in an int.
func (p Page) Valid() bool {
	return p.Number >= 1 && p.Size > 0 && p.Number <= math.MaxInt/p.Size
}
