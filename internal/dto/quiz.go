package dto

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// FlexibleID accepts an id encoded either as a JSON number or a numeric string.
type FlexibleID int64

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(bytes.Trim(data, `"`)))
	if raw == "" || raw == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", raw, err)
	}
	*f = FlexibleID(n)
	return nil
}

// QuestionResponse represents a question in the API response
// @Description Trivia question
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CategoriesResponse maps category id to its type
// @Description All trivia categories
type CategoriesResponse struct {
	Success         bool             `json:"success"`
	Categories      map[int64]string `json:"categories"`
	TotalCategories int              `json:"total_categories"`
}

// QuestionsResponse is one page of a question listing
// @Description Paginated questions
type QuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	Categories      map[int64]string   `json:"categories,omitempty"`
	CurrentCategory *string            `json:"current_category"`
}

// DeleteQuestionResponse is returned after a question was removed
type DeleteQuestionResponse struct {
	Success        bool               `json:"success"`
	Deleted        int64              `json:"deleted"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

// CreateQuestionRequest represents a new question in the API request
// @Description Request body for creating a question
type CreateQuestionRequest struct {
	Question   string     `json:"question" validate:"required"`
	Answer     string     `json:"answer" validate:"required"`
	Category   FlexibleID `json:"category" validate:"gt=0"`
	Difficulty int        `json:"difficulty" validate:"min=1,max=5"`
}

// CreateQuestionResponse is returned after a question was created
type CreateQuestionResponse struct {
	Success        bool               `json:"success"`
	Created        int64              `json:"created"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

// SearchQuestionsRequest represents a search in the API request
// @Description Request body for searching questions
type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// QuizCategory is the category selected for a quiz; id 0 means all categories.
// ID is nil when the client left it out.
type QuizCategory struct {
	ID   *FlexibleID `json:"id"`
	Type string      `json:"type"`
}

// QuizRequest represents a request for the next quiz question
// @Description Request body for playing a quiz
type QuizRequest struct {
	PreviousQuestions []FlexibleID  `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// PreviousIDs returns the previously served question ids.
func (r *QuizRequest) PreviousIDs() []int64 {
	ids := make([]int64, 0, len(r.PreviousQuestions))
	for _, id := range r.PreviousQuestions {
		ids = append(ids, int64(id))
	}
	return ids
}

// QuizResponse carries the next question; Question is absent when the pool is exhausted
// @Description Next quiz question
type QuizResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question,omitempty"`
}
