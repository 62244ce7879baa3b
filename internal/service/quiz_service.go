package service

import (
	"context"
	"math/rand"

	"trivia-coffee/internal/domain"
	"trivia-coffee/internal/dto"
)

// QuizService picks the next question of a quiz
type QuizService interface {
	PlayQuiz(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

type quizService struct {
	categories domain.CategoryRepository
	questions  domain.QuestionRepository
	intN       func(n int) int
}

type QuizOption func(*quizService)

// WithRandom replaces the source of random indexes in [0, n).
func WithRandom(intN func(n int) int) QuizOption {
	return func(s *quizService) {
		s.intN = intN
	}
}

func NewQuizService(categories domain.CategoryRepository, questions domain.QuestionRepository, opts ...QuizOption) QuizService {
	s := &quizService{
		categories: categories,
		questions:  questions,
		intN:       rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlayQuiz returns a random question of the requested category not served before.
// Category 0 stands for a random category id in 1..count.
func (s *quizService) PlayQuiz(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	if req.QuizCategory == nil {
		return nil, domain.NewBadRequestError("quiz_category is required")
	}
	if req.QuizCategory.ID == nil {
		return nil, domain.NewBadRequestError("quiz_category.id is required")
	}

	categoryID := int64(*req.QuizCategory.ID)
	if categoryID == 0 {
		count, err := s.categories.CountCategories(ctx)
		if err != nil {
			return nil, domain.NewUnprocessableError("failed to count categories", err)
		}
		if count == 0 {
			return &dto.QuizResponse{Success: true}, nil
		}
		categoryID = int64(s.intN(count)) + 1
	}

	candidates, err := s.questions.ListQuizCandidates(ctx, categoryID, req.PreviousIDs())
	if err != nil {
		return nil, domain.NewUnprocessableError("failed to load quiz questions", err)
	}
	if len(candidates) == 0 {
		return &dto.QuizResponse{Success: true}, nil
	}

	question := toQuestionResponse(candidates[s.intN(len(candidates))])
	return &dto.QuizResponse{Success: true, Question: &question}, nil
}
