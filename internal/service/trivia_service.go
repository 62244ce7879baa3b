package service

import (
	"context"
	"time"

	"trivia-coffee/internal/cache"
	"trivia-coffee/internal/domain"
	"trivia-coffee/internal/dto"
	"trivia-coffee/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// TriviaService defines the category and question operations
type TriviaService interface {
	ListCategories(ctx context.Context) (*dto.CategoriesResponse, error)
	ListQuestions(ctx context.Context, page int) (*dto.QuestionsResponse, error)
	DeleteQuestion(ctx context.Context, id int64, page int) (*dto.DeleteQuestionResponse, error)
	CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest, page int) (*dto.CreateQuestionResponse, error)
	SearchQuestions(ctx context.Context, req *dto.SearchQuestionsRequest, page int) (*dto.QuestionsResponse, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.QuestionsResponse, error)
}

type triviaService struct {
	categories domain.CategoryRepository
	questions  domain.QuestionRepository
	reads      *readCache
}

// NewTriviaService creates a new TriviaService. cache may be nil.
func NewTriviaService(categories domain.CategoryRepository, questions domain.QuestionRepository, cache domain.Cache, cacheTTL time.Duration) TriviaService {
	return &triviaService{
		categories: categories,
		questions:  questions,
		reads:      newReadCache(cache, cacheTTL),
	}
}

func (s *triviaService) allCategories(ctx context.Context) ([]*domain.Category, error) {
	return readThrough(ctx, s.reads, cache.CategoriesKey, s.categories.ListCategories)
}

func (s *triviaService) ListCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := s.allCategories(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list categories", err)
	}
	if len(categories) == 0 {
		return nil, domain.NewNotFoundError("no categories found")
	}
	return &dto.CategoriesResponse{
		Success:         true,
		Categories:      toCategoryMap(categories),
		TotalCategories: len(categories),
	}, nil
}

func (s *triviaService) ListQuestions(ctx context.Context, page int) (*dto.QuestionsResponse, error) {
	var (
		questions  []*domain.Question
		total      int
		categories []*domain.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		questions, err = s.questions.ListQuestions(gctx, domain.QuestionFilter{}, domain.NewPage(page))
		return err
	})
	g.Go(func() (err error) {
		total, err = s.questions.CountQuestions(gctx, domain.QuestionFilter{})
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.allCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("failed to list questions", err)
	}

	if len(questions) == 0 {
		return nil, domain.NewNotFoundError("no questions on this page")
	}
	return &dto.QuestionsResponse{
		Success:        true,
		Questions:      toQuestionResponses(questions),
		TotalQuestions: total,
		Categories:     toCategoryMap(categories),
	}, nil
}

// pageAndTotal returns one unfiltered page and the unfiltered total.
func (s *triviaService) pageAndTotal(ctx context.Context, page int) ([]dto.QuestionResponse, int, error) {
	var (
		questions []*domain.Question
		total     int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		questions, err = s.questions.ListQuestions(gctx, domain.QuestionFilter{}, domain.NewPage(page))
		return err
	})
	g.Go(func() (err error) {
		total, err = s.questions.CountQuestions(gctx, domain.QuestionFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return toQuestionResponses(questions), total, nil
}

func (s *triviaService) DeleteQuestion(ctx context.Context, id int64, page int) (*dto.DeleteQuestionResponse, error) {
	question, err := s.questions.GetQuestion(ctx, id)
	if err != nil {
		return nil, domain.NewUnprocessableError("failed to look up question", err)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(id)
	}

	if err := s.questions.DeleteQuestion(ctx, id); err != nil {
		logger.Get().Error("Failed to delete question", zap.Int64("id", id), zap.Error(err))
		return nil, domain.NewUnprocessableError("failed to delete question", err)
	}

	questions, total, err := s.pageAndTotal(ctx, page)
	if err != nil {
		return nil, domain.NewUnprocessableError("failed to reload questions", err)
	}
	return &dto.DeleteQuestionResponse{
		Success:        true,
		Deleted:        id,
		Questions:      questions,
		TotalQuestions: total,
	}, nil
}

func (s *triviaService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest, page int) (*dto.CreateQuestionResponse, error) {
	question := domain.NewQuestion(req.Question, req.Answer, int64(req.Category), req.Difficulty)
	if err := question.Validate(); err != nil {
		return nil, err
	}

	if err := s.questions.CreateQuestion(ctx, question); err != nil {
		logger.Get().Error("Failed to create question", zap.Int64("category", question.CategoryID), zap.Error(err))
		return nil, domain.NewUnprocessableError("failed to create question", err)
	}

	questions, total, err := s.pageAndTotal(ctx, page)
	if err != nil {
		return nil, domain.NewUnprocessableError("failed to reload questions", err)
	}
	return &dto.CreateQuestionResponse{
		Success:        true,
		Created:        question.ID,
		Questions:      questions,
		TotalQuestions: total,
	}, nil
}

func (s *triviaService) SearchQuestions(ctx context.Context, req *dto.SearchQuestionsRequest, page int) (*dto.QuestionsResponse, error) {
	filter := domain.QuestionFilter{SearchTerm: req.SearchTerm}

	var (
		questions []*domain.Question
		total     int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		questions, err = s.questions.ListQuestions(gctx, filter, domain.NewPage(page))
		return err
	})
	g.Go(func() (err error) {
		total, err = s.questions.CountQuestions(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewUnprocessableError("failed to search questions", err)
	}

	return &dto.QuestionsResponse{
		Success:        true,
		Questions:      toQuestionResponses(questions),
		TotalQuestions: total,
	}, nil
}

func (s *triviaService) ListQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.QuestionsResponse, error) {
	category, err := s.categories.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up category", err)
	}
	if category == nil {
		return nil, domain.NewNotFoundError("category not found")
	}

	filter := domain.QuestionFilter{CategoryID: categoryID}
	var (
		questions []*domain.Question
		total     int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		questions, err = s.questions.ListQuestions(gctx, filter, domain.NewPage(page))
		return err
	})
	g.Go(func() (err error) {
		total, err = s.questions.CountQuestions(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("failed to list category questions", err)
	}

	if len(questions) == 0 {
		return nil, domain.NewNotFoundError("no questions on this page")
	}
	return &dto.QuestionsResponse{
		Success:         true,
		Questions:       toQuestionResponses(questions),
		TotalQuestions:  total,
		CurrentCategory: &category.Type,
	}, nil
}

func toCategoryMap(categories []*domain.Category) map[int64]string {
	m := make(map[int64]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}

func toQuestionResponse(q *domain.Question) dto.QuestionResponse {
	return dto.QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}

func toQuestionResponses(questions []*domain.Question) []dto.QuestionResponse {
	out := make([]dto.QuestionResponse, len(questions))
	for i, q := range questions {
		out[i] = toQuestionResponse(q)
	}
	return out
}
