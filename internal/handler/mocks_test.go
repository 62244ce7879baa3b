package handler_test

import (
	"context"

	"trivia-coffee/internal/dto"
)

type mockTriviaService struct {
	ListCategoriesFunc          func(ctx context.Context) (*dto.CategoriesResponse, error)
	ListQuestionsFunc           func(ctx context.Context, page int) (*dto.QuestionsResponse, error)
	DeleteQuestionFunc          func(ctx context.Context, id int64, page int) (*dto.DeleteQuestionResponse, error)
	CreateQuestionFunc          func(ctx context.Context, req *dto.CreateQuestionRequest, page int) (*dto.CreateQuestionResponse, error)
	SearchQuestionsFunc         func(ctx context.Context, req *dto.SearchQuestionsRequest, page int) (*dto.QuestionsResponse, error)
	ListQuestionsByCategoryFunc func(ctx context.Context, categoryID int64, page int) (*dto.QuestionsResponse, error)
}

func (m *mockTriviaService) ListCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	panic("ListCategoriesFunc not implemented")
}

func (m *mockTriviaService) ListQuestions(ctx context.Context, page int) (*dto.QuestionsResponse, error) {
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx, page)
	}
	panic("ListQuestionsFunc not implemented")
}

func (m *mockTriviaService) DeleteQuestion(ctx context.Context, id int64, page int) (*dto.DeleteQuestionResponse, error) {
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, id, page)
	}
	panic("DeleteQuestionFunc not implemented")
}

func (m *mockTriviaService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest, page int) (*dto.CreateQuestionResponse, error) {
	if m.CreateQuestionFunc != nil {
		return m.CreateQuestionFunc(ctx, req, page)
	}
	panic("CreateQuestionFunc not implemented")
}

func (m *mockTriviaService) SearchQuestions(ctx context.Context, req *dto.SearchQuestionsRequest, page int) (*dto.QuestionsResponse, error) {
	if m.SearchQuestionsFunc != nil {
		return m.SearchQuestionsFunc(ctx, req, page)
	}
	panic("SearchQuestionsFunc not implemented")
}

func (m *mockTriviaService) ListQuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.QuestionsResponse, error) {
	if m.ListQuestionsByCategoryFunc != nil {
		return m.ListQuestionsByCategoryFunc(ctx, categoryID, page)
	}
	panic("ListQuestionsByCategoryFunc not implemented")
}

type mockQuizService struct {
	PlayQuizFunc func(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

func (m *mockQuizService) PlayQuiz(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	if m.PlayQuizFunc != nil {
		return m.PlayQuizFunc(ctx, req)
	}
	panic("PlayQuizFunc not implemented")
}

type mockDrinkService struct {
	ListDrinksFunc       func(ctx context.Context) (*dto.DrinksShortResponse, error)
	ListDrinkDetailsFunc func(ctx context.Context) (*dto.DrinksLongResponse, error)
	CreateDrinkFunc      func(ctx context.Context, req *dto.CreateDrinkRequest) (*dto.DrinksLongResponse, error)
	UpdateDrinkFunc      func(ctx context.Context, id int64, req *dto.UpdateDrinkRequest) (*dto.DrinksLongResponse, error)
	DeleteDrinkFunc      func(ctx context.Context, id int64) (*dto.DeleteDrinkResponse, error)
}

func (m *mockDrinkService) ListDrinks(ctx context.Context) (*dto.DrinksShortResponse, error) {
	if m.ListDrinksFunc != nil {
		return m.ListDrinksFunc(ctx)
	}
	panic("ListDrinksFunc not implemented")
}

func (m *mockDrinkService) ListDrinkDetails(ctx context.Context) (*dto.DrinksLongResponse, error) {
	if m.ListDrinkDetailsFunc != nil {
		return m.ListDrinkDetailsFunc(ctx)
	}
	panic("ListDrinkDetailsFunc not implemented")
}

func (m *mockDrinkService) CreateDrink(ctx context.Context, req *dto.CreateDrinkRequest) (*dto.DrinksLongResponse, error) {
	if m.CreateDrinkFunc != nil {
		return m.CreateDrinkFunc(ctx, req)
	}
	panic("CreateDrinkFunc not implemented")
}

func (m *mockDrinkService) UpdateDrink(ctx context.Context, id int64, req *dto.UpdateDrinkRequest) (*dto.DrinksLongResponse, error) {
	if m.UpdateDrinkFunc != nil {
		return m.UpdateDrinkFunc(ctx, id, req)
	}
	panic("UpdateDrinkFunc not implemented")
}

func (m *mockDrinkService) DeleteDrink(ctx context.Context, id int64) (*dto.DeleteDrinkResponse, error) {
	if m.DeleteDrinkFunc != nil {
		return m.DeleteDrinkFunc(ctx, id)
	}
	panic("DeleteDrinkFunc not implemented")
}
