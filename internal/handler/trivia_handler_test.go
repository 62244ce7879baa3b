package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trivia-coffee/internal/domain"
	"trivia-coffee/internal/dto"
	"trivia-coffee/internal/handler"
	"trivia-coffee/internal/middleware"
	"trivia-coffee/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTriviaApp(svc *mockTriviaService) *fiber.App {
	h := handler.NewTriviaHandler(svc, validation.NewValidator())
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/categories", h.GetCategories)
	app.Get("/categories/:id/questions", middleware.ValidateIDParam("id"), h.GetQuestionsByCategory)
	app.Get("/questions", h.GetQuestions)
	app.Post("/questions", h.CreateQuestion)
	app.Post("/questions/search", h.SearchQuestions)
	app.Delete("/questions/:id", middleware.ValidateIDParam("id"), h.DeleteQuestion)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decodeErr(t *testing.T, raw []byte) middleware.ErrorResponse {
	t.Helper()
	var out middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func TestTriviaHandler_GetCategories(t *testing.T) {
	svc := &mockTriviaService{
		ListCategoriesFunc: func(ctx context.Context) (*dto.CategoriesResponse, error) {
			return &dto.CategoriesResponse{Success: true, Categories: map[int64]string{1: "Science"}, TotalCategories: 1}, nil
		},
	}

	resp, raw := doJSON(t, newTriviaApp(svc), http.MethodGet, "/categories", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, true, out["success"])
	assert.Equal(t, map[string]interface{}{"1": "Science"}, out["categories"])
	assert.EqualValues(t, 1, out["total_categories"])
}

func TestTriviaHandler_GetQuestions(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantPage int
	}{
		{"default page", "/questions", 1},
		{"explicit page", "/questions?page=3", 3},
		{"non numeric page", "/questions?page=abc", 1},
		{"negative page passed through", "/questions?page=-1", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPage int
			svc := &mockTriviaService{
				ListQuestionsFunc: func(ctx context.Context, page int) (*dto.QuestionsResponse, error) {
					gotPage = page
					return &dto.QuestionsResponse{Success: true}, nil
				},
			}
			resp, _ := doJSON(t, newTriviaApp(svc), http.MethodGet, tt.target, "")
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.wantPage, gotPage)
		})
	}
}

func TestTriviaHandler_GetQuestions_NotFound(t *testing.T) {
	svc := &mockTriviaService{
		ListQuestionsFunc: func(ctx context.Context, page int) (*dto.QuestionsResponse, error) {
			return nil, domain.NewNotFoundError("no questions on this page")
		},
	}

	resp, raw := doJSON(t, newTriviaApp(svc), http.MethodGet, "/questions?page=1000", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	out := decodeErr(t, raw)
	assert.False(t, out.Success)
	assert.Equal(t, http.StatusNotFound, out.Error)
	assert.Equal(t, "resource not found", out.Message)
}

func TestTriviaHandler_DeleteQuestion(t *testing.T) {
	var gotID int64
	svc := &mockTriviaService{
		DeleteQuestionFunc: func(ctx context.Context, id int64, page int) (*dto.DeleteQuestionResponse, error) {
			gotID = id
			if id == 404 {
				return nil, domain.NewQuestionNotFoundError(id)
			}
			return &dto.DeleteQuestionResponse{Success: true, Deleted: id}, nil
		},
	}
	app := newTriviaApp(svc)

	resp, raw := doJSON(t, app, http.MethodDelete, "/questions/7", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(7), gotID)
	assert.Contains(t, string(raw), `"deleted":7`)

	resp, _ = doJSON(t, app, http.MethodDelete, "/questions/404", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, "/questions/abc", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTriviaHandler_CreateQuestion(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCalled bool
	}{
		{
			name:       "valid",
			body:       `{"question": "Q?", "answer": "A", "category": "1", "difficulty": 2}`,
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "empty object",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no body",
			body:       "",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed",
			body:       `{"question": `,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing answer",
			body:       `{"question": "Q?", "category": 1, "difficulty": 2}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "difficulty out of range",
			body:       `{"question": "Q?", "answer": "A", "category": 1, "difficulty": 9}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			svc := &mockTriviaService{
				CreateQuestionFunc: func(ctx context.Context, req *dto.CreateQuestionRequest, page int) (*dto.CreateQuestionResponse, error) {
					called = true
					assert.Equal(t, dto.FlexibleID(1), req.Category)
					return &dto.CreateQuestionResponse{Success: true, Created: 21}, nil
				},
			}
			resp, _ := doJSON(t, newTriviaApp(svc), http.MethodPost, "/questions", tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestTriviaHandler_CreateQuestion_ServiceFailure(t *testing.T) {
	svc := &mockTriviaService{
		CreateQuestionFunc: func(ctx context.Context, req *dto.CreateQuestionRequest, page int) (*dto.CreateQuestionResponse, error) {
			return nil, domain.NewUnprocessableError("could not create question", errors.New("fk violation"))
		},
	}

	resp, raw := doJSON(t, newTriviaApp(svc), http.MethodPost, "/questions",
		`{"question": "Q?", "answer": "A", "category": 99, "difficulty": 1}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "unprocessable entity", decodeErr(t, raw).Message)
}

func TestTriviaHandler_SearchQuestions(t *testing.T) {
	var gotTerm string
	svc := &mockTriviaService{
		SearchQuestionsFunc: func(ctx context.Context, req *dto.SearchQuestionsRequest, page int) (*dto.QuestionsResponse, error) {
			gotTerm = req.SearchTerm
			return &dto.QuestionsResponse{Success: true, Questions: []dto.QuestionResponse{}}, nil
		},
	}
	app := newTriviaApp(svc)

	resp, _ := doJSON(t, app, http.MethodPost, "/questions/search", `{"searchTerm": "title"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "title", gotTerm)

	resp, _ = doJSON(t, app, http.MethodPost, "/questions/search", `{}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "", gotTerm)

	resp, _ = doJSON(t, app, http.MethodPost, "/questions/search", `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTriviaHandler_GetQuestionsByCategory(t *testing.T) {
	svc := &mockTriviaService{
		ListQuestionsByCategoryFunc: func(ctx context.Context, categoryID int64, page int) (*dto.QuestionsResponse, error) {
			if categoryID != 2 {
				return nil, domain.NewNotFoundError("category not found")
			}
			current := "Art"
			return &dto.QuestionsResponse{Success: true, CurrentCategory: &current}, nil
		},
	}
	app := newTriviaApp(svc)

	resp, raw := doJSON(t, app, http.MethodGet, "/categories/2/questions", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `"current_category":"Art"`)

	resp, _ = doJSON(t, app, http.MethodGet, "/categories/1000/questions", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTriviaHandler_MethodNotAllowed(t *testing.T) {
	resp, raw := doJSON(t, newTriviaApp(&mockTriviaService{}), http.MethodPatch, "/categories", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "method not allowed", decodeErr(t, raw).Message)
}
