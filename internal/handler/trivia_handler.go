package handler

import (
	"trivia-coffee/internal/dto"
	"trivia-coffee/internal/middleware"
	"trivia-coffee/internal/service"
	"trivia-coffee/internal/util"
	"trivia-coffee/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// TriviaHandler handles category and question HTTP requests
type TriviaHandler struct {
	service   service.TriviaService
	validator *validation.Validator
}

// NewTriviaHandler creates a new TriviaHandler instance
func NewTriviaHandler(service service.TriviaService, validator *validation.Validator) *TriviaHandler {
	return &TriviaHandler{
		service:   service,
		validator: validator,
	}
}

// GetCategories godoc
// @Summary List categories
// @Description Returns every category as an id to type map
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /categories [get]
func (h *TriviaHandler) GetCategories(c *fiber.Ctx) error {
	resp, err := h.service.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestions godoc
// @Summary List questions
// @Description Returns a page of ten questions together with all categories
// @Tags questions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuestionsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions [get]
func (h *TriviaHandler) GetQuestions(c *fiber.Ctx) error {
	resp, err := h.service.ListQuestions(c.UserContext(), util.ParsePage(c.Query("page")))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Param page query int false "Page of the remaining questions to return" default(1)
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /questions/{id} [delete]
func (h *TriviaHandler) DeleteQuestion(c *fiber.Ctx) error {
	resp, err := h.service.DeleteQuestion(c.UserContext(), middleware.ParamID(c), util.ParsePage(c.Query("page")))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateQuestion godoc
// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.CreateQuestionRequest true "New question"
// @Success 200 {object} dto.CreateQuestionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /questions [post]
func (h *TriviaHandler) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := bindJSON(c, &req, false); err != nil {
		return err
	}
	if err := h.validator.Struct(&req); err != nil {
		return err
	}

	resp, err := h.service.CreateQuestion(c.UserContext(), &req, util.ParsePage(c.Query("page")))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SearchQuestions godoc
// @Summary Search questions
// @Description Case-insensitive substring search on the question text
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.SearchQuestionsRequest true "Search term"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuestionsResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /questions/search [post]
func (h *TriviaHandler) SearchQuestions(c *fiber.Ctx) error {
	var req dto.SearchQuestionsRequest
	if err := bindJSON(c, &req, true); err != nil {
		return err
	}

	resp, err := h.service.SearchQuestions(c.UserContext(), &req, util.ParsePage(c.Query("page")))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestionsByCategory godoc
// @Summary List the questions of a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuestionsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /categories/{id}/questions [get]
func (h *TriviaHandler) GetQuestionsByCategory(c *fiber.Ctx) error {
	resp, err := h.service.ListQuestionsByCategory(c.UserContext(), middleware.ParamID(c), util.ParsePage(c.Query("page")))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
