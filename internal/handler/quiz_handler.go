package handler

import (
	"trivia-coffee/internal/dto"
	"trivia-coffee/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz play requests
type QuizHandler struct {
	service service.QuizService
}

func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

// PlayQuiz godoc
// @Summary Get the next quiz question
// @Description Returns a random question of the category that is not in previous_questions. Category id 0 means any category.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Quiz state"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) PlayQuiz(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := bindJSON(c, &req, false); err != nil {
		return err
	}

	resp, err := h.service.PlayQuiz(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
