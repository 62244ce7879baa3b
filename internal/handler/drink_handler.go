package handler

import (
	"trivia-coffee/internal/dto"
	"trivia-coffee/internal/middleware"
	"trivia-coffee/internal/service"

	"github.com/gofiber/fiber/v2"
)

// DrinkHandler handles coffee shop menu requests
type DrinkHandler struct {
	service service.DrinkService
}

func NewDrinkHandler(service service.DrinkService) *DrinkHandler {
	return &DrinkHandler{service: service}
}

// GetDrinks godoc
// @Summary List drinks
// @Description Public menu; ingredient names are redacted
// @Tags drinks
// @Produce json
// @Success 200 {object} dto.DrinksShortResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /drinks [get]
func (h *DrinkHandler) GetDrinks(c *fiber.Ctx) error {
	resp, err := h.service.ListDrinks(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetDrinksDetail godoc
// @Summary List drinks with full recipes
// @Tags drinks
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.DrinksLongResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /drinks-detail [get]
func (h *DrinkHandler) GetDrinksDetail(c *fiber.Ctx) error {
	resp, err := h.service.ListDrinkDetails(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateDrink godoc
// @Summary Create a drink
// @Description The recipe may be a single ingredient object or a list of them
// @Tags drinks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateDrinkRequest true "New drink"
// @Success 200 {object} dto.DrinksLongResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /drinks [post]
func (h *DrinkHandler) CreateDrink(c *fiber.Ctx) error {
	var req dto.CreateDrinkRequest
	if err := bindJSON(c, &req, false); err != nil {
		return err
	}

	resp, err := h.service.CreateDrink(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateDrink godoc
// @Summary Update a drink
// @Description Only the supplied fields change
// @Tags drinks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Drink ID"
// @Param request body dto.UpdateDrinkRequest true "Fields to change"
// @Success 200 {object} dto.DrinksLongResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /drinks/{id} [patch]
func (h *DrinkHandler) UpdateDrink(c *fiber.Ctx) error {
	var req dto.UpdateDrinkRequest
	// An empty update is rejected by the service once the drink is known to exist.
	if err := bindJSON(c, &req, true); err != nil {
		return err
	}

	resp, err := h.service.UpdateDrink(c.UserContext(), middleware.ParamID(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteDrink godoc
// @Summary Delete a drink
// @Tags drinks
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Drink ID"
// @Success 200 {object} dto.DeleteDrinkResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /drinks/{id} [delete]
func (h *DrinkHandler) DeleteDrink(c *fiber.Ctx) error {
	resp, err := h.service.DeleteDrink(c.UserContext(), middleware.ParamID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
