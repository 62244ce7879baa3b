package domain

import (
	"fmt"
	"strings"
)

// Ingredient is one layer of a drink recipe
type Ingredient struct {
	Name  string
	Color string
	Parts int
}

// Recipe is the ordered list of ingredients making up a drink
type Recipe []Ingredient

// Drink represents an item of the coffee shop menu
type Drink struct {
	ID     int64
	Title  string
	Recipe Recipe
}

// NewDrink creates a new Drink instance
func NewDrink(title string, recipe Recipe) *Drink {
	return &Drink{
		Title:  strings.TrimSpace(title),
		Recipe: recipe,
	}
}

// Validate validates the drink
func (d *Drink) Validate() error {
	if d.Title == "" {
		return NewBadRequestError("title is required")
	}
	return d.Recipe.Validate()
}

// Validate validates every ingredient of the recipe
func (r Recipe) Validate() error {
	if len(r) == 0 {
		return NewUnprocessableError("recipe must contain at least one ingredient", nil)
	}
	for i, ingredient := range r {
		if strings.TrimSpace(ingredient.Name) == "" {
			return NewUnprocessableError(fmt.Sprintf("recipe[%d]: name is required", i), nil)
		}
		if strings.TrimSpace(ingredient.Color) == "" {
			return NewUnprocessableError(fmt.Sprintf("recipe[%d]: color is required", i), nil)
		}
		if ingredient.Parts <= 0 {
			return NewUnprocessableError(fmt.Sprintf("recipe[%d]: parts must be positive", i), nil)
		}
	}
	return nil
}
