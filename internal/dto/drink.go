package dto

import (
	"bytes"
	"encoding/json"
)

// Ingredient is a recipe entry with every field exposed
type Ingredient struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

// ShortIngredient is a recipe entry with the ingredient name redacted
type ShortIngredient struct {
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

// RecipeInput accepts a recipe as a list of ingredients or as a single ingredient object.
type RecipeInput []Ingredient

func (r *RecipeInput) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var single Ingredient
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		*r = RecipeInput{single}
		return nil
	}
	var list []Ingredient
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return err
	}
	*r = list
	return nil
}

// DrinkShort is the public representation of a drink
// @Description Drink with a redacted recipe
type DrinkShort struct {
	ID     int64             `json:"id"`
	Title  string            `json:"title"`
	Recipe []ShortIngredient `json:"recipe"`
}

// DrinkLong is the staff representation of a drink
// @Description Drink with its full recipe
type DrinkLong struct {
	ID     int64        `json:"id"`
	Title  string       `json:"title"`
	Recipe []Ingredient `json:"recipe"`
}

// CreateDrinkRequest represents a new drink in the API request
// @Description Request body for creating a drink
type CreateDrinkRequest struct {
	Title  string      `json:"title"`
	Recipe RecipeInput `json:"recipe"`
}

// UpdateDrinkRequest carries the fields to change; absent fields are left untouched
// @Description Request body for updating a drink
type UpdateDrinkRequest struct {
	Title  *string     `json:"title"`
	Recipe RecipeInput `json:"recipe"`
}

// DrinksShortResponse lists drinks in their short form
type DrinksShortResponse struct {
	Success bool         `json:"success"`
	Status  int          `json:"status"`
	Drinks  []DrinkShort `json:"drinks"`
}

// DrinksLongResponse lists drinks in their long form
type DrinksLongResponse struct {
	Success bool        `json:"success"`
	Status  int         `json:"status"`
	Drinks  []DrinkLong `json:"drinks"`
}

// DeleteDrinkResponse is returned after a drink was removed
type DeleteDrinkResponse struct {
	Success bool  `json:"success"`
	Status  int   `json:"status"`
	Delete  int64 `json:"delete"`
}
