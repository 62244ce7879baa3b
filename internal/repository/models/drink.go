package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Ingredient is the stored JSON shape of one recipe entry
type Ingredient struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

// Recipe is stored as a JSON array in a text (postgres) or CLOB (oracle) column.
type Recipe []Ingredient

// Value implements the driver.Valuer interface
func (r Recipe) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (r *Recipe) Scan(value interface{}) error {
	if value == nil {
		*r = Recipe{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("Recipe Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*r = Recipe{}
		return nil
	}
	// Single ingredient objects were accepted by older clients and may still be stored.
	if bytesToParse[0] == '{' {
		var one Ingredient
		if err := json.Unmarshal(bytesToParse, &one); err != nil {
			return err
		}
		*r = Recipe{one}
		return nil
	}
	return json.Unmarshal(bytesToParse, (*[]Ingredient)(r))
}

// Drink row of the drinks table
type Drink struct {
	ID     int64  `db:"id"`
	Title  string `db:"title"`
	Recipe Recipe `db:"recipe"`
}
