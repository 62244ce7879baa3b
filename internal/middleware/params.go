package middleware

import (
	"strconv"

	"trivia-coffee/internal/domain"

	"github.com/gofiber/fiber/v2"
)

const idKey = "validated_id"

// ValidateIDParam parses the integer path parameter name.
// A value that is not an integer names no resource, so it is a 404.
func ValidateIDParam(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params(name), 10, 64)
		if err != nil {
			return domain.NewNotFoundError("invalid " + name + " " + strconv.Quote(c.Params(name)))
		}
		c.Locals(idKey, id)
		return c.Next()
	}
}

// ParamID returns the id stored by ValidateIDParam.
func ParamID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(idKey).(int64)
	return id
}
