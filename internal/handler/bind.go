package handler

import (
	"bytes"
	"encoding/json"

	"trivia-coffee/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// bindJSON decodes the request body into dst. Unless allowEmpty is set,
// a missing body and an empty object are rejected like malformed JSON.
func bindJSON(c *fiber.Ctx, dst interface{}, allowEmpty bool) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		if allowEmpty {
			return nil
		}
		return domain.NewBadRequestError("request body is required")
	}

	decode := c.App().Config().JSONDecoder
	if err := decode(body, dst); err != nil {
		return domain.NewError(domain.CodeBadRequest, "malformed JSON body", err)
	}
	if allowEmpty {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := decode(body, &fields); err != nil || len(fields) == 0 {
		return domain.NewBadRequestError("request body is empty")
	}
	return nil
}
