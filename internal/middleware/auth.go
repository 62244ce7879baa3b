package middleware

import (
	"trivia-coffee/internal/auth"
	"trivia-coffee/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// PrincipalKey is the fiber.Ctx locals key of the verified *domain.Principal
const PrincipalKey = "principal"

// RequiresPermission rejects the request unless it carries a bearer token
// granting permission. Handlers behind it never run on failure.
func RequiresPermission(verifier auth.TokenVerifier, permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := auth.TokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}
		principal, err := verifier.Verify(c.UserContext(), token)
		if err != nil {
			return err
		}
		if err := auth.CheckPermission(principal, permission); err != nil {
			return err
		}
		c.Locals(PrincipalKey, principal)
		return c.Next()
	}
}

// GetPrincipal returns the principal stored by RequiresPermission, or nil.
func GetPrincipal(c *fiber.Ctx) *domain.Principal {
	principal, _ := c.Locals(PrincipalKey).(*domain.Principal)
	return principal
}
