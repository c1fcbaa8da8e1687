package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jeongjingoo/tech/internal/services"
)

const claimsKey = "technician"

// TokenParser validates access tokens.
type TokenParser interface {
	Parse(token string) (*services.Claims, error)
}

// JWTOptional attaches the caller's claims when a bearer token is present.
// Requests without a token pass through; a bad token is rejected.
func JWTOptional(parser TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Next()
		}

		claims, err := parser.Parse(strings.TrimSpace(auth[7:]))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}
		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// ClaimsFrom returns the claims stored by JWTOptional, if any.
func ClaimsFrom(c *fiber.Ctx) (*services.Claims, bool) {
	claims, ok := c.Locals(claimsKey).(*services.Claims)
	return claims, ok && claims != nil
}
