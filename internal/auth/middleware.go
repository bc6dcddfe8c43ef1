package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/userplatform/platform-services/pkg/util"
)

const claimsKey = "auth_claims"

// RequireAuth returns the middleware guarding resource-service endpoints.
// Every verification failure yields the same 401 body so the middleware
// never reveals why a token was rejected.
func RequireAuth(tokens *TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := ExtractBearer(c.Get("Authorization"))
		if token == "" {
			return util.NewUnauthorized("Unauthorized")
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			return util.NewUnauthorized("Unauthorized")
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// ClaimsFromContext retrieves the verified claims set by RequireAuth.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(claimsKey).(*Claims)
	return claims, ok
}
