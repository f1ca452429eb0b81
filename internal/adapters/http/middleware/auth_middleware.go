package middleware

import (
	"strings"

	"hoteldesk/internal/config"
	"hoteldesk/internal/pkg/jwt"
	"hoteldesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ClaimsKey is the Locals key the session claims are stored under
const ClaimsKey = "claims"

// AuthMiddleware validates the session token and stores its claims for
// the handler. Missing and expired tokens are 401; a token that fails
// verification for any other reason is 403.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		// 1. Try Authorization header
		authHeader := c.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			accessToken = strings.TrimPrefix(authHeader, "Bearer ")
		}

		// 2. Fall back to cookie
		if accessToken == "" {
			accessToken = c.Cookies("access_token")
		}

		// 3. No token found
		if accessToken == "" {
			return response.Unauthorized(c, "Authentication token required")
		}

		// 4. Validate token
		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Token expired")
			}
			return response.Forbidden(c, "Invalid token")
		}

		// 5. Set claims in context
		c.Locals(ClaimsKey, claims)

		return c.Next()
	}
}

// GetClaims returns the session claims set by AuthMiddleware, or nil if
// the request did not pass through it.
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	claims, _ := c.Locals(ClaimsKey).(*jwt.Claims)
	return claims
}
