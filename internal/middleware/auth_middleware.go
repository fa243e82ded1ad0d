package middleware

import (
	"strings"

	"sbfoods/internal/models"
	"sbfoods/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Key under which the resolved user is stored in the request locals.
const userLocal = "user"

// AuthRequired verifies the bearer token and resolves it to a live user
// record. A missing header, malformed token, expired token, and deleted
// user all produce the same generic 401 so callers cannot tell which check
// failed.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Access denied. No token provided.",
			})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token.",
			})
		}

		user, err := authService.UserFromToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token.",
			})
		}

		c.Locals(userLocal, user)
		return c.Next()
	}
}

// RoleRequired allows only the given roles through, and additionally blocks
// restaurant accounts that have not been approved yet. Must run after
// AuthRequired.
func RoleRequired(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(userLocal).(*models.User)
		if !ok || user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Access denied.",
			})
		}

		allowed := false
		for _, role := range roles {
			if user.Role == role {
				allowed = true
				break
			}
		}
		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Insufficient permissions.",
			})
		}

		if user.Role == models.RoleRestaurant && !user.IsApproved {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Restaurant account pending approval.",
			})
		}

		return c.Next()
	}
}

// CurrentUser returns the user resolved by AuthRequired, or nil outside an
// authenticated request.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocal).(*models.User)
	return user
}
