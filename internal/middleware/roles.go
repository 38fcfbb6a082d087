package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sepandsoft/admin-directory/internal/dto"
	"github.com/sepandsoft/admin-directory/internal/identity"
)

// RequireRoles rejects any caller whose token role is not in the allow-list.
// Runs after JWTProtected.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := identity.FromContext(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		for _, role := range roles {
			if caller.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "you do not have permission to perform this action",
		})
	}
}
