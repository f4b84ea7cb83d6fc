package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"resume-tailor/internal/auth"
)

const localUserID = "user_id"

// RequireAuth validates the Bearer token and stores the user id in request
// locals for downstream handlers.
func RequireAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(raw) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(errorBody{Error: "missing bearer token"})
		}
		userID, err := auth.ParseToken(jwtSecret, strings.TrimSpace(raw))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(errorBody{Error: "invalid token"})
		}
		c.Locals(localUserID, userID)
		return c.Next()
	}
}

func currentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(localUserID).(string)
	return id
}
