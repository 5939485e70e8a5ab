package middleware

import (
	"strings"

	"github.com/GlobisHR/site_service/internal/helper"
	"github.com/gofiber/fiber/v2"
)

// AdminAuth guards the back-office routes. The token may arrive in the
// access_token cookie or the Authorization header.
func AdminAuth(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := strings.TrimSpace(ctx.Cookies("access_token"))

		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		admin, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		ctx.Locals("admin", admin)
		return ctx.Next()
	}
}
