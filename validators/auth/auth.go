package authValidator

import (
	"strings"

	"shattak/middleware"

	"github.com/gofiber/fiber/v2"
)

// AdminLogin validates the login request body.
func AdminLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Password string `json:"password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Password) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Password is required!", nil)
		}

		c.Locals("password", reqData.Password)
		return c.Next()
	}
}
