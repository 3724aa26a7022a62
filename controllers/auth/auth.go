package authController

import (
	"crypto/subtle"
	"log"

	"shattak/config"
	"shattak/middleware"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// AdminLogin checks the shared admin password and issues the session token.
// The hashed variant is preferred; the plaintext env value is a fallback for
// local setups and is compared in constant time.
func AdminLogin(c *fiber.Ctx) error {
	password, ok := c.Locals("password").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !checkAdminPassword(password) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	token, err := middleware.GenerateAdminJWT()
	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"admin": fiber.Map{"role": "ADMIN"},
	})
}

func checkAdminPassword(password string) bool {
	if hash := config.AppConfig.AdminPasswordHash; hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	expected := config.AppConfig.AdminPassword
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(password)) == 1
}

// Logout exists so the client has an explicit end-of-session call. Tokens are
// stateless, so there is nothing to revoke server side.
func Logout(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out!", nil)
}

// Session reports the authenticated admin identity for an already verified
// token. The gate middleware has run by the time this handler executes.
func Session(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session active!", fiber.Map{
		"admin": fiber.Map{"role": c.Locals("role")},
	})
}
