package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"rental-webapp/ledger"
)

// Service is the ledger instance all handlers work against, set once
// at startup.
var Service *ledger.Ledger

func Setup(l *ledger.Ledger) {
	Service = l
}

func GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "success", "message": "ok", "data": nil})
}

func isAdminRole(c *fiber.Ctx) bool {
	token := c.Locals("identity").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	return claims["role"].(string) == "admin"
}

func identityLogin(c *fiber.Ctx) string {
	token := c.Locals("identity").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	return claims["username"].(string)
}
