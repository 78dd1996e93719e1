package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/pkg/jwt"
)

// Locals keys para el empleado autenticado en Fiber.
const (
	LocalEmployeeID = "employee_id"
	LocalRoleID     = "role_id"
)

// AuthMiddleware valida el Bearer Token JWT y deja employee_id y role_id
// en c.Locals. Las decisiones de jerarquía no se toman acá: cada caso de
// uso recarga al actor desde la DB.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		employeeID, roleID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalEmployeeID, employeeID)
		c.Locals(LocalRoleID, roleID)
		return c.Next()
	}
}

// GetEmployeeID devuelve el ID del empleado autenticado (después del
// middleware de auth).
func GetEmployeeID(c *fiber.Ctx) string {
	v := c.Locals(LocalEmployeeID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRoleID devuelve el role_id del token.
func GetRoleID(c *fiber.Ctx) string {
	v := c.Locals(LocalRoleID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
