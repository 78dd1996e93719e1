package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Empleados-api/internal/application/auth"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	EmployeeUC *usecase.EmployeeUseCase
	RoleUC     *usecase.RoleUseCase
	JWTSecret  string
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público): registro, login y bootstrap del primer director
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/bootstrap", authHandler.Bootstrap)

	// Todo lo demás requiere token
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Employees (protegido)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.Log)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/pending", employeeHandler.ListPending)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
	employees.Post("/:id/approve", employeeHandler.Approve)
	employees.Get("/:id/subordinates", employeeHandler.ListSubordinates)
	employees.Post("/:id/reset-password", employeeHandler.ResetPassword)

	// Cambio de la propia contraseña
	protected.Put("/me/password", employeeHandler.ChangeOwnPassword)

	// Roles (protegido)
	roles := protected.Group("/roles")
	roleHandler := NewRoleHandler(deps.RoleUC, deps.Log)
	roles.Post("/", roleHandler.Create)
	roles.Get("/", roleHandler.List)
	roles.Get("/assignable", roleHandler.ListAssignable)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Put("/:id", roleHandler.Update)
	roles.Delete("/:id", roleHandler.Delete)
}
