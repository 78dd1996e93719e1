package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

// RoleHandler maneja el CRUD de roles.
type RoleHandler struct {
	uc  *usecase.RoleUseCase
	log *logger.Logger
}

// NewRoleHandler construye el handler de roles.
func NewRoleHandler(uc *usecase.RoleUseCase, log *logger.Logger) *RoleHandler {
	return &RoleHandler{uc: uc, log: log}
}

// Create crea un rol nuevo.
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetEmployeeID(c), in)
	if err != nil {
		return mapDomainError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List roles activos paginados.
func (h *RoleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "parámetros de paginación inválidos")
	}
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		return mapDomainError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID un rol activo.
func (h *RoleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update edita un rol.
func (h *RoleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetEmployeeID(c), c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete baja lógica de un rol.
func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetEmployeeID(c), c.Params("id")); err != nil {
		return mapDomainError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListAssignable roles que el actor puede asignar (debajo de su nivel).
func (h *RoleHandler) ListAssignable(c *fiber.Ctx) error {
	out, err := h.uc.ListAssignable(c.Context(), GetEmployeeID(c))
	if err != nil {
		return mapDomainError(c, h.log, err)
	}
	return c.JSON(out)
}
