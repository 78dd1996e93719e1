package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

// EmployeeHandler maneja el CRUD de empleados, la cola de aprobaciones y
// las operaciones de credenciales.
type EmployeeHandler struct {
	uc  *usecase.EmployeeUseCase
	log *logger.Logger
}

// NewEmployeeHandler construye el handler de empleados.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase, log *logger.Logger) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, log: log}
}

// Create alta directa por un superior (queda aprobado).
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetEmployeeID(c), in)
	if err != nil {
		return mapDomainError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List empleados activos paginados.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
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

// GetByID un empleado activo.
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update edición de un empleado (o del propio registro).
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetEmployeeID(c), c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete baja lógica.
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetEmployeeID(c), c.Params("id")); err != nil {
		return mapDomainError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Approve resuelve un registro pendiente (aprobar o rechazar).
func (h *EmployeeHandler) Approve(c *fiber.Ctx) error {
	var in dto.ApproveEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Approve(c.Context(), GetEmployeeID(c), c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListPending registros pendientes visibles para el actor.
func (h *EmployeeHandler) ListPending(c *fiber.Ctx) error {
	out, err := h.uc.ListPending(c.Context(), GetEmployeeID(c))
	if err != nil {
		return mapDomainError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListSubordinates empleados que reportan al manager dado.
func (h *EmployeeHandler) ListSubordinates(c *fiber.Ctx) error {
	out, err := h.uc.ListSubordinates(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, h.log, err)
	}
	return c.JSON(out)
}

// ChangeOwnPassword cambio de la propia contraseña.
func (h *EmployeeHandler) ChangeOwnPassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := h.uc.ChangeOwnPassword(c.Context(), GetEmployeeID(c), in); err != nil {
		return mapDomainError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ResetPassword genera una contraseña temporal para el target.
func (h *EmployeeHandler) ResetPassword(c *fiber.Ctx) error {
	out, err := h.uc.ResetPassword(c.Context(), GetEmployeeID(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, h.log, err)
	}
	return c.JSON(out)
}
