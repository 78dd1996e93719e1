package dto

import (
	"time"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// CreateEmployeeRequest alta directa por un superior (queda aprobado).
type CreateEmployeeRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	DocumentNumber string `json:"document_number"`
	Phone          string `json:"phone"`
	BirthDate      string `json:"birth_date"` // formato 2006-01-02
	Password       string `json:"password"`
	RoleID         string `json:"role_id"`
	ManagerID      string `json:"manager_id"`
}

// UpdateEmployeeRequest edición de un empleado. RoleID/ManagerID vacíos
// significan "sin cambio"; en self-edit cambiar rol o manager está prohibido.
type UpdateEmployeeRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	RoleID    string `json:"role_id"`
	ManagerID string `json:"manager_id"`
}

// ApproveEmployeeRequest decisión sobre un registro pendiente. El motivo
// del rechazo es opcional y solo para auditoría.
type ApproveEmployeeRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason"`
}

// ChangePasswordRequest cambio de la propia contraseña.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ResetPasswordResponse contraseña temporal generada; se entrega una sola
// vez y no se vuelve a exponer.
type ResetPasswordResponse struct {
	TemporaryPassword string `json:"temporary_password"`
}

// EmployeeResponse salida de un empleado (sin hash de credenciales).
type EmployeeResponse struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	DocumentNumber string        `json:"document_number"`
	Phone          string        `json:"phone,omitempty"`
	BirthDate      string        `json:"birth_date"`
	Role           *RoleResponse `json:"role,omitempty"`
	RoleID         string        `json:"role_id"`
	ManagerID      *string       `json:"manager_id,omitempty"`
	Status         string        `json:"status"`
	Enabled        bool          `json:"enabled"`
	ApprovedAt     *time.Time    `json:"approved_at,omitempty"`
	ApprovedByID   *string       `json:"approved_by_id,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// ToEmployeeResponse convierte la entidad a su representación de salida.
func ToEmployeeResponse(e *entity.Employee) *EmployeeResponse {
	if e == nil {
		return nil
	}
	return &EmployeeResponse{
		ID:             e.ID,
		Name:           e.Name,
		Email:          e.Email,
		DocumentNumber: e.DocumentNumber,
		Phone:          e.Phone,
		BirthDate:      e.BirthDate.Format("2006-01-02"),
		Role:           ToRoleResponse(e.Role),
		RoleID:         e.RoleID,
		ManagerID:      e.ManagerID,
		Status:         string(e.Status),
		Enabled:        e.Enabled(),
		ApprovedAt:     e.ApprovedAt,
		ApprovedByID:   e.ApprovedByID,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// ToEmployeeResponses convierte un slice de empleados.
func ToEmployeeResponses(emps []*entity.Employee) []*EmployeeResponse {
	out := make([]*EmployeeResponse, 0, len(emps))
	for _, e := range emps {
		out = append(out, ToEmployeeResponse(e))
	}
	return out
}
