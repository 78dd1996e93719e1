package entity

import (
	"time"

	"github.com/jhoicas/Empleados-api/internal/domain"
)

// Edad mínima para registrarse o ser dado de alta.
const MinAge = 18

// Status estado del ciclo de vida de un empleado. Terminated es terminal:
// ninguna operación lo revierte. Los flags enabled/is_active existen solo
// como columnas en la tabla employees.
type Status string

const (
	StatusPendingApproval Status = "pending_approval"
	StatusApproved        Status = "approved"
	StatusTerminated      Status = "terminated"
)

// Employee representa a una persona de la organización. Las referencias a
// manager y aprobador son débiles (solo IDs, se resuelven vía repositorio)
// para no armar grafos circulares en memoria.
type Employee struct {
	ID             string
	Name           string
	Email          string
	DocumentNumber string
	Phone          string
	BirthDate      time.Time
	RoleID         string
	Role           *Role // hidratado por el repositorio, puede ser nil
	ManagerID      *string
	Status         Status
	ApprovedAt     *time.Time
	ApprovedByID   *string
	PasswordHash   string // nunca se serializa fuera del dominio
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Enabled indica si el empleado puede operar (pasó la aprobación).
func (e *Employee) Enabled() bool {
	return e.Status == StatusApproved
}

// Active indica si el registro no fue dado de baja.
func (e *Employee) Active() bool {
	return e.Status != StatusTerminated
}

// AgeAt calcula la edad en años cumplidos a la fecha dada.
func (e *Employee) AgeAt(at time.Time) int {
	years := at.Year() - e.BirthDate.Year()
	anniversary := e.BirthDate.AddDate(years, 0, 0)
	if anniversary.After(at) {
		years--
	}
	return years
}

// ValidateMinAge verifica la edad mínima al momento dado.
func (e *Employee) ValidateMinAge(now time.Time) error {
	if e.AgeAt(now) < MinAge {
		return domain.NewValidationError("birth_date", "el empleado debe ser mayor de 18 años")
	}
	return nil
}

// Approve transición PendingApproval -> Approved. Re-aprobar es conflicto,
// nunca un no-op silencioso; un empleado dado de baja no puede aprobarse.
func (e *Employee) Approve(approverID string, now time.Time) error {
	switch e.Status {
	case StatusApproved:
		return domain.ErrAlreadyApproved
	case StatusTerminated:
		return domain.ErrEmployeeTerminated
	}
	e.Status = StatusApproved
	e.ApprovedAt = &now
	e.ApprovedByID = &approverID
	e.UpdatedAt = now
	return nil
}

// Reject transición PendingApproval -> Terminated. El motivo es solo para
// auditoría y no afecta el resultado.
func (e *Employee) Reject(now time.Time) error {
	switch e.Status {
	case StatusApproved:
		return domain.ErrAlreadyApproved
	case StatusTerminated:
		return domain.ErrEmployeeTerminated
	}
	e.Status = StatusTerminated
	e.UpdatedAt = now
	return nil
}

// Terminate baja lógica (soft delete). Estado terminal.
func (e *Employee) Terminate(now time.Time) error {
	if e.Status == StatusTerminated {
		return domain.ErrEmployeeTerminated
	}
	e.Status = StatusTerminated
	e.UpdatedAt = now
	return nil
}
