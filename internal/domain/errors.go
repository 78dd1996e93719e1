package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrEmployeeNotFound = errors.New("empleado no encontrado")
	ErrRoleNotFound     = errors.New("rol no encontrado")
	ErrManagerNotFound  = errors.New("el manager indicado no existe o está inactivo")

	ErrEmailAlreadyExists    = errors.New("el email ya está registrado")
	ErrDocumentAlreadyExists = errors.New("el número de documento ya está registrado")
	ErrRoleNameAlreadyExists = errors.New("ya existe un rol activo con ese nombre")
	ErrRoleInUse             = errors.New("el rol tiene empleados activos asignados")
	ErrAlreadyApproved       = errors.New("el empleado ya fue aprobado")
	ErrDirectorAlreadyExists = errors.New("ya existe un director activo")
	ErrEmployeeTerminated    = errors.New("el empleado está dado de baja")

	ErrForbidden    = errors.New("acceso denegado")
	ErrUnauthorized = errors.New("no autorizado")
	// ErrAccountPending distingue el mensaje de cuentas sin aprobar; a nivel
	// funcional sigue siendo 401 igual que credenciales inválidas.
	ErrAccountPending = errors.New("la cuenta aún no fue aprobada")
)

// ValidationError falla de validación a nivel de campo (edad mínima,
// confirmación de password, formato de email, etc.).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación: %s: %s", e.Field, e.Message)
}

// NewValidationError construye una falla de validación para un campo.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsConflict indica si el error corresponde a un conflicto de estado
// (duplicados, rol en uso, re-aprobación, segundo bootstrap).
func IsConflict(err error) bool {
	return errors.Is(err, ErrEmailAlreadyExists) ||
		errors.Is(err, ErrDocumentAlreadyExists) ||
		errors.Is(err, ErrRoleNameAlreadyExists) ||
		errors.Is(err, ErrRoleInUse) ||
		errors.Is(err, ErrAlreadyApproved) ||
		errors.Is(err, ErrDirectorAlreadyExists) ||
		errors.Is(err, ErrEmployeeTerminated)
}

// IsNotFound indica si el error corresponde a un recurso inexistente o inactivo.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrEmployeeNotFound) ||
		errors.Is(err, ErrRoleNotFound) ||
		errors.Is(err, ErrManagerNotFound)
}
