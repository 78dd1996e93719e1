package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/Empleados-api/internal/domain"
)

// Índices únicos de las migraciones; el nombre del constraint decide a
// qué conflicto de dominio se traduce la violación.
const (
	constraintEmployeeEmail    = "employees_email_active_idx"
	constraintEmployeeDocument = "employees_document_active_idx"
	constraintRoleName         = "roles_name_active_idx"
)

// translateUniqueViolation mapea una violación de constraint único (23505)
// al conflicto de dominio correspondiente. Así una carrera entre dos
// registros con el mismo email termina en Conflict y no en un error crudo
// de la base.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}
	switch pgErr.ConstraintName {
	case constraintEmployeeEmail:
		return domain.ErrEmailAlreadyExists
	case constraintEmployeeDocument:
		return domain.ErrDocumentAlreadyExists
	case constraintRoleName:
		return domain.ErrRoleNameAlreadyExists
	}
	return err
}
