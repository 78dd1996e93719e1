package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

var roleCols = []string{
	"id", "name", "hierarchy_level",
	"can_approve_registrations", "can_create_employees", "can_edit_employees",
	"can_delete_employees", "can_manage_roles",
	"is_active", "created_at", "updated_at",
}

func newRoleMock(t *testing.T) (pgxmock.PgxPoolIface, *RoleRepo) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewRoleRepository(mock)
}

func TestRoleRepo_GetByID(t *testing.T) {
	mock, repo := newRoleMock(t)
	now := time.Now()

	mock.ExpectQuery(`FROM roles WHERE id = \$1 AND is_active = true`).
		WithArgs("role-1").
		WillReturnRows(pgxmock.NewRows(roleCols).
			AddRow("role-1", "Gerente", 50, true, true, false, false, false, true, now, now))

	role, err := repo.GetByID(context.Background(), "role-1")
	require.NoError(t, err)
	require.NotNil(t, role)
	assert.Equal(t, "Gerente", role.Name)
	assert.Equal(t, 50, role.HierarchyLevel)
	assert.True(t, role.Has(entity.CapApproveRegistrations))
	assert.True(t, role.Has(entity.CapCreateEmployees))
	assert.False(t, role.Has(entity.CapManageRoles))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Sin filas el puerto devuelve (nil, nil), nunca un error de pgx crudo.
func TestRoleRepo_GetByID_SinFilas(t *testing.T) {
	mock, repo := newRoleMock(t)

	mock.ExpectQuery(`FROM roles WHERE id = \$1 AND is_active = true`).
		WithArgs("nope").
		WillReturnRows(pgxmock.NewRows(roleCols))

	role, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Una carrera que choca contra el índice único de nombre termina en el
// conflicto de dominio, no en el error de la base.
func TestRoleRepo_Create_NombreDuplicado(t *testing.T) {
	mock, repo := newRoleMock(t)
	now := time.Now()

	mock.ExpectExec(`INSERT INTO roles`).
		WithArgs("role-1", "Gerente", 50, false, false, false, false, false, true, now, now).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: constraintRoleName})

	err := repo.Create(context.Background(), &entity.Role{
		ID: "role-1", Name: "Gerente", HierarchyLevel: 50,
		Capabilities: entity.NewCapabilitySet(),
		IsActive:     true, CreatedAt: now, UpdatedAt: now,
	})
	assert.ErrorIs(t, err, domain.ErrRoleNameAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepo_Delete_BajaLogica(t *testing.T) {
	mock, repo := newRoleMock(t)

	mock.ExpectExec(`UPDATE roles SET is_active = false`).
		WithArgs("role-1", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.Delete(context.Background(), "role-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepo_ListBelowLevel(t *testing.T) {
	mock, repo := newRoleMock(t)
	now := time.Now()

	mock.ExpectQuery(`FROM roles WHERE is_active = true AND hierarchy_level < \$1`).
		WithArgs(60).
		WillReturnRows(pgxmock.NewRows(roleCols).
			AddRow("role-1", "Gerente", 50, true, false, false, false, false, true, now, now).
			AddRow("role-2", "Analista", 10, false, false, false, false, false, true, now, now))

	roles, err := repo.ListBelowLevel(context.Background(), 60)
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, "Gerente", roles[0].Name)
	assert.Equal(t, "Analista", roles[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslateUniqueViolation(t *testing.T) {
	cases := []struct {
		constraint string
		want       error
	}{
		{constraintEmployeeEmail, domain.ErrEmailAlreadyExists},
		{constraintEmployeeDocument, domain.ErrDocumentAlreadyExists},
		{constraintRoleName, domain.ErrRoleNameAlreadyExists},
	}
	for _, tc := range cases {
		err := translateUniqueViolation(&pgconn.PgError{Code: "23505", ConstraintName: tc.constraint})
		assert.ErrorIs(t, err, tc.want, tc.constraint)
	}

	// Otros códigos y constraints desconocidos pasan sin traducir.
	fk := &pgconn.PgError{Code: "23503"}
	assert.Equal(t, error(fk), translateUniqueViolation(fk))
	unknown := &pgconn.PgError{Code: "23505", ConstraintName: "otra_cosa"}
	assert.Equal(t, error(unknown), translateUniqueViolation(unknown))
	plain := errors.New("boom")
	assert.Equal(t, plain, translateUniqueViolation(plain))
}
