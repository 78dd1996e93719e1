package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
// Las capacidades del rol se guardan como columnas boolean y se arman
// como CapabilitySet al hidratar la entidad.
type RoleRepo struct {
	db Querier
}

// NewRoleRepository construye el adaptador de persistencia para roles.
func NewRoleRepository(db Querier) *RoleRepo {
	return &RoleRepo{db: db}
}

const roleColumns = `
	id, name, hierarchy_level,
	can_approve_registrations, can_create_employees, can_edit_employees,
	can_delete_employees, can_manage_roles,
	is_active, created_at, updated_at`

// Create persiste un rol nuevo.
func (r *RoleRepo) Create(ctx context.Context, role *entity.Role) error {
	query := `
		INSERT INTO roles (id, name, hierarchy_level,
			can_approve_registrations, can_create_employees, can_edit_employees,
			can_delete_employees, can_manage_roles,
			is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		role.ID, role.Name, role.HierarchyLevel,
		role.Has(entity.CapApproveRegistrations),
		role.Has(entity.CapCreateEmployees),
		role.Has(entity.CapEditEmployees),
		role.Has(entity.CapDeleteEmployees),
		role.Has(entity.CapManageRoles),
		role.IsActive, role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert role: %w", translateUniqueViolation(err))
	}
	return nil
}

// GetByID obtiene un rol activo por ID.
func (r *RoleRepo) GetByID(ctx context.Context, id string) (*entity.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE id = $1 AND is_active = true`
	role, err := scanRole(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role by id: %w", err)
	}
	return role, nil
}

// GetByName busca un rol activo por nombre, case-insensitive.
func (r *RoleRepo) GetByName(ctx context.Context, name string) (*entity.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE lower(name) = lower($1) AND is_active = true`
	role, err := scanRole(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role by name: %w", err)
	}
	return role, nil
}

// ExistsByName indica si existe un rol activo con ese nombre.
func (r *RoleRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM roles WHERE lower(name) = lower($1) AND is_active = true)`,
		name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists role by name: %w", err)
	}
	return exists, nil
}

// Update actualiza un rol.
func (r *RoleRepo) Update(ctx context.Context, role *entity.Role) error {
	query := `
		UPDATE roles SET name = $2, hierarchy_level = $3,
			can_approve_registrations = $4, can_create_employees = $5,
			can_edit_employees = $6, can_delete_employees = $7, can_manage_roles = $8,
			is_active = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		role.ID, role.Name, role.HierarchyLevel,
		role.Has(entity.CapApproveRegistrations),
		role.Has(entity.CapCreateEmployees),
		role.Has(entity.CapEditEmployees),
		role.Has(entity.CapDeleteEmployees),
		role.Has(entity.CapManageRoles),
		role.IsActive, role.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update role: %w", translateUniqueViolation(err))
	}
	return nil
}

// Delete baja lógica: marca el rol como inactivo, nunca lo borra.
func (r *RoleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE roles SET is_active = false, updated_at = $2 WHERE id = $1`,
		id, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}

// ListActive lista roles activos ordenados por nivel descendente.
func (r *RoleRepo) ListActive(ctx context.Context, limit, offset int) ([]*entity.Role, error) {
	query := `SELECT ` + roleColumns + `
		FROM roles WHERE is_active = true
		ORDER BY hierarchy_level DESC, name LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	return collectRoles(rows)
}

// ListBelowLevel roles activos con nivel estrictamente menor al dado.
func (r *RoleRepo) ListBelowLevel(ctx context.Context, level int) ([]*entity.Role, error) {
	query := `SELECT ` + roleColumns + `
		FROM roles WHERE is_active = true AND hierarchy_level < $1
		ORDER BY hierarchy_level DESC, name`
	rows, err := r.db.Query(ctx, query, level)
	if err != nil {
		return nil, fmt.Errorf("list roles below level: %w", err)
	}
	defer rows.Close()
	return collectRoles(rows)
}

func collectRoles(rows pgx.Rows) ([]*entity.Role, error) {
	var list []*entity.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, role)
	}
	return list, rows.Err()
}

// scanRole arma la entidad desde una fila con roleColumns.
func scanRole(row pgx.Row) (*entity.Role, error) {
	var (
		role                                           entity.Role
		canApprove, canCreate, canEdit, canDel, canMng bool
	)
	err := row.Scan(
		&role.ID, &role.Name, &role.HierarchyLevel,
		&canApprove, &canCreate, &canEdit, &canDel, &canMng,
		&role.IsActive, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	role.Capabilities = entity.NewCapabilitySet()
	if canApprove {
		role.Capabilities.Add(entity.CapApproveRegistrations)
	}
	if canCreate {
		role.Capabilities.Add(entity.CapCreateEmployees)
	}
	if canEdit {
		role.Capabilities.Add(entity.CapEditEmployees)
	}
	if canDel {
		role.Capabilities.Add(entity.CapDeleteEmployees)
	}
	if canMng {
		role.Capabilities.Add(entity.CapManageRoles)
	}
	return &role, nil
}
