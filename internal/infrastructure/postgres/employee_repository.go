package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre
// PostgreSQL. El estado del empleado se guarda como flags enabled e
// is_active; el enum de dominio existe solo en la entidad.
type EmployeeRepo struct {
	db Querier
}

// NewEmployeeRepository construye el adaptador de persistencia para
// empleados.
func NewEmployeeRepository(db Querier) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

const employeeSelect = `
	SELECT e.id, e.name, e.email, e.document_number, e.phone, e.birth_date,
	       e.role_id, e.manager_id, e.enabled, e.approved_at, e.approved_by_id,
	       e.is_active, e.password_hash, e.created_at, e.updated_at,
	       r.id, r.name, r.hierarchy_level,
	       r.can_approve_registrations, r.can_create_employees, r.can_edit_employees,
	       r.can_delete_employees, r.can_manage_roles,
	       r.is_active, r.created_at, r.updated_at
	  FROM employees e
	  JOIN roles r ON r.id = e.role_id`

// statusFlags descompone el enum de dominio en los flags de la tabla.
func statusFlags(s entity.Status) (enabled, isActive bool) {
	return s == entity.StatusApproved, s != entity.StatusTerminated
}

// statusFromFlags reconstruye el enum desde los flags.
func statusFromFlags(enabled, isActive bool) entity.Status {
	switch {
	case !isActive:
		return entity.StatusTerminated
	case enabled:
		return entity.StatusApproved
	default:
		return entity.StatusPendingApproval
	}
}

// Create persiste un empleado nuevo.
func (r *EmployeeRepo) Create(ctx context.Context, emp *entity.Employee) error {
	enabled, isActive := statusFlags(emp.Status)
	query := `
		INSERT INTO employees (id, name, email, document_number, phone, birth_date,
			role_id, manager_id, enabled, approved_at, approved_by_id,
			is_active, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.Exec(ctx, query,
		emp.ID, emp.Name, emp.Email, emp.DocumentNumber, emp.Phone, emp.BirthDate,
		emp.RoleID, emp.ManagerID, enabled, emp.ApprovedAt, emp.ApprovedByID,
		isActive, emp.PasswordHash, emp.CreatedAt, emp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", translateUniqueViolation(err))
	}
	return nil
}

// GetByID obtiene un empleado activo por ID, con su rol hidratado.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	query := employeeSelect + ` WHERE e.id = $1 AND e.is_active = true`
	emp, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by id: %w", err)
	}
	return emp, nil
}

// GetByEmail busca entre activos, case-insensitive.
func (r *EmployeeRepo) GetByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	query := employeeSelect + ` WHERE lower(e.email) = lower($1) AND e.is_active = true`
	emp, err := scanEmployee(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by email: %w", err)
	}
	return emp, nil
}

// GetByDocument busca entre activos por número de documento.
func (r *EmployeeRepo) GetByDocument(ctx context.Context, document string) (*entity.Employee, error) {
	query := employeeSelect + ` WHERE e.document_number = $1 AND e.is_active = true`
	emp, err := scanEmployee(r.db.QueryRow(ctx, query, document))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by document: %w", err)
	}
	return emp, nil
}

// ExistsByEmail indica si un activo ya usa el email.
func (r *EmployeeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE lower(email) = lower($1) AND is_active = true)`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists employee by email: %w", err)
	}
	return exists, nil
}

// ExistsByDocument indica si un activo ya usa el documento.
func (r *EmployeeRepo) ExistsByDocument(ctx context.Context, document string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE document_number = $1 AND is_active = true)`,
		document,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists employee by document: %w", err)
	}
	return exists, nil
}

// ExistsActiveByRole indica si algún empleado activo tiene el rol.
func (r *EmployeeRepo) ExistsActiveByRole(ctx context.Context, roleID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE role_id = $1 AND is_active = true)`,
		roleID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists employee by role: %w", err)
	}
	return exists, nil
}

// Update actualiza un empleado; la baja lógica pasa por acá con el status
// ya en Terminated.
func (r *EmployeeRepo) Update(ctx context.Context, emp *entity.Employee) error {
	enabled, isActive := statusFlags(emp.Status)
	query := `
		UPDATE employees SET name = $2, email = $3, document_number = $4, phone = $5,
			role_id = $6, manager_id = $7, enabled = $8, approved_at = $9,
			approved_by_id = $10, is_active = $11, password_hash = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		emp.ID, emp.Name, emp.Email, emp.DocumentNumber, emp.Phone,
		emp.RoleID, emp.ManagerID, enabled, emp.ApprovedAt,
		emp.ApprovedByID, isActive, emp.PasswordHash, emp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", translateUniqueViolation(err))
	}
	return nil
}

// ListActive lista empleados activos con paginación.
func (r *EmployeeRepo) ListActive(ctx context.Context, limit, offset int) ([]*entity.Employee, error) {
	query := employeeSelect + `
		 WHERE e.is_active = true
		 ORDER BY e.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	return collectEmployees(rows)
}

// ListByManager lista los activos que reportan al manager dado.
func (r *EmployeeRepo) ListByManager(ctx context.Context, managerID string) ([]*entity.Employee, error) {
	query := employeeSelect + `
		 WHERE e.manager_id = $1 AND e.is_active = true
		 ORDER BY e.name`
	rows, err := r.db.Query(ctx, query, managerID)
	if err != nil {
		return nil, fmt.Errorf("list employees by manager: %w", err)
	}
	defer rows.Close()
	return collectEmployees(rows)
}

// ListPendingBelowLevel pendientes con rol de nivel estrictamente menor.
func (r *EmployeeRepo) ListPendingBelowLevel(ctx context.Context, level int) ([]*entity.Employee, error) {
	query := employeeSelect + `
		 WHERE e.is_active = true AND e.enabled = false AND r.hierarchy_level < $1
		 ORDER BY e.created_at`
	rows, err := r.db.Query(ctx, query, level)
	if err != nil {
		return nil, fmt.Errorf("list pending employees: %w", err)
	}
	defer rows.Close()
	return collectEmployees(rows)
}

// CountPendingBelowLevel cantidad de pendientes visibles para un nivel.
func (r *EmployeeRepo) CountPendingBelowLevel(ctx context.Context, level int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT count(*)
		  FROM employees e
		  JOIN roles r ON r.id = e.role_id
		 WHERE e.is_active = true AND e.enabled = false AND r.hierarchy_level < $1`,
		level,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pending employees: %w", err)
	}
	return count, nil
}

func collectEmployees(rows pgx.Rows) ([]*entity.Employee, error) {
	var list []*entity.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, emp)
	}
	return list, rows.Err()
}

// scanEmployee arma la entidad (con rol) desde una fila de employeeSelect.
func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var (
		emp                                            entity.Employee
		role                                           entity.Role
		enabled, isActive                              bool
		canApprove, canCreate, canEdit, canDel, canMng bool
	)
	err := row.Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.DocumentNumber, &emp.Phone, &emp.BirthDate,
		&emp.RoleID, &emp.ManagerID, &enabled, &emp.ApprovedAt, &emp.ApprovedByID,
		&isActive, &emp.PasswordHash, &emp.CreatedAt, &emp.UpdatedAt,
		&role.ID, &role.Name, &role.HierarchyLevel,
		&canApprove, &canCreate, &canEdit, &canDel, &canMng,
		&role.IsActive, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	emp.Status = statusFromFlags(enabled, isActive)
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
	emp.Role = &role
	return &emp, nil
}
