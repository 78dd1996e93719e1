package repository

import (
	"context"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// EmployeeRepository puerto de persistencia para Employee (DIP).
// Las lecturas devuelven (nil, nil) cuando no hay registro activo que
// coincida; la baja es lógica vía Update del status a Terminated.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *entity.Employee) error
	// GetByID devuelve el empleado activo con su Role hidratado.
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	// GetByEmail busca entre activos, case-insensitive.
	GetByEmail(ctx context.Context, email string) (*entity.Employee, error)
	GetByDocument(ctx context.Context, document string) (*entity.Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByDocument(ctx context.Context, document string) (bool, error)
	// ExistsActiveByRole indica si algún empleado activo tiene el rol
	// (bloquea la baja del rol y detecta al director ya existente).
	ExistsActiveByRole(ctx context.Context, roleID string) (bool, error)
	Update(ctx context.Context, emp *entity.Employee) error
	ListActive(ctx context.Context, limit, offset int) ([]*entity.Employee, error)
	ListByManager(ctx context.Context, managerID string) ([]*entity.Employee, error)
	// ListPendingBelowLevel pendientes de aprobación cuyo rol tiene nivel
	// estrictamente menor al dado (comparador del listado, no el de Approve).
	ListPendingBelowLevel(ctx context.Context, level int) ([]*entity.Employee, error)
	CountPendingBelowLevel(ctx context.Context, level int) (int, error)
}
