package repository

import (
	"context"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// RoleRepository puerto de persistencia para Role (DIP). Todas las
// consultas de lectura resuelven solo roles activos salvo que se indique
// lo contrario; Delete es baja lógica (is_active=false).
type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	GetByID(ctx context.Context, id string) (*entity.Role, error)
	// GetByName busca por nombre sin distinguir mayúsculas, solo activos.
	GetByName(ctx context.Context, name string) (*entity.Role, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, role *entity.Role) error
	Delete(ctx context.Context, id string) error
	ListActive(ctx context.Context, limit, offset int) ([]*entity.Role, error)
	// ListBelowLevel devuelve los roles activos con nivel estrictamente
	// menor al dado (roles asignables por un actor de ese nivel).
	ListBelowLevel(ctx context.Context, level int) ([]*entity.Role, error)
}
