package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/ports"
	"github.com/jhoicas/Empleados-api/internal/application/validate"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/policy"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

// RoleUseCase administración de roles. Crear, editar o eliminar un rol
// exige capacidad de gestión y nivel estrictamente mayor al del rol
// objetivo; la baja es lógica y se bloquea mientras haya empleados
// activos con el rol.
type RoleUseCase struct {
	roleRepo repository.RoleRepository
	empRepo  repository.EmployeeRepository
	tx       ports.TxRunner
}

// NewRoleUseCase construye el caso de uso de roles.
func NewRoleUseCase(roleRepo repository.RoleRepository, empRepo repository.EmployeeRepository, tx ports.TxRunner) *RoleUseCase {
	return &RoleUseCase{roleRepo: roleRepo, empRepo: empRepo, tx: tx}
}

func (uc *RoleUseCase) loadActor(ctx context.Context, actorID string) (*entity.Employee, error) {
	actor, err := uc.empRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	return actor, nil
}

// Create crea un rol nuevo por debajo del nivel del actor.
func (uc *RoleUseCase) Create(ctx context.Context, actorID string, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	actor, err := uc.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !entity.IsValidHierarchyLevel(in.HierarchyLevel) {
		return nil, domain.NewValidationError("hierarchy_level", "el nivel debe estar entre 1 y 100")
	}
	if !policy.CanManageRoleLevel(actor.Role, in.HierarchyLevel) {
		return nil, domain.ErrForbidden
	}
	if err := validate.Required("name", in.Name); err != nil {
		return nil, err
	}
	caps, invalid := dto.ParseCapabilities(in.Capabilities)
	if invalid != "" {
		return nil, domain.NewValidationError("capabilities", "capacidad desconocida: "+invalid)
	}

	if exists, err := uc.roleRepo.ExistsByName(ctx, in.Name); err != nil {
		return nil, err
	} else if exists {
		return nil, domain.ErrRoleNameAlreadyExists
	}

	now := time.Now()
	role := &entity.Role{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(in.Name),
		HierarchyLevel: in.HierarchyLevel,
		Capabilities:   caps,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.tx.Run(ctx, func(_ repository.EmployeeRepository, roleRepo repository.RoleRepository) error {
		return roleRepo.Create(ctx, role)
	}); err != nil {
		return nil, err
	}
	return dto.ToRoleResponse(role), nil
}

// Update edita un rol. El actor debe estar por encima tanto del nivel
// actual del rol como del nivel nuevo.
func (uc *RoleUseCase) Update(ctx context.Context, actorID, roleID string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	actor, err := uc.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	role, err := uc.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrRoleNotFound
	}
	if !policy.CanManageRoleLevel(actor.Role, role.HierarchyLevel) {
		return nil, domain.ErrForbidden
	}

	if in.HierarchyLevel != 0 && in.HierarchyLevel != role.HierarchyLevel {
		if !entity.IsValidHierarchyLevel(in.HierarchyLevel) {
			return nil, domain.NewValidationError("hierarchy_level", "el nivel debe estar entre 1 y 100")
		}
		if !policy.CanManageRoleLevel(actor.Role, in.HierarchyLevel) {
			return nil, domain.ErrForbidden
		}
		role.HierarchyLevel = in.HierarchyLevel
	}
	if in.Name != "" && !entity.SameName(in.Name, role.Name) {
		if exists, err := uc.roleRepo.ExistsByName(ctx, in.Name); err != nil {
			return nil, err
		} else if exists {
			return nil, domain.ErrRoleNameAlreadyExists
		}
		role.Name = strings.TrimSpace(in.Name)
	}
	if in.Capabilities != nil {
		caps, invalid := dto.ParseCapabilities(in.Capabilities)
		if invalid != "" {
			return nil, domain.NewValidationError("capabilities", "capacidad desconocida: "+invalid)
		}
		role.Capabilities = caps
	}
	role.UpdatedAt = time.Now()

	if err := uc.tx.Run(ctx, func(_ repository.EmployeeRepository, roleRepo repository.RoleRepository) error {
		return roleRepo.Update(ctx, role)
	}); err != nil {
		return nil, err
	}
	return dto.ToRoleResponse(role), nil
}

// Delete baja lógica de un rol. Bloqueada mientras algún empleado activo
// lo tenga asignado (preserva el historial referencial).
func (uc *RoleUseCase) Delete(ctx context.Context, actorID, roleID string) error {
	actor, err := uc.loadActor(ctx, actorID)
	if err != nil {
		return err
	}
	role, err := uc.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.ErrRoleNotFound
	}
	if !policy.CanManageRoleLevel(actor.Role, role.HierarchyLevel) {
		return domain.ErrForbidden
	}
	if inUse, err := uc.empRepo.ExistsActiveByRole(ctx, role.ID); err != nil {
		return err
	} else if inUse {
		return domain.ErrRoleInUse
	}

	return uc.tx.Run(ctx, func(_ repository.EmployeeRepository, roleRepo repository.RoleRepository) error {
		return roleRepo.Delete(ctx, role.ID)
	})
}

// GetByID obtiene un rol activo por ID.
func (uc *RoleUseCase) GetByID(ctx context.Context, id string) (*dto.RoleResponse, error) {
	role, err := uc.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrRoleNotFound
	}
	return dto.ToRoleResponse(role), nil
}

// List lista roles activos con paginación.
func (uc *RoleUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.RoleResponse, error) {
	page.DefaultPage()
	roles, err := uc.roleRepo.ListActive(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return dto.ToRoleResponses(roles), nil
}

// ListAssignable roles que el actor puede asignar al crear empleados:
// los de nivel estrictamente menor al suyo.
func (uc *RoleUseCase) ListAssignable(ctx context.Context, actorID string) ([]*dto.RoleResponse, error) {
	actor, err := uc.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role == nil {
		return []*dto.RoleResponse{}, nil
	}
	roles, err := uc.roleRepo.ListBelowLevel(ctx, actor.Role.HierarchyLevel)
	if err != nil {
		return nil, err
	}
	return dto.ToRoleResponses(roles), nil
}
