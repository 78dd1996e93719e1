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
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

// EmployeeUseCase orquesta el ciclo de vida de empleados: alta por un
// superior, edición, baja lógica, aprobación/rechazo y credenciales.
// Las reglas de jerarquía viven en domain/policy; acá solo se secuencian
// contra la persistencia.
type EmployeeUseCase struct {
	empRepo  repository.EmployeeRepository
	roleRepo repository.RoleRepository
	tx       ports.TxRunner
	hasher   ports.PasswordHasher
	tempGen  ports.TempPasswordGenerator
	log      *logger.Logger
}

// NewEmployeeUseCase construye el caso de uso de empleados.
func NewEmployeeUseCase(
	empRepo repository.EmployeeRepository,
	roleRepo repository.RoleRepository,
	tx ports.TxRunner,
	hasher ports.PasswordHasher,
	tempGen ports.TempPasswordGenerator,
	log *logger.Logger,
) *EmployeeUseCase {
	return &EmployeeUseCase{
		empRepo:  empRepo,
		roleRepo: roleRepo,
		tx:       tx,
		hasher:   hasher,
		tempGen:  tempGen,
		log:      log,
	}
}

// loadActor carga al actor con su rol; un actor inexistente o inactivo no
// puede operar.
func (uc *EmployeeUseCase) loadActor(ctx context.Context, actorID string) (*entity.Employee, error) {
	actor, err := uc.empRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	return actor, nil
}

// Create alta directa por un superior: el empleado queda aprobado en el
// acto, con approved_at/approved_by del actor (no hay Approve posterior).
func (uc *EmployeeUseCase) Create(ctx context.Context, actorID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	actor, err := uc.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	role, err := uc.roleRepo.GetByID(ctx, in.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrRoleNotFound
	}
	if !policy.CanCreateWithRole(actor.Role, role) {
		return nil, domain.ErrForbidden
	}

	if err := validate.Required("name", in.Name); err != nil {
		return nil, err
	}
	if err := validate.Email(in.Email); err != nil {
		return nil, err
	}
	if err := validate.Required("document_number", in.DocumentNumber); err != nil {
		return nil, err
	}
	if err := validate.Phone(in.Phone); err != nil {
		return nil, err
	}
	if err := validate.Password("password", in.Password); err != nil {
		return nil, err
	}
	birthDate, err := validate.BirthDate(in.BirthDate)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if exists, err := uc.empRepo.ExistsByEmail(ctx, email); err != nil {
		return nil, err
	} else if exists {
		return nil, domain.ErrEmailAlreadyExists
	}
	if exists, err := uc.empRepo.ExistsByDocument(ctx, in.DocumentNumber); err != nil {
		return nil, err
	} else if exists {
		return nil, domain.ErrDocumentAlreadyExists
	}

	var managerID *string
	if in.ManagerID != "" {
		manager, err := uc.empRepo.GetByID(ctx, in.ManagerID)
		if err != nil {
			return nil, err
		}
		if manager == nil {
			return nil, domain.ErrManagerNotFound
		}
		managerID = &manager.ID
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	emp := &entity.Employee{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(in.Name),
		Email:          email,
		DocumentNumber: strings.TrimSpace(in.DocumentNumber),
		Phone:          strings.TrimSpace(in.Phone),
		BirthDate:      birthDate,
		RoleID:         role.ID,
		Role:           role,
		ManagerID:      managerID,
		Status:         entity.StatusApproved,
		ApprovedAt:     &now,
		ApprovedByID:   &actor.ID,
		PasswordHash:   hash,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := emp.ValidateMinAge(now); err != nil {
		return nil, err
	}

	if err := uc.tx.Run(ctx, func(empRepo repository.EmployeeRepository, _ repository.RoleRepository) error {
		return empRepo.Create(ctx, emp)
	}); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("employee_id", emp.ID).
		Str("actor_id", actor.ID).
		Msg("empleado creado por superior")
	return dto.ToEmployeeResponse(emp), nil
}

// Update edita un empleado. Un superior con capacidad de edición puede
// modificar a alguien de nivel estrictamente menor; cada uno puede editar
// su propio registro, pero nunca cambiarse el rol ni el manager.
func (uc *EmployeeUseCase) Update(ctx context.Context, actorID, targetID string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	actor, err := uc.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	target, err := uc.empRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	if !policy.CanEditEmployee(actor, target) {
		return nil, domain.ErrForbidden
	}

	selfEdit := actor.ID == target.ID
	if selfEdit {
		if in.RoleID != "" && in.RoleID != target.RoleID {
			return nil, domain.ErrForbidden
		}
		managerChanged := in.ManagerID != "" &&
			(target.ManagerID == nil || in.ManagerID != *target.ManagerID)
		if managerChanged {
			return nil, domain.ErrForbidden
		}
	}

	now := time.Now()
	if in.Name != "" {
		target.Name = strings.TrimSpace(in.Name)
	}
	if in.Email != "" {
		if err := validate.Email(in.Email); err != nil {
			return nil, err
		}
		email := strings.ToLower(strings.TrimSpace(in.Email))
		if email != target.Email {
			if exists, err := uc.empRepo.ExistsByEmail(ctx, email); err != nil {
				return nil, err
			} else if exists {
				return nil, domain.ErrEmailAlreadyExists
			}
			target.Email = email
		}
	}
	if in.Phone != "" {
		if err := validate.Phone(in.Phone); err != nil {
			return nil, err
		}
		target.Phone = strings.TrimSpace(in.Phone)
	}
	if !selfEdit && in.RoleID != "" && in.RoleID != target.RoleID {
		newRole, err := uc.roleRepo.GetByID(ctx, in.RoleID)
		if err != nil {
			return nil, err
		}
		if newRole == nil {
			return nil, domain.ErrRoleNotFound
		}
		// El nuevo rol también debe estar por debajo del actor.
		if !policy.CanCreateWithRole(actor.Role, newRole) {
			return nil, domain.ErrForbidden
		}
		target.RoleID = newRole.ID
		target.Role = newRole
	}
	if !selfEdit && in.ManagerID != "" {
		manager, err := uc.empRepo.GetByID(ctx, in.ManagerID)
		if err != nil {
			return nil, err
		}
		if manager == nil {
			return nil, domain.ErrManagerNotFound
		}
		// Solo se valida existencia y actividad del manager: no hay chequeo
		// de ciclos ni relación de niveles entre empleado y manager.
		target.ManagerID = &manager.ID
	}
	target.UpdatedAt = now

	if err := uc.tx.Run(ctx, func(empRepo repository.EmployeeRepository, _ repository.RoleRepository) error {
		return empRepo.Update(ctx, target)
	}); err != nil {
		return nil, err
	}
	return dto.ToEmployeeResponse(target), nil
}

// Delete baja lógica de un empleado. Auto-baja prohibida siempre; los
// registros pendientes se resuelven por rechazo, no por baja.
func (uc *EmployeeUseCase) Delete(ctx context.Context, actorID, targetID string) error {
	actor, err := uc.loadActor(ctx, actorID)
	if err != nil {
		return err
	}
	target, err := uc.empRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrEmployeeNotFound
	}
	if !policy.CanDeleteEmployee(actor, target) {
		return domain.ErrForbidden
	}
	if err := target.Terminate(time.Now()); err != nil {
		return err
	}

	if err := uc.tx.Run(ctx, func(empRepo repository.EmployeeRepository, _ repository.RoleRepository) error {
		return empRepo.Update(ctx, target)
	}); err != nil {
		return err
	}

	uc.log.Info().
		Str("employee_id", target.ID).
		Str("actor_id", actor.ID).
		Msg("empleado dado de baja")
	return nil
}

// Approve resuelve un registro pendiente. Aprobar exige capacidad y nivel
// no estricto (>=); re-aprobar a un aprobado es conflicto. El rechazo
// termina el registro y deja el motivo solo en el log de auditoría.
func (uc *EmployeeUseCase) Approve(ctx context.Context, actorID, targetID string, in dto.ApproveEmployeeRequest) (*dto.EmployeeResponse, error) {
	actor, err := uc.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	target, err := uc.empRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	if !policy.CanApproveWithRole(actor.Role, target.Role) {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	if in.Approve {
		if err := target.Approve(actor.ID, now); err != nil {
			return nil, err
		}
	} else {
		if err := target.Reject(now); err != nil {
			return nil, err
		}
	}

	if err := uc.tx.Run(ctx, func(empRepo repository.EmployeeRepository, _ repository.RoleRepository) error {
		return empRepo.Update(ctx, target)
	}); err != nil {
		return nil, err
	}

	event := uc.log.Info().
		Str("employee_id", target.ID).
		Str("actor_id", actor.ID).
		Bool("approved", in.Approve)
	if !in.Approve && in.Reason != "" {
		event = event.Str("reason", in.Reason)
	}
	event.Msg("registro pendiente resuelto")
	return dto.ToEmployeeResponse(target), nil
}

// ListPending lista los registros pendientes visibles para el actor:
// estrictamente por debajo de su nivel. Sin capacidad de aprobación no
// hay nada para revisar.
func (uc *EmployeeUseCase) ListPending(ctx context.Context, actorID string) ([]*dto.EmployeeResponse, error) {
	actor, err := uc.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role == nil || !actor.Role.Has(entity.CapApproveRegistrations) {
		return []*dto.EmployeeResponse{}, nil
	}
	pending, err := uc.empRepo.ListPendingBelowLevel(ctx, actor.Role.HierarchyLevel)
	if err != nil {
		return nil, err
	}
	return dto.ToEmployeeResponses(pending), nil
}

// GetByID obtiene un empleado activo por ID.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	emp, err := uc.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return dto.ToEmployeeResponse(emp), nil
}

// List lista empleados activos con paginación.
func (uc *EmployeeUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.EmployeeResponse, error) {
	page.DefaultPage()
	emps, err := uc.empRepo.ListActive(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return dto.ToEmployeeResponses(emps), nil
}

// ListSubordinates lista los empleados activos que reportan al manager.
func (uc *EmployeeUseCase) ListSubordinates(ctx context.Context, managerID string) ([]*dto.EmployeeResponse, error) {
	emps, err := uc.empRepo.ListByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return dto.ToEmployeeResponses(emps), nil
}

// ChangeOwnPassword cambia la contraseña del propio actor. La actual debe
// verificar contra el hash guardado y la nueva debe coincidir con su
// confirmación; si no, falla de validación nombrando el campo y el hash
// queda intacto.
func (uc *EmployeeUseCase) ChangeOwnPassword(ctx context.Context, actorID string, in dto.ChangePasswordRequest) error {
	actor, err := uc.loadActor(ctx, actorID)
	if err != nil {
		return err
	}
	if !uc.hasher.Verify(in.CurrentPassword, actor.PasswordHash) {
		return domain.NewValidationError("current_password", "la contraseña actual no es correcta")
	}
	if err := validate.Password("new_password", in.NewPassword); err != nil {
		return err
	}
	if in.NewPassword != in.ConfirmPassword {
		return domain.NewValidationError("confirm_password", "la confirmación no coincide con la nueva contraseña")
	}
	hash, err := uc.hasher.Hash(in.NewPassword)
	if err != nil {
		return err
	}
	actor.PasswordHash = hash
	actor.UpdatedAt = time.Now()

	return uc.tx.Run(ctx, func(empRepo repository.EmployeeRepository, _ repository.RoleRepository) error {
		return empRepo.Update(ctx, actor)
	})
}

// ResetPassword genera una contraseña temporal para el target y la
// devuelve en texto plano exactamente una vez. Exige capacidad de edición
// y jerarquía estricta; la temporal nunca se persiste ni se loguea.
func (uc *EmployeeUseCase) ResetPassword(ctx context.Context, actorID, targetID string) (*dto.ResetPasswordResponse, error) {
	actor, err := uc.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	target, err := uc.empRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	if actor.Role == nil || target.Role == nil ||
		!actor.Role.Has(entity.CapEditEmployees) ||
		actor.Role.HierarchyLevel <= target.Role.HierarchyLevel {
		return nil, domain.ErrForbidden
	}

	temp, err := uc.tempGen.Generate()
	if err != nil {
		return nil, err
	}
	hash, err := uc.hasher.Hash(temp)
	if err != nil {
		return nil, err
	}
	target.PasswordHash = hash
	target.UpdatedAt = time.Now()

	if err := uc.tx.Run(ctx, func(empRepo repository.EmployeeRepository, _ repository.RoleRepository) error {
		return empRepo.Update(ctx, target)
	}); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("employee_id", target.ID).
		Str("actor_id", actor.ID).
		Msg("contraseña reseteada")
	return &dto.ResetPasswordResponse{TemporaryPassword: temp}, nil
}
