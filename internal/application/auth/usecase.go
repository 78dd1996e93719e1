package auth

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
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

// DirectorConfig identifica al rol raíz del sistema. Se inyecta por
// configuración en lugar de constantes fijas en el código.
type DirectorConfig struct {
	RoleName       string
	HierarchyLevel int
}

// AuthUseCase casos de uso de autenticación: login, auto-registro y
// bootstrap del primer director.
type AuthUseCase struct {
	empRepo  repository.EmployeeRepository
	roleRepo repository.RoleRepository
	tx       ports.TxRunner
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
	director DirectorConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	empRepo repository.EmployeeRepository,
	roleRepo repository.RoleRepository,
	tx ports.TxRunner,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	director DirectorConfig,
) *AuthUseCase {
	return &AuthUseCase{
		empRepo:  empRepo,
		roleRepo: roleRepo,
		tx:       tx,
		hasher:   hasher,
		tokens:   tokens,
		director: director,
	}
}

// Login verifica credenciales y emite el token de sesión. Email
// inexistente, password incorrecto y cuenta sin aprobar devuelven 401;
// solo cambia el mensaje del último caso. Si el empleado puede aprobar
// registros se adjunta cuántos pendientes tiene a la vista (comparador
// estricto del listado).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	emp, err := uc.empRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrUnauthorized
	}
	if !uc.hasher.Verify(in.Password, emp.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}
	if !emp.Enabled() {
		return nil, domain.ErrAccountPending
	}
	token, err := uc.tokens.Issue(emp)
	if err != nil {
		return nil, err
	}
	out := &dto.LoginResponse{
		Token:    token,
		Employee: *dto.ToEmployeeResponse(emp),
	}
	if emp.Role != nil && emp.Role.Has(entity.CapApproveRegistrations) {
		count, err := uc.empRepo.CountPendingBelowLevel(ctx, emp.Role.HierarchyLevel)
		if err != nil {
			return nil, err
		}
		out.PendingApprovals = &count
	}
	return out, nil
}

// Register auto-registro de un empleado: queda en pending_approval sin
// aprobador asignado. El rol director no puede auto-asignarse.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.EmployeeResponse, error) {
	emp, err := uc.buildEmployee(ctx, registrationInput{
		Name:           in.Name,
		Email:          in.Email,
		DocumentNumber: in.DocumentNumber,
		Phone:          in.Phone,
		BirthDate:      in.BirthDate,
		Password:       in.Password,
		ManagerID:      in.ManagerID,
	})
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
	if entity.SameName(role.Name, uc.director.RoleName) {
		return nil, domain.ErrForbidden
	}
	emp.RoleID = role.ID
	emp.Role = role
	emp.Status = entity.StatusPendingApproval

	if err := uc.tx.Run(ctx, func(empRepo repository.EmployeeRepository, _ repository.RoleRepository) error {
		return empRepo.Create(ctx, emp)
	}); err != nil {
		return nil, err
	}
	return dto.ToEmployeeResponse(emp), nil
}

// BootstrapDirector alta del primer director: queda aprobado sin
// aprobador. Si el rol director no existe todavía se crea con todas las
// capacidades. Un segundo director activo es conflicto.
func (uc *AuthUseCase) BootstrapDirector(ctx context.Context, in dto.BootstrapRequest) (*dto.LoginResponse, error) {
	emp, err := uc.buildEmployee(ctx, registrationInput{
		Name:           in.Name,
		Email:          in.Email,
		DocumentNumber: in.DocumentNumber,
		Phone:          in.Phone,
		BirthDate:      in.BirthDate,
		Password:       in.Password,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	role, err := uc.roleRepo.GetByName(ctx, uc.director.RoleName)
	if err != nil {
		return nil, err
	}
	if role != nil {
		taken, err := uc.empRepo.ExistsActiveByRole(ctx, role.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrDirectorAlreadyExists
		}
	}

	if err := uc.tx.Run(ctx, func(empRepo repository.EmployeeRepository, roleRepo repository.RoleRepository) error {
		if role == nil {
			role = &entity.Role{
				ID:             uuid.New().String(),
				Name:           uc.director.RoleName,
				HierarchyLevel: uc.director.HierarchyLevel,
				Capabilities:   entity.NewCapabilitySet(entity.AllCapabilities...),
				IsActive:       true,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := roleRepo.Create(ctx, role); err != nil {
				return err
			}
		}
		emp.RoleID = role.ID
		emp.Role = role
		emp.Status = entity.StatusApproved
		emp.ApprovedAt = &now // aprobado de origen, sin aprobador
		return empRepo.Create(ctx, emp)
	}); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(emp)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Employee: *dto.ToEmployeeResponse(emp)}, nil
}

// registrationInput campos comunes entre registro y bootstrap.
type registrationInput struct {
	Name           string
	Email          string
	DocumentNumber string
	Phone          string
	BirthDate      string
	Password       string
	ManagerID      string
}

// buildEmployee valida los campos, chequea unicidad y arma la entidad sin
// rol ni estado (los define cada flujo).
func (uc *AuthUseCase) buildEmployee(ctx context.Context, in registrationInput) (*entity.Employee, error) {
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
		ManagerID:      managerID,
		PasswordHash:   hash,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := emp.ValidateMinAge(now); err != nil {
		return nil, err
	}
	return emp, nil
}
