package usecase_test

import (
	"context"
	"strings"

	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

// Dobles en memoria de los puertos de persistencia y colaboradores.

type fakeEmployeeRepo struct {
	emps map[string]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{emps: make(map[string]*entity.Employee)}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp *entity.Employee) error {
	// Simula los índices únicos parciales de la tabla employees.
	for _, e := range f.emps {
		if !e.Active() {
			continue
		}
		if strings.EqualFold(e.Email, emp.Email) {
			return domain.ErrEmailAlreadyExists
		}
		if e.DocumentNumber == emp.DocumentNumber {
			return domain.ErrDocumentAlreadyExists
		}
	}
	f.emps[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	emp, ok := f.emps[id]
	if !ok || !emp.Active() {
		return nil, nil
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (*entity.Employee, error) {
	for _, e := range f.emps {
		if e.Active() && strings.EqualFold(e.Email, email) {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) GetByDocument(_ context.Context, document string) (*entity.Employee, error) {
	for _, e := range f.emps {
		if e.Active() && e.DocumentNumber == document {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	emp, _ := f.GetByEmail(ctx, email)
	return emp != nil, nil
}

func (f *fakeEmployeeRepo) ExistsByDocument(ctx context.Context, document string) (bool, error) {
	emp, _ := f.GetByDocument(ctx, document)
	return emp != nil, nil
}

func (f *fakeEmployeeRepo) ExistsActiveByRole(_ context.Context, roleID string) (bool, error) {
	for _, e := range f.emps {
		if e.Active() && e.RoleID == roleID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp *entity.Employee) error {
	f.emps[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context, limit, offset int) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range f.emps {
		if e.Active() {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListByManager(_ context.Context, managerID string) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range f.emps {
		if e.Active() && e.ManagerID != nil && *e.ManagerID == managerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListPendingBelowLevel(_ context.Context, level int) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range f.emps {
		if e.Status == entity.StatusPendingApproval && e.Role != nil && e.Role.HierarchyLevel < level {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) CountPendingBelowLevel(ctx context.Context, level int) (int, error) {
	list, _ := f.ListPendingBelowLevel(ctx, level)
	return len(list), nil
}

type fakeRoleRepo struct {
	roles map[string]*entity.Role
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: make(map[string]*entity.Role)}
}

func (f *fakeRoleRepo) Create(_ context.Context, role *entity.Role) error {
	for _, r := range f.roles {
		if r.IsActive && entity.SameName(r.Name, role.Name) {
			return domain.ErrRoleNameAlreadyExists
		}
	}
	f.roles[role.ID] = role
	return nil
}

func (f *fakeRoleRepo) GetByID(_ context.Context, id string) (*entity.Role, error) {
	role, ok := f.roles[id]
	if !ok || !role.IsActive {
		return nil, nil
	}
	return role, nil
}

func (f *fakeRoleRepo) GetByName(_ context.Context, name string) (*entity.Role, error) {
	for _, r := range f.roles {
		if r.IsActive && entity.SameName(r.Name, name) {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRoleRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	role, _ := f.GetByName(ctx, name)
	return role != nil, nil
}

func (f *fakeRoleRepo) Update(_ context.Context, role *entity.Role) error {
	f.roles[role.ID] = role
	return nil
}

func (f *fakeRoleRepo) Delete(_ context.Context, id string) error {
	if role, ok := f.roles[id]; ok {
		role.IsActive = false
	}
	return nil
}

func (f *fakeRoleRepo) ListActive(_ context.Context, limit, offset int) ([]*entity.Role, error) {
	var out []*entity.Role
	for _, r := range f.roles {
		if r.IsActive {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoleRepo) ListBelowLevel(_ context.Context, level int) ([]*entity.Role, error) {
	var out []*entity.Role
	for _, r := range f.roles {
		if r.IsActive && r.HierarchyLevel < level {
			out = append(out, r)
		}
	}
	return out, nil
}

// fakeTxRunner pasa los mismos repos en memoria; el commit es implícito.
type fakeTxRunner struct {
	empRepo  *fakeEmployeeRepo
	roleRepo *fakeRoleRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	empRepo repository.EmployeeRepository,
	roleRepo repository.RoleRepository,
) error) error {
	return fn(f.empRepo, f.roleRepo)
}

// fakeHasher hashing determinístico para tests.
type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) { return "hash:" + plaintext, nil }
func (fakeHasher) Verify(plaintext, hash string) bool    { return hash == "hash:"+plaintext }

// fakeTempGen contraseña temporal fija.
type fakeTempGen struct{}

func (fakeTempGen) Generate() (string, error) { return "Temporal23xyz", nil }
