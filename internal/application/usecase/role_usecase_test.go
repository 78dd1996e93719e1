package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

type roleFixture struct {
	*empFixture
	uc *usecase.RoleUseCase
}

func newRoleFixture(t *testing.T) *roleFixture {
	t.Helper()
	base := newEmpFixture(t)
	tx := &fakeTxRunner{empRepo: base.empRepo, roleRepo: base.roleRepo}
	manager := base.addRole("Jefe de Personal", 60, entity.CapManageRoles)
	base.addEmployee("jefe", manager, entity.StatusApproved)
	return &roleFixture{
		empFixture: base,
		uc:         usecase.NewRoleUseCase(base.roleRepo, base.empRepo, tx),
	}
}

func TestRoleCreate_Ok(t *testing.T) {
	f := newRoleFixture(t)

	out, err := f.uc.Create(context.Background(), "jefe", dto.CreateRoleRequest{
		Name:           "Coordinador",
		HierarchyLevel: 30,
		Capabilities:   []string{"edit_employees"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Coordinador", out.Name)
	assert.Equal(t, 30, out.HierarchyLevel)
	assert.Equal(t, []string{"edit_employees"}, out.Capabilities)
}

// Crear un rol del propio nivel o superior está prohibido.
func TestRoleCreate_NivelPropioProhibido(t *testing.T) {
	f := newRoleFixture(t)

	_, err := f.uc.Create(context.Background(), "jefe", dto.CreateRoleRequest{
		Name:           "Par",
		HierarchyLevel: 60,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.uc.Create(context.Background(), "jefe", dto.CreateRoleRequest{
		Name:           "Superior",
		HierarchyLevel: 90,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRoleCreate_NivelFueraDeRango(t *testing.T) {
	f := newRoleFixture(t)

	_, err := f.uc.Create(context.Background(), "jefe", dto.CreateRoleRequest{
		Name:           "Cero",
		HierarchyLevel: 0,
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "hierarchy_level", vErr.Field)
}

func TestRoleCreate_CapacidadDesconocida(t *testing.T) {
	f := newRoleFixture(t)

	_, err := f.uc.Create(context.Background(), "jefe", dto.CreateRoleRequest{
		Name:           "Raro",
		HierarchyLevel: 20,
		Capabilities:   []string{"fly"},
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "capabilities", vErr.Field)
}

// El nombre de rol es único sin distinguir mayúsculas.
func TestRoleCreate_NombreDuplicado(t *testing.T) {
	f := newRoleFixture(t)

	_, err := f.uc.Create(context.Background(), "jefe", dto.CreateRoleRequest{
		Name:           "analista",
		HierarchyLevel: 20,
	})
	assert.ErrorIs(t, err, domain.ErrRoleNameAlreadyExists)
}

func TestRoleUpdate_SubirNivelPorEncimaDelActor(t *testing.T) {
	f := newRoleFixture(t)

	_, err := f.uc.Update(context.Background(), "jefe", f.analista.ID, dto.UpdateRoleRequest{
		HierarchyLevel: 80,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRoleUpdate_ReemplazaCapacidades(t *testing.T) {
	f := newRoleFixture(t)

	out, err := f.uc.Update(context.Background(), "jefe", f.analista.ID, dto.UpdateRoleRequest{
		Capabilities: []string{"approve_registrations", "edit_employees"},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"approve_registrations", "edit_employees"}, out.Capabilities)
}

func TestRoleUpdate_RolSuperiorProhibido(t *testing.T) {
	f := newRoleFixture(t)

	_, err := f.uc.Update(context.Background(), "jefe", f.director.ID, dto.UpdateRoleRequest{
		Name: "Otro",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// La baja se bloquea mientras haya empleados activos con el rol.
func TestRoleDelete_EnUso(t *testing.T) {
	f := newRoleFixture(t)
	f.addEmployee("ana", f.analista, entity.StatusApproved)

	err := f.uc.Delete(context.Background(), "jefe", f.analista.ID)
	assert.ErrorIs(t, err, domain.ErrRoleInUse)
}

func TestRoleDelete_SinUsoOk(t *testing.T) {
	f := newRoleFixture(t)

	require.NoError(t, f.uc.Delete(context.Background(), "jefe", f.analista.ID))

	_, err := f.uc.GetByID(context.Background(), f.analista.ID)
	assert.ErrorIs(t, err, domain.ErrRoleNotFound)
}

// Un empleado dado de baja con el rol no bloquea la baja del rol.
func TestRoleDelete_EmpleadoTerminadoNoBloquea(t *testing.T) {
	f := newRoleFixture(t)
	f.addEmployee("ex", f.analista, entity.StatusTerminated)

	assert.NoError(t, f.uc.Delete(context.Background(), "jefe", f.analista.ID))
}

func TestRoleListAssignable_SoloNivelesInferiores(t *testing.T) {
	f := newRoleFixture(t)

	out, err := f.uc.ListAssignable(context.Background(), "jefe")
	require.NoError(t, err)

	for _, r := range out {
		assert.Less(t, r.HierarchyLevel, 60)
	}
	names := make([]string, 0, len(out))
	for _, r := range out {
		names = append(names, r.Name)
	}
	assert.Contains(t, names, "Gerente")
	assert.Contains(t, names, "Analista")
	assert.NotContains(t, names, "Director")
}

func TestRole_ActorInexistente(t *testing.T) {
	f := newRoleFixture(t)

	_, err := f.uc.Create(context.Background(), "fantasma", dto.CreateRoleRequest{
		Name:           "X",
		HierarchyLevel: 10,
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
