package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

func TestCapabilitySet(t *testing.T) {
	set := entity.NewCapabilitySet(entity.CapCreateEmployees, entity.CapManageRoles)

	assert.True(t, set.Has(entity.CapCreateEmployees))
	assert.True(t, set.Has(entity.CapManageRoles))
	assert.False(t, set.Has(entity.CapApproveRegistrations))

	set.Add(entity.CapApproveRegistrations)
	assert.True(t, set.Has(entity.CapApproveRegistrations))
}

// Slice devuelve orden estable sin importar el orden de inserción.
func TestCapabilitySet_SliceOrdenEstable(t *testing.T) {
	a := entity.NewCapabilitySet(entity.CapManageRoles, entity.CapApproveRegistrations)
	b := entity.NewCapabilitySet(entity.CapApproveRegistrations, entity.CapManageRoles)
	assert.Equal(t, a.Slice(), b.Slice())
	assert.Equal(t, []entity.Capability{entity.CapApproveRegistrations, entity.CapManageRoles}, a.Slice())
}

func TestIsValidHierarchyLevel(t *testing.T) {
	assert.False(t, entity.IsValidHierarchyLevel(0))
	assert.True(t, entity.IsValidHierarchyLevel(1))
	assert.True(t, entity.IsValidHierarchyLevel(100))
	assert.False(t, entity.IsValidHierarchyLevel(101))
	assert.False(t, entity.IsValidHierarchyLevel(-5))
}

// La unicidad de nombre de rol es case-insensitive.
func TestSameName(t *testing.T) {
	assert.True(t, entity.SameName("Director", "director"))
	assert.True(t, entity.SameName("  Director ", "DIRECTOR"))
	assert.False(t, entity.SameName("Director", "Gerente"))
}
