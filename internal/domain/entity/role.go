package entity

import (
	"strings"
	"time"
)

// Niveles de jerarquía válidos para un rol. Mayor nivel = mayor seniority.
const (
	MinHierarchyLevel = 1
	MaxHierarchyLevel = 100
)

// Capability permiso atómico de un rol. Conjunto cerrado: las reglas de
// autorización son totales sobre estos valores.
type Capability string

const (
	CapApproveRegistrations Capability = "approve_registrations"
	CapCreateEmployees      Capability = "create_employees"
	CapEditEmployees        Capability = "edit_employees"
	CapDeleteEmployees      Capability = "delete_employees"
	CapManageRoles          Capability = "manage_roles"
)

// AllCapabilities lista estable de capacidades conocidas.
var AllCapabilities = []Capability{
	CapApproveRegistrations,
	CapCreateEmployees,
	CapEditEmployees,
	CapDeleteEmployees,
	CapManageRoles,
}

// CapabilitySet conjunto de permisos de un rol. Reemplaza a cinco booleanos
// sueltos; en la tabla roles siguen siendo columnas boolean.
type CapabilitySet map[Capability]struct{}

// NewCapabilitySet construye un conjunto a partir de capacidades.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	s := make(CapabilitySet, len(caps))
	for _, c := range caps {
		s[c] = struct{}{}
	}
	return s
}

// Has indica si el conjunto contiene la capacidad.
func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// Add agrega una capacidad al conjunto.
func (s CapabilitySet) Add(c Capability) {
	s[c] = struct{}{}
}

// Slice devuelve las capacidades en orden estable (para serializar).
func (s CapabilitySet) Slice() []Capability {
	out := make([]Capability, 0, len(s))
	for _, c := range AllCapabilities {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Role representa un cargo dentro de la organización con su nivel de
// jerarquía y permisos. IsActive=false es tombstone: el rol nunca se borra
// físicamente para preservar historial referencial.
type Role struct {
	ID             string
	Name           string
	HierarchyLevel int
	Capabilities   CapabilitySet
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Has indica si el rol tiene la capacidad dada.
func (r *Role) Has(c Capability) bool {
	return r.Capabilities.Has(c)
}

// IsValidHierarchyLevel valida el rango permitido de niveles.
func IsValidHierarchyLevel(level int) bool {
	return level >= MinHierarchyLevel && level <= MaxHierarchyLevel
}

// SameName compara nombres de rol sin distinguir mayúsculas (la unicidad
// de nombre entre roles activos es case-insensitive).
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
