package dto

import (
	"time"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// CreateRoleRequest entrada para crear un rol.
type CreateRoleRequest struct {
	Name           string   `json:"name"`
	HierarchyLevel int      `json:"hierarchy_level"`
	Capabilities   []string `json:"capabilities"`
}

// UpdateRoleRequest entrada para editar un rol existente.
type UpdateRoleRequest struct {
	Name           string   `json:"name"`
	HierarchyLevel int      `json:"hierarchy_level"`
	Capabilities   []string `json:"capabilities"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	HierarchyLevel int       `json:"hierarchy_level"`
	Capabilities   []string  `json:"capabilities"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToRoleResponse convierte la entidad a su representación de salida.
func ToRoleResponse(r *entity.Role) *RoleResponse {
	if r == nil {
		return nil
	}
	caps := r.Capabilities.Slice()
	out := make([]string, len(caps))
	for i, c := range caps {
		out[i] = string(c)
	}
	return &RoleResponse{
		ID:             r.ID,
		Name:           r.Name,
		HierarchyLevel: r.HierarchyLevel,
		Capabilities:   out,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// ToRoleResponses convierte un slice de roles.
func ToRoleResponses(roles []*entity.Role) []*RoleResponse {
	out := make([]*RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, ToRoleResponse(r))
	}
	return out
}

// ParseCapabilities valida y convierte los nombres de capacidades.
// Devuelve el nombre inválido encontrado, si lo hay.
func ParseCapabilities(names []string) (entity.CapabilitySet, string) {
	set := entity.NewCapabilitySet()
	for _, n := range names {
		cap := entity.Capability(n)
		known := false
		for _, c := range entity.AllCapabilities {
			if c == cap {
				known = true
				break
			}
		}
		if !known {
			return nil, n
		}
		set.Add(cap)
	}
	return set, ""
}
