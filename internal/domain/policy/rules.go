// Package policy contiene las reglas puras de autorización sobre la
// jerarquía de roles. No toca persistencia: recibe entidades ya cargadas
// y devuelve bool, así se testean exhaustivamente sin dobles de DB.
package policy

import "github.com/jhoicas/Empleados-api/internal/domain/entity"

// CanCreateWithRole indica si un actor con actorRole puede dar de alta un
// empleado con targetRole. Desigualdad estricta: un par del mismo nivel
// no puede crear.
func CanCreateWithRole(actorRole, targetRole *entity.Role) bool {
	if actorRole == nil || targetRole == nil {
		return false
	}
	return actorRole.Has(entity.CapCreateEmployees) &&
		actorRole.HierarchyLevel > targetRole.HierarchyLevel
}

// CanApproveWithRole indica si un actor puede aprobar el registro de un
// empleado con targetRole. Comparador NO estricto: un aprobador del mismo
// nivel sí puede aprobar (asimetría intencional respecto de la creación).
func CanApproveWithRole(actorRole, targetRole *entity.Role) bool {
	if actorRole == nil || targetRole == nil {
		return false
	}
	return actorRole.Has(entity.CapApproveRegistrations) &&
		actorRole.HierarchyLevel >= targetRole.HierarchyLevel
}

// CanManageRoleLevel indica si un actor puede crear/editar/eliminar un rol
// del nivel dado. Estricto: solo sobre roles por debajo del propio.
func CanManageRoleLevel(actorRole *entity.Role, targetLevel int) bool {
	if actorRole == nil {
		return false
	}
	return actorRole.Has(entity.CapManageRoles) &&
		actorRole.HierarchyLevel > targetLevel
}

// CanEditEmployee indica si el actor puede editar al target: capacidad de
// edición + jerarquía estricta, o edición del propio registro. El self-edit
// saltea la capacidad; la prohibición de cambiarse el propio rol o manager
// la aplica el caso de uso sobre los campos del request.
func CanEditEmployee(actor, target *entity.Employee) bool {
	if actor == nil || target == nil {
		return false
	}
	if actor.ID == target.ID {
		return true
	}
	if actor.Role == nil || target.Role == nil {
		return false
	}
	return actor.Role.Has(entity.CapEditEmployees) &&
		actor.Role.HierarchyLevel > target.Role.HierarchyLevel
}

// CanDeleteEmployee indica si el actor puede dar de baja al target.
// Auto-baja siempre prohibida, sin importar la jerarquía.
func CanDeleteEmployee(actor, target *entity.Employee) bool {
	if actor == nil || target == nil {
		return false
	}
	if actor.ID == target.ID {
		return false
	}
	if actor.Role == nil || target.Role == nil {
		return false
	}
	return actor.Role.Has(entity.CapDeleteEmployees) &&
		actor.Role.HierarchyLevel > target.Role.HierarchyLevel
}

// CanReviewPending comparador del listado "pendientes para un aprobador":
// estrictamente menor al nivel del actor. Ojo: es deliberadamente distinto
// del comparador que autoriza Approve (>=); no unificar sin confirmar.
func CanReviewPending(actorLevel, targetLevel int) bool {
	return targetLevel < actorLevel
}
