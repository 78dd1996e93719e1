// Package ports define los colaboradores externos que consumen los casos
// de uso; en tests se reemplazan por dobles.
package ports

import (
	"context"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una transacción.
// El commit es atómico: ninguna mutación parcial es visible para otras
// operaciones si fn devuelve error.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		empRepo repository.EmployeeRepository,
		roleRepo repository.RoleRepository,
	) error) error
}

// PasswordHasher colaborador de hashing de credenciales. El dominio trata
// el hash como opaco.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TempPasswordGenerator genera contraseñas temporales para reset. La
// implementación usa crypto/rand; el texto plano se devuelve una sola vez
// y jamás se persiste ni se loguea.
type TempPasswordGenerator interface {
	Generate() (string, error)
}

// TokenIssuer emite el token de sesión para un empleado. Caja negra para
// el núcleo: solo login/registro lo consumen.
type TokenIssuer interface {
	Issue(emp *entity.Employee) (string, error)
}
