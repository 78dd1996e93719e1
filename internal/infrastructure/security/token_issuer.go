package security

import (
	"github.com/jhoicas/Empleados-api/internal/application/ports"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/pkg/jwt"
)

var _ ports.TokenIssuer = (*JWTIssuer)(nil)

// JWTIssuer emisor de tokens de sesión sobre pkg/jwt.
type JWTIssuer struct {
	secret     string
	issuer     string
	expMinutes int
}

// NewJWTIssuer construye el emisor con la configuración de la app.
func NewJWTIssuer(secret, issuer string, expMinutes int) *JWTIssuer {
	return &JWTIssuer{secret: secret, issuer: issuer, expMinutes: expMinutes}
}

// Issue emite el token para un empleado.
func (i *JWTIssuer) Issue(emp *entity.Employee) (string, error) {
	return jwt.Generate(i.secret, emp.ID, emp.RoleID, i.issuer, i.expMinutes)
}
