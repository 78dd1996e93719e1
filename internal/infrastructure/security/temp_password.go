package security

import (
	"crypto/rand"
	"fmt"

	"github.com/jhoicas/Empleados-api/internal/application/ports"
)

var _ ports.TempPasswordGenerator = (*TempPasswordGenerator)(nil)

// Alfabeto sin caracteres ambiguos (0/O, 1/l/I) para dictado por teléfono.
const tempPasswordAlphabet = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ23456789"

const tempPasswordLength = 12

// TempPasswordGenerator genera contraseñas temporales con crypto/rand.
type TempPasswordGenerator struct{}

// NewTempPasswordGenerator construye el generador.
func NewTempPasswordGenerator() *TempPasswordGenerator {
	return &TempPasswordGenerator{}
}

// Generate devuelve una contraseña temporal aleatoria. El rechazo por
// módulo evita sesgo sobre el alfabeto.
func (g *TempPasswordGenerator) Generate() (string, error) {
	out := make([]byte, 0, tempPasswordLength)
	max := byte(len(tempPasswordAlphabet))
	limit := byte(256 - (256 % len(tempPasswordAlphabet)))
	buf := make([]byte, 1)
	for len(out) < tempPasswordLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("generar contraseña temporal: %w", err)
		}
		if buf[0] >= limit {
			continue
		}
		out = append(out, tempPasswordAlphabet[buf[0]%max])
	}
	return string(out), nil
}
