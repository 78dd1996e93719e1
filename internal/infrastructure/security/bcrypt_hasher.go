package security

import (
	"github.com/jhoicas/Empleados-api/internal/application/ports"
	"golang.org/x/crypto/bcrypt"
)

var _ ports.PasswordHasher = (*BcryptHasher)(nil)

// BcryptHasher implementación del hasher de credenciales sobre bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher construye el hasher con el costo por defecto de bcrypt.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash hashea el texto plano.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify compara el texto plano contra el hash guardado.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
