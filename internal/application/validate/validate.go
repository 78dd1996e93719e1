// Package validate agrupa validaciones de campos de entrada comunes a los
// casos de uso. Cada violación se reporta como domain.ValidationError con
// el nombre del campo.
package validate

import (
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/Empleados-api/internal/domain"
)

const birthDateLayout = "2006-01-02"

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9 ()-]{7,20}$`)
)

// Email verifica el formato básico del email.
func Email(email string) error {
	if !emailRe.MatchString(strings.TrimSpace(email)) {
		return domain.NewValidationError("email", "formato de email inválido")
	}
	return nil
}

// Phone verifica el formato del teléfono; vacío es válido (opcional).
func Phone(phone string) error {
	if phone == "" {
		return nil
	}
	if !phoneRe.MatchString(phone) {
		return domain.NewValidationError("phone", "formato de teléfono inválido")
	}
	return nil
}

// Password exige un largo mínimo de 8 caracteres.
func Password(field, password string) error {
	if len(password) < 8 {
		return domain.NewValidationError(field, "la contraseña debe tener al menos 8 caracteres")
	}
	return nil
}

// Required verifica que el campo no esté vacío.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domain.NewValidationError(field, "campo requerido")
	}
	return nil
}

// BirthDate parsea la fecha de nacimiento (2006-01-02).
func BirthDate(raw string) (time.Time, error) {
	t, err := time.Parse(birthDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, domain.NewValidationError("birth_date", "fecha inválida, formato esperado 2006-01-02")
	}
	return t, nil
}
