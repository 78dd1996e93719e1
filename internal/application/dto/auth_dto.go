package dto

// RegisterRequest auto-registro: queda pendiente de aprobación.
type RegisterRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	DocumentNumber string `json:"document_number"`
	Phone          string `json:"phone"`
	BirthDate      string `json:"birth_date"` // formato 2006-01-02
	Password       string `json:"password"`
	RoleID         string `json:"role_id"`
	ManagerID      string `json:"manager_id"`
}

// BootstrapRequest alta del primer director del sistema. Solo válida
// mientras no exista un director activo.
type BootstrapRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	DocumentNumber string `json:"document_number"`
	Phone          string `json:"phone"`
	BirthDate      string `json:"birth_date"`
	Password       string `json:"password"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token de sesión más el usuario. PendingApprovals se
// informa solo si el empleado tiene capacidad de aprobación.
type LoginResponse struct {
	Token            string           `json:"token"`
	Employee         EmployeeResponse `json:"employee"`
	PendingApprovals *int             `json:"pending_approvals,omitempty"`
}
