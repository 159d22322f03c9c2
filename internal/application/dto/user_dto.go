package dto

// CreateUserRequest entrada para aprovisionar un usuario bajo el creador autenticado.
type CreateUserRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Role           string `json:"role" validate:"required"`
	Specialization string `json:"specialization"`
}

// UserSummary usuario en listados (contratistas, proveedores, equipo de proyecto).
type UserSummary struct {
	ID             string `json:"user_id"`
	Email          string `json:"email"`
	Specialization string `json:"contractor_specialization,omitempty"`
}
