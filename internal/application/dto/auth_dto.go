package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionUser datos del usuario devueltos al iniciar sesión (el frontend redirige por rol).
type SessionUser struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Specialization string `json:"specialization"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    SessionUser `json:"user"`
}
