package dto

// ErrorResponse cuerpo de error HTTP. Error lleva el código de categoría (VALIDATION,
// FORBIDDEN, NOT_FOUND, CONFLICT, ...).
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}

// Credentials credenciales temporales devueltas una única vez.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CredentialsResponse respuesta de aprobación de empresa y de creación de usuario.
type CredentialsResponse struct {
	Message     string      `json:"message"`
	Credentials Credentials `json:"credentials"`
}
