package dto

import "time"

// RegisterCompanyRequest entrada pública de registro de empresa.
type RegisterCompanyRequest struct {
	CompanyName  string `json:"company_name" validate:"required"`
	OwnerName    string `json:"owner_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	MobileNumber string `json:"mobile_number" validate:"required"`
}

// RegisterCompanyResponse confirmación con el ID de la solicitud.
type RegisterCompanyResponse struct {
	Message        string `json:"message"`
	RegistrationID string `json:"registrationId"`
}

// RegistrationResponse solicitud de registro (vista del Admin).
type RegistrationResponse struct {
	ID           string     `json:"registration_id"`
	CompanyName  string     `json:"company_name"`
	OwnerName    string     `json:"owner_name"`
	Email        string     `json:"email"`
	MobileNumber string     `json:"mobile_number"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
}
