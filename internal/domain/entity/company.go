package entity

import "time"

// Estados de una solicitud de registro de empresa. Approved y Rejected son terminales.
const (
	RegistrationPending  = "Pending Approval"
	RegistrationApproved = "Approved"
	RegistrationRejected = "Rejected"
)

// CompanyRegistration es la solicitud de alta de una empresa. Su ID es también la
// referencia de empresa de todos los usuarios que cuelgan del Owner.
type CompanyRegistration struct {
	ID           string
	CompanyName  string
	OwnerName    string
	Email        string
	MobileNumber string
	Status       string
	CreatedAt    time.Time
	ReviewedAt   *time.Time // nil mientras está pendiente
}

// Pending informa si la solicitud todavía puede revisarse.
func (r *CompanyRegistration) Pending() bool {
	return r.Status == RegistrationPending
}
