package entity

import "time"

// User representa un usuario del sistema. Se crea una sola vez (aprobación de empresa o
// aprovisionamiento) y no se edita ni se elimina.
type User struct {
	ID             string
	CompanyID      string // vacío solo para Admin
	Email          string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	Role           Role
	Specialization string // solo tiene sentido para Contractor
	CreatedBy      string // vacío para Admin y para el Owner creado al aprobar
	CreatedAt      time.Time
}
