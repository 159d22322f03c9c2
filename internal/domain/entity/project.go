package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project representa una obra. Pertenece a la empresa del Project Manager que la crea.
type Project struct {
	ID          string
	CompanyID   string
	CreatedByPM string
	Name        string
	Budget      decimal.Decimal
	Location    string
	Type        string
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
}

// ProjectAssignment vincula un contratista con un proyecto (un par por combinación).
type ProjectAssignment struct {
	ProjectID    string
	ContractorID string
	AssignedAt   time.Time
}

// TeamMember es un contratista asignado a un proyecto.
type TeamMember struct {
	UserID         string
	Email          string
	Specialization string
	AssignedAt     time.Time
}
