package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjectRequest entrada para crear un proyecto. Las fechas van como YYYY-MM-DD.
type CreateProjectRequest struct {
	ProjectName string          `json:"project_name" validate:"required"`
	Budget      decimal.Decimal `json:"budget"`
	Location    string          `json:"location"`
	ProjectType string          `json:"project_type"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
}

// CreateProjectResponse confirmación con el ID del proyecto.
type CreateProjectResponse struct {
	Message   string `json:"message"`
	ProjectID string `json:"projectId"`
}

// AssignContractorRequest entrada para asignar un contratista.
type AssignContractorRequest struct {
	ProjectID    string `json:"project_id" validate:"required"`
	ContractorID string `json:"contractor_id" validate:"required"`
}

// ProjectResponse proyecto en listados.
type ProjectResponse struct {
	ID          string          `json:"project_id"`
	CompanyID   string          `json:"company_id"`
	CreatedByPM string          `json:"created_by_pm_id"`
	ProjectName string          `json:"project_name"`
	Budget      decimal.Decimal `json:"budget"`
	Location    string          `json:"location"`
	ProjectType string          `json:"project_type"`
	StartDate   *string         `json:"start_date"`
	EndDate     *string         `json:"end_date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TeamMemberResponse contratista asignado a un proyecto.
type TeamMemberResponse struct {
	ID             string    `json:"user_id"`
	Email          string    `json:"email"`
	Specialization string    `json:"contractor_specialization,omitempty"`
	AssignedAt     time.Time `json:"assigned_at"`
}
