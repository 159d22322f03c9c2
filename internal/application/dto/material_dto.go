package dto

import "time"

// CreateMaterialRequest entrada para solicitar materiales.
type CreateMaterialRequest struct {
	ProjectID string `json:"project_id" validate:"required"`
	Details   string `json:"details" validate:"required"`
}

// CreateMaterialResponse confirmación con el ID de la requisición.
type CreateMaterialResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

// MaterialRequestResponse requisición en listados.
type MaterialRequestResponse struct {
	ID             string    `json:"request_id"`
	ProjectID      string    `json:"project_id"`
	EngineerID     string    `json:"created_by_engineer_id"`
	RequesterEmail string    `json:"requester_email,omitempty"`
	Details        string    `json:"details"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
