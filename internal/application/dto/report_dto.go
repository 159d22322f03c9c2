package dto

import "time"

// CreateReportRequest entrada para registrar un reporte diario.
type CreateReportRequest struct {
	ProjectID  string `json:"project_id" validate:"required"`
	ReportDate string `json:"report_date" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

// CreateReportResponse confirmación con el ID del reporte.
type CreateReportResponse struct {
	Message  string `json:"message"`
	ReportID string `json:"reportId"`
}

// ListReportsQuery query params de GET /reports.
type ListReportsQuery struct {
	ProjectID string `query:"project_id"`
	Period    string `query:"period"`
	Date      string `query:"date"`
}

// ReportResponse reporte diario en listados.
type ReportResponse struct {
	ID            string    `json:"report_id"`
	ProjectID     string    `json:"project_id"`
	EngineerID    string    `json:"created_by_engineer_id"`
	EngineerEmail string    `json:"engineer_email"`
	ReportDate    string    `json:"report_date"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}
