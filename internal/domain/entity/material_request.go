package entity

import "time"

// MaterialStatusPending es el único estado inicial; ningún flujo lo modifica todavía.
const MaterialStatusPending = "Pending"

// MaterialRequest es una requisición de materiales hecha desde obra.
type MaterialRequest struct {
	ID             string
	ProjectID      string
	EngineerID     string
	RequesterEmail string // solo en lecturas por proyecto
	Details        string
	Status         string
	CreatedAt      time.Time
}
