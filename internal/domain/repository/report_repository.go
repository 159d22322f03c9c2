package repository

import (
	"context"

	"github.com/jhoicas/obras-api/internal/domain/entity"
)

// ReportRepository define el puerto de persistencia para reportes diarios.
type ReportRepository interface {
	Create(ctx context.Context, report *entity.DailyProgressReport) error
	// List devuelve los reportes del filtro, más recientes primero.
	List(ctx context.Context, filter entity.ReportFilter) ([]*entity.DailyProgressReport, error)
}
