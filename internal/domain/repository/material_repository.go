package repository

import (
	"context"

	"github.com/jhoicas/obras-api/internal/domain/entity"
)

// MaterialRequestRepository define el puerto de persistencia para requisiciones de material.
type MaterialRequestRepository interface {
	Create(ctx context.Context, req *entity.MaterialRequest) error
	ListByEngineer(ctx context.Context, engineerID string) ([]*entity.MaterialRequest, error)
	ListByProject(ctx context.Context, projectID string) ([]*entity.MaterialRequest, error)
}
