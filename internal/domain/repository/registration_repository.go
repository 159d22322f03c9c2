package repository

import (
	"context"
	"time"

	"github.com/jhoicas/obras-api/internal/domain/entity"
)

// RegistrationRepository define el puerto de persistencia para CompanyRegistration.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *entity.CompanyRegistration) error
	GetByID(ctx context.Context, id string) (*entity.CompanyRegistration, error)
	// GetByIDForUpdate bloquea la fila hasta el fin de la transacción (usar dentro de TxRunner).
	GetByIDForUpdate(ctx context.Context, id string) (*entity.CompanyRegistration, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.CompanyRegistration, error)
	UpdateStatus(ctx context.Context, id, status string, reviewedAt time.Time) error
}
