package repository

import (
	"context"

	"github.com/jhoicas/obras-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando no existe la fila.
type UserRepository interface {
	// Create devuelve domain.ErrEmailAlreadyExists si el email ya existe.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ListByCompanyAndRole(ctx context.Context, companyID string, role entity.Role) ([]*entity.User, error)
	ListByCreatorAndRole(ctx context.Context, creatorID string, role entity.Role) ([]*entity.User, error)
}
