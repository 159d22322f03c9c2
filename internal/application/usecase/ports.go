package usecase

import (
	"context"

	"github.com/jhoicas/obras-api/internal/domain/repository"
)

// RegistrationTxRunner ejecuta fn dentro de una transacción con repos atados a esa tx.
// Aprobar o rechazar una empresa cambia el estado y crea al Owner en una sola unidad atómica.
type RegistrationTxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		regRepo repository.RegistrationRepository,
		userRepo repository.UserRepository,
	) error) error
}
