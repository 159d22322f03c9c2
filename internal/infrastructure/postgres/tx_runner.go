package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/obras-api/internal/application/usecase"
	"github.com/jhoicas/obras-api/internal/domain/repository"
)

var _ usecase.RegistrationTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	db TxBeginner
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(db TxBeginner) *TxRunner {
	return &TxRunner{db: db}
}

// RunRegistration inicia una transacción, ejecuta fn con los repos de solicitudes y usuarios
// atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunRegistration(ctx context.Context, fn func(
	regRepo repository.RegistrationRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRegistrationRepository(tx), NewUserRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
