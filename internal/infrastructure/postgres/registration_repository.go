package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/obras-api/internal/domain"
	"github.com/jhoicas/obras-api/internal/domain/entity"
	"github.com/jhoicas/obras-api/internal/domain/repository"
)

var _ repository.RegistrationRepository = (*RegistrationRepo)(nil)

// RegistrationRepo implementación de RegistrationRepository sobre PostgreSQL (pool o tx).
type RegistrationRepo struct {
	q Querier
}

// NewRegistrationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRegistrationRepository(q Querier) *RegistrationRepo {
	return &RegistrationRepo{q: q}
}

const registrationColumns = `id, company_name, owner_name, email, mobile_number, status, created_at, reviewed_at`

// Create persiste una solicitud de registro.
func (r *RegistrationRepo) Create(ctx context.Context, reg *entity.CompanyRegistration) error {
	query := `
		INSERT INTO company_registrations (id, company_name, owner_name, email, mobile_number, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		reg.ID, reg.CompanyName, reg.OwnerName, reg.Email, reg.MobileNumber, reg.Status, reg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company_registration: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID.
func (r *RegistrationRepo) GetByID(ctx context.Context, id string) (*entity.CompanyRegistration, error) {
	return r.get(ctx, `SELECT `+registrationColumns+` FROM company_registrations WHERE id = $1`, id)
}

// GetByIDForUpdate obtiene la solicitud y bloquea la fila (SELECT FOR UPDATE).
func (r *RegistrationRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.CompanyRegistration, error) {
	return r.get(ctx, `SELECT `+registrationColumns+` FROM company_registrations WHERE id = $1 FOR UPDATE`, id)
}

func (r *RegistrationRepo) get(ctx context.Context, query, id string) (*entity.CompanyRegistration, error) {
	reg, err := scanRegistration(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company_registration: %w", err)
	}
	return reg, nil
}

// ListByStatus solicitudes en un estado, más recientes primero.
func (r *RegistrationRepo) ListByStatus(ctx context.Context, status string) ([]*entity.CompanyRegistration, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+registrationColumns+` FROM company_registrations WHERE status = $1 ORDER BY created_at DESC`, status)
	if err != nil {
		return nil, fmt.Errorf("list company_registrations: %w", err)
	}
	defer rows.Close()
	var list []*entity.CompanyRegistration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company_registration: %w", err)
		}
		list = append(list, reg)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado y registra la fecha de revisión.
func (r *RegistrationRepo) UpdateStatus(ctx context.Context, id, status string, reviewedAt time.Time) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE company_registrations SET status = $2, reviewed_at = $3 WHERE id = $1`, id, status, reviewedAt)
	if err != nil {
		return fmt.Errorf("update company_registration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanRegistration(row pgxScanner) (*entity.CompanyRegistration, error) {
	var reg entity.CompanyRegistration
	if err := row.Scan(&reg.ID, &reg.CompanyName, &reg.OwnerName, &reg.Email, &reg.MobileNumber,
		&reg.Status, &reg.CreatedAt, &reg.ReviewedAt); err != nil {
		return nil, err
	}
	return &reg, nil
}
