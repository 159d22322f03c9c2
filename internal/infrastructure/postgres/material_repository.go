package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/obras-api/internal/domain/entity"
	"github.com/jhoicas/obras-api/internal/domain/repository"
)

var _ repository.MaterialRequestRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación de MaterialRequestRepository sobre PostgreSQL.
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// Create persiste una requisición.
func (r *MaterialRepo) Create(ctx context.Context, m *entity.MaterialRequest) error {
	query := `
		INSERT INTO material_requests (id, project_id, created_by_engineer_id, details, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, m.ID, m.ProjectID, m.EngineerID, m.Details, m.Status, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert material_request: %w", err)
	}
	return nil
}

// ListByEngineer requisiciones creadas por un Site Engineer.
func (r *MaterialRepo) ListByEngineer(ctx context.Context, engineerID string) ([]*entity.MaterialRequest, error) {
	return r.list(ctx, `
		SELECT m.id, m.project_id, m.created_by_engineer_id, '', m.details, m.status, m.created_at
		FROM material_requests m
		WHERE m.created_by_engineer_id = $1
		ORDER BY m.created_at DESC`, engineerID)
}

// ListByProject requisiciones de un proyecto con el email del solicitante.
func (r *MaterialRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.MaterialRequest, error) {
	return r.list(ctx, `
		SELECT m.id, m.project_id, m.created_by_engineer_id, COALESCE(u.email, ''), m.details, m.status, m.created_at
		FROM material_requests m
		LEFT JOIN users u ON u.id = m.created_by_engineer_id
		WHERE m.project_id = $1
		ORDER BY m.created_at DESC`, projectID)
}

func (r *MaterialRepo) list(ctx context.Context, query string, args ...any) ([]*entity.MaterialRequest, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list material_requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaterialRequest
	for rows.Next() {
		var m entity.MaterialRequest
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.EngineerID, &m.RequesterEmail, &m.Details, &m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan material_request: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
