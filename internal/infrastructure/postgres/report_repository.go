package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/obras-api/internal/domain/entity"
	"github.com/jhoicas/obras-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación de ReportRepository sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// Create persiste un reporte diario.
func (r *ReportRepo) Create(ctx context.Context, rep *entity.DailyProgressReport) error {
	query := `
		INSERT INTO daily_progress_reports (id, project_id, created_by_engineer_id, report_date, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, rep.ID, rep.ProjectID, rep.EngineerID, rep.ReportDate, rep.Content, rep.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert daily_progress_report: %w", err)
	}
	return nil
}

// List reportes del proyecto dentro de [From, To) si se indican, más recientes primero.
func (r *ReportRepo) List(ctx context.Context, f entity.ReportFilter) ([]*entity.DailyProgressReport, error) {
	query := `
		SELECT d.id, d.project_id, d.created_by_engineer_id, COALESCE(u.email, ''), d.report_date, d.content, d.created_at
		FROM daily_progress_reports d
		LEFT JOIN users u ON u.id = d.created_by_engineer_id
		WHERE d.project_id = $1`
	args := []any{f.ProjectID}
	if f.From != nil {
		args = append(args, *f.From)
		query += fmt.Sprintf(" AND d.report_date >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		query += fmt.Sprintf(" AND d.report_date < $%d", len(args))
	}
	query += " ORDER BY d.report_date DESC, d.created_at DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list daily_progress_reports: %w", err)
	}
	defer rows.Close()
	var list []*entity.DailyProgressReport
	for rows.Next() {
		var d entity.DailyProgressReport
		if err := rows.Scan(&d.ID, &d.ProjectID, &d.EngineerID, &d.EngineerEmail, &d.ReportDate, &d.Content, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan daily_progress_report: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
