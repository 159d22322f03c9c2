package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/obras-api/internal/domain"
	"github.com/jhoicas/obras-api/internal/domain/entity"
	"github.com/jhoicas/obras-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementación de ProjectRepository sobre PostgreSQL.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

const projectColumns = `p.id, p.company_id, p.created_by_pm_id, p.project_name, p.budget,
	COALESCE(p.location, ''), COALESCE(p.project_type, ''), p.start_date, p.end_date, p.created_at`

// Create persiste un proyecto.
func (r *ProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	query := `
		INSERT INTO projects (id, company_id, created_by_pm_id, project_name, budget, location, project_type,
			start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CompanyID, p.CreatedByPM, p.Name, p.Budget, p.Location, p.Type,
		p.StartDate, p.EndDate, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID.
func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	p, err := scanProject(r.q.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects p WHERE p.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// ListByCreator proyectos creados por un Project Manager.
func (r *ProjectRepo) ListByCreator(ctx context.Context, pmID string) ([]*entity.Project, error) {
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects p
		WHERE p.created_by_pm_id = $1 ORDER BY p.created_at DESC`, pmID)
}

// ListByContractor proyectos asignados a un contratista.
func (r *ProjectRepo) ListByContractor(ctx context.Context, contractorID string) ([]*entity.Project, error) {
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects p
		JOIN project_assignments pa ON pa.project_id = p.id
		WHERE pa.contractor_id = $1 ORDER BY p.created_at DESC`, contractorID)
}

// ListByCompany proyectos de una empresa.
func (r *ProjectRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Project, error) {
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects p
		WHERE p.company_id = $1 ORDER BY p.created_at DESC`, companyID)
}

// Assign inserta la asignación; el par (project_id, contractor_id) es único.
func (r *ProjectRepo) Assign(ctx context.Context, a *entity.ProjectAssignment) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO project_assignments (project_id, contractor_id, assigned_at) VALUES ($1, $2, $3)`,
		a.ProjectID, a.ContractorID, a.AssignedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateAssignment
		}
		return fmt.Errorf("insert project_assignment: %w", err)
	}
	return nil
}

// ListTeam contratistas asignados a un proyecto.
func (r *ProjectRepo) ListTeam(ctx context.Context, projectID string) ([]*entity.TeamMember, error) {
	rows, err := r.q.Query(ctx, `
		SELECT u.id, u.email, COALESCE(u.contractor_specialization, ''), pa.assigned_at
		FROM project_assignments pa
		JOIN users u ON u.id = pa.contractor_id
		WHERE pa.project_id = $1
		ORDER BY pa.assigned_at`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}
	defer rows.Close()
	var list []*entity.TeamMember
	for rows.Next() {
		var m entity.TeamMember
		if err := rows.Scan(&m.UserID, &m.Email, &m.Specialization, &m.AssignedAt); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *ProjectRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Project, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProject(row pgxScanner) (*entity.Project, error) {
	var p entity.Project
	if err := row.Scan(&p.ID, &p.CompanyID, &p.CreatedByPM, &p.Name, &p.Budget,
		&p.Location, &p.Type, &p.StartDate, &p.EndDate, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
