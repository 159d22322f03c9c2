package repository

import (
	"context"

	"github.com/jhoicas/obras-api/internal/domain/entity"
)

// ProjectRepository define el puerto de persistencia para proyectos y asignaciones.
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	ListByCreator(ctx context.Context, pmID string) ([]*entity.Project, error)
	ListByContractor(ctx context.Context, contractorID string) ([]*entity.Project, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Project, error)
	// Assign devuelve domain.ErrDuplicateAssignment si el par ya existe.
	Assign(ctx context.Context, assignment *entity.ProjectAssignment) error
	ListTeam(ctx context.Context, projectID string) ([]*entity.TeamMember, error)
}
