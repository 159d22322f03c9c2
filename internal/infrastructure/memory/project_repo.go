package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/obras-api/internal/domain"
	"github.com/jhoicas/obras-api/internal/domain/entity"
	"github.com/jhoicas/obras-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementa repository.ProjectRepository.
type ProjectRepo struct{ v view }

func (r *ProjectRepo) Create(_ context.Context, p *entity.Project) error {
	return r.v.write(func(d *data) error {
		d.projects[p.ID] = *p
		return nil
	})
}

func (r *ProjectRepo) GetByID(_ context.Context, id string) (*entity.Project, error) {
	var out *entity.Project
	r.v.read(func(d *data) {
		if p, ok := d.projects[id]; ok {
			out = &p
		}
	})
	return out, nil
}

func (r *ProjectRepo) ListByCreator(_ context.Context, pmID string) ([]*entity.Project, error) {
	return r.filter(func(_ *data, p entity.Project) bool { return p.CreatedByPM == pmID }), nil
}

func (r *ProjectRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Project, error) {
	return r.filter(func(_ *data, p entity.Project) bool { return p.CompanyID == companyID }), nil
}

func (r *ProjectRepo) ListByContractor(_ context.Context, contractorID string) ([]*entity.Project, error) {
	return r.filter(func(d *data, p entity.Project) bool {
		for _, a := range d.assignments {
			if a.ProjectID == p.ID && a.ContractorID == contractorID {
				return true
			}
		}
		return false
	}), nil
}

func (r *ProjectRepo) Assign(_ context.Context, a *entity.ProjectAssignment) error {
	return r.v.write(func(d *data) error {
		for _, existing := range d.assignments {
			if existing.ProjectID == a.ProjectID && existing.ContractorID == a.ContractorID {
				return domain.ErrDuplicateAssignment
			}
		}
		d.assignments = append(d.assignments, *a)
		return nil
	})
}

func (r *ProjectRepo) ListTeam(_ context.Context, projectID string) ([]*entity.TeamMember, error) {
	var out []*entity.TeamMember
	r.v.read(func(d *data) {
		for _, a := range d.assignments {
			if a.ProjectID != projectID {
				continue
			}
			u, ok := d.users[a.ContractorID]
			if !ok {
				continue
			}
			out = append(out, &entity.TeamMember{
				UserID:         u.ID,
				Email:          u.Email,
				Specialization: u.Specialization,
				AssignedAt:     a.AssignedAt,
			})
		}
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].AssignedAt.Before(out[j].AssignedAt) })
	return out, nil
}

// filter devuelve los proyectos que cumplen keep, más recientes primero.
func (r *ProjectRepo) filter(keep func(d *data, p entity.Project) bool) []*entity.Project {
	var out []*entity.Project
	r.v.read(func(d *data) {
		for _, p := range d.projects {
			if keep(d, p) {
				p := p
				out = append(out, &p)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
