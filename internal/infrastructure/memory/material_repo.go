package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/obras-api/internal/domain/entity"
	"github.com/jhoicas/obras-api/internal/domain/repository"
)

var _ repository.MaterialRequestRepository = (*MaterialRepo)(nil)

// MaterialRepo implementa repository.MaterialRequestRepository.
type MaterialRepo struct{ v view }

func (r *MaterialRepo) Create(_ context.Context, m *entity.MaterialRequest) error {
	return r.v.write(func(d *data) error {
		d.materials = append(d.materials, *m)
		return nil
	})
}

func (r *MaterialRepo) ListByEngineer(_ context.Context, engineerID string) ([]*entity.MaterialRequest, error) {
	return r.filter(func(m entity.MaterialRequest) bool { return m.EngineerID == engineerID }, false), nil
}

func (r *MaterialRepo) ListByProject(_ context.Context, projectID string) ([]*entity.MaterialRequest, error) {
	return r.filter(func(m entity.MaterialRequest) bool { return m.ProjectID == projectID }, true), nil
}

func (r *MaterialRepo) filter(keep func(entity.MaterialRequest) bool, withEmail bool) []*entity.MaterialRequest {
	var out []*entity.MaterialRequest
	r.v.read(func(d *data) {
		for _, m := range d.materials {
			if !keep(m) {
				continue
			}
			m := m
			if u, ok := d.users[m.EngineerID]; ok && withEmail {
				m.RequesterEmail = u.Email
			}
			out = append(out, &m)
		}
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
