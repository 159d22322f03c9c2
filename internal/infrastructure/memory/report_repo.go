package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/obras-api/internal/domain/entity"
	"github.com/jhoicas/obras-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementa repository.ReportRepository.
type ReportRepo struct{ v view }

func (r *ReportRepo) Create(_ context.Context, rep *entity.DailyProgressReport) error {
	return r.v.write(func(d *data) error {
		d.reports = append(d.reports, *rep)
		return nil
	})
}

func (r *ReportRepo) List(_ context.Context, f entity.ReportFilter) ([]*entity.DailyProgressReport, error) {
	var out []*entity.DailyProgressReport
	r.v.read(func(d *data) {
		for _, rep := range d.reports {
			if rep.ProjectID != f.ProjectID {
				continue
			}
			if f.From != nil && rep.ReportDate.Before(*f.From) {
				continue
			}
			if f.To != nil && !rep.ReportDate.Before(*f.To) {
				continue
			}
			rep := rep
			if u, ok := d.users[rep.EngineerID]; ok {
				rep.EngineerEmail = u.Email
			}
			out = append(out, &rep)
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].ReportDate.Equal(out[j].ReportDate) {
			return out[i].ReportDate.After(out[j].ReportDate)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
