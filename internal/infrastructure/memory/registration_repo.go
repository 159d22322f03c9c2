package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/obras-api/internal/domain"
	"github.com/jhoicas/obras-api/internal/domain/entity"
	"github.com/jhoicas/obras-api/internal/domain/repository"
)

var _ repository.RegistrationRepository = (*RegistrationRepo)(nil)

// RegistrationRepo implementa repository.RegistrationRepository.
type RegistrationRepo struct{ v view }

func (r *RegistrationRepo) Create(_ context.Context, reg *entity.CompanyRegistration) error {
	return r.v.write(func(d *data) error {
		d.regs[reg.ID] = *reg
		return nil
	})
}

func (r *RegistrationRepo) GetByID(_ context.Context, id string) (*entity.CompanyRegistration, error) {
	var out *entity.CompanyRegistration
	r.v.read(func(d *data) {
		if reg, ok := d.regs[id]; ok {
			out = &reg
		}
	})
	return out, nil
}

// GetByIDForUpdate es igual a GetByID: dentro de RunRegistration el Store ya está bloqueado.
func (r *RegistrationRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.CompanyRegistration, error) {
	return r.GetByID(ctx, id)
}

func (r *RegistrationRepo) ListByStatus(_ context.Context, status string) ([]*entity.CompanyRegistration, error) {
	var out []*entity.CompanyRegistration
	r.v.read(func(d *data) {
		for _, reg := range d.regs {
			if reg.Status == status {
				reg := reg
				out = append(out, &reg)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *RegistrationRepo) UpdateStatus(_ context.Context, id, status string, reviewedAt time.Time) error {
	return r.v.write(func(d *data) error {
		reg, ok := d.regs[id]
		if !ok {
			return domain.ErrNotFound
		}
		reg.Status = status
		reg.ReviewedAt = &reviewedAt
		d.regs[id] = reg
		return nil
	})
}
