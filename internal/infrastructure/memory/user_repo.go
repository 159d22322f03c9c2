package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/obras-api/internal/domain"
	"github.com/jhoicas/obras-api/internal/domain/entity"
	"github.com/jhoicas/obras-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementa repository.UserRepository.
type UserRepo struct{ v view }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	return r.v.write(func(d *data) error {
		for _, existing := range d.users {
			if existing.Email == u.Email {
				return domain.ErrEmailAlreadyExists
			}
		}
		d.users[u.ID] = *u
		return nil
	})
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	var out *entity.User
	r.v.read(func(d *data) {
		if u, ok := d.users[id]; ok {
			out = &u
		}
	})
	return out, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	var out *entity.User
	r.v.read(func(d *data) {
		for _, u := range d.users {
			if u.Email == email {
				u := u
				out = &u
				return
			}
		}
	})
	return out, nil
}

func (r *UserRepo) ListByCompanyAndRole(_ context.Context, companyID string, role entity.Role) ([]*entity.User, error) {
	return r.filter(func(u entity.User) bool { return u.CompanyID == companyID && u.Role == role }), nil
}

func (r *UserRepo) ListByCreatorAndRole(_ context.Context, creatorID string, role entity.Role) ([]*entity.User, error) {
	return r.filter(func(u entity.User) bool { return u.CreatedBy == creatorID && u.Role == role }), nil
}

func (r *UserRepo) filter(keep func(entity.User) bool) []*entity.User {
	var out []*entity.User
	r.v.read(func(d *data) {
		for _, u := range d.users {
			if keep(u) {
				u := u
				out = append(out, &u)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out
}
