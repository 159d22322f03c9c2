package usecase

import (
	"context"
	"net/mail"
	"time"

	"github.com/jhoicas/obras-api/internal/domain"
	"github.com/jhoicas/obras-api/internal/domain/access"
	"github.com/jhoicas/obras-api/internal/domain/entity"
	"github.com/jhoicas/obras-api/internal/domain/repository"
)

// actingUser carga el usuario del token. Un token cuyo usuario ya no existe es un error duro.
func actingUser(ctx context.Context, users repository.UserRepository, actor access.Actor) (*entity.User, error) {
	u, err := users.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

// companyOf resuelve la empresa del actor; domain.ErrCompanyNotFound si no tiene.
func companyOf(ctx context.Context, users repository.UserRepository, actor access.Actor) (string, error) {
	u, err := actingUser(ctx, users, actor)
	if err != nil {
		return "", err
	}
	if u.CompanyID == "" {
		return "", domain.ErrCompanyNotFound
	}
	return u.CompanyID, nil
}

// projectInCompany carga el proyecto y exige que pertenezca a companyID. Un proyecto de otra
// empresa se reporta como inexistente.
func projectInCompany(ctx context.Context, projects repository.ProjectRepository, companyID, projectID string) (*entity.Project, error) {
	p, err := projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.CompanyID != companyID {
		return nil, domain.ErrProjectNotFound
	}
	return p, nil
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func parseDate(field, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return nil, domain.Invalid("%s debe tener formato YYYY-MM-DD", field)
	}
	return &d, nil
}

func formatDate(d *time.Time) *string {
	if d == nil {
		return nil
	}
	s := d.Format(entity.DateLayout)
	return &s
}
