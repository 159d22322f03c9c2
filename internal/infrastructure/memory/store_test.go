package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/obras-api/internal/domain"
	"github.com/jhoicas/obras-api/internal/domain/entity"
	"github.com/jhoicas/obras-api/internal/domain/repository"
	"github.com/jhoicas/obras-api/internal/infrastructure/memory"
)

// ─── RunRegistration ──────────────────────────────────────────────────────────

func TestRunRegistration_ErrorDescartaCambios(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Registrations().Create(ctx, &entity.CompanyRegistration{
		ID: "r1", Email: "owner@x.com", Status: entity.RegistrationPending,
	}))

	boom := errors.New("boom")
	err := s.RunRegistration(ctx, func(regs repository.RegistrationRepository, users repository.UserRepository) error {
		require.NoError(t, regs.UpdateStatus(ctx, "r1", entity.RegistrationApproved, time.Now()))
		require.NoError(t, users.Create(ctx, &entity.User{ID: "u1", Email: "owner@x.com", Role: entity.RoleOwner}))
		return boom
	})

	assert.ErrorIs(t, err, boom)
	reg, _ := s.Registrations().GetByID(ctx, "r1")
	assert.Equal(t, entity.RegistrationPending, reg.Status)
	assert.Nil(t, reg.ReviewedAt)
	u, _ := s.Users().GetByID(ctx, "u1")
	assert.Nil(t, u)
}

func TestRunRegistration_CommitAplicaCambios(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Registrations().Create(ctx, &entity.CompanyRegistration{
		ID: "r1", Email: "owner@x.com", Status: entity.RegistrationPending,
	}))

	err := s.RunRegistration(ctx, func(regs repository.RegistrationRepository, users repository.UserRepository) error {
		if err := regs.UpdateStatus(ctx, "r1", entity.RegistrationApproved, time.Now()); err != nil {
			return err
		}
		return users.Create(ctx, &entity.User{ID: "u1", CompanyID: "r1", Email: "owner@x.com", Role: entity.RoleOwner})
	})

	require.NoError(t, err)
	reg, _ := s.Registrations().GetByID(ctx, "r1")
	assert.Equal(t, entity.RegistrationApproved, reg.Status)
	assert.NotNil(t, reg.ReviewedAt)
	u, _ := s.Users().GetByEmail(ctx, "owner@x.com")
	require.NotNil(t, u)
	assert.Equal(t, "r1", u.CompanyID)
}

// ─── Restricciones ────────────────────────────────────────────────────────────

func TestUserRepo_EmailDuplicado(t *testing.T) {
	ctx := context.Background()
	users := memory.NewStore().Users()
	require.NoError(t, users.Create(ctx, &entity.User{ID: "a", Email: "dup@x.com"}))

	err := users.Create(ctx, &entity.User{ID: "b", Email: "dup@x.com"})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestProjectRepo_AsignacionDuplicada(t *testing.T) {
	ctx := context.Background()
	projects := memory.NewStore().Projects()
	a := &entity.ProjectAssignment{ProjectID: "p1", ContractorID: "c1", AssignedAt: time.Now()}
	require.NoError(t, projects.Assign(ctx, a))
	require.NoError(t, projects.Assign(ctx, &entity.ProjectAssignment{ProjectID: "p1", ContractorID: "c2"}))

	assert.ErrorIs(t, projects.Assign(ctx, a), domain.ErrDuplicateAssignment)
}

func TestReportRepo_ListFiltraYOrdena(t *testing.T) {
	ctx := context.Background()
	reports := memory.NewStore().Reports()
	day := func(s string) time.Time {
		d, err := time.Parse(entity.DateLayout, s)
		require.NoError(t, err)
		return d
	}
	for i, date := range []string{"2024-02-29", "2024-03-01", "2024-03-15", "2024-03-31", "2024-04-01"} {
		require.NoError(t, reports.Create(ctx, &entity.DailyProgressReport{
			ID: date, ProjectID: "p1", ReportDate: day(date), CreatedAt: time.Unix(int64(i), 0),
		}))
	}
	require.NoError(t, reports.Create(ctx, &entity.DailyProgressReport{ID: "otro", ProjectID: "p2", ReportDate: day("2024-03-15")}))

	from, to, ok := entity.PeriodMonth.Range(day("2024-03-15"))
	require.True(t, ok)
	got, err := reports.List(ctx, entity.ReportFilter{ProjectID: "p1", From: &from, To: &to})

	require.NoError(t, err)
	ids := make([]string, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"2024-03-31", "2024-03-15", "2024-03-01"}, ids)
}
