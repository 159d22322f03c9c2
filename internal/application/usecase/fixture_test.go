package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/obras-api/internal/application/dto"
	"github.com/jhoicas/obras-api/internal/application/usecase"
	"github.com/jhoicas/obras-api/internal/domain/access"
	"github.com/jhoicas/obras-api/internal/domain/entity"
	"github.com/jhoicas/obras-api/internal/infrastructure/memory"
)

var admin = access.Actor{UserID: "admin-1", Role: entity.RoleAdmin}

type fixture struct {
	ctx       context.Context
	store     *memory.Store
	regs      *usecase.RegistrationUseCase
	users     *usecase.UserUseCase
	projects  *usecase.ProjectUseCase
	reports   *usecase.ReportUseCase
	materials *usecase.MaterialUseCase
}

func newFixture() *fixture {
	s := memory.NewStore()
	return &fixture{
		ctx:       context.Background(),
		store:     s,
		regs:      usecase.NewRegistrationUseCase(s, s.Registrations()),
		users:     usecase.NewUserUseCase(s.Users()),
		projects:  usecase.NewProjectUseCase(s.Projects(), s.Users()),
		reports:   usecase.NewReportUseCase(s.Reports(), s.Projects(), s.Users()),
		materials: usecase.NewMaterialUseCase(s.Materials(), s.Projects(), s.Users()),
	}
}

// approvedOwner registra y aprueba una empresa y devuelve el actor Owner y el id de empresa.
func (f *fixture) approvedOwner(t *testing.T, email string) (access.Actor, string) {
	t.Helper()
	sub, err := f.regs.Submit(f.ctx, dto.RegisterCompanyRequest{
		CompanyName: "Obras " + email, OwnerName: "Dueño", Email: email, MobileNumber: "3001234567",
	})
	require.NoError(t, err)
	_, err = f.regs.Approve(f.ctx, admin, sub.RegistrationID)
	require.NoError(t, err)
	return f.actorByEmail(t, email), sub.RegistrationID
}

// provision crea un sub-usuario y devuelve su actor.
func (f *fixture) provision(t *testing.T, creator access.Actor, email string, role entity.Role) access.Actor {
	t.Helper()
	_, err := f.users.CreateSubUser(f.ctx, creator, dto.CreateUserRequest{Email: email, Role: string(role)})
	require.NoError(t, err)
	return f.actorByEmail(t, email)
}

func (f *fixture) actorByEmail(t *testing.T, email string) access.Actor {
	t.Helper()
	u, err := f.store.Users().GetByEmail(f.ctx, email)
	require.NoError(t, err)
	require.NotNil(t, u, email)
	return access.Actor{UserID: u.ID, Role: u.Role}
}

func (f *fixture) companyOf(t *testing.T, a access.Actor) string {
	t.Helper()
	u, err := f.store.Users().GetByID(f.ctx, a.UserID)
	require.NoError(t, err)
	require.NotNil(t, u)
	return u.CompanyID
}
