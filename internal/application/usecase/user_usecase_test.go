package usecase_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/obras-api/internal/application/dto"
	"github.com/jhoicas/obras-api/internal/domain"
	"github.com/jhoicas/obras-api/internal/domain/access"
	"github.com/jhoicas/obras-api/internal/domain/entity"
	"github.com/jhoicas/obras-api/pkg/password"
)

// ─── Matriz de autorización ───────────────────────────────────────────────────

func TestCreateSubUser_RolesSinPermisoSiempreFallan(t *testing.T) {
	f := newFixture()
	for _, acting := range []entity.Role{entity.RoleAdmin, entity.RoleProjectManager, entity.RoleSiteEngineer, entity.RoleSupplier} {
		for _, target := range entity.Roles() {
			_, err := f.users.CreateSubUser(f.ctx, access.Actor{UserID: "u", Role: acting}, dto.CreateUserRequest{
				Email: "n@x.com", Role: string(target),
			})
			assert.ErrorIs(t, err, domain.ErrForbidden, "%s → %s", acting, target)
		}
	}
}

func TestCreateSubUser_ParesFueraDeMatriz(t *testing.T) {
	f := newFixture()
	owner, _ := f.approvedOwner(t, "owner@x.com")
	contractor := f.provision(t, owner, "c@x.com", entity.RoleContractor)

	pairs := []struct {
		actor  access.Actor
		target entity.Role
	}{
		{owner, entity.RoleSiteEngineer},
		{owner, entity.RoleSupplier},
		{owner, entity.RoleOwner},
		{owner, entity.RoleAdmin},
		{contractor, entity.RoleProjectManager},
		{contractor, entity.RoleContractor},
		{contractor, entity.RoleOwner},
	}
	for _, p := range pairs {
		_, err := f.users.CreateSubUser(f.ctx, p.actor, dto.CreateUserRequest{Email: "z@x.com", Role: string(p.target)})
		assert.ErrorIs(t, err, domain.ErrForbidden, "%s → %s", p.actor.Role, p.target)
		assert.Contains(t, err.Error(), string(p.actor.Role))
	}
	u, _ := f.store.Users().GetByEmail(f.ctx, "z@x.com")
	assert.Nil(t, u)
}

func TestCreateSubUser_AutorizacionAntesQueValidacion(t *testing.T) {
	f := newFixture()
	_, err := f.users.CreateSubUser(f.ctx, access.Actor{UserID: "u", Role: entity.RoleSupplier}, dto.CreateUserRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ─── Alcance por empresa ──────────────────────────────────────────────────────

func TestCreateSubUser_CadenaHeredaEmpresa(t *testing.T) {
	f := newFixture()
	owner, companyID := f.approvedOwner(t, "owner@x.com")
	_, otherCompany := f.approvedOwner(t, "otro@y.com")

	for i := 0; i < 3; i++ {
		contractor := f.provision(t, owner, fmt.Sprintf("c%d@x.com", i), entity.RoleContractor)
		pm := f.provision(t, owner, fmt.Sprintf("pm%d@x.com", i), entity.RoleProjectManager)
		engineer := f.provision(t, contractor, fmt.Sprintf("se%d@x.com", i), entity.RoleSiteEngineer)
		supplier := f.provision(t, contractor, fmt.Sprintf("s%d@x.com", i), entity.RoleSupplier)

		for _, a := range []access.Actor{contractor, pm, engineer, supplier} {
			assert.Equal(t, companyID, f.companyOf(t, a))
			assert.NotEqual(t, otherCompany, f.companyOf(t, a))
		}
		u, _ := f.store.Users().GetByID(f.ctx, engineer.UserID)
		assert.Equal(t, contractor.UserID, u.CreatedBy)
	}
}

func TestCreateSubUser_DevuelveCredencialesUnaVez(t *testing.T) {
	f := newFixture()
	owner, _ := f.approvedOwner(t, "owner@x.com")

	res, err := f.users.CreateSubUser(f.ctx, owner, dto.CreateUserRequest{
		Email: "c1@x.com", Role: "Contractor", Specialization: "Eléctrico",
	})
	require.NoError(t, err)

	assert.Equal(t, "c1@x.com", res.Credentials.Email)
	assert.Regexp(t, `^User@\d{4}$`, res.Credentials.Password)
	u, _ := f.store.Users().GetByEmail(f.ctx, "c1@x.com")
	require.NotNil(t, u)
	assert.True(t, password.Matches(u.PasswordHash, res.Credentials.Password))
	assert.Equal(t, "Eléctrico", u.Specialization)
}

func TestCreateSubUser_EspecialidadSoloParaContractor(t *testing.T) {
	f := newFixture()
	owner, _ := f.approvedOwner(t, "owner@x.com")

	_, err := f.users.CreateSubUser(f.ctx, owner, dto.CreateUserRequest{
		Email: "pm@x.com", Role: "Project Manager", Specialization: "Eléctrico",
	})
	require.NoError(t, err)

	u, _ := f.store.Users().GetByEmail(f.ctx, "pm@x.com")
	assert.Empty(t, u.Specialization)
}

func TestCreateSubUser_EmailDuplicadoEsConflicto(t *testing.T) {
	f := newFixture()
	owner, _ := f.approvedOwner(t, "owner@x.com")
	f.provision(t, owner, "c1@x.com", entity.RoleContractor)

	_, err := f.users.CreateSubUser(f.ctx, owner, dto.CreateUserRequest{Email: "c1@x.com", Role: "Project Manager"})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCreateSubUser_ValidacionDeEntrada(t *testing.T) {
	f := newFixture()
	owner, _ := f.approvedOwner(t, "owner@x.com")

	cases := []dto.CreateUserRequest{
		{Role: "Contractor"},
		{Email: "a@x.com"},
		{Email: "no-es-email", Role: "Contractor"},
		{Email: "a@x.com", Role: "Arquitecto"},
	}
	for _, in := range cases {
		_, err := f.users.CreateSubUser(f.ctx, owner, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%+v", in)
	}
}

func TestCreateSubUser_TokenHuerfanoEsNotFound(t *testing.T) {
	f := newFixture()
	_, err := f.users.CreateSubUser(f.ctx, access.Actor{UserID: "borrado", Role: entity.RoleOwner}, dto.CreateUserRequest{
		Email: "c@x.com", Role: "Contractor",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
