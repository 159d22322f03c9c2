package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/obras-api/internal/application/dto"
	"github.com/jhoicas/obras-api/internal/domain"
	"github.com/jhoicas/obras-api/internal/domain/entity"
)

func TestCreateMaterial_EstadoInicialPending(t *testing.T) {
	f := newFixture()
	c := f.newCompany(t, "a")
	pid := f.newProject(t, c.pm, "P")

	res, err := f.materials.Create(f.ctx, c.engineer, dto.CreateMaterialRequest{ProjectID: pid, Details: "50 bultos de cemento"})
	require.NoError(t, err)
	require.NotEmpty(t, res.RequestID)

	mine, err := f.materials.ListMine(f.ctx, c.engineer)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, entity.MaterialStatusPending, mine[0].Status)
}

func TestCreateMaterial_SoloSiteEngineer(t *testing.T) {
	f := newFixture()
	c := f.newCompany(t, "a")
	_, err := f.materials.Create(f.ctx, c.pm, dto.CreateMaterialRequest{ProjectID: "p", Details: "x"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListMaterials_RecientesPrimeroYConEmail(t *testing.T) {
	f := newFixture()
	c := f.newCompany(t, "a")
	pid := f.newProject(t, c.pm, "P")
	for _, d := range []string{"primero", "segundo"} {
		_, err := f.materials.Create(f.ctx, c.engineer, dto.CreateMaterialRequest{ProjectID: pid, Details: d})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	list, err := f.materials.ListForProject(f.ctx, c.contractor, pid)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "segundo", list[0].Details)
	assert.Equal(t, "a-se@x.com", list[0].RequesterEmail)

	b := f.newCompany(t, "b")
	_, err = f.materials.ListForProject(f.ctx, b.owner, pid)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}
