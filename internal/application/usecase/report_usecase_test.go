package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/obras-api/internal/application/dto"
	"github.com/jhoicas/obras-api/internal/domain"
)

func TestCreateReport_SoloSiteEngineer(t *testing.T) {
	f := newFixture()
	c := f.newCompany(t, "a")
	_, err := f.reports.Create(f.ctx, c.contractor, dto.CreateReportRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateReport_CamposRequeridosNombrados(t *testing.T) {
	f := newFixture()
	c := f.newCompany(t, "a")

	_, err := f.reports.Create(f.ctx, c.engineer, dto.CreateReportRequest{ProjectID: "p"})

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "report_date")
	assert.Contains(t, err.Error(), "content")
	assert.NotContains(t, err.Error(), "project_id")
}

func TestListReports_FiltrosPorPeriodo(t *testing.T) {
	f := newFixture()
	c := f.newCompany(t, "a")
	pid := f.newProject(t, c.pm, "P")
	other := f.newProject(t, c.pm, "Q")

	for _, d := range []string{"2024-02-28", "2024-03-01", "2024-03-15", "2024-03-15", "2024-03-31", "2025-03-15"} {
		_, err := f.reports.Create(f.ctx, c.engineer, dto.CreateReportRequest{ProjectID: pid, ReportDate: d, Content: "avance " + d})
		require.NoError(t, err)
	}
	_, err := f.reports.Create(f.ctx, c.engineer, dto.CreateReportRequest{ProjectID: other, ReportDate: "2024-03-15", Content: "otro"})
	require.NoError(t, err)

	dates := func(period, date string) []string {
		list, err := f.reports.List(f.ctx, c.pm, dto.ListReportsQuery{ProjectID: pid, Period: period, Date: date})
		require.NoError(t, err)
		out := []string{}
		for _, r := range list {
			out = append(out, r.ReportDate)
		}
		return out
	}

	assert.Equal(t, []string{"2024-03-31", "2024-03-15", "2024-03-15", "2024-03-01"}, dates("month", "2024-03-15"))
	assert.Equal(t, []string{"2024-03-15", "2024-03-15"}, dates("day", "2024-03-15"))
	assert.Equal(t, []string{"2024-03-31", "2024-03-15", "2024-03-15", "2024-03-01", "2024-02-28"}, dates("year", "2024-06-01"))
	all := []string{"2025-03-15", "2024-03-31", "2024-03-15", "2024-03-15", "2024-03-01", "2024-02-28"}
	assert.Equal(t, all, dates("", ""))
}

func TestListReports_PeriodoSinDateNoFiltra(t *testing.T) {
	f := newFixture()
	c := f.newCompany(t, "a")
	pid := f.newProject(t, c.pm, "P")
	for _, d := range []string{"2023-12-31", "2024-03-15"} {
		_, err := f.reports.Create(f.ctx, c.engineer, dto.CreateReportRequest{ProjectID: pid, ReportDate: d, Content: "avance"})
		require.NoError(t, err)
	}

	for _, period := range []string{"month", "day", "year", "week"} {
		list, err := f.reports.List(f.ctx, c.pm, dto.ListReportsQuery{ProjectID: pid, Period: period, Date: ""})
		require.NoError(t, err, period)
		require.Len(t, list, 2, period)
		assert.Equal(t, "2024-03-15", list[0].ReportDate)
	}
}

func TestListReports_IncluyeEmailDelIngeniero(t *testing.T) {
	f := newFixture()
	c := f.newCompany(t, "a")
	pid := f.newProject(t, c.pm, "P")
	_, err := f.reports.Create(f.ctx, c.engineer, dto.CreateReportRequest{ProjectID: pid, ReportDate: "2024-03-15", Content: "ok"})
	require.NoError(t, err)

	list, err := f.reports.List(f.ctx, c.owner, dto.ListReportsQuery{ProjectID: pid})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a-se@x.com", list[0].EngineerEmail)
}

func TestListReports_Validaciones(t *testing.T) {
	f := newFixture()
	c := f.newCompany(t, "a")
	pid := f.newProject(t, c.pm, "P")

	cases := map[string]dto.ListReportsQuery{
		"sin proyecto":     {Period: "day", Date: "2024-03-15"},
		"periodo inválido": {ProjectID: pid, Period: "week", Date: "2024-03-15"},
		"date mal formada": {ProjectID: pid, Period: "day", Date: "15-03-2024"},
	}
	for name, q := range cases {
		_, err := f.reports.List(f.ctx, c.pm, q)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
}

func TestListReports_ProyectoAjenoEsNotFound(t *testing.T) {
	f := newFixture()
	a := f.newCompany(t, "a")
	b := f.newCompany(t, "b")
	pid := f.newProject(t, a.pm, "P")

	_, err := f.reports.List(f.ctx, b.pm, dto.ListReportsQuery{ProjectID: pid})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	_, err = f.reports.Create(f.ctx, b.engineer, dto.CreateReportRequest{ProjectID: pid, ReportDate: "2024-03-15", Content: "x"})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}
