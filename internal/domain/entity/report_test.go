package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/obras-api/internal/domain/entity"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(entity.DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestReportPeriod_Range(t *testing.T) {
	ref := mustDate(t, "2024-03-15")
	cases := []struct {
		period   entity.ReportPeriod
		from, to string
	}{
		{entity.PeriodDay, "2024-03-15", "2024-03-16"},
		{entity.PeriodMonth, "2024-03-01", "2024-04-01"},
		{entity.PeriodYear, "2024-01-01", "2025-01-01"},
	}
	for _, tc := range cases {
		t.Run(string(tc.period), func(t *testing.T) {
			from, to, ok := tc.period.Range(ref)
			require.True(t, ok)
			assert.Equal(t, mustDate(t, tc.from), from)
			assert.Equal(t, mustDate(t, tc.to), to)
		})
	}
}

func TestReportPeriod_DiciembreCruzaAnio(t *testing.T) {
	from, to, ok := entity.PeriodMonth.Range(mustDate(t, "2023-12-31"))
	require.True(t, ok)
	assert.Equal(t, mustDate(t, "2023-12-01"), from)
	assert.Equal(t, mustDate(t, "2024-01-01"), to)
}

func TestReportPeriod_SinFiltro(t *testing.T) {
	_, _, ok := entity.PeriodNone.Range(time.Now())
	assert.False(t, ok)
}

func TestParseReportPeriod(t *testing.T) {
	for _, s := range []string{"", "day", "month", "year"} {
		_, err := entity.ParseReportPeriod(s)
		assert.NoError(t, err, s)
	}
	_, err := entity.ParseReportPeriod("week")
	assert.Error(t, err)
}

func TestParseRole(t *testing.T) {
	for _, r := range entity.Roles() {
		got, err := entity.ParseRole(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	_, err := entity.ParseRole("project manager")
	assert.Error(t, err, "la comparación de roles es exacta")
}
