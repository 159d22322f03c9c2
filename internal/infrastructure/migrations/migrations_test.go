package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_CadaUpTieneDown(t *testing.T) {
	entries, err := fs.ReadDir(FS(), ".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	names := map[string]bool{}
	for _, e := range entries {
		names[e.Name()] = true
	}
	for name := range names {
		if strings.HasSuffix(name, ".up.sql") {
			assert.True(t, names[strings.TrimSuffix(name, ".up.sql")+".down.sql"], name)
		}
	}
}

func TestFS_CreaLasOchoTablas(t *testing.T) {
	var all strings.Builder
	entries, err := fs.ReadDir(FS(), ".")
	require.NoError(t, err)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".up.sql") {
			b, err := fs.ReadFile(FS(), e.Name())
			require.NoError(t, err)
			all.Write(b)
		}
	}
	for _, table := range []string{
		"company_registrations", "users", "projects", "project_assignments",
		"daily_progress_reports", "material_requests", "purchase_orders", "invoices",
	} {
		assert.Contains(t, all.String(), "CREATE TABLE IF NOT EXISTS "+table+" (", table)
	}
	assert.Contains(t, all.String(), "UNIQUE (project_id, contractor_id)")
}
