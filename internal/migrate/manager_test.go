package migrate

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFiles = fstest.MapFS{
	"0001_a.up.sql":   {Data: []byte("CREATE TABLE a (id int);\nINSERT INTO a VALUES (1);")},
	"0001_a.down.sql": {Data: []byte("DROP TABLE a;")},
	"0002_b.up.sql":   {Data: []byte("CREATE TABLE b (note text DEFAULT 'x;y');")},
	"0002_b.down.sql": {Data: []byte("DROP TABLE b;")},
}

func TestSplitStatements_RespetaLiterales(t *testing.T) {
	got := splitStatements("CREATE TABLE b (note text DEFAULT 'x;y');\nSELECT 1;")
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "'x;y'")
}

func TestUp_AplicaSoloPendientes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT name FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("0001_a.up.sql"))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE b").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs("0002_b.up.sql", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	applied, err := NewManager(db, testFiles).Up(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"0002_b.up.sql"}, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDown_RevierteUltima(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT name FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("0001_a.up.sql").AddRow("0002_b.up.sql"))
	mock.ExpectBegin()
	mock.ExpectExec("DROP TABLE b").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectExec("DELETE FROM schema_migrations").
		WithArgs("0002_b.up.sql").
		WillReturnResult(sqlmock.NewResult(0, 1))

	last, err := NewManager(db, testFiles).Down(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "0002_b.up.sql", last)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDown_SinMigracionesAplicadas(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT name FROM schema_migrations").WillReturnRows(sqlmock.NewRows([]string{"name"}))

	_, err = NewManager(db, testFiles).Down(context.Background())

	assert.ErrorIs(t, err, ErrNothingToRollback)
	assert.NoError(t, mock.ExpectationsWereMet())
}
