package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 24*60, cfg.JWT.Expiration, "los tokens expiran a las 24h por defecto")
	assert.Equal(t, "0.0.0.0:5000", cfg.HTTP.Addr())
}

func TestLoad_SinSecreto_Falla(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_DriverDesconocido_Falla(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "mysql")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_EnteroInvalidoUsaDefault(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("HTTP_PORT", "no-es-numero")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.HTTP.Port)
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "obras", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/obras?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}

func TestLoadMigrate_NoExigeSecreto(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/obras")
	db, admin, err := LoadMigrate()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/obras", db.ConnectionString())
	assert.Empty(t, admin.Email)
}

func TestLoadMigrate_AdminSinPassword_Falla(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@obras.co")
	_, _, err := LoadMigrate()
	assert.Error(t, err)
}
