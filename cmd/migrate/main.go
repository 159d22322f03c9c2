package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/jhoicas/obras-api/internal/application/auth"
	"github.com/jhoicas/obras-api/internal/infrastructure/migrations"
	"github.com/jhoicas/obras-api/internal/infrastructure/postgres"
	"github.com/jhoicas/obras-api/internal/migrate"
	"github.com/jhoicas/obras-api/pkg/config"
	"github.com/jhoicas/obras-api/pkg/logger"
)

func main() {
	dbCfg, adminCfg, err := config.LoadMigrate()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	dsn := flag.String("dsn", dbCfg.ConnectionString(), "PostgreSQL DSN (por defecto DATABASE_URL o DB_*)")
	table := flag.String("table", "schema_migrations", "Tabla de registro de migraciones")
	flag.Parse()

	log := logger.New(logger.Config{Env: os.Getenv("APP_ENV"), Level: "info"}).Component("migrate")
	if len(flag.Args()) == 0 {
		fmt.Fprintln(os.Stderr, "uso: migrate [up|down|status|seed-admin]")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := flag.Arg(0)
	if cmd == "seed-admin" {
		if err := seedAdmin(ctx, *dsn, adminCfg); err != nil {
			log.Fatal().Err(err).Msg("seed-admin")
		}
		log.Info().Str("email", adminCfg.Email).Msg("admin verificado")
		return
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir base de datos")
	}
	defer db.Close()

	mgr := migrate.NewManager(db, migrations.FS(), migrate.WithMigrationsTable(*table))

	switch cmd {
	case "up":
		var applied []string
		applied, err = mgr.Up(ctx)
		for _, name := range applied {
			log.Info().Str("migration", name).Msg("aplicada")
		}
		if err == nil && len(applied) == 0 {
			log.Info().Msg("esquema al día")
		}
	case "down":
		var name string
		name, err = mgr.Down(ctx)
		if errors.Is(err, migrate.ErrNothingToRollback) {
			log.Info().Msg("no hay migraciones para revertir")
			return
		}
		if err == nil {
			log.Info().Str("migration", name).Msg("revertida")
		}
	case "status":
		var history []string
		history, err = mgr.Status(ctx)
		if err == nil {
			for _, item := range history {
				fmt.Println(item)
			}
		}
	default:
		log.Fatal().Str("command", cmd).Msg("comando desconocido")
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", cmd).Msg("migrate")
	}
}

// seedAdmin crea el Admin de ADMIN_EMAIL/ADMIN_PASSWORD si todavía no existe.
func seedAdmin(ctx context.Context, dsn string, admin config.AdminConfig) error {
	if admin.Email == "" {
		return errors.New("ADMIN_EMAIL no definido")
	}
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	if err != nil {
		return err
	}
	defer pool.Close()

	// el token no se emite aquí; solo se usa el alta
	uc := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{})
	_, err = uc.EnsureAdmin(ctx, admin.Email, admin.Password)
	return err
}
