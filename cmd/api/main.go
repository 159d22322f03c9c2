package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/obras-api/internal/application/auth"
	"github.com/jhoicas/obras-api/internal/application/procurement"
	"github.com/jhoicas/obras-api/internal/application/usecase"
	"github.com/jhoicas/obras-api/internal/domain/repository"
	"github.com/jhoicas/obras-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/obras-api/internal/infrastructure/pdf"
	"github.com/jhoicas/obras-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/obras-api/internal/interfaces/http"
	"github.com/jhoicas/obras-api/pkg/config"
	"github.com/jhoicas/obras-api/pkg/logger"
)

// repos agrupa los adaptadores de persistencia del driver elegido.
type repos struct {
	users     repository.UserRepository
	regs      repository.RegistrationRepository
	projects  repository.ProjectRepository
	reports   repository.ReportRepository
	materials repository.MaterialRequestRepository
	orders    repository.PurchaseOrderRepository
	invoices  repository.InvoiceRepository
	tx        usecase.RegistrationTxRunner
	close     func()
}

func openRepos(ctx context.Context, cfg config.DBConfig) (*repos, error) {
	if cfg.Driver == config.DriverMemory {
		s := memory.NewStore()
		return &repos{
			users: s.Users(), regs: s.Registrations(), projects: s.Projects(), reports: s.Reports(),
			materials: s.Materials(), orders: s.PurchaseOrders(), invoices: s.Invoices(),
			tx: s, close: func() {},
		}, nil
	}
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &repos{
		users:     postgres.NewUserRepository(pool),
		regs:      postgres.NewRegistrationRepository(pool),
		projects:  postgres.NewProjectRepository(pool),
		reports:   postgres.NewReportRepository(pool),
		materials: postgres.NewMaterialRepository(pool),
		orders:    postgres.NewPurchaseOrderRepository(pool),
		invoices:  postgres.NewInvoiceRepository(pool),
		tx:        postgres.NewTxRunner(pool),
		close:     pool.Close,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	r, err := openRepos(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer r.close()

	authUC := auth.NewAuthUseCase(r.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if cfg.Admin.Email != "" {
		created, err := authUC.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			log.Fatal().Err(err).Str("email", cfg.Admin.Email).Msg("alta del admin")
		}
		if created {
			log.Info().Str("email", cfg.Admin.Email).Msg("admin creado")
		}
	}

	// PDF: representación de la orden de compra con sus facturas
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.FiberErrorHandler(log.Component("http")),
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "Obras API",
		}))
	} else {
		log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		RegistrationUC:   usecase.NewRegistrationUseCase(r.tx, r.regs),
		UserUC:           usecase.NewUserUseCase(r.users),
		ProjectUC:        usecase.NewProjectUseCase(r.projects, r.users),
		ReportUC:         usecase.NewReportUseCase(r.reports, r.projects, r.users),
		MaterialUC:       usecase.NewMaterialUseCase(r.materials, r.projects, r.users),
		ProcurementUC:    procurement.NewUseCase(r.users, r.orders, r.invoices),
		PurchaseOrderPDF: procurement.NewPDFUseCase(r.orders, r.invoices, pdfGenerator),
		JWTSecret:        cfg.JWT.Secret,
		Logger:           log,
		Metrics:          httpRouter.NewMetrics(),
		RateBurst:        cfg.RateLimit.Burst,
		RatePerSecond:    cfg.RateLimit.PerSecond,
		ServiceName:      cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
