package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/jhoicas/obras-api/internal/application/auth"
	"github.com/jhoicas/obras-api/internal/application/procurement"
	"github.com/jhoicas/obras-api/internal/application/usecase"
	"github.com/jhoicas/obras-api/internal/domain/access"
	"github.com/jhoicas/obras-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	RegistrationUC   *usecase.RegistrationUseCase
	UserUC           *usecase.UserUseCase
	ProjectUC        *usecase.ProjectUseCase
	ReportUC         *usecase.ReportUseCase
	MaterialUC       *usecase.MaterialUseCase
	ProcurementUC    *procurement.UseCase
	PurchaseOrderPDF *procurement.PDFUseCase
	JWTSecret        string
	Logger           *logger.Logger
	Metrics          *Metrics // nil = sin /metrics
	RateBurst        int
	RatePerSecond    int
	ServiceName      string
}

// Router registra middlewares globales y las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("http")
	em := errorMapper{log: log}

	app.Use(RequestID())
	app.Use(RequestLogger(log))
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Instrument())
		app.Get("/metrics", deps.Metrics.Handler())
	}
	app.Use(cors.New(cors.Config{
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, " + HeaderRequestID,
		ExposeHeaders: HeaderRequestID + ", Content-Disposition",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	api := app.Group("/api")

	// Auth (público, con límite por IP)
	authHandler := NewAuthHandler(deps.AuthUC, deps.RegistrationUC, em)
	authGroup := api.Group("/auth", RateLimit(deps.RateBurst, deps.RatePerSecond))
	authGroup.Post("/register-company", authHandler.RegisterCompany)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("", AuthMiddleware(deps.JWTSecret))

	adminHandler := NewAdminHandler(deps.RegistrationUC, em)
	admin := protected.Group("/admin")
	admin.Get("/registrations", RequireOperation(access.OpListRegistrations), adminHandler.ListRegistrations)
	admin.Post("/approve/:id", RequireOperation(access.OpApproveRegistration), adminHandler.Approve)
	admin.Post("/reject/:id", RequireOperation(access.OpRejectRegistration), adminHandler.Reject)

	// Users: la matriz creador → rol se valida en el caso de uso
	userHandler := NewUserHandler(deps.UserUC, em)
	protected.Post("/users/create", RequireOperation(access.OpCreateUser), userHandler.Create)

	projectHandler := NewProjectHandler(deps.ProjectUC, em)
	projects := protected.Group("/projects")
	projects.Post("/create", RequireOperation(access.OpCreateProject), projectHandler.Create)
	projects.Post("/assign", RequireOperation(access.OpAssignContractor), projectHandler.Assign)
	projects.Get("/list", projectHandler.List)
	projects.Get("/contractors", projectHandler.Contractors)
	projects.Get("/:projectId/team", projectHandler.Team)

	siteHandler := NewSiteHandler(deps.ReportUC, deps.MaterialUC, em)
	reports := protected.Group("/reports")
	reports.Post("/", RequireOperation(access.OpCreateReport), siteHandler.CreateReport)
	reports.Get("/", siteHandler.ListReports)

	materials := protected.Group("/materials")
	materials.Post("/request", RequireOperation(access.OpRequestMaterial), siteHandler.RequestMaterial)
	materials.Get("/my-requests", siteHandler.MyRequests)
	materials.Get("/project/:projectId", siteHandler.ProjectRequests)

	procHandler := NewProcurementHandler(deps.ProcurementUC, deps.PurchaseOrderPDF, em)
	proc := protected.Group("/procurement")
	proc.Get("/suppliers", RequireOperation(access.OpListSuppliers), procHandler.Suppliers)
	proc.Post("/purchase-orders", RequireOperation(access.OpCreatePurchaseOrder), procHandler.CreatePurchaseOrder)
	proc.Get("/purchase-orders/:id/pdf", procHandler.PurchaseOrderPDF)
	proc.Get("/my-orders", RequireOperation(access.OpListReceivedOrders), procHandler.MyOrders)
	proc.Post("/invoices", RequireOperation(access.OpSubmitInvoice), procHandler.SubmitInvoice)
	proc.Get("/invoices", RequireOperation(access.OpListInvoices), procHandler.Invoices)
}
