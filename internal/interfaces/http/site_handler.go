package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/obras-api/internal/application/dto"
	"github.com/jhoicas/obras-api/internal/application/usecase"
)

// SiteHandler reportes diarios y requisiciones de material (trabajo de obra).
type SiteHandler struct {
	reportUC   *usecase.ReportUseCase
	materialUC *usecase.MaterialUseCase
	err        errorMapper
}

// NewSiteHandler construye el handler de obra.
func NewSiteHandler(reportUC *usecase.ReportUseCase, materialUC *usecase.MaterialUseCase, em errorMapper) *SiteHandler {
	return &SiteHandler{reportUC: reportUC, materialUC: materialUC, err: em}
}

// CreateReport godoc
// @Summary      Registrar reporte diario
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateReportRequest  true  "project_id, report_date (YYYY-MM-DD), content"
// @Success      201   {object}  dto.CreateReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reports [post]
func (h *SiteHandler) CreateReport(c *fiber.Ctx) error {
	var in dto.CreateReportRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.reportUC.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return h.err.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListReports godoc
// @Summary      Reportes de un proyecto
// @Description  period: day | month | year, relativo a date. Sin date no se filtra por fecha.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        project_id  query     string  true   "ID del proyecto"
// @Param        period      query     string  false  "day | month | year"
// @Param        date        query     string  false  "YYYY-MM-DD"
// @Success      200         {array}   dto.ReportResponse
// @Failure      400         {object}  dto.ErrorResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *SiteHandler) ListReports(c *fiber.Ctx) error {
	var q dto.ListReportsQuery
	if err := c.QueryParser(&q); err != nil {
		return badBody(c)
	}
	out, err := h.reportUC.List(c.UserContext(), GetActor(c), q)
	if err != nil {
		return h.err.write(c, err)
	}
	return c.JSON(out)
}

// RequestMaterial godoc
// @Summary      Solicitar materiales
// @Tags         materials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateMaterialRequest  true  "project_id, details"
// @Success      201   {object}  dto.CreateMaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/materials/request [post]
func (h *SiteHandler) RequestMaterial(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.materialUC.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return h.err.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MyRequests godoc
// @Summary      Mis requisiciones
// @Tags         materials
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.MaterialRequestResponse
// @Router       /api/materials/my-requests [get]
func (h *SiteHandler) MyRequests(c *fiber.Ctx) error {
	out, err := h.materialUC.ListMine(c.UserContext(), GetActor(c))
	if err != nil {
		return h.err.write(c, err)
	}
	return c.JSON(out)
}

// ProjectRequests godoc
// @Summary      Requisiciones de un proyecto
// @Tags         materials
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true  "ID del proyecto"
// @Success      200        {array}   dto.MaterialRequestResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/materials/project/{projectId} [get]
func (h *SiteHandler) ProjectRequests(c *fiber.Ctx) error {
	out, err := h.materialUC.ListForProject(c.UserContext(), GetActor(c), c.Params("projectId"))
	if err != nil {
		return h.err.write(c, err)
	}
	return c.JSON(out)
}
