package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/obras-api/internal/application/dto"
	"github.com/jhoicas/obras-api/internal/application/usecase"
)

// ProjectHandler proyectos y asignación de contratistas.
type ProjectHandler struct {
	uc  *usecase.ProjectUseCase
	err errorMapper
}

// NewProjectHandler construye el handler de proyectos.
func NewProjectHandler(uc *usecase.ProjectUseCase, em errorMapper) *ProjectHandler {
	return &ProjectHandler{uc: uc, err: em}
}

// Create godoc
// @Summary      Crear proyecto
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateProjectRequest  true  "Datos del proyecto (fechas YYYY-MM-DD)"
// @Success      201   {object}  dto.CreateProjectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/projects/create [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return h.err.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Assign godoc
// @Summary      Asignar contratista
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AssignContractorRequest  true  "project_id, contractor_id"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects/assign [post]
func (h *ProjectHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignContractorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Assign(c.UserContext(), GetActor(c), in)
	if err != nil {
		return h.err.write(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Proyectos visibles
// @Description  PM y Owner ven los de su empresa; Contractor los asignados; Site Engineer los de su contratista.
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.ProjectResponse
// @Router       /api/projects/list [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListForViewer(c.UserContext(), GetActor(c))
	if err != nil {
		return h.err.write(c, err)
	}
	return c.JSON(out)
}

// Contractors godoc
// @Summary      Contratistas de la empresa
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.UserSummary
// @Router       /api/projects/contractors [get]
func (h *ProjectHandler) Contractors(c *fiber.Ctx) error {
	out, err := h.uc.ListAvailableContractors(c.UserContext(), GetActor(c))
	if err != nil {
		return h.err.write(c, err)
	}
	return c.JSON(out)
}

// Team godoc
// @Summary      Equipo del proyecto
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true  "ID del proyecto"
// @Success      200        {array}   dto.TeamMemberResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/projects/{projectId}/team [get]
func (h *ProjectHandler) Team(c *fiber.Ctx) error {
	out, err := h.uc.Team(c.UserContext(), GetActor(c), c.Params("projectId"))
	if err != nil {
		return h.err.write(c, err)
	}
	return c.JSON(out)
}
