package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/obras-api/internal/application/usecase"
)

// AdminHandler revisión de solicitudes de registro.
type AdminHandler struct {
	uc  *usecase.RegistrationUseCase
	err errorMapper
}

// NewAdminHandler construye el handler de administración.
func NewAdminHandler(uc *usecase.RegistrationUseCase, em errorMapper) *AdminHandler {
	return &AdminHandler{uc: uc, err: em}
}

// ListRegistrations godoc
// @Summary      Solicitudes pendientes
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.RegistrationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/registrations [get]
func (h *AdminHandler) ListRegistrations(c *fiber.Ctx) error {
	out, err := h.uc.ListPending(c.UserContext(), GetActor(c))
	if err != nil {
		return h.err.write(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar empresa
// @Description  Aprueba la solicitud y crea el Owner. La contraseña temporal se devuelve una sola vez.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID de la solicitud"
// @Success      200  {object}  dto.CredentialsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/approve/{id} [post]
func (h *AdminHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return h.err.write(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar empresa
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID de la solicitud"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/reject/{id} [post]
func (h *AdminHandler) Reject(c *fiber.Ctx) error {
	out, err := h.uc.Reject(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return h.err.write(c, err)
	}
	return c.JSON(out)
}
