package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/obras-api/internal/application/auth"
	"github.com/jhoicas/obras-api/internal/application/dto"
	"github.com/jhoicas/obras-api/internal/application/usecase"
)

// AuthHandler maneja el registro público de empresas y el login.
type AuthHandler struct {
	uc    *auth.AuthUseCase
	regUC *usecase.RegistrationUseCase
	err   errorMapper
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, regUC *usecase.RegistrationUseCase, em errorMapper) *AuthHandler {
	return &AuthHandler{uc: uc, regUC: regUC, err: em}
}

// RegisterCompany godoc
// @Summary      Solicitar alta de empresa
// @Description  Crea una solicitud en estado "Pending Approval" que revisa el Admin.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterCompanyRequest  true  "company_name, owner_name, email, mobile_number"
// @Success      201   {object}  dto.RegisterCompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/auth/register-company [post]
func (h *AuthHandler) RegisterCompany(c *fiber.Ctx) error {
	var in dto.RegisterCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.regUC.Submit(c.UserContext(), in)
	if err != nil {
		return h.err.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return h.err.write(c, err)
	}
	return c.JSON(out)
}
