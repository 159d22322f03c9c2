package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/obras-api/internal/application/dto"
	"github.com/jhoicas/obras-api/internal/application/usecase"
)

// UserHandler aprovisionamiento de usuarios.
type UserHandler struct {
	uc  *usecase.UserUseCase
	err errorMapper
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase, em errorMapper) *UserHandler {
	return &UserHandler{uc: uc, err: em}
}

// Create godoc
// @Summary      Crear usuario
// @Description  Owner crea Project Manager o Contractor; Contractor crea Site Engineer o Supplier.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateUserRequest  true  "email, role, specialization"
// @Success      201   {object}  dto.CredentialsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/users/create [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateSubUser(c.UserContext(), GetActor(c), in)
	if err != nil {
		return h.err.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
