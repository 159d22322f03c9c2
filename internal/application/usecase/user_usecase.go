package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/obras-api/internal/application/dto"
	"github.com/jhoicas/obras-api/internal/domain"
	"github.com/jhoicas/obras-api/internal/domain/access"
	"github.com/jhoicas/obras-api/internal/domain/entity"
	"github.com/jhoicas/obras-api/internal/domain/repository"
	"github.com/jhoicas/obras-api/pkg/password"
)

// UserUseCase aprovisionamiento jerárquico de usuarios (Owner → PM/Contractor,
// Contractor → Site Engineer/Supplier).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// CreateSubUser crea un usuario bajo el actor, en la misma empresa que el actor.
// Orden de chequeos: gate del actor, campos, arista de la matriz, empresa del actor.
func (uc *UserUseCase) CreateSubUser(ctx context.Context, actor access.Actor, in dto.CreateUserRequest) (*dto.CredentialsResponse, error) {
	if err := actor.Authorize(access.OpCreateUser); err != nil {
		return nil, err
	}
	if err := domain.Required(domain.Field("email", in.Email), domain.Field("role", in.Role)); err != nil {
		return nil, err
	}
	if !validEmail(in.Email) {
		return nil, domain.Invalid("email inválido")
	}
	target, err := entity.ParseRole(in.Role)
	if err != nil {
		return nil, domain.Invalid("%s", err.Error())
	}
	if err := access.AuthorizeCreate(actor.Role, target); err != nil {
		return nil, err
	}

	creator, err := actingUser(ctx, uc.repo, actor)
	if err != nil {
		return nil, err
	}
	if creator.CompanyID == "" {
		return nil, domain.ErrCompanyNotFound
	}

	plain, err := password.Temporary(password.UserPrefix)
	if err != nil {
		return nil, err
	}
	hash, err := password.Hash(plain)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    creator.CompanyID,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         target,
		CreatedBy:    creator.ID,
		CreatedAt:    time.Now(),
	}
	if target == entity.RoleContractor {
		user.Specialization = in.Specialization
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.CredentialsResponse{
		Message:     fmt.Sprintf("%s creado correctamente.", target),
		Credentials: dto.Credentials{Email: user.Email, Password: plain},
	}, nil
}

func toUserSummary(u *entity.User) dto.UserSummary {
	return dto.UserSummary{ID: u.ID, Email: u.Email, Specialization: u.Specialization}
}
