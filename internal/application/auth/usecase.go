package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/obras-api/internal/application/dto"
	"github.com/jhoicas/obras-api/internal/domain"
	"github.com/jhoicas/obras-api/internal/domain/entity"
	"github.com/jhoicas/obras-api/internal/domain/repository"
	"github.com/jhoicas/obras-api/pkg/jwt"
	"github.com/jhoicas/obras-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login común a todos los roles y alta del Admin.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Devuelve domain.ErrUserNotFound si el email no existe y domain.ErrUnauthorized si la
// contraseña no coincide.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.Invalid("email y password son requeridos")
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !password.Matches(user.PasswordHash, in.Password) {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Message: "Login exitoso",
		Token:   token,
		User: dto.SessionUser{
			ID:             user.ID,
			Email:          user.Email,
			Role:           string(user.Role),
			Specialization: user.Specialization,
		},
	}, nil
}

// EnsureAdmin crea el usuario Admin de la plataforma si el email todavía no existe.
// Devuelve created=false cuando ya estaba; si el email pertenece a otro rol es un conflicto.
func (uc *AuthUseCase) EnsureAdmin(ctx context.Context, email, plain string) (created bool, err error) {
	if email == "" || plain == "" {
		return false, domain.Invalid("email y password del admin son requeridos")
	}
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if existing.Role != entity.RoleAdmin {
			return false, domain.ErrEmailAlreadyExists
		}
		return false, nil
	}
	hash, err := password.Hash(plain)
	if err != nil {
		return false, err
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, admin); err != nil {
		return false, err
	}
	return true, nil
}
