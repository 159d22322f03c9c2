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

// RegistrationUseCase flujo de registro de empresas: solicitud pública, revisión del Admin
// y alta del Owner al aprobar.
type RegistrationUseCase struct {
	txRunner RegistrationTxRunner
	regRepo  repository.RegistrationRepository
}

// NewRegistrationUseCase construye el caso de uso.
func NewRegistrationUseCase(txRunner RegistrationTxRunner, regRepo repository.RegistrationRepository) *RegistrationUseCase {
	return &RegistrationUseCase{txRunner: txRunner, regRepo: regRepo}
}

// Submit registra una solicitud en estado Pending Approval. Los cuatro campos son obligatorios.
func (uc *RegistrationUseCase) Submit(ctx context.Context, in dto.RegisterCompanyRequest) (*dto.RegisterCompanyResponse, error) {
	if err := domain.Required(
		domain.Field("company_name", in.CompanyName),
		domain.Field("owner_name", in.OwnerName),
		domain.Field("email", in.Email),
		domain.Field("mobile_number", in.MobileNumber),
	); err != nil {
		return nil, err
	}
	if !validEmail(in.Email) {
		return nil, domain.Invalid("email inválido")
	}
	reg := &entity.CompanyRegistration{
		ID:           uuid.New().String(),
		CompanyName:  in.CompanyName,
		OwnerName:    in.OwnerName,
		Email:        in.Email,
		MobileNumber: in.MobileNumber,
		Status:       entity.RegistrationPending,
		CreatedAt:    time.Now(),
	}
	if err := uc.regRepo.Create(ctx, reg); err != nil {
		return nil, err
	}
	return &dto.RegisterCompanyResponse{
		Message:        "Solicitud registrada. Estado: " + entity.RegistrationPending,
		RegistrationID: reg.ID,
	}, nil
}

// ListPending devuelve las solicitudes pendientes de revisión (solo Admin).
func (uc *RegistrationUseCase) ListPending(ctx context.Context, actor access.Actor) ([]dto.RegistrationResponse, error) {
	if err := actor.Authorize(access.OpListRegistrations); err != nil {
		return nil, err
	}
	list, err := uc.regRepo.ListByStatus(ctx, entity.RegistrationPending)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RegistrationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRegistrationResponse(r))
	}
	return out, nil
}

// Approve pasa la solicitud a Approved y crea al Owner con contraseña temporal, todo en una
// transacción. La contraseña en claro se devuelve solo aquí.
//
// Retorna:
//   - domain.ErrNotFound           si la solicitud no existe (sin escrituras).
//   - domain.ErrRegistrationClosed si ya fue aprobada o rechazada (sin escrituras).
//   - domain.ErrEmailAlreadyExists si el email ya pertenece a otro usuario (rollback).
func (uc *RegistrationUseCase) Approve(ctx context.Context, actor access.Actor, id string) (*dto.CredentialsResponse, error) {
	if err := actor.Authorize(access.OpApproveRegistration); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, domain.Invalid("id de solicitud requerido")
	}
	plain, err := password.Temporary(password.OwnerPrefix)
	if err != nil {
		return nil, err
	}
	hash, err := password.Hash(plain)
	if err != nil {
		return nil, err
	}

	var email string
	err = uc.txRunner.RunRegistration(ctx, func(regRepo repository.RegistrationRepository, userRepo repository.UserRepository) error {
		reg, err := lockPending(ctx, regRepo, id)
		if err != nil {
			return err
		}
		now := time.Now()
		if err := regRepo.UpdateStatus(ctx, reg.ID, entity.RegistrationApproved, now); err != nil {
			return err
		}
		owner := &entity.User{
			ID:           uuid.New().String(),
			CompanyID:    reg.ID,
			Email:        reg.Email,
			PasswordHash: hash,
			Role:         entity.RoleOwner,
			CreatedAt:    now,
		}
		if err := userRepo.Create(ctx, owner); err != nil {
			return err
		}
		email = reg.Email
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.CredentialsResponse{
		Message:     "Empresa aprobada y usuario Owner creado",
		Credentials: dto.Credentials{Email: email, Password: plain},
	}, nil
}

// Reject pasa la solicitud a Rejected. No crea usuarios.
func (uc *RegistrationUseCase) Reject(ctx context.Context, actor access.Actor, id string) (*dto.MessageResponse, error) {
	if err := actor.Authorize(access.OpRejectRegistration); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, domain.Invalid("id de solicitud requerido")
	}
	err := uc.txRunner.RunRegistration(ctx, func(regRepo repository.RegistrationRepository, _ repository.UserRepository) error {
		reg, err := lockPending(ctx, regRepo, id)
		if err != nil {
			return err
		}
		return regRepo.UpdateStatus(ctx, reg.ID, entity.RegistrationRejected, time.Now())
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Empresa rechazada"}, nil
}

func lockPending(ctx context.Context, regRepo repository.RegistrationRepository, id string) (*entity.CompanyRegistration, error) {
	reg, err := regRepo.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: solicitud de registro %s", domain.ErrNotFound, id)
	}
	if !reg.Pending() {
		return nil, fmt.Errorf("%w (estado %s)", domain.ErrRegistrationClosed, reg.Status)
	}
	return reg, nil
}

func toRegistrationResponse(r *entity.CompanyRegistration) dto.RegistrationResponse {
	return dto.RegistrationResponse{
		ID:           r.ID,
		CompanyName:  r.CompanyName,
		OwnerName:    r.OwnerName,
		Email:        r.Email,
		MobileNumber: r.MobileNumber,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
		ReviewedAt:   r.ReviewedAt,
	}
}
