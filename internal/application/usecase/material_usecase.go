package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/obras-api/internal/application/dto"
	"github.com/jhoicas/obras-api/internal/domain"
	"github.com/jhoicas/obras-api/internal/domain/access"
	"github.com/jhoicas/obras-api/internal/domain/entity"
	"github.com/jhoicas/obras-api/internal/domain/repository"
)

// MaterialUseCase requisiciones de material desde obra.
type MaterialUseCase struct {
	materialRepo repository.MaterialRequestRepository
	projectRepo  repository.ProjectRepository
	userRepo     repository.UserRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(materialRepo repository.MaterialRequestRepository, projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *MaterialUseCase {
	return &MaterialUseCase{materialRepo: materialRepo, projectRepo: projectRepo, userRepo: userRepo}
}

// Create registra una requisición en estado Pending.
func (uc *MaterialUseCase) Create(ctx context.Context, actor access.Actor, in dto.CreateMaterialRequest) (*dto.CreateMaterialResponse, error) {
	if err := actor.Authorize(access.OpRequestMaterial); err != nil {
		return nil, err
	}
	if err := domain.Required(domain.Field("project_id", in.ProjectID), domain.Field("details", in.Details)); err != nil {
		return nil, err
	}
	companyID, err := companyOf(ctx, uc.userRepo, actor)
	if err != nil {
		return nil, err
	}
	if _, err := projectInCompany(ctx, uc.projectRepo, companyID, in.ProjectID); err != nil {
		return nil, err
	}
	req := &entity.MaterialRequest{
		ID:         uuid.New().String(),
		ProjectID:  in.ProjectID,
		EngineerID: actor.UserID,
		Details:    in.Details,
		Status:     entity.MaterialStatusPending,
		CreatedAt:  time.Now(),
	}
	if err := uc.materialRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return &dto.CreateMaterialResponse{Message: "Solicitud de material registrada", RequestID: req.ID}, nil
}

// ListMine requisiciones creadas por el actor.
func (uc *MaterialUseCase) ListMine(ctx context.Context, actor access.Actor) ([]dto.MaterialRequestResponse, error) {
	list, err := uc.materialRepo.ListByEngineer(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return toMaterialResponses(list), nil
}

// ListForProject requisiciones de un proyecto de la empresa del actor, con el email del solicitante.
func (uc *MaterialUseCase) ListForProject(ctx context.Context, actor access.Actor, projectID string) ([]dto.MaterialRequestResponse, error) {
	if projectID == "" {
		return nil, domain.Invalid("projectId es requerido")
	}
	companyID, err := companyOf(ctx, uc.userRepo, actor)
	if err != nil {
		return nil, err
	}
	if _, err := projectInCompany(ctx, uc.projectRepo, companyID, projectID); err != nil {
		return nil, err
	}
	list, err := uc.materialRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return toMaterialResponses(list), nil
}

func toMaterialResponses(list []*entity.MaterialRequest) []dto.MaterialRequestResponse {
	out := make([]dto.MaterialRequestResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MaterialRequestResponse{
			ID:             m.ID,
			ProjectID:      m.ProjectID,
			EngineerID:     m.EngineerID,
			RequesterEmail: m.RequesterEmail,
			Details:        m.Details,
			Status:         m.Status,
			CreatedAt:      m.CreatedAt,
		})
	}
	return out
}
