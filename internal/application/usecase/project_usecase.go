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

// ProjectUseCase proyectos, asignación de contratistas y listados por rol.
type ProjectUseCase struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *ProjectUseCase {
	return &ProjectUseCase{projectRepo: projectRepo, userRepo: userRepo}
}

// Create crea un proyecto en la empresa del Project Manager.
func (uc *ProjectUseCase) Create(ctx context.Context, actor access.Actor, in dto.CreateProjectRequest) (*dto.CreateProjectResponse, error) {
	if err := actor.Authorize(access.OpCreateProject); err != nil {
		return nil, err
	}
	if err := domain.Required(domain.Field("project_name", in.ProjectName)); err != nil {
		return nil, err
	}
	if in.Budget.IsNegative() {
		return nil, domain.Invalid("budget no puede ser negativo")
	}
	start, err := parseDate("start_date", in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", in.EndDate)
	if err != nil {
		return nil, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, domain.Invalid("end_date no puede ser anterior a start_date")
	}

	companyID, err := companyOf(ctx, uc.userRepo, actor)
	if err != nil {
		return nil, err
	}
	project := &entity.Project{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		CreatedByPM: actor.UserID,
		Name:        in.ProjectName,
		Budget:      in.Budget,
		Location:    in.Location,
		Type:        in.ProjectType,
		StartDate:   start,
		EndDate:     end,
		CreatedAt:   time.Now(),
	}
	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return &dto.CreateProjectResponse{Message: "Proyecto creado correctamente", ProjectID: project.ID}, nil
}

// Assign asigna un contratista de la misma empresa a un proyecto de la empresa.
// Varios contratistas por proyecto; el mismo par dos veces es domain.ErrDuplicateAssignment.
func (uc *ProjectUseCase) Assign(ctx context.Context, actor access.Actor, in dto.AssignContractorRequest) (*dto.MessageResponse, error) {
	if err := actor.Authorize(access.OpAssignContractor); err != nil {
		return nil, err
	}
	if err := domain.Required(domain.Field("project_id", in.ProjectID), domain.Field("contractor_id", in.ContractorID)); err != nil {
		return nil, err
	}
	companyID, err := companyOf(ctx, uc.userRepo, actor)
	if err != nil {
		return nil, err
	}
	if _, err := projectInCompany(ctx, uc.projectRepo, companyID, in.ProjectID); err != nil {
		return nil, err
	}
	contractor, err := uc.userRepo.GetByID(ctx, in.ContractorID)
	if err != nil {
		return nil, err
	}
	if contractor == nil || contractor.CompanyID != companyID || contractor.Role != entity.RoleContractor {
		return nil, domain.ErrUserNotFound
	}
	err = uc.projectRepo.Assign(ctx, &entity.ProjectAssignment{
		ProjectID:    in.ProjectID,
		ContractorID: in.ContractorID,
		AssignedAt:   time.Now(),
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Contratista asignado correctamente."}, nil
}

// ListForViewer lista proyectos según el rol del actor:
//   - Project Manager: los que creó.
//   - Contractor: los asignados.
//   - Owner: todos los de su empresa.
//   - Site Engineer: los asignados al Contractor que lo creó.
//
// Cualquier otro rol recibe una lista vacía.
func (uc *ProjectUseCase) ListForViewer(ctx context.Context, actor access.Actor) ([]dto.ProjectResponse, error) {
	var (
		list []*entity.Project
		err  error
	)
	switch actor.Role {
	case entity.RoleProjectManager:
		list, err = uc.projectRepo.ListByCreator(ctx, actor.UserID)
	case entity.RoleContractor:
		list, err = uc.projectRepo.ListByContractor(ctx, actor.UserID)
	case entity.RoleOwner:
		var companyID string
		companyID, err = companyOf(ctx, uc.userRepo, actor)
		if err == nil {
			list, err = uc.projectRepo.ListByCompany(ctx, companyID)
		}
	case entity.RoleSiteEngineer:
		var engineer *entity.User
		engineer, err = actingUser(ctx, uc.userRepo, actor)
		if err == nil && engineer.CreatedBy != "" {
			list, err = uc.projectRepo.ListByContractor(ctx, engineer.CreatedBy)
		}
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProjectResponse(p))
	}
	return out, nil
}

// ListAvailableContractors lista los Contractors de la empresa del actor.
func (uc *ProjectUseCase) ListAvailableContractors(ctx context.Context, actor access.Actor) ([]dto.UserSummary, error) {
	u, err := actingUser(ctx, uc.userRepo, actor)
	if err != nil {
		return nil, err
	}
	out := []dto.UserSummary{}
	if u.CompanyID == "" {
		return out, nil
	}
	users, err := uc.userRepo.ListByCompanyAndRole(ctx, u.CompanyID, entity.RoleContractor)
	if err != nil {
		return nil, err
	}
	for _, c := range users {
		out = append(out, toUserSummary(c))
	}
	return out, nil
}

// Team lista los contratistas asignados a un proyecto de la empresa del actor.
func (uc *ProjectUseCase) Team(ctx context.Context, actor access.Actor, projectID string) ([]dto.TeamMemberResponse, error) {
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
	members, err := uc.projectRepo.ListTeam(ctx, projectID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TeamMemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, dto.TeamMemberResponse{
			ID:             m.UserID,
			Email:          m.Email,
			Specialization: m.Specialization,
			AssignedAt:     m.AssignedAt,
		})
	}
	return out, nil
}

func toProjectResponse(p *entity.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		CreatedByPM: p.CreatedByPM,
		ProjectName: p.Name,
		Budget:      p.Budget,
		Location:    p.Location,
		ProjectType: p.Type,
		StartDate:   formatDate(p.StartDate),
		EndDate:     formatDate(p.EndDate),
		CreatedAt:   p.CreatedAt,
	}
}
