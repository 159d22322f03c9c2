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

// ReportUseCase reportes diarios de avance.
type ReportUseCase struct {
	reportRepo  repository.ReportRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository, projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, projectRepo: projectRepo, userRepo: userRepo}
}

// Create registra un reporte del Site Engineer sobre un proyecto de su empresa.
func (uc *ReportUseCase) Create(ctx context.Context, actor access.Actor, in dto.CreateReportRequest) (*dto.CreateReportResponse, error) {
	if err := actor.Authorize(access.OpCreateReport); err != nil {
		return nil, err
	}
	if err := domain.Required(
		domain.Field("project_id", in.ProjectID),
		domain.Field("report_date", in.ReportDate),
		domain.Field("content", in.Content),
	); err != nil {
		return nil, err
	}
	date, err := parseDate("report_date", in.ReportDate)
	if err != nil {
		return nil, err
	}

	companyID, err := companyOf(ctx, uc.userRepo, actor)
	if err != nil {
		return nil, err
	}
	if _, err := projectInCompany(ctx, uc.projectRepo, companyID, in.ProjectID); err != nil {
		return nil, err
	}
	report := &entity.DailyProgressReport{
		ID:         uuid.New().String(),
		ProjectID:  in.ProjectID,
		EngineerID: actor.UserID,
		ReportDate: *date,
		Content:    in.Content,
		CreatedAt:  time.Now(),
	}
	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	return &dto.CreateReportResponse{Message: "Reporte registrado correctamente", ReportID: report.ID}, nil
}

// List devuelve los reportes del proyecto, más recientes primero. Con period (day, month,
// year) y date se restringe al día, mes o año de date; sin date no se filtra por fecha.
func (uc *ReportUseCase) List(ctx context.Context, actor access.Actor, q dto.ListReportsQuery) ([]dto.ReportResponse, error) {
	if q.ProjectID == "" {
		return nil, domain.Invalid("project_id es requerido")
	}
	filter := entity.ReportFilter{ProjectID: q.ProjectID}
	// el cliente envía period aunque date venga vacío
	period := entity.PeriodNone
	if q.Date != "" {
		var err error
		if period, err = entity.ParseReportPeriod(q.Period); err != nil {
			return nil, domain.Invalid("%s", err.Error())
		}
	}
	if period != entity.PeriodNone {
		ref, err := parseDate("date", q.Date)
		if err != nil {
			return nil, err
		}
		from, to, _ := period.Range(*ref)
		filter.From, filter.To = &from, &to
	}

	companyID, err := companyOf(ctx, uc.userRepo, actor)
	if err != nil {
		return nil, err
	}
	if _, err := projectInCompany(ctx, uc.projectRepo, companyID, q.ProjectID); err != nil {
		return nil, err
	}
	reports, err := uc.reportRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, dto.ReportResponse{
			ID:            r.ID,
			ProjectID:     r.ProjectID,
			EngineerID:    r.EngineerID,
			EngineerEmail: r.EngineerEmail,
			ReportDate:    r.ReportDate.Format(entity.DateLayout),
			Content:       r.Content,
			CreatedAt:     r.CreatedAt,
		})
	}
	return out, nil
}
