package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Timesheets-api/internal/application/dto"
	"github.com/jhoicas/Timesheets-api/internal/domain"
	"github.com/jhoicas/Timesheets-api/internal/domain/entity"
	"github.com/jhoicas/Timesheets-api/internal/domain/repository"
)

// ProjectUseCase CRUD de proyectos y asignaciones, acotado al tenant del token.
type ProjectUseCase struct {
	projectRepo    repository.ProjectRepository
	assignmentRepo repository.AssignmentRepository
	userRepo       repository.UserRepository
	tx             ProjectTxRunner
}

// NewProjectUseCase construye el caso de uso de proyectos.
func NewProjectUseCase(projectRepo repository.ProjectRepository, assignmentRepo repository.AssignmentRepository, userRepo repository.UserRepository, tx ProjectTxRunner) *ProjectUseCase {
	return &ProjectUseCase{projectRepo: projectRepo, assignmentRepo: assignmentRepo, userRepo: userRepo, tx: tx}
}

// Create crea un proyecto y asigna a su creador como lead, atómicamente.
func (uc *ProjectUseCase) Create(ctx context.Context, tenantID, creatorID string, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.HourlyRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.ManagerID != nil {
		manager, err := uc.userRepo.GetByID(*in.ManagerID, tenantID)
		if err != nil {
			return nil, err
		}
		if manager == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	billable := true
	if in.IsBillable != nil {
		billable = *in.IsBillable
	}
	project := &entity.Project{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Name:        in.Name,
		Description: in.Description,
		ClientName:  in.ClientName,
		Status:      entity.ProjectActive,
		ManagerID:   in.ManagerID,
		HourlyRate:  in.HourlyRate,
		IsBillable:  billable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	assignment := &entity.ProjectAssignment{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		ProjectID:     project.ID,
		UserID:        creatorID,
		Role:          entity.AssignmentLead,
		CanSubmitTime: true,
		AssignedBy:    &creatorID,
		AssignedAt:    now,
	}

	err := uc.tx.Run(ctx, func(projects repository.ProjectRepository, assignments repository.AssignmentRepository, audits repository.AuditLogRepository) error {
		if err := projects.Create(project); err != nil {
			return err
		}
		if err := assignments.Create(assignment); err != nil {
			return err
		}
		return audits.Create(&entity.AuditLog{
			ID:         uuid.New().String(),
			TenantID:   tenantID,
			UserID:     &creatorID,
			Action:     entity.AuditProjectCreated,
			EntityType: "project",
			EntityID:   project.ID,
			Detail:     "proyecto creado: " + project.Name,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// List devuelve los proyectos del tenant, paginados.
func (uc *ProjectUseCase) List(tenantID string, page dto.PageRequest) (*dto.ProjectListResponse, error) {
	page.DefaultPage()
	projects, err := uc.projectRepo.ListByTenant(tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProjectListResponse{
		Projects: make([]dto.ProjectResponse, 0, len(projects)),
		Page:     dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range projects {
		out.Projects = append(out.Projects, *toProjectResponse(p))
	}
	return out, nil
}

// GetByID devuelve un proyecto del tenant.
func (uc *ProjectUseCase) GetByID(tenantID, id string) (*dto.ProjectResponse, error) {
	project, err := uc.projectRepo.GetByID(id, tenantID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	return toProjectResponse(project), nil
}

// Update modifica un proyecto del tenant.
func (uc *ProjectUseCase) Update(tenantID, id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := uc.projectRepo.GetByID(id, tenantID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		project.Name = *in.Name
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.ClientName != nil {
		project.ClientName = *in.ClientName
	}
	if in.Status != nil {
		if !entity.ValidProjectStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		project.Status = *in.Status
	}
	if in.ManagerID != nil {
		manager, err := uc.userRepo.GetByID(*in.ManagerID, tenantID)
		if err != nil {
			return nil, err
		}
		if manager == nil {
			return nil, domain.ErrNotFound
		}
		project.ManagerID = in.ManagerID
	}
	if in.HourlyRate != nil {
		if in.HourlyRate.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		project.HourlyRate = *in.HourlyRate
	}
	if in.IsBillable != nil {
		project.IsBillable = *in.IsBillable
	}
	project.UpdatedAt = time.Now()
	if err := uc.projectRepo.Update(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// Delete elimina un proyecto del tenant y deja rastro en la bitácora.
func (uc *ProjectUseCase) Delete(ctx context.Context, tenantID, actorID, id string) error {
	return uc.tx.Run(ctx, func(projects repository.ProjectRepository, _ repository.AssignmentRepository, audits repository.AuditLogRepository) error {
		ok, err := projects.Delete(id, tenantID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		return audits.Create(&entity.AuditLog{
			ID:         uuid.New().String(),
			TenantID:   tenantID,
			UserID:     &actorID,
			Action:     entity.AuditProjectDeleted,
			EntityType: "project",
			EntityID:   id,
			CreatedAt:  time.Now(),
		})
	})
}

// Assign asocia un usuario del tenant al proyecto.
func (uc *ProjectUseCase) Assign(tenantID, projectID, assignerID string, in dto.AssignUserRequest) (*dto.AssignmentResponse, error) {
	project, err := uc.projectRepo.GetByID(projectID, tenantID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByID(in.UserID, tenantID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if existing, _ := uc.assignmentRepo.GetByProjectAndUser(projectID, in.UserID, tenantID); existing != nil {
		return nil, domain.ErrDuplicate
	}

	role := in.Role
	if role == "" {
		role = entity.AssignmentMember
	}
	canSubmit := true
	if in.CanSubmitTime != nil {
		canSubmit = *in.CanSubmitTime
	}
	a := &entity.ProjectAssignment{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		ProjectID:     projectID,
		UserID:        in.UserID,
		Role:          role,
		CanSubmitTime: canSubmit,
		AssignedBy:    &assignerID,
		AssignedAt:    time.Now(),
	}
	if err := uc.assignmentRepo.Create(a); err != nil {
		return nil, err
	}
	return toAssignmentResponse(a), nil
}

// Assignments lista las asignaciones de un proyecto del tenant.
func (uc *ProjectUseCase) Assignments(tenantID, projectID string) ([]dto.AssignmentResponse, error) {
	project, err := uc.projectRepo.GetByID(projectID, tenantID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.assignmentRepo.ListByProject(projectID, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssignmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *toAssignmentResponse(a))
	}
	return out, nil
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	if p == nil {
		return nil
	}
	return &dto.ProjectResponse{
		ID:          p.ID,
		TenantID:    p.TenantID,
		Name:        p.Name,
		Description: p.Description,
		ClientName:  p.ClientName,
		Status:      p.Status,
		ManagerID:   p.ManagerID,
		HourlyRate:  p.HourlyRate,
		IsBillable:  p.IsBillable,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toAssignmentResponse(a *entity.ProjectAssignment) *dto.AssignmentResponse {
	return &dto.AssignmentResponse{
		ID:            a.ID,
		ProjectID:     a.ProjectID,
		UserID:        a.UserID,
		Role:          a.Role,
		CanSubmitTime: a.CanSubmitTime,
		AssignedBy:    a.AssignedBy,
		AssignedAt:    a.AssignedAt,
	}
}
