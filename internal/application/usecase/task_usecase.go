package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Timesheets-api/internal/application/dto"
	"github.com/jhoicas/Timesheets-api/internal/domain"
	"github.com/jhoicas/Timesheets-api/internal/domain/entity"
	"github.com/jhoicas/Timesheets-api/internal/domain/repository"
)

// TaskUseCase CRUD de tareas, acotado al tenant del token.
type TaskUseCase struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
}

// NewTaskUseCase construye el caso de uso de tareas.
func NewTaskUseCase(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) *TaskUseCase {
	return &TaskUseCase{taskRepo: taskRepo, projectRepo: projectRepo}
}

// Create crea una tarea dentro de un proyecto del tenant.
func (uc *TaskUseCase) Create(tenantID string, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.projectRepo.GetByID(in.ProjectID, tenantID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !entity.ValidPriority(priority) {
		return nil, domain.ErrInvalidInput
	}
	if in.EstimatedHours.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	billable := project.IsBillable
	if in.IsBillable != nil {
		billable = *in.IsBillable
	}
	task := &entity.Task{
		ID:             uuid.New().String(),
		TenantID:       tenantID,
		ProjectID:      in.ProjectID,
		Name:           in.Name,
		Description:    in.Description,
		AssignedTo:     in.AssignedTo,
		Status:         entity.TaskOpen,
		Priority:       priority,
		EstimatedHours: in.EstimatedHours,
		DueDate:        in.DueDate,
		IsBillable:     billable,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// List devuelve tareas del tenant; con projectID filtra por proyecto.
func (uc *TaskUseCase) List(tenantID, projectID string, page dto.PageRequest) (*dto.TaskListResponse, error) {
	page.DefaultPage()
	var (
		tasks []*entity.Task
		err   error
	)
	if projectID != "" {
		tasks, err = uc.taskRepo.ListByProject(projectID, tenantID)
	} else {
		tasks, err = uc.taskRepo.ListByTenant(tenantID, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := &dto.TaskListResponse{
		Tasks: make([]dto.TaskResponse, 0, len(tasks)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, t := range tasks {
		out.Tasks = append(out.Tasks, *toTaskResponse(t))
	}
	return out, nil
}

// GetByID devuelve una tarea del tenant.
func (uc *TaskUseCase) GetByID(tenantID, id string) (*dto.TaskResponse, error) {
	task, err := uc.taskRepo.GetByID(id, tenantID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	return toTaskResponse(task), nil
}

// Update modifica una tarea del tenant.
func (uc *TaskUseCase) Update(tenantID, id string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.taskRepo.GetByID(id, tenantID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		task.Name = *in.Name
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.AssignedTo != nil {
		task.AssignedTo = in.AssignedTo
	}
	if in.Status != nil {
		if !entity.ValidTaskStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		task.Status = *in.Status
	}
	if in.Priority != nil {
		if !entity.ValidPriority(*in.Priority) {
			return nil, domain.ErrInvalidInput
		}
		task.Priority = *in.Priority
	}
	if in.EstimatedHours != nil {
		if in.EstimatedHours.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		task.EstimatedHours = *in.EstimatedHours
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	if in.IsBillable != nil {
		task.IsBillable = *in.IsBillable
	}
	task.UpdatedAt = time.Now()
	if err := uc.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// Delete elimina una tarea del tenant.
func (uc *TaskUseCase) Delete(tenantID, id string) error {
	ok, err := uc.taskRepo.Delete(id, tenantID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	if t == nil {
		return nil
	}
	return &dto.TaskResponse{
		ID:             t.ID,
		TenantID:       t.TenantID,
		ProjectID:      t.ProjectID,
		Name:           t.Name,
		Description:    t.Description,
		AssignedTo:     t.AssignedTo,
		Status:         t.Status,
		Priority:       t.Priority,
		EstimatedHours: t.EstimatedHours,
		DueDate:        t.DueDate,
		IsBillable:     t.IsBillable,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
