package repository

import "github.com/jhoicas/Timesheets-api/internal/domain/entity"

// TaskRepository define el puerto de persistencia para Task (DIP).
type TaskRepository interface {
	Create(task *entity.Task) error
	GetByID(id, tenantID string) (*entity.Task, error)
	ListByProject(projectID, tenantID string) ([]*entity.Task, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Task, error)
	Update(task *entity.Task) error
	Delete(id, tenantID string) (bool, error)
}
