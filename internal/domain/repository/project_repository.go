package repository

import "github.com/jhoicas/Timesheets-api/internal/domain/entity"

// ProjectRepository define el puerto de persistencia para Project (DIP).
// Toda lectura/escritura filtra por tenant: una fila de otro tenant es
// indistinguible de una fila inexistente.
type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id, tenantID string) (*entity.Project, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Project, error)
	Update(project *entity.Project) error
	// Delete retorna false si no había fila del tenant con ese id.
	Delete(id, tenantID string) (bool, error)
}

// AssignmentRepository define el puerto para ProjectAssignment (DIP).
type AssignmentRepository interface {
	Create(a *entity.ProjectAssignment) error
	GetByProjectAndUser(projectID, userID, tenantID string) (*entity.ProjectAssignment, error)
	ListByProject(projectID, tenantID string) ([]*entity.ProjectAssignment, error)
}
