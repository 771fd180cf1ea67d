package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Timesheets-api/internal/domain/entity"
	"github.com/jhoicas/Timesheets-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

const taskColumns = `id, tenant_id, project_id, name, description, assigned_to, status, priority, estimated_hours, due_date, is_billable, created_at, updated_at`

// TaskRepo implementación del puerto TaskRepository sobre PostgreSQL (usable con pool o tx).
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador de persistencia para tareas. Pasar pool o tx (Querier).
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

// Create persiste una nueva tarea.
func (r *TaskRepo) Create(t *entity.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.TenantID, t.ProjectID, t.Name, t.Description, t.AssignedTo, t.Status,
		t.Priority, t.EstimatedHours, t.DueDate, t.IsBillable, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID dentro del tenant. Retorna (nil, nil) si no existe.
func (r *TaskRepo) GetByID(id, tenantID string) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND tenant_id = $2`
	t, err := scanTask(r.q.QueryRow(context.Background(), query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// ListByProject lista las tareas de un proyecto del tenant.
func (r *TaskRepo) ListByProject(projectID, tenantID string) ([]*entity.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks WHERE project_id = $1 AND tenant_id = $2 ORDER BY created_at DESC`
	return r.list(query, projectID, tenantID)
}

// ListByTenant lista tareas del tenant con paginación.
func (r *TaskRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, tenantID, limit, offset)
}

// Update actualiza una tarea del tenant.
func (r *TaskRepo) Update(t *entity.Task) error {
	query := `
		UPDATE tasks SET name = $3, description = $4, assigned_to = $5, status = $6, priority = $7,
			estimated_hours = $8, due_date = $9, is_billable = $10, updated_at = $11
		WHERE id = $1 AND tenant_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.TenantID, t.Name, t.Description, t.AssignedTo, t.Status, t.Priority,
		t.EstimatedHours, t.DueDate, t.IsBillable, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete elimina una tarea del tenant. Retorna false si no había fila.
func (r *TaskRepo) Delete(id, tenantID string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM tasks WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *TaskRepo) list(query string, args ...any) ([]*entity.Task, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	err := row.Scan(
		&t.ID, &t.TenantID, &t.ProjectID, &t.Name, &t.Description, &t.AssignedTo, &t.Status,
		&t.Priority, &t.EstimatedHours, &t.DueDate, &t.IsBillable, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
