package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Timesheets-api/internal/domain"
	"github.com/jhoicas/Timesheets-api/internal/domain/entity"
	"github.com/jhoicas/Timesheets-api/internal/domain/repository"
)

var _ repository.TimesheetRepository = (*TimesheetRepo)(nil)
var _ repository.EntryRepository = (*EntryRepo)(nil)

const timesheetColumns = `id, tenant_id, user_id, week_start_date, week_end_date, status, total_hours, billable_hours, submitted_at, approved_by, approved_at, rejection_reason, notes, created_at, updated_at`

// TimesheetRepo implementación del puerto TimesheetRepository sobre PostgreSQL
// (usable con pool o tx). Las transiciones son UPDATEs condicionales sobre el
// estado actual: la fila solo cambia si nadie ganó la carrera antes.
type TimesheetRepo struct {
	q Querier
}

// NewTimesheetRepository construye el adaptador de persistencia para timesheets. Pasar pool o tx (Querier).
func NewTimesheetRepository(q Querier) *TimesheetRepo {
	return &TimesheetRepo{q: q}
}

// Create persiste un timesheet. (user_id, week_start_date) tiene constraint único.
func (r *TimesheetRepo) Create(ts *entity.Timesheet) error {
	query := `
		INSERT INTO timesheets (` + timesheetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		ts.ID, ts.TenantID, ts.UserID, ts.WeekStartDate, ts.WeekEndDate, ts.Status,
		ts.TotalHours, ts.BillableHours, ts.SubmittedAt, ts.ApprovedBy, ts.ApprovedAt,
		ts.RejectionReason, ts.Notes, ts.CreatedAt, ts.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert timesheet: %w", err)
	}
	return nil
}

// GetByID obtiene un timesheet por ID dentro del tenant. Retorna (nil, nil) si no existe.
func (r *TimesheetRepo) GetByID(id, tenantID string) (*entity.Timesheet, error) {
	query := `SELECT ` + timesheetColumns + ` FROM timesheets WHERE id = $1 AND tenant_id = $2`
	return r.getOne(query, id, tenantID)
}

// GetForWeek obtiene el timesheet de un usuario para una semana. Retorna (nil, nil) si aún no existe.
func (r *TimesheetRepo) GetForWeek(userID, tenantID string, weekStart time.Time) (*entity.Timesheet, error) {
	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets WHERE user_id = $1 AND tenant_id = $2 AND week_start_date = $3`
	return r.getOne(query, userID, tenantID, weekStart)
}

// ListByUser lista los timesheets recientes de un usuario.
func (r *TimesheetRepo) ListByUser(userID, tenantID string, limit int) ([]*entity.Timesheet, error) {
	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets WHERE user_id = $1 AND tenant_id = $2
		ORDER BY week_start_date DESC LIMIT $3`
	return r.list(query, userID, tenantID, limit)
}

// ListByTenant lista timesheets del tenant; status vacío lista todos.
func (r *TimesheetRepo) ListByTenant(tenantID, status string, limit, offset int) ([]*entity.Timesheet, error) {
	if status != "" {
		query := `
			SELECT ` + timesheetColumns + `
			FROM timesheets WHERE tenant_id = $1 AND status = $2
			ORDER BY week_start_date DESC LIMIT $3 OFFSET $4`
		return r.list(query, tenantID, status, limit, offset)
	}
	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets WHERE tenant_id = $1
		ORDER BY week_start_date DESC LIMIT $2 OFFSET $3`
	return r.list(query, tenantID, limit, offset)
}

// UpdateTotals fija los totales recalculados desde las entradas.
func (r *TimesheetRepo) UpdateTotals(id, tenantID string, total, billable decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE timesheets SET total_hours = $3, billable_hours = $4, updated_at = NOW()
		 WHERE id = $1 AND tenant_id = $2`,
		id, tenantID, total, billable)
	if err != nil {
		return fmt.Errorf("update totals: %w", err)
	}
	return nil
}

// Submit transiciona draft|rejected -> submitted con los totales recalculados.
// Retorna false si el timesheet ya no estaba en un estado enviable.
func (r *TimesheetRepo) Submit(id, tenantID string, total, billable decimal.Decimal, at time.Time) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `
		UPDATE timesheets
		SET status = 'submitted', total_hours = $3, billable_hours = $4, submitted_at = $5,
			rejection_reason = '', updated_at = $5
		WHERE id = $1 AND tenant_id = $2 AND status IN ('draft', 'rejected')`,
		id, tenantID, total, billable, at)
	if err != nil {
		return false, fmt.Errorf("submit timesheet: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Approve transiciona submitted -> approved. Retorna false si perdió la carrera.
func (r *TimesheetRepo) Approve(id, tenantID, approverID string, at time.Time) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `
		UPDATE timesheets
		SET status = 'approved', approved_by = $3, approved_at = $4, updated_at = $4
		WHERE id = $1 AND tenant_id = $2 AND status = 'submitted'`,
		id, tenantID, approverID, at)
	if err != nil {
		return false, fmt.Errorf("approve timesheet: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Reject transiciona submitted -> rejected con aprobador, momento y motivo.
// Retorna false si perdió la carrera.
func (r *TimesheetRepo) Reject(id, tenantID, approverID, reason string, at time.Time) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `
		UPDATE timesheets
		SET status = 'rejected', approved_by = $3, rejection_reason = $4, approved_at = $5, updated_at = $5
		WHERE id = $1 AND tenant_id = $2 AND status = 'submitted'`,
		id, tenantID, approverID, reason, at)
	if err != nil {
		return false, fmt.Errorf("reject timesheet: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Lock transiciona approved -> locked. Retorna false si no estaba aprobado.
func (r *TimesheetRepo) Lock(id, tenantID string, at time.Time) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `
		UPDATE timesheets
		SET status = 'locked', updated_at = $3
		WHERE id = $1 AND tenant_id = $2 AND status = 'approved'`,
		id, tenantID, at)
	if err != nil {
		return false, fmt.Errorf("lock timesheet: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *TimesheetRepo) getOne(query string, args ...any) (*entity.Timesheet, error) {
	ts, err := scanTimesheet(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get timesheet: %w", err)
	}
	return ts, nil
}

func (r *TimesheetRepo) list(query string, args ...any) ([]*entity.Timesheet, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list timesheets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Timesheet
	for rows.Next() {
		ts, err := scanTimesheet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan timesheet: %w", err)
		}
		list = append(list, ts)
	}
	return list, rows.Err()
}

func scanTimesheet(row pgx.Row) (*entity.Timesheet, error) {
	var ts entity.Timesheet
	err := row.Scan(
		&ts.ID, &ts.TenantID, &ts.UserID, &ts.WeekStartDate, &ts.WeekEndDate, &ts.Status,
		&ts.TotalHours, &ts.BillableHours, &ts.SubmittedAt, &ts.ApprovedBy, &ts.ApprovedAt,
		&ts.RejectionReason, &ts.Notes, &ts.CreatedAt, &ts.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

const entryColumns = `id, tenant_id, timesheet_id, project_id, task_id, entry_date, hours, description, is_billable, created_at, updated_at`

// EntryRepo implementación del puerto EntryRepository sobre PostgreSQL (usable con pool o tx).
type EntryRepo struct {
	q Querier
}

// NewEntryRepository construye el adaptador de persistencia para entradas. Pasar pool o tx (Querier).
func NewEntryRepository(q Querier) *EntryRepo {
	return &EntryRepo{q: q}
}

// Create persiste una entrada de horas.
func (r *EntryRepo) Create(e *entity.TimesheetEntry) error {
	query := `
		INSERT INTO timesheet_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.TenantID, e.TimesheetID, e.ProjectID, e.TaskID, e.EntryDate,
		e.Hours, e.Description, e.IsBillable, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID dentro del tenant. Retorna (nil, nil) si no existe.
func (r *EntryRepo) GetByID(id, tenantID string) (*entity.TimesheetEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM timesheet_entries WHERE id = $1 AND tenant_id = $2`
	var e entity.TimesheetEntry
	err := r.q.QueryRow(context.Background(), query, id, tenantID).Scan(
		&e.ID, &e.TenantID, &e.TimesheetID, &e.ProjectID, &e.TaskID, &e.EntryDate,
		&e.Hours, &e.Description, &e.IsBillable, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return &e, nil
}

// ListByTimesheet lista las entradas de un timesheet, ordenadas por fecha.
func (r *EntryRepo) ListByTimesheet(timesheetID, tenantID string) ([]*entity.TimesheetEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM timesheet_entries WHERE timesheet_id = $1 AND tenant_id = $2
		ORDER BY entry_date, created_at`
	rows, err := r.q.Query(context.Background(), query, timesheetID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.TimesheetEntry
	for rows.Next() {
		var e entity.TimesheetEntry
		if err := rows.Scan(&e.ID, &e.TenantID, &e.TimesheetID, &e.ProjectID, &e.TaskID, &e.EntryDate,
			&e.Hours, &e.Description, &e.IsBillable, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza una entrada del tenant.
func (r *EntryRepo) Update(e *entity.TimesheetEntry) error {
	query := `
		UPDATE timesheet_entries SET project_id = $3, task_id = $4, entry_date = $5, hours = $6,
			description = $7, is_billable = $8, updated_at = $9
		WHERE id = $1 AND tenant_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.TenantID, e.ProjectID, e.TaskID, e.EntryDate, e.Hours,
		e.Description, e.IsBillable, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	return nil
}

// Delete elimina una entrada del tenant. Retorna false si no había fila.
func (r *EntryRepo) Delete(id, tenantID string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM timesheet_entries WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return false, fmt.Errorf("delete entry: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
