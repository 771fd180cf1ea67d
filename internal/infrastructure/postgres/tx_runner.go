package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Timesheets-api/internal/application/auth"
	"github.com/jhoicas/Timesheets-api/internal/application/timesheet"
	"github.com/jhoicas/Timesheets-api/internal/application/usecase"
	"github.com/jhoicas/Timesheets-api/internal/domain/repository"
)

var _ timesheet.TxRunner = (*TxRunner)(nil)
var _ auth.TxRunner = (*AuthTxRunner)(nil)
var _ usecase.ProjectTxRunner = (*ProjectTxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL con los
// repositorios del ciclo de vida de timesheets atados a la tx.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	sheetRepo repository.TimesheetRepository,
	entryRepo repository.EntryRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewTimesheetRepository(tx), NewEntryRepository(tx), NewAuditLogRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// AuthTxRunner ejecuta callbacks dentro de una transacción con los
// repositorios de registro (tenant + usuario + bitácora) atados a la tx.
type AuthTxRunner struct {
	pool *pgxpool.Pool
}

// NewAuthTxRunner construye el runner de registro con el pool.
func NewAuthTxRunner(pool *pgxpool.Pool) *AuthTxRunner {
	return &AuthTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *AuthTxRunner) Run(ctx context.Context, fn func(
	tenantRepo repository.TenantRepository,
	userRepo repository.UserRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewTenantRepository(tx), NewUserRepository(tx), NewAuditLogRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ProjectTxRunner ejecuta callbacks dentro de una transacción con los
// repositorios de proyectos (proyecto + asignación + bitácora) atados a la tx.
type ProjectTxRunner struct {
	pool *pgxpool.Pool
}

// NewProjectTxRunner construye el runner de proyectos con el pool.
func NewProjectTxRunner(pool *pgxpool.Pool) *ProjectTxRunner {
	return &ProjectTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *ProjectTxRunner) Run(ctx context.Context, fn func(
	projectRepo repository.ProjectRepository,
	assignmentRepo repository.AssignmentRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProjectRepository(tx), NewAssignmentRepository(tx), NewAuditLogRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
