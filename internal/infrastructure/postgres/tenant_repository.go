package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Timesheets-api/internal/domain"
	"github.com/jhoicas/Timesheets-api/internal/domain/entity"
	"github.com/jhoicas/Timesheets-api/internal/domain/repository"
)

var _ repository.TenantRepository = (*TenantRepo)(nil)

const tenantColumns = `id, name, slug, domain, subdomain, plan, max_users, status, trial_ends_at, created_at, updated_at`

// TenantRepo implementación del puerto TenantRepository sobre PostgreSQL (usable con pool o tx).
type TenantRepo struct {
	q Querier
}

// NewTenantRepository construye el adaptador de persistencia para tenants. Pasar pool o tx (Querier).
func NewTenantRepository(q Querier) *TenantRepo {
	return &TenantRepo{q: q}
}

// Create persiste un nuevo tenant. El slug tiene constraint único global.
func (r *TenantRepo) Create(t *entity.Tenant) error {
	query := `
		INSERT INTO tenants (` + tenantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Name, t.Slug, t.Domain, t.Subdomain, t.Plan, t.MaxUsers, t.Status,
		t.TrialEndsAt, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByID obtiene un tenant por ID.
func (r *TenantRepo) GetByID(id string) (*entity.Tenant, error) {
	return r.getOne(`SELECT `+tenantColumns+` FROM tenants WHERE id = $1`, id)
}

// GetBySlug obtiene un tenant por slug. Retorna (nil, nil) si no existe.
func (r *TenantRepo) GetBySlug(slug string) (*entity.Tenant, error) {
	return r.getOne(`SELECT `+tenantColumns+` FROM tenants WHERE slug = $1`, slug)
}

// GetByDomain obtiene un tenant por dominio propio. Retorna (nil, nil) si no existe.
func (r *TenantRepo) GetByDomain(d string) (*entity.Tenant, error) {
	return r.getOne(`SELECT `+tenantColumns+` FROM tenants WHERE domain = $1`, d)
}

// Update actualiza un tenant.
func (r *TenantRepo) Update(t *entity.Tenant) error {
	query := `
		UPDATE tenants SET name = $2, domain = $3, subdomain = $4, plan = $5, max_users = $6,
			status = $7, trial_ends_at = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Name, t.Domain, t.Subdomain, t.Plan, t.MaxUsers, t.Status, t.TrialEndsAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tenant: %w", err)
	}
	return nil
}

func (r *TenantRepo) getOne(query string, arg any) (*entity.Tenant, error) {
	var t entity.Tenant
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&t.ID, &t.Name, &t.Slug, &t.Domain, &t.Subdomain, &t.Plan, &t.MaxUsers, &t.Status,
		&t.TrialEndsAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return &t, nil
}
