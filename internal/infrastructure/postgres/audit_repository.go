package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Timesheets-api/internal/domain/entity"
	"github.com/jhoicas/Timesheets-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implementación del puerto AuditLogRepository sobre PostgreSQL (usable con pool o tx).
// La bitácora es append-only: no hay Update ni Delete.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador de persistencia para la bitácora. Pasar pool o tx (Querier).
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create persiste una fila de bitácora.
func (r *AuditLogRepo) Create(l *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, tenant_id, user_id, action, entity_type, entity_id, detail, ip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.TenantID, l.UserID, l.Action, l.EntityType, l.EntityID, l.Detail, l.IP, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// ListByTenant lista la bitácora del tenant, de más reciente a más antigua.
func (r *AuditLogRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.AuditLog, error) {
	query := `
		SELECT id, tenant_id, user_id, action, entity_type, entity_id, detail, ip, created_at
		FROM audit_logs WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		if err := rows.Scan(&l.ID, &l.TenantID, &l.UserID, &l.Action, &l.EntityType, &l.EntityID, &l.Detail, &l.IP, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
