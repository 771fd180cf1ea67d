package repository

import "github.com/jhoicas/Timesheets-api/internal/domain/entity"

// AuditLogRepository define el puerto de persistencia para AuditLog (DIP).
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	ListByTenant(tenantID string, limit, offset int) ([]*entity.AuditLog, error)
}
