package auth

import (
	"context"

	"github.com/jhoicas/Timesheets-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD. Se usa para
// que la creación de tenant + usuario owner (y su fila de auditoría) sea
// atómica: nunca queda un tenant sin owner ni un owner huérfano.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		tenantRepo repository.TenantRepository,
		userRepo repository.UserRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}
