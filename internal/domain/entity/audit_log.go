package entity

import "time"

// Acciones registradas en la bitácora.
const (
	AuditLogin           = "user.login"
	AuditRegister        = "user.register"
	AuditInvite          = "user.invite"
	AuditTenantCreated   = "tenant.created"
	AuditSheetSubmitted  = "timesheet.submitted"
	AuditSheetApproved   = "timesheet.approved"
	AuditSheetRejected   = "timesheet.rejected"
	AuditSheetLocked     = "timesheet.locked"
	AuditProjectCreated  = "project.created"
	AuditProjectDeleted  = "project.deleted"
)

// AuditLog registra una acción relevante dentro de un tenant.
type AuditLog struct {
	ID         string
	TenantID   string
	UserID     *string
	Action     string
	EntityType string
	EntityID   string
	Detail     string
	IP         string
	CreatedAt  time.Time
}
