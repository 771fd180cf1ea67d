package entity

import "time"

// Roles válidos para User. Los allow-lists por ruta son planos:
// "owner" no hereda rutas de "admin" salvo que esté listado explícitamente.
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
	RoleOwner    = "owner"
)

// ApproverRoles roles que pueden aprobar/rechazar timesheets de su tenant.
var ApproverRoles = []string{RoleManager, RoleAdmin, RoleOwner}

// ValidRole indica si s es uno de los roles conocidos.
func ValidRole(s string) bool {
	switch s {
	case RoleEmployee, RoleManager, RoleAdmin, RoleOwner:
		return true
	}
	return false
}

// IsApprover indica si el rol pertenece al conjunto aprobador.
func IsApprover(role string) bool {
	for _, r := range ApproverRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User representa un usuario del sistema. Pertenece a exactamente un Tenant
// durante toda su vida; TenantID es inmutable después de la creación.
// Username y Email son únicos por tenant, no globalmente.
type User struct {
	ID           string
	TenantID     string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Role         string // employee, manager, admin, owner
	Status       string // active, inactive, suspended
	Timezone     string
	LastLoginAt  *time.Time
	InvitedBy    *string
	InvitedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive indica si el usuario puede autenticarse.
func (u *User) IsActive() bool {
	return u != nil && u.Status == "active"
}
