package dto

import "time"

// RegisterRequest entrada para registro. Si no hay tenant resuelto y se
// envían TenantName+TenantSlug, se crea el tenant y el usuario queda como owner.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Role      string `json:"role" validate:"omitempty,oneof=employee manager admin owner"`
	Timezone  string `json:"timezone" validate:"omitempty,max=50"`

	// Campos de creación de tenant (solo cuando no hay tenant resuelto).
	TenantName string `json:"tenant_name" validate:"omitempty,max=255"`
	TenantSlug string `json:"tenant_slug" validate:"omitempty,max=100"`
	Subdomain  string `json:"subdomain" validate:"omitempty,max=100"`
	Domain     string `json:"domain" validate:"omitempty,max=255"`
}

// LoginRequest entrada para login (el tenant viene del contexto de la petición).
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          string     `json:"id"`
	TenantID    string     `json:"tenant_id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	Timezone    string     `json:"timezone"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// LoginResponse salida con token JWT, usuario y tenant.
type LoginResponse struct {
	Token  string         `json:"token"`
	User   UserResponse   `json:"user"`
	Tenant TenantResponse `json:"tenant"`
}

// RegisterResponse salida del registro.
type RegisterResponse struct {
	User        UserResponse   `json:"user"`
	Tenant      TenantResponse `json:"tenant"`
	IsNewTenant bool           `json:"is_new_tenant"`
}

// UpdateUserRequest entrada para actualizar un usuario (admin/owner).
// Punteros: nil = no modificar.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Role      *string `json:"role" validate:"omitempty,oneof=employee manager admin owner"`
	Status    *string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	Timezone  *string `json:"timezone" validate:"omitempty,max=50"`
}

// InviteRequest entrada para invitar un usuario al tenant.
type InviteRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Role      string `json:"role" validate:"omitempty,oneof=employee manager admin"`
}

// InviteResponse salida de la invitación. TempPassword se devuelve en claro
// una única vez; el invitado debe cambiarla en su primer acceso.
type InviteResponse struct {
	User         UserResponse `json:"user"`
	TempPassword string       `json:"temp_password"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Page  PageResponse   `json:"page"`
}
