package dto

import "time"

// TenantResponse salida de un tenant.
type TenantResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Domain      string     `json:"domain,omitempty"`
	Subdomain   string     `json:"subdomain,omitempty"`
	Plan        string     `json:"plan"`
	MaxUsers    int        `json:"max_users"`
	Status      string     `json:"status"`
	TrialEndsAt *time.Time `json:"trial_ends_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// UpdateTenantRequest entrada para actualizar el tenant propio (admin/owner).
type UpdateTenantRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=255"`
	Domain    *string `json:"domain" validate:"omitempty,max=255"`
	Subdomain *string `json:"subdomain" validate:"omitempty,max=100"`
	Status    *string `json:"status" validate:"omitempty,oneof=active suspended inactive"`
}

// ValidateTenantResponse salida pública de validación de slug.
// Expone solo datos no sensibles del tenant.
type ValidateTenantResponse struct {
	Valid  bool   `json:"valid"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Plan   string `json:"plan"`
}
