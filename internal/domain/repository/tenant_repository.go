package repository

import "github.com/jhoicas/Timesheets-api/internal/domain/entity"

// TenantRepository define el puerto de persistencia para Tenant (DIP).
type TenantRepository interface {
	Create(tenant *entity.Tenant) error
	GetByID(id string) (*entity.Tenant, error)
	// GetBySlug y GetByDomain retornan (nil, nil) si no existe.
	GetBySlug(slug string) (*entity.Tenant, error)
	GetByDomain(domain string) (*entity.Tenant, error)
	Update(tenant *entity.Tenant) error
}
