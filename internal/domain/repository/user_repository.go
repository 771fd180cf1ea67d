package repository

import (
	"time"

	"github.com/jhoicas/Timesheets-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Todas las búsquedas van acotadas por tenant: la unicidad de username y
// email es por tenant, nunca global.
type UserRepository interface {
	Create(user *entity.User) error
	// GetByID retorna (nil, nil) si el usuario no existe o pertenece a otro tenant.
	GetByID(id, tenantID string) (*entity.User, error)
	GetByUsernameAndTenant(username, tenantID string) (*entity.User, error)
	GetByEmailAndTenant(email, tenantID string) (*entity.User, error)
	Update(user *entity.User) error
	UpdateLastLogin(id string, at time.Time) error
	ListByTenant(tenantID string, limit, offset int) ([]*entity.User, error)
	CountByTenant(tenantID string) (int, error)
}
