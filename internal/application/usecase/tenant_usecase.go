package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/Timesheets-api/internal/application/dto"
	"github.com/jhoicas/Timesheets-api/internal/domain"
	"github.com/jhoicas/Timesheets-api/internal/domain/entity"
	"github.com/jhoicas/Timesheets-api/internal/domain/repository"
)

// TenantUseCase casos de uso sobre el tenant propio y la validación pública de slugs.
type TenantUseCase struct {
	tenantRepo repository.TenantRepository
}

// NewTenantUseCase construye el caso de uso de tenants.
func NewTenantUseCase(tenantRepo repository.TenantRepository) *TenantUseCase {
	return &TenantUseCase{tenantRepo: tenantRepo}
}

// GetCurrent devuelve el tenant del usuario autenticado.
func (uc *TenantUseCase) GetCurrent(tenantID string) (*dto.TenantResponse, error) {
	tenant, err := uc.tenantRepo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	return toTenantResponse(tenant), nil
}

// Update modifica el tenant propio (solo admin/owner, aplicado en la ruta).
func (uc *TenantUseCase) Update(tenantID string, in dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	tenant, err := uc.tenantRepo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		tenant.Name = *in.Name
	}
	if in.Domain != nil {
		tenant.Domain = strings.ToLower(*in.Domain)
	}
	if in.Subdomain != nil {
		sub := strings.ToLower(*in.Subdomain)
		if entity.ReservedSubdomains[sub] {
			return nil, domain.ErrInvalidInput
		}
		tenant.Subdomain = sub
	}
	if in.Status != nil {
		tenant.Status = *in.Status
	}
	tenant.UpdatedAt = time.Now()
	if err := uc.tenantRepo.Update(tenant); err != nil {
		return nil, err
	}
	return toTenantResponse(tenant), nil
}

// ValidateSlug comprueba públicamente si un slug corresponde a un tenant
// activo. Solo expone datos no sensibles; un tenant suspendido responde
// igual que uno inexistente.
func (uc *TenantUseCase) ValidateSlug(slug string) (*dto.ValidateTenantResponse, error) {
	tenant, err := uc.tenantRepo.GetBySlug(strings.ToLower(slug))
	if err != nil {
		return nil, err
	}
	if !tenant.IsActive() {
		return &dto.ValidateTenantResponse{Valid: false}, nil
	}
	return &dto.ValidateTenantResponse{
		Valid: true,
		ID:    tenant.ID,
		Name:  tenant.Name,
		Slug:  tenant.Slug,
		Plan:  tenant.Plan,
	}, nil
}

func toTenantResponse(t *entity.Tenant) *dto.TenantResponse {
	if t == nil {
		return nil
	}
	return &dto.TenantResponse{
		ID:          t.ID,
		Name:        t.Name,
		Slug:        t.Slug,
		Domain:      t.Domain,
		Subdomain:   t.Subdomain,
		Plan:        t.Plan,
		MaxUsers:    t.MaxUsers,
		Status:      t.Status,
		TrialEndsAt: t.TrialEndsAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
