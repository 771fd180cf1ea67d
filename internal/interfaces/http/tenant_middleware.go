package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Timesheets-api/internal/domain/entity"
	"github.com/jhoicas/Timesheets-api/internal/domain/repository"
	"github.com/jhoicas/Timesheets-api/pkg/metrics"
)

// LocalTenant guarda el *entity.Tenant resuelto de la petición (puede faltar).
const LocalTenant = "tenant"

// TenantResolver resuelve el tenant de la petición y lo deja en c.Locals.
// Prioridad: header X-Tenant-Slug > dominio propio > subdominio del dominio
// base. Nunca corta la petición: las rutas públicas funcionan sin tenant y
// las que lo exigen fallan en el usecase con ErrTenantRequired.
func TenantResolver(tenantRepo repository.TenantRepository, baseDomain string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenant, source := resolveTenant(c, tenantRepo, baseDomain)
		metrics.TenantResolutionsTotal.WithLabelValues(source).Inc()
		if tenant != nil {
			c.Locals(LocalTenant, tenant)
		}
		return c.Next()
	}
}

func resolveTenant(c *fiber.Ctx, tenantRepo repository.TenantRepository, baseDomain string) (*entity.Tenant, string) {
	// 1. Header explícito (clientes API y tests).
	if slug := strings.ToLower(strings.TrimSpace(c.Get("X-Tenant-Slug"))); slug != "" {
		if t, err := tenantRepo.GetBySlug(slug); err == nil && t.IsActive() {
			return t, "header"
		}
		return nil, "none"
	}

	host := hostWithoutPort(c.Hostname())
	if host == "" {
		return nil, "none"
	}

	// 2. Dominio propio del tenant (ej. tiempos.acme.com).
	if baseDomain == "" || (!strings.HasSuffix(host, "."+baseDomain) && host != baseDomain) {
		if t, err := tenantRepo.GetByDomain(host); err == nil && t.IsActive() {
			return t, "domain"
		}
	}

	// 3. Subdominio bajo el dominio base (ej. acme.timesheet-pro.com).
	if baseDomain != "" && strings.HasSuffix(host, "."+baseDomain) {
		sub := strings.TrimSuffix(host, "."+baseDomain)
		if sub == "" || strings.Contains(sub, ".") || entity.ReservedSubdomains[sub] {
			return nil, "none"
		}
		if t, err := tenantRepo.GetBySlug(sub); err == nil && t.IsActive() {
			return t, "subdomain"
		}
	}
	return nil, "none"
}

func hostWithoutPort(host string) string {
	host = strings.ToLower(host)
	if i := strings.LastIndex(host, ":"); i >= 0 {
		host = host[:i]
	}
	return host
}

// GetTenant devuelve el tenant resuelto de la petición, o nil si no hay.
func GetTenant(c *fiber.Ctx) *entity.Tenant {
	v := c.Locals(LocalTenant)
	if v == nil {
		return nil
	}
	t, _ := v.(*entity.Tenant)
	return t
}
