package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Timesheets-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Timesheets-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de TenantRepository en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeTenantRepo struct {
	bySlug   map[string]*entity.Tenant
	byDomain map[string]*entity.Tenant
}

func newFakeTenantRepo(tenants ...*entity.Tenant) *fakeTenantRepo {
	r := &fakeTenantRepo{
		bySlug:   make(map[string]*entity.Tenant),
		byDomain: make(map[string]*entity.Tenant),
	}
	for _, t := range tenants {
		r.bySlug[t.Slug] = t
		if t.Domain != "" {
			r.byDomain[t.Domain] = t
		}
	}
	return r
}

func (r *fakeTenantRepo) Create(t *entity.Tenant) error { r.bySlug[t.Slug] = t; return nil }
func (r *fakeTenantRepo) GetByID(id string) (*entity.Tenant, error) {
	for _, t := range r.bySlug {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}
func (r *fakeTenantRepo) GetBySlug(slug string) (*entity.Tenant, error)     { return r.bySlug[slug], nil }
func (r *fakeTenantRepo) GetByDomain(domain string) (*entity.Tenant, error) { return r.byDomain[domain], nil }
func (r *fakeTenantRepo) Update(t *entity.Tenant) error                     { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testBaseDomain = "timesheet-pro.com"

// buildTenantApp arma una app con el resolver y un handler que reporta el
// slug del tenant resuelto (o "" si no hubo resolución).
func buildTenantApp(repo *fakeTenantRepo) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", apphttp.TenantResolver(repo, testBaseDomain), func(c *fiber.Ctx) error {
		t := apphttp.GetTenant(c)
		if t == nil {
			return c.SendString("")
		}
		return c.SendString(t.Slug)
	})
	return app
}

func resolveRequest(t *testing.T, app *fiber.App, host, slugHeader string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Host = host
	if slugHeader != "" {
		req.Header.Set("X-Tenant-Slug", slugHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode,
		"el resolver nunca debe cortar la petición")

	buf := make([]byte, 256)
	n, _ := resp.Body.Read(buf)
	return string(buf[:n])
}

func activeTenant(slug, domain string) *entity.Tenant {
	return &entity.Tenant{ID: "t-" + slug, Name: slug, Slug: slug, Domain: domain, Subdomain: slug, Status: "active"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests TenantResolver
// ──────────────────────────────────────────────────────────────────────────────

// El header X-Tenant-Slug tiene prioridad sobre el host.
func TestTenantResolver_HeaderTienePrioridad(t *testing.T) {
	repo := newFakeTenantRepo(activeTenant("acme", ""), activeTenant("globex", "tiempos.globex.com"))
	app := buildTenantApp(repo)

	got := resolveRequest(t, app, "tiempos.globex.com", "acme")
	assert.Equal(t, "acme", got, "el header debe ganar sobre el dominio propio")
}

// Header con slug inexistente: no cae al host, queda sin tenant.
func TestTenantResolver_HeaderInexistente_NoResuelve(t *testing.T) {
	repo := newFakeTenantRepo(activeTenant("acme", ""))
	app := buildTenantApp(repo)

	got := resolveRequest(t, app, "acme."+testBaseDomain, "no-existe")
	assert.Equal(t, "", got, "header inválido no debe resolver por host")
}

// Subdominio bajo el dominio base resuelve por slug.
func TestTenantResolver_Subdominio(t *testing.T) {
	repo := newFakeTenantRepo(activeTenant("acme", ""))
	app := buildTenantApp(repo)

	got := resolveRequest(t, app, "acme."+testBaseDomain, "")
	assert.Equal(t, "acme", got)
}

// Subdominio con puerto explícito también resuelve.
func TestTenantResolver_SubdominioConPuerto(t *testing.T) {
	repo := newFakeTenantRepo(activeTenant("acme", ""))
	app := buildTenantApp(repo)

	got := resolveRequest(t, app, "acme."+testBaseDomain+":8080", "")
	assert.Equal(t, "acme", got)
}

// Subdominios reservados (www, api) nunca resuelven a un tenant.
func TestTenantResolver_SubdominiosReservados(t *testing.T) {
	repo := newFakeTenantRepo(activeTenant("www", ""), activeTenant("api", ""))
	app := buildTenantApp(repo)

	assert.Equal(t, "", resolveRequest(t, app, "www."+testBaseDomain, ""))
	assert.Equal(t, "", resolveRequest(t, app, "api."+testBaseDomain, ""))
}

// Dominio propio del tenant resuelve por GetByDomain.
func TestTenantResolver_DominioPropio(t *testing.T) {
	repo := newFakeTenantRepo(activeTenant("globex", "tiempos.globex.com"))
	app := buildTenantApp(repo)

	got := resolveRequest(t, app, "tiempos.globex.com", "")
	assert.Equal(t, "globex", got)
}

// Tenant suspendido no resuelve por ninguna vía.
func TestTenantResolver_TenantSuspendido_NoResuelve(t *testing.T) {
	suspended := activeTenant("acme", "tiempos.acme.com")
	suspended.Status = "suspended"
	repo := newFakeTenantRepo(suspended)
	app := buildTenantApp(repo)

	assert.Equal(t, "", resolveRequest(t, app, "acme."+testBaseDomain, ""))
	assert.Equal(t, "", resolveRequest(t, app, "tiempos.acme.com", ""))
	assert.Equal(t, "", resolveRequest(t, app, "cualquier.host", "acme"))
}

// Dominio base desnudo no resuelve a ningún tenant.
func TestTenantResolver_DominioBase_NoResuelve(t *testing.T) {
	repo := newFakeTenantRepo(activeTenant("acme", ""))
	app := buildTenantApp(repo)

	assert.Equal(t, "", resolveRequest(t, app, testBaseDomain, ""))
}
