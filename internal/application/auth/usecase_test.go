package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Timesheets-api/internal/application/auth"
	"github.com/jhoicas/Timesheets-api/internal/application/dto"
	"github.com/jhoicas/Timesheets-api/internal/domain"
	"github.com/jhoicas/Timesheets-api/internal/domain/entity"
	"github.com/jhoicas/Timesheets-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/Timesheets-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type authStore struct {
	tenants map[string]*entity.Tenant // por slug
	users   map[string]*entity.User   // por id
	audits  []*entity.AuditLog
}

func newAuthStore() *authStore {
	return &authStore{
		tenants: make(map[string]*entity.Tenant),
		users:   make(map[string]*entity.User),
	}
}

type tenantRepoFake struct{ s *authStore }

func (r tenantRepoFake) Create(t *entity.Tenant) error {
	if _, ok := r.s.tenants[t.Slug]; ok {
		return domain.ErrDuplicate
	}
	r.s.tenants[t.Slug] = t
	return nil
}
func (r tenantRepoFake) GetByID(id string) (*entity.Tenant, error) {
	for _, t := range r.s.tenants {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}
func (r tenantRepoFake) GetBySlug(slug string) (*entity.Tenant, error)     { return r.s.tenants[slug], nil }
func (r tenantRepoFake) GetByDomain(domain string) (*entity.Tenant, error) { return nil, nil }
func (r tenantRepoFake) Update(t *entity.Tenant) error                     { return nil }

type userRepoFake struct{ s *authStore }

func (r userRepoFake) Create(u *entity.User) error {
	r.s.users[u.ID] = u
	return nil
}
func (r userRepoFake) GetByID(id, tenantID string) (*entity.User, error) {
	u, ok := r.s.users[id]
	if !ok || u.TenantID != tenantID {
		return nil, nil
	}
	return u, nil
}
func (r userRepoFake) GetByUsernameAndTenant(username, tenantID string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Username == username && u.TenantID == tenantID {
			return u, nil
		}
	}
	return nil, nil
}
func (r userRepoFake) GetByEmailAndTenant(email, tenantID string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email && u.TenantID == tenantID {
			return u, nil
		}
	}
	return nil, nil
}
func (r userRepoFake) Update(u *entity.User) error { return nil }
func (r userRepoFake) UpdateLastLogin(id string, at time.Time) error {
	if u, ok := r.s.users[id]; ok {
		u.LastLoginAt = &at
	}
	return nil
}
func (r userRepoFake) ListByTenant(tenantID string, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}
func (r userRepoFake) CountByTenant(tenantID string) (int, error) {
	n := 0
	for _, u := range r.s.users {
		if u.TenantID == tenantID {
			n++
		}
	}
	return n, nil
}

type auditRepoFake struct{ s *authStore }

func (r auditRepoFake) Create(log *entity.AuditLog) error {
	r.s.audits = append(r.s.audits, log)
	return nil
}
func (r auditRepoFake) ListByTenant(tenantID string, limit, offset int) ([]*entity.AuditLog, error) {
	return r.s.audits, nil
}

type authTxFake struct{ s *authStore }

func (r authTxFake) Run(ctx context.Context, fn func(
	repository.TenantRepository,
	repository.UserRepository,
	repository.AuditLogRepository,
) error) error {
	return fn(tenantRepoFake{r.s}, userRepoFake{r.s}, auditRepoFake{r.s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

var testJWT = auth.JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "timesheet-pro-test"}

func newAuthUseCase(t *testing.T) (*auth.AuthUseCase, *authStore) {
	t.Helper()
	s := newAuthStore()
	uc := auth.NewAuthUseCase(tenantRepoFake{s}, userRepoFake{s}, authTxFake{s}, testJWT)
	return uc, s
}

func registerOwner(t *testing.T, uc *auth.AuthUseCase) *dto.RegisterResponse {
	t.Helper()
	resp, err := uc.Register(context.Background(), nil, dto.RegisterRequest{
		Username:   "ana",
		Email:      "ana@acme.com",
		Password:   "contraseña-larga",
		FirstName:  "Ana",
		LastName:   "García",
		TenantName: "Acme Consultoría",
		TenantSlug: "acme",
	}, "10.0.0.1")
	require.NoError(t, err)
	return resp
}

func tenantOf(t *testing.T, s *authStore, slug string) *entity.Tenant {
	t.Helper()
	tn := s.tenants[slug]
	require.NotNil(t, tn, "el tenant %s debe existir", slug)
	return tn
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_SinTenant_CreaTenantYOwner(t *testing.T) {
	uc, s := newAuthUseCase(t)

	resp := registerOwner(t, uc)
	assert.True(t, resp.IsNewTenant)
	assert.Equal(t, entity.RoleOwner, resp.User.Role, "el fundador debe quedar como owner")
	assert.Equal(t, "acme", resp.Tenant.Slug)
	assert.Equal(t, entity.PlanTrial, resp.Tenant.Plan)
	assert.Equal(t, 50, resp.Tenant.MaxUsers)
	require.NotNil(t, resp.Tenant.TrialEndsAt, "el trial debe tener fecha de fin")

	// Tenant y usuario persistidos atómicamente, con auditoría.
	tn := tenantOf(t, s, "acme")
	assert.Equal(t, "active", tn.Status)
	assert.Len(t, s.users, 1)
	assert.Len(t, s.audits, 2, "debe auditarse creación de tenant y registro de owner")
}

func TestRegister_SinTenantNiDatosDeTenant_TenantRequired(t *testing.T) {
	uc, _ := newAuthUseCase(t)

	_, err := uc.Register(context.Background(), nil, dto.RegisterRequest{
		Username: "ana", Email: "ana@acme.com", Password: "contraseña-larga",
	}, "")
	assert.ErrorIs(t, err, domain.ErrTenantRequired)
}

func TestRegister_SlugOcupado_SlugTaken(t *testing.T) {
	uc, _ := newAuthUseCase(t)
	registerOwner(t, uc)

	_, err := uc.Register(context.Background(), nil, dto.RegisterRequest{
		Username:   "otro",
		Email:      "otro@otra.com",
		Password:   "contraseña-larga",
		TenantName: "Otra Acme",
		TenantSlug: "acme",
	}, "")
	assert.ErrorIs(t, err, domain.ErrSlugTaken)
}

func TestRegister_SubdominioReservado_Rechazado(t *testing.T) {
	uc, _ := newAuthUseCase(t)

	_, err := uc.Register(context.Background(), nil, dto.RegisterRequest{
		Username:   "ana",
		Email:      "ana@acme.com",
		Password:   "contraseña-larga",
		TenantName: "API Corp",
		TenantSlug: "api-corp",
		Subdomain:  "api",
	}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "los subdominios reservados no se asignan a tenants")
}

func TestRegister_ConTenantResuelto_CreaEmployee(t *testing.T) {
	uc, s := newAuthUseCase(t)
	registerOwner(t, uc)
	tn := tenantOf(t, s, "acme")

	resp, err := uc.Register(context.Background(), tn, dto.RegisterRequest{
		Username:  "Luis",
		Email:     "Luis@acme.com",
		Password:  "contraseña-larga",
		FirstName: "Luis",
		LastName:  "Pérez",
	}, "10.0.0.2")
	require.NoError(t, err)
	assert.False(t, resp.IsNewTenant)
	assert.Equal(t, entity.RoleEmployee, resp.User.Role, "el alta dentro de un tenant nunca crea owners")
	assert.Equal(t, "luis", resp.User.Username, "el username debe normalizarse a minúsculas")
	assert.Equal(t, "luis@acme.com", resp.User.Email)
}

func TestRegister_ConRolPedido_LoRespeta(t *testing.T) {
	uc, s := newAuthUseCase(t)
	registerOwner(t, uc)
	tn := tenantOf(t, s, "acme")

	resp, err := uc.Register(context.Background(), tn, dto.RegisterRequest{
		Username:  "marta",
		Email:     "marta@acme.com",
		Password:  "contraseña-larga",
		FirstName: "Marta",
		LastName:  "Ruiz",
		Role:      entity.RoleManager,
	}, "")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, resp.User.Role, "el rol pedido en la petición debe respetarse")
}

func TestRegister_RolOwnerPedido_Rechazado(t *testing.T) {
	uc, s := newAuthUseCase(t)
	registerOwner(t, uc)
	tn := tenantOf(t, s, "acme")

	_, err := uc.Register(context.Background(), tn, dto.RegisterRequest{
		Username: "intruso", Email: "intruso@acme.com", Password: "contraseña-larga",
		Role: entity.RoleOwner,
	}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "owner nunca se concede por alta en un tenant existente")

	_, err = uc.Register(context.Background(), tn, dto.RegisterRequest{
		Username: "intruso", Email: "intruso@acme.com", Password: "contraseña-larga",
		Role: "superuser",
	}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un rol desconocido debe rechazarse")
}

func TestRegister_UsernameOcupadoEnElTenant_Rechazado(t *testing.T) {
	uc, s := newAuthUseCase(t)
	registerOwner(t, uc)
	tn := tenantOf(t, s, "acme")

	_, err := uc.Register(context.Background(), tn, dto.RegisterRequest{
		Username: "ana", Email: "ana2@acme.com", Password: "contraseña-larga",
	}, "")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegister_TenantLleno_Forbidden(t *testing.T) {
	uc, s := newAuthUseCase(t)
	registerOwner(t, uc)
	tn := tenantOf(t, s, "acme")
	tn.MaxUsers = 1 // ya hay 1 usuario (la owner)

	_, err := uc.Register(context.Background(), tn, dto.RegisterRequest{
		Username: "luis", Email: "luis@acme.com", Password: "contraseña-larga",
	}, "")
	assert.ErrorIs(t, err, domain.ErrForbidden, "con el cupo lleno no se admiten más altas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_EmiteJWT(t *testing.T) {
	uc, s := newAuthUseCase(t)
	registerOwner(t, uc)
	tn := tenantOf(t, s, "acme")

	resp, err := uc.Login(context.Background(), tn, dto.LoginRequest{
		Username: "ana", Password: "contraseña-larga",
	}, "10.0.0.1")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	// El token debe llevar usuario, tenant y rol.
	userID, tenantID, role, err := pkgjwt.Parse(testJWT.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, tn.ID, tenantID)
	assert.Equal(t, entity.RoleOwner, role)
	assert.NotNil(t, resp.User.LastLoginAt, "el login debe registrar last_login_at")
}

func TestLogin_SinTenantResuelto_TenantRequired(t *testing.T) {
	uc, _ := newAuthUseCase(t)

	_, err := uc.Login(context.Background(), nil, dto.LoginRequest{
		Username: "ana", Password: "contraseña-larga",
	}, "")
	assert.ErrorIs(t, err, domain.ErrTenantRequired,
		"sin tenant resuelto no se consulta ninguna credencial")
}

func TestLogin_PasswordIncorrecto_Unauthorized(t *testing.T) {
	uc, s := newAuthUseCase(t)
	registerOwner(t, uc)
	tn := tenantOf(t, s, "acme")

	_, err := uc.Login(context.Background(), tn, dto.LoginRequest{
		Username: "ana", Password: "incorrecta",
	}, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente_MismoError(t *testing.T) {
	uc, s := newAuthUseCase(t)
	registerOwner(t, uc)
	tn := tenantOf(t, s, "acme")

	_, err := uc.Login(context.Background(), tn, dto.LoginRequest{
		Username: "nadie", Password: "lo-que-sea",
	}, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"usuario inexistente y password incorrecto deben ser indistinguibles")
}

func TestLogin_UsuarioSuspendido_Unauthorized(t *testing.T) {
	uc, s := newAuthUseCase(t)
	resp := registerOwner(t, uc)
	tn := tenantOf(t, s, "acme")
	s.users[resp.User.ID].Status = "suspended"

	_, err := uc.Login(context.Background(), tn, dto.LoginRequest{
		Username: "ana", Password: "contraseña-larga",
	}, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestMe_DevuelveElPerfilDelTenant(t *testing.T) {
	uc, s := newAuthUseCase(t)
	resp := registerOwner(t, uc)
	tn := tenantOf(t, s, "acme")

	me, err := uc.Me(tn.ID, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana", me.Username)

	// El mismo id desde otro tenant no existe.
	_, err = uc.Me("otro-tenant", resp.User.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
