package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Timesheets-api/internal/application/dto"
	"github.com/jhoicas/Timesheets-api/internal/domain"
	"github.com/jhoicas/Timesheets-api/internal/domain/entity"
	"github.com/jhoicas/Timesheets-api/internal/domain/repository"
	"github.com/jhoicas/Timesheets-api/pkg/jwt"
	"github.com/jhoicas/Timesheets-api/pkg/metrics"
)

const (
	trialDays     = 30
	trialMaxUsers = 50
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y perfil.
// Login es fail-closed respecto al tenant: sin tenant resuelto no se
// consulta ninguna credencial.
type AuthUseCase struct {
	tenantRepo repository.TenantRepository
	userRepo   repository.UserRepository
	tx         TxRunner
	jwtCfg     JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(tenantRepo repository.TenantRepository, userRepo repository.UserRepository, tx TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{tenantRepo: tenantRepo, userRepo: userRepo, tx: tx, jwtCfg: jwtCfg}
}

// Register crea un usuario. Dos flujos:
//   - Con tenant resuelto: alta dentro de ese tenant con el rol pedido
//     (employee por defecto; owner nunca se concede por esta vía).
//   - Sin tenant resuelto y con tenant_name + tenant_slug: crea el tenant en
//     plan trial y el usuario queda como owner, atómicamente.
func (uc *AuthUseCase) Register(ctx context.Context, tenant *entity.Tenant, in dto.RegisterRequest, ip string) (*dto.RegisterResponse, error) {
	if tenant != nil {
		return uc.registerIntoTenant(ctx, tenant, in, ip)
	}
	if in.TenantName == "" || in.TenantSlug == "" {
		return nil, domain.ErrTenantRequired
	}
	return uc.registerNewTenant(ctx, in, ip)
}

func (uc *AuthUseCase) registerIntoTenant(ctx context.Context, tenant *entity.Tenant, in dto.RegisterRequest, ip string) (*dto.RegisterResponse, error) {
	count, err := uc.userRepo.CountByTenant(tenant.ID)
	if err != nil {
		return nil, err
	}
	if tenant.MaxUsers > 0 && count >= tenant.MaxUsers {
		return nil, domain.ErrForbidden
	}
	if existing, _ := uc.userRepo.GetByUsernameAndTenant(in.Username, tenant.ID); existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	if existing, _ := uc.userRepo.GetByEmailAndTenant(in.Email, tenant.ID); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	// El rol viene de la petición, con employee por defecto. Owner solo
	// nace con el tenant, nunca por alta dentro de uno existente.
	role := in.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	if !entity.ValidRole(role) || role == entity.RoleOwner {
		return nil, domain.ErrInvalidInput
	}
	user, err := buildUser(tenant.ID, in, role)
	if err != nil {
		return nil, err
	}
	err = uc.tx.Run(ctx, func(_ repository.TenantRepository, users repository.UserRepository, audits repository.AuditLogRepository) error {
		if err := users.Create(user); err != nil {
			return err
		}
		return audits.Create(auditRow(tenant.ID, &user.ID, entity.AuditRegister, "user", user.ID, "registro de usuario", ip))
	})
	if err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{
		User:        *toUserResponse(user),
		Tenant:      *toTenantResponse(tenant),
		IsNewTenant: false,
	}, nil
}

func (uc *AuthUseCase) registerNewTenant(ctx context.Context, in dto.RegisterRequest, ip string) (*dto.RegisterResponse, error) {
	slug := entity.Slugify(in.TenantSlug)
	if slug == "" {
		return nil, domain.ErrInvalidInput
	}
	subdomain := strings.ToLower(in.Subdomain)
	if subdomain == "" {
		subdomain = slug
	}
	if entity.ReservedSubdomains[subdomain] {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.tenantRepo.GetBySlug(slug); existing != nil {
		return nil, domain.ErrSlugTaken
	}

	now := time.Now()
	trialEnd := now.AddDate(0, 0, trialDays)
	tenant := &entity.Tenant{
		ID:          uuid.New().String(),
		Name:        in.TenantName,
		Slug:        slug,
		Domain:      strings.ToLower(in.Domain),
		Subdomain:   subdomain,
		Plan:        entity.PlanTrial,
		MaxUsers:    trialMaxUsers,
		Status:      "active",
		TrialEndsAt: &trialEnd,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	user, err := buildUser(tenant.ID, in, entity.RoleOwner)
	if err != nil {
		return nil, err
	}

	err = uc.tx.Run(ctx, func(tenants repository.TenantRepository, users repository.UserRepository, audits repository.AuditLogRepository) error {
		if err := tenants.Create(tenant); err != nil {
			return err
		}
		if err := users.Create(user); err != nil {
			return err
		}
		if err := audits.Create(auditRow(tenant.ID, &user.ID, entity.AuditTenantCreated, "tenant", tenant.ID, "tenant creado: "+tenant.Slug, ip)); err != nil {
			return err
		}
		return audits.Create(auditRow(tenant.ID, &user.ID, entity.AuditRegister, "user", user.ID, "registro de owner", ip))
	})
	if err != nil {
		if err == domain.ErrDuplicate {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}
	return &dto.RegisterResponse{
		User:        *toUserResponse(user),
		Tenant:      *toTenantResponse(tenant),
		IsNewTenant: true,
	}, nil
}

// Login verifica username/password dentro del tenant resuelto, genera JWT y
// registra el acceso. Username inexistente y password incorrecto producen el
// mismo error para no filtrar cuáles usuarios existen.
func (uc *AuthUseCase) Login(ctx context.Context, tenant *entity.Tenant, in dto.LoginRequest, ip string) (*dto.LoginResponse, error) {
	if tenant == nil {
		metrics.RecordAuthFailure("no_tenant")
		return nil, domain.ErrTenantRequired
	}
	user, err := uc.userRepo.GetByUsernameAndTenant(in.Username, tenant.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		metrics.RecordAuthFailure("bad_credentials")
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		metrics.RecordAuthFailure("bad_credentials")
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive() {
		metrics.RecordAuthFailure("inactive_user")
		return nil, domain.ErrUnauthorized
	}

	now := time.Now()
	if err := uc.userRepo.UpdateLastLogin(user.ID, now); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.TenantID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	err = uc.tx.Run(ctx, func(_ repository.TenantRepository, _ repository.UserRepository, audits repository.AuditLogRepository) error {
		return audits.Create(auditRow(tenant.ID, &user.ID, entity.AuditLogin, "user", user.ID, "login", ip))
	})
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:  token,
		User:   *toUserResponse(user),
		Tenant: *toTenantResponse(tenant),
	}, nil
}

// Me devuelve el perfil del usuario autenticado dentro de su tenant.
func (uc *AuthUseCase) Me(tenantID, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID, tenantID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func buildUser(tenantID string, in dto.RegisterRequest, role string) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	tz := in.Timezone
	if tz == "" {
		tz = "UTC"
	}
	return &entity.User{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		Username:     strings.ToLower(in.Username),
		Email:        strings.ToLower(in.Email),
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
		Status:       "active",
		Timezone:     tz,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func auditRow(tenantID string, userID *string, action, entityType, entityID, detail, ip string) *entity.AuditLog {
	return &entity.AuditLog{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
		IP:         ip,
		CreatedAt:  time.Now(),
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		TenantID:    u.TenantID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Role:        u.Role,
		Status:      u.Status,
		Timezone:    u.Timezone,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
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
