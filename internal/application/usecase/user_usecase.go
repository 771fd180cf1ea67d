package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Timesheets-api/internal/application/dto"
	"github.com/jhoicas/Timesheets-api/internal/domain"
	"github.com/jhoicas/Timesheets-api/internal/domain/entity"
	"github.com/jhoicas/Timesheets-api/internal/domain/repository"
)

// UserUseCase administración de usuarios del tenant: listado, edición e invitaciones.
type UserUseCase struct {
	userRepo   repository.UserRepository
	tenantRepo repository.TenantRepository
	auditRepo  repository.AuditLogRepository
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(userRepo repository.UserRepository, tenantRepo repository.TenantRepository, auditRepo repository.AuditLogRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, tenantRepo: tenantRepo, auditRepo: auditRepo}
}

// List devuelve los usuarios del tenant, paginados.
func (uc *UserUseCase) List(tenantID string, page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	users, err := uc.userRepo.ListByTenant(tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.userRepo.CountByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	out := &dto.UserListResponse{
		Users: make([]dto.UserResponse, 0, len(users)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, u := range users {
		out.Users = append(out.Users, *toUserResponse(u))
	}
	return out, nil
}

// Update modifica un usuario del tenant (admin/owner). El rol owner no se
// puede asignar ni retirar por esta vía.
func (uc *UserUseCase) Update(tenantID, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id, tenantID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) || *in.Role == entity.RoleOwner || user.Role == entity.RoleOwner {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Status != nil {
		if user.Role == entity.RoleOwner {
			return nil, domain.ErrInvalidInput
		}
		user.Status = *in.Status
	}
	if in.Timezone != nil {
		user.Timezone = *in.Timezone
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Invite da de alta un usuario del tenant con password temporal. La
// password se devuelve en claro una sola vez en la respuesta.
func (uc *UserUseCase) Invite(tenantID, inviterID, ip string, in dto.InviteRequest) (*dto.InviteResponse, error) {
	tenant, err := uc.tenantRepo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	count, err := uc.userRepo.CountByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	if tenant.MaxUsers > 0 && count >= tenant.MaxUsers {
		return nil, domain.ErrForbidden
	}

	email := strings.ToLower(in.Email)
	at := strings.Index(email, "@")
	if at <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.userRepo.GetByEmailAndTenant(email, tenantID); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	username := email[:at]
	if existing, _ := uc.userRepo.GetByUsernameAndTenant(username, tenantID); existing != nil {
		username = username + "-" + uuid.New().String()[:8]
	}

	role := in.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	// El rol owner solo nace con el tenant, nunca por invitación.
	if !entity.ValidRole(role) || role == entity.RoleOwner {
		return nil, domain.ErrInvalidInput
	}

	tempPassword := uuid.New().String()[:12]
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
		Status:       "active",
		Timezone:     "UTC",
		InvitedBy:    &inviterID,
		InvitedAt:    &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	_ = uc.auditRepo.Create(&entity.AuditLog{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		UserID:     &inviterID,
		Action:     entity.AuditInvite,
		EntityType: "user",
		EntityID:   user.ID,
		Detail:     "invitación: " + email,
		IP:         ip,
		CreatedAt:  now,
	})
	return &dto.InviteResponse{
		User:         *toUserResponse(user),
		TempPassword: tempPassword,
	}, nil
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
