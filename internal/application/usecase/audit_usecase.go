package usecase

import (
	"github.com/jhoicas/Timesheets-api/internal/application/dto"
	"github.com/jhoicas/Timesheets-api/internal/domain/entity"
	"github.com/jhoicas/Timesheets-api/internal/domain/repository"
)

// AuditUseCase consulta de la bitácora del tenant (solo admin/owner).
type AuditUseCase struct {
	auditRepo repository.AuditLogRepository
}

// NewAuditUseCase construye el caso de uso de bitácora.
func NewAuditUseCase(auditRepo repository.AuditLogRepository) *AuditUseCase {
	return &AuditUseCase{auditRepo: auditRepo}
}

// List devuelve la bitácora del tenant, paginada y en orden descendente.
func (uc *AuditUseCase) List(tenantID string, page dto.PageRequest) (*dto.AuditLogListResponse, error) {
	page.DefaultPage()
	logs, err := uc.auditRepo.ListByTenant(tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.AuditLogListResponse{
		Logs: make([]dto.AuditLogResponse, 0, len(logs)),
		Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, l := range logs {
		out.Logs = append(out.Logs, toAuditResponse(l))
	}
	return out, nil
}

func toAuditResponse(l *entity.AuditLog) dto.AuditLogResponse {
	return dto.AuditLogResponse{
		ID:         l.ID,
		UserID:     l.UserID,
		Action:     l.Action,
		EntityType: l.EntityType,
		EntityID:   l.EntityID,
		Detail:     l.Detail,
		IP:         l.IP,
		CreatedAt:  l.CreatedAt,
	}
}
