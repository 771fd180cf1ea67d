package timesheet

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Timesheets-api/internal/application/dto"
	"github.com/jhoicas/Timesheets-api/internal/domain"
	"github.com/jhoicas/Timesheets-api/internal/domain/entity"
	"github.com/jhoicas/Timesheets-api/internal/domain/repository"
)

// UseCase implementa el ciclo de vida del timesheet semanal:
// creación perezosa en draft, mutación de entradas (solo draft/rejected),
// submit/approve/reject/lock con pre-estado verificado en la BD.
type UseCase struct {
	sheets   repository.TimesheetRepository
	entries  repository.EntryRepository
	projects repository.ProjectRepository
	tasks    repository.TaskRepository
	tx       TxRunner
}

// NewUseCase construye el caso de uso del ciclo de vida de timesheets.
func NewUseCase(
	sheets repository.TimesheetRepository,
	entries repository.EntryRepository,
	projects repository.ProjectRepository,
	tasks repository.TaskRepository,
	tx TxRunner,
) *UseCase {
	return &UseCase{sheets: sheets, entries: entries, projects: projects, tasks: tasks, tx: tx}
}

// GetOrCreateWeek devuelve el timesheet del usuario para la semana de la
// fecha dada, creándolo en draft si aún no existe (creación perezosa).
func (uc *UseCase) GetOrCreateWeek(tenantID, userID string, date time.Time) (*dto.TimesheetWithEntriesResponse, error) {
	weekStart := entity.WeekStart(date)
	sheet, err := uc.sheets.GetForWeek(userID, tenantID, weekStart)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		now := time.Now()
		sheet = &entity.Timesheet{
			ID:            uuid.New().String(),
			TenantID:      tenantID,
			UserID:        userID,
			WeekStartDate: weekStart,
			WeekEndDate:   entity.WeekEnd(weekStart),
			Status:        entity.SheetDraft,
			TotalHours:    decimal.Zero,
			BillableHours: decimal.Zero,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := uc.sheets.Create(sheet); err != nil {
			// Carrera entre dos primeros accesos a la misma semana: el índice
			// único (user_id, week_start_date) deja ganar a uno; releemos.
			if err != domain.ErrDuplicate {
				return nil, err
			}
			sheet, err = uc.sheets.GetForWeek(userID, tenantID, weekStart)
			if err != nil {
				return nil, err
			}
			if sheet == nil {
				return nil, domain.ErrConflict
			}
		}
	}
	return uc.withEntries(sheet)
}

// GetByID devuelve un timesheet con entradas. El dueño siempre puede verlo;
// otros usuarios del tenant solo si tienen rol aprobador.
func (uc *UseCase) GetByID(tenantID, callerID, callerRole, id string) (*dto.TimesheetWithEntriesResponse, error) {
	sheet, err := uc.sheets.GetByID(id, tenantID)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, domain.ErrNotFound
	}
	if sheet.UserID != callerID && !entity.IsApprover(callerRole) {
		return nil, domain.ErrForbidden
	}
	return uc.withEntries(sheet)
}

// ListMine lista los timesheets recientes del usuario.
func (uc *UseCase) ListMine(tenantID, userID string, limit int) (*dto.TimesheetListResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	sheets, err := uc.sheets.ListByUser(userID, tenantID, limit)
	if err != nil {
		return nil, err
	}
	return toListResponse(sheets, dto.PageResponse{Limit: limit}), nil
}

// PendingApprovals lista los timesheets enviados del tenant (para aprobadores).
func (uc *UseCase) PendingApprovals(tenantID string, page dto.PageRequest) (*dto.TimesheetListResponse, error) {
	page.DefaultPage()
	sheets, err := uc.sheets.ListByTenant(tenantID, entity.SheetSubmitted, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toListResponse(sheets, dto.PageResponse{Limit: page.Limit, Offset: page.Offset}), nil
}

// Report lista los timesheets del tenant, opcionalmente filtrados por status.
func (uc *UseCase) Report(tenantID, status string, page dto.PageRequest) (*dto.TimesheetListResponse, error) {
	page.DefaultPage()
	sheets, err := uc.sheets.ListByTenant(tenantID, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toListResponse(sheets, dto.PageResponse{Limit: page.Limit, Offset: page.Offset}), nil
}

// Submit envía el timesheet: draft|rejected -> submitted, solo el dueño.
// Los totales se recalculan desde las entradas dentro de la transacción;
// el UPDATE condicional descarta submits concurrentes (ErrConflict).
func (uc *UseCase) Submit(ctx context.Context, tenantID, callerID, id string) (*dto.TimesheetResponse, error) {
	sheet, err := uc.sheets.GetByID(id, tenantID)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, domain.ErrNotFound
	}
	if sheet.UserID != callerID {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	err = uc.tx.Run(ctx, func(sheets repository.TimesheetRepository, entries repository.EntryRepository, audit repository.AuditLogRepository) error {
		list, err := entries.ListByTimesheet(id, tenantID)
		if err != nil {
			return err
		}
		total, billable := entity.SumEntries(list)
		ok, err := sheets.Submit(id, tenantID, total, billable, now)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrConflict
		}
		sheet.Status = entity.SheetSubmitted
		sheet.SubmittedAt = &now
		sheet.TotalHours = total
		sheet.BillableHours = billable
		sheet.RejectionReason = ""
		return audit.Create(auditRow(tenantID, callerID, entity.AuditSheetSubmitted, id, now))
	})
	if err != nil {
		return nil, err
	}
	resp := toResponse(sheet)
	return &resp, nil
}

// Approve aprueba un timesheet enviado. Solo roles aprobadores del mismo tenant.
func (uc *UseCase) Approve(ctx context.Context, tenantID, approverID, approverRole, id string) (*dto.TimesheetResponse, error) {
	sheet, err := uc.loadForDecision(tenantID, approverRole, id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	err = uc.tx.Run(ctx, func(sheets repository.TimesheetRepository, _ repository.EntryRepository, audit repository.AuditLogRepository) error {
		ok, err := sheets.Approve(id, tenantID, approverID, now)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrConflict
		}
		sheet.Status = entity.SheetApproved
		sheet.ApprovedBy = &approverID
		sheet.ApprovedAt = &now
		return audit.Create(auditRow(tenantID, approverID, entity.AuditSheetApproved, id, now))
	})
	if err != nil {
		return nil, err
	}
	resp := toResponse(sheet)
	return &resp, nil
}

// Reject rechaza un timesheet enviado, con motivo opcional. El empleado
// recupera el control implícitamente: rejected admite edición y re-submit.
func (uc *UseCase) Reject(ctx context.Context, tenantID, approverID, approverRole, id, reason string) (*dto.TimesheetResponse, error) {
	sheet, err := uc.loadForDecision(tenantID, approverRole, id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	err = uc.tx.Run(ctx, func(sheets repository.TimesheetRepository, _ repository.EntryRepository, audit repository.AuditLogRepository) error {
		ok, err := sheets.Reject(id, tenantID, approverID, reason, now)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrConflict
		}
		sheet.Status = entity.SheetRejected
		sheet.ApprovedBy = &approverID
		sheet.ApprovedAt = &now
		sheet.RejectionReason = reason
		return audit.Create(auditRow(tenantID, approverID, entity.AuditSheetRejected, id, now))
	})
	if err != nil {
		return nil, err
	}
	resp := toResponse(sheet)
	return &resp, nil
}

// Lock endurece un timesheet aprobado: approved -> locked, sin vuelta atrás.
func (uc *UseCase) Lock(ctx context.Context, tenantID, callerID, id string) (*dto.TimesheetResponse, error) {
	sheet, err := uc.sheets.GetByID(id, tenantID)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	err = uc.tx.Run(ctx, func(sheets repository.TimesheetRepository, _ repository.EntryRepository, audit repository.AuditLogRepository) error {
		ok, err := sheets.Lock(id, tenantID, now)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrConflict
		}
		sheet.Status = entity.SheetLocked
		return audit.Create(auditRow(tenantID, callerID, entity.AuditSheetLocked, id, now))
	})
	if err != nil {
		return nil, err
	}
	resp := toResponse(sheet)
	return &resp, nil
}

// loadForDecision carga un timesheet para approve/reject validando rol y tenant.
func (uc *UseCase) loadForDecision(tenantID, approverRole, id string) (*entity.Timesheet, error) {
	if !entity.IsApprover(approverRole) {
		return nil, domain.ErrForbidden
	}
	sheet, err := uc.sheets.GetByID(id, tenantID)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, domain.ErrNotFound
	}
	return sheet, nil
}

func (uc *UseCase) withEntries(sheet *entity.Timesheet) (*dto.TimesheetWithEntriesResponse, error) {
	list, err := uc.entries.ListByTimesheet(sheet.ID, sheet.TenantID)
	if err != nil {
		return nil, err
	}
	out := &dto.TimesheetWithEntriesResponse{
		TimesheetResponse: toResponse(sheet),
		Entries:           make([]dto.EntryResponse, 0, len(list)),
	}
	for _, e := range list {
		out.Entries = append(out.Entries, toEntryResponse(e))
	}
	return out, nil
}

func auditRow(tenantID, userID, action, sheetID string, at time.Time) *entity.AuditLog {
	uid := userID
	return &entity.AuditLog{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		UserID:     &uid,
		Action:     action,
		EntityType: "timesheet",
		EntityID:   sheetID,
		CreatedAt:  at,
	}
}

func toResponse(t *entity.Timesheet) dto.TimesheetResponse {
	return dto.TimesheetResponse{
		ID:              t.ID,
		TenantID:        t.TenantID,
		UserID:          t.UserID,
		WeekStartDate:   t.WeekStartDate.Format("2006-01-02"),
		WeekEndDate:     t.WeekEndDate.Format("2006-01-02"),
		Status:          t.Status,
		TotalHours:      t.TotalHours,
		BillableHours:   t.BillableHours,
		SubmittedAt:     t.SubmittedAt,
		ApprovedBy:      t.ApprovedBy,
		ApprovedAt:      t.ApprovedAt,
		RejectionReason: t.RejectionReason,
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func toEntryResponse(e *entity.TimesheetEntry) dto.EntryResponse {
	return dto.EntryResponse{
		ID:          e.ID,
		TimesheetID: e.TimesheetID,
		ProjectID:   e.ProjectID,
		TaskID:      e.TaskID,
		EntryDate:   e.EntryDate.Format("2006-01-02"),
		Hours:       e.Hours,
		Description: e.Description,
		IsBillable:  e.IsBillable,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toListResponse(sheets []*entity.Timesheet, page dto.PageResponse) *dto.TimesheetListResponse {
	out := &dto.TimesheetListResponse{
		Timesheets: make([]dto.TimesheetResponse, 0, len(sheets)),
		Page:       page,
	}
	for _, s := range sheets {
		out.Timesheets = append(out.Timesheets, toResponse(s))
	}
	return out
}
