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

var maxDailyHours = decimal.NewFromInt(24)

// AddEntry crea una línea en el timesheet del usuario. La guardia de
// mutación vive aquí, en la frontera del servicio, no repartida por rutas:
// solo se admite mientras el padre está en draft o rejected.
func (uc *UseCase) AddEntry(ctx context.Context, tenantID, callerID string, in dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	sheet, err := uc.editableSheet(tenantID, callerID, in.TimesheetID)
	if err != nil {
		return nil, err
	}
	entryDate, err := uc.validEntryDate(sheet, in.EntryDate)
	if err != nil {
		return nil, err
	}
	if err := validHours(in.Hours); err != nil {
		return nil, err
	}
	if err := uc.checkProjectAndTask(tenantID, in.ProjectID, in.TaskID); err != nil {
		return nil, err
	}

	now := time.Now()
	billable := true
	if in.IsBillable != nil {
		billable = *in.IsBillable
	}
	e := &entity.TimesheetEntry{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		TimesheetID: sheet.ID,
		ProjectID:   in.ProjectID,
		TaskID:      in.TaskID,
		EntryDate:   entryDate,
		Hours:       in.Hours,
		Description: in.Description,
		IsBillable:  billable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.tx.Run(ctx, func(sheets repository.TimesheetRepository, entries repository.EntryRepository, _ repository.AuditLogRepository) error {
		if err := entries.Create(e); err != nil {
			return err
		}
		return recomputeTotals(sheets, entries, sheet.ID, tenantID)
	})
	if err != nil {
		return nil, err
	}
	resp := toEntryResponse(e)
	return &resp, nil
}

// UpdateEntry modifica una línea existente (padre en draft|rejected, solo dueño).
func (uc *UseCase) UpdateEntry(ctx context.Context, tenantID, callerID, entryID string, in dto.UpdateEntryRequest) (*dto.EntryResponse, error) {
	e, err := uc.entries.GetByID(entryID, tenantID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	sheet, err := uc.editableSheet(tenantID, callerID, e.TimesheetID)
	if err != nil {
		return nil, err
	}

	if in.ProjectID != nil {
		e.ProjectID = *in.ProjectID
	}
	if in.TaskID != nil {
		e.TaskID = in.TaskID
	}
	if in.ProjectID != nil || in.TaskID != nil {
		if err := uc.checkProjectAndTask(tenantID, e.ProjectID, e.TaskID); err != nil {
			return nil, err
		}
	}
	if in.EntryDate != nil {
		d, err := uc.validEntryDate(sheet, *in.EntryDate)
		if err != nil {
			return nil, err
		}
		e.EntryDate = d
	}
	if in.Hours != nil {
		if err := validHours(*in.Hours); err != nil {
			return nil, err
		}
		e.Hours = *in.Hours
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.IsBillable != nil {
		e.IsBillable = *in.IsBillable
	}
	e.UpdatedAt = time.Now()

	err = uc.tx.Run(ctx, func(sheets repository.TimesheetRepository, entries repository.EntryRepository, _ repository.AuditLogRepository) error {
		if err := entries.Update(e); err != nil {
			return err
		}
		return recomputeTotals(sheets, entries, sheet.ID, tenantID)
	})
	if err != nil {
		return nil, err
	}
	resp := toEntryResponse(e)
	return &resp, nil
}

// DeleteEntry elimina una línea (padre en draft|rejected, solo dueño).
func (uc *UseCase) DeleteEntry(ctx context.Context, tenantID, callerID, entryID string) error {
	e, err := uc.entries.GetByID(entryID, tenantID)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	sheet, err := uc.editableSheet(tenantID, callerID, e.TimesheetID)
	if err != nil {
		return err
	}

	return uc.tx.Run(ctx, func(sheets repository.TimesheetRepository, entries repository.EntryRepository, _ repository.AuditLogRepository) error {
		ok, err := entries.Delete(entryID, tenantID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		return recomputeTotals(sheets, entries, sheet.ID, tenantID)
	})
}

// editableSheet carga el timesheet y aplica las guardias de dueño y estado.
func (uc *UseCase) editableSheet(tenantID, callerID, sheetID string) (*entity.Timesheet, error) {
	sheet, err := uc.sheets.GetByID(sheetID, tenantID)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, domain.ErrNotFound
	}
	if sheet.UserID != callerID {
		return nil, domain.ErrForbidden
	}
	if !sheet.IsEditable() {
		return nil, domain.ErrSheetNotEditable
	}
	return sheet, nil
}

// validEntryDate parsea YYYY-MM-DD y verifica que caiga dentro de la semana del padre.
func (uc *UseCase) validEntryDate(sheet *entity.Timesheet, s string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	if d.Before(sheet.WeekStartDate) || d.After(sheet.WeekEndDate) {
		return time.Time{}, domain.ErrInvalidInput
	}
	return d, nil
}

func validHours(h decimal.Decimal) error {
	if h.LessThanOrEqual(decimal.Zero) || h.GreaterThan(maxDailyHours) {
		return domain.ErrInvalidInput
	}
	return nil
}

// checkProjectAndTask verifica que proyecto y tarea existan en el tenant y
// que la tarea pertenezca al proyecto. Cruce de tenant = ErrNotFound, nunca
// se revela la existencia de filas ajenas.
func (uc *UseCase) checkProjectAndTask(tenantID, projectID string, taskID *string) error {
	project, err := uc.projects.GetByID(projectID, tenantID)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	if taskID != nil {
		task, err := uc.tasks.GetByID(*taskID, tenantID)
		if err != nil {
			return err
		}
		if task == nil || task.ProjectID != projectID {
			return domain.ErrNotFound
		}
	}
	return nil
}

// recomputeTotals recalcula los totales del padre desde sus entradas, dentro
// de la misma transacción que la mutación.
func recomputeTotals(sheets repository.TimesheetRepository, entries repository.EntryRepository, sheetID, tenantID string) error {
	list, err := entries.ListByTimesheet(sheetID, tenantID)
	if err != nil {
		return err
	}
	total, billable := entity.SumEntries(list)
	return sheets.UpdateTotals(sheetID, tenantID, total, billable)
}
