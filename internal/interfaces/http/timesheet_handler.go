package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Timesheets-api/internal/application/dto"
	"github.com/jhoicas/Timesheets-api/internal/application/timesheet"
	"github.com/jhoicas/Timesheets-api/pkg/metrics"
)

// TimesheetHandler ciclo de vida del timesheet semanal y sus entradas.
type TimesheetHandler struct {
	uc *timesheet.UseCase
}

// NewTimesheetHandler construye el handler de timesheets.
func NewTimesheetHandler(uc *timesheet.UseCase) *TimesheetHandler {
	return &TimesheetHandler{uc: uc}
}

// Week godoc
// @Summary      Timesheet de la semana de una fecha (se crea en draft si no existe)
// @Tags         timesheets
// @Produce      json
// @Param        date  path  string  true  "fecha YYYY-MM-DD dentro de la semana"
// @Success      200   {object}  dto.TimesheetWithEntriesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/timesheets/week/{date} [get]
func (h *TimesheetHandler) Week(c *fiber.Ctx) error {
	date, err := time.ParseInLocation("2006-01-02", c.Params("date"), time.UTC)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, formato YYYY-MM-DD"})
	}
	out, err := h.uc.GetOrCreateWeek(GetTenantID(c), GetUserID(c), date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Timesheets recientes del usuario autenticado
// @Tags         timesheets
// @Produce      json
// @Param        limit  query  int  false  "límite"
// @Success      200  {object}  dto.TimesheetListResponse
// @Router       /api/timesheets [get]
func (h *TimesheetHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(GetTenantID(c), GetUserID(c), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener timesheet con entradas
// @Tags         timesheets
// @Produce      json
// @Param        id  path  string  true  "timesheet id"
// @Success      200  {object}  dto.TimesheetWithEntriesResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/timesheets/{id} [get]
func (h *TimesheetHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetTenantID(c), GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Approvals godoc
// @Summary      Timesheets enviados pendientes de decisión
// @Tags         timesheets
// @Produce      json
// @Success      200  {object}  dto.TimesheetListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/approvals [get]
func (h *TimesheetHandler) Approvals(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.PendingApprovals(GetTenantID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Enviar timesheet a aprobación
// @Tags         timesheets
// @Produce      json
// @Param        id  path  string  true  "timesheet id"
// @Success      200  {object}  dto.TimesheetResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/timesheets/{id}/submit [post]
func (h *TimesheetHandler) Submit(c *fiber.Ctx) error {
	out, err := h.uc.Submit(c.UserContext(), GetTenantID(c), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	metrics.RecordTransition("submit")
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar timesheet enviado
// @Tags         timesheets
// @Produce      json
// @Param        id  path  string  true  "timesheet id"
// @Success      200  {object}  dto.TimesheetResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/timesheets/{id}/approve [post]
func (h *TimesheetHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(c.UserContext(), GetTenantID(c), GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	metrics.RecordTransition("approve")
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar timesheet enviado
// @Tags         timesheets
// @Accept       json
// @Produce      json
// @Param        id    path  string             true   "timesheet id"
// @Param        body  body  dto.RejectRequest  false  "motivo"
// @Success      200   {object}  dto.TimesheetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/timesheets/{id}/reject [post]
func (h *TimesheetHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectRequest
	// El cuerpo es opcional: rechazar sin motivo es válido.
	_ = c.BodyParser(&in)
	out, err := h.uc.Reject(c.UserContext(), GetTenantID(c), GetUserID(c), GetRole(c), c.Params("id"), in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	metrics.RecordTransition("reject")
	return c.JSON(out)
}

// Lock godoc
// @Summary      Bloquear timesheet aprobado
// @Tags         timesheets
// @Produce      json
// @Param        id  path  string  true  "timesheet id"
// @Success      200  {object}  dto.TimesheetResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/timesheets/{id}/lock [post]
func (h *TimesheetHandler) Lock(c *fiber.Ctx) error {
	out, err := h.uc.Lock(c.UserContext(), GetTenantID(c), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	metrics.RecordTransition("lock")
	return c.JSON(out)
}

// AddEntry godoc
// @Summary      Crear entrada de horas (timesheet en draft o rejected)
// @Tags         timesheet-entries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntryRequest  true  "datos de la entrada"
// @Success      201   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/timesheet-entries [post]
func (h *TimesheetHandler) AddEntry(c *fiber.Ctx) error {
	var in dto.CreateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.TimesheetID == "" || in.ProjectID == "" || in.EntryDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "timesheet_id, project_id y entry_date son requeridos"})
	}
	out, err := h.uc.AddEntry(c.UserContext(), GetTenantID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateEntry godoc
// @Summary      Actualizar entrada de horas
// @Tags         timesheet-entries
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "entry id"
// @Param        body  body  dto.UpdateEntryRequest  true  "campos a modificar"
// @Success      200   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/timesheet-entries/{id} [put]
func (h *TimesheetHandler) UpdateEntry(c *fiber.Ctx) error {
	var in dto.UpdateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateEntry(c.UserContext(), GetTenantID(c), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteEntry godoc
// @Summary      Eliminar entrada de horas
// @Tags         timesheet-entries
// @Produce      json
// @Param        id  path  string  true  "entry id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/timesheet-entries/{id} [delete]
func (h *TimesheetHandler) DeleteEntry(c *fiber.Ctx) error {
	if err := h.uc.DeleteEntry(c.UserContext(), GetTenantID(c), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "entrada eliminada"})
}
