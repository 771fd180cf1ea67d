package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Timesheets-api/internal/application/dto"
	"github.com/jhoicas/Timesheets-api/internal/application/timesheet"
	"github.com/jhoicas/Timesheets-api/internal/application/usecase"
)

// ReportHandler reportes del tenant: listado, panel de control y PDF.
type ReportHandler struct {
	reportUC *usecase.ReportUseCase
	sheetUC  *timesheet.UseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(reportUC *usecase.ReportUseCase, sheetUC *timesheet.UseCase) *ReportHandler {
	return &ReportHandler{reportUC: reportUC, sheetUC: sheetUC}
}

// Timesheets godoc
// @Summary      Reporte de timesheets del tenant (filtro por status opcional)
// @Tags         reports
// @Produce      json
// @Param        status  query  string  false  "draft|submitted|approved|rejected|locked"
// @Success      200  {object}  dto.TimesheetListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/timesheets [get]
func (h *ReportHandler) Timesheets(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.sheetUC.Report(GetTenantID(c), c.Query("status"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TimesheetsPDF godoc
// @Summary      Reporte de timesheets en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        status  query  string  false  "filtro por status"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/timesheets/pdf [get]
func (h *ReportHandler) TimesheetsPDF(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	pdf, err := h.reportUC.TimesheetReportPDF(GetTenantID(c), c.Query("status"), page)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="timesheets.pdf"`)
	return c.Send(pdf)
}

// Dashboard godoc
// @Summary      Agregados del tenant para la semana en curso
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.reportUC.Dashboard(GetTenantID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
