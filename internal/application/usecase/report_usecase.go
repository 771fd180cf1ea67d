package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Timesheets-api/internal/application/dto"
	"github.com/jhoicas/Timesheets-api/internal/domain"
	"github.com/jhoicas/Timesheets-api/internal/domain/entity"
	"github.com/jhoicas/Timesheets-api/internal/domain/repository"
)

var weeklyCapacity = decimal.NewFromInt(40)

// ReportUseCase agregados del tenant: panel de control y reporte exportable.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	sheetRepo  repository.TimesheetRepository
	userRepo   repository.UserRepository
	tenantRepo repository.TenantRepository
	pdf        PDFGenerator
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(reportRepo repository.ReportRepository, sheetRepo repository.TimesheetRepository, userRepo repository.UserRepository, tenantRepo repository.TenantRepository, pdf PDFGenerator) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, sheetRepo: sheetRepo, userRepo: userRepo, tenantRepo: tenantRepo, pdf: pdf}
}

// Dashboard calcula los agregados de la semana en curso del tenant.
// La tasa de utilización es horas registradas / (miembros * 40).
func (uc *ReportUseCase) Dashboard(tenantID string) (*dto.DashboardResponse, error) {
	weekStart := entity.WeekStart(time.Now())
	stats, err := uc.reportRepo.DashboardStats(tenantID, weekStart)
	if err != nil {
		return nil, err
	}
	utilization := decimal.Zero
	if stats.TeamMembers > 0 {
		capacity := weeklyCapacity.Mul(decimal.NewFromInt(int64(stats.TeamMembers)))
		utilization = stats.TotalHours.Div(capacity).Round(4)
	}
	return &dto.DashboardResponse{
		WeekStartDate:   weekStart.Format("2006-01-02"),
		TotalHours:      stats.TotalHours,
		ActiveProjects:  stats.ActiveProjects,
		TeamMembers:     stats.TeamMembers,
		UtilizationRate: utilization,
	}, nil
}

// TimesheetReportPDF genera el PDF del reporte de timesheets del tenant,
// opcionalmente filtrado por status.
func (uc *ReportUseCase) TimesheetReportPDF(tenantID, status string, page dto.PageRequest) ([]byte, error) {
	tenant, err := uc.tenantRepo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	page.DefaultPage()
	sheets, err := uc.sheetRepo.ListByTenant(tenantID, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	rows := make([]ReportRow, 0, len(sheets))
	for _, s := range sheets {
		name, ok := names[s.UserID]
		if !ok {
			user, err := uc.userRepo.GetByID(s.UserID, tenantID)
			if err != nil {
				return nil, err
			}
			if user != nil {
				name = user.FirstName + " " + user.LastName
			}
			names[s.UserID] = name
		}
		rows = append(rows, ReportRow{
			UserName:      name,
			WeekStart:     s.WeekStartDate.Format("2006-01-02"),
			Status:        s.Status,
			TotalHours:    s.TotalHours,
			BillableHours: s.BillableHours,
		})
	}
	return uc.pdf.TimesheetReport(ReportDocument{
		TenantName:  tenant.Name,
		GeneratedAt: time.Now(),
		Rows:        rows,
	})
}
