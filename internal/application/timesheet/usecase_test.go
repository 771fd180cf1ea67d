package timesheet_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Timesheets-api/internal/application/dto"
	"github.com/jhoicas/Timesheets-api/internal/application/timesheet"
	"github.com/jhoicas/Timesheets-api/internal/domain"
	"github.com/jhoicas/Timesheets-api/internal/domain/entity"
	"github.com/jhoicas/Timesheets-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// memStore guarda todas las filas y cada repo fake filtra por tenant, igual
// que los adaptadores de Postgres: una fila de otro tenant equivale a una
// fila inexistente. Las transiciones replican el UPDATE condicional real
// (solo aplican si el estado actual coincide con el pre-estado).
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	sheets   map[string]*entity.Timesheet
	entries  map[string]*entity.TimesheetEntry
	projects map[string]*entity.Project
	tasks    map[string]*entity.Task
	audits   []*entity.AuditLog
}

func newMemStore() *memStore {
	return &memStore{
		sheets:   make(map[string]*entity.Timesheet),
		entries:  make(map[string]*entity.TimesheetEntry),
		projects: make(map[string]*entity.Project),
		tasks:    make(map[string]*entity.Task),
	}
}

type fakeSheetRepo struct{ s *memStore }

func (r fakeSheetRepo) Create(ts *entity.Timesheet) error {
	for _, ex := range r.s.sheets {
		if ex.UserID == ts.UserID && ex.WeekStartDate.Equal(ts.WeekStartDate) {
			return domain.ErrDuplicate
		}
	}
	cp := *ts
	r.s.sheets[ts.ID] = &cp
	return nil
}

func (r fakeSheetRepo) GetByID(id, tenantID string) (*entity.Timesheet, error) {
	ts, ok := r.s.sheets[id]
	if !ok || ts.TenantID != tenantID {
		return nil, nil
	}
	cp := *ts
	return &cp, nil
}

func (r fakeSheetRepo) GetForWeek(userID, tenantID string, weekStart time.Time) (*entity.Timesheet, error) {
	for _, ts := range r.s.sheets {
		if ts.UserID == userID && ts.TenantID == tenantID && ts.WeekStartDate.Equal(weekStart) {
			cp := *ts
			return &cp, nil
		}
	}
	return nil, nil
}

func (r fakeSheetRepo) ListByUser(userID, tenantID string, limit int) ([]*entity.Timesheet, error) {
	var out []*entity.Timesheet
	for _, ts := range r.s.sheets {
		if ts.UserID == userID && ts.TenantID == tenantID {
			cp := *ts
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeekStartDate.After(out[j].WeekStartDate) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r fakeSheetRepo) ListByTenant(tenantID, status string, limit, offset int) ([]*entity.Timesheet, error) {
	var out []*entity.Timesheet
	for _, ts := range r.s.sheets {
		if ts.TenantID == tenantID && (status == "" || ts.Status == status) {
			cp := *ts
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r fakeSheetRepo) UpdateTotals(id, tenantID string, total, billable decimal.Decimal) error {
	if ts, ok := r.s.sheets[id]; ok && ts.TenantID == tenantID {
		ts.TotalHours = total
		ts.BillableHours = billable
	}
	return nil
}

func (r fakeSheetRepo) Submit(id, tenantID string, total, billable decimal.Decimal, at time.Time) (bool, error) {
	ts, ok := r.s.sheets[id]
	if !ok || ts.TenantID != tenantID {
		return false, nil
	}
	if ts.Status != entity.SheetDraft && ts.Status != entity.SheetRejected {
		return false, nil
	}
	ts.Status = entity.SheetSubmitted
	ts.TotalHours = total
	ts.BillableHours = billable
	ts.SubmittedAt = &at
	ts.RejectionReason = ""
	return true, nil
}

func (r fakeSheetRepo) Approve(id, tenantID, approverID string, at time.Time) (bool, error) {
	ts, ok := r.s.sheets[id]
	if !ok || ts.TenantID != tenantID || ts.Status != entity.SheetSubmitted {
		return false, nil
	}
	ts.Status = entity.SheetApproved
	ts.ApprovedBy = &approverID
	ts.ApprovedAt = &at
	return true, nil
}

func (r fakeSheetRepo) Reject(id, tenantID, approverID, reason string, at time.Time) (bool, error) {
	ts, ok := r.s.sheets[id]
	if !ok || ts.TenantID != tenantID || ts.Status != entity.SheetSubmitted {
		return false, nil
	}
	ts.Status = entity.SheetRejected
	ts.ApprovedBy = &approverID
	ts.ApprovedAt = &at
	ts.RejectionReason = reason
	return true, nil
}

func (r fakeSheetRepo) Lock(id, tenantID string, at time.Time) (bool, error) {
	ts, ok := r.s.sheets[id]
	if !ok || ts.TenantID != tenantID || ts.Status != entity.SheetApproved {
		return false, nil
	}
	ts.Status = entity.SheetLocked
	return true, nil
}

type fakeEntryRepo struct{ s *memStore }

func (r fakeEntryRepo) Create(e *entity.TimesheetEntry) error {
	cp := *e
	r.s.entries[e.ID] = &cp
	return nil
}

func (r fakeEntryRepo) GetByID(id, tenantID string) (*entity.TimesheetEntry, error) {
	e, ok := r.s.entries[id]
	if !ok || e.TenantID != tenantID {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r fakeEntryRepo) ListByTimesheet(timesheetID, tenantID string) ([]*entity.TimesheetEntry, error) {
	var out []*entity.TimesheetEntry
	for _, e := range r.s.entries {
		if e.TimesheetID == timesheetID && e.TenantID == tenantID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r fakeEntryRepo) Update(e *entity.TimesheetEntry) error {
	if ex, ok := r.s.entries[e.ID]; ok && ex.TenantID == e.TenantID {
		cp := *e
		r.s.entries[e.ID] = &cp
	}
	return nil
}

func (r fakeEntryRepo) Delete(id, tenantID string) (bool, error) {
	e, ok := r.s.entries[id]
	if !ok || e.TenantID != tenantID {
		return false, nil
	}
	delete(r.s.entries, id)
	return true, nil
}

type fakeProjectRepo struct{ s *memStore }

func (r fakeProjectRepo) Create(p *entity.Project) error { r.s.projects[p.ID] = p; return nil }
func (r fakeProjectRepo) GetByID(id, tenantID string) (*entity.Project, error) {
	p, ok := r.s.projects[id]
	if !ok || p.TenantID != tenantID {
		return nil, nil
	}
	return p, nil
}
func (r fakeProjectRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Project, error) {
	return nil, nil
}
func (r fakeProjectRepo) Update(p *entity.Project) error           { return nil }
func (r fakeProjectRepo) Delete(id, tenantID string) (bool, error) { return false, nil }

type fakeTaskRepo struct{ s *memStore }

func (r fakeTaskRepo) Create(t *entity.Task) error { r.s.tasks[t.ID] = t; return nil }
func (r fakeTaskRepo) GetByID(id, tenantID string) (*entity.Task, error) {
	t, ok := r.s.tasks[id]
	if !ok || t.TenantID != tenantID {
		return nil, nil
	}
	return t, nil
}
func (r fakeTaskRepo) ListByProject(projectID, tenantID string) ([]*entity.Task, error) {
	return nil, nil
}
func (r fakeTaskRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Task, error) {
	return nil, nil
}
func (r fakeTaskRepo) Update(t *entity.Task) error              { return nil }
func (r fakeTaskRepo) Delete(id, tenantID string) (bool, error) { return false, nil }

type fakeAuditRepo struct{ s *memStore }

func (r fakeAuditRepo) Create(log *entity.AuditLog) error {
	r.s.audits = append(r.s.audits, log)
	return nil
}
func (r fakeAuditRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.AuditLog, error) {
	return r.s.audits, nil
}

// fakeTxRunner ejecuta el callback directamente sobre el store compartido.
type fakeTxRunner struct{ s *memStore }

func (r fakeTxRunner) Run(ctx context.Context, fn func(
	repository.TimesheetRepository,
	repository.EntryRepository,
	repository.AuditLogRepository,
) error) error {
	return fn(fakeSheetRepo{r.s}, fakeEntryRepo{r.s}, fakeAuditRepo{r.s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	tenantA    = "tenant-a"
	tenantB    = "tenant-b"
	userAlice  = "user-alice" // empleada dueña de sus timesheets
	userBob    = "user-bob"   // manager aprobador
	projectWeb = "project-web"
	taskLogin  = "task-login"
)

// miércoles 11 de marzo de 2026; el lunes de esa semana es el 9.
var testDate = time.Date(2026, 3, 11, 15, 30, 0, 0, time.UTC)

func newTestUseCase(t *testing.T) (*timesheet.UseCase, *memStore) {
	t.Helper()
	s := newMemStore()
	s.projects[projectWeb] = &entity.Project{ID: projectWeb, TenantID: tenantA, Name: "Web corporativa", Status: entity.ProjectActive, IsBillable: true}
	s.tasks[taskLogin] = &entity.Task{ID: taskLogin, TenantID: tenantA, ProjectID: projectWeb, Name: "Login SSO", Status: entity.TaskOpen}
	uc := timesheet.NewUseCase(fakeSheetRepo{s}, fakeEntryRepo{s}, fakeProjectRepo{s}, fakeTaskRepo{s}, fakeTxRunner{s})
	return uc, s
}

// draftWeek crea (perezosamente) el timesheet de alice para la semana de test.
func draftWeek(t *testing.T, uc *timesheet.UseCase) *dto.TimesheetWithEntriesResponse {
	t.Helper()
	sheet, err := uc.GetOrCreateWeek(tenantA, userAlice, testDate)
	require.NoError(t, err)
	return sheet
}

// addHours añade una entrada de horas al timesheet dado.
func addHours(t *testing.T, uc *timesheet.UseCase, sheetID, date string, hours int64, billable bool) *dto.EntryResponse {
	t.Helper()
	e, err := uc.AddEntry(context.Background(), tenantA, userAlice, dto.CreateEntryRequest{
		TimesheetID: sheetID,
		ProjectID:   projectWeb,
		EntryDate:   date,
		Hours:       decimal.NewFromInt(hours),
		IsBillable:  &billable,
	})
	require.NoError(t, err)
	return e
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación perezosa de la semana
// ──────────────────────────────────────────────────────────────────────────────

func TestGetOrCreateWeek_CreaDraftNormalizadoALunes(t *testing.T) {
	uc, _ := newTestUseCase(t)

	sheet := draftWeek(t, uc)
	assert.Equal(t, entity.SheetDraft, sheet.Status, "la semana nueva debe nacer en draft")
	assert.Equal(t, "2026-03-09", sheet.WeekStartDate, "cualquier día de la semana debe normalizar al lunes")
	assert.Equal(t, "2026-03-15", sheet.WeekEndDate, "la semana debe cerrar en domingo")
	assert.True(t, sheet.TotalHours.IsZero(), "los totales deben nacer en cero")
	assert.Empty(t, sheet.Entries, "una semana nueva no tiene entradas")
}

func TestGetOrCreateWeek_ReusaTimesheetExistente(t *testing.T) {
	uc, _ := newTestUseCase(t)

	first := draftWeek(t, uc)
	// Otro día de la misma semana debe devolver el mismo timesheet.
	second, err := uc.GetOrCreateWeek(tenantA, userAlice, testDate.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "la misma semana no debe duplicar timesheets")
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas y recálculo de totales
// ──────────────────────────────────────────────────────────────────────────────

func TestAddEntry_RecalculaTotalesDelPadre(t *testing.T) {
	uc, _ := newTestUseCase(t)
	sheet := draftWeek(t, uc)

	// 4 días facturables de 8h + 1 día interno de 8h = 40h totales, 32h facturables.
	addHours(t, uc, sheet.ID, "2026-03-09", 8, true)
	addHours(t, uc, sheet.ID, "2026-03-10", 8, true)
	addHours(t, uc, sheet.ID, "2026-03-11", 8, true)
	addHours(t, uc, sheet.ID, "2026-03-12", 8, true)
	addHours(t, uc, sheet.ID, "2026-03-13", 8, false)

	got, err := uc.GetByID(tenantA, userAlice, entity.RoleEmployee, sheet.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalHours.Equal(decimal.NewFromInt(40)), "total esperado 40h, obtenido %s", got.TotalHours)
	assert.True(t, got.BillableHours.Equal(decimal.NewFromInt(32)), "facturable esperado 32h, obtenido %s", got.BillableHours)
	assert.Len(t, got.Entries, 5)
}

func TestAddEntry_ConTareaDelProyecto(t *testing.T) {
	uc, _ := newTestUseCase(t)
	sheet := draftWeek(t, uc)

	taskID := taskLogin
	e, err := uc.AddEntry(context.Background(), tenantA, userAlice, dto.CreateEntryRequest{
		TimesheetID: sheet.ID,
		ProjectID:   projectWeb,
		TaskID:      &taskID,
		EntryDate:   "2026-03-10",
		Hours:       decimal.NewFromFloat(4.5),
		Description: "Integración SSO",
	})
	require.NoError(t, err)
	require.NotNil(t, e.TaskID)
	assert.Equal(t, taskLogin, *e.TaskID)
	assert.True(t, e.IsBillable, "sin is_billable explícito la entrada debe ser facturable")
}

func TestAddEntry_FechaFueraDeSemana_Rechazada(t *testing.T) {
	uc, _ := newTestUseCase(t)
	sheet := draftWeek(t, uc)

	_, err := uc.AddEntry(context.Background(), tenantA, userAlice, dto.CreateEntryRequest{
		TimesheetID: sheet.ID,
		ProjectID:   projectWeb,
		EntryDate:   "2026-03-16", // lunes de la semana siguiente
		Hours:       decimal.NewFromInt(8),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "una fecha fuera de la semana del padre debe rechazarse")
}

func TestAddEntry_HorasInvalidas_Rechazadas(t *testing.T) {
	uc, _ := newTestUseCase(t)
	sheet := draftWeek(t, uc)

	casos := []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromInt(-2),
		decimal.NewFromFloat(24.5),
	}
	for _, horas := range casos {
		_, err := uc.AddEntry(context.Background(), tenantA, userAlice, dto.CreateEntryRequest{
			TimesheetID: sheet.ID,
			ProjectID:   projectWeb,
			EntryDate:   "2026-03-10",
			Hours:       horas,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "horas %s deben rechazarse", horas)
	}
}

func TestAddEntry_TareaDeOtroProyecto_NotFound(t *testing.T) {
	uc, s := newTestUseCase(t)
	sheet := draftWeek(t, uc)

	// Tarea válida del tenant pero colgada de otro proyecto.
	s.projects["project-app"] = &entity.Project{ID: "project-app", TenantID: tenantA, Status: entity.ProjectActive}
	s.tasks["task-otra"] = &entity.Task{ID: "task-otra", TenantID: tenantA, ProjectID: "project-app"}

	otra := "task-otra"
	_, err := uc.AddEntry(context.Background(), tenantA, userAlice, dto.CreateEntryRequest{
		TimesheetID: sheet.ID,
		ProjectID:   projectWeb,
		TaskID:      &otra,
		EntryDate:   "2026-03-10",
		Hours:       decimal.NewFromInt(2),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "una tarea de otro proyecto debe tratarse como inexistente")
}

func TestUpdateEntry_CambiaHorasYRecalcula(t *testing.T) {
	uc, _ := newTestUseCase(t)
	sheet := draftWeek(t, uc)
	e := addHours(t, uc, sheet.ID, "2026-03-09", 8, true)

	nuevas := decimal.NewFromFloat(6.5)
	updated, err := uc.UpdateEntry(context.Background(), tenantA, userAlice, e.ID, dto.UpdateEntryRequest{Hours: &nuevas})
	require.NoError(t, err)
	assert.True(t, updated.Hours.Equal(nuevas))

	got, err := uc.GetByID(tenantA, userAlice, entity.RoleEmployee, sheet.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalHours.Equal(nuevas), "el total del padre debe seguir a la entrada")
}

func TestDeleteEntry_RecalculaTotales(t *testing.T) {
	uc, _ := newTestUseCase(t)
	sheet := draftWeek(t, uc)
	e := addHours(t, uc, sheet.ID, "2026-03-09", 8, true)
	addHours(t, uc, sheet.ID, "2026-03-10", 4, true)

	require.NoError(t, uc.DeleteEntry(context.Background(), tenantA, userAlice, e.ID))

	got, err := uc.GetByID(tenantA, userAlice, entity.RoleEmployee, sheet.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalHours.Equal(decimal.NewFromInt(4)), "tras borrar deben quedar 4h")
	assert.Len(t, got.Entries, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida: submit / approve / reject / lock
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_EnviaYRecalculaTotales(t *testing.T) {
	uc, s := newTestUseCase(t)
	sheet := draftWeek(t, uc)
	addHours(t, uc, sheet.ID, "2026-03-09", 8, true)

	resp, err := uc.Submit(context.Background(), tenantA, userAlice, sheet.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SheetSubmitted, resp.Status)
	assert.NotNil(t, resp.SubmittedAt)
	assert.True(t, resp.TotalHours.Equal(decimal.NewFromInt(8)))

	// El envío queda en la auditoría.
	require.NotEmpty(t, s.audits)
	assert.Equal(t, entity.AuditSheetSubmitted, s.audits[len(s.audits)-1].Action)
}

func TestSubmit_NoDueño_Forbidden(t *testing.T) {
	uc, _ := newTestUseCase(t)
	sheet := draftWeek(t, uc)

	_, err := uc.Submit(context.Background(), tenantA, userBob, sheet.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden, "solo el dueño puede enviar su timesheet")
}

func TestSubmit_YaEnviado_Conflict(t *testing.T) {
	uc, _ := newTestUseCase(t)
	sheet := draftWeek(t, uc)
	addHours(t, uc, sheet.ID, "2026-03-09", 8, true)

	_, err := uc.Submit(context.Background(), tenantA, userAlice, sheet.ID)
	require.NoError(t, err)

	_, err = uc.Submit(context.Background(), tenantA, userAlice, sheet.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "el segundo submit debe perder contra el primero")
}

func TestAddEntry_TimesheetEnviado_NoEditable(t *testing.T) {
	uc, _ := newTestUseCase(t)
	sheet := draftWeek(t, uc)
	addHours(t, uc, sheet.ID, "2026-03-09", 8, true)

	_, err := uc.Submit(context.Background(), tenantA, userAlice, sheet.ID)
	require.NoError(t, err)

	_, err = uc.AddEntry(context.Background(), tenantA, userAlice, dto.CreateEntryRequest{
		TimesheetID: sheet.ID,
		ProjectID:   projectWeb,
		EntryDate:   "2026-03-10",
		Hours:       decimal.NewFromInt(4),
	})
	assert.ErrorIs(t, err, domain.ErrSheetNotEditable, "un timesheet enviado no admite mutación de entradas")
}

func TestApprove_ManagerApruebaEnviado(t *testing.T) {
	uc, _ := newTestUseCase(t)
	sheet := draftWeek(t, uc)
	addHours(t, uc, sheet.ID, "2026-03-09", 8, true)
	_, err := uc.Submit(context.Background(), tenantA, userAlice, sheet.ID)
	require.NoError(t, err)

	resp, err := uc.Approve(context.Background(), tenantA, userBob, entity.RoleManager, sheet.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SheetApproved, resp.Status)
	require.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, userBob, *resp.ApprovedBy)
	assert.NotNil(t, resp.ApprovedAt)
}

func TestApprove_RolEmpleado_Forbidden(t *testing.T) {
	uc, _ := newTestUseCase(t)
	sheet := draftWeek(t, uc)
	addHours(t, uc, sheet.ID, "2026-03-09", 8, true)
	_, err := uc.Submit(context.Background(), tenantA, userAlice, sheet.ID)
	require.NoError(t, err)

	_, err = uc.Approve(context.Background(), tenantA, userBob, entity.RoleEmployee, sheet.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden, "un empleado no puede aprobar timesheets")
}

func TestReject_DevuelveControlAlEmpleado(t *testing.T) {
	uc, _ := newTestUseCase(t)
	sheet := draftWeek(t, uc)
	addHours(t, uc, sheet.ID, "2026-03-09", 8, true)
	_, err := uc.Submit(context.Background(), tenantA, userAlice, sheet.ID)
	require.NoError(t, err)

	resp, err := uc.Reject(context.Background(), tenantA, userBob, entity.RoleManager, sheet.ID, "faltan horas del viernes")
	require.NoError(t, err)
	assert.Equal(t, entity.SheetRejected, resp.Status)
	assert.Equal(t, "faltan horas del viernes", resp.RejectionReason)
	require.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, userBob, *resp.ApprovedBy)
	assert.NotNil(t, resp.ApprovedAt, "el rechazo debe registrar el momento de la decisión")

	// La decisión queda persistida igual que en la respuesta.
	persisted, err := uc.GetByID(tenantA, userBob, entity.RoleManager, sheet.ID)
	require.NoError(t, err)
	assert.NotNil(t, persisted.ApprovedAt, "approved_at debe quedar guardado también en rechazos")

	// Tras el rechazo el dueño vuelve a poder editar y re-enviar.
	addHours(t, uc, sheet.ID, "2026-03-13", 8, true)
	again, err := uc.Submit(context.Background(), tenantA, userAlice, sheet.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SheetSubmitted, again.Status)
	assert.Empty(t, again.RejectionReason, "el re-envío debe limpiar el motivo de rechazo")
	assert.True(t, again.TotalHours.Equal(decimal.NewFromInt(16)))
}

func TestDecisionesConcurrentes_SoloUnaGana(t *testing.T) {
	uc, _ := newTestUseCase(t)
	sheet := draftWeek(t, uc)
	addHours(t, uc, sheet.ID, "2026-03-09", 8, true)
	_, err := uc.Submit(context.Background(), tenantA, userAlice, sheet.ID)
	require.NoError(t, err)

	_, err = uc.Approve(context.Background(), tenantA, userBob, entity.RoleManager, sheet.ID)
	require.NoError(t, err)

	// La segunda decisión sobre el mismo envío no encuentra el pre-estado.
	_, err = uc.Reject(context.Background(), tenantA, userBob, entity.RoleManager, sheet.ID, "tarde")
	assert.ErrorIs(t, err, domain.ErrConflict, "de dos decisiones sobre el mismo envío solo una gana")
}

func TestLock_SoloDesdeAprobado(t *testing.T) {
	uc, _ := newTestUseCase(t)
	sheet := draftWeek(t, uc)
	addHours(t, uc, sheet.ID, "2026-03-09", 8, true)
	_, err := uc.Submit(context.Background(), tenantA, userAlice, sheet.ID)
	require.NoError(t, err)

	// submitted no admite lock directo.
	_, err = uc.Lock(context.Background(), tenantA, userBob, sheet.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.Approve(context.Background(), tenantA, userBob, entity.RoleManager, sheet.ID)
	require.NoError(t, err)

	resp, err := uc.Lock(context.Background(), tenantA, userBob, sheet.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SheetLocked, resp.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento entre tenants
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_OtroTenant_NotFound(t *testing.T) {
	uc, _ := newTestUseCase(t)
	sheet := draftWeek(t, uc)

	_, err := uc.GetByID(tenantB, userAlice, entity.RoleOwner, sheet.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"una fila de otro tenant debe ser indistinguible de una inexistente")
}

func TestGetByID_OtroUsuarioSinRolAprobador_Forbidden(t *testing.T) {
	uc, _ := newTestUseCase(t)
	sheet := draftWeek(t, uc)

	_, err := uc.GetByID(tenantA, userBob, entity.RoleEmployee, sheet.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// El mismo usuario con rol aprobador sí puede verlo.
	got, err := uc.GetByID(tenantA, userBob, entity.RoleManager, sheet.ID)
	require.NoError(t, err)
	assert.Equal(t, sheet.ID, got.ID)
}
