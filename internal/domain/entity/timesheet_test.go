package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Timesheets-api/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart_NormalizaAlLunes(t *testing.T) {
	lunes := date(2024, time.January, 1) // 2024-01-01 fue lunes

	casos := []struct {
		nombre string
		in     time.Time
	}{
		{"lunes se mantiene", date(2024, time.January, 1)},
		{"miércoles retrocede", date(2024, time.January, 3)},
		{"domingo retrocede", date(2024, time.January, 7)},
		{"con hora se trunca", time.Date(2024, time.January, 4, 17, 30, 0, 0, time.UTC)},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			got := entity.WeekStart(c.in)
			assert.Equal(t, lunes, got)
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}

func TestWeekEnd_EsDomingoDeLaMismaSemana(t *testing.T) {
	start := date(2024, time.January, 1)
	end := entity.WeekEnd(start)
	assert.Equal(t, date(2024, time.January, 7), end)
	assert.Equal(t, time.Sunday, end.Weekday())
}

func TestSumEntries_RecalculaTotalYFacturable(t *testing.T) {
	h := func(s string) decimal.Decimal {
		d, _ := decimal.NewFromString(s)
		return d
	}
	entries := []*entity.TimesheetEntry{
		{Hours: h("8"), IsBillable: true},
		{Hours: h("7.5"), IsBillable: true},
		{Hours: h("2.25"), IsBillable: false},
	}
	total, billable := entity.SumEntries(entries)
	assert.True(t, h("17.75").Equal(total), "total esperado 17.75, fue %s", total)
	assert.True(t, h("15.5").Equal(billable), "facturable esperado 15.5, fue %s", billable)
}

func TestSumEntries_SinEntradasEsCero(t *testing.T) {
	total, billable := entity.SumEntries(nil)
	assert.True(t, total.IsZero())
	assert.True(t, billable.IsZero())
}

func TestIsEditable_SoloDraftYRejected(t *testing.T) {
	casos := map[string]bool{
		entity.SheetDraft:     true,
		entity.SheetRejected:  true,
		entity.SheetSubmitted: false,
		entity.SheetApproved:  false,
		entity.SheetLocked:    false,
	}
	for status, esperado := range casos {
		ts := &entity.Timesheet{Status: status}
		assert.Equal(t, esperado, ts.IsEditable(), "status %s", status)
	}
}

func TestSlugify_NormalizaNombres(t *testing.T) {
	casos := []struct {
		in   string
		want string
	}{
		{"Acme Corp", "acme-corp"},
		{"Construcción  Andina", "construccion-andina"},
		{"Señal & Cía.", "senal-cia"},
		{"  Múltiples---Espacios  ", "multiples-espacios"},
		{"ACME", "acme"},
	}
	for _, c := range casos {
		assert.Equal(t, c.want, entity.Slugify(c.in), "entrada %q", c.in)
	}
}
