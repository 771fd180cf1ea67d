package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Timesheets-api/internal/domain"
)

func respondWith(t *testing.T, err error) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error { return respondError(c, err) })

	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, reqErr)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestRespondError_ErroresDeDominio(t *testing.T) {
	casos := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
		{domain.ErrConflict, http.StatusBadRequest, "INVALID_STATE"},
		{domain.ErrSheetNotEditable, http.StatusBadRequest, "NOT_EDITABLE"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrSlugTaken, http.StatusConflict, "SLUG_TAKEN"},
	}
	for _, c := range casos {
		status, body := respondWith(t, c.err)
		assert.Equal(t, c.status, status, "status para %v", c.err)
		assert.Contains(t, body, c.code)
	}
}

// Un error no mapeado es 500 genérico: el detalle interno (SQL, tablas,
// constraints) va al log y nunca al cliente.
func TestRespondError_ErrorInterno_NoFiltraDetalle(t *testing.T) {
	interno := fmt.Errorf("insert timesheet: %w", errors.New(`duplicate key "timesheets_user_week_key"`))

	status, body := respondWith(t, interno)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, body, "INTERNAL")
	assert.NotContains(t, body, "insert timesheet", "el detalle del error no debe llegar al cliente")
	assert.NotContains(t, body, "timesheets_user_week_key")
}
