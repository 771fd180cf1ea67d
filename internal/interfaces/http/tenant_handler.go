package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Timesheets-api/internal/application/dto"
	"github.com/jhoicas/Timesheets-api/internal/application/usecase"
)

// TenantHandler maneja el tenant propio y la validación pública de slugs.
type TenantHandler struct {
	uc *usecase.TenantUseCase
}

// NewTenantHandler construye el handler de tenants.
func NewTenantHandler(uc *usecase.TenantUseCase) *TenantHandler {
	return &TenantHandler{uc: uc}
}

// GetCurrent godoc
// @Summary      Tenant del usuario autenticado
// @Tags         tenant
// @Produce      json
// @Success      200  {object}  dto.TenantResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/tenant [get]
func (h *TenantHandler) GetCurrent(c *fiber.Ctx) error {
	out, err := h.uc.GetCurrent(GetTenantID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar el tenant propio
// @Tags         tenant
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateTenantRequest  true  "campos a modificar"
// @Success      200   {object}  dto.TenantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/tenant [put]
func (h *TenantHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTenantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetTenantID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ValidateSlug godoc
// @Summary      Validar públicamente un slug de tenant
// @Tags         tenant
// @Produce      json
// @Param        slug  path  string  true  "slug"
// @Success      200   {object}  dto.ValidateTenantResponse
// @Router       /api/tenant/validate/{slug} [get]
func (h *TenantHandler) ValidateSlug(c *fiber.Ctx) error {
	out, err := h.uc.ValidateSlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
