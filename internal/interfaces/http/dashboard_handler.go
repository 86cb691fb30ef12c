package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ilogush/cars-api/internal/application/usecase"
)

// DashboardHandler agregados de flota por empresa.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Dashboard de la empresa efectiva (admin sin admin-mode: plataforma)
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetScope(c), GetAdminCompany(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
