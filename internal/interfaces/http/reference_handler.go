package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ilogush/cars-api/internal/application/audit"
	"github.com/ilogush/cars-api/internal/application/dto"
	"github.com/ilogush/cars-api/internal/application/usecase"
	"github.com/ilogush/cars-api/internal/domain/entity"
)

// ReferenceHandler catálogos de referencia (marcas, ubicaciones, monedas).
type ReferenceHandler struct {
	uc       *usecase.ReferenceUseCase
	recorder *audit.Recorder
}

// NewReferenceHandler construye el handler de referencia.
func NewReferenceHandler(uc *usecase.ReferenceUseCase, recorder *audit.Recorder) *ReferenceHandler {
	return &ReferenceHandler{uc: uc, recorder: recorder}
}

// ListBrands godoc
// @Summary      Marcas de autos
// @Tags         reference
// @Produce      json
// @Success      200  {array}  dto.BrandResponse
// @Router       /api/brands [get]
func (h *ReferenceHandler) ListBrands(c *fiber.Ctx) error {
	out, err := h.uc.ListBrands(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListLocations godoc
// @Summary      Ubicaciones
// @Tags         reference
// @Produce      json
// @Success      200  {array}  dto.LocationResponse
// @Router       /api/locations [get]
func (h *ReferenceHandler) ListLocations(c *fiber.Ctx) error {
	out, err := h.uc.ListLocations(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateLocation godoc
// @Summary      Crear ubicación (solo admin)
// @Tags         reference
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocationRequest  true  "name, country, timezone"
// @Success      201   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/locations [post]
func (h *ReferenceHandler) CreateLocation(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateLocation(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(actorFrom(c), audit.Entry{
		EntityType: "location", EntityID: out.ID, Action: entity.AuditCreate, After: out,
	})
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCurrencies godoc
// @Summary      Monedas soportadas
// @Tags         reference
// @Produce      json
// @Success      200  {array}  dto.CurrencyResponse
// @Router       /api/currencies [get]
func (h *ReferenceHandler) ListCurrencies(c *fiber.Ctx) error {
	out, err := h.uc.ListCurrencies(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
