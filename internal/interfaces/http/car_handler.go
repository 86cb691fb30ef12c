package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ilogush/cars-api/internal/application/audit"
	"github.com/ilogush/cars-api/internal/application/dto"
	"github.com/ilogush/cars-api/internal/application/usecase"
	"github.com/ilogush/cars-api/internal/domain/entity"
)

// CarHandler CRUD de la flota.
type CarHandler struct {
	uc       *usecase.CarUseCase
	recorder *audit.Recorder
}

// NewCarHandler construye el handler de flota.
func NewCarHandler(uc *usecase.CarUseCase, recorder *audit.Recorder) *CarHandler {
	return &CarHandler{uc: uc, recorder: recorder}
}

// Create godoc
// @Summary      Dar de alta un auto
// @Tags         cars
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCarRequest  true  "plate, model, brandId, dailyRate"
// @Success      201   {object}  dto.CarResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cars [post]
func (h *CarHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCarRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(GetScope(c), GetAdminCompany(c), in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(actorFrom(c), audit.Entry{
		EntityType: "car", EntityID: out.ID, Action: entity.AuditCreate, After: out,
	})
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener auto
// @Tags         cars
// @Produce      json
// @Param        id  path  string  true  "Car ID"
// @Success      200  {object}  dto.CarResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cars/{id} [get]
func (h *CarHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetScope(c), GetAdminCompany(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar auto
// @Tags         cars
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Car ID"
// @Param        body  body  dto.UpdateCarRequest  true  "campos a editar"
// @Success      200   {object}  dto.CarResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cars/{id} [put]
func (h *CarHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCarRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, before, err := h.uc.Update(GetScope(c), GetAdminCompany(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(actorFrom(c), audit.Entry{
		EntityType: "car", EntityID: out.ID, Action: entity.AuditUpdate, Before: before, After: out,
	})
	return c.JSON(out)
}

// Delete godoc
// @Summary      Retirar auto de la flota
// @Tags         cars
// @Param        id  path  string  true  "Car ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cars/{id} [delete]
func (h *CarHandler) Delete(c *fiber.Ctx) error {
	before, err := h.uc.Delete(GetScope(c), GetAdminCompany(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(actorFrom(c), audit.Entry{
		EntityType: "car", EntityID: before.ID, Action: entity.AuditDelete, Before: before,
	})
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar flota (empresa efectiva o catálogo completo)
// @Tags         cars
// @Produce      json
// @Param        page      query  int     false  "página (>= 1)"
// @Param        pageSize  query  int     false  "tamaño de página (max 100)"
// @Param        sortBy    query  string  false  "campo de orden"
// @Param        filters   query  string  false  "JSON plano de filtros"
// @Success      200  {object}  dto.CarListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/cars [get]
func (h *CarHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(GetScope(c), GetAdminCompany(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
