package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ilogush/cars-api/internal/application/audit"
	"github.com/ilogush/cars-api/internal/application/dto"
	"github.com/ilogush/cars-api/internal/application/usecase"
	"github.com/ilogush/cars-api/internal/domain/entity"
)

// CompanyHandler CRUD de empresas (tenants).
type CompanyHandler struct {
	uc       *usecase.CompanyUseCase
	recorder *audit.Recorder
}

// NewCompanyHandler construye el handler de empresas.
func NewCompanyHandler(uc *usecase.CompanyUseCase, recorder *audit.Recorder) *CompanyHandler {
	return &CompanyHandler{uc: uc, recorder: recorder}
}

// Create godoc
// @Summary      Crear empresa (solo admin)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "name, nit, ownerId"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(actorFrom(c), audit.Entry{
		EntityType: "company", EntityID: out.ID, Action: entity.AuditCreate, After: out,
	})
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener empresa
// @Tags         companies
// @Produce      json
// @Param        id  path  string  true  "Company ID"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetScope(c), GetAdminCompany(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Company ID"
// @Param        body  body  dto.UpdateCompanyRequest  true  "campos a editar"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, before, err := h.uc.Update(GetScope(c), GetAdminCompany(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(actorFrom(c), audit.Entry{
		EntityType: "company", EntityID: out.ID, Action: entity.AuditUpdate, Before: before, After: out,
	})
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar empresa (solo admin)
// @Tags         companies
// @Param        id  path  string  true  "Company ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	before, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(actorFrom(c), audit.Entry{
		EntityType: "company", EntityID: before.ID, Action: entity.AuditDelete, Before: before,
	})
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar empresas (solo admin)
// @Tags         companies
// @Produce      json
// @Param        page      query  int     false  "página (>= 1)"
// @Param        pageSize  query  int     false  "tamaño de página (max 100)"
// @Param        filters   query  string  false  "JSON plano de filtros"
// @Success      200  {object}  dto.CompanyListResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
