package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ilogush/cars-api/internal/application/audit"
	"github.com/ilogush/cars-api/internal/application/dto"
	"github.com/ilogush/cars-api/internal/application/usecase"
	"github.com/ilogush/cars-api/internal/domain/entity"
)

// BookingHandler reservas/contratos de renta.
type BookingHandler struct {
	uc       *usecase.BookingUseCase
	contract *usecase.ContractUseCase
	recorder *audit.Recorder
}

// NewBookingHandler construye el handler de reservas.
func NewBookingHandler(uc *usecase.BookingUseCase, contract *usecase.ContractUseCase, recorder *audit.Recorder) *BookingHandler {
	return &BookingHandler{uc: uc, contract: contract, recorder: recorder}
}

// Create godoc
// @Summary      Crear reserva (con pago inicial opcional)
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBookingRequest  true  "carId, startDate, endDate"
// @Success      201   {object}  dto.BookingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookingRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetScope(c), GetAdminCompany(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(actorFrom(c), audit.Entry{
		EntityType: "booking", EntityID: out.ID, Action: entity.AuditCreate, After: out,
	})
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener reserva
// @Tags         bookings
// @Produce      json
// @Param        id  path  string  true  "Booking ID"
// @Success      200  {object}  dto.BookingResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id} [get]
func (h *BookingHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetScope(c), GetAdminCompany(c), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Cambiar estado/fechas de reserva
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Booking ID"
// @Param        body  body  dto.UpdateBookingRequest  true  "status, endDate, notes"
// @Success      200   {object}  dto.BookingResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bookings/{id} [put]
func (h *BookingHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBookingRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, before, err := h.uc.Update(c.Context(), GetScope(c), GetAdminCompany(c), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(actorFrom(c), audit.Entry{
		EntityType: "booking", EntityID: out.ID, Action: entity.AuditUpdate, Before: before, After: out,
	})
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar reserva no activa
// @Tags         bookings
// @Param        id  path  string  true  "Booking ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	before, err := h.uc.Delete(GetScope(c), GetAdminCompany(c), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(actorFrom(c), audit.Entry{
		EntityType: "booking", EntityID: before.ID, Action: entity.AuditDelete, Before: before,
	})
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar reservas (client: propias; resto: empresa efectiva)
// @Tags         bookings
// @Produce      json
// @Param        page      query  int     false  "página (>= 1)"
// @Param        pageSize  query  int     false  "tamaño de página (max 100)"
// @Param        filters   query  string  false  "JSON plano de filtros"
// @Success      200  {object}  dto.BookingListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(GetScope(c), GetAdminCompany(c), GetUserID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Contract godoc
// @Summary      Descargar contrato de renta en PDF
// @Tags         bookings
// @Produce      application/pdf
// @Param        id  path  string  true  "Booking ID"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id}/contract [get]
func (h *BookingHandler) Contract(c *fiber.Ctx) error {
	pdfBytes, err := h.contract.Generate(c.Context(), GetScope(c), GetAdminCompany(c), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(actorFrom(c), audit.Entry{
		EntityType: "booking", EntityID: c.Params("id"), Action: entity.AuditView,
	})
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="contrato-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}
