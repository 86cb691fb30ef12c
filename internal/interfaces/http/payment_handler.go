package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ilogush/cars-api/internal/application/audit"
	"github.com/ilogush/cars-api/internal/application/dto"
	"github.com/ilogush/cars-api/internal/application/usecase"
	"github.com/ilogush/cars-api/internal/domain/entity"
)

// PaymentHandler pagos de reservas.
type PaymentHandler struct {
	uc       *usecase.PaymentUseCase
	recorder *audit.Recorder
}

// NewPaymentHandler construye el handler de pagos.
func NewPaymentHandler(uc *usecase.PaymentUseCase, recorder *audit.Recorder) *PaymentHandler {
	return &PaymentHandler{uc: uc, recorder: recorder}
}

// Create godoc
// @Summary      Registrar pago de una reserva
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentRequest  true  "bookingId, amount, method"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(GetScope(c), GetAdminCompany(c), in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(actorFrom(c), audit.Entry{
		EntityType: "payment", EntityID: out.ID, Action: entity.AuditCreate, After: out,
	})
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Correct godoc
// @Summary      Corregir un pago mal registrado
// @Description  Ajusta monto, medio o estado del pago. La corrección queda
// @Description  auditada con la acción "correct" y los snapshots antes/después.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Payment ID"
// @Param        body  body  dto.CorrectPaymentRequest  true  "campos a corregir"
// @Success      200   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payments/{id} [put]
func (h *PaymentHandler) Correct(c *fiber.Ctx) error {
	var in dto.CorrectPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, before, err := h.uc.Correct(GetScope(c), GetAdminCompany(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(actorFrom(c), audit.Entry{
		EntityType: "payment", EntityID: out.ID, Action: entity.AuditCorrect, Before: before, After: out,
	})
	return c.JSON(out)
}

// ListByBooking godoc
// @Summary      Pagos de una reserva
// @Tags         payments
// @Produce      json
// @Param        id  path  string  true  "Booking ID"
// @Success      200  {array}  dto.PaymentResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id}/payments [get]
func (h *PaymentHandler) ListByBooking(c *fiber.Ctx) error {
	out, err := h.uc.ListByBooking(GetScope(c), GetAdminCompany(c), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Pagos de la empresa efectiva
// @Tags         payments
// @Produce      json
// @Param        page      query  int     false  "página (>= 1)"
// @Param        pageSize  query  int     false  "tamaño de página (max 100)"
// @Param        filters   query  string  false  "JSON plano de filtros"
// @Success      200  {object}  dto.PaymentListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
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
