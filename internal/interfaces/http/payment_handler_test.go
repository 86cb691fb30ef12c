package http_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilogush/cars-api/internal/application/dto"
	"github.com/ilogush/cars-api/internal/application/usecase"
	"github.com/ilogush/cars-api/internal/domain/entity"
	"github.com/ilogush/cars-api/internal/domain/repository"
	apphttp "github.com/ilogush/cars-api/internal/interfaces/http"
)

type fakePaymentRepo struct {
	byID map[string]*entity.Payment
}

func (f *fakePaymentRepo) Create(p *entity.Payment) error { f.byID[p.ID] = p; return nil }
func (f *fakePaymentRepo) GetByID(id string) (*entity.Payment, error) {
	return f.byID[id], nil
}
func (f *fakePaymentRepo) Update(p *entity.Payment) error { f.byID[p.ID] = p; return nil }
func (f *fakePaymentRepo) ListByBooking(string) ([]*entity.Payment, error) { return nil, nil }
func (f *fakePaymentRepo) ListByCompany(string, repository.ListParams) ([]*entity.Payment, error) {
	return nil, nil
}

type fakeBookingRepo struct{}

func (f *fakeBookingRepo) Create(*entity.Booking) error                { return nil }
func (f *fakeBookingRepo) GetByID(string) (*entity.Booking, error)     { return nil, nil }
func (f *fakeBookingRepo) Update(*entity.Booking) error                { return nil }
func (f *fakeBookingRepo) ListByCompany(string, repository.ListParams) ([]*entity.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) ListByClient(string, repository.ListParams) ([]*entity.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) HasOverlap(string, time.Time, time.Time) (bool, error) {
	return false, nil
}
func (f *fakeBookingRepo) Delete(string) error { return nil }

func TestCorrectPayment_QuedaAuditadoComoCorreccion(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "owner-1", Role: entity.RoleOwner, Status: "active"})
	companies := newFakeCompanyRepo(&entity.Company{ID: "empresa-7", OwnerID: "owner-1"})
	payments := &fakePaymentRepo{byID: map[string]*entity.Payment{
		"pay-1": {
			ID:        "pay-1",
			BookingID: "bk-1",
			CompanyID: "empresa-7",
			Amount:    decimal.NewFromInt(100),
			Method:    "cash",
			Status:    entity.PaymentConfirmed,
		},
	}}
	auditRepo := &fakeAuditRepo{}

	handler := apphttp.NewPaymentHandler(
		usecase.NewPaymentUseCase(payments, &fakeBookingRepo{}),
		testRecorder(auditRepo),
	)
	app := fiber.New()
	app.Put("/payments/:id",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.ScopeMiddleware(users, testResolver(companies, &fakeManagerRepo{})),
		handler.Correct,
	)

	amount := decimal.NewFromInt(180)
	resp := doJSON(t, app, http.MethodPut, "/payments/pay-1",
		bearerFor(t, "owner-1", entity.RoleOwner), dto.CorrectPaymentRequest{Amount: &amount})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.PaymentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, decimal.NewFromInt(180).Equal(out.Amount))

	require.Len(t, auditRepo.rows, 1)
	row := auditRepo.rows[0]
	assert.Equal(t, entity.AuditCorrect, row.Action)
	assert.Equal(t, "payment", row.EntityType)
	assert.Equal(t, "pay-1", row.EntityID)
	assert.Contains(t, string(row.BeforeState), "100", "el snapshot previo guarda el monto original")
	assert.Contains(t, string(row.AfterState), "180")
}
