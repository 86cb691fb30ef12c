package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ilogush/cars-api/internal/domain/entity"
	"github.com/ilogush/cars-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL.
type PaymentRepo struct {
	db db
}

// NewPaymentRepository construye el adaptador de persistencia para pagos.
func NewPaymentRepository(db db) *PaymentRepo {
	return &PaymentRepo{db: db}
}

const paymentColumns = "id, booking_id, company_id, amount, currency_id, method, status, paid_at, created_at, updated_at"

// Create persiste un nuevo pago.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, booking_id, company_id, amount, currency_id, method, status, paid_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(context.Background(), query,
		payment.ID, payment.BookingID, payment.CompanyID, payment.Amount, payment.CurrencyID,
		payment.Method, payment.Status, payment.PaidAt, payment.CreatedAt, payment.UpdatedAt,
	)
	if err != nil {
		return translateConstraint(err, "insert payment")
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	var p entity.Payment
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.BookingID, &p.CompanyID, &p.Amount, &p.CurrencyID, &p.Method, &p.Status,
		&p.PaidAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment by id: %w", err)
	}
	return &p, nil
}

// Update actualiza estado/fecha de pago.
func (r *PaymentRepo) Update(payment *entity.Payment) error {
	query := `UPDATE payments SET status = $2, paid_at = $3, updated_at = $4 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		payment.ID, payment.Status, payment.PaidAt, payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}

// ListByBooking lista los pagos de una reserva.
func (r *PaymentRepo) ListByBooking(bookingID string) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.Query(context.Background(), query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list payments by booking: %w", err)
	}
	defer rows.Close()
	return scanPayments(rows)
}

// ListByCompany lista los pagos de una empresa con paginación y filtros.
func (r *PaymentRepo) ListByCompany(companyID string, params repository.ListParams) ([]*entity.Payment, error) {
	sortable := map[string]string{"createdAt": "created_at", "amount": "amount", "paidAt": "paid_at"}
	filterable := map[string]string{"status": "status", "method": "method", "bookingId": "booking_id"}

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE company_id = $1`
	args := []any{companyID}
	where, filterArgs := filterClauses(params.Filters, filterable, len(args)+1)
	query += where
	args = append(args, filterArgs...)
	query += orderBy(params, sortable, "created_at DESC")
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset)

	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	return scanPayments(rows)
}

func scanPayments(rows pgx.Rows) ([]*entity.Payment, error) {
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.BookingID, &p.CompanyID, &p.Amount, &p.CurrencyID, &p.Method, &p.Status, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
