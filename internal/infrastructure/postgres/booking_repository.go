package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ilogush/cars-api/internal/domain/entity"
	"github.com/ilogush/cars-api/internal/domain/repository"
)

var _ repository.BookingRepository = (*BookingRepo)(nil)

// BookingRepo implementación del puerto BookingRepository sobre PostgreSQL.
type BookingRepo struct {
	db db
}

// NewBookingRepository construye el adaptador de persistencia para reservas.
func NewBookingRepository(db db) *BookingRepo {
	return &BookingRepo{db: db}
}

const bookingColumns = "id, company_id, car_id, client_id, start_date, end_date, total_price, currency_id, status, notes, created_at, updated_at"

// Create persiste una nueva reserva.
func (r *BookingRepo) Create(booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, company_id, car_id, client_id, start_date, end_date, total_price, currency_id, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(context.Background(), query,
		booking.ID, booking.CompanyID, booking.CarID, booking.ClientID,
		booking.StartDate, booking.EndDate, booking.TotalPrice, booking.CurrencyID,
		booking.Status, booking.Notes, booking.CreatedAt, booking.UpdatedAt,
	)
	if err != nil {
		return translateConstraint(err, "insert booking")
	}
	return nil
}

// GetByID obtiene una reserva por ID.
func (r *BookingRepo) GetByID(id string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	var b entity.Booking
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.CompanyID, &b.CarID, &b.ClientID, &b.StartDate, &b.EndDate,
		&b.TotalPrice, &b.CurrencyID, &b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking by id: %w", err)
	}
	return &b, nil
}

// Update actualiza una reserva.
func (r *BookingRepo) Update(booking *entity.Booking) error {
	query := `
		UPDATE bookings SET end_date = $2, total_price = $3, status = $4, notes = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		booking.ID, booking.EndDate, booking.TotalPrice, booking.Status, booking.Notes, booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	return nil
}

// HasOverlap indica si el auto ya tiene una reserva pendiente o activa que se
// solape con [start, end].
func (r *BookingRepo) HasOverlap(carID string, start, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE car_id = $1 AND status IN ('pending', 'active')
			AND start_date <= $3 AND end_date >= $2
		)`
	var exists bool
	if err := r.db.QueryRow(context.Background(), query, carID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("check booking overlap: %w", err)
	}
	return exists, nil
}

// ListByCompany lista reservas de una empresa.
func (r *BookingRepo) ListByCompany(companyID string, params repository.ListParams) ([]*entity.Booking, error) {
	return r.list(`SELECT `+bookingColumns+` FROM bookings WHERE company_id = $1`, []any{companyID}, params)
}

// ListByClient lista reservas de un cliente.
func (r *BookingRepo) ListByClient(clientID string, params repository.ListParams) ([]*entity.Booking, error) {
	return r.list(`SELECT `+bookingColumns+` FROM bookings WHERE client_id = $1`, []any{clientID}, params)
}

func (r *BookingRepo) list(base string, args []any, params repository.ListParams) ([]*entity.Booking, error) {
	sortable := map[string]string{"createdAt": "created_at", "startDate": "start_date", "endDate": "end_date", "status": "status"}
	filterable := map[string]string{"status": "status", "carId": "car_id"}

	where, filterArgs := filterClauses(params.Filters, filterable, len(args)+1)
	query := base + where
	args = append(args, filterArgs...)
	query += orderBy(params, sortable, "created_at DESC")
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset)

	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Booking
	for rows.Next() {
		var b entity.Booking
		if err := rows.Scan(&b.ID, &b.CompanyID, &b.CarID, &b.ClientID, &b.StartDate, &b.EndDate, &b.TotalPrice, &b.CurrencyID, &b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Delete elimina una reserva por ID. FK violada (pagos) -> domain.ErrInUse.
func (r *BookingRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return translateConstraint(err, "delete booking")
	}
	return nil
}
