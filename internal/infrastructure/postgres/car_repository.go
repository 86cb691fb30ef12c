package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ilogush/cars-api/internal/domain"
	"github.com/ilogush/cars-api/internal/domain/entity"
	"github.com/ilogush/cars-api/internal/domain/repository"
)

var _ repository.CarRepository = (*CarRepo)(nil)

// CarRepo implementación del puerto CarRepository sobre PostgreSQL.
type CarRepo struct {
	db db
}

// NewCarRepository construye el adaptador de persistencia para la flota.
func NewCarRepository(db db) *CarRepo {
	return &CarRepo{db: db}
}

const carColumns = "id, company_id, brand_id, location_id, plate, model, year, color, daily_rate, currency_id, status, created_at, updated_at"

// Create persiste un nuevo auto.
func (r *CarRepo) Create(car *entity.Car) error {
	query := `
		INSERT INTO cars (id, company_id, brand_id, location_id, plate, model, year, color, daily_rate, currency_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(context.Background(), query,
		car.ID, car.CompanyID, car.BrandID, nullable(car.LocationID), car.Plate, car.Model, car.Year,
		car.Color, car.DailyRate, car.CurrencyID, car.Status, car.CreatedAt, car.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return translateConstraint(err, "insert car")
	}
	return nil
}

// GetByID obtiene un auto por ID.
func (r *CarRepo) GetByID(id string) (*entity.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`
	row := r.db.QueryRow(context.Background(), query, id)
	return scanCar(row, "get car by id")
}

// GetByPlate obtiene un auto por placa dentro de una empresa.
func (r *CarRepo) GetByPlate(companyID, plate string) (*entity.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE company_id = $1 AND plate = $2`
	row := r.db.QueryRow(context.Background(), query, companyID, plate)
	return scanCar(row, "get car by plate")
}

func scanCar(row pgx.Row, op string) (*entity.Car, error) {
	var c entity.Car
	var locationID *string
	err := row.Scan(
		&c.ID, &c.CompanyID, &c.BrandID, &locationID, &c.Plate, &c.Model, &c.Year,
		&c.Color, &c.DailyRate, &c.CurrencyID, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if locationID != nil {
		c.LocationID = *locationID
	}
	return &c, nil
}

// Update actualiza un auto.
func (r *CarRepo) Update(car *entity.Car) error {
	query := `
		UPDATE cars SET location_id = $2, model = $3, year = $4, color = $5, daily_rate = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		car.ID, nullable(car.LocationID), car.Model, car.Year, car.Color, car.DailyRate, car.Status, car.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update car: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estado del auto (usado dentro de la tx de reservas).
func (r *CarRepo) UpdateStatus(id, status string) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE cars SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update car status: %w", err)
	}
	return nil
}

// ListByCompany lista la flota de una empresa.
func (r *CarRepo) ListByCompany(companyID string, params repository.ListParams) ([]*entity.Car, error) {
	return r.list(`SELECT `+carColumns+` FROM cars WHERE company_id = $1`, []any{companyID}, params)
}

// List lista toda la flota de la plataforma (admin / catálogo de clientes).
func (r *CarRepo) List(params repository.ListParams) ([]*entity.Car, error) {
	return r.list(`SELECT `+carColumns+` FROM cars WHERE 1=1`, nil, params)
}

func (r *CarRepo) list(base string, args []any, params repository.ListParams) ([]*entity.Car, error) {
	sortable := map[string]string{"createdAt": "created_at", "plate": "plate", "model": "model", "year": "year", "dailyRate": "daily_rate"}
	filterable := map[string]string{"status": "status", "brandId": "brand_id", "locationId": "location_id", "plate": "plate"}

	where, filterArgs := filterClauses(params.Filters, filterable, len(args)+1)
	query := base + where
	args = append(args, filterArgs...)
	query += orderBy(params, sortable, "created_at DESC")
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset)

	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()
	var list []*entity.Car
	for rows.Next() {
		var c entity.Car
		var locationID *string
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.BrandID, &locationID, &c.Plate, &c.Model, &c.Year, &c.Color, &c.DailyRate, &c.CurrencyID, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		if locationID != nil {
			c.LocationID = *locationID
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un auto por ID. FK violada (reservas) -> domain.ErrInUse.
func (r *CarRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return translateConstraint(err, "delete car")
	}
	return nil
}
