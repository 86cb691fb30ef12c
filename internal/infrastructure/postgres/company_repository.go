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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db db
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db db) *CompanyRepo {
	return &CompanyRepo{db: db}
}

const companyColumns = "id, owner_id, location_id, name, nit, address, phone, email, status, created_at, updated_at"

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, owner_id, location_id, name, nit, address, phone, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(context.Background(), query,
		company.ID, company.OwnerID, nullable(company.LocationID), company.Name, company.NIT,
		company.Address, company.Phone, company.Email, company.Status,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.scanOne(`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id, "get company by id")
}

// GetByNIT obtiene una empresa por NIT.
func (r *CompanyRepo) GetByNIT(nit string) (*entity.Company, error) {
	return r.scanOne(`SELECT `+companyColumns+` FROM companies WHERE nit = $1`, nit, "get company by nit")
}

// GetByOwner obtiene la empresa cuyo dueño es el usuario dado.
// Es la consulta del scope resolver para el rol owner.
func (r *CompanyRepo) GetByOwner(ownerID string) (*entity.Company, error) {
	return r.scanOne(`SELECT `+companyColumns+` FROM companies WHERE owner_id = $1 LIMIT 1`, ownerID, "get company by owner")
}

func (r *CompanyRepo) scanOne(query, arg, op string) (*entity.Company, error) {
	var c entity.Company
	var locationID *string
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.OwnerID, &locationID, &c.Name, &c.NIT, &c.Address, &c.Phone, &c.Email, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
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

// Update actualiza una empresa.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET location_id = $2, name = $3, address = $4, phone = $5, email = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		company.ID, nullable(company.LocationID), company.Name, company.Address, company.Phone, company.Email,
		company.Status, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List lista empresas con paginación, orden y filtros (status).
func (r *CompanyRepo) List(params repository.ListParams) ([]*entity.Company, error) {
	sortable := map[string]string{"createdAt": "created_at", "name": "name", "nit": "nit"}
	filterable := map[string]string{"status": "status"}

	query := `SELECT ` + companyColumns + ` FROM companies WHERE 1=1`
	where, args := filterClauses(params.Filters, filterable, 1)
	query += where
	query += orderBy(params, sortable, "created_at DESC")
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset)

	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		var locationID *string
		if err := rows.Scan(&c.ID, &c.OwnerID, &locationID, &c.Name, &c.NIT, &c.Address, &c.Phone, &c.Email, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		if locationID != nil {
			c.LocationID = *locationID
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una empresa por ID. FK violada -> domain.ErrInUse.
func (r *CompanyRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return translateConstraint(err, "delete company")
	}
	return nil
}

// nullable convierte "" a NULL para columnas opcionales con FK.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
