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

var _ repository.ManagerProfileRepository = (*ManagerProfileRepo)(nil)

// ManagerProfileRepo implementación del join manager -> empresa.
type ManagerProfileRepo struct {
	db db
}

// NewManagerProfileRepository construye el adaptador de perfiles de manager.
func NewManagerProfileRepository(db db) *ManagerProfileRepo {
	return &ManagerProfileRepo{db: db}
}

// Create persiste un perfil de manager.
func (r *ManagerProfileRepo) Create(profile *entity.ManagerProfile) error {
	query := `INSERT INTO manager_profiles (id, user_id, company_id, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(context.Background(), query,
		profile.ID, profile.UserID, profile.CompanyID, profile.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate // un manager pertenece a una sola empresa
		}
		return translateConstraint(err, "insert manager profile")
	}
	return nil
}

// GetByUserID obtiene el perfil de un manager. Es la consulta del scope
// resolver para el rol manager.
func (r *ManagerProfileRepo) GetByUserID(userID string) (*entity.ManagerProfile, error) {
	var p entity.ManagerProfile
	err := r.db.QueryRow(context.Background(),
		`SELECT id, user_id, company_id, created_at FROM manager_profiles WHERE user_id = $1`, userID).
		Scan(&p.ID, &p.UserID, &p.CompanyID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manager profile: %w", err)
	}
	return &p, nil
}

// DeleteByUserID elimina el perfil de un manager.
func (r *ManagerProfileRepo) DeleteByUserID(userID string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM manager_profiles WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete manager profile: %w", err)
	}
	return nil
}
