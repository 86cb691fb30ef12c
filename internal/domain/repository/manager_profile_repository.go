package repository

import "github.com/ilogush/cars-api/internal/domain/entity"

// ManagerProfileRepository puerto del join manager -> empresa.
type ManagerProfileRepository interface {
	Create(profile *entity.ManagerProfile) error
	GetByUserID(userID string) (*entity.ManagerProfile, error)
	DeleteByUserID(userID string) error
}
