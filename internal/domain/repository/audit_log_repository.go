package repository

import "github.com/ilogush/cars-api/internal/domain/entity"

// AuditLogFilter filtros del listado de auditoría.
type AuditLogFilter struct {
	UserID     string
	CompanyID  string
	EntityType string
	Action     string
}

// AuditLogRepository puerto append-only del audit log. No hay Update ni
// Delete individual; Clear es el borrado masivo disparado por un admin.
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	List(filter AuditLogFilter, limit, offset int) ([]*entity.AuditLog, error)
	Clear() (int64, error)
}
