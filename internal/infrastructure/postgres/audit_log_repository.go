package postgres

import (
	"context"
	"fmt"

	"github.com/ilogush/cars-api/internal/domain/entity"
	"github.com/ilogush/cars-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implementación append-only del audit log.
type AuditLogRepo struct {
	db db
}

// NewAuditLogRepository construye el adaptador del audit log.
func NewAuditLogRepository(db db) *AuditLogRepo {
	return &AuditLogRepo{db: db}
}

const auditLogColumns = "id, user_id, role, company_id, entity_type, entity_id, action, before_state, after_state, ip, user_agent, created_at"

// Create inserta un registro de auditoría.
func (r *AuditLogRepo) Create(log *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, user_id, role, company_id, entity_type, entity_id, action, before_state, after_state, ip, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(context.Background(), query,
		log.ID, log.UserID, log.Role, nullable(log.CompanyID), log.EntityType, log.EntityID,
		log.Action, log.BeforeState, log.AfterState, log.IP, log.UserAgent, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// List lista registros filtrados, más recientes primero.
func (r *AuditLogRepo) List(filter repository.AuditLogFilter, limit, offset int) ([]*entity.AuditLog, error) {
	query := `SELECT ` + auditLogColumns + ` FROM audit_logs WHERE 1=1`
	var args []any
	next := 1
	add := func(clause, value string) {
		if value == "" {
			return
		}
		query += fmt.Sprintf(" AND %s = $%d", clause, next)
		args = append(args, value)
		next++
	}
	add("user_id", filter.UserID)
	add("company_id", filter.CompanyID)
	add("entity_type", filter.EntityType)
	add("action", filter.Action)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", next, next+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		var companyID *string
		if err := rows.Scan(&l.ID, &l.UserID, &l.Role, &companyID, &l.EntityType, &l.EntityID, &l.Action, &l.BeforeState, &l.AfterState, &l.IP, &l.UserAgent, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		if companyID != nil {
			l.CompanyID = *companyID
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Clear vacía la tabla completa y devuelve cuántos registros se borraron.
func (r *AuditLogRepo) Clear() (int64, error) {
	tag, err := r.db.Exec(context.Background(), `DELETE FROM audit_logs`)
	if err != nil {
		return 0, fmt.Errorf("clear audit logs: %w", err)
	}
	return tag.RowsAffected(), nil
}
