package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/ilogush/cars-api/internal/domain/entity"
	"github.com/ilogush/cars-api/internal/domain/repository"
	"github.com/ilogush/cars-api/pkg/logger"
)

// Actor quién ejecuta la acción. IP y UserAgent los resuelve la capa HTTP
// desde los headers del request cuando no vienen explícitos.
type Actor struct {
	UserID    string
	Role      string
	CompanyID string // empresa efectiva (scope o admin-mode) al momento de la acción
	IP        string
	UserAgent string
}

// Entry qué se hizo y sobre qué. Before/After son snapshots opcionales que se
// serializan a JSON; si no serializan se registran vacíos.
type Entry struct {
	EntityType string
	EntityID   string
	Action     string
	Before     interface{}
	After      interface{}
}

// Recorder inserta filas de auditoría best-effort: una fila inmutable por
// acción, at-most-once, sin reintentos. Un fallo de escritura se loguea y se
// traga — la auditoría nunca aborta la operación de negocio que acompaña.
type Recorder struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder de auditoría.
func NewRecorder(repo repository.AuditLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record inserta la fila de auditoría. Nunca retorna error.
func (r *Recorder) Record(actor Actor, e Entry) {
	row := &entity.AuditLog{
		ID:          uuid.New().String(),
		UserID:      actor.UserID,
		Role:        actor.Role,
		CompanyID:   actor.CompanyID,
		EntityType:  e.EntityType,
		EntityID:    e.EntityID,
		Action:      e.Action,
		BeforeState: marshalState(e.Before),
		AfterState:  marshalState(e.After),
		IP:          actor.IP,
		UserAgent:   actor.UserAgent,
		CreatedAt:   time.Now(),
	}
	if err := r.repo.Create(row); err != nil {
		r.log.Warn().Err(err).
			Str("entity_type", e.EntityType).
			Str("entity_id", e.EntityID).
			Str("action", e.Action).
			Msg("fallo al escribir audit log (ignorado)")
	}
}

// List lista filas de auditoría (solo admin, vía handler).
func (r *Recorder) List(filter repository.AuditLogFilter, limit, offset int) ([]*entity.AuditLog, error) {
	return r.repo.List(filter, limit, offset)
}

// Clear borra todas las filas (acción explícita de admin).
func (r *Recorder) Clear() (int64, error) {
	return r.repo.Clear()
}

func marshalState(v interface{}) []byte {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
