package entity

import "time"

// Acciones registradas en el audit log.
const (
	AuditCreate      = "create"
	AuditUpdate      = "update"
	AuditDelete      = "delete"
	AuditLogin       = "login"
	AuditLoginFailed = "login_failed"
	AuditLogout      = "logout"
	AuditView        = "view"
	AuditCorrect     = "correct"
)

// AuditLog registro inmutable de quién-hizo-qué-sobre-qué. Append-only:
// nunca se actualiza ni se borra salvo el clear masivo disparado por un admin.
type AuditLog struct {
	ID          string
	UserID      string
	Role        string
	CompanyID   string // empresa efectiva en el momento de la acción (puede estar vacía)
	EntityType  string // company, car, booking, payment, user, ...
	EntityID    string
	Action      string // create, update, delete, login, login_failed, logout, view, correct
	BeforeState []byte // snapshot JSON previo (opcional)
	AfterState  []byte // snapshot JSON posterior (opcional)
	IP          string
	UserAgent   string
	CreatedAt   time.Time
}
