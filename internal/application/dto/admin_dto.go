package dto

import "time"

// EnterCompanyRequest entrada a admin-mode sobre una empresa.
type EnterCompanyRequest struct {
	CompanyID string `json:"companyId"`
}

// AdminModeResponse resultado de entrar/salir de admin-mode. RedirectURL lleva
// los query params (admin_mode + company_id) que el front debe propagar; el
// servidor no persiste nada.
type AdminModeResponse struct {
	CompanyID   string `json:"companyId,omitempty"`
	RedirectURL string `json:"redirectUrl"`
}

// AuditLogResponse fila de auditoría.
type AuditLogResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Role       string    `json:"role"`
	CompanyID  string    `json:"companyId,omitempty"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Action     string    `json:"action"`
	IP         string    `json:"ip,omitempty"`
	UserAgent  string    `json:"userAgent,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AuditLogListResponse listado paginado de auditoría.
type AuditLogListResponse struct {
	Items []AuditLogResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ClearAuditLogsResponse resultado del clear masivo.
type ClearAuditLogsResponse struct {
	Deleted int64 `json:"deleted"`
}
