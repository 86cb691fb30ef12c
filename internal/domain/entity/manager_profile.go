package entity

import "time"

// ManagerProfile vincula un usuario con rol manager a la empresa que gestiona.
// Un manager pertenece a exactamente una empresa.
type ManagerProfile struct {
	ID        string
	UserID    string
	CompanyID string
	CreatedAt time.Time
}
