package entity

import "time"

// Roles válidos para User (conjunto cerrado).
const (
	RoleAdmin   = "admin"   // plataforma, ve todas las empresas
	RoleOwner   = "owner"   // dueño de exactamente una empresa
	RoleManager = "manager" // gestor asignado a una empresa vía ManagerProfile
	RoleClient  = "client"  // cliente final, sin empresa
)

// ValidRole indica si el rol pertenece al conjunto cerrado.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleOwner, RoleManager, RoleClient:
		return true
	}
	return false
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Phone        string
	Role         string // admin, owner, manager, client
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
