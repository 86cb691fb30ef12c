package entity

import "time"

// Company empresa de renta de autos (tenant). Pertenece a un User con rol owner
// y tiene una ubicación principal.
type Company struct {
	ID         string
	OwnerID    string
	LocationID string
	Name       string
	NIT        string // identificación tributaria, única
	Address    string
	Phone      string
	Email      string
	Status     string // active, inactive
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
