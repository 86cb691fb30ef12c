package entity

import "time"

// Datos de referencia: tablas de lookup de lectura frecuente expuestas
// con caché corto (marcas, ubicaciones, monedas).

// Brand marca de auto (catálogo global).
type Brand struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Location ciudad/sede donde opera una empresa.
type Location struct {
	ID        string
	Name      string
	Country   string
	Timezone  string
	CreatedAt time.Time
}

// Currency moneda soportada (catálogo global).
type Currency struct {
	ID        string
	Code      string // ISO 4217: COP, USD, ...
	Name      string
	Symbol    string
	CreatedAt time.Time
}
