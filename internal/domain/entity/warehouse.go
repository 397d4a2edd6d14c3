package entity

import "time"

// Warehouse representa una bodega física donde se almacena inventario.
type Warehouse struct {
	ID        string
	Name      string
	ShortCode string // código corto único, ej: "WH"
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location representa una ubicación de stock dentro de una bodega.
// Una bodega puede tener varias ubicaciones; la "ubicación por defecto"
// de una bodega es la más antigua (menor created_at).
type Location struct {
	ID          string
	WarehouseID string
	Name        string
	ShortCode   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
