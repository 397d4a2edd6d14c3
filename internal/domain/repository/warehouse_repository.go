package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	List(limit, offset int) ([]*entity.Warehouse, error)
	Delete(id string) error
}

// LocationRepository define el puerto de persistencia para ubicaciones de stock.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	Update(location *entity.Location) error
	List(limit, offset int) ([]*entity.Location, error)
	ListByWarehouse(warehouseID string) ([]*entity.Location, error)
	// FirstByWarehouse devuelve la ubicación por defecto de la bodega
	// (la más antigua por created_at) o nil si la bodega no tiene ubicaciones.
	FirstByWarehouse(warehouseID string) (*entity.Location, error)
	Delete(id string) error
}
