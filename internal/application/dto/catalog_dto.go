package dto

import "github.com/shopspring/decimal"

// ProductRequest body para crear/actualizar un producto.
type ProductRequest struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	UnitMeasure string          `json:"unit_measure"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}

// WarehouseRequest body para crear/actualizar una bodega.
type WarehouseRequest struct {
	Name      string `json:"name"`
	ShortCode string `json:"short_code"`
	Address   string `json:"address"`
}

// LocationRequest body para crear/actualizar una ubicación.
type LocationRequest struct {
	WarehouseID string `json:"warehouse_id"`
	Name        string `json:"name"`
	ShortCode   string `json:"short_code"`
}
