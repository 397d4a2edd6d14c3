package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo implementación de StockLevelRepository sobre PostgreSQL
// (usable con pool o tx).
type StockLevelRepo struct {
	q Querier
}

// NewStockLevelRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

// Get obtiene el stock actual de un producto en una ubicación. Si la fila no
// existe devuelve cantidad cero: el nivel se crea perezosamente con el primer
// movimiento.
func (r *StockLevelRepo) Get(productID, locationID string) (*entity.StockLevel, error) {
	return r.get(productID, locationID, false)
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE) para
// serializar las mutaciones concurrentes sobre la misma clave. Una fila que
// no existe no se puede bloquear: el FOR UPDATE no retiene nada y dos primeros
// movimientos concurrentes leerían ambos cero y uno pisaría al otro. Por eso
// la fila se materializa en cero antes de bloquearla; el INSERT espera al
// commit de cualquier transacción que esté insertando la misma clave.
func (r *StockLevelRepo) GetForUpdate(productID, locationID string) (*entity.StockLevel, error) {
	query := `
		INSERT INTO stock_levels (product_id, location_id, quantity, updated_at)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (product_id, location_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), query, productID, locationID); err != nil {
		return nil, fmt.Errorf("materialize stock level: %w", err)
	}
	return r.get(productID, locationID, true)
}

func (r *StockLevelRepo) get(productID, locationID string, forUpdate bool) (*entity.StockLevel, error) {
	query := `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock_levels WHERE product_id = $1 AND location_id = $2`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var level entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, productID, locationID).Scan(
		&level.ProductID, &level.LocationID, &level.Quantity, &level.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockLevel{ProductID: productID, LocationID: locationID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &level, nil
}

// Upsert inserta o actualiza la cantidad (por producto y ubicación).
func (r *StockLevelRepo) Upsert(level *entity.StockLevel) error {
	query := `
		INSERT INTO stock_levels (product_id, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, level.ProductID, level.LocationID, level.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock level: %w", err)
	}
	return nil
}

// List lista niveles de stock con paginación.
func (r *StockLevelRepo) List(limit, offset int) ([]*entity.StockLevel, error) {
	query := `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock_levels ORDER BY updated_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	defer rows.Close()
	return scanLevels(rows)
}

// LowStock niveles con cantidad por debajo del umbral.
func (r *StockLevelRepo) LowStock(threshold decimal.Decimal, limit int) ([]*entity.StockLevel, error) {
	query := `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock_levels WHERE quantity < $1 ORDER BY quantity ASC LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return scanLevels(rows)
}

func scanLevels(rows pgx.Rows) ([]*entity.StockLevel, error) {
	var list []*entity.StockLevel
	for rows.Next() {
		var level entity.StockLevel
		if err := rows.Scan(&level.ProductID, &level.LocationID, &level.Quantity, &level.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		list = append(list, &level)
	}
	return list, rows.Err()
}
