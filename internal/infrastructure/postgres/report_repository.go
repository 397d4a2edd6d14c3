package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas read-only del dashboard sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// TotalStockValue Σ cantidad × costo unitario sobre todos los niveles de stock.
func (r *ReportRepo) TotalStockValue(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(sl.quantity * p.unit_cost), 0)
		FROM stock_levels sl
		JOIN products p ON p.id = sl.product_id`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total stock value: %w", err)
	}
	return total, nil
}

// LowStockCount niveles con cantidad por debajo del umbral.
func (r *ReportRepo) LowStockCount(ctx context.Context, threshold decimal.Decimal) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM stock_levels WHERE quantity < $1`, threshold).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("low stock count: %w", err)
	}
	return count, nil
}

// LowStockItems niveles bajo umbral con datos de producto y ubicación.
func (r *ReportRepo) LowStockItems(ctx context.Context, threshold decimal.Decimal, limit int) ([]repository.LowStockItem, error) {
	query := `
		SELECT sl.product_id, p.sku, p.name, sl.location_id, l.name, sl.quantity, p.unit_cost
		FROM stock_levels sl
		JOIN products p ON p.id = sl.product_id
		JOIN locations l ON l.id = sl.location_id
		WHERE sl.quantity < $1
		ORDER BY sl.quantity ASC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("low stock items: %w", err)
	}
	defer rows.Close()
	var items []repository.LowStockItem
	for rows.Next() {
		var item repository.LowStockItem
		if err := rows.Scan(&item.ProductID, &item.SKU, &item.ProductName,
			&item.LocationID, &item.Location, &item.Quantity, &item.UnitCost); err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// CountProducts total de productos del catálogo.
func (r *ReportRepo) CountProducts(ctx context.Context) (int, error) {
	var count int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// CountPendingDocuments documentos de un tipo fuera de estado terminal.
func (r *ReportRepo) CountPendingDocuments(ctx context.Context, kind string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM documents
		WHERE kind = $1 AND status NOT IN ($2, $3)`,
		kind, entity.StatusDone, entity.StatusCancelled).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pending documents: %w", err)
	}
	return count, nil
}

// CountLateDocuments documentos no terminales programados antes de ref.
func (r *ReportRepo) CountLateDocuments(ctx context.Context, kind string, ref time.Time) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM documents
		WHERE kind = $1 AND scheduled_date < $2 AND status NOT IN ($3, $4)`,
		kind, ref, entity.StatusDone, entity.StatusCancelled).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count late documents: %w", err)
	}
	return count, nil
}

// CountDocumentsByStatus documentos de un tipo en un estado dado.
func (r *ReportRepo) CountDocumentsByStatus(ctx context.Context, kind, status string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM documents WHERE kind = $1 AND status = $2`, kind, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count documents by status: %w", err)
	}
	return count, nil
}

// RecentMoves últimos movimientos con datos de presentación (join de lectura;
// los LEFT JOIN toleran ubicaciones ausentes según el tipo de movimiento).
func (r *ReportRepo) RecentMoves(ctx context.Context, limit int) ([]repository.MoveSummary, error) {
	query := `
		SELECT m.id, p.name, p.sku, m.type, m.quantity,
		       COALESCE(lf.name, ''), COALESCE(lt.name, ''), m.reference, m.date
		FROM stock_moves m
		JOIN products p ON p.id = m.product_id
		LEFT JOIN locations lf ON lf.id = m.from_location_id
		LEFT JOIN locations lt ON lt.id = m.to_location_id
		ORDER BY m.date DESC, m.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent moves: %w", err)
	}
	defer rows.Close()
	var moves []repository.MoveSummary
	for rows.Next() {
		var m repository.MoveSummary
		if err := rows.Scan(&m.ID, &m.ProductName, &m.SKU, &m.Type, &m.Quantity,
			&m.FromLocation, &m.ToLocation, &m.Reference, &m.Date); err != nil {
			return nil, fmt.Errorf("scan recent move: %w", err)
		}
		moves = append(moves, m)
	}
	return moves, rows.Err()
}
