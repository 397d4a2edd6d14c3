package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.StockMoveRepository = (*StockMoveRepo)(nil)

// StockMoveRepo implementación del log de movimientos sobre PostgreSQL
// (usable con pool o tx). El log es append-only: solo INSERT y SELECT,
// nunca UPDATE ni DELETE.
type StockMoveRepo struct {
	q Querier
}

// NewStockMoveRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMoveRepository(q Querier) *StockMoveRepo {
	return &StockMoveRepo{q: q}
}

const moveColumns = `id, product_id, quantity, type, from_location_id, to_location_id, reference, date, created_by, created_at`

// Create persiste un movimiento de stock.
func (r *StockMoveRepo) Create(move *entity.StockMove) error {
	if move.ID == "" {
		move.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_moves (` + moveColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		move.ID, move.ProductID, move.Quantity, move.Type,
		nullable(move.FromLocationID), nullable(move.ToLocationID),
		move.Reference, move.Date, nullable(move.CreatedBy), move.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock move: %w", err)
	}
	return nil
}

// List lista movimientos según filtro, ordenados por fecha descendente.
func (r *StockMoveRepo) List(filter repository.MoveFilter) ([]*entity.StockMove, error) {
	query := `SELECT ` + moveColumns + ` FROM stock_moves WHERE 1=1`
	var args []any
	pos := 1
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.LocationID != "" {
		query += fmt.Sprintf(" AND (from_location_id = $%d OR to_location_id = $%d)", pos, pos)
		args = append(args, filter.LocationID)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock moves: %w", err)
	}
	defer rows.Close()
	return scanMoves(rows)
}

// ListRecent últimos movimientos registrados.
func (r *StockMoveRepo) ListRecent(limit int) ([]*entity.StockMove, error) {
	return r.List(repository.MoveFilter{Limit: limit})
}

// AggregateByMonth agrupa los deltas del año por mes: la suma de los deltas
// positivos como entradas y el valor absoluto de los negativos como salidas.
// Devuelve solo los meses con movimientos; el caller completa los ceros.
func (r *StockMoveRepo) AggregateByMonth(year int) ([]repository.MonthlyFlow, error) {
	query := `
		SELECT EXTRACT(MONTH FROM date)::int AS month,
		       COALESCE(SUM(CASE WHEN quantity > 0 THEN quantity ELSE 0 END), 0) AS inbound,
		       COALESCE(SUM(CASE WHEN quantity < 0 THEN -quantity ELSE 0 END), 0) AS outbound
		FROM stock_moves
		WHERE date >= make_date($1, 1, 1) AND date < make_date($1 + 1, 1, 1)
		GROUP BY 1 ORDER BY 1`
	rows, err := r.q.Query(context.Background(), query, year)
	if err != nil {
		return nil, fmt.Errorf("aggregate moves by month: %w", err)
	}
	defer rows.Close()
	var flows []repository.MonthlyFlow
	for rows.Next() {
		var f repository.MonthlyFlow
		if err := rows.Scan(&f.Month, &f.Inbound, &f.Outbound); err != nil {
			return nil, fmt.Errorf("scan monthly flow: %w", err)
		}
		flows = append(flows, f)
	}
	return flows, rows.Err()
}

func scanMoves(rows pgx.Rows) ([]*entity.StockMove, error) {
	var list []*entity.StockMove
	for rows.Next() {
		var m entity.StockMove
		var fromLoc, toLoc, createdBy *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Quantity, &m.Type,
			&fromLoc, &toLoc, &m.Reference, &m.Date, &createdBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock move: %w", err)
		}
		m.FromLocationID = deref(fromLoc)
		m.ToLocationID = deref(toLoc)
		m.CreatedBy = deref(createdBy)
		list = append(list, &m)
	}
	return list, rows.Err()
}
