package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación de DocumentRepository sobre PostgreSQL
// (usable con pool o tx). Las líneas viven en document_lines y se cargan
// siempre junto con el documento.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

const documentColumns = `id, kind, reference, warehouse_id, contact, scheduled_date, status, source_doc, address, responsible, created_at, updated_at`

// Create persiste el documento y sus líneas.
func (r *DocumentRepo) Create(doc *entity.InventoryDocument) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.Kind, doc.Reference, doc.WarehouseID, doc.Contact,
		doc.ScheduledDate, doc.Status, nullable(doc.SourceDoc), nullable(doc.Address),
		nullable(doc.Responsible), doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return r.insertLines(doc.ID, doc.Lines)
}

// GetByID obtiene un documento con sus líneas, o nil si no existe.
func (r *DocumentRepo) GetByID(id string) (*entity.InventoryDocument, error) {
	return r.get(id, false)
}

// GetForUpdate igual que GetByID pero bloquea la fila del documento
// (SELECT FOR UPDATE): el chequeo de estado de la validación se vuelve un
// compare-and-set frente a validaciones concurrentes.
func (r *DocumentRepo) GetForUpdate(id string) (*entity.InventoryDocument, error) {
	return r.get(id, true)
}

func (r *DocumentRepo) get(id string, forUpdate bool) (*entity.InventoryDocument, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	row := r.q.QueryRow(context.Background(), query, id)
	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	if doc.Lines, err = r.lines(doc.ID); err != nil {
		return nil, err
	}
	return doc, nil
}

// Update actualiza los campos editables y reemplaza las líneas.
func (r *DocumentRepo) Update(doc *entity.InventoryDocument) error {
	query := `
		UPDATE documents
		SET contact = $2, scheduled_date = $3, source_doc = $4, address = $5,
		    responsible = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.Contact, doc.ScheduledDate, nullable(doc.SourceDoc),
		nullable(doc.Address), nullable(doc.Responsible), doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM document_lines WHERE document_id = $1`, doc.ID); err != nil {
		return fmt.Errorf("delete document lines: %w", err)
	}
	return r.insertLines(doc.ID, doc.Lines)
}

// UpdateStatus cambia solo el estado del documento. El UPDATE es condicional:
// si el documento ya está en Done o Cancelled no se toca y devuelve
// ErrAlreadyProcessed, aunque otro proceso lo haya cerrado entre la lectura
// del caller y esta escritura. Sin la condición, un Cancel tardío podría
// pisar el Done de una validación que ya aplicó sus movimientos.
func (r *DocumentRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(), `
		UPDATE documents SET status = $2, updated_at = now()
		WHERE id = $1 AND status NOT IN ($3, $4)`,
		id, status, entity.StatusDone, entity.StatusCancelled)
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyProcessed
	}
	return nil
}

// List lista documentos de un tipo, más recientes primero, con sus líneas.
func (r *DocumentRepo) List(kind string, limit, offset int) ([]*entity.InventoryDocument, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE kind = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryDocument
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, doc := range list {
		if doc.Lines, err = r.lines(doc.ID); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *DocumentRepo) insertLines(docID string, lines []entity.DocumentLine) error {
	for i, line := range lines {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO document_lines (document_id, line_no, product_id, quantity)
			VALUES ($1, $2, $3, $4)`, docID, i+1, line.ProductID, line.Quantity)
		if err != nil {
			return fmt.Errorf("insert document line: %w", err)
		}
	}
	return nil
}

func (r *DocumentRepo) lines(docID string) ([]entity.DocumentLine, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT product_id, quantity FROM document_lines
		WHERE document_id = $1 ORDER BY line_no`, docID)
	if err != nil {
		return nil, fmt.Errorf("list document lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.DocumentLine
	for rows.Next() {
		var line entity.DocumentLine
		if err := rows.Scan(&line.ProductID, &line.Quantity); err != nil {
			return nil, fmt.Errorf("scan document line: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func scanDocument(row pgx.Row) (*entity.InventoryDocument, error) {
	var doc entity.InventoryDocument
	var sourceDoc, address, responsible *string
	err := row.Scan(&doc.ID, &doc.Kind, &doc.Reference, &doc.WarehouseID, &doc.Contact,
		&doc.ScheduledDate, &doc.Status, &sourceDoc, &address, &responsible,
		&doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	doc.SourceDoc = deref(sourceDoc)
	doc.Address = deref(address)
	doc.Responsible = deref(responsible)
	return &doc, nil
}
