package document_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/document"
	"github.com/jhoicas/stockmaster-api/internal/application/ledger"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El txRunner serializa con mutex y revierte documentos,
// stock y movimientos con snapshot si fn falla, imitando el ROLLBACK de la
// transacción real.
// ──────────────────────────────────────────────────────────────────────────────

type memWorld struct {
	mu     sync.Mutex
	docs   map[string]entity.InventoryDocument
	levels map[string]entity.StockLevel // productID|locationID
	moves  []entity.StockMove
	seqs   map[string]int64

	products   map[string]*entity.Product
	warehouses map[string]*entity.Warehouse
	locations  map[string]*entity.Location
}

func key(productID, locationID string) string { return productID + "|" + locationID }

// --- DocumentRepository ---

type memDocRepo struct{ w *memWorld }

func (r *memDocRepo) Create(doc *entity.InventoryDocument) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	for _, d := range r.w.docs {
		if d.Reference == doc.Reference {
			return domain.ErrDuplicate
		}
	}
	r.w.docs[doc.ID] = *doc
	return nil
}

func (r *memDocRepo) GetByID(id string) (*entity.InventoryDocument, error) {
	if doc, ok := r.w.docs[id]; ok {
		copied := doc
		return &copied, nil
	}
	return nil, nil
}

func (r *memDocRepo) GetForUpdate(id string) (*entity.InventoryDocument, error) {
	return r.GetByID(id)
}

func (r *memDocRepo) Update(doc *entity.InventoryDocument) error {
	r.w.docs[doc.ID] = *doc
	return nil
}

func (r *memDocRepo) UpdateStatus(id, status string) error {
	doc, ok := r.w.docs[id]
	if !ok {
		return domain.ErrNotFound
	}
	// Escritura condicional como en el adaptador real: un documento terminal
	// no se toca, aunque el caller lo haya leído como no terminal.
	if entity.IsTerminal(doc.Status) {
		return domain.ErrAlreadyProcessed
	}
	doc.Status = status
	r.w.docs[id] = doc
	return nil
}

func (r *memDocRepo) List(kind string, limit, offset int) ([]*entity.InventoryDocument, error) {
	var out []*entity.InventoryDocument
	for _, doc := range r.w.docs {
		if doc.Kind == kind {
			copied := doc
			out = append(out, &copied)
		}
	}
	return out, nil
}

// --- SequenceRepository ---

type memSeqRepo struct{ w *memWorld }

func (r *memSeqRepo) Next(kind string) (int64, error) {
	r.w.seqs[kind]++
	return r.w.seqs[kind], nil
}

// --- Stock / Moves ---

type memStockRepo struct{ w *memWorld }

func (r *memStockRepo) Get(productID, locationID string) (*entity.StockLevel, error) {
	return r.GetForUpdate(productID, locationID)
}
func (r *memStockRepo) GetForUpdate(productID, locationID string) (*entity.StockLevel, error) {
	if level, ok := r.w.levels[key(productID, locationID)]; ok {
		copied := level
		return &copied, nil
	}
	return &entity.StockLevel{ProductID: productID, LocationID: locationID, Quantity: decimal.Zero}, nil
}
func (r *memStockRepo) Upsert(level *entity.StockLevel) error {
	r.w.levels[key(level.ProductID, level.LocationID)] = *level
	return nil
}
func (r *memStockRepo) List(_, _ int) ([]*entity.StockLevel, error) { return nil, nil }
func (r *memStockRepo) LowStock(_ decimal.Decimal, _ int) ([]*entity.StockLevel, error) {
	return nil, nil
}

type memMoveRepo struct{ w *memWorld }

func (r *memMoveRepo) Create(move *entity.StockMove) error {
	if move.ID == "" {
		move.ID = uuid.New().String()
	}
	r.w.moves = append(r.w.moves, *move)
	return nil
}
func (r *memMoveRepo) List(_ repository.MoveFilter) ([]*entity.StockMove, error) { return nil, nil }
func (r *memMoveRepo) ListRecent(_ int) ([]*entity.StockMove, error)            { return nil, nil }
func (r *memMoveRepo) AggregateByMonth(_ int) ([]repository.MonthlyFlow, error) { return nil, nil }

// --- Catálogo ---

type memProductRepo struct{ w *memWorld }

func (r *memProductRepo) Create(p *entity.Product) error             { r.w.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) { return r.w.products[id], nil }
func (r *memProductRepo) GetBySKU(_ string) (*entity.Product, error) { return nil, nil }
func (r *memProductRepo) Update(p *entity.Product) error             { r.w.products[p.ID] = p; return nil }
func (r *memProductRepo) List(_, _ int) ([]*entity.Product, error)   { return nil, nil }
func (r *memProductRepo) Delete(_ string) error                      { return nil }

type memWarehouseRepo struct{ w *memWorld }

func (r *memWarehouseRepo) Create(wh *entity.Warehouse) error {
	r.w.warehouses[wh.ID] = wh
	return nil
}
func (r *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.w.warehouses[id], nil
}
func (r *memWarehouseRepo) Update(_ *entity.Warehouse) error           { return nil }
func (r *memWarehouseRepo) List(_, _ int) ([]*entity.Warehouse, error) { return nil, nil }
func (r *memWarehouseRepo) Delete(_ string) error                      { return nil }

type memLocationRepo struct{ w *memWorld }

func (r *memLocationRepo) Create(l *entity.Location) error { r.w.locations[l.ID] = l; return nil }
func (r *memLocationRepo) GetByID(id string) (*entity.Location, error) {
	return r.w.locations[id], nil
}
func (r *memLocationRepo) Update(_ *entity.Location) error           { return nil }
func (r *memLocationRepo) List(_, _ int) ([]*entity.Location, error) { return nil, nil }
func (r *memLocationRepo) ListByWarehouse(warehouseID string) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range r.w.locations {
		if l.WarehouseID == warehouseID {
			out = append(out, l)
		}
	}
	return out, nil
}
func (r *memLocationRepo) FirstByWarehouse(warehouseID string) (*entity.Location, error) {
	locs, _ := r.ListByWarehouse(warehouseID)
	if len(locs) == 0 {
		return nil, nil
	}
	first := locs[0]
	for _, l := range locs[1:] {
		if l.CreatedAt.Before(first.CreatedAt) {
			first = l
		}
	}
	return first, nil
}
func (r *memLocationRepo) Delete(_ string) error { return nil }

// --- TxRunner (implementa los dos contratos: ledger y document) ---

type memTxRunner struct{ w *memWorld }

func (tx *memTxRunner) snapshot() (map[string]entity.InventoryDocument, map[string]entity.StockLevel, int) {
	docs := make(map[string]entity.InventoryDocument, len(tx.w.docs))
	for k, v := range tx.w.docs {
		docs[k] = v
	}
	levels := make(map[string]entity.StockLevel, len(tx.w.levels))
	for k, v := range tx.w.levels {
		levels[k] = v
	}
	return docs, levels, len(tx.w.moves)
}

func (tx *memTxRunner) Run(_ context.Context, fn func(
	moveRepo repository.StockMoveRepository,
	stockRepo repository.StockLevelRepository,
) error) error {
	tx.w.mu.Lock()
	defer tx.w.mu.Unlock()
	docs, levels, nMoves := tx.snapshot()
	if err := fn(&memMoveRepo{tx.w}, &memStockRepo{tx.w}); err != nil {
		tx.w.docs, tx.w.levels, tx.w.moves = docs, levels, tx.w.moves[:nMoves]
		return err
	}
	return nil
}

func (tx *memTxRunner) RunValidation(_ context.Context, fn func(
	docRepo repository.DocumentRepository,
	moveRepo repository.StockMoveRepository,
	stockRepo repository.StockLevelRepository,
) error) error {
	tx.w.mu.Lock()
	defer tx.w.mu.Unlock()
	docs, levels, nMoves := tx.snapshot()
	if err := fn(&memDocRepo{tx.w}, &memMoveRepo{tx.w}, &memStockRepo{tx.w}); err != nil {
		tx.w.docs, tx.w.levels, tx.w.moves = docs, levels, tx.w.moves[:nMoves]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario
// ──────────────────────────────────────────────────────────────────────────────

const (
	whMain  = "wh-main"
	locMain = "loc-main" // ubicación por defecto (created_at más antiguo)
	locSide = "loc-side"
	prodX   = "prod-x"
	prodY   = "prod-y"
)

type fixture struct {
	uc *document.UseCase
	w  *memWorld
}

func newFixture() *fixture {
	base := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	w := &memWorld{
		docs:   make(map[string]entity.InventoryDocument),
		levels: make(map[string]entity.StockLevel),
		seqs:   make(map[string]int64),
		products: map[string]*entity.Product{
			prodX: {ID: prodX, SKU: "SKU-X", Name: "Cinta aislante"},
			prodY: {ID: prodY, SKU: "SKU-Y", Name: "Tubo PVC"},
		},
		warehouses: map[string]*entity.Warehouse{
			whMain: {ID: whMain, Name: "Bodega Principal", ShortCode: "WH"},
		},
		locations: map[string]*entity.Location{
			locMain: {ID: locMain, WarehouseID: whMain, Name: "Recepción", CreatedAt: base},
			locSide: {ID: locSide, WarehouseID: whMain, Name: "Estantería", CreatedAt: base.Add(time.Hour)},
		},
	}
	tx := &memTxRunner{w}
	products := &memProductRepo{w}
	locations := &memLocationRepo{w}
	ledgerUC := ledger.NewUseCase(tx, products, locations)
	uc := document.NewUseCase(tx, &memDocRepo{w}, &memSeqRepo{w},
		&memWarehouseRepo{w}, locations, products, ledgerUC)
	return &fixture{uc: uc, w: w}
}

func (f *fixture) quantity(productID, locationID string) decimal.Decimal {
	if level, ok := f.w.levels[key(productID, locationID)]; ok {
		return level.Quantity
	}
	return decimal.Zero
}

func (f *fixture) seedStock(productID, locationID string, n int64) {
	f.w.levels[key(productID, locationID)] = entity.StockLevel{
		ProductID: productID, LocationID: locationID, Quantity: decimal.NewFromInt(n),
	}
}

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func receiptInput(lines ...document.LineInput) document.CreateInput {
	return document.CreateInput{
		WarehouseID:   whMain,
		Contact:       "Proveedor Andino SAS",
		ScheduledDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Lines:         lines,
	}
}

func line(productID string, n int64) document.LineInput {
	return document.LineInput{ProductID: productID, Quantity: qty(n)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación y referencias
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateReceipt_QuedaEnDraftConReferencia(t *testing.T) {
	f := newFixture()

	doc, err := f.uc.CreateReceipt(receiptInput(line(prodX, 5)))
	require.NoError(t, err)

	assert.Equal(t, entity.StatusDraft, doc.Status, "todo documento nace en Draft")
	assert.Equal(t, "WH/IN/00001", doc.Reference)
	assert.Equal(t, entity.DocumentKindReceipt, doc.Kind)
}

func TestCreate_ReferenciasConsecutivasPorTipo(t *testing.T) {
	f := newFixture()

	r1, err := f.uc.CreateReceipt(receiptInput(line(prodX, 1)))
	require.NoError(t, err)
	r2, err := f.uc.CreateReceipt(receiptInput(line(prodX, 1)))
	require.NoError(t, err)
	d1, err := f.uc.CreateDelivery(receiptInput(line(prodX, 1)))
	require.NoError(t, err)

	assert.Equal(t, "WH/IN/00001", r1.Reference)
	assert.Equal(t, "WH/IN/00002", r2.Reference)
	assert.Equal(t, "WH/OUT/00001", d1.Reference,
		"las entregas llevan su propio consecutivo, independiente del de recepciones")
}

func TestCreate_ReferenciasUnicasBajoCreacionConcurrente(t *testing.T) {
	f := newFixture()
	const workers = 25

	var wg sync.WaitGroup
	refs := make(chan string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := f.uc.CreateReceipt(receiptInput(line(prodX, 1)))
			if err == nil {
				refs <- doc.Reference
			}
		}()
	}
	wg.Wait()
	close(refs)

	seen := make(map[string]bool)
	for ref := range refs {
		assert.False(t, seen[ref], "referencia duplicada: %s", ref)
		seen[ref] = true
	}
	assert.Len(t, seen, workers)
}

func TestCreate_Validaciones(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateReceipt(receiptInput()) // sin líneas
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.CreateReceipt(receiptInput(line(prodX, 0)))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero en línea")

	in := receiptInput(line("prod-fantasma", 1))
	_, err = f.uc.CreateReceipt(in)
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente")

	in = receiptInput(line(prodX, 1))
	in.WarehouseID = "wh-fantasma"
	_, err = f.uc.CreateReceipt(in)
	assert.ErrorIs(t, err, domain.ErrNotFound, "bodega inexistente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo de estados
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_SoloHaciaAdelante(t *testing.T) {
	f := newFixture()
	doc, err := f.uc.CreateReceipt(receiptInput(line(prodX, 5)))
	require.NoError(t, err)

	require.NoError(t, f.uc.UpdateStatus(doc.ID, entity.StatusWaiting))
	require.NoError(t, f.uc.UpdateStatus(doc.ID, entity.StatusReady))

	err = f.uc.UpdateStatus(doc.ID, entity.StatusWaiting)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "no se puede retroceder de Ready a Waiting")
}

func TestUpdateStatus_PuedeSaltarEstados(t *testing.T) {
	f := newFixture()
	doc, err := f.uc.CreateReceipt(receiptInput(line(prodX, 5)))
	require.NoError(t, err)

	assert.NoError(t, f.uc.UpdateStatus(doc.ID, entity.StatusReady),
		"Draft → Ready directo es válido: el flujo exige avanzar, no pasar por todos los estados")
}

func TestUpdateStatus_DoneYCancelledNoEntranPorAqui(t *testing.T) {
	f := newFixture()
	doc, err := f.uc.CreateReceipt(receiptInput(line(prodX, 5)))
	require.NoError(t, err)

	assert.ErrorIs(t, f.uc.UpdateStatus(doc.ID, entity.StatusDone), domain.ErrInvalidInput,
		"Done solo se alcanza validando el documento")
	assert.ErrorIs(t, f.uc.UpdateStatus(doc.ID, entity.StatusCancelled), domain.ErrInvalidInput,
		"Cancelled solo se alcanza por Cancel")
}

func TestCancel_DocumentoNoTerminal(t *testing.T) {
	f := newFixture()
	doc, err := f.uc.CreateReceipt(receiptInput(line(prodX, 5)))
	require.NoError(t, err)

	require.NoError(t, f.uc.Cancel(doc.ID))

	got, err := f.uc.GetByID(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, got.Status)
	assert.True(t, f.quantity(prodX, locMain).IsZero(),
		"cancelar nunca toca el stock: el documento no había producido movimientos")

	assert.ErrorIs(t, f.uc.Cancel(doc.ID), domain.ErrAlreadyProcessed,
		"cancelar dos veces debe rechazarse")
}

func TestCancel_NoResucitaUnDocumentoYaValidado(t *testing.T) {
	f := newFixture()
	doc, err := f.uc.CreateReceipt(receiptInput(line(prodX, 5)))
	require.NoError(t, err)

	// Carrera Cancel vs Validate: el Cancel lee el documento como no terminal,
	// pero antes de escribir, una validación concurrente lo cierra en Done y
	// aplica sus movimientos.
	stale, err := f.uc.GetByID(doc.ID)
	require.NoError(t, err)
	require.False(t, entity.IsTerminal(stale.Status))

	_, err = f.uc.Validate(context.Background(), doc.ID, "user-1")
	require.NoError(t, err)

	// La escritura tardía del Cancel (la misma que haría el caso de uso tras
	// su lectura desactualizada) debe rebotar en la escritura condicional.
	docRepo := &memDocRepo{f.w}
	assert.ErrorIs(t, docRepo.UpdateStatus(doc.ID, entity.StatusCancelled), domain.ErrAlreadyProcessed)

	got, err := f.uc.GetByID(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDone, got.Status,
		"un documento validado con movimientos aplicados no puede pasar a Cancelled")
	assert.True(t, f.quantity(prodX, locMain).Equal(qty(5)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación (ejecución del movimiento planificado)
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_Recepcion_AplicaLineasEnUbicacionPorDefecto(t *testing.T) {
	f := newFixture()
	doc, err := f.uc.CreateReceipt(receiptInput(line(prodX, 5), line(prodY, 3)))
	require.NoError(t, err)

	validated, err := f.uc.Validate(context.Background(), doc.ID, "user-1")
	require.NoError(t, err)

	assert.Equal(t, entity.StatusDone, validated.Status)
	assert.True(t, f.quantity(prodX, locMain).Equal(qty(5)),
		"las líneas se aplican en la ubicación por defecto (la más antigua de la bodega)")
	assert.True(t, f.quantity(prodY, locMain).Equal(qty(3)))
	assert.True(t, f.quantity(prodX, locSide).IsZero())

	require.Len(t, f.w.moves, 2, "un asiento por línea")
	for _, m := range f.w.moves {
		assert.Equal(t, entity.MoveTypeReceipt, m.Type)
		assert.Equal(t, doc.Reference, m.Reference,
			"los movimientos llevan la referencia del documento")
		assert.Equal(t, doc.ScheduledDate, m.Date)
		assert.Equal(t, "user-1", m.CreatedBy)
	}
}

func TestValidate_Entrega_DescuentaStock(t *testing.T) {
	f := newFixture()
	f.seedStock(prodX, locMain, 10)

	doc, err := f.uc.CreateDelivery(receiptInput(line(prodX, 4)))
	require.NoError(t, err)

	_, err = f.uc.Validate(context.Background(), doc.ID, "user-1")
	require.NoError(t, err)

	assert.True(t, f.quantity(prodX, locMain).Equal(qty(6)))
	require.Len(t, f.w.moves, 1)
	assert.True(t, f.w.moves[0].Quantity.Equal(qty(-4)))
}

func TestValidate_SegundaVez_EsAlreadyProcessed(t *testing.T) {
	f := newFixture()
	doc, err := f.uc.CreateReceipt(receiptInput(line(prodX, 5)))
	require.NoError(t, err)

	_, err = f.uc.Validate(context.Background(), doc.ID, "user-1")
	require.NoError(t, err)

	_, err = f.uc.Validate(context.Background(), doc.ID, "user-1")
	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
	assert.True(t, f.quantity(prodX, locMain).Equal(qty(5)),
		"la segunda validación no puede duplicar el stock")
	assert.Len(t, f.w.moves, 1)
}

func TestValidate_EntregaSinStock_RevierteTodo(t *testing.T) {
	f := newFixture()
	f.seedStock(prodX, locMain, 10)
	f.seedStock(prodY, locMain, 1)

	// La primera línea alcanza, la segunda no: nada debe quedar aplicado.
	doc, err := f.uc.CreateDelivery(receiptInput(line(prodX, 4), line(prodY, 5)))
	require.NoError(t, err)

	_, err = f.uc.Validate(context.Background(), doc.ID, "user-1")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, f.quantity(prodX, locMain).Equal(qty(10)),
		"la línea que sí alcanzaba también debe revertirse")
	assert.True(t, f.quantity(prodY, locMain).Equal(qty(1)))
	assert.Empty(t, f.w.moves, "ningún asiento debe sobrevivir al rollback")

	got, err := f.uc.GetByID(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDraft, got.Status, "el documento queda en su estado previo")
}

func TestValidate_DocumentoCancelado_EsAlreadyProcessed(t *testing.T) {
	f := newFixture()
	doc, err := f.uc.CreateReceipt(receiptInput(line(prodX, 5)))
	require.NoError(t, err)
	require.NoError(t, f.uc.Cancel(doc.ID))

	_, err = f.uc.Validate(context.Background(), doc.ID, "user-1")
	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
	assert.Empty(t, f.w.moves)
}

func TestValidate_BodegaSinUbicaciones_Falla(t *testing.T) {
	f := newFixture()
	f.w.warehouses["wh-empty"] = &entity.Warehouse{ID: "wh-empty", Name: "Bodega Vacía"}

	in := receiptInput(line(prodX, 5))
	in.WarehouseID = "wh-empty"
	doc, err := f.uc.CreateReceipt(in)
	require.NoError(t, err)

	_, err = f.uc.Validate(context.Background(), doc.ID, "user-1")
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"una bodega sin ubicaciones no puede recibir ni despachar")
}

func TestValidate_Concurrente_SoloUnaGana(t *testing.T) {
	f := newFixture()
	doc, err := f.uc.CreateReceipt(receiptInput(line(prodX, 5)))
	require.NoError(t, err)

	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Validate(context.Background(), doc.ID, "user-1")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok int
	for err := range errs {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
		}
	}
	assert.Equal(t, 1, ok, "exactamente una validación debe ganar la carrera")
	assert.True(t, f.quantity(prodX, locMain).Equal(qty(5)), "el stock se aplica una sola vez")
	assert.Len(t, f.w.moves, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / edición
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_DocumentoTerminal_EsAlreadyProcessed(t *testing.T) {
	f := newFixture()
	doc, err := f.uc.CreateReceipt(receiptInput(line(prodX, 5)))
	require.NoError(t, err)
	_, err = f.uc.Validate(context.Background(), doc.ID, "user-1")
	require.NoError(t, err)

	_, err = f.uc.Update(doc.ID, receiptInput(line(prodX, 99)))
	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed,
		"un documento en Done es inmutable")
}

func TestUpdate_ReemplazaLineas(t *testing.T) {
	f := newFixture()
	doc, err := f.uc.CreateReceipt(receiptInput(line(prodX, 5)))
	require.NoError(t, err)

	updated, err := f.uc.Update(doc.ID, receiptInput(line(prodY, 2), line(prodX, 1)))
	require.NoError(t, err)

	require.Len(t, updated.Lines, 2)
	assert.Equal(t, prodY, updated.Lines[0].ProductID)
	assert.Equal(t, doc.Reference, updated.Reference, "editar no cambia la referencia")
}

// FormatReference es parte del contrato público de las referencias.
func TestFormatReference(t *testing.T) {
	assert.Equal(t, "WH/IN/00001", document.FormatReference(entity.DocumentKindReceipt, 1))
	assert.Equal(t, "WH/OUT/00042", document.FormatReference(entity.DocumentKindDelivery, 42))
	assert.Equal(t, "WH/IN/123456", document.FormatReference(entity.DocumentKindReceipt, 123456),
		"el padding es mínimo a 5 dígitos, no un truncamiento")
}
