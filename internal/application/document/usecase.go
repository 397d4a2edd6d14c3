package document

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/application/ledger"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// UseCase gestiona el ciclo de vida de recepciones y entregas:
// creación con referencia consecutiva, transiciones de estado y validación.
// Validar ejecuta el movimiento planificado exactamente una vez (ver Validate).
type UseCase struct {
	txRunner      TxRunner
	docRepo       repository.DocumentRepository
	seqRepo       repository.SequenceRepository
	warehouseRepo repository.WarehouseRepository
	locationRepo  repository.LocationRepository
	productRepo   repository.ProductRepository
	ledgerUC      *ledger.UseCase
}

// NewUseCase construye el caso de uso de documentos.
func NewUseCase(
	txRunner TxRunner,
	docRepo repository.DocumentRepository,
	seqRepo repository.SequenceRepository,
	warehouseRepo repository.WarehouseRepository,
	locationRepo repository.LocationRepository,
	productRepo repository.ProductRepository,
	ledgerUC *ledger.UseCase,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		docRepo:       docRepo,
		seqRepo:       seqRepo,
		warehouseRepo: warehouseRepo,
		locationRepo:  locationRepo,
		productRepo:   productRepo,
		ledgerUC:      ledgerUC,
	}
}

// LineInput línea planificada de un documento.
type LineInput struct {
	ProductID string
	Quantity  decimal.Decimal
}

// CreateInput entrada para crear una recepción o entrega.
type CreateInput struct {
	WarehouseID   string
	Contact       string
	ScheduledDate time.Time
	Lines         []LineInput
	SourceDoc     string // solo receipt
	Address       string // solo delivery
	Responsible   string
}

// CreateReceipt crea una recepción en Draft con referencia WH/IN/00001.
func (uc *UseCase) CreateReceipt(in CreateInput) (*entity.InventoryDocument, error) {
	return uc.create(entity.DocumentKindReceipt, in)
}

// CreateDelivery crea una entrega en Draft con referencia WH/OUT/00001.
func (uc *UseCase) CreateDelivery(in CreateInput) (*entity.InventoryDocument, error) {
	return uc.create(entity.DocumentKindDelivery, in)
}

func (uc *UseCase) create(kind string, in CreateInput) (*entity.InventoryDocument, error) {
	if in.WarehouseID == "" || in.Contact == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil || wh == nil {
		return nil, domain.ErrNotFound
	}
	lines := make([]entity.DocumentLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		if !l.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(l.ProductID)
		if err != nil || product == nil {
			return nil, domain.ErrNotFound
		}
		lines = append(lines, entity.DocumentLine{ProductID: l.ProductID, Quantity: l.Quantity})
	}

	// Consecutivo atómico por tipo: nunca contar documentos existentes,
	// eso colisiona bajo creación concurrente.
	seq, err := uc.seqRepo.Next(kind)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	doc := &entity.InventoryDocument{
		Kind:          kind,
		Reference:     FormatReference(kind, seq),
		WarehouseID:   in.WarehouseID,
		Contact:       in.Contact,
		ScheduledDate: in.ScheduledDate,
		Status:        entity.StatusDraft,
		Lines:         lines,
		SourceDoc:     in.SourceDoc,
		Address:       in.Address,
		Responsible:   in.Responsible,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.docRepo.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// FormatReference formatea la referencia de un documento: WH/IN/00001 para
// recepciones, WH/OUT/00001 para entregas.
func FormatReference(kind string, seq int64) string {
	if kind == entity.DocumentKindDelivery {
		return fmt.Sprintf("WH/OUT/%05d", seq)
	}
	return fmt.Sprintf("WH/IN/%05d", seq)
}

// GetByID devuelve un documento o ErrNotFound.
func (uc *UseCase) GetByID(id string) (*entity.InventoryDocument, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

// List lista documentos de un tipo, más recientes primero.
func (uc *UseCase) List(kind string, limit, offset int) ([]*entity.InventoryDocument, error) {
	return uc.docRepo.List(kind, limit, offset)
}

// UpdateStatus avanza el documento a Waiting o Ready. El flujo solo va hacia
// adelante; Done se alcanza únicamente validando y los terminales no se tocan.
func (uc *UseCase) UpdateStatus(id, status string) error {
	doc, err := uc.GetByID(id)
	if err != nil {
		return err
	}
	if entity.IsTerminal(doc.Status) {
		return domain.ErrAlreadyProcessed
	}
	if status == entity.StatusDone || status == entity.StatusCancelled || !doc.CanTransition(status) {
		return domain.ErrInvalidInput
	}
	return uc.docRepo.UpdateStatus(id, status)
}

// Cancel pasa un documento no terminal a Cancelled. Un documento cancelado
// nunca produjo movimientos, así que no hay nada que revertir.
func (uc *UseCase) Cancel(id string) error {
	doc, err := uc.GetByID(id)
	if err != nil {
		return err
	}
	if entity.IsTerminal(doc.Status) {
		return domain.ErrAlreadyProcessed
	}
	return uc.docRepo.UpdateStatus(id, entity.StatusCancelled)
}

// Update modifica los datos editables de un documento no terminal.
func (uc *UseCase) Update(id string, in CreateInput) (*entity.InventoryDocument, error) {
	doc, err := uc.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entity.IsTerminal(doc.Status) {
		return nil, domain.ErrAlreadyProcessed
	}
	if in.Contact != "" {
		doc.Contact = in.Contact
	}
	if !in.ScheduledDate.IsZero() {
		doc.ScheduledDate = in.ScheduledDate
	}
	if len(in.Lines) > 0 {
		lines := make([]entity.DocumentLine, 0, len(in.Lines))
		for _, l := range in.Lines {
			if !l.Quantity.GreaterThan(decimal.Zero) {
				return nil, domain.ErrInvalidInput
			}
			product, err := uc.productRepo.GetByID(l.ProductID)
			if err != nil || product == nil {
				return nil, domain.ErrNotFound
			}
			lines = append(lines, entity.DocumentLine{ProductID: l.ProductID, Quantity: l.Quantity})
		}
		doc.Lines = lines
	}
	doc.SourceDoc = orKeep(in.SourceDoc, doc.SourceDoc)
	doc.Address = orKeep(in.Address, doc.Address)
	doc.Responsible = orKeep(in.Responsible, doc.Responsible)
	doc.UpdatedAt = time.Now()
	if err := uc.docRepo.Update(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Validate ejecuta el movimiento planificado del documento y lo deja en Done.
// Todo ocurre en UNA transacción: se bloquea la fila del documento (el chequeo
// de estado es un compare-and-set, dos validaciones concurrentes del mismo
// documento se serializan), se resuelve la ubicación por defecto de la bodega
// (la más antigua) y se aplican las líneas en orden. La primera línea que
// falle revierte todo: ni stock a medias ni estado cambiado.
func (uc *UseCase) Validate(ctx context.Context, id, userID string) (*entity.InventoryDocument, error) {
	var validated *entity.InventoryDocument
	err := uc.txRunner.RunValidation(ctx, func(
		docRepo repository.DocumentRepository,
		moveRepo repository.StockMoveRepository,
		stockRepo repository.StockLevelRepository,
	) error {
		doc, err := docRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if doc == nil {
			return domain.ErrNotFound
		}
		if entity.IsTerminal(doc.Status) {
			return domain.ErrAlreadyProcessed
		}

		// Política de ubicación por defecto: la primera ubicación de la
		// bodega (menor created_at). Una bodega sin ubicaciones no puede
		// recibir ni despachar.
		location, err := uc.locationRepo.FirstByWarehouse(doc.WarehouseID)
		if err != nil {
			return err
		}
		if location == nil {
			return domain.ErrNotFound
		}

		date := doc.ScheduledDate
		for _, line := range doc.Lines {
			if doc.Kind == entity.DocumentKindReceipt {
				err = uc.ledgerUC.ReceiveInTx(moveRepo, stockRepo,
					line.ProductID, location.ID, line.Quantity, doc.Reference, date, userID)
			} else {
				err = uc.ledgerUC.DeliverInTx(moveRepo, stockRepo,
					line.ProductID, location.ID, line.Quantity, doc.Reference, date, userID)
			}
			if err != nil {
				return err
			}
		}

		if err := docRepo.UpdateStatus(doc.ID, entity.StatusDone); err != nil {
			return err
		}
		doc.Status = entity.StatusDone
		validated = doc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return validated, nil
}

func orKeep(v, current string) string {
	if v != "" {
		return v
	}
	return current
}
