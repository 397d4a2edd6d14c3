package ledger

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// Modos de ajuste de inventario.
const (
	AdjustModeSet = "Set" // fija la cantidad al valor indicado
	AdjustModeAdd = "Add" // suma el valor (puede ser negativo)
)

// UseCase implementa las cuatro operaciones del libro mayor de inventario
// (Receive, Deliver, Transfer, Adjust). Cada operación corre en una
// transacción con bloqueo de fila (SELECT FOR UPDATE) sobre el stock: la
// verificación de saldo y el decremento son un solo paso atómico, y el
// movimiento del log se inserta en la misma transacción.
type UseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewUseCase construye el caso de uso del ledger.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
	}
}

// ReceiveInput entrada para una recepción de mercancía.
type ReceiveInput struct {
	ProductID    string
	ToLocationID string
	Quantity     decimal.Decimal
	Reference    string
	Date         time.Time
	UserID       string
}

// DeliverInput entrada para una entrega (salida de stock).
type DeliverInput struct {
	ProductID      string
	FromLocationID string
	Quantity       decimal.Decimal
	Reference      string
	Date           time.Time
	UserID         string
}

// TransferInput entrada para un traslado interno entre ubicaciones.
type TransferInput struct {
	ProductID      string
	FromLocationID string
	ToLocationID   string
	Quantity       decimal.Decimal
	UserID         string
}

// AdjustInput entrada para un ajuste manual de inventario.
type AdjustInput struct {
	ProductID  string
	LocationID string
	Mode       string // Set | Add
	Value      decimal.Decimal
	UserID     string
}

// Receive suma quantity en la ubicación destino y registra un movimiento
// Receipt. Nunca falla por stock insuficiente (siempre es un incremento).
func (uc *UseCase) Receive(ctx context.Context, in ReceiveInput) error {
	if in.ProductID == "" || in.ToLocationID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if err := uc.checkCatalog(in.ProductID, in.ToLocationID); err != nil {
		return err
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		moveRepo repository.StockMoveRepository,
		stockRepo repository.StockLevelRepository,
	) error {
		return uc.ReceiveInTx(moveRepo, stockRepo, in.ProductID, in.ToLocationID,
			in.Quantity, in.Reference, orNow(in.Date, now), in.UserID)
	})
}

// ReceiveInTx ejecuta la recepción usando los repositorios proporcionados
// (misma transacción del caller). La validación de documentos la usa para que
// todas las líneas de una recepción compartan una sola transacción.
func (uc *UseCase) ReceiveInTx(
	moveRepo repository.StockMoveRepository,
	stockRepo repository.StockLevelRepository,
	productID, locationID string,
	quantity decimal.Decimal,
	reference string, date time.Time, userID string,
) error {
	if !quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	if _, err := applyDelta(stockRepo, productID, locationID, quantity, now); err != nil {
		return err
	}
	return moveRepo.Create(&entity.StockMove{
		ProductID:    productID,
		Quantity:     quantity,
		Type:         entity.MoveTypeReceipt,
		ToLocationID: locationID,
		Reference:    reference,
		Date:         date,
		CreatedBy:    userID,
		CreatedAt:    now,
	})
}

// Deliver resta quantity de la ubicación origen y registra un movimiento
// Delivery. La verificación de saldo y el decremento ocurren con la fila
// bloqueada: dos entregas concurrentes sobre la misma clave se serializan y
// no pueden sobregirar la ubicación.
func (uc *UseCase) Deliver(ctx context.Context, in DeliverInput) error {
	if in.ProductID == "" || in.FromLocationID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if err := uc.checkCatalog(in.ProductID, in.FromLocationID); err != nil {
		return err
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		moveRepo repository.StockMoveRepository,
		stockRepo repository.StockLevelRepository,
	) error {
		return uc.DeliverInTx(moveRepo, stockRepo, in.ProductID, in.FromLocationID,
			in.Quantity, in.Reference, orNow(in.Date, now), in.UserID)
	})
}

// DeliverInTx ejecuta la entrega usando los repositorios proporcionados
// (misma transacción del caller).
func (uc *UseCase) DeliverInTx(
	moveRepo repository.StockMoveRepository,
	stockRepo repository.StockLevelRepository,
	productID, locationID string,
	quantity decimal.Decimal,
	reference string, date time.Time, userID string,
) error {
	if !quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	if _, err := applyDelta(stockRepo, productID, locationID, quantity.Neg(), now); err != nil {
		return err
	}
	return moveRepo.Create(&entity.StockMove{
		ProductID:      productID,
		Quantity:       quantity.Neg(),
		Type:           entity.MoveTypeDelivery,
		FromLocationID: locationID,
		Reference:      reference,
		Date:           date,
		CreatedBy:      userID,
		CreatedAt:      now,
	})
}

// Transfer mueve quantity de una ubicación a otra en una sola transacción:
// o se aplican ambos lados o ninguno. Registra UN solo movimiento Internal
// con ambas ubicaciones, no dos asientos separados.
func (uc *UseCase) Transfer(ctx context.Context, in TransferInput) error {
	if in.ProductID == "" || in.FromLocationID == "" || in.ToLocationID == "" {
		return domain.ErrInvalidInput
	}
	if in.FromLocationID == in.ToLocationID || !in.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if err := uc.checkCatalog(in.ProductID, in.FromLocationID); err != nil {
		return err
	}
	if loc, err := uc.locationRepo.GetByID(in.ToLocationID); err != nil || loc == nil {
		return domain.ErrNotFound
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		moveRepo repository.StockMoveRepository,
		stockRepo repository.StockLevelRepository,
	) error {
		// Bloquear ambas filas en orden determinista por ID de ubicación:
		// dos traslados cruzados concurrentes no pueden interbloquearse.
		levels := make(map[string]*entity.StockLevel, 2)
		for _, locID := range lockOrder(in.FromLocationID, in.ToLocationID) {
			level, err := stockRepo.GetForUpdate(in.ProductID, locID)
			if err != nil {
				return err
			}
			levels[locID] = level
		}
		origin, dest := levels[in.FromLocationID], levels[in.ToLocationID]
		if origin.Quantity.LessThan(in.Quantity) {
			return domain.ErrInsufficientStock
		}
		origin.Quantity = origin.Quantity.Sub(in.Quantity)
		dest.Quantity = dest.Quantity.Add(in.Quantity)
		origin.UpdatedAt = now
		dest.UpdatedAt = now
		if err := stockRepo.Upsert(origin); err != nil {
			return err
		}
		if err := stockRepo.Upsert(dest); err != nil {
			return err
		}
		return moveRepo.Create(&entity.StockMove{
			ProductID:      in.ProductID,
			Quantity:       in.Quantity,
			Type:           entity.MoveTypeInternal,
			FromLocationID: in.FromLocationID,
			ToLocationID:   in.ToLocationID,
			Reference:      internalReference("INT/", now),
			Date:           now,
			CreatedBy:      in.UserID,
			CreatedAt:      now,
		})
	})
}

// Adjust corrige la cantidad de una ubicación. Modo Set fija la cantidad al
// valor indicado (el delta registrado es valor − actual; fijar a negativo se
// rechaza con ErrInvalidAdjustment). Modo Add suma el valor; un valor negativo
// que exceda el saldo falla con ErrInsufficientStock.
func (uc *UseCase) Adjust(ctx context.Context, in AdjustInput) error {
	if in.ProductID == "" || in.LocationID == "" {
		return domain.ErrInvalidInput
	}
	switch in.Mode {
	case AdjustModeSet:
		if in.Value.IsNegative() {
			return domain.ErrInvalidAdjustment
		}
	case AdjustModeAdd:
		// el signo del valor decide si es entrada o salida
	default:
		return domain.ErrInvalidAdjustment
	}
	if err := uc.checkCatalog(in.ProductID, in.LocationID); err != nil {
		return err
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		moveRepo repository.StockMoveRepository,
		stockRepo repository.StockLevelRepository,
	) error {
		level, err := stockRepo.GetForUpdate(in.ProductID, in.LocationID)
		if err != nil {
			return err
		}
		delta := in.Value
		if in.Mode == AdjustModeSet {
			delta = in.Value.Sub(level.Quantity)
		}
		newQty := level.Quantity.Add(delta)
		if newQty.IsNegative() {
			return domain.ErrInsufficientStock
		}
		level.Quantity = newQty
		level.UpdatedAt = now
		if err := stockRepo.Upsert(level); err != nil {
			return err
		}
		return moveRepo.Create(&entity.StockMove{
			ProductID:    in.ProductID,
			Quantity:     delta,
			Type:         entity.MoveTypeAdjustment,
			ToLocationID: in.LocationID,
			Reference:    internalReference("ADJ/", now),
			Date:         now,
			CreatedBy:    in.UserID,
			CreatedAt:    now,
		})
	})
}

// applyDelta lee la fila de stock con bloqueo, aplica el delta y persiste.
// Rechaza con ErrInsufficientStock cualquier resultado negativo. Debe llamarse
// siempre dentro de una transacción: fuera de ella el bloqueo no sirve de nada.
func applyDelta(
	stockRepo repository.StockLevelRepository,
	productID, locationID string,
	delta decimal.Decimal,
	now time.Time,
) (decimal.Decimal, error) {
	level, err := stockRepo.GetForUpdate(productID, locationID)
	if err != nil {
		return decimal.Zero, err
	}
	newQty := level.Quantity.Add(delta)
	if newQty.IsNegative() {
		return decimal.Zero, domain.ErrInsufficientStock
	}
	level.Quantity = newQty
	level.UpdatedAt = now
	if err := stockRepo.Upsert(level); err != nil {
		return decimal.Zero, err
	}
	return newQty, nil
}

// checkCatalog valida que el producto y la ubicación existan.
func (uc *UseCase) checkCatalog(productID, locationID string) error {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil || product == nil {
		return domain.ErrNotFound
	}
	location, err := uc.locationRepo.GetByID(locationID)
	if err != nil || location == nil {
		return domain.ErrNotFound
	}
	return nil
}

// lockOrder devuelve los dos IDs en orden lexicográfico.
func lockOrder(a, b string) [2]string {
	if b < a {
		return [2]string{b, a}
	}
	return [2]string{a, b}
}

// internalReference referencia para movimientos sin documento (INT/, ADJ/).
// El timestamp en milisegundos hace las colisiones improbables, no imposibles.
func internalReference(prefix string, t time.Time) string {
	return prefix + strconv.FormatInt(t.UnixMilli(), 10)
}

func orNow(d, now time.Time) time.Time {
	if d.IsZero() {
		return now
	}
	return d
}
