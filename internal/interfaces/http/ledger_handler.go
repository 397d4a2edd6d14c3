package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/ledger"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// LedgerHandler expone el estado del stock, el log de movimientos y las
// operaciones directas del ledger (traslados y ajustes). Las recepciones y
// entregas entran por documentos, no por aquí.
type LedgerHandler struct {
	ledgerUC *ledger.UseCase
	queryUC  *ledger.QueryUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(ledgerUC *ledger.UseCase, queryUC *ledger.QueryUseCase) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC, queryUC: queryUC}
}

// GetStockLevel GET /api/stock/:productId/:locationId
// Una clave sin movimientos responde cantidad cero, no 404.
func (h *LedgerHandler) GetStockLevel(c *fiber.Ctx) error {
	level, err := h.queryUC.StockLevel(c.Params("productId"), c.Params("locationId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toStockLevelDTO(level))
}

// ListStockLevels GET /api/stock
func (h *LedgerHandler) ListStockLevels(c *fiber.Ctx) error {
	levels, err := h.queryUC.StockLevels(c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.StockLevelResponse, 0, len(levels))
	for _, level := range levels {
		out = append(out, toStockLevelDTO(level))
	}
	return c.JSON(out)
}

// ListMoves GET /api/moves?product_id=&location_id=&from=&to=
func (h *LedgerHandler) ListMoves(c *fiber.Ctx) error {
	filter := repository.MoveFilter{
		ProductID:  c.Query("product_id"),
		LocationID: c.Query("location_id"),
		Limit:      c.QueryInt("limit", 50),
		Offset:     c.QueryInt("offset", 0),
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from: fecha inválida (RFC3339)"})
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to: fecha inválida (RFC3339)"})
		}
		filter.To = &t
	}
	moves, err := h.queryUC.Moves(filter)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.StockMoveResponse, 0, len(moves))
	for _, m := range moves {
		out = append(out, toStockMoveDTO(m))
	}
	return c.JSON(out)
}

// Transfer POST /api/transfers
func (h *LedgerHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.ledgerUC.Transfer(c.Context(), ledger.TransferInput{
		ProductID:      in.ProductID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Quantity:       in.Quantity,
		UserID:         GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// Adjust POST /api/adjustments
func (h *LedgerHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.ledgerUC.Adjust(c.Context(), ledger.AdjustInput{
		ProductID:  in.ProductID,
		LocationID: in.LocationID,
		Mode:       in.Mode,
		Value:      in.Value,
		UserID:     GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

func toStockLevelDTO(level *entity.StockLevel) dto.StockLevelResponse {
	return dto.StockLevelResponse{
		ProductID:  level.ProductID,
		LocationID: level.LocationID,
		Quantity:   level.Quantity,
		UpdatedAt:  level.UpdatedAt,
	}
}

func toStockMoveDTO(m *entity.StockMove) dto.StockMoveResponse {
	return dto.StockMoveResponse{
		ID:             m.ID,
		ProductID:      m.ProductID,
		Quantity:       m.Quantity,
		Type:           m.Type,
		FromLocationID: m.FromLocationID,
		ToLocationID:   m.ToLocationID,
		Reference:      m.Reference,
		Date:           m.Date,
	}
}
