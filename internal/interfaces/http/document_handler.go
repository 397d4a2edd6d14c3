package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/document"
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// DocumentHandler maneja recepciones y entregas. Las rutas se montan dos
// veces (en /receipts y /deliveries) con el kind fijado por grupo.
type DocumentHandler struct {
	uc   *document.UseCase
	kind string
}

// NewDocumentHandler construye el handler para un tipo de documento.
func NewDocumentHandler(uc *document.UseCase, kind string) *DocumentHandler {
	return &DocumentHandler{uc: uc, kind: kind}
}

// Create POST /api/{receipts|deliveries}
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := toCreateInput(in)
	var doc *entity.InventoryDocument
	var err error
	if h.kind == entity.DocumentKindReceipt {
		doc, err = h.uc.CreateReceipt(input)
	} else {
		doc, err = h.uc.CreateDelivery(input)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toDocumentDTO(doc))
}

// Get GET /api/{receipts|deliveries}/:id
func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	doc, err := h.getOwn(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toDocumentDTO(doc))
}

// List GET /api/{receipts|deliveries}
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	docs, err := h.uc.List(h.kind, c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toDocumentDTO(doc))
	}
	return c.JSON(out)
}

// Update PUT /api/{receipts|deliveries}/:id
func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if _, err := h.getOwn(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	doc, err := h.uc.Update(c.Params("id"), toCreateInput(in))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toDocumentDTO(doc))
}

// UpdateStatus PATCH /api/{receipts|deliveries}/:id/status
// Solo acepta Waiting y Ready; Done se alcanza validando y Cancelled cancelando.
func (h *DocumentHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if _, err := h.getOwn(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.UpdateStatus(c.Params("id"), in.Status); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Cancel POST /api/{receipts|deliveries}/:id/cancel
func (h *DocumentHandler) Cancel(c *fiber.Ctx) error {
	if _, err := h.getOwn(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Cancel(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Validate POST /api/{receipts|deliveries}/:id/validate
// Ejecuta el movimiento planificado y deja el documento en Done. Idempotente
// en el sentido de que una segunda validación responde 409, nunca duplica stock.
func (h *DocumentHandler) Validate(c *fiber.Ctx) error {
	if _, err := h.getOwn(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	doc, err := h.uc.Validate(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toDocumentDTO(doc))
}

// getOwn carga el documento y verifica que sea del tipo del grupo de rutas:
// una entrega no es visible bajo /receipts ni al revés.
func (h *DocumentHandler) getOwn(id string) (*entity.InventoryDocument, error) {
	doc, err := h.uc.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc.Kind != h.kind {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

func toCreateInput(in dto.CreateDocumentRequest) document.CreateInput {
	lines := make([]document.LineInput, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, document.LineInput{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return document.CreateInput{
		WarehouseID:   in.WarehouseID,
		Contact:       in.Contact,
		ScheduledDate: in.ScheduledDate,
		Lines:         lines,
		SourceDoc:     in.SourceDoc,
		Address:       in.Address,
		Responsible:   in.Responsible,
	}
}

func toDocumentDTO(doc *entity.InventoryDocument) dto.DocumentResponse {
	lines := make([]dto.DocumentLineRequest, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		lines = append(lines, dto.DocumentLineRequest{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return dto.DocumentResponse{
		ID:            doc.ID,
		Kind:          doc.Kind,
		Reference:     doc.Reference,
		WarehouseID:   doc.WarehouseID,
		Contact:       doc.Contact,
		ScheduledDate: doc.ScheduledDate,
		Status:        doc.Status,
		Lines:         lines,
		SourceDoc:     doc.SourceDoc,
		Address:       doc.Address,
		Responsible:   doc.Responsible,
		CreatedAt:     doc.CreatedAt,
	}
}
