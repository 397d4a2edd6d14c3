package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/catalog"
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
)

// CatalogHandler maneja el CRUD de productos, bodegas y ubicaciones.
type CatalogHandler struct {
	productUC   *catalog.ProductUseCase
	warehouseUC *catalog.WarehouseUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(productUC *catalog.ProductUseCase, warehouseUC *catalog.WarehouseUseCase) *CatalogHandler {
	return &CatalogHandler{productUC: productUC, warehouseUC: warehouseUC}
}

// --- Productos ---

// CreateProduct POST /api/products
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.productUC.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// GetProduct GET /api/products/:id
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.productUC.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// ListProducts GET /api/products
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.productUC.List(c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// UpdateProduct PUT /api/products/:id
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.productUC.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// DeleteProduct DELETE /api/products/:id
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.productUC.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- Bodegas ---

// CreateWarehouse POST /api/warehouses
func (h *CatalogHandler) CreateWarehouse(c *fiber.Ctx) error {
	var in dto.WarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	wh, err := h.warehouseUC.CreateWarehouse(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(wh)
}

// GetWarehouse GET /api/warehouses/:id
func (h *CatalogHandler) GetWarehouse(c *fiber.Ctx) error {
	wh, err := h.warehouseUC.GetWarehouse(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wh)
}

// ListWarehouses GET /api/warehouses
func (h *CatalogHandler) ListWarehouses(c *fiber.Ctx) error {
	whs, err := h.warehouseUC.ListWarehouses(c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(whs)
}

// UpdateWarehouse PUT /api/warehouses/:id
func (h *CatalogHandler) UpdateWarehouse(c *fiber.Ctx) error {
	var in dto.WarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	wh, err := h.warehouseUC.UpdateWarehouse(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wh)
}

// DeleteWarehouse DELETE /api/warehouses/:id
// Falla con 409 si la bodega tiene ubicaciones.
func (h *CatalogHandler) DeleteWarehouse(c *fiber.Ctx) error {
	if err := h.warehouseUC.DeleteWarehouse(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- Ubicaciones ---

// CreateLocation POST /api/locations
func (h *CatalogHandler) CreateLocation(c *fiber.Ctx) error {
	var in dto.LocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	loc, err := h.warehouseUC.CreateLocation(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(loc)
}

// GetLocation GET /api/locations/:id
func (h *CatalogHandler) GetLocation(c *fiber.Ctx) error {
	loc, err := h.warehouseUC.GetLocation(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(loc)
}

// ListLocations GET /api/locations?warehouse_id=
func (h *CatalogHandler) ListLocations(c *fiber.Ctx) error {
	locs, err := h.warehouseUC.ListLocations(c.Query("warehouse_id"), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(locs)
}

// UpdateLocation PUT /api/locations/:id
func (h *CatalogHandler) UpdateLocation(c *fiber.Ctx) error {
	var in dto.LocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	loc, err := h.warehouseUC.UpdateLocation(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(loc)
}

// DeleteLocation DELETE /api/locations/:id
func (h *CatalogHandler) DeleteLocation(c *fiber.Ctx) error {
	if err := h.warehouseUC.DeleteLocation(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
