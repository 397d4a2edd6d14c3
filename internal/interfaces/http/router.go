// Package http registra las rutas de la API y los middlewares de
// autenticación/autorización sobre Fiber.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// Handlers agrupa los handlers que monta el router.
type Handlers struct {
	Auth       *AuthHandler
	Catalog    *CatalogHandler
	Ledger     *LedgerHandler
	Receipts   *DocumentHandler
	Deliveries *DocumentHandler
	Dashboard  *DashboardHandler
}

// RegisterRoutes monta todas las rutas bajo /api. Todo salvo auth requiere
// JWT; el CRUD de catálogo y los ajustes requieren rol admin.
func RegisterRoutes(app *fiber.App, h Handlers, jwtSecret string) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)

	protected := api.Group("", AuthMiddleware(jwtSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	products := protected.Group("/products")
	products.Get("/", h.Catalog.ListProducts)
	products.Get("/:id", h.Catalog.GetProduct)
	products.Post("/", adminOnly, h.Catalog.CreateProduct)
	products.Put("/:id", adminOnly, h.Catalog.UpdateProduct)
	products.Delete("/:id", adminOnly, h.Catalog.DeleteProduct)

	warehouses := protected.Group("/warehouses")
	warehouses.Get("/", h.Catalog.ListWarehouses)
	warehouses.Get("/:id", h.Catalog.GetWarehouse)
	warehouses.Post("/", adminOnly, h.Catalog.CreateWarehouse)
	warehouses.Put("/:id", adminOnly, h.Catalog.UpdateWarehouse)
	warehouses.Delete("/:id", adminOnly, h.Catalog.DeleteWarehouse)

	locations := protected.Group("/locations")
	locations.Get("/", h.Catalog.ListLocations)
	locations.Get("/:id", h.Catalog.GetLocation)
	locations.Post("/", adminOnly, h.Catalog.CreateLocation)
	locations.Put("/:id", adminOnly, h.Catalog.UpdateLocation)
	locations.Delete("/:id", adminOnly, h.Catalog.DeleteLocation)

	stock := protected.Group("/stock")
	stock.Get("/", h.Ledger.ListStockLevels)
	stock.Get("/:productId/:locationId", h.Ledger.GetStockLevel)

	protected.Get("/moves", h.Ledger.ListMoves)
	protected.Post("/transfers", h.Ledger.Transfer)
	protected.Post("/adjustments", adminOnly, h.Ledger.Adjust)

	registerDocumentRoutes(protected.Group("/receipts"), h.Receipts)
	registerDocumentRoutes(protected.Group("/deliveries"), h.Deliveries)

	dashboard := protected.Group("/dashboard")
	dashboard.Get("/stats", h.Dashboard.GetStats)
	dashboard.Get("/low-stock", h.Dashboard.GetLowStock)
}

func registerDocumentRoutes(g fiber.Router, h *DocumentHandler) {
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.Get)
	g.Put("/:id", h.Update)
	g.Patch("/:id/status", h.UpdateStatus)
	g.Post("/:id/cancel", h.Cancel)
	g.Post("/:id/validate", h.Validate)
}
