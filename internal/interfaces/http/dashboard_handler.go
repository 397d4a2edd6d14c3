package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/report"
)

// DashboardHandler expone los reportes read-only del inventario.
type DashboardHandler struct {
	dashboardUC *report.DashboardUseCase
	lowStockUC  *report.LowStockUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(dashboardUC *report.DashboardUseCase, lowStockUC *report.LowStockUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC, lowStockUC: lowStockUC}
}

// GetStats GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.dashboardUC.GetStats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// GetLowStock GET /api/dashboard/low-stock
func (h *DashboardHandler) GetLowStock(c *fiber.Ctx) error {
	items, err := h.lowStockUC.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}
