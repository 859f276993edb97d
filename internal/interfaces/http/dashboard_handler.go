package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/sales-api/internal/application/analytics"
	"github.com/jhoicas/sales-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del panel de ventas.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Cards devuelve las tarjetas de resumen del usuario.
// GET /api/dashboard/cards
//
// Respuesta: CardSummaryDTO (total_value, total_completed_value, count,
// completed_count, pending_count, cancelled_count, average_ticket).
// Se recalcula en cada petición; no hay caché.
func (h *DashboardHandler) Cards(c *fiber.Ctx) error {
	out, err := h.uc.CardSummary(c.UserContext(), CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Sales lista todas las ventas del usuario.
// GET /api/dashboard/sales
func (h *DashboardHandler) Sales(c *fiber.Ctx) error {
	out, err := h.uc.Sales(c.UserContext(), CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesByType lista las ventas de un tipo (coincidencia exacta).
// GET /api/dashboard/sales/type/:type
func (h *DashboardHandler) SalesByType(c *fiber.Ctx) error {
	out, err := h.uc.SalesByType(c.UserContext(), CurrentUser(c), c.Params("type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesByStatus lista las ventas con un estado.
// GET /api/dashboard/sales/status/:status
func (h *DashboardHandler) SalesByStatus(c *fiber.Ctx) error {
	out, err := h.uc.SalesByStatus(c.UserContext(), CurrentUser(c), c.Params("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GroupedByType agrupa valor y cantidad por tipo.
// GET /api/dashboard/sales/by-type
func (h *DashboardHandler) GroupedByType(c *fiber.Ctx) error {
	out, err := h.uc.GroupedByType(c.UserContext(), CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateSale registra una venta desde el panel.
// POST /api/dashboard/sales
//
// Body: CreateSaleRequest. Respuesta 201 con SaleResponse.
func (h *DashboardHandler) CreateSale(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateSale(c.UserContext(), CurrentUser(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Types lista los tipos de venta distintos del usuario.
// GET /api/dashboard/types
func (h *DashboardHandler) Types(c *fiber.Ctx) error {
	out, err := h.uc.Types(c.UserContext(), CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
