package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/application/alerts"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/application/dto"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/pkg/logger"
)

// AlertHandler maneja las peticiones HTTP de alertas. Cada lectura reconcilia
// el estado de alertas contra el inventario vigente antes de responder.
type AlertHandler struct {
	svc *alerts.Service
	log *logger.Logger
}

// NewAlertHandler construye el handler.
func NewAlertHandler(svc *alerts.Service, log *logger.Logger) *AlertHandler {
	return &AlertHandler{svc: svc, log: log}
}

// ListActive godoc
// @Summary      Listar alertas activas
// @Description  Reconcilia y devuelve las alertas activas, opcionalmente filtradas por tipo.
// @Tags         alertas
// @Produce      json
// @Param        tipo  query  string  false  "low_stock | expiring_<N>; vacío = todas"
// @Success      200  {array}   dto.AlertDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alertas [get]
func (h *AlertHandler) ListActive(c *fiber.Ctx) error {
	list, err := h.svc.ActiveAlerts(c.Context(), c.Query("tipo"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.JSON(dto.AlertsFromEntities(list))
}

// ListLowStock godoc
// @Summary      Alertas activas de stock mínimo
// @Tags         alertas
// @Produce      json
// @Success      200  {array}   dto.AlertDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alertas/stock-minimo [get]
func (h *AlertHandler) ListLowStock(c *fiber.Ctx) error {
	list, err := h.svc.ActiveLowStock(c.Context())
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.JSON(dto.AlertsFromEntities(list))
}

// ListExpiring godoc
// @Summary      Alertas activas de lotes por vencer
// @Description  Lotes con existencias cuyo vencimiento cae dentro de la ventana de días indicada.
// @Tags         alertas
// @Produce      json
// @Param        days  query  int  false  "ventana en días (default 30)"
// @Success      200  {array}   dto.AlertDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alertas/por-vencer [get]
func (h *AlertHandler) ListExpiring(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	list, err := h.svc.ActiveExpiring(c.Context(), days)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.JSON(dto.AlertsFromEntities(list))
}
