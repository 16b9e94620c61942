package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/application/dto"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/application/reports"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/pkg/logger"
)

// ReportHandler maneja las peticiones HTTP de reportes de inventario.
type ReportHandler struct {
	uc  *reports.UseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// CurrentStock godoc
// @Summary      Reporte de stock actual (JSON)
// @Tags         reportes
// @Produce      json
// @Success      200  {array}   dto.ProductDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/stock [get]
func (h *ReportHandler) CurrentStock(c *fiber.Ctx) error {
	products, err := h.uc.CurrentStock(c.Context())
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.JSON(dto.ProductsFromEntities(products))
}

// CurrentStockPDF godoc
// @Summary      Reporte de stock actual (PDF)
// @Tags         reportes
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reportes/stock/pdf [get]
func (h *ReportHandler) CurrentStockPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.CurrentStockPDF(c.Context())
	if err != nil {
		return handleError(c, h.log, err)
	}
	filename := "stock_" + time.Now().Format("20060102") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
