package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// ReportHandler maneja los reportes agregados del negocio.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// parseDateQuery lee un query param de fecha en formato 2006-01-02. Nil si falta.
func parseDateQuery(c *fiber.Ctx, name string) *time.Time {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil
	}
	return &t
}

// Revenue ingresos agregados por día, con rango opcional (from, to).
func (h *ReportHandler) Revenue(c *fiber.Ctx) error {
	rows, err := h.uc.Revenue(parseDateQuery(c, "from"), parseDateQuery(c, "to"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(rows)
}

// TopProducts productos más vendidos por cantidad; limit opcional (default 10).
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit")
	rows, err := h.uc.TopProducts(limit, parseDateQuery(c, "from"), parseDateQuery(c, "to"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(rows)
}

// Inventory estado de stock por registro de inventario.
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	rows, err := h.uc.Inventory()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(rows)
}

// InventoryPDF descarga el reporte de inventario en PDF.
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.InventoryPDF(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventory-report.pdf"`)
	return c.Send(pdfBytes)
}

// Summary totales principales del negocio.
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	s, err := h.uc.Summary()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(s)
}
