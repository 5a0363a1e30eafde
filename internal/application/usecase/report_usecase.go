package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// InventoryReportPDFGenerator renderiza el reporte de inventario como PDF.
type InventoryReportPDFGenerator interface {
	Generate(ctx context.Context, rows []*entity.InventoryReportRow, generatedAt time.Time) ([]byte, error)
}

// ReportUseCase consultas de agregación para reportes del negocio.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	pdfGen     InventoryReportPDFGenerator
}

// NewReportUseCase construye el caso de uso. pdfGen puede ser nil si el
// despliegue no expone el reporte en PDF.
func NewReportUseCase(reportRepo repository.ReportRepository, pdfGen InventoryReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, pdfGen: pdfGen}
}

// Revenue ingresos por día en el rango dado (fechas nil = sin límite).
func (uc *ReportUseCase) Revenue(from, to *time.Time) ([]*entity.RevenueRow, error) {
	return uc.reportRepo.Revenue(from, to)
}

// TopProducts productos más vendidos; limit por defecto 10.
func (uc *ReportUseCase) TopProducts(limit int, from, to *time.Time) ([]*entity.TopProductRow, error) {
	if limit <= 0 {
		limit = 10
	}
	return uc.reportRepo.TopProducts(limit, from, to)
}

// Inventory estado de stock por bodega con valor total.
func (uc *ReportUseCase) Inventory() ([]*entity.InventoryReportRow, error) {
	return uc.reportRepo.InventoryReport()
}

// InventoryPDF renderiza el reporte de inventario como PDF. Si el despliegue
// no configuró generador, el reporte no existe para este servidor.
func (uc *ReportUseCase) InventoryPDF(ctx context.Context) ([]byte, error) {
	if uc.pdfGen == nil {
		return nil, fmt.Errorf("%w: reporte PDF no habilitado", domain.ErrNotFound)
	}
	rows, err := uc.reportRepo.InventoryReport()
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.Generate(ctx, rows, time.Now())
}

// Summary totales principales: clientes, productos, pedidos, ingresos,
// deudas y valor de inventario.
func (uc *ReportUseCase) Summary() (*entity.Summary, error) {
	return uc.reportRepo.Summary()
}
