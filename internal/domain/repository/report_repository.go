package repository

import (
	"time"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ReportRepository define el puerto de consultas de agregación para reportes.
// Solo lectura; las fechas nil significan sin límite.
type ReportRepository interface {
	Revenue(from, to *time.Time) ([]*entity.RevenueRow, error)
	TopProducts(limit int, from, to *time.Time) ([]*entity.TopProductRow, error)
	InventoryReport() ([]*entity.InventoryReportRow, error)
	Summary() (*entity.Summary, error)
}
