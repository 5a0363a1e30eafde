package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────────────────────────────────────

type stubReportRepo struct {
	inventoryRows []*entity.InventoryReportRow
	topLimit      int
}

func (s *stubReportRepo) Revenue(from, to *time.Time) ([]*entity.RevenueRow, error) {
	return nil, nil
}

func (s *stubReportRepo) TopProducts(limit int, from, to *time.Time) ([]*entity.TopProductRow, error) {
	s.topLimit = limit
	return nil, nil
}

func (s *stubReportRepo) InventoryReport() ([]*entity.InventoryReportRow, error) {
	return s.inventoryRows, nil
}

func (s *stubReportRepo) Summary() (*entity.Summary, error) {
	return &entity.Summary{}, nil
}

type stubPDFGenerator struct {
	rowsSeen int
	out      []byte
}

func (g *stubPDFGenerator) Generate(ctx context.Context, rows []*entity.InventoryReportRow, generatedAt time.Time) ([]byte, error) {
	g.rowsSeen = len(rows)
	return g.out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// InventoryPDF
// ─────────────────────────────────────────────────────────────────────────────

// Caso 1: sin generador configurado el reporte PDF no existe para este
// despliegue; debe responder not found, no caerse.
func TestInventoryPDF_SinGenerador(t *testing.T) {
	uc := usecase.NewReportUseCase(&stubReportRepo{}, nil)

	out, err := uc.InventoryPDF(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, out)
}

// Caso 2: con generador, las filas del reporte llegan al generador y los
// bytes vuelven al caller.
func TestInventoryPDF_ConGenerador(t *testing.T) {
	repo := &stubReportRepo{inventoryRows: []*entity.InventoryReportRow{
		{InventoryID: 1, Warehouse: "bodega central", StockQuantity: 5, UnitCost: decimal.NewFromInt(2)},
		{InventoryID: 2, Warehouse: "bodega norte", StockQuantity: 0},
	}}
	gen := &stubPDFGenerator{out: []byte("%PDF-1.7")}
	uc := usecase.NewReportUseCase(repo, gen)

	out, err := uc.InventoryPDF(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), out)
	assert.Equal(t, 2, gen.rowsSeen)
}

// TopProducts sin límite cae en el límite por defecto.
func TestTopProducts_LimitePorDefecto(t *testing.T) {
	repo := &stubReportRepo{}
	uc := usecase.NewReportUseCase(repo, nil)

	_, err := uc.TopProducts(0, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, 10, repo.topLimit)
}
