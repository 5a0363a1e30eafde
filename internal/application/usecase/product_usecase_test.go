package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de conteo — solo importa CountByProduct y Delete
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	product *entity.Product
	deleted []int64
}

func (r *stubProductRepo) Create(p *entity.Product) error { return nil }

func (r *stubProductRepo) GetByID(id int64) (*entity.Product, error) { return r.product, nil }

func (r *stubProductRepo) Exists(id int64) (bool, error) { return r.product != nil, nil }

func (r *stubProductRepo) Update(p *entity.Product) error { return nil }

func (r *stubProductRepo) Delete(id int64) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubProductRepo) List(search, category string) ([]*entity.Product, error) { return nil, nil }

func (r *stubProductRepo) InventoryView(productID int64) ([]*entity.ProductInventoryView, error) {
	return nil, nil
}

func (r *stubProductRepo) ListCategories() ([]*entity.Category, error) { return nil, nil }

func (r *stubProductRepo) CategoriesWithCount() ([]*entity.Category, error) { return nil, nil }

type stubRequestCounter struct{ count int64 }

func (r *stubRequestCounter) Create(*entity.OrderRequest) error { return nil }
func (r *stubRequestCounter) Update(*entity.OrderRequest) error { return nil }
func (r *stubRequestCounter) Delete(int64) error                { return nil }

func (r *stubRequestCounter) ListAll() ([]*entity.OrderRequest, error) { return nil, nil }

func (r *stubRequestCounter) ListByOrder(int64) ([]*entity.OrderRequest, error) { return nil, nil }

func (r *stubRequestCounter) CountByProduct(int64) (int64, error) { return r.count, nil }

type stubMovementCounter struct{ count int64 }

func (r *stubMovementCounter) Create(*entity.StockMovement) error { return nil }

func (r *stubMovementCounter) GetByID(int64) (*entity.StockMovement, error) { return nil, nil }

func (r *stubMovementCounter) GetByInventoryAndProduct(int64, int64) (*entity.StockMovement, error) {
	return nil, nil
}

func (r *stubMovementCounter) Update(*entity.StockMovement) error { return nil }
func (r *stubMovementCounter) Delete(int64) error                 { return nil }

func (r *stubMovementCounter) ListAll() ([]*entity.MovementWithDetails, error) { return nil, nil }

func (r *stubMovementCounter) ListByProduct(int64) ([]*entity.MovementWithDetails, error) {
	return nil, nil
}

func (r *stubMovementCounter) ListByInventory(int64) ([]*entity.MovementWithDetails, error) {
	return nil, nil
}

func (r *stubMovementCounter) CountByInventory(int64) (int64, error) { return 0, nil }

func (r *stubMovementCounter) CountByProduct(int64) (int64, error) { return r.count, nil }

type stubSupplyCounter struct{ count int64 }

func (r *stubSupplyCounter) Create(*entity.Supply) error { return nil }
func (r *stubSupplyCounter) Update(*entity.Supply) error { return nil }
func (r *stubSupplyCounter) Delete(int64) error          { return nil }

func (r *stubSupplyCounter) ListAll() ([]*entity.SupplyWithDetails, error) { return nil, nil }

func (r *stubSupplyCounter) ListByProduct(int64) ([]*entity.SupplyWithDetails, error) {
	return nil, nil
}

func (r *stubSupplyCounter) ListByVendor(int64) ([]*entity.SupplyWithDetails, error) {
	return nil, nil
}

func (r *stubSupplyCounter) CountByProduct(int64) (int64, error) { return r.count, nil }

func (r *stubSupplyCounter) CountByVendor(int64) (int64, error) { return 0, nil }

func newProductEnv(requests, movements, supplies int64) (*usecase.ProductUseCase, *stubProductRepo) {
	products := &stubProductRepo{}
	uc := usecase.NewProductUseCase(
		products,
		&stubRequestCounter{count: requests},
		&stubMovementCounter{count: movements},
		&stubSupplyCounter{count: supplies},
	)
	return uc, products
}

// ──────────────────────────────────────────────────────────────────────────────
// Usage y borrado protegido
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Usage reporta los tres conteos de dependientes.
func TestProductUsage_ReportaConteos(t *testing.T) {
	uc, _ := newProductEnv(3, 2, 0)

	u, err := uc.Usage(10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), u.Requests)
	assert.Equal(t, int64(2), u.Movements)
	assert.Equal(t, int64(0), u.Supplies)
	assert.False(t, u.CanDelete())
}

// Caso 2: con dependientes el borrado se bloquea con el detalle en el mensaje.
func TestProductDelete_BloqueadoPorUso(t *testing.T) {
	uc, products := newProductEnv(3, 2, 0)

	err := uc.Delete(10)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "3 líneas de pedido")
	assert.Contains(t, err.Error(), "2 movimientos de stock")
	assert.Empty(t, products.deleted, "el borrado no debe llegar al repositorio")
}

// Caso 3: sin dependientes el borrado procede.
func TestProductDelete_SinUso_Elimina(t *testing.T) {
	uc, products := newProductEnv(0, 0, 0)

	require.NoError(t, uc.Delete(10))
	assert.Equal(t, []int64{10}, products.deleted)
}

// Caso 4: Get traduce la ausencia a ErrNotFound.
func TestProductGet_Inexistente_Retorna_ErrNotFound(t *testing.T) {
	uc, _ := newProductEnv(0, 0, 0)

	_, err := uc.Get(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Describe arma el detalle humano en orden fijo.
func TestUsageCheck_Describe(t *testing.T) {
	u := usecase.UsageCheck{Requests: 1, Supplies: 4}
	assert.Equal(t, "1 líneas de pedido, 4 suministros", u.Describe())
	assert.True(t, usecase.UsageCheck{}.CanDelete())
}
