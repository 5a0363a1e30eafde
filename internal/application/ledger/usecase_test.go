package ledger_test

import (
	"context"
	"errors"
	"maps"
	"sort"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/ledger"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore estado compartido de los fakes. El txRunner toma el mutex durante
// toda la transacción, igual que el bloqueo de fila serializa escritores en la
// BD real, y restaura un snapshot de los mapas si la función retorna error.
type fakeStore struct {
	mu          sync.Mutex
	inventories map[int64]entity.Inventory
	movements   map[int64]entity.StockMovement
	products    map[int64]entity.Product
	nextInvID   int64
	nextMovID   int64

	// failMovementCreate fuerza un error en el insert de movimientos para
	// verificar que la transacción no deja escrituras parciales.
	failMovementCreate bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		inventories: make(map[int64]entity.Inventory),
		movements:   make(map[int64]entity.StockMovement),
		products:    make(map[int64]entity.Product),
	}
}

func (s *fakeStore) seedProduct(id int64, name string) {
	s.products[id] = entity.Product{ID: id, Name: name, Line: "Motos", Brand: "Genérica"}
}

func (s *fakeStore) seedInventory(inv entity.Inventory) {
	if inv.ID > s.nextInvID {
		s.nextInvID = inv.ID
	}
	s.inventories[inv.ID] = inv
}

// inventory lee el estado final de un registro (falla si no existe).
func (s *fakeStore) inventory(t *testing.T, id int64) entity.Inventory {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.inventories[id]
	require.True(t, ok, "el inventario %d debe existir", id)
	return inv
}

// allMovements retorna los movimientos ordenados por ID.
func (s *fakeStore) allMovements() []entity.StockMovement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.StockMovement, 0, len(s.movements))
	for _, m := range s.movements {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	invSnap := maps.Clone(r.s.inventories)
	movSnap := maps.Clone(r.s.movements)
	err := fn(&fakeInventoryRepo{s: r.s}, &fakeMovementRepo{s: r.s}, &fakeProductRepo{s: r.s})
	if err != nil {
		r.s.inventories = invSnap
		r.s.movements = movSnap
	}
	return err
}

// Los repos no bloquean por sí mismos: el runner serializa las transacciones.

type fakeInventoryRepo struct{ s *fakeStore }

func (r *fakeInventoryRepo) GetByID(id int64) (*entity.Inventory, error) {
	if inv, ok := r.s.inventories[id]; ok {
		cp := inv
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeInventoryRepo) GetForUpdate(id int64) (*entity.Inventory, error) {
	return r.GetByID(id)
}

func (r *fakeInventoryRepo) Create(inv *entity.Inventory) error {
	if inv.ID == 0 {
		r.s.nextInvID++
		inv.ID = r.s.nextInvID
	} else {
		if _, ok := r.s.inventories[inv.ID]; ok {
			return domain.ErrDuplicate
		}
		if inv.ID > r.s.nextInvID {
			r.s.nextInvID = inv.ID
		}
	}
	r.s.inventories[inv.ID] = *inv
	return nil
}

func (r *fakeInventoryRepo) Update(inv *entity.Inventory) error {
	if _, ok := r.s.inventories[inv.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.inventories[inv.ID] = *inv
	return nil
}

func (r *fakeInventoryRepo) Delete(id int64) error {
	if _, ok := r.s.inventories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.inventories, id)
	return nil
}

func (r *fakeInventoryRepo) ListWithProducts() ([]*entity.InventoryWithProduct, error) {
	var out []*entity.InventoryWithProduct
	for _, inv := range r.s.inventories {
		seen := make(map[int64]bool)
		for _, m := range r.s.movements {
			if m.InventoryID != inv.ID || seen[m.ProductID] {
				continue
			}
			seen[m.ProductID] = true
			row := &entity.InventoryWithProduct{Inventory: inv}
			pid := m.ProductID
			row.ProductID = &pid
			if p, ok := r.s.products[pid]; ok {
				name, line, brand := p.Name, p.Line, p.Brand
				row.ProductName, row.ProductLine, row.ProductBrand = &name, &line, &brand
			}
			out = append(out, row)
		}
		if len(seen) == 0 {
			out = append(out, &entity.InventoryWithProduct{Inventory: inv})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	if r.s.failMovementCreate {
		return errors.New("fallo inyectado en el insert de movimiento")
	}
	r.s.nextMovID++
	m.ID = r.s.nextMovID
	r.s.movements[m.ID] = *m
	return nil
}

func (r *fakeMovementRepo) GetByID(id int64) (*entity.StockMovement, error) {
	if m, ok := r.s.movements[id]; ok {
		cp := m
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeMovementRepo) GetByInventoryAndProduct(inventoryID, productID int64) (*entity.StockMovement, error) {
	var latest *entity.StockMovement
	for _, m := range r.s.movements {
		if m.InventoryID != inventoryID || m.ProductID != productID {
			continue
		}
		cp := m
		if latest == nil || cp.Date.After(latest.Date) || (cp.Date.Equal(latest.Date) && cp.ID > latest.ID) {
			latest = &cp
		}
	}
	return latest, nil
}

func (r *fakeMovementRepo) Update(m *entity.StockMovement) error {
	if _, ok := r.s.movements[m.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.movements[m.ID] = *m
	return nil
}

func (r *fakeMovementRepo) Delete(id int64) error {
	if _, ok := r.s.movements[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.movements, id)
	return nil
}

func (r *fakeMovementRepo) list(filter func(entity.StockMovement) bool) []*entity.MovementWithDetails {
	var out []*entity.MovementWithDetails
	for _, m := range r.s.movements {
		if !filter(m) {
			continue
		}
		row := &entity.MovementWithDetails{StockMovement: m}
		if p, ok := r.s.products[m.ProductID]; ok {
			name, line, brand := p.Name, p.Line, p.Brand
			row.ProductName, row.ProductLine, row.ProductBrand = &name, &line, &brand
		}
		if inv, ok := r.s.inventories[m.InventoryID]; ok {
			wh, stock := inv.Warehouse, inv.StockQuantity
			row.Warehouse, row.InventoryStock = &wh, &stock
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeMovementRepo) ListAll() ([]*entity.MovementWithDetails, error) {
	return r.list(func(entity.StockMovement) bool { return true }), nil
}

func (r *fakeMovementRepo) ListByProduct(productID int64) ([]*entity.MovementWithDetails, error) {
	return r.list(func(m entity.StockMovement) bool { return m.ProductID == productID }), nil
}

func (r *fakeMovementRepo) ListByInventory(inventoryID int64) ([]*entity.MovementWithDetails, error) {
	return r.list(func(m entity.StockMovement) bool { return m.InventoryID == inventoryID }), nil
}

func (r *fakeMovementRepo) CountByInventory(inventoryID int64) (int64, error) {
	var n int64
	for _, m := range r.s.movements {
		if m.InventoryID == inventoryID {
			n++
		}
	}
	return n, nil
}

func (r *fakeMovementRepo) CountByProduct(productID int64) (int64, error) {
	var n int64
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			n++
		}
	}
	return n, nil
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = *p; return nil }

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	if p, ok := r.s.products[id]; ok {
		cp := p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) Exists(id int64) (bool, error) {
	_, ok := r.s.products[id]
	return ok, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error { r.s.products[p.ID] = *p; return nil }

func (r *fakeProductRepo) Delete(id int64) error { delete(r.s.products, id); return nil }

func (r *fakeProductRepo) List(search, category string) ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) InventoryView(productID int64) ([]*entity.ProductInventoryView, error) {
	return nil, nil
}

func (r *fakeProductRepo) ListCategories() ([]*entity.Category, error) { return nil, nil }

func (r *fakeProductRepo) CategoriesWithCount() ([]*entity.Category, error) { return nil, nil }

// newLedgerEnv arma el caso de uso contra el store en memoria.
func newLedgerEnv() (*ledger.UseCase, *fakeStore) {
	s := newFakeStore()
	uc := ledger.NewUseCase(&fakeTxRunner{s: s}, &fakeInventoryRepo{s: s}, &fakeMovementRepo{s: s})
	return uc, s
}

// ──────────────────────────────────────────────────────────────────────────────
// Import
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Import sobre registro existente → suma la cantidad, actualiza el
// costo unitario y deja un movimiento Import con delta positivo.
func TestImport_SumaStockYRegistraMovimiento(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")
	s.seedInventory(entity.Inventory{ID: 1, Warehouse: "Bodega Norte", StockQuantity: 50, UnitCost: decimal.NewFromInt(80), Status: entity.InventoryStatusActive})

	err := uc.Import(context.Background(), dto.ImportRequest{
		ProductID:   10,
		InventoryID: 1,
		Quantity:    25,
		UnitCost:    decimal.NewFromInt(95),
	})
	require.NoError(t, err)

	inv := s.inventory(t, 1)
	assert.Equal(t, int64(75), inv.StockQuantity, "el stock debe subir de 50 a 75")
	assert.True(t, inv.UnitCost.Equal(decimal.NewFromInt(95)), "el costo unitario debe sobrescribirse")

	movs := s.allMovements()
	require.Len(t, movs, 1)
	assert.Equal(t, entity.RoleImport, movs[0].Role)
	assert.Equal(t, int64(25), movs[0].Quantity, "el delta del movimiento debe ser la cantidad importada")
	assert.NotEmpty(t, movs[0].Reference, "toda operación compuesta etiqueta sus movimientos con una referencia")
}

// Caso 2: Import sobre un inventoryID inexistente → crea el registro
// implícitamente con la bodega por defecto y estado Active.
func TestImport_CreaRegistroImplicito(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")

	err := uc.Import(context.Background(), dto.ImportRequest{
		ProductID:   10,
		InventoryID: 7,
		Quantity:    30,
		UnitCost:    decimal.NewFromInt(12),
	})
	require.NoError(t, err)

	inv := s.inventory(t, 7)
	assert.Equal(t, entity.DefaultWarehouse, inv.Warehouse)
	assert.Equal(t, entity.InventoryStatusActive, inv.Status)
	assert.Equal(t, int64(30), inv.StockQuantity)

	movs := s.allMovements()
	require.Len(t, movs, 1)
	assert.Equal(t, int64(7), movs[0].InventoryID, "el movimiento debe apuntar al registro recién creado")
	assert.Equal(t, entity.RoleImport, movs[0].Role)
}

// Caso 3: cantidad cero no pasa la validación del body.
func TestImport_CantidadCero_Retorna_ErrInvalidInput(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")

	err := uc.Import(context.Background(), dto.ImportRequest{ProductID: 10, InventoryID: 1, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, s.allMovements(), "una petición inválida no debe escribir nada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Export
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Export con stock suficiente → resta y deja un movimiento con delta negativo.
func TestExport_RestaStockYRegistraDeltaNegativo(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")
	s.seedInventory(entity.Inventory{ID: 1, Warehouse: "Bodega Norte", StockQuantity: 50, Status: entity.InventoryStatusActive})

	err := uc.Export(context.Background(), dto.ExportRequest{ProductID: 10, InventoryID: 1, Quantity: 20})
	require.NoError(t, err)

	assert.Equal(t, int64(30), s.inventory(t, 1).StockQuantity)
	movs := s.allMovements()
	require.Len(t, movs, 1)
	assert.Equal(t, entity.RoleExport, movs[0].Role)
	assert.Equal(t, int64(-20), movs[0].Quantity, "la salida se registra como delta negativo")
}

// Caso 2: la salida puede dejar el stock exactamente en cero.
func TestExport_HastaCero(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")
	s.seedInventory(entity.Inventory{ID: 1, Warehouse: "Bodega Norte", StockQuantity: 20, Status: entity.InventoryStatusActive})

	err := uc.Export(context.Background(), dto.ExportRequest{ProductID: 10, InventoryID: 1, Quantity: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(0), s.inventory(t, 1).StockQuantity)
}

// Caso 3: stock insuficiente → error y ninguna mutación.
func TestExport_StockInsuficiente_NoMuta(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")
	s.seedInventory(entity.Inventory{ID: 1, Warehouse: "Bodega Norte", StockQuantity: 5, Status: entity.InventoryStatusActive})

	err := uc.Export(context.Background(), dto.ExportRequest{ProductID: 10, InventoryID: 1, Quantity: 6})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(5), s.inventory(t, 1).StockQuantity, "el stock no debe cambiar cuando la salida se rechaza")
	assert.Empty(t, s.allMovements(), "una salida rechazada no deja fila de auditoría")
}

// Caso 4: export contra un inventario inexistente se reporta como insuficiencia
// con disponible 0, no como not-found.
func TestExport_InventarioInexistente(t *testing.T) {
	uc, _ := newLedgerEnv()

	err := uc.Export(context.Background(), dto.ExportRequest{ProductID: 10, InventoryID: 99, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "disponible 0")
}

// Caso 5: exports concurrentes sobre el mismo registro se serializan y el
// stock nunca queda negativo: con 5 unidades y 10 salidas de 1, exactamente 5
// deben tener éxito.
func TestExport_Concurrente_NuncaNegativo(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")
	s.seedInventory(entity.Inventory{ID: 1, Warehouse: "Bodega Norte", StockQuantity: 5, Status: entity.InventoryStatusActive})

	const attempts = 10
	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- uc.Export(context.Background(), dto.ExportRequest{ProductID: 10, InventoryID: 1, Quantity: 1})
		}()
	}
	wg.Wait()
	close(results)

	var ok, insufficient int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrInsufficientStock):
			insufficient++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 5, ok, "deben pasar exactamente tantas salidas como unidades había")
	assert.Equal(t, 5, insufficient)
	assert.Equal(t, int64(0), s.inventory(t, 1).StockQuantity)
	assert.Len(t, s.allMovements(), 5, "solo las salidas aceptadas dejan movimiento")
}

// ──────────────────────────────────────────────────────────────────────────────
// Stocktaking
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el conteo físico fija el stock y la diferencia queda como movimiento.
func TestStocktaking_FijaStockYRegistraDiferencia(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")
	s.seedInventory(entity.Inventory{ID: 1, Warehouse: "Bodega Norte", StockQuantity: 50, Status: entity.InventoryStatusActive})

	err := uc.Stocktaking(context.Background(), dto.StocktakingRequest{InventoryID: 1, ProductID: 10, ActualQuantity: 44})
	require.NoError(t, err)

	assert.Equal(t, int64(44), s.inventory(t, 1).StockQuantity, "el conteo físico es autoritativo")
	movs := s.allMovements()
	require.Len(t, movs, 1)
	assert.Equal(t, entity.RoleStocktaking, movs[0].Role)
	assert.Equal(t, int64(-6), movs[0].Quantity, "la diferencia conteo-stock se audita con su signo")
}

// Caso 2: si el conteo coincide con el stock no se escribe fila de auditoría.
func TestStocktaking_SinDiferencia_NoEscribeMovimiento(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")
	s.seedInventory(entity.Inventory{ID: 1, Warehouse: "Bodega Norte", StockQuantity: 50, Status: entity.InventoryStatusActive})

	err := uc.Stocktaking(context.Background(), dto.StocktakingRequest{InventoryID: 1, ProductID: 10, ActualQuantity: 50})
	require.NoError(t, err)

	assert.Equal(t, int64(50), s.inventory(t, 1).StockQuantity)
	assert.Empty(t, s.allMovements())
}

// Caso 3: stocktaking exige que el registro exista (no hay creación implícita).
func TestStocktaking_InventarioInexistente_Retorna_ErrNotFound(t *testing.T) {
	uc, _ := newLedgerEnv()

	err := uc.Stocktaking(context.Background(), dto.StocktakingRequest{InventoryID: 99, ProductID: 10, ActualQuantity: 5})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos manuales — regla uniforme del delta
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el delta del movimiento ajusta el stock sin importar el rol.
func TestCreateMovement_AplicaDelta(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")
	s.seedInventory(entity.Inventory{ID: 1, Warehouse: "Bodega Norte", StockQuantity: 50, Status: entity.InventoryStatusActive})

	id, err := uc.CreateMovement(context.Background(), dto.MovementRequest{ProductID: 10, InventoryID: 1, Quantity: -8, Role: entity.RoleManual})
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.Equal(t, int64(42), s.inventory(t, 1).StockQuantity)

	// Un segundo movimiento con rol Export pero delta positivo también suma:
	// el rol es metadato, el signo manda.
	_, err = uc.CreateMovement(context.Background(), dto.MovementRequest{ProductID: 10, InventoryID: 1, Quantity: 3, Role: entity.RoleExport})
	require.NoError(t, err)
	assert.Equal(t, int64(45), s.inventory(t, 1).StockQuantity)
}

// Caso 2: rol vacío se normaliza a Manual; rol fuera del catálogo se rechaza.
func TestCreateMovement_Roles(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")
	s.seedInventory(entity.Inventory{ID: 1, Warehouse: "Bodega Norte", StockQuantity: 50, Status: entity.InventoryStatusActive})

	_, err := uc.CreateMovement(context.Background(), dto.MovementRequest{ProductID: 10, InventoryID: 1, Quantity: 1})
	require.NoError(t, err)
	movs := s.allMovements()
	require.Len(t, movs, 1)
	assert.Equal(t, entity.RoleManual, movs[0].Role, "rol ausente debe normalizarse a Manual")

	_, err = uc.CreateMovement(context.Background(), dto.MovementRequest{ProductID: 10, InventoryID: 1, Quantity: 1, Role: "Robo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso 3: llaves foráneas inexistentes.
func TestCreateMovement_ReferenciasInexistentes(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")
	s.seedInventory(entity.Inventory{ID: 1, Warehouse: "Bodega Norte", StockQuantity: 50, Status: entity.InventoryStatusActive})

	_, err := uc.CreateMovement(context.Background(), dto.MovementRequest{ProductID: 99, InventoryID: 1, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente")

	_, err = uc.CreateMovement(context.Background(), dto.MovementRequest{ProductID: 10, InventoryID: 99, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound, "inventario inexistente")
}

// Caso 4: un delta negativo mayor que el stock viola la no-negatividad y se
// rechaza sin dejar el movimiento insertado.
func TestCreateMovement_DeltaDejaNegativo_SeRechaza(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")
	s.seedInventory(entity.Inventory{ID: 1, Warehouse: "Bodega Norte", StockQuantity: 5, Status: entity.InventoryStatusActive})

	_, err := uc.CreateMovement(context.Background(), dto.MovementRequest{ProductID: 10, InventoryID: 1, Quantity: -6})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(5), s.inventory(t, 1).StockQuantity)
	assert.Empty(t, s.allMovements(), "el movimiento rechazado no debe quedar escrito")
}

// Caso 5: actualizar un movimiento reconcilia el stock con la diferencia entre
// la cantidad nueva y la anterior.
func TestUpdateMovement_ReconciliaDiferencia(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")
	s.seedInventory(entity.Inventory{ID: 1, Warehouse: "Bodega Norte", StockQuantity: 50, Status: entity.InventoryStatusActive})

	id, err := uc.CreateMovement(context.Background(), dto.MovementRequest{ProductID: 10, InventoryID: 1, Quantity: 10})
	require.NoError(t, err)
	require.Equal(t, int64(60), s.inventory(t, 1).StockQuantity)

	// De +10 a +4: el stock debe bajar 6.
	err = uc.UpdateMovement(context.Background(), id, dto.MovementRequest{ProductID: 10, InventoryID: 1, Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(54), s.inventory(t, 1).StockQuantity)

	movs := s.allMovements()
	require.Len(t, movs, 1)
	assert.Equal(t, int64(4), movs[0].Quantity)
}

// Caso 5b: mover un movimiento a otro inventario revierte el delta completo en
// el origen y lo aplica completo en el destino, y en ambos la suma de deltas
// sigue cuadrando con el stock.
func TestUpdateMovement_CambioDeInventario(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")
	s.seedInventory(entity.Inventory{ID: 1, Warehouse: "Bodega Norte", StockQuantity: 50, Status: entity.InventoryStatusActive})
	s.seedInventory(entity.Inventory{ID: 2, Warehouse: "Bodega Sur", StockQuantity: 50, Status: entity.InventoryStatusActive})

	id, err := uc.CreateMovement(context.Background(), dto.MovementRequest{ProductID: 10, InventoryID: 1, Quantity: 10})
	require.NoError(t, err)
	require.Equal(t, int64(60), s.inventory(t, 1).StockQuantity)

	err = uc.UpdateMovement(context.Background(), id, dto.MovementRequest{ProductID: 10, InventoryID: 2, Quantity: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(50), s.inventory(t, 1).StockQuantity, "el origen debe perder el delta que ya no lo referencia")
	assert.Equal(t, int64(60), s.inventory(t, 2).StockQuantity, "el destino recibe el delta completo, no la diferencia")

	movs := s.allMovements()
	require.Len(t, movs, 1)
	assert.Equal(t, int64(2), movs[0].InventoryID)

	// La suma por inventario cuadra con el stock por encima de la base sembrada.
	var sum1, sum2 int64
	for _, m := range movs {
		switch m.InventoryID {
		case 1:
			sum1 += m.Quantity
		case 2:
			sum2 += m.Quantity
		}
	}
	assert.Equal(t, s.inventory(t, 1).StockQuantity-50, sum1)
	assert.Equal(t, s.inventory(t, 2).StockQuantity-50, sum2)
}

// Caso 5c: si el origen ya consumió el stock que aportó el movimiento, la
// reversión dejaría el origen negativo y toda la operación se rechaza.
func TestUpdateMovement_CambioDeInventario_OrigenSinStock(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")
	s.seedInventory(entity.Inventory{ID: 1, Warehouse: "Bodega Norte", StockQuantity: 0, Status: entity.InventoryStatusActive})
	s.seedInventory(entity.Inventory{ID: 2, Warehouse: "Bodega Sur", StockQuantity: 50, Status: entity.InventoryStatusActive})

	id, err := uc.CreateMovement(context.Background(), dto.MovementRequest{ProductID: 10, InventoryID: 1, Quantity: 10})
	require.NoError(t, err)
	require.NoError(t, uc.Export(context.Background(), dto.ExportRequest{ProductID: 10, InventoryID: 1, Quantity: 10}))
	require.Equal(t, int64(0), s.inventory(t, 1).StockQuantity)

	err = uc.UpdateMovement(context.Background(), id, dto.MovementRequest{ProductID: 10, InventoryID: 2, Quantity: 10})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada cambió: el movimiento sigue en el origen y los stocks quedaron intactos.
	assert.Equal(t, int64(0), s.inventory(t, 1).StockQuantity)
	assert.Equal(t, int64(50), s.inventory(t, 2).StockQuantity)
	mov, err := (&fakeMovementRepo{s: s}).GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, mov)
	assert.Equal(t, int64(1), mov.InventoryID)
	assert.Equal(t, int64(10), mov.Quantity)
}

// Caso 6: borrar un movimiento revierte su delta.
func TestDeleteMovement_RevierteDelta(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")
	s.seedInventory(entity.Inventory{ID: 1, Warehouse: "Bodega Norte", StockQuantity: 50, Status: entity.InventoryStatusActive})

	id, err := uc.CreateMovement(context.Background(), dto.MovementRequest{ProductID: 10, InventoryID: 1, Quantity: 10})
	require.NoError(t, err)
	require.Equal(t, int64(60), s.inventory(t, 1).StockQuantity)

	require.NoError(t, uc.DeleteMovement(context.Background(), id))
	assert.Equal(t, int64(50), s.inventory(t, 1).StockQuantity, "borrar el movimiento debe deshacer su efecto")
	assert.Empty(t, s.allMovements())
}

func TestDeleteMovement_Inexistente_Retorna_ErrNotFound(t *testing.T) {
	uc, _ := newLedgerEnv()
	err := uc.DeleteMovement(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD de registros de inventario
// ──────────────────────────────────────────────────────────────────────────────

// Crear con producto vinculado deja un movimiento Initial con el stock inicial.
func TestCreate_ConProducto_RegistraMovimientoInitial(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")
	pid := int64(10)

	id, err := uc.Create(context.Background(), dto.CreateInventoryRequest{
		Warehouse:     "Bodega Sur",
		StockQuantity: 40,
		UnitCost:      decimal.NewFromInt(15),
		ProductID:     &pid,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	movs := s.allMovements()
	require.Len(t, movs, 1)
	assert.Equal(t, entity.RoleInitial, movs[0].Role)
	assert.Equal(t, int64(40), movs[0].Quantity, "el movimiento Initial lleva el stock de apertura")
	assert.Equal(t, id, movs[0].InventoryID)
}

// Crear contra un producto inexistente no deja ni registro ni movimiento.
func TestCreate_ProductoInexistente_Retorna_ErrReferenceNotFound(t *testing.T) {
	uc, s := newLedgerEnv()
	pid := int64(99)

	_, err := uc.Create(context.Background(), dto.CreateInventoryRequest{
		Warehouse:     "Bodega Sur",
		StockQuantity: 40,
		ProductID:     &pid,
	})
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)

	s.mu.Lock()
	assert.Empty(t, s.inventories, "el registro no debe persistir si la referencia falla")
	s.mu.Unlock()
}

func TestUpdate_InventarioInexistente_Retorna_ErrNotFound(t *testing.T) {
	uc, _ := newLedgerEnv()
	err := uc.Update(context.Background(), 99, dto.UpdateInventoryRequest{Warehouse: "Bodega Sur"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Update con producto: si ya hay movimiento para la pareja se sobrescribe su
// delta; si no, se inserta uno con rol Update.
func TestUpdate_ConProducto_SobrescribeOMenciona(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")
	s.seedInventory(entity.Inventory{ID: 1, Warehouse: "Bodega Norte", StockQuantity: 50, Status: entity.InventoryStatusActive})
	pid := int64(10)

	err := uc.Update(context.Background(), 1, dto.UpdateInventoryRequest{Warehouse: "Bodega Norte", StockQuantity: 60, ProductID: &pid})
	require.NoError(t, err)

	movs := s.allMovements()
	require.Len(t, movs, 1, "sin movimiento previo debe insertarse uno nuevo")
	assert.Equal(t, entity.RoleUpdate, movs[0].Role)
	assert.Equal(t, int64(60), movs[0].Quantity)

	err = uc.Update(context.Background(), 1, dto.UpdateInventoryRequest{Warehouse: "Bodega Norte", StockQuantity: 55, ProductID: &pid})
	require.NoError(t, err)

	movs = s.allMovements()
	require.Len(t, movs, 1, "con movimiento previo se sobrescribe en vez de insertar")
	assert.Equal(t, int64(55), movs[0].Quantity)
	assert.Equal(t, int64(55), s.inventory(t, 1).StockQuantity)
}

// Borrar un registro referenciado por movimientos se bloquea con ErrConflict.
func TestDelete_BloqueadoPorMovimientos(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")
	s.seedInventory(entity.Inventory{ID: 1, Warehouse: "Bodega Norte", StockQuantity: 50, Status: entity.InventoryStatusActive})

	require.NoError(t, uc.Import(context.Background(), dto.ImportRequest{ProductID: 10, InventoryID: 1, Quantity: 5}))

	err := uc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrConflict)
	s.inventory(t, 1) // sigue existiendo
}

func TestDelete_SinMovimientos_Elimina(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedInventory(entity.Inventory{ID: 1, Warehouse: "Bodega Norte", Status: entity.InventoryStatusActive})

	require.NoError(t, uc.Delete(context.Background(), 1))

	s.mu.Lock()
	_, ok := s.inventories[1]
	s.mu.Unlock()
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad e invariante del ledger
// ──────────────────────────────────────────────────────────────────────────────

// Si el insert del movimiento falla, el ajuste de stock tampoco debe quedar:
// o entran juntos o ninguno.
func TestImport_FalloEnMovimiento_NoDejaEscrituraParcial(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")
	s.seedInventory(entity.Inventory{ID: 1, Warehouse: "Bodega Norte", StockQuantity: 50, Status: entity.InventoryStatusActive})
	s.failMovementCreate = true

	err := uc.Import(context.Background(), dto.ImportRequest{ProductID: 10, InventoryID: 1, Quantity: 25})
	require.Error(t, err)

	assert.Equal(t, int64(50), s.inventory(t, 1).StockQuantity, "el stock no debe cambiar si el movimiento no se insertó")
	assert.Empty(t, s.allMovements())
}

// Tras una secuencia de operaciones, la suma de los deltas de los movimientos
// debe cuadrar con el stock del registro.
func TestLedger_SumaDeMovimientosCuadraConStock(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")
	ctx := context.Background()

	require.NoError(t, uc.Import(ctx, dto.ImportRequest{ProductID: 10, InventoryID: 1, Quantity: 100}))
	require.NoError(t, uc.Export(ctx, dto.ExportRequest{ProductID: 10, InventoryID: 1, Quantity: 30}))
	_, err := uc.CreateMovement(ctx, dto.MovementRequest{ProductID: 10, InventoryID: 1, Quantity: -5})
	require.NoError(t, err)
	require.NoError(t, uc.Stocktaking(ctx, dto.StocktakingRequest{InventoryID: 1, ProductID: 10, ActualQuantity: 60}))

	var sum int64
	for _, m := range s.allMovements() {
		sum += m.Quantity
	}
	inv := s.inventory(t, 1)
	assert.Equal(t, inv.StockQuantity, sum, "reproducir los movimientos debe reconstruir el stock")
	assert.Equal(t, int64(60), inv.StockQuantity)
}

// List vincula cada registro con los productos observados en sus movimientos.
func TestList_VinculaProductoPorMovimientos(t *testing.T) {
	uc, s := newLedgerEnv()
	s.seedProduct(10, "Casco integral")
	ctx := context.Background()

	require.NoError(t, uc.Import(ctx, dto.ImportRequest{ProductID: 10, InventoryID: 1, Quantity: 10}))
	s.seedInventory(entity.Inventory{ID: 2, Warehouse: "Bodega Sur", Status: entity.InventoryStatusActive})

	rows, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].ProductID)
	assert.Equal(t, int64(10), *rows[0].ProductID)
	require.NotNil(t, rows[0].ProductName)
	assert.Equal(t, "Casco integral", *rows[0].ProductName)

	assert.Nil(t, rows[1].ProductID, "un registro sin movimientos lista sin producto")
}
