package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = "id, warehouse, max_stock_level, stock_quantity, unit_cost, last_updated, note, status"

// Reintentos del INSERT con ID autoasignado cuando la secuencia alcanza un ID
// ya ocupado por una fila insertada con ID explícito.
const createIDRetries = 3

func scanInventory(row pgx.Row) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := row.Scan(
		&inv.ID, &inv.Warehouse, &inv.MaxStockLevel, &inv.StockQuantity,
		&inv.UnitCost, &inv.LastUpdated, &inv.Note, &inv.Status,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetByID obtiene un registro de inventario por ID. Retorna nil si no existe.
func (r *InventoryRepo) GetByID(id int64) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventories WHERE id = $1`
	inv, err := scanInventory(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return inv, nil
}

// GetForUpdate obtiene el registro y bloquea la fila (SELECT FOR UPDATE).
// Retorna nil si no existe.
func (r *InventoryRepo) GetForUpdate(id int64) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventories WHERE id = $1 FOR UPDATE`
	inv, err := scanInventory(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return inv, nil
}

// Create persiste un registro de inventario. Si inv.ID es 0 deja que la DB
// asigne el ID y lo escribe de vuelta en la entidad.
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	if inv.ID != 0 {
		query := `
			INSERT INTO inventories (id, warehouse, max_stock_level, stock_quantity, unit_cost, last_updated, note, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
		_, err := r.q.Exec(context.Background(), query,
			inv.ID, inv.Warehouse, inv.MaxStockLevel, inv.StockQuantity,
			inv.UnitCost, inv.LastUpdated, inv.Note, inv.Status,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: inventario %d ya existe", domain.ErrDuplicate, inv.ID)
			}
			return fmt.Errorf("create inventory: %w", err)
		}
		return nil
	}
	query := `
		INSERT INTO inventories (warehouse, max_stock_level, stock_quantity, unit_cost, last_updated, note, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	// La secuencia puede chocar con IDs insertados explícitamente (importación);
	// cada intento fallido la avanza, así que unos pocos reintentos la desatascan.
	var err error
	for intento := 0; intento < createIDRetries; intento++ {
		err = r.q.QueryRow(context.Background(), query,
			inv.Warehouse, inv.MaxStockLevel, inv.StockQuantity,
			inv.UnitCost, inv.LastUpdated, inv.Note, inv.Status,
		).Scan(&inv.ID)
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			break
		}
	}
	return fmt.Errorf("create inventory: %w", err)
}

// Update reescribe todos los campos mutables del registro.
func (r *InventoryRepo) Update(inv *entity.Inventory) error {
	query := `
		UPDATE inventories
		SET warehouse = $1, max_stock_level = $2, stock_quantity = $3, unit_cost = $4,
		    last_updated = $5, note = $6, status = $7
		WHERE id = $8`
	tag, err := r.q.Exec(context.Background(), query,
		inv.Warehouse, inv.MaxStockLevel, inv.StockQuantity, inv.UnitCost,
		inv.LastUpdated, inv.Note, inv.Status, inv.ID,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: inventario %d", domain.ErrNotFound, inv.ID)
	}
	return nil
}

// Delete borra el registro por ID.
func (r *InventoryRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM inventories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: inventario %d", domain.ErrNotFound, id)
	}
	return nil
}

// ListWithProducts lista los registros con el producto vinculado por movimientos
// (si lo hay), ordenados por ID.
func (r *InventoryRepo) ListWithProducts() ([]*entity.InventoryWithProduct, error) {
	query := `
		SELECT i.id, i.warehouse, i.max_stock_level, i.stock_quantity, i.unit_cost,
		       i.last_updated, i.note, i.status,
		       s.product_id, p.name, p.line, p.brand
		FROM inventories i
		LEFT JOIN (
			SELECT DISTINCT inventory_id, product_id
			FROM stock_movements
			WHERE product_id IS NOT NULL
		) s ON i.id = s.inventory_id
		LEFT JOIN products p ON s.product_id = p.id
		ORDER BY i.id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	defer rows.Close()

	var out []*entity.InventoryWithProduct
	for rows.Next() {
		var row entity.InventoryWithProduct
		err := rows.Scan(
			&row.ID, &row.Warehouse, &row.MaxStockLevel, &row.StockQuantity,
			&row.UnitCost, &row.LastUpdated, &row.Note, &row.Status,
			&row.ProductID, &row.ProductName, &row.ProductLine, &row.ProductBrand,
		)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}
