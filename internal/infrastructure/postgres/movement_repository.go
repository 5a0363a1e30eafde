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

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento de stock y escribe el ID asignado en la entidad.
func (r *MovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (product_id, inventory_id, date, quantity, role, reference)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		m.ProductID, m.InventoryID, m.Date, m.Quantity, m.Role, m.Reference,
	).Scan(&m.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: producto o inventario del movimiento", domain.ErrReferenceNotFound)
		}
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Retorna nil si no existe.
func (r *MovementRepo) GetByID(id int64) (*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, inventory_id, date, quantity, role, reference
		FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.InventoryID, &m.Date, &m.Quantity, &m.Role, &m.Reference,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return &m, nil
}

// GetByInventoryAndProduct retorna el movimiento más reciente de la pareja
// (inventario, producto), o nil si no existe.
func (r *MovementRepo) GetByInventoryAndProduct(inventoryID, productID int64) (*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, inventory_id, date, quantity, role, reference
		FROM stock_movements
		WHERE inventory_id = $1 AND product_id = $2
		ORDER BY date DESC, id DESC
		LIMIT 1`
	var m entity.StockMovement
	err := r.q.QueryRow(context.Background(), query, inventoryID, productID).Scan(
		&m.ID, &m.ProductID, &m.InventoryID, &m.Date, &m.Quantity, &m.Role, &m.Reference,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement by inventory and product: %w", err)
	}
	return &m, nil
}

// Update reescribe un movimiento existente (ruta administrativa).
func (r *MovementRepo) Update(m *entity.StockMovement) error {
	query := `
		UPDATE stock_movements
		SET product_id = $1, inventory_id = $2, date = $3, quantity = $4, role = $5
		WHERE id = $6`
	tag, err := r.q.Exec(context.Background(), query,
		m.ProductID, m.InventoryID, m.Date, m.Quantity, m.Role, m.ID,
	)
	if err != nil {
		return fmt.Errorf("update stock movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: movimiento %d", domain.ErrNotFound, m.ID)
	}
	return nil
}

// Delete borra un movimiento por ID.
func (r *MovementRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM stock_movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: movimiento %d", domain.ErrNotFound, id)
	}
	return nil
}

const movementDetailQuery = `
	SELECT s.id, s.product_id, s.inventory_id, s.date, s.quantity, s.role, s.reference,
	       p.name, p.line, p.brand,
	       i.warehouse, i.stock_quantity
	FROM stock_movements s
	LEFT JOIN products p ON s.product_id = p.id
	LEFT JOIN inventories i ON s.inventory_id = i.id`

func (r *MovementRepo) queryDetails(query string, args ...any) ([]*entity.MovementWithDetails, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var out []*entity.MovementWithDetails
	for rows.Next() {
		var m entity.MovementWithDetails
		err := rows.Scan(
			&m.ID, &m.ProductID, &m.InventoryID, &m.Date, &m.Quantity, &m.Role, &m.Reference,
			&m.ProductName, &m.ProductLine, &m.ProductBrand,
			&m.Warehouse, &m.InventoryStock,
		)
		if err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// ListAll lista todos los movimientos con detalles, más recientes primero.
func (r *MovementRepo) ListAll() ([]*entity.MovementWithDetails, error) {
	return r.queryDetails(movementDetailQuery + ` ORDER BY s.date DESC, s.id DESC`)
}

// ListByProduct lista los movimientos de un producto, más recientes primero.
func (r *MovementRepo) ListByProduct(productID int64) ([]*entity.MovementWithDetails, error) {
	return r.queryDetails(movementDetailQuery+` WHERE s.product_id = $1 ORDER BY s.date DESC, s.id DESC`, productID)
}

// ListByInventory lista los movimientos de una bodega, más recientes primero.
func (r *MovementRepo) ListByInventory(inventoryID int64) ([]*entity.MovementWithDetails, error) {
	return r.queryDetails(movementDetailQuery+` WHERE s.inventory_id = $1 ORDER BY s.date DESC, s.id DESC`, inventoryID)
}

// CountByInventory cuenta los movimientos que referencian una bodega.
func (r *MovementRepo) CountByInventory(inventoryID int64) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM stock_movements WHERE inventory_id = $1`, inventoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count movements by inventory: %w", err)
	}
	return count, nil
}

// CountByProduct cuenta los movimientos que referencian un producto.
func (r *MovementRepo) CountByProduct(productID int64) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM stock_movements WHERE product_id = $1`, productID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count movements by product: %w", err)
	}
	return count, nil
}
