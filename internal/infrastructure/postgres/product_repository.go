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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = "id, name, price_each, line, scale, brand, description, warranty_period, msrp"

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.PriceEach, &p.Line, &p.Scale, &p.Brand,
		&p.Description, &p.WarrantyPeriod, &p.MSRP,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un producto y escribe el ID asignado en la entidad.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (name, price_each, line, scale, brand, description, warranty_period, msrp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.Name, p.PriceEach, p.Line, p.Scale, p.Brand, p.Description, p.WarrantyPeriod, p.MSRP,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Retorna nil si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Exists verificación ligera de existencia (para chequeos de referencia).
func (r *ProductRepo) Exists(id int64) (bool, error) {
	var one int
	err := r.q.QueryRow(context.Background(), `SELECT 1 FROM products WHERE id = $1`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("product exists: %w", err)
	}
	return true, nil
}

// Update reescribe todos los campos del producto.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products
		SET name = $1, price_each = $2, line = $3, scale = $4, brand = $5,
		    description = $6, warranty_period = $7, msrp = $8
		WHERE id = $9`
	tag, err := r.q.Exec(context.Background(), query,
		p.Name, p.PriceEach, p.Line, p.Scale, p.Brand, p.Description, p.WarrantyPeriod, p.MSRP, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: producto %d", domain.ErrNotFound, p.ID)
	}
	return nil
}

// Delete borra un producto por ID. La DB rechaza el borrado si hay referencias.
func (r *ProductRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el producto está en uso", domain.ErrConflict)
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
	}
	return nil
}

// List lista productos con búsqueda opcional (nombre, marca, línea) y filtro por línea.
func (r *ProductRepo) List(search, category string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	var args []any
	var where []string
	if search != "" {
		args = append(args, "%"+search+"%")
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR brand ILIKE $%d OR line ILIKE $%d)", len(args), len(args), len(args)))
	}
	if category != "" {
		args = append(args, category)
		where = append(where, fmt.Sprintf("line = $%d", len(args)))
	}
	for i, w := range where {
		if i == 0 {
			query += " WHERE " + w
		} else {
			query += " AND " + w
		}
	}
	query += " ORDER BY id"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		var p entity.Product
		err := rows.Scan(
			&p.ID, &p.Name, &p.PriceEach, &p.Line, &p.Scale, &p.Brand,
			&p.Description, &p.WarrantyPeriod, &p.MSRP,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// InventoryView lista las bodegas donde el producto tiene movimientos, con el
// movimiento correspondiente, más recientes primero.
func (r *ProductRepo) InventoryView(productID int64) ([]*entity.ProductInventoryView, error) {
	query := `
		SELECT i.id, i.warehouse, i.max_stock_level, i.stock_quantity, i.unit_cost,
		       i.last_updated, i.note, i.status,
		       s.date, s.quantity, s.role
		FROM inventories i
		INNER JOIN stock_movements s ON i.id = s.inventory_id
		WHERE s.product_id = $1
		ORDER BY s.date DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("product inventory view: %w", err)
	}
	defer rows.Close()

	var out []*entity.ProductInventoryView
	for rows.Next() {
		var v entity.ProductInventoryView
		err := rows.Scan(
			&v.ID, &v.Warehouse, &v.MaxStockLevel, &v.StockQuantity, &v.UnitCost,
			&v.LastUpdated, &v.Note, &v.Status,
			&v.MovementDate, &v.MovementQuantity, &v.MovementRole,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product inventory: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}

// ListCategories lista las líneas de producto distintas.
func (r *ProductRepo) ListCategories() ([]*entity.Category, error) {
	query := `SELECT DISTINCT line FROM products WHERE line <> '' ORDER BY line`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// CategoriesWithCount lista las líneas de producto con el número de productos de cada una.
func (r *ProductRepo) CategoriesWithCount() ([]*entity.Category, error) {
	query := `
		SELECT line, COUNT(*) FROM products
		WHERE line <> ''
		GROUP BY line
		ORDER BY line`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("categories with count: %w", err)
	}
	defer rows.Close()

	var out []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.Name, &c.ProductCount); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
