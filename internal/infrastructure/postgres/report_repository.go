package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación para reportes (solo lectura).
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// Revenue agrega ingresos por día, con desglose pagado/no pagado.
// Fechas nil significan sin límite por ese lado.
func (r *ReportRepo) Revenue(from, to *time.Time) ([]*entity.RevenueRow, error) {
	query := `
		SELECT DATE(o.order_date) AS date,
		       COUNT(DISTINCT o.id),
		       COALESCE(SUM(o.total_amount), 0),
		       COALESCE(SUM(CASE WHEN o.payment_status = 'Paid' THEN o.total_amount ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN o.payment_status <> 'Paid' THEN o.total_amount ELSE 0 END), 0)
		FROM orders o`
	var args []any
	var where []string
	if from != nil {
		args = append(args, *from)
		where = append(where, fmt.Sprintf("o.order_date >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, *to)
		where = append(where, fmt.Sprintf("o.order_date <= $%d", len(args)))
	}
	for i, w := range where {
		if i == 0 {
			query += " WHERE " + w
		} else {
			query += " AND " + w
		}
	}
	query += `
		GROUP BY DATE(o.order_date)
		ORDER BY date DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("revenue report: %w", err)
	}
	defer rows.Close()

	var out []*entity.RevenueRow
	for rows.Next() {
		var row entity.RevenueRow
		err := rows.Scan(&row.Date, &row.OrderCount, &row.TotalRevenue, &row.PaidAmount, &row.UnpaidAmount)
		if err != nil {
			return nil, fmt.Errorf("scan revenue row: %w", err)
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}

// TopProducts lista los productos más vendidos por cantidad en el rango consultado.
func (r *ReportRepo) TopProducts(limit int, from, to *time.Time) ([]*entity.TopProductRow, error) {
	query := `
		SELECT p.id, p.name, p.line, p.brand,
		       SUM(req.quantity_ordered),
		       SUM(req.quantity_ordered * p.price_each)
		FROM products p
		INNER JOIN order_requests req ON p.id = req.product_id
		INNER JOIN orders o ON req.order_id = o.id`
	var args []any
	var where []string
	if from != nil {
		args = append(args, *from)
		where = append(where, fmt.Sprintf("o.order_date >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, *to)
		where = append(where, fmt.Sprintf("o.order_date <= $%d", len(args)))
	}
	for i, w := range where {
		if i == 0 {
			query += " WHERE " + w
		} else {
			query += " AND " + w
		}
	}
	args = append(args, limit)
	query += fmt.Sprintf(`
		GROUP BY p.id, p.name, p.line, p.brand
		ORDER BY SUM(req.quantity_ordered) DESC
		LIMIT $%d`, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("top products report: %w", err)
	}
	defer rows.Close()

	var out []*entity.TopProductRow
	for rows.Next() {
		var row entity.TopProductRow
		err := rows.Scan(&row.ProductID, &row.ProductName, &row.ProductLine, &row.ProductBrand,
			&row.TotalQuantitySold, &row.TotalRevenue)
		if err != nil {
			return nil, fmt.Errorf("scan top product row: %w", err)
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}

// InventoryReport lista el estado de stock por registro de inventario.
// El umbral de Low Stock es el 20% del nivel máximo.
func (r *ReportRepo) InventoryReport() ([]*entity.InventoryReportRow, error) {
	query := `
		SELECT i.id, i.warehouse, s.product_id, p.name,
		       i.stock_quantity, i.max_stock_level, i.unit_cost,
		       i.stock_quantity * i.unit_cost AS total_value,
		       CASE
		           WHEN i.stock_quantity = 0 THEN 'Out of Stock'
		           WHEN i.max_stock_level > 0 AND i.stock_quantity < i.max_stock_level * 0.2 THEN 'Low Stock'
		           ELSE 'In Stock'
		       END AS status
		FROM inventories i
		LEFT JOIN (
			SELECT DISTINCT inventory_id, product_id
			FROM stock_movements
			WHERE product_id IS NOT NULL
		) s ON i.id = s.inventory_id
		LEFT JOIN products p ON s.product_id = p.id
		ORDER BY i.warehouse, p.name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("inventory report: %w", err)
	}
	defer rows.Close()

	var out []*entity.InventoryReportRow
	for rows.Next() {
		var row entity.InventoryReportRow
		err := rows.Scan(&row.InventoryID, &row.Warehouse, &row.ProductID, &row.ProductName,
			&row.StockQuantity, &row.MaxStockLevel, &row.UnitCost, &row.TotalValue, &row.Status)
		if err != nil {
			return nil, fmt.Errorf("scan inventory report row: %w", err)
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}

// Summary calcula los totales principales del negocio en una sola consulta.
func (r *ReportRepo) Summary() (*entity.Summary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders),
			COALESCE((SELECT SUM(total_amount) FROM orders WHERE payment_status = 'Paid'), 0),
			COALESCE((
				SELECT SUM(o.total_amount - COALESCE(p.paid_amount, 0))
				FROM orders o
				LEFT JOIN (
					SELECT order_id, SUM(transaction_amount) AS paid_amount
					FROM payments
					GROUP BY order_id
				) p ON o.id = p.order_id
				WHERE o.payment_status <> 'Paid'
			), 0),
			COALESCE((SELECT SUM(stock_quantity * unit_cost) FROM inventories), 0)`
	var s entity.Summary
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.TotalCustomers, &s.TotalProducts, &s.TotalOrders,
		&s.TotalRevenue, &s.TotalDebts, &s.TotalInventoryValue,
	)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	return &s, nil
}
