package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = "id, total_amount, order_date, order_status, payment_status, pickup_method, shipped_date, shipped_status, customer_id, staff_id"

// Create persiste un pedido y escribe el ID asignado en la entidad.
func (r *OrderRepo) Create(o *entity.Order) error {
	query := `
		INSERT INTO orders (total_amount, order_date, order_status, payment_status, pickup_method, shipped_date, shipped_status, customer_id, staff_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		o.TotalAmount, o.OrderDate, o.OrderStatus, o.PaymentStatus,
		o.PickupMethod, o.ShippedDate, o.ShippedStatus, o.CustomerID, o.StaffID,
	).Scan(&o.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: cliente o empleado del pedido", domain.ErrReferenceNotFound)
		}
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

// Update reescribe los campos mutables del pedido.
func (r *OrderRepo) Update(o *entity.Order) error {
	query := `
		UPDATE orders
		SET order_status = $1, payment_status = $2, pickup_method = $3,
		    shipped_status = $4, shipped_date = $5, total_amount = $6
		WHERE id = $7`
	tag, err := r.q.Exec(context.Background(), query,
		o.OrderStatus, o.PaymentStatus, o.PickupMethod,
		o.ShippedStatus, o.ShippedDate, o.TotalAmount, o.ID,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: pedido %d", domain.ErrNotFound, o.ID)
	}
	return nil
}

// Delete borra un pedido por ID.
func (r *OrderRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el pedido tiene líneas o pagos", domain.ErrConflict)
		}
		return fmt.Errorf("delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: pedido %d", domain.ErrNotFound, id)
	}
	return nil
}

func (r *OrderRepo) queryOrders(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.Order
	for rows.Next() {
		var o entity.Order
		err := rows.Scan(
			&o.ID, &o.TotalAmount, &o.OrderDate, &o.OrderStatus, &o.PaymentStatus,
			&o.PickupMethod, &o.ShippedDate, &o.ShippedStatus, &o.CustomerID, &o.StaffID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}

// List lista pedidos con filtros opcionales de búsqueda, estado y cliente.
func (r *OrderRepo) List(filter repository.OrderFilter) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	var args []any
	var where []string
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("order_status = $%d", len(args)))
	}
	if filter.CustomerID != 0 {
		args = append(args, filter.CustomerID)
		where = append(where, fmt.Sprintf("customer_id = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where = append(where, fmt.Sprintf("(CAST(id AS TEXT) LIKE $%d OR pickup_method ILIKE $%d)", len(args), len(args)))
	}
	for i, w := range where {
		if i == 0 {
			query += " WHERE " + w
		} else {
			query += " AND " + w
		}
	}
	query += " ORDER BY order_date DESC, id DESC"
	return r.queryOrders(query, args...)
}

// ListByCustomer lista los pedidos de un cliente, más recientes primero.
func (r *OrderRepo) ListByCustomer(customerID int64) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = $1 ORDER BY order_date DESC, id DESC`
	return r.queryOrders(query, customerID)
}
