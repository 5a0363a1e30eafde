package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.RequestRepository = (*RequestRepo)(nil)

// RequestRepo implementación de RequestRepository (líneas de pedido) sobre PostgreSQL.
type RequestRepo struct {
	q Querier
}

// NewRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRequestRepository(q Querier) *RequestRepo {
	return &RequestRepo{q: q}
}

// Create persiste una línea de pedido y escribe el ID asignado en la entidad.
func (r *RequestRepo) Create(req *entity.OrderRequest) error {
	query := `
		INSERT INTO order_requests (order_id, product_id, quantity_ordered, discount, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		req.OrderID, req.ProductID, req.QuantityOrdered, req.Discount, req.Note,
	).Scan(&req.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: pedido o producto de la línea", domain.ErrReferenceNotFound)
		}
		return fmt.Errorf("create order request: %w", err)
	}
	return nil
}

// Update reescribe una línea de pedido existente.
func (r *RequestRepo) Update(req *entity.OrderRequest) error {
	query := `
		UPDATE order_requests
		SET order_id = $1, product_id = $2, quantity_ordered = $3, discount = $4, note = $5
		WHERE id = $6`
	tag, err := r.q.Exec(context.Background(), query,
		req.OrderID, req.ProductID, req.QuantityOrdered, req.Discount, req.Note, req.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: pedido o producto de la línea", domain.ErrReferenceNotFound)
		}
		return fmt.Errorf("update order request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: línea %d", domain.ErrNotFound, req.ID)
	}
	return nil
}

// Delete borra una línea por ID.
func (r *RequestRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM order_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: línea %d", domain.ErrNotFound, id)
	}
	return nil
}

const requestColumns = "id, order_id, product_id, quantity_ordered, discount, note"

func (r *RequestRepo) queryRequests(query string, args ...any) ([]*entity.OrderRequest, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list order requests: %w", err)
	}
	defer rows.Close()

	var out []*entity.OrderRequest
	for rows.Next() {
		var req entity.OrderRequest
		err := rows.Scan(&req.ID, &req.OrderID, &req.ProductID, &req.QuantityOrdered, &req.Discount, &req.Note)
		if err != nil {
			return nil, fmt.Errorf("scan order request: %w", err)
		}
		out = append(out, &req)
	}
	return out, rows.Err()
}

// ListAll lista todas las líneas de pedido.
func (r *RequestRepo) ListAll() ([]*entity.OrderRequest, error) {
	return r.queryRequests(`SELECT ` + requestColumns + ` FROM order_requests ORDER BY id`)
}

// ListByOrder lista las líneas de un pedido.
func (r *RequestRepo) ListByOrder(orderID int64) ([]*entity.OrderRequest, error) {
	return r.queryRequests(`SELECT `+requestColumns+` FROM order_requests WHERE order_id = $1 ORDER BY id`, orderID)
}

// CountByProduct cuenta las líneas que referencian un producto.
func (r *RequestRepo) CountByProduct(productID int64) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM order_requests WHERE product_id = $1`, productID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count requests by product: %w", err)
	}
	return count, nil
}
