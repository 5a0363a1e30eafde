package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository sobre PostgreSQL (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un pago y escribe el ID asignado en la entidad.
func (r *PaymentRepo) Create(p *entity.Payment) error {
	query := `
		INSERT INTO payments (order_id, transaction_amount, payment_method, transaction_date, transaction_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.OrderID, p.TransactionAmount, p.PaymentMethod, p.TransactionDate, p.TransactionStatus,
	).Scan(&p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: pedido del pago", domain.ErrReferenceNotFound)
		}
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

// Update reescribe un pago existente; la fecha de transacción se refresca.
func (r *PaymentRepo) Update(p *entity.Payment) error {
	query := `
		UPDATE payments
		SET order_id = $1, transaction_amount = $2, payment_method = $3,
		    transaction_date = $4, transaction_status = $5
		WHERE id = $6`
	tag, err := r.q.Exec(context.Background(), query,
		p.OrderID, p.TransactionAmount, p.PaymentMethod, p.TransactionDate, p.TransactionStatus, p.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: pedido del pago", domain.ErrReferenceNotFound)
		}
		return fmt.Errorf("update payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: pago %d", domain.ErrNotFound, p.ID)
	}
	return nil
}

// Delete borra un pago por ID.
func (r *PaymentRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: pago %d", domain.ErrNotFound, id)
	}
	return nil
}

// ListAll lista todos los pagos, más recientes primero.
func (r *PaymentRepo) ListAll() ([]*entity.Payment, error) {
	query := `
		SELECT id, order_id, transaction_amount, payment_method, transaction_date, transaction_status
		FROM payments
		ORDER BY transaction_date DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var out []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		err := rows.Scan(&p.ID, &p.OrderID, &p.TransactionAmount, &p.PaymentMethod, &p.TransactionDate, &p.TransactionStatus)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
