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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = "id, name, phone, email, address, postal_code, type, loyal_point, loyal_level, password_hash"

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.PostalCode,
		&c.Type, &c.LoyalPoint, &c.LoyalLevel, &c.PasswordHash,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un cliente y escribe el ID asignado en la entidad.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	query := `
		INSERT INTO customers (name, phone, email, address, postal_code, type, loyal_point, loyal_level, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		c.Name, c.Phone, c.Email, c.Address, c.PostalCode,
		c.Type, c.LoyalPoint, c.LoyalLevel, c.PasswordHash,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: teléfono o email de cliente", domain.ErrDuplicate)
		}
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Retorna nil si no existe.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// GetByPhoneOrEmail busca un cliente cuyo teléfono o email coincida con el
// identificador. Retorna nil si no existe.
func (r *CustomerRepo) GetByPhoneOrEmail(identifier string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE phone = $1 OR email = $1`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by phone or email: %w", err)
	}
	return c, nil
}

// Update reescribe los datos de contacto del cliente.
func (r *CustomerRepo) Update(c *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $1, phone = $2, email = $3, address = $4, postal_code = $5
		WHERE id = $6`
	tag, err := r.q.Exec(context.Background(), query,
		c.Name, c.Phone, c.Email, c.Address, c.PostalCode, c.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: teléfono o email de cliente", domain.ErrDuplicate)
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: cliente %d", domain.ErrNotFound, c.ID)
	}
	return nil
}

// Delete borra un cliente por ID.
func (r *CustomerRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el cliente tiene pedidos", domain.ErrConflict)
		}
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: cliente %d", domain.ErrNotFound, id)
	}
	return nil
}

// List lista clientes con búsqueda opcional por nombre, teléfono o email.
func (r *CustomerRepo) List(search string) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers`
	var args []any
	if search != "" {
		query += ` WHERE name ILIKE $1 OR phone ILIKE $1 OR email ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY id`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var out []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		err := rows.Scan(
			&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.PostalCode,
			&c.Type, &c.LoyalPoint, &c.LoyalLevel, &c.PasswordHash,
		)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		c.PasswordHash = ""
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Debts lista los pedidos con saldo pendiente de un cliente.
func (r *CustomerRepo) Debts(customerID int64) ([]*entity.CustomerDebt, error) {
	query := `
		SELECT o.id, o.total_amount, o.order_date,
		       COALESCE(SUM(p.transaction_amount), 0) AS paid_amount,
		       o.total_amount - COALESCE(SUM(p.transaction_amount), 0) AS debt_amount
		FROM orders o
		LEFT JOIN payments p ON o.id = p.order_id
		WHERE o.customer_id = $1 AND o.payment_status <> 'Paid'
		GROUP BY o.id, o.total_amount, o.order_date
		HAVING o.total_amount - COALESCE(SUM(p.transaction_amount), 0) > 0`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer debts: %w", err)
	}
	defer rows.Close()

	var out []*entity.CustomerDebt
	for rows.Next() {
		var d entity.CustomerDebt
		err := rows.Scan(&d.OrderID, &d.TotalAmount, &d.OrderDate, &d.PaidAmount, &d.DebtAmount)
		if err != nil {
			return nil, fmt.Errorf("scan debt: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// AllDebts lista la deuda total acumulada por cliente.
func (r *CustomerRepo) AllDebts() ([]*entity.DebtSummary, error) {
	query := `
		SELECT c.id, c.name, c.phone,
		       SUM(o.total_amount - COALESCE(p.paid_amount, 0)) AS total_debt
		FROM customers c
		INNER JOIN orders o ON c.id = o.customer_id
		LEFT JOIN (
			SELECT order_id, SUM(transaction_amount) AS paid_amount
			FROM payments
			GROUP BY order_id
		) p ON o.id = p.order_id
		WHERE o.payment_status <> 'Paid'
		GROUP BY c.id, c.name, c.phone
		HAVING SUM(o.total_amount - COALESCE(p.paid_amount, 0)) > 0`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("all debts: %w", err)
	}
	defer rows.Close()

	var out []*entity.DebtSummary
	for rows.Next() {
		var d entity.DebtSummary
		err := rows.Scan(&d.CustomerID, &d.CustomerName, &d.Phone, &d.TotalDebt)
		if err != nil {
			return nil, fmt.Errorf("scan debt summary: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}
