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

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implementación de VendorRepository sobre PostgreSQL (usable con pool o tx).
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

// Create persiste un proveedor y escribe el ID asignado en la entidad.
func (r *VendorRepo) Create(v *entity.Vendor) error {
	query := `
		INSERT INTO vendors (name, contact_name, phone, email, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		v.Name, v.ContactName, v.Phone, v.Email, v.Address,
	).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("create vendor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. Retorna nil si no existe.
func (r *VendorRepo) GetByID(id int64) (*entity.Vendor, error) {
	query := `SELECT id, name, contact_name, phone, email, address FROM vendors WHERE id = $1`
	var v entity.Vendor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.Name, &v.ContactName, &v.Phone, &v.Email, &v.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}

// Exists verificación ligera de existencia (para chequeos de referencia).
func (r *VendorRepo) Exists(id int64) (bool, error) {
	var one int
	err := r.q.QueryRow(context.Background(), `SELECT 1 FROM vendors WHERE id = $1`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("vendor exists: %w", err)
	}
	return true, nil
}

// Update reescribe los datos del proveedor.
func (r *VendorRepo) Update(v *entity.Vendor) error {
	query := `
		UPDATE vendors
		SET name = $1, contact_name = $2, phone = $3, email = $4, address = $5
		WHERE id = $6`
	tag, err := r.q.Exec(context.Background(), query,
		v.Name, v.ContactName, v.Phone, v.Email, v.Address, v.ID,
	)
	if err != nil {
		return fmt.Errorf("update vendor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: proveedor %d", domain.ErrNotFound, v.ID)
	}
	return nil
}

// Delete borra un proveedor por ID. La DB rechaza el borrado si hay referencias.
func (r *VendorRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el proveedor está en uso", domain.ErrConflict)
		}
		return fmt.Errorf("delete vendor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: proveedor %d", domain.ErrNotFound, id)
	}
	return nil
}

// ListWithProductCount lista proveedores con el número de productos distintos
// que cada uno suministra.
func (r *VendorRepo) ListWithProductCount() ([]*entity.VendorWithCount, error) {
	query := `
		SELECT v.id, v.name, v.contact_name, v.phone, v.email, v.address,
		       COUNT(DISTINCT s.product_id)
		FROM vendors v
		LEFT JOIN supplies s ON v.id = s.vendor_id
		GROUP BY v.id, v.name, v.contact_name, v.phone, v.email, v.address
		ORDER BY v.id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	var out []*entity.VendorWithCount
	for rows.Next() {
		var v entity.VendorWithCount
		err := rows.Scan(
			&v.ID, &v.Name, &v.ContactName, &v.Phone, &v.Email, &v.Address,
			&v.ProductCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}
