package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.SupplyRepository = (*SupplyRepo)(nil)

// SupplyRepo implementación de SupplyRepository sobre PostgreSQL (usable con pool o tx).
type SupplyRepo struct {
	q Querier
}

// NewSupplyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplyRepository(q Querier) *SupplyRepo {
	return &SupplyRepo{q: q}
}

// Create persiste una entrega y escribe el ID asignado en la entidad.
func (r *SupplyRepo) Create(s *entity.Supply) error {
	query := `
		INSERT INTO supplies (product_id, vendor_id, date, quantity, handled_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		s.ProductID, s.VendorID, s.Date, s.Quantity, s.HandledBy,
	).Scan(&s.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: producto o proveedor del suministro", domain.ErrReferenceNotFound)
		}
		return fmt.Errorf("create supply: %w", err)
	}
	return nil
}

// Update reescribe una entrega existente.
func (r *SupplyRepo) Update(s *entity.Supply) error {
	query := `
		UPDATE supplies
		SET product_id = $1, vendor_id = $2, date = $3, quantity = $4, handled_by = $5
		WHERE id = $6`
	tag, err := r.q.Exec(context.Background(), query,
		s.ProductID, s.VendorID, s.Date, s.Quantity, s.HandledBy, s.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: producto o proveedor del suministro", domain.ErrReferenceNotFound)
		}
		return fmt.Errorf("update supply: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: suministro %d", domain.ErrNotFound, s.ID)
	}
	return nil
}

// Delete borra una entrega por ID.
func (r *SupplyRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM supplies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supply: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: suministro %d", domain.ErrNotFound, id)
	}
	return nil
}

const supplyDetailQuery = `
	SELECT s.id, s.product_id, s.vendor_id, s.date, s.quantity, s.handled_by,
	       p.name, p.line, p.brand,
	       v.name, v.contact_name, v.phone
	FROM supplies s
	LEFT JOIN products p ON s.product_id = p.id
	LEFT JOIN vendors v ON s.vendor_id = v.id`

func (r *SupplyRepo) queryDetails(query string, args ...any) ([]*entity.SupplyWithDetails, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list supplies: %w", err)
	}
	defer rows.Close()

	var out []*entity.SupplyWithDetails
	for rows.Next() {
		var s entity.SupplyWithDetails
		err := rows.Scan(
			&s.ID, &s.ProductID, &s.VendorID, &s.Date, &s.Quantity, &s.HandledBy,
			&s.ProductName, &s.ProductLine, &s.ProductBrand,
			&s.VendorName, &s.ContactName, &s.VendorPhone,
		)
		if err != nil {
			return nil, fmt.Errorf("scan supply: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// ListAll lista todas las entregas con detalles, más recientes primero.
func (r *SupplyRepo) ListAll() ([]*entity.SupplyWithDetails, error) {
	return r.queryDetails(supplyDetailQuery + ` ORDER BY s.date DESC, s.id DESC`)
}

// ListByProduct lista las entregas de un producto, más recientes primero.
func (r *SupplyRepo) ListByProduct(productID int64) ([]*entity.SupplyWithDetails, error) {
	return r.queryDetails(supplyDetailQuery+` WHERE s.product_id = $1 ORDER BY s.date DESC, s.id DESC`, productID)
}

// ListByVendor lista las entregas de un proveedor, más recientes primero.
func (r *SupplyRepo) ListByVendor(vendorID int64) ([]*entity.SupplyWithDetails, error) {
	return r.queryDetails(supplyDetailQuery+` WHERE s.vendor_id = $1 ORDER BY s.date DESC, s.id DESC`, vendorID)
}

// CountByProduct cuenta las entregas que referencian un producto.
func (r *SupplyRepo) CountByProduct(productID int64) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM supplies WHERE product_id = $1`, productID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count supplies by product: %w", err)
	}
	return count, nil
}

// CountByVendor cuenta las entregas que referencian un proveedor.
func (r *SupplyRepo) CountByVendor(vendorID int64) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM supplies WHERE vendor_id = $1`, vendorID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count supplies by vendor: %w", err)
	}
	return count, nil
}
