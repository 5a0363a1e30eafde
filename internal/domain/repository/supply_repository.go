package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// SupplyRepository define el puerto de persistencia para la relación producto-proveedor.
type SupplyRepository interface {
	Create(s *entity.Supply) error
	Update(s *entity.Supply) error
	Delete(id int64) error
	ListAll() ([]*entity.SupplyWithDetails, error)
	ListByProduct(productID int64) ([]*entity.SupplyWithDetails, error)
	ListByVendor(vendorID int64) ([]*entity.SupplyWithDetails, error)
	CountByProduct(productID int64) (int64, error)
	CountByVendor(vendorID int64) (int64, error)
}
