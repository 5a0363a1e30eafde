package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// VendorRepository define el puerto de persistencia para proveedores.
type VendorRepository interface {
	Create(v *entity.Vendor) error
	GetByID(id int64) (*entity.Vendor, error)
	Exists(id int64) (bool, error)
	Update(v *entity.Vendor) error
	Delete(id int64) error
	ListWithProductCount() ([]*entity.VendorWithCount, error)
}
