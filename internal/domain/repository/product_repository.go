package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// Exists verificación ligera de llave foránea (usada por el ledger).
	Exists(id int64) (bool, error)
	Update(p *entity.Product) error
	Delete(id int64) error
	// List con búsqueda por nombre/marca/línea y filtro por línea; ambos opcionales.
	List(search, category string) ([]*entity.Product, error)
	InventoryView(productID int64) ([]*entity.ProductInventoryView, error)
	ListCategories() ([]*entity.Category, error)
	CategoriesWithCount() ([]*entity.Category, error)
}
