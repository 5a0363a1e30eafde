package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para registros de inventario.
// GetForUpdate se usa dentro de transacciones para serializar escritores por fila.
type InventoryRepository interface {
	GetByID(id int64) (*entity.Inventory, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE). Retorna nil si no existe.
	GetForUpdate(id int64) (*entity.Inventory, error)
	Create(inv *entity.Inventory) error
	Update(inv *entity.Inventory) error
	Delete(id int64) error
	ListWithProducts() ([]*entity.InventoryWithProduct, error)
}
