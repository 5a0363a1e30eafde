package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para movimientos de stock.
// Los movimientos son filas de auditoría: se insertan, no se reescriben salvo por
// la ruta administrativa Update/Delete.
type MovementRepository interface {
	Create(m *entity.StockMovement) error
	GetByID(id int64) (*entity.StockMovement, error)
	// GetByInventoryAndProduct retorna el movimiento más reciente que vincula la
	// pareja (inventario, producto), o nil si no existe.
	GetByInventoryAndProduct(inventoryID, productID int64) (*entity.StockMovement, error)
	Update(m *entity.StockMovement) error
	Delete(id int64) error
	ListAll() ([]*entity.MovementWithDetails, error)
	ListByProduct(productID int64) ([]*entity.MovementWithDetails, error)
	ListByInventory(inventoryID int64) ([]*entity.MovementWithDetails, error)
	CountByInventory(inventoryID int64) (int64, error)
	CountByProduct(productID int64) (int64, error)
}
