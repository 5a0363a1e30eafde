package entity

import "time"

// Roles de un movimiento de stock. El rol es metadato de auditoría: describe por
// qué ocurrió el movimiento, pero el delta firmado es lo que ajusta el stock.
const (
	RoleInitial     = "Initial"
	RoleImport      = "Import"
	RoleExport      = "Export"
	RoleUpdate      = "Update"
	RoleManual      = "Manual"
	RoleStocktaking = "Stocktaking"
)

// ValidRole indica si el rol pertenece al catálogo conocido.
func ValidRole(role string) bool {
	switch role {
	case RoleInitial, RoleImport, RoleExport, RoleUpdate, RoleManual, RoleStocktaking:
		return true
	}
	return false
}

// StockMovement fila de auditoría inmutable: un cambio firmado de cantidad
// contra un registro de inventario, etiquetado con un rol.
// Reference agrupa los movimientos producidos por una misma operación compuesta.
type StockMovement struct {
	ID          int64
	ProductID   int64
	InventoryID int64
	Date        time.Time
	Quantity    int64 // delta firmado: positivo entra, negativo sale
	Role        string
	Reference   string
}

// MovementWithDetails fila del listado de movimientos con datos del producto
// y de la bodega vinculados (LEFT JOIN, pueden faltar).
type MovementWithDetails struct {
	StockMovement
	ProductName    *string
	ProductLine    *string
	ProductBrand   *string
	Warehouse      *string
	InventoryStock *int64
}
