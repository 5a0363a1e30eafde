package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del registro de inventario.
const (
	InventoryStatusActive   = "Active"
	InventoryStatusInactive = "Inactive"
)

// DefaultWarehouse bodega asignada cuando un import crea el registro implícitamente.
const DefaultWarehouse = "Main Warehouse"

// Inventory representa un contador de stock por bodega con costo y metadatos.
// StockQuantity nunca baja de cero; todos los escritores pasan por el ledger.
type Inventory struct {
	ID            int64
	Warehouse     string
	MaxStockLevel int64
	StockQuantity int64
	UnitCost      decimal.Decimal
	LastUpdated   time.Time
	Note          string
	Status        string
}

// InventoryWithProduct fila del listado: registro de inventario más los datos
// del producto vinculado por el movimiento más reciente (puede no haber producto).
type InventoryWithProduct struct {
	Inventory
	ProductID    *int64
	ProductName  *string
	ProductLine  *string
	ProductBrand *string
}
