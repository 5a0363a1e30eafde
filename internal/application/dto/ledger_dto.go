package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryRequest body para POST /api/inventories.
// ID opcional: si viene vacío la secuencia asigna la llave.
// ProductID opcional: si viene, se registra un movimiento Initial con el stock inicial.
type CreateInventoryRequest struct {
	ID            *int64          `json:"inventoryID"`
	Warehouse     string          `json:"warehouse" validate:"required"`
	MaxStockLevel int64           `json:"maxStockLevel" validate:"min=0"`
	StockQuantity int64           `json:"stockQuantity" validate:"min=0"`
	UnitCost      decimal.Decimal `json:"unitCost"`
	Note          string          `json:"inventoryNote"`
	Status        string          `json:"inventoryStatus"`
	ProductID     *int64          `json:"productID"`
}

// UpdateInventoryRequest body para PUT /api/inventories/:id.
type UpdateInventoryRequest struct {
	Warehouse     string          `json:"warehouse" validate:"required"`
	MaxStockLevel int64           `json:"maxStockLevel" validate:"min=0"`
	StockQuantity int64           `json:"stockQuantity" validate:"min=0"`
	UnitCost      decimal.Decimal `json:"unitCost"`
	Note          string          `json:"inventoryNote"`
	Status        string          `json:"inventoryStatus"`
	ProductID     *int64          `json:"productID"`
}

// InventoryRow fila del listado de inventarios con el producto vinculado.
type InventoryRow struct {
	ID            int64           `json:"inventoryID"`
	Warehouse     string          `json:"warehouse"`
	MaxStockLevel int64           `json:"maxStockLevel"`
	StockQuantity int64           `json:"stockQuantity"`
	UnitCost      decimal.Decimal `json:"unitCost"`
	LastUpdated   time.Time       `json:"lastUpdated"`
	Note          string          `json:"inventoryNote,omitempty"`
	Status        string          `json:"inventoryStatus"`
	ProductID     *int64          `json:"productID,omitempty"`
	ProductName   *string         `json:"productName,omitempty"`
	ProductLine   *string         `json:"productLine,omitempty"`
	ProductBrand  *string         `json:"productBrand,omitempty"`
}

// ImportRequest body para POST /api/inventory/import.
type ImportRequest struct {
	ProductID   int64           `json:"productID" validate:"required"`
	InventoryID int64           `json:"inventoryID" validate:"required"`
	Quantity    int64           `json:"quantity" validate:"gt=0"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	Date        *time.Time      `json:"importDate"`
	Note        string          `json:"note"`
}

// ExportRequest body para POST /api/inventory/export.
type ExportRequest struct {
	ProductID   int64      `json:"productID" validate:"required"`
	InventoryID int64      `json:"inventoryID" validate:"required"`
	Quantity    int64      `json:"quantity" validate:"gt=0"`
	Date        *time.Time `json:"exportDate"`
	Reason      string     `json:"reason"`
	Note        string     `json:"note"`
}

// StocktakingRequest body para POST /api/inventory/stocktaking.
type StocktakingRequest struct {
	InventoryID    int64      `json:"inventoryID" validate:"required"`
	ProductID      int64      `json:"productID" validate:"required"`
	ActualQuantity int64      `json:"actualQuantity" validate:"min=0"`
	Date           *time.Time `json:"stocktakingDate"`
	Note           string     `json:"note"`
}

// MovementRequest body para POST/PUT /api/movements.
type MovementRequest struct {
	ProductID   int64      `json:"productID" validate:"required"`
	InventoryID int64      `json:"inventoryID" validate:"required"`
	Date        *time.Time `json:"movementDate"`
	Quantity    int64      `json:"quantity"`
	Role        string     `json:"role"`
}

// MovementRow fila del listado de movimientos con producto y bodega vinculados.
type MovementRow struct {
	ID             int64     `json:"movementID"`
	ProductID      int64     `json:"productID"`
	InventoryID    int64     `json:"inventoryID"`
	Date           time.Time `json:"movementDate"`
	Quantity       int64     `json:"quantity"`
	Role           string    `json:"role"`
	Reference      string    `json:"reference,omitempty"`
	ProductName    *string   `json:"productName,omitempty"`
	ProductLine    *string   `json:"productLine,omitempty"`
	ProductBrand   *string   `json:"productBrand,omitempty"`
	Warehouse      *string   `json:"warehouse,omitempty"`
	InventoryStock *int64    `json:"inventoryStock,omitempty"`
}
