package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del reporte de inventario.
const (
	StockStatusOut = "Out of Stock"
	StockStatusLow = "Low Stock"
	StockStatusIn  = "In Stock"
)

// RevenueRow ingresos agregados por día.
type RevenueRow struct {
	Date         time.Time
	OrderCount   int64
	TotalRevenue decimal.Decimal
	PaidAmount   decimal.Decimal
	UnpaidAmount decimal.Decimal
}

// TopProductRow producto más vendido en el rango consultado.
type TopProductRow struct {
	ProductID         int64
	ProductName       string
	ProductLine       string
	ProductBrand      string
	TotalQuantitySold int64
	TotalRevenue      decimal.Decimal
}

// InventoryReportRow estado de stock de un registro de inventario.
// Status: Out of Stock si la cantidad es 0; Low Stock si está por debajo del 20%
// del nivel máximo; In Stock en otro caso.
type InventoryReportRow struct {
	InventoryID   int64
	Warehouse     string
	ProductID     *int64
	ProductName   *string
	StockQuantity int64
	MaxStockLevel int64
	UnitCost      decimal.Decimal
	TotalValue    decimal.Decimal
	Status        string
}

// Summary totales principales del negocio.
type Summary struct {
	TotalCustomers      int64
	TotalProducts       int64
	TotalOrders         int64
	TotalRevenue        decimal.Decimal
	TotalDebts          decimal.Decimal
	TotalInventoryValue decimal.Decimal
}
