package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo de la tienda.
type Product struct {
	ID             int64
	Name           string
	PriceEach      decimal.Decimal
	Line           string
	Scale          string
	Brand          string
	Description    string
	WarrantyPeriod int
	MSRP           decimal.Decimal
}

// ProductInventoryView inventario de un producto según sus movimientos,
// ordenado por fecha descendente.
type ProductInventoryView struct {
	Inventory
	MovementDate     time.Time
	MovementQuantity int64
	MovementRole     string
}

// Category línea de producto con el número de productos que la componen.
type Category struct {
	Name         string
	ProductCount int64
}
