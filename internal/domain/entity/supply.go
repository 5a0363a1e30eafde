package entity

import "time"

// Supply relación producto-proveedor: una entrega registrada.
type Supply struct {
	ID        int64
	ProductID int64
	VendorID  int64
	Date      time.Time
	Quantity  int64
	HandledBy string
}

// SupplyWithDetails fila del listado de supplies con datos del producto y del
// proveedor (LEFT JOIN, pueden faltar).
type SupplyWithDetails struct {
	Supply
	ProductName  *string
	ProductLine  *string
	ProductBrand *string
	VendorName   *string
	ContactName  *string
	VendorPhone  *string
}
