package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pedido y de pago usados en checkout.
const (
	OrderStatusPending   = "Pending"
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
)

// Order pedido de un cliente, atendido por un empleado.
type Order struct {
	ID            int64
	TotalAmount   decimal.Decimal
	OrderDate     time.Time
	OrderStatus   string
	PaymentStatus string
	PickupMethod  string
	ShippedDate   *time.Time
	ShippedStatus string
	CustomerID    int64
	StaffID       *int64
}

// OrderRequest línea de pedido: cantidad solicitada de un producto.
type OrderRequest struct {
	ID              int64
	OrderID         int64
	ProductID       int64
	QuantityOrdered int64
	Discount        decimal.Decimal
	Note            string
}
