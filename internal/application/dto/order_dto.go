package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerRequest body para crear/actualizar clientes.
type CustomerRequest struct {
	Name       string `json:"customerName" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
}

// StaffRequest body para crear/actualizar empleados.
type StaffRequest struct {
	Name      string          `json:"staffName" validate:"required"`
	Position  string          `json:"position"`
	Phone     string          `json:"phone" validate:"required"`
	Email     string          `json:"email" validate:"omitempty,email"`
	Address   string          `json:"address"`
	ManagerID *int64          `json:"managerID"`
	Salary    decimal.Decimal `json:"salary"`
}

// OrderRequestBody body para crear/actualizar pedidos.
type OrderRequestBody struct {
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	OrderStatus   string          `json:"orderStatus"`
	PaymentStatus string          `json:"paymentStatus"`
	PickupMethod  string          `json:"pickupMethod"`
	ShippedDate   *time.Time      `json:"shippedDate"`
	ShippedStatus string          `json:"shippedStatus"`
	CustomerID    int64           `json:"customerID" validate:"required"`
	StaffID       *int64          `json:"staffID"`
}

// CheckoutProduct línea del carrito en checkout.
type CheckoutProduct struct {
	ProductID int64           `json:"productID" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"gt=0"`
	PriceEach decimal.Decimal `json:"priceEach"`
}

// CheckoutRequest body para POST /api/orders/checkout: un pedido completo con
// sus líneas y, si el método es en línea, el pago pendiente.
type CheckoutRequest struct {
	CustomerID    int64             `json:"customerID" validate:"required"`
	StaffID       *int64            `json:"staffID"`
	PaymentMethod string            `json:"paymentMethod"`
	PaymentStatus string            `json:"paymentStatus"`
	PickupMethod  string            `json:"pickupMethod"`
	ShippedDate   *time.Time        `json:"shippedDate"`
	ShippedStatus string            `json:"shippedStatus"`
	Products      []CheckoutProduct `json:"products" validate:"required,min=1,dive"`
}

// LineRequest body para crear/actualizar líneas de pedido.
type LineRequest struct {
	OrderID         int64           `json:"orderID" validate:"required"`
	ProductID       int64           `json:"productID" validate:"required"`
	QuantityOrdered int64           `json:"quantityOrdered" validate:"gt=0"`
	Discount        decimal.Decimal `json:"discount"`
	Note            string          `json:"note"`
}

// PaymentRequest body para crear/actualizar pagos.
type PaymentRequest struct {
	OrderID           int64           `json:"orderID" validate:"required"`
	TransactionAmount decimal.Decimal `json:"transactionAmount"`
	PaymentMethod     string          `json:"paymentMethod" validate:"required"`
	TransactionStatus string          `json:"transactionStatus"`
}
