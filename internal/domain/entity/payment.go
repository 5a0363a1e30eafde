package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment transacción de pago asociada a un pedido.
type Payment struct {
	ID                int64
	OrderID           int64
	TransactionAmount decimal.Decimal
	PaymentMethod     string
	TransactionDate   time.Time
	TransactionStatus string
}
