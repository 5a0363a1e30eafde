package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer cliente de la tienda.
type Customer struct {
	ID           int64
	Name         string
	Phone        string
	Email        string
	Address      string
	PostalCode   string
	Type         string
	LoyalPoint   int64
	LoyalLevel   string
	PasswordHash string
}

// CustomerDebt deuda pendiente de un pedido de un cliente.
type CustomerDebt struct {
	OrderID     int64
	TotalAmount decimal.Decimal
	OrderDate   time.Time
	PaidAmount  decimal.Decimal
	DebtAmount  decimal.Decimal
}

// DebtSummary deuda total acumulada de un cliente.
type DebtSummary struct {
	CustomerID   int64
	CustomerName string
	Phone        string
	TotalDebt    decimal.Decimal
}
