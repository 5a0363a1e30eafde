package entity

import "github.com/shopspring/decimal"

// Staff empleado de la tienda. ManagerID es nil para quien no reporta a nadie.
type Staff struct {
	ID           int64
	Name         string
	Position     string
	Phone        string
	Email        string
	Address      string
	ManagerID    *int64
	Salary       decimal.Decimal
	PasswordHash string
}
