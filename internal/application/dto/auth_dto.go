package dto

import "github.com/shopspring/decimal"

// RegisterCustomerRequest body para POST /api/auth/register/customer.
type RegisterCustomerRequest struct {
	Name       string `json:"customerName" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
	Type       string `json:"customerType"`
	LoyalPoint int64  `json:"loyalPoint"`
	LoyalLevel string `json:"loyalLevel"`
	Password   string `json:"password" validate:"required,min=6"`
}

// RegisterStaffRequest body para POST /api/auth/register/staff.
type RegisterStaffRequest struct {
	Name      string          `json:"staffName" validate:"required"`
	Position  string          `json:"position"`
	Phone     string          `json:"phone" validate:"required"`
	Email     string          `json:"email" validate:"omitempty,email"`
	Address   string          `json:"address"`
	ManagerID *int64          `json:"managerID"`
	Salary    decimal.Decimal `json:"salary"`
	Password  string          `json:"password" validate:"required,min=6"`
}

// LoginRequest body para login de clientes y empleados.
// Identifier acepta email o teléfono.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// LoginResponse token JWT más los datos públicos del usuario autenticado.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    any    `json:"user"`
}
