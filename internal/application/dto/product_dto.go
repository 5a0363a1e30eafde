package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest body para crear/actualizar productos.
type ProductRequest struct {
	Name           string          `json:"productName" validate:"required"`
	PriceEach      decimal.Decimal `json:"priceEach"`
	Line           string          `json:"productLine"`
	Scale          string          `json:"productScale"`
	Brand          string          `json:"productBrand"`
	Description    string          `json:"productDescription"`
	WarrantyPeriod int             `json:"warrantyPeriod" validate:"min=0"`
	MSRP           decimal.Decimal `json:"msrp"`
}

// VendorRequest body para crear/actualizar proveedores.
type VendorRequest struct {
	Name        string `json:"vendorName" validate:"required"`
	ContactName string `json:"contactName"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address"`
}

// SupplyRequest body para crear/actualizar supplies (producto-proveedor).
type SupplyRequest struct {
	ProductID int64      `json:"productID" validate:"required"`
	VendorID  int64      `json:"vendorID" validate:"required"`
	Date      *time.Time `json:"supplyDate"`
	Quantity  int64      `json:"quantitySupplier" validate:"min=0"`
	HandledBy string     `json:"handledBy"`
}
