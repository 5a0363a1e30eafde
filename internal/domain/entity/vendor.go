package entity

// Vendor proveedor de productos.
type Vendor struct {
	ID          int64
	Name        string
	ContactName string
	Phone       string
	Email       string
	Address     string
}

// VendorWithCount proveedor con el número de productos distintos que suministra.
type VendorWithCount struct {
	Vendor
	ProductCount int64
}
