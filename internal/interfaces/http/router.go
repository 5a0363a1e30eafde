package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/ledger"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC    *ledger.UseCase
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	VendorUC    *usecase.VendorUseCase
	SupplyUC    *usecase.SupplyUseCase
	OrderUC     *usecase.OrderUseCase
	PaymentUC   *usecase.PaymentUseCase
	StaffUC     *usecase.StaffUseCase
	ReportUC    *usecase.ReportUseCase
	AuthUC      *auth.UseCase
	JWTSecret   string
	CORSOrigins string // lista separada por comas; vacío = *
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	origins := deps.CORSOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register/customer", authHandler.RegisterCustomer)
	authGroup.Post("/register/staff", authHandler.RegisterStaff)
	authGroup.Post("/login/customer", authHandler.LoginCustomer)
	authGroup.Post("/login/staff", authHandler.LoginStaff)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventories + operaciones del ledger (protegido)
	inventoryHandler := NewInventoryHandler(deps.LedgerUC)
	inventories := protected.Group("/inventories")
	inventories.Get("/", inventoryHandler.List)
	inventories.Post("/", inventoryHandler.Create)
	inventories.Put("/:id", inventoryHandler.Update)
	inventories.Delete("/:id", inventoryHandler.Delete)

	invOps := protected.Group("/inventory")
	invOps.Post("/import", inventoryHandler.Import)
	invOps.Post("/export", inventoryHandler.Export)
	invOps.Post("/stocktaking", inventoryHandler.Stocktaking)

	// Movimientos de stock (protegido)
	movementHandler := NewMovementHandler(deps.LedgerUC)
	movements := protected.Group("/movements")
	movements.Get("/", movementHandler.List)
	movements.Get("/product/:productId", movementHandler.ListByProduct)
	movements.Get("/inventory/:inventoryId", movementHandler.ListByInventory)
	movements.Post("/", movementHandler.Create)
	movements.Put("/:id", movementHandler.Update)
	movements.Delete("/:id", movementHandler.Delete)

	// Products (protegido)
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/categories", productHandler.Categories)
	products.Get("/categories/count", productHandler.CategoriesWithCount)
	products.Get("/:id", productHandler.Get)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/usage", productHandler.Usage)
	products.Get("/:id/inventory", productHandler.Inventory)
	products.Get("/:id/suppliers", productHandler.Suppliers)

	// Customers (protegido)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := protected.Group("/customers")
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/debts", customerHandler.AllDebts)
	customers.Get("/:id", customerHandler.Get)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Get("/:id/debts", customerHandler.Debts)

	// Vendors (protegido)
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors := protected.Group("/vendors")
	vendors.Get("/", vendorHandler.List)
	vendors.Post("/", vendorHandler.Create)
	vendors.Put("/:id", vendorHandler.Update)
	vendors.Delete("/:id", vendorHandler.Delete)

	// Supplies (protegido)
	supplyHandler := NewSupplyHandler(deps.SupplyUC)
	supplies := protected.Group("/supplies")
	supplies.Get("/", supplyHandler.List)
	supplies.Post("/", supplyHandler.Create)
	supplies.Put("/:id", supplyHandler.Update)
	supplies.Delete("/:id", supplyHandler.Delete)

	// Orders + checkout (protegido)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := protected.Group("/orders")
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Post("/checkout", orderHandler.Checkout)
	orders.Get("/customer/:customerId", orderHandler.ListByCustomer)
	orders.Get("/:orderId/requests", orderHandler.LinesByOrder)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)

	// Líneas de pedido (protegido)
	requests := protected.Group("/requests")
	requests.Get("/", orderHandler.Lines)
	requests.Post("/", orderHandler.CreateLine)
	requests.Put("/:id", orderHandler.UpdateLine)
	requests.Delete("/:id", orderHandler.DeleteLine)

	// Payments (protegido)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments := protected.Group("/payments")
	payments.Get("/", paymentHandler.List)
	payments.Post("/", paymentHandler.Create)
	payments.Put("/:id", paymentHandler.Update)
	payments.Delete("/:id", paymentHandler.Delete)

	// Staff (protegido)
	staffHandler := NewStaffHandler(deps.StaffUC)
	staffs := protected.Group("/staffs")
	staffs.Get("/", staffHandler.List)
	staffs.Post("/", staffHandler.Create)
	staffs.Put("/:id", staffHandler.Update)
	staffs.Delete("/:id", staffHandler.Delete)

	// Reports (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports := protected.Group("/reports")
	reports.Get("/revenue", reportHandler.Revenue)
	reports.Get("/top-products", reportHandler.TopProducts)
	reports.Get("/inventory", reportHandler.Inventory)
	reports.Get("/inventory/pdf", reportHandler.InventoryPDF)
	reports.Get("/summary", reportHandler.Summary)
}
