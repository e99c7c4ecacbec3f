package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cement-ledger/internal/application/auth"
	"github.com/tu-usuario/cement-ledger/internal/application/ledger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *ledger.CustomerUseCase
	BillUC     *ledger.BillUseCase
	PaymentUC  *ledger.PaymentUseCase
	StockUC    *ledger.StockUseCase
	BillPDFUC  *ledger.PDFUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)

	// Bills (protegido)
	bills := protected.Group("/bills")
	billHandler := NewBillHandler(deps.BillUC, deps.BillPDFUC)
	bills.Post("/", billHandler.Create)
	bills.Get("/", billHandler.List)
	bills.Put("/:id", billHandler.Update)
	bills.Get("/:id/pdf", billHandler.DownloadPDF)

	// Payments (protegido)
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)
	payments.Put("/:id", paymentHandler.Update)

	// Stocks (protegido, solo lectura)
	stocks := protected.Group("/stocks")
	stockHandler := NewStockHandler(deps.StockUC)
	stocks.Get("/", stockHandler.List)
}
