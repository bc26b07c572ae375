package http

import (
	"smartbiz-backend/internal/handlers"
	"smartbiz-backend/internal/live"
	"smartbiz-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	productHandler *handlers.ProductHandler,
	saleHandler *handlers.SaleHandler,
	purchaseHandler *handlers.PurchaseHandler,
	expenseHandler *handlers.ExpenseHandler,
	stockHandler *handlers.StockHandler,
	partyHandler *handlers.PartyHandler,
	serialHandler *handlers.SerialHandler,
	marketingHandler *handlers.MarketingHandler,
	ticketHandler *handlers.TicketHandler,
	reportHandler *handlers.ReportHandler,
	invoiceHandler *handlers.InvoiceHandler,
	systemHandler *handlers.SystemHandler,
	healthHandler *handlers.HealthHandler,
	wsHandler *live.WSHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public API routes - session bootstrap
	r.HandleFunc("/auth/session", authHandler.CreateSession).Methods("POST")

	// Protected API routes - Products
	productsAPI := r.PathPrefix("/api/products").Subrouter()
	productsAPI.Use(authMiddleware.Authenticate)
	productsAPI.HandleFunc("", productHandler.ListProducts).Methods("GET")
	productsAPI.HandleFunc("", productHandler.CreateProduct).Methods("POST")
	productsAPI.HandleFunc("/valuation", productHandler.StockValuation).Methods("GET")
	productsAPI.HandleFunc("/{id}", productHandler.UpdateProduct).Methods("PUT")

	// Protected API routes - Sales
	salesAPI := r.PathPrefix("/api/sales").Subrouter()
	salesAPI.Use(authMiddleware.Authenticate)
	salesAPI.HandleFunc("", saleHandler.ListSales).Methods("GET")
	salesAPI.HandleFunc("", saleHandler.CreateSale).Methods("POST")
	salesAPI.HandleFunc("/{id}/invoice", invoiceHandler.DownloadInvoice).Methods("GET")

	// Protected API routes - Purchases
	purchasesAPI := r.PathPrefix("/api/purchases").Subrouter()
	purchasesAPI.Use(authMiddleware.Authenticate)
	purchasesAPI.HandleFunc("", purchaseHandler.ListPurchases).Methods("GET")
	purchasesAPI.HandleFunc("", purchaseHandler.CreatePurchase).Methods("POST")

	// Protected API routes - Expenses
	expensesAPI := r.PathPrefix("/api/expenses").Subrouter()
	expensesAPI.Use(authMiddleware.Authenticate)
	expensesAPI.HandleFunc("", expenseHandler.ListExpenses).Methods("GET")
	expensesAPI.HandleFunc("", expenseHandler.CreateExpense).Methods("POST")

	// Protected API routes - Stock ledger
	stockAPI := r.PathPrefix("/api/stock").Subrouter()
	stockAPI.Use(authMiddleware.Authenticate)
	stockAPI.HandleFunc("/transfer", stockHandler.Transfer).Methods("POST")
	stockAPI.HandleFunc("/ledger", stockHandler.Ledger).Methods("GET")
	stockAPI.HandleFunc("/audit", stockHandler.Audit).Methods("GET")

	// Protected API routes - Parties
	partiesAPI := r.PathPrefix("/api/parties").Subrouter()
	partiesAPI.Use(authMiddleware.Authenticate)
	partiesAPI.HandleFunc("", partyHandler.ListParties).Methods("GET")
	partiesAPI.HandleFunc("", partyHandler.CreateParty).Methods("POST")
	partiesAPI.HandleFunc("/{id}/history", partyHandler.PartyHistory).Methods("GET")

	// Protected API routes - Serial numbers
	serialsAPI := r.PathPrefix("/api/serials").Subrouter()
	serialsAPI.Use(authMiddleware.Authenticate)
	serialsAPI.HandleFunc("", serialHandler.ListSerials).Methods("GET")
	serialsAPI.HandleFunc("", serialHandler.AddSerial).Methods("POST")
	serialsAPI.HandleFunc("/{id}", serialHandler.DeleteSerial).Methods("DELETE")

	// Protected API routes - Coupons and SMS marketing
	couponsAPI := r.PathPrefix("/api/coupons").Subrouter()
	couponsAPI.Use(authMiddleware.Authenticate)
	couponsAPI.HandleFunc("", marketingHandler.ListCoupons).Methods("GET")
	couponsAPI.HandleFunc("", marketingHandler.CreateCoupon).Methods("POST")
	couponsAPI.HandleFunc("/{id}", marketingHandler.DeleteCoupon).Methods("DELETE")

	smsAPI := r.PathPrefix("/api/sms").Subrouter()
	smsAPI.Use(authMiddleware.Authenticate)
	smsAPI.HandleFunc("/broadcast", marketingHandler.BroadcastSMS).Methods("POST")
	smsAPI.HandleFunc("/broadcasts", marketingHandler.ListBroadcasts).Methods("GET")

	// Protected API routes - Support tickets
	ticketsAPI := r.PathPrefix("/api/tickets").Subrouter()
	ticketsAPI.Use(authMiddleware.Authenticate)
	ticketsAPI.HandleFunc("", ticketHandler.ListTickets).Methods("GET")
	ticketsAPI.HandleFunc("", ticketHandler.CreateTicket).Methods("POST")

	// Protected API routes - Reports
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.Authenticate)
	reportsAPI.HandleFunc("/dashboard", reportHandler.DashboardStats).Methods("GET")
	reportsAPI.HandleFunc("/deliveries", reportHandler.DeliveryBoard).Methods("GET")
	reportsAPI.HandleFunc("/sold-items", reportHandler.SoldItems).Methods("GET")

	// Protected API routes - System status
	systemAPI := r.PathPrefix("/api/system").Subrouter()
	systemAPI.Use(authMiddleware.Authenticate)
	systemAPI.HandleFunc("/status", systemHandler.Status).Methods("GET")

	// WebSocket for live collection change events
	r.HandleFunc("/ws", wsHandler.Serve)

	// Health endpoints (no auth required - for probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
