package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"smartbiz-backend/internal/auth"
	"smartbiz-backend/internal/cache"
	"smartbiz-backend/internal/config"
	"smartbiz-backend/internal/database"
	"smartbiz-backend/internal/db"
	"smartbiz-backend/internal/handlers"
	"smartbiz-backend/internal/health"
	h "smartbiz-backend/internal/http"
	"smartbiz-backend/internal/live"
	"smartbiz-backend/internal/middleware"
	"smartbiz-backend/internal/repositories"
	"smartbiz-backend/internal/services"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	// Run migrations before anything touches the schema
	migrator := database.NewMigrator(pool)
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	// Redis is optional; cache calls no-op without it
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] unavailable, running without cache: %v", err)
	} else {
		log.Println("[Redis] connected")
	}

	tenantID := cfg.Tenant.ID
	log.Printf("[Tenant] serving namespace %q", tenantID)

	// Live change hub (websocket fanout)
	hub := live.NewHub()
	wsHandler := live.NewWSHandler(hub)

	// Repositories
	productRepo := repositories.NewProductRepository(pool, tenantID)
	stockLogRepo := repositories.NewStockLogRepository(pool, tenantID)
	transactionRepo := repositories.NewTransactionRepository(pool, tenantID)
	partyRepo := repositories.NewPartyRepository(pool, tenantID)
	serialRepo := repositories.NewSerialRepository(pool, tenantID)
	couponRepo := repositories.NewCouponRepository(pool, tenantID)
	ticketRepo := repositories.NewTicketRepository(pool, tenantID)
	smsLogRepo := repositories.NewSMSLogRepository(pool, tenantID)

	// Services
	productService := services.NewProductService(productRepo, hub)
	saleService := services.NewSaleService(pool, transactionRepo, productRepo, stockLogRepo, hub)
	purchaseService := services.NewPurchaseService(pool, transactionRepo, productRepo, stockLogRepo, partyRepo, hub)
	expenseService := services.NewExpenseService(pool, transactionRepo, hub)
	stockService := services.NewStockService(pool, productRepo, stockLogRepo, hub)
	partyService := services.NewPartyService(partyRepo, hub)
	serialService := services.NewSerialService(serialRepo, productRepo, hub)
	marketingService := services.NewMarketingService(couponRepo, smsLogRepo, partyRepo, hub)
	ticketService := services.NewTicketService(ticketRepo, hub)
	reportService := services.NewReportService(transactionRepo, partyRepo, hub)
	invoiceService := services.NewInvoiceService(transactionRepo)

	// Keep the dashboard cache honest while transactions stream in
	reportService.Start(context.Background())

	// Auth
	jwtManager := auth.NewJWTManager(cfg)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	// Handlers
	authHandler := handlers.NewAuthHandler(cfg, jwtManager)
	productHandler := handlers.NewProductHandler(productService)
	saleHandler := handlers.NewSaleHandler(saleService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	stockHandler := handlers.NewStockHandler(stockService)
	partyHandler := handlers.NewPartyHandler(partyService, reportService)
	serialHandler := handlers.NewSerialHandler(serialService)
	marketingHandler := handlers.NewMarketingHandler(marketingService)
	ticketHandler := handlers.NewTicketHandler(ticketService)
	reportHandler := handlers.NewReportHandler(reportService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	systemHandler := handlers.NewSystemHandler(pool)
	healthChecker := health.NewHealthChecker(pool)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	router := h.NewRouter(
		authHandler,
		productHandler,
		saleHandler,
		purchaseHandler,
		expenseHandler,
		stockHandler,
		partyHandler,
		serialHandler,
		marketingHandler,
		ticketHandler,
		reportHandler,
		invoiceHandler,
		systemHandler,
		healthHandler,
		wsHandler,
		authMiddleware,
	)

	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(
		middleware.RequestLogging(
			middleware.MetricsMiddleware(corsMiddleware(router))))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
