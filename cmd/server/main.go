package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	documentapp "github.com/retailops/erp-backend/internal/application/document"
	masterdataapp "github.com/retailops/erp-backend/internal/application/masterdata"
	"github.com/retailops/erp-backend/internal/infrastructure/config"
	"github.com/retailops/erp-backend/internal/infrastructure/logger"
	"github.com/retailops/erp-backend/internal/infrastructure/memstore"
	"github.com/retailops/erp-backend/internal/interfaces/http/handler"
	"github.com/retailops/erp-backend/internal/interfaces/http/middleware"
	"github.com/retailops/erp-backend/internal/interfaces/http/router"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Retail Ops ERP backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", version),
		zap.String("port", cfg.App.Port),
	)

	// Initialize in-memory repositories. All state lives in process
	// memory and is lost on restart.
	products := memstore.NewProductRepository()
	suppliers := memstore.NewSupplierRepository()
	groups := memstore.NewCustomerGroupRepository()
	customers := memstore.NewCustomerRepository()
	stores := memstore.NewStoreRepository()
	documents := memstore.NewDocuments()
	sequences := memstore.NewSequenceGenerator()

	// Initialize application services
	productService := masterdataapp.NewProductService(products)
	supplierService := masterdataapp.NewSupplierService(suppliers)
	groupService := masterdataapp.NewCustomerGroupService(groups)
	customerService := masterdataapp.NewCustomerService(customers, groups)
	storeService := masterdataapp.NewStoreService(stores)

	orderService := documentapp.NewPurchaseOrderService(documents.PurchaseOrders(), products, suppliers, stores, sequences)
	receiptService := documentapp.NewGoodsReceiptService(documents.GoodsReceipts(), documents.PurchaseOrders(), products, sequences)
	invoiceService := documentapp.NewSalesInvoiceService(documents.SalesInvoices(), products, customers, stores, sequences)

	if cfg.Seed.Enabled {
		if err := seedDemoData(log, storeService, supplierService, productService, groupService, customerService); err != nil {
			log.Fatal("Failed to seed demo data", zap.Error(err))
		}
	}

	// Setup gin
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies configuration", zap.Error(err))
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check outside the versioned API prefix
	systemHandler := handler.NewSystemHandler(version)
	engine.GET("/health", systemHandler.Health)

	// Register API routes
	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(handler.NewProductHandler(productService)).
		Register(handler.NewSupplierHandler(supplierService)).
		Register(handler.NewCustomerHandler(customerService)).
		Register(handler.NewCustomerGroupHandler(groupService)).
		Register(handler.NewStoreHandler(storeService)).
		Register(handler.NewPurchaseOrderHandler(orderService)).
		Register(handler.NewGoodsReceiptHandler(receiptService)).
		Register(handler.NewSalesInvoiceHandler(invoiceService)).
		Register(systemHandler).
		Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           cfg.App.Addr(),
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// seedDemoData populates the empty in-memory store with a small set of
// master data so the API is usable out of the box in development.
func seedDemoData(
	log *zap.Logger,
	stores *masterdataapp.StoreService,
	suppliers *masterdataapp.SupplierService,
	products *masterdataapp.ProductService,
	groups *masterdataapp.CustomerGroupService,
	customers *masterdataapp.CustomerService,
) error {
	ctx := context.Background()

	store, err := stores.Create(ctx, masterdataapp.CreateStoreRequest{
		Code: "SH01",
		Name: "Main Street Store",
		Address: &masterdataapp.AddressInput{
			Line1: "1 Main Street",
			City:  "Springfield",
		},
	})
	if err != nil {
		return err
	}

	supplier, err := suppliers.Create(ctx, masterdataapp.CreateSupplierRequest{
		Code:        "SUP-001",
		Name:        "Acme Wholesale",
		ContactName: "Sam Carter",
		Email:       "orders@acme.example.com",
	})
	if err != nil {
		return err
	}

	seedProducts := []masterdataapp.CreateProductRequest{
		{
			SKU:           "WIDGET-A",
			Name:          "Widget A",
			UnitOfMeasure: "EA",
			CostPrice:     decimal.RequireFromString("10.50"),
			SellingPrice:  decimal.RequireFromString("20.00"),
			TaxRate:       decimal.RequireFromString("15"),
		},
		{
			SKU:           "WIDGET-B",
			Name:          "Widget B",
			UnitOfMeasure: "EA",
			CostPrice:     decimal.RequireFromString("7.25"),
			SellingPrice:  decimal.RequireFromString("14.95"),
			TaxRate:       decimal.RequireFromString("15"),
		},
		{
			SKU:                "MILK-1L",
			Name:               "Milk 1L",
			UnitOfMeasure:      "EA",
			CostPrice:          decimal.RequireFromString("1.10"),
			SellingPrice:       decimal.RequireFromString("2.50"),
			RequiresExpiryDate: true,
		},
	}
	for _, req := range seedProducts {
		if _, err := products.Create(ctx, req); err != nil {
			return err
		}
	}

	group, err := groups.Create(ctx, masterdataapp.CreateCustomerGroupRequest{
		Code:               "VIP",
		Name:               "VIP Customers",
		DiscountPercentage: decimal.RequireFromString("10"),
	})
	if err != nil {
		return err
	}

	customer, err := customers.Create(ctx, masterdataapp.CreateCustomerRequest{
		Code:        "CUST-001",
		Name:        "Jane Doe",
		GroupID:     &group.ID,
		CreditLimit: decimal.RequireFromString("500"),
	})
	if err != nil {
		return err
	}

	log.Info("Seeded demo master data",
		zap.String("store", store.Code),
		zap.String("supplier", supplier.Code),
		zap.Int("products", len(seedProducts)),
		zap.String("customer", customer.Code),
	)
	return nil
}
