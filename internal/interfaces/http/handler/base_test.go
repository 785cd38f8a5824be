package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	documentapp "github.com/retailops/erp-backend/internal/application/document"
	masterdataapp "github.com/retailops/erp-backend/internal/application/masterdata"
	"github.com/retailops/erp-backend/internal/infrastructure/memstore"
	"github.com/retailops/erp-backend/internal/interfaces/http/dto"
	"github.com/retailops/erp-backend/internal/interfaces/http/middleware"
	"github.com/retailops/erp-backend/internal/interfaces/http/router"
)

// testServer wires the full HTTP stack over in-memory repositories and
// seeds one store, supplier, product and customer.
type testServer struct {
	engine     *gin.Engine
	storeCode  string
	supplierID uuid.UUID
	productID  uuid.UUID
	customerID uuid.UUID
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	products := memstore.NewProductRepository()
	suppliers := memstore.NewSupplierRepository()
	groups := memstore.NewCustomerGroupRepository()
	customers := memstore.NewCustomerRepository()
	stores := memstore.NewStoreRepository()
	documents := memstore.NewDocuments()
	sequences := memstore.NewSequenceGenerator()

	productService := masterdataapp.NewProductService(products)
	supplierService := masterdataapp.NewSupplierService(suppliers)
	groupService := masterdataapp.NewCustomerGroupService(groups)
	customerService := masterdataapp.NewCustomerService(customers, groups)
	storeService := masterdataapp.NewStoreService(stores)

	orderService := documentapp.NewPurchaseOrderService(documents.PurchaseOrders(), products, suppliers, stores, sequences)
	receiptService := documentapp.NewGoodsReceiptService(documents.GoodsReceipts(), documents.PurchaseOrders(), products, sequences)
	invoiceService := documentapp.NewSalesInvoiceService(documents.SalesInvoices(), products, customers, stores, sequences)

	engine := gin.New()
	engine.Use(middleware.RequestID())

	system := NewSystemHandler("test")
	engine.GET("/health", system.Health)

	router.NewRouter(engine).
		Register(NewProductHandler(productService)).
		Register(NewSupplierHandler(supplierService)).
		Register(NewCustomerHandler(customerService)).
		Register(NewCustomerGroupHandler(groupService)).
		Register(NewStoreHandler(storeService)).
		Register(NewPurchaseOrderHandler(orderService)).
		Register(NewGoodsReceiptHandler(receiptService)).
		Register(NewSalesInvoiceHandler(invoiceService)).
		Register(system).
		Setup()

	ctx := context.Background()

	store, err := storeService.Create(ctx, masterdataapp.CreateStoreRequest{Code: "SH01", Name: "Main Street"})
	require.NoError(t, err)

	supplier, err := supplierService.Create(ctx, masterdataapp.CreateSupplierRequest{Code: "SUP-001", Name: "Acme Wholesale"})
	require.NoError(t, err)

	product, err := productService.Create(ctx, masterdataapp.CreateProductRequest{
		SKU:          "WIDGET-A",
		Name:         "Widget A",
		CostPrice:    decimal.RequireFromString("10.50"),
		SellingPrice: decimal.RequireFromString("20.00"),
		TaxRate:      decimal.RequireFromString("15"),
	})
	require.NoError(t, err)

	customer, err := customerService.Create(ctx, masterdataapp.CreateCustomerRequest{Code: "CUST-001", Name: "Jane Doe"})
	require.NoError(t, err)

	return &testServer{
		engine:     engine,
		storeCode:  store.Code,
		supplierID: supplier.ID,
		productID:  product.ID,
		customerID: customer.ID,
	}
}

func (ts *testServer) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// dataMap returns the response data as a generic map for field assertions
func dataMap(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	resp := decodeResponse(t, w)
	m, ok := resp.Data.(map[string]any)
	require.True(t, ok, "response data is not an object: %v", resp.Data)
	return m
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	return resp.Error.Code
}
