package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailops/erp-backend/internal/interfaces/http/dto"
)

// sentPurchaseOrder creates a single-line order and drives it to
// SENT_TO_SUPPLIER, returning the document number and first line ID
func sentPurchaseOrder(t *testing.T, ts *testServer, quantity string) (string, string) {
	t.Helper()
	data := createPurchaseOrder(t, ts, quantity)
	documentNo := data["document_no"].(string)

	for _, action := range []string{"submit", "approve", "send"} {
		w := ts.request(t, "POST", "/api/v1/purchase-orders/"+documentNo+"/"+action, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	lineID := data["lines"].([]any)[0].(map[string]any)["id"].(string)
	return documentNo, lineID
}

func TestGoodsReceiptCreate(t *testing.T) {
	ts := newTestServer(t)
	orderNo, lineID := sentPurchaseOrder(t, ts, "10")

	w := ts.request(t, "POST", "/api/v1/goods-receipts", map[string]any{
		"purchase_order_id": orderNo,
		"lines": []map[string]any{
			{"purchase_order_line_id": lineID, "quantity_received": "4"},
		},
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := dataMap(t, w)
	assert.True(t, strings.HasPrefix(data["document_no"].(string), "GRN-"+ts.storeCode+"-"))
	assert.Equal(t, "DRAFT", data["status"])

	line := data["lines"].([]any)[0].(map[string]any)
	assert.Equal(t, 10.5, line["unit_price_at_receipt"])
}

func TestGoodsReceiptRejectsDraftOrder(t *testing.T) {
	ts := newTestServer(t)
	data := createPurchaseOrder(t, ts, "10")
	lineID := data["lines"].([]any)[0].(map[string]any)["id"].(string)

	w := ts.request(t, "POST", "/api/v1/goods-receipts", map[string]any{
		"purchase_order_id": data["document_no"],
		"lines": []map[string]any{
			{"purchase_order_line_id": lineID, "quantity_received": "1"},
		},
	})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, dto.ErrCodeInvalidState, errorCode(t, w))
}

func TestGoodsReceiptRejectsOverReceipt(t *testing.T) {
	ts := newTestServer(t)
	orderNo, lineID := sentPurchaseOrder(t, ts, "10")

	w := ts.request(t, "POST", "/api/v1/goods-receipts", map[string]any{
		"purchase_order_id": orderNo,
		"lines": []map[string]any{
			{"purchase_order_line_id": lineID, "quantity_received": "11"},
		},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeInvalidInput, errorCode(t, w))
}

func TestGoodsReceiptPostUpdatesOrder(t *testing.T) {
	ts := newTestServer(t)
	orderNo, lineID := sentPurchaseOrder(t, ts, "10")

	w := ts.request(t, "POST", "/api/v1/goods-receipts", map[string]any{
		"purchase_order_id": orderNo,
		"lines": []map[string]any{
			{"purchase_order_line_id": lineID, "quantity_received": "4"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	receiptNo := dataMap(t, w)["document_no"].(string)

	w = ts.request(t, "POST", "/api/v1/goods-receipts/"+receiptNo+"/post", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "POSTED", dataMap(t, w)["status"])

	w = ts.request(t, "GET", "/api/v1/purchase-orders/"+orderNo, nil)
	require.Equal(t, http.StatusOK, w.Code)
	order := dataMap(t, w)
	assert.Equal(t, "PARTIALLY_RECEIVED", order["status"])

	// posting twice is rejected
	w = ts.request(t, "POST", "/api/v1/goods-receipts/"+receiptNo+"/post", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// receive the remainder
	w = ts.request(t, "POST", "/api/v1/goods-receipts", map[string]any{
		"purchase_order_id": orderNo,
		"lines": []map[string]any{
			{"purchase_order_line_id": lineID, "quantity_received": "6"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	secondNo := dataMap(t, w)["document_no"].(string)

	w = ts.request(t, "POST", "/api/v1/goods-receipts/"+secondNo+"/post", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.request(t, "GET", "/api/v1/purchase-orders/"+orderNo, nil)
	assert.Equal(t, "FULLY_RECEIVED", dataMap(t, w)["status"])
}

func TestGoodsReceiptDeleteGating(t *testing.T) {
	ts := newTestServer(t)
	orderNo, lineID := sentPurchaseOrder(t, ts, "5")

	w := ts.request(t, "POST", "/api/v1/goods-receipts", map[string]any{
		"purchase_order_id": orderNo,
		"lines": []map[string]any{
			{"purchase_order_line_id": lineID, "quantity_received": "5"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	receiptNo := dataMap(t, w)["document_no"].(string)

	w = ts.request(t, "POST", "/api/v1/goods-receipts/"+receiptNo+"/post", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// posted receipts are immutable
	w = ts.request(t, "DELETE", "/api/v1/goods-receipts/"+receiptNo, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, dto.ErrCodeInvalidState, errorCode(t, w))
}
