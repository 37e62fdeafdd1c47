package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/binimoy-shop/internal/models"
)

type cartEnvelope struct {
	StatusCode int          `json:"status_code"`
	Data       CartResponse `json:"data"`
}

func doCartRequest(t *testing.T, h *Handler, handle gin.HandlerFunc, method, target, body, deviceID string, params gin.Params) cartEnvelope {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if deviceID != "" {
		req.Header.Set("X-Device-ID", deviceID)
	}
	c.Request = req
	c.Params = params

	handle(c)

	var envelope cartEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response failed: %v (body %s)", err, w.Body.String())
	}
	return envelope
}

func TestCartEndpointsPerDevice(t *testing.T) {
	h, db := setupPublicHandlerTest(t)
	seedHandlerTestCatalog(t, db)

	// 加入商品两次，数量应累加
	envelope := doCartRequest(t, h, h.UpsertCartItem, http.MethodPost, "/api/v1/cart/items", `{"product_id":"honey-1"}`, "device-1", nil)
	if envelope.StatusCode != 0 {
		t.Fatalf("add failed with %d", envelope.StatusCode)
	}
	envelope = doCartRequest(t, h, h.UpsertCartItem, http.MethodPost, "/api/v1/cart/items", `{"product_id":"honey-1"}`, "device-1", nil)
	if envelope.Data.TotalItems != 2 || len(envelope.Data.Lines) != 1 {
		t.Fatalf("expected single line of 2, got %+v", envelope.Data)
	}

	// 指定数量直接覆盖
	envelope = doCartRequest(t, h, h.UpsertCartItem, http.MethodPost, "/api/v1/cart/items", `{"product_id":"honey-1","quantity":5}`, "device-1", nil)
	if envelope.Data.TotalItems != 5 {
		t.Fatalf("expected 5 items, got %d", envelope.Data.TotalItems)
	}

	// 另一台设备的购物车为空
	envelope = doCartRequest(t, h, h.GetCart, http.MethodGet, "/api/v1/cart", "", "device-2", nil)
	if envelope.Data.TotalItems != 0 {
		t.Fatalf("device-2 cart should be empty, got %+v", envelope.Data)
	}

	// 移除商品
	envelope = doCartRequest(t, h, h.RemoveCartItem, http.MethodDelete, "/api/v1/cart/items/honey-1", "", "device-1",
		gin.Params{{Key: "product_id", Value: "honey-1"}})
	if len(envelope.Data.Lines) != 0 {
		t.Fatalf("expected empty cart after remove, got %+v", envelope.Data.Lines)
	}
}

func TestCartUnknownProductRejected(t *testing.T) {
	h, db := setupPublicHandlerTest(t)
	seedHandlerTestCatalog(t, db)

	envelope := doCartRequest(t, h, h.UpsertCartItem, http.MethodPost, "/api/v1/cart/items", `{"product_id":"missing"}`, "device-1", nil)
	if envelope.StatusCode != 400 {
		t.Fatalf("expected 400 for unknown product, got %d", envelope.StatusCode)
	}
}

func TestCartSummaryFormat(t *testing.T) {
	h, db := setupPublicHandlerTest(t)
	seedHandlerTestCatalog(t, db)

	doCartRequest(t, h, h.UpsertCartItem, http.MethodPost, "/api/v1/cart/items", `{"product_id":"honey-1"}`, "device-1", nil)
	envelope := doCartRequest(t, h, h.GetCart, http.MethodGet, "/api/v1/cart", "", "device-1", nil)

	want := "খাঁটি মধু (ID: honey-1)\nপরিমাণ: × 1"
	if envelope.Data.Summary != want {
		t.Fatalf("summary want %q got %q", want, envelope.Data.Summary)
	}
	if envelope.Data.TotalPrice.String() != models.NewMoneyFromInt(100).String() {
		t.Fatalf("total price want 100.00 got %s", envelope.Data.TotalPrice.String())
	}
}
