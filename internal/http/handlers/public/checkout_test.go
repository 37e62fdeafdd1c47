package public

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/binimoy-shop/internal/config"
	"github.com/binimoy-shop/internal/models"
	"github.com/binimoy-shop/internal/provider"
	"github.com/binimoy-shop/internal/repository"
	"github.com/binimoy-shop/internal/service"
)

func setupPublicHandlerTest(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:public_handler_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.DeliveryLocation{}, &models.CartSnapshot{}, &models.Banner{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{
		Store: config.StoreConfig{
			Name:              "বিনিময়",
			Currency:          "৳",
			Phone:             "+8809638845910",
			WhatsAppNumber:    "88011712525910",
			MessengerURL:      "https://m.me/binimoy.organic",
			DefaultLocationID: "mirpur",
		},
	}
	c := &provider.Container{Config: cfg}
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.LocationRepo = repository.NewLocationRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.BannerRepo = repository.NewBannerRepository(db)
	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.CategoryRepo, c.LocationRepo, c.BannerRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.CheckoutService = service.NewCheckoutService(c.LocationRepo, c.ProductRepo, cfg.Store)

	return New(c), db
}

func seedHandlerTestCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	rows := []models.Product{
		{ID: "honey-1", Name: "খাঁটি মধু", Unit: "৫০০ গ্রাম", Price: models.NewMoneyFromInt(100), IsActive: true},
		{ID: "oil-1", Name: "সরিষার তেল", Unit: "১ লিটার", Price: models.NewMoneyFromInt(50), IsActive: true},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed product failed: %v", err)
		}
	}
	location := models.DeliveryLocation{ID: "savar", Name: "সাভার", DeliveryCharge: models.NewMoneyFromInt(80)}
	if err := db.Create(&location).Error; err != nil {
		t.Fatalf("seed location failed: %v", err)
	}
}

type previewEnvelope struct {
	StatusCode int                     `json:"status_code"`
	Data       CheckoutPreviewResponse `json:"data"`
}

func postCheckoutPreview(t *testing.T, h *Handler, body string) (*httptest.ResponseRecorder, previewEnvelope) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/preview", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	h.PreviewCheckout(c)

	var envelope previewEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response failed: %v (body %s)", err, w.Body.String())
	}
	return w, envelope
}

func TestPreviewCheckoutBuyNow(t *testing.T) {
	h, db := setupPublicHandlerTest(t)
	seedHandlerTestCatalog(t, db)

	_, envelope := postCheckoutPreview(t, h, `{"mode":"buy_now","product_id":"honey-1","location_id":"savar"}`)
	if envelope.StatusCode != 0 {
		t.Fatalf("expected success, got %d", envelope.StatusCode)
	}
	if len(envelope.Data.Lines) != 1 || envelope.Data.Lines[0].Quantity != 1 {
		t.Fatalf("buy now should produce one line of quantity 1, got %+v", envelope.Data.Lines)
	}
	if envelope.Data.Totals.Total.String() != "180.00" {
		t.Fatalf("expected total 180.00, got %s", envelope.Data.Totals.Total.String())
	}
	if !strings.HasPrefix(envelope.Data.OrderText, "অর্ডার তথ্য:") {
		t.Fatalf("order text missing header: %q", envelope.Data.OrderText)
	}
	if len(envelope.Data.Handoff) != 3 {
		t.Fatalf("expected 3 handoff links, got %d", len(envelope.Data.Handoff))
	}
}

func TestPreviewCheckoutBuyNowRequiresProduct(t *testing.T) {
	h, _ := setupPublicHandlerTest(t)

	_, envelope := postCheckoutPreview(t, h, `{"mode":"buy_now"}`)
	if envelope.StatusCode != 400 {
		t.Fatalf("expected status_code 400, got %d", envelope.StatusCode)
	}
}

func TestPreviewCheckoutSelectionSubset(t *testing.T) {
	h, db := setupPublicHandlerTest(t)
	seedHandlerTestCatalog(t, db)

	// 设备购物车：honey-1 × 2, oil-1 × 1
	for _, id := range []string{"honey-1", "honey-1", "oil-1"} {
		if _, err := h.CartService.AddToCart("binimoy:cart:default", id); err != nil {
			t.Fatalf("seed cart failed: %v", err)
		}
	}

	_, envelope := postCheckoutPreview(t, h, `{"selected_ids":["honey-1"],"location_id":"atlantis"}`)
	if envelope.StatusCode != 0 {
		t.Fatalf("expected success, got %d", envelope.StatusCode)
	}
	if len(envelope.Data.Lines) != 1 || envelope.Data.Lines[0].ProductID != "honey-1" {
		t.Fatalf("expected only honey-1 selected, got %+v", envelope.Data.Lines)
	}
	// 未知配送地区不收运费
	if envelope.Data.Totals.Total.String() != "200.00" {
		t.Fatalf("expected total 200.00, got %s", envelope.Data.Totals.Total.String())
	}
	if !envelope.Data.Totals.FreeDelivery {
		t.Fatalf("unknown location should be free delivery")
	}
}

func TestPreviewCheckoutEmptySelection(t *testing.T) {
	h, db := setupPublicHandlerTest(t)
	seedHandlerTestCatalog(t, db)

	_, envelope := postCheckoutPreview(t, h, `{"selected_ids":[]}`)
	if envelope.StatusCode != 400 {
		t.Fatalf("empty selection should fail with 400, got %d", envelope.StatusCode)
	}
}
