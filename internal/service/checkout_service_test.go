package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/binimoy-shop/internal/config"
	"github.com/binimoy-shop/internal/models"
	"github.com/binimoy-shop/internal/repository"
)

func setupCheckoutServiceTest(t *testing.T) (*CheckoutService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:checkout_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.DeliveryLocation{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	store := config.StoreConfig{
		Name:              "বিনিময়",
		Currency:          "৳",
		Phone:             "+8809638845910",
		WhatsAppNumber:    "88011712525910",
		MessengerURL:      "https://m.me/binimoy.organic",
		DefaultLocationID: "mirpur",
	}
	svc := NewCheckoutService(repository.NewLocationRepository(db), repository.NewProductRepository(db), store)
	return svc, db
}

func createCheckoutTestLocation(t *testing.T, db *gorm.DB, id string, charge int64) {
	t.Helper()

	row := models.DeliveryLocation{
		ID:             id,
		Name:           id,
		DeliveryCharge: models.NewMoneyFromInt(charge),
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create location failed: %v", err)
	}
}

func testCartLines() []models.CartLine {
	return []models.CartLine{
		{ProductID: "honey-1", Name: "খাঁটি সুন্দরবনের মধু", Unit: "৫০০ গ্রাম", Price: models.NewMoneyFromInt(100), Quantity: 2},
		{ProductID: "oil-1", Name: "সরিষার তেল", Unit: "১ লিটার", Price: models.NewMoneyFromInt(50), Quantity: 1},
	}
}

func TestComputeTotalsWithDeliveryCharge(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	createCheckoutTestLocation(t, db, "savar", 80)

	totals, err := svc.ComputeTotals(testCartLines(), "savar")
	if err != nil {
		t.Fatalf("compute totals failed: %v", err)
	}
	if totals.Subtotal.String() != "250.00" {
		t.Fatalf("expected subtotal 250.00, got %s", totals.Subtotal.String())
	}
	if totals.DeliveryCharge.String() != "80.00" {
		t.Fatalf("expected charge 80.00, got %s", totals.DeliveryCharge.String())
	}
	if totals.Total.String() != "330.00" {
		t.Fatalf("expected total 330.00, got %s", totals.Total.String())
	}
	if totals.FreeDelivery {
		t.Fatalf("expected paid delivery")
	}
	if totals.TotalItems != 3 {
		t.Fatalf("expected 3 items, got %d", totals.TotalItems)
	}
}

func TestComputeTotalsUnknownLocationChargesNothing(t *testing.T) {
	svc, _ := setupCheckoutServiceTest(t)

	totals, err := svc.ComputeTotals(testCartLines(), "atlantis")
	if err != nil {
		t.Fatalf("compute totals failed: %v", err)
	}
	if !totals.DeliveryCharge.IsZero() {
		t.Fatalf("expected zero charge, got %s", totals.DeliveryCharge.String())
	}
	if !totals.FreeDelivery {
		t.Fatalf("expected free delivery flag")
	}
	if totals.Total.String() != "250.00" {
		t.Fatalf("expected total 250.00, got %s", totals.Total.String())
	}
}

func TestComputeTotalsEmptyLines(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	createCheckoutTestLocation(t, db, "savar", 80)

	totals, err := svc.ComputeTotals(nil, "savar")
	if err != nil {
		t.Fatalf("compute totals failed: %v", err)
	}
	if totals.Subtotal.String() != "0.00" {
		t.Fatalf("expected zero subtotal, got %s", totals.Subtotal.String())
	}
	if totals.Total.String() != "80.00" {
		t.Fatalf("expected total 80.00, got %s", totals.Total.String())
	}
}

func TestComputeTotalsIsRepeatable(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	createCheckoutTestLocation(t, db, "savar", 80)

	lines := testCartLines()
	first, err := svc.ComputeTotals(lines, "savar")
	if err != nil {
		t.Fatalf("compute totals failed: %v", err)
	}
	second, err := svc.ComputeTotals(lines, "savar")
	if err != nil {
		t.Fatalf("compute totals failed: %v", err)
	}
	if first.Total.String() != second.Total.String() || first.TotalItems != second.TotalItems {
		t.Fatalf("expected identical totals, got %+v and %+v", first, second)
	}
}

func TestSelectionSubsetTotals(t *testing.T) {
	svc, _ := setupCheckoutServiceTest(t)

	lines := testCartLines()
	set := SelectNone()
	set.Toggle("honey-1")

	totals, err := svc.ComputeTotals(FilterLines(lines, set), "")
	if err != nil {
		t.Fatalf("compute totals failed: %v", err)
	}
	if totals.Subtotal.String() != "200.00" {
		t.Fatalf("expected subtotal 200.00, got %s", totals.Subtotal.String())
	}
}

func TestSelectionToggleAndSelectAll(t *testing.T) {
	lines := testCartLines()

	set := SelectAll(lines)
	if !set.Contains("honey-1") || !set.Contains("oil-1") {
		t.Fatalf("expected all selected, got %v", set)
	}

	set.Toggle("honey-1")
	if set.Contains("honey-1") {
		t.Fatalf("expected honey-1 deselected")
	}
	set.Toggle("honey-1")
	if !set.Contains("honey-1") {
		t.Fatalf("expected honey-1 reselected")
	}
}

func TestReconcileDropsRemovedProducts(t *testing.T) {
	lines := testCartLines()
	set := SelectAll(lines)

	remaining := lines[:1]
	set = Reconcile(set, remaining)
	if set.Contains("oil-1") {
		t.Fatalf("expected oil-1 dropped from selection")
	}
	if !set.Contains("honey-1") {
		t.Fatalf("expected honey-1 kept in selection")
	}
}

func TestFormatOrderText(t *testing.T) {
	text := FormatOrderText(testCartLines())

	want := "অর্ডার তথ্য:\n" +
		"খাঁটি সুন্দরবনের মধু (ID: honey-1)\nপরিমাণ: × 2\n" +
		"সরিষার তেল (ID: oil-1)\nপরিমাণ: × 1"
	if text != want {
		t.Fatalf("unexpected order text:\n%q\nwant:\n%q", text, want)
	}
	if strings.Contains(text, "100") || strings.Contains(text, "৳") {
		t.Fatalf("order text must not contain prices: %q", text)
	}
}

func TestBuyNowLine(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	row := models.Product{
		ID:       "ghee-1",
		Name:     "গাওয়া ঘি",
		Unit:     "৫০০ গ্রাম",
		Price:    models.NewMoneyFromInt(1450),
		IsActive: true,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	line, err := svc.BuyNowLine("ghee-1")
	if err != nil {
		t.Fatalf("buy now failed: %v", err)
	}
	if line.Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", line.Quantity)
	}
	if line.LineTotal().String() != "1450.00" {
		t.Fatalf("expected line total 1450.00, got %s", line.LineTotal().String())
	}

	if _, err := svc.BuyNowLine("missing"); err != ErrProductNotAvailable {
		t.Fatalf("expected ErrProductNotAvailable, got %v", err)
	}
}

func TestHandoffLinksEncodeOrderText(t *testing.T) {
	svc, _ := setupCheckoutServiceTest(t)

	text := FormatOrderText(testCartLines())
	links := svc.HandoffLinks(text)
	if len(links) != 3 {
		t.Fatalf("expected 3 links, got %d", len(links))
	}

	byChannel := map[string]HandoffLink{}
	for _, link := range links {
		byChannel[link.Channel] = link
	}
	if byChannel["phone"].URL != "tel:+8809638845910" {
		t.Fatalf("unexpected phone link %s", byChannel["phone"].URL)
	}
	wa := byChannel["whatsapp"].URL
	if !strings.HasPrefix(wa, "https://wa.me/88011712525910?text=") {
		t.Fatalf("unexpected whatsapp link %s", wa)
	}
	if strings.ContainsAny(strings.TrimPrefix(wa, "https://wa.me/88011712525910?text="), " \n") {
		t.Fatalf("whatsapp text must be url-encoded: %s", wa)
	}
	if byChannel["messenger"].URL != "https://m.me/binimoy.organic" {
		t.Fatalf("unexpected messenger link %s", byChannel["messenger"].URL)
	}
}
