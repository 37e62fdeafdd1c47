package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/binimoy-shop/internal/config"
	"github.com/binimoy-shop/internal/constants"
	"github.com/binimoy-shop/internal/models"
	"github.com/binimoy-shop/internal/repository"
)

// orderTextHeader 订单摘要文本的首行
const orderTextHeader = "অর্ডার তথ্য:"

// Totals 结算金额汇总
type Totals struct {
	Subtotal       models.Money `json:"subtotal"`
	DeliveryCharge models.Money `json:"delivery_charge"`
	Total          models.Money `json:"total"`
	FreeDelivery   bool         `json:"free_delivery"`
	TotalItems     int          `json:"total_items"`
}

// SelectionSet 参与结算的商品标识集合
type SelectionSet map[string]struct{}

// SelectAll 返回包含所有购物车行的选中集合
func SelectAll(lines []models.CartLine) SelectionSet {
	set := make(SelectionSet, len(lines))
	for _, line := range lines {
		set[line.ProductID] = struct{}{}
	}
	return set
}

// SelectNone 返回空的选中集合
func SelectNone() SelectionSet {
	return make(SelectionSet)
}

// Contains 判断商品是否被选中
func (s SelectionSet) Contains(productID string) bool {
	_, ok := s[productID]
	return ok
}

// Toggle 反转某商品的选中状态
func (s SelectionSet) Toggle(productID string) {
	if s.Contains(productID) {
		delete(s, productID)
		return
	}
	s[productID] = struct{}{}
}

// Reconcile 在购物车变更后收敛选中集合，
// 丢弃已不在购物车中的商品标识
func Reconcile(set SelectionSet, lines []models.CartLine) SelectionSet {
	next := make(SelectionSet, len(set))
	for _, line := range lines {
		if set.Contains(line.ProductID) {
			next[line.ProductID] = struct{}{}
		}
	}
	return next
}

// FilterLines 按选中集合过滤购物车行，保持原有顺序
func FilterLines(lines []models.CartLine, set SelectionSet) []models.CartLine {
	selected := make([]models.CartLine, 0, len(lines))
	for _, line := range lines {
		if set.Contains(line.ProductID) {
			selected = append(selected, line)
		}
	}
	return selected
}

// SummaryLines 生成订单摘要正文，每件商品两行：
// 名称与标识一行，数量一行。不包含单价和金额
func SummaryLines(lines []models.CartLine) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, fmt.Sprintf("%s (ID: %s)\nপরিমাণ: × %d", line.Name, line.ProductID, line.Quantity))
	}
	return strings.Join(parts, "\n")
}

// FormatOrderText 生成完整订单文本，用于复制与消息渠道转交
func FormatOrderText(lines []models.CartLine) string {
	return orderTextHeader + "\n" + SummaryLines(lines)
}

// HandoffLink 下单转交渠道
type HandoffLink struct {
	Channel     string `json:"channel"`
	Label       string `json:"label"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// CheckoutService 结算服务。金额汇总与文本生成不修改任何状态，
// 同样的输入总是得到同样的结果
type CheckoutService struct {
	locationRepo repository.LocationRepository
	productRepo  repository.ProductRepository
	store        config.StoreConfig
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(
	locationRepo repository.LocationRepository,
	productRepo repository.ProductRepository,
	store config.StoreConfig,
) *CheckoutService {
	return &CheckoutService{
		locationRepo: locationRepo,
		productRepo:  productRepo,
		store:        store,
	}
}

// ComputeTotals 汇总选中商品的金额。
// 配送地区未知时按零运费处理，商品为空时各项金额为零
func (s *CheckoutService) ComputeTotals(lines []models.CartLine, locationID string) (Totals, error) {
	totals := Totals{
		Subtotal:       models.NewMoneyFromInt(0),
		DeliveryCharge: models.NewMoneyFromInt(0),
		Total:          models.NewMoneyFromInt(0),
	}
	for _, line := range lines {
		totals.Subtotal = totals.Subtotal.Add(line.LineTotal())
		totals.TotalItems += line.Quantity
	}
	location, err := s.locationRepo.GetByID(strings.TrimSpace(locationID))
	if err != nil {
		return Totals{}, err
	}
	if location != nil {
		totals.DeliveryCharge = location.DeliveryCharge
	}
	totals.FreeDelivery = totals.DeliveryCharge.IsZero()
	totals.Total = totals.Subtotal.Add(totals.DeliveryCharge)
	return totals, nil
}

// BuyNowLine 直接购买：跳过购物车，按数量一生成单行订单
func (s *CheckoutService) BuyNowLine(productID string) (models.CartLine, error) {
	product, err := s.productRepo.GetByID(strings.TrimSpace(productID))
	if err != nil {
		return models.CartLine{}, err
	}
	if product == nil || !product.IsActive {
		return models.CartLine{}, ErrProductNotAvailable
	}
	return models.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Unit:      product.Unit,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  1,
	}, nil
}

// HandoffLinks 生成携带订单文本的下单渠道链接
func (s *CheckoutService) HandoffLinks(orderText string) []HandoffLink {
	links := make([]HandoffLink, 0, 3)
	if s.store.Phone != "" {
		links = append(links, HandoffLink{
			Channel:     constants.ContactChannelPhone,
			Label:       "সরাসরি কল করুন",
			Description: "আমাদের কল করে অর্ডার করুন",
			URL:         "tel:" + s.store.Phone,
		})
	}
	if s.store.WhatsAppNumber != "" {
		links = append(links, HandoffLink{
			Channel:     constants.ContactChannelWhatsApp,
			Label:       "হোয়াটসঅ্যাপে মেসেজ",
			Description: "হোয়াটসঅ্যাপে অর্ডার করুন",
			URL:         fmt.Sprintf("https://wa.me/%s?text=%s", s.store.WhatsAppNumber, url.QueryEscape(orderText)),
		})
	}
	if s.store.MessengerURL != "" {
		links = append(links, HandoffLink{
			Channel:     constants.ContactChannelMessenger,
			Label:       "ফেইসবুকে মেসেজ",
			Description: "ফেইসবুক পেজে অর্ডার করুন",
			URL:         s.store.MessengerURL,
		})
	}
	return links
}
