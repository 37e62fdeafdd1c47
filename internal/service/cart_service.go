package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/binimoy-shop/internal/constants"
	"github.com/binimoy-shop/internal/logger"
	"github.com/binimoy-shop/internal/models"
	"github.com/binimoy-shop/internal/repository"
)

// Cart 购物车内容，行按加入顺序排列
type Cart struct {
	StoreKey string            `json:"store_key"`
	Lines    []models.CartLine `json:"lines"`
}

// TotalItems 购物车内商品总件数（数量求和）
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice 购物车内商品总金额
func (c *Cart) TotalPrice() models.Money {
	total := models.NewMoneyFromInt(0)
	for _, line := range c.Lines {
		total = total.Add(line.LineTotal())
	}
	return total
}

// Summary 购物车的订单摘要文本，每行商品一段
func (c *Cart) Summary() string {
	return SummaryLines(c.Lines)
}

// FindLine 按商品标识查找购物车行，不存在时返回 nil
func (c *Cart) FindLine(productID string) *models.CartLine {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return &c.Lines[i]
		}
	}
	return nil
}

// StoreKeyForDevice 按设备标识生成购物车存储键
func StoreKeyForDevice(deviceID string) string {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return constants.CartDefaultStoreKey
	}
	return fmt.Sprintf("%s:%s", constants.CartStoreKeyPrefix, deviceID)
}

// CartService 购物车服务。每次变更先落库再返回，
// 保证读到的内容总是已持久化的快照
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// decodeLines 反序列化购物车快照内容。
// 载荷损坏或结构不符时不报错，按空购物车处理
func decodeLines(storeKey, payload string) []models.CartLine {
	if strings.TrimSpace(payload) == "" {
		return nil
	}
	var raw []models.CartLine
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		logger.Warnw("cart_payload_invalid",
			"store_key", storeKey,
			"error", err.Error(),
		)
		return nil
	}
	lines := make([]models.CartLine, 0, len(raw))
	for _, line := range raw {
		if line.ProductID == "" || line.Quantity <= 0 {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Load 加载购物车，快照不存在或损坏时返回空购物车
func (s *CartService) Load(storeKey string) (*Cart, error) {
	if strings.TrimSpace(storeKey) == "" {
		return nil, ErrStoreKeyInvalid
	}
	snapshot, err := s.cartRepo.GetByKey(storeKey)
	if err != nil {
		return nil, err
	}
	cart := &Cart{StoreKey: storeKey}
	if snapshot != nil {
		cart.Lines = decodeLines(storeKey, snapshot.Payload)
	}
	return cart, nil
}

// persist 将购物车序列化后写入快照，成功后才向调用方返回
func (s *CartService) persist(cart *Cart) error {
	payload, err := json.Marshal(cart.Lines)
	if err != nil {
		return err
	}
	return s.cartRepo.Save(cart.StoreKey, string(payload))
}

// AddToCart 将商品加入购物车。已存在时数量加一，
// 否则以数量一追加到末尾
func (s *CartService) AddToCart(storeKey, productID string) (*Cart, error) {
	product, err := s.productRepo.GetByID(strings.TrimSpace(productID))
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotAvailable
	}
	cart, err := s.Load(storeKey)
	if err != nil {
		return nil, err
	}
	if line := cart.FindLine(product.ID); line != nil {
		line.Quantity++
	} else {
		cart.Lines = append(cart.Lines, models.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Unit:      product.Unit,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  1,
		})
	}
	if err := s.persist(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity 设置购物车内某商品的数量。
// 数量小于等于零时移除该行，商品不在购物车中时不做任何事
func (s *CartService) UpdateQuantity(storeKey, productID string, quantity int) (*Cart, error) {
	cart, err := s.Load(storeKey)
	if err != nil {
		return nil, err
	}
	if cart.FindLine(productID) == nil {
		return cart, nil
	}
	if quantity <= 0 {
		return s.removeLine(cart, productID)
	}
	cart.FindLine(productID).Quantity = quantity
	if err := s.persist(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveFromCart 从购物车移除某商品，
// 商品不在购物车中时不做任何事
func (s *CartService) RemoveFromCart(storeKey, productID string) (*Cart, error) {
	cart, err := s.Load(storeKey)
	if err != nil {
		return nil, err
	}
	if cart.FindLine(productID) == nil {
		return cart, nil
	}
	return s.removeLine(cart, productID)
}

func (s *CartService) removeLine(cart *Cart, productID string) (*Cart, error) {
	lines := make([]models.CartLine, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		if line.ProductID == productID {
			continue
		}
		lines = append(lines, line)
	}
	cart.Lines = lines
	if err := s.persist(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear 清空购物车
func (s *CartService) Clear(storeKey string) (*Cart, error) {
	cart := &Cart{StoreKey: storeKey}
	if err := s.persist(cart); err != nil {
		return nil, err
	}
	return cart, nil
}
