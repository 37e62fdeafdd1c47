package public

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/binimoy-shop/internal/constants"
	"github.com/binimoy-shop/internal/http/response"
	"github.com/binimoy-shop/internal/models"
	"github.com/binimoy-shop/internal/service"
)

// CartItemRequest 购物车项请求。
// 不带 quantity 时数量加一，带 quantity 时直接设置数量
type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  *int   `json:"quantity"`
}

// CartResponse 购物车响应
type CartResponse struct {
	Lines      []models.CartLine `json:"lines"`
	TotalItems int               `json:"total_items"`
	TotalPrice models.Money      `json:"total_price"`
	Summary    string            `json:"summary"`
}

func toCartResponse(cart *service.Cart) CartResponse {
	lines := cart.Lines
	if lines == nil {
		lines = []models.CartLine{}
	}
	return CartResponse{
		Lines:      lines,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
		Summary:    cart.Summary(),
	}
}

// storeKey 按请求头里的设备标识确定购物车存储键
func storeKey(c *gin.Context) string {
	return service.StoreKeyForDevice(c.GetHeader(constants.DeviceIDHeader))
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	cart, err := h.CartService.Load(storeKey(c))
	if err != nil {
		respondError(c, response.CodeInternal, "cart fetch failed", err)
		return
	}
	response.Success(c, toCartResponse(cart))
}

// UpsertCartItem 加入购物车或调整数量
func (h *Handler) UpsertCartItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "cart item invalid", nil)
		return
	}

	var (
		cart *service.Cart
		err  error
	)
	if req.Quantity == nil {
		cart, err = h.CartService.AddToCart(storeKey(c), req.ProductID)
	} else {
		cart, err = h.CartService.UpdateQuantity(storeKey(c), req.ProductID, *req.Quantity)
	}
	if err != nil {
		if errors.Is(err, service.ErrProductNotAvailable) {
			respondError(c, response.CodeBadRequest, "product not available", nil)
			return
		}
		respondError(c, response.CodeInternal, "cart update failed", err)
		return
	}
	response.Success(c, toCartResponse(cart))
}

// RemoveCartItem 从购物车移除商品
func (h *Handler) RemoveCartItem(c *gin.Context) {
	cart, err := h.CartService.RemoveFromCart(storeKey(c), c.Param("product_id"))
	if err != nil {
		respondError(c, response.CodeInternal, "cart update failed", err)
		return
	}
	response.Success(c, toCartResponse(cart))
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	cart, err := h.CartService.Clear(storeKey(c))
	if err != nil {
		respondError(c, response.CodeInternal, "cart update failed", err)
		return
	}
	response.Success(c, toCartResponse(cart))
}
