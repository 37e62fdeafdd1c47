package public

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/binimoy-shop/internal/constants"
	"github.com/binimoy-shop/internal/http/response"
	"github.com/binimoy-shop/internal/models"
	"github.com/binimoy-shop/internal/service"
)

// CheckoutPreviewRequest 结算预览请求。
// mode 为 buy_now 时只结算 product_id 指定的单件商品；
// 否则结算购物车，selected_ids 为空表示全选
type CheckoutPreviewRequest struct {
	Mode        string   `json:"mode"`
	ProductID   string   `json:"product_id"`
	SelectedIDs []string `json:"selected_ids"`
	LocationID  string   `json:"location_id"`
}

// CheckoutPreviewResponse 结算预览响应
type CheckoutPreviewResponse struct {
	Mode       string                `json:"mode"`
	Lines      []models.CartLine     `json:"lines"`
	LocationID string                `json:"location_id"`
	Totals     service.Totals        `json:"totals"`
	OrderText  string                `json:"order_text"`
	Handoff    []service.HandoffLink `json:"handoff"`
}

// resolveCheckoutLines 确定参与结算的商品行
func (h *Handler) resolveCheckoutLines(c *gin.Context, req CheckoutPreviewRequest) ([]models.CartLine, error) {
	if req.Mode == constants.CheckoutModeBuyNow {
		line, err := h.CheckoutService.BuyNowLine(req.ProductID)
		if err != nil {
			return nil, err
		}
		return []models.CartLine{line}, nil
	}

	cart, err := h.CartService.Load(storeKey(c))
	if err != nil {
		return nil, err
	}
	if req.SelectedIDs == nil {
		return cart.Lines, nil
	}

	set := service.SelectNone()
	for _, id := range req.SelectedIDs {
		set[id] = struct{}{}
	}
	set = service.Reconcile(set, cart.Lines)
	return service.FilterLines(cart.Lines, set), nil
}

// PreviewCheckout 结算预览：金额汇总、订单文本与下单渠道
func (h *Handler) PreviewCheckout(c *gin.Context) {
	var req CheckoutPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "checkout request invalid", nil)
		return
	}
	if req.Mode == "" {
		req.Mode = constants.CheckoutModeCart
	}
	if req.Mode == constants.CheckoutModeBuyNow && req.ProductID == "" {
		respondError(c, response.CodeBadRequest, "product_id required", nil)
		return
	}
	if req.LocationID == "" {
		req.LocationID = h.Config.Store.DefaultLocationID
	}

	lines, err := h.resolveCheckoutLines(c, req)
	if err != nil {
		if errors.Is(err, service.ErrProductNotAvailable) {
			respondError(c, response.CodeBadRequest, "product not available", nil)
			return
		}
		respondError(c, response.CodeInternal, "checkout preview failed", err)
		return
	}
	if len(lines) == 0 {
		respondError(c, response.CodeBadRequest, "selection empty", nil)
		return
	}

	totals, err := h.CheckoutService.ComputeTotals(lines, req.LocationID)
	if err != nil {
		respondError(c, response.CodeInternal, "checkout preview failed", err)
		return
	}

	orderText := service.FormatOrderText(lines)
	response.Success(c, CheckoutPreviewResponse{
		Mode:       req.Mode,
		Lines:      lines,
		LocationID: req.LocationID,
		Totals:     totals,
		OrderText:  orderText,
		Handoff:    h.CheckoutService.HandoffLinks(orderText),
	})
}
