package public

import (
	"github.com/gin-gonic/gin"

	"github.com/binimoy-shop/internal/http/response"
)

// GetConfig 获取店铺全局配置
func (h *Handler) GetConfig(c *gin.Context) {
	store := h.Config.Store
	locations, err := h.CatalogService.ListLocations()
	if err != nil {
		respondError(c, response.CodeInternal, "config fetch failed", err)
		return
	}
	maxPrice, err := h.CatalogService.MaxPrice()
	if err != nil {
		respondError(c, response.CodeInternal, "config fetch failed", err)
		return
	}
	response.Success(c, gin.H{
		"locations": locations,
		"max_price": maxPrice,
		"name":     store.Name,
		"currency": store.Currency,
		"contact": gin.H{
			"phone":     store.Phone,
			"whatsapp":  store.WhatsAppNumber,
			"messenger": store.MessengerURL,
		},
		"order_form_url":      store.OrderFormURL,
		"default_location_id": store.DefaultLocationID,
	})
}
