package public

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/binimoy-shop/internal/http/handlers/shared"
	"github.com/binimoy-shop/internal/http/response"
	"github.com/binimoy-shop/internal/models"
	"github.com/binimoy-shop/internal/service"
)

// ProductResponse 商品响应
type ProductResponse struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Unit            string        `json:"unit"`
	Price           models.Money  `json:"price"`
	OriginalPrice   *models.Money `json:"original_price,omitempty"`
	DiscountPercent int           `json:"discount_percent"`
	Rating          float64       `json:"rating"`
	Reviews         int           `json:"reviews"`
	Stock           int           `json:"stock"`
	CategoryID      string        `json:"category_id"`
	CategoryName    string        `json:"category_name,omitempty"`
	Image           string        `json:"image"`
	Description     string        `json:"description"`
	Seller          string        `json:"seller"`
}

// ProductDetailResponse 商品详情响应，附带同类推荐
type ProductDetailResponse struct {
	ProductResponse
	Related []ProductResponse `json:"related"`
}

func toProductResponse(p models.Product) ProductResponse {
	resp := ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Unit:            p.Unit,
		Price:           p.Price,
		OriginalPrice:   p.OriginalPrice,
		DiscountPercent: p.DiscountPercent(),
		Rating:          p.Rating,
		Reviews:         p.Reviews,
		Stock:           p.Stock,
		CategoryID:      p.CategoryID,
		Image:           p.Image,
		Description:     p.Description,
		Seller:          p.Seller,
	}
	if p.Category.Name != "" {
		resp.CategoryName = p.Category.Name
	}
	return resp
}

func parseOptionalInt64(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return nil, false
	}
	return &value, true
}

// ListProducts 商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	priceMin, ok := parseOptionalInt64(c, "price_min")
	if !ok {
		respondError(c, response.CodeBadRequest, "price_min invalid", nil)
		return
	}
	priceMax, ok := parseOptionalInt64(c, "price_max")
	if !ok {
		respondError(c, response.CodeBadRequest, "price_max invalid", nil)
		return
	}

	items, total, err := h.CatalogService.ListProducts(service.ProductQuery{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: c.Query("category"),
		Search:     c.Query("search"),
		PriceMin:   priceMin,
		PriceMax:   priceMax,
		Sort:       c.Query("sort"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "product list failed", err)
		return
	}

	respItems := make([]ProductResponse, 0, len(items))
	for _, item := range items {
		respItems = append(respItems, toProductResponse(item))
	}
	response.SuccessWithPage(c, respItems, response.NewPagination(page, pageSize, total))
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := h.CatalogService.GetProduct(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "product fetch failed", err)
		return
	}

	related, err := h.CatalogService.ListRelated(id, 4)
	if err != nil {
		respondError(c, response.CodeInternal, "product fetch failed", err)
		return
	}

	resp := ProductDetailResponse{
		ProductResponse: toProductResponse(*product),
		Related:         make([]ProductResponse, 0, len(related)),
	}
	for _, item := range related {
		resp.Related = append(resp.Related, toProductResponse(item))
	}
	response.Success(c, resp)
}

// ListCategories 分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CatalogService.ListCategories()
	if err != nil {
		respondError(c, response.CodeInternal, "category list failed", err)
		return
	}
	response.Success(c, categories)
}

// ListLocations 配送地区列表
func (h *Handler) ListLocations(c *gin.Context) {
	locations, err := h.CatalogService.ListLocations()
	if err != nil {
		respondError(c, response.CodeInternal, "location list failed", err)
		return
	}
	response.Success(c, locations)
}

// ListBanners 首页横幅列表
func (h *Handler) ListBanners(c *gin.Context) {
	banners, err := h.CatalogService.ListBanners()
	if err != nil {
		respondError(c, response.CodeInternal, "banner list failed", err)
		return
	}
	response.Success(c, banners)
}
