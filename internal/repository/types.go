package repository

import "github.com/shopspring/decimal"

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   string
	Search       string           // 按名称/描述模糊匹配
	PriceMin     *decimal.Decimal // 价格下限（含）
	PriceMax     *decimal.Decimal // 价格上限（含）
	Sort         string           // constants.ProductSort*
	OnlyActive   bool
	WithCategory bool
}

// BannerListFilter 查询轮播图列表的过滤条件
type BannerListFilter struct {
	Page       int
	PageSize   int
	OnlyActive bool
}
